package config

import (
	"reflect"
	"strings"

	"tinta/internal/paths"
)

// GetSettingsFilePath returns the path to the settings file
func GetSettingsFilePath() string {
	return paths.GetSettingsPath()
}

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "default_total_colors":
				return 10
			case "error_clear_delay":
				return 10
			case "focus_delay_ms":
				return 50
			case "max_log_files":
				return 1000
			case "ssh_port":
				return 23234
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.Map:
		if t.Name() == "KeyBindingsConfig" {
			return map[string]any{
				"add_color": "ctrl+n",
				"help":      []string{"?", "f1"},
			}
		}
	case reflect.String:
		switch fieldName {
		case "default_creativity":
			return "medium"
		case "default_mode":
			return "dark"
		case "generator_command":
			return "claude -p"
		case "ssh_host":
			return "localhost"
		default:
			return "example"
		}
	case reflect.Slice:
		if t.Name() == "StringArray" || t.Elem().Kind() == reflect.String {
			switch fieldName {
			case "generator_env":
				return []string{"NO_COLOR=1"}
			default:
				return []string{"example1", "example2"}
			}
		}
	}

	return nil
}
