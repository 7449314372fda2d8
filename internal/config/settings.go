package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tinta/internal/domain"
	"tinta/internal/paths"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "add_color", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	// Build set of valid names for quick lookup
	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	// Track all keys to detect duplicates
	keyToAction := make(map[string]string)

	// Validate each configured binding
	for name, keys := range k {
		// Check if the key name is valid
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		// Check for empty values and duplicates
		if len(keys) == 0 {
			continue // Not configured, will use default
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Settings represents the structure of $TINTA_HOME/settings.json
type Settings struct {
	Debug              *bool             `json:"debug,omitempty"`
	DefaultCreativity  string            `json:"default_creativity,omitempty"`
	DefaultMode        string            `json:"default_mode,omitempty"`
	DefaultTotalColors *int              `json:"default_total_colors,omitempty"`
	ErrorClearDelay    *int              `json:"error_clear_delay,omitempty"`
	FocusDelayMs       *int              `json:"focus_delay_ms,omitempty"`
	GeneratorCommand   string            `json:"generator_command,omitempty"`
	GeneratorEnv       StringArray       `json:"generator_env,omitempty"`
	Keys               KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles        *int              `json:"max_log_files,omitempty"`
	SSHHost            string            `json:"ssh_host,omitempty"`
	SSHPort            *int              `json:"ssh_port,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $TINTA_HOME/settings.json (or ~/.tinta/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(paths.GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// Validate checks the value-typed settings. Key bindings are validated
// separately against the UI key names.
func (s *Settings) Validate() error {
	if s.DefaultMode != "" {
		if _, err := domain.ParseMode(s.DefaultMode); err != nil {
			return fmt.Errorf("default_mode: %w", err)
		}
	}
	if s.DefaultCreativity != "" && !domain.IsCreativity(s.DefaultCreativity) {
		return fmt.Errorf("default_creativity: unknown level '%s'", s.DefaultCreativity)
	}
	if s.DefaultTotalColors != nil && (*s.DefaultTotalColors < 1 || *s.DefaultTotalColors > domain.MaxColorFields) {
		return fmt.Errorf("default_total_colors: must be between 1 and %d", domain.MaxColorFields)
	}
	if s.FocusDelayMs != nil && *s.FocusDelayMs < 0 {
		return fmt.Errorf("focus_delay_ms: must not be negative")
	}
	if s.SSHPort != nil && (*s.SSHPort < 1 || *s.SSHPort > 65535) {
		return fmt.Errorf("ssh_port: must be between 1 and 65535")
	}
	return nil
}

// SaveSettings saves settings to $TINTA_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := paths.GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
