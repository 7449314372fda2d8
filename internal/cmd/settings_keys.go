package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"tinta/internal/config"
	"tinta/internal/logging"
	"tinta/internal/paths"
	"tinta/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List  SettingsKeysListCmd  `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Reset SettingsKeysResetCmd `cmd:"reset" help:"Restore the default binding of a key"`
	Set   SettingsKeysSetCmd   `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// keyBindingRow is one line of the key listing
type keyBindingRow struct {
	Custom  []string `json:"custom,omitempty"`
	Default []string `json:"default"`
	Help    string   `json:"help"`
	InMenu  bool     `json:"inMenu"`
	Name    string   `json:"-"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	rows := keyBindingRows(cli.loadedSettings().Keys)

	if s.Format == "json" {
		byName := make(map[string]keyBindingRow, len(rows))
		for _, row := range rows {
			byName[row.Name] = row
		}
		data, err := json.MarshalIndent(byName, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Key Bindings (settings file: %s)\n\n", paths.GetSettingsPath())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tDefault\tCustom\tMenu\tAction")
	fmt.Fprintln(w, "────\t───────\t──────\t────\t──────")
	for _, row := range rows {
		custom := "-"
		if len(row.Custom) > 0 {
			custom = strings.Join(row.Custom, ", ")
		}
		menu := ""
		if row.InMenu {
			menu = "✓"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", row.Name, strings.Join(row.Default, ", "), custom, menu, row.Help)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use 'tinta settings keys set <name> <value>' to customize.")
	return nil
}

func keyBindingRows(custom config.KeyBindingsConfig) []keyBindingRow {
	names := ui.GetValidKeyNames()
	rows := make([]keyBindingRow, 0, len(names))
	for _, name := range names {
		def := ui.GetKeyDefinition(name)
		row := keyBindingRow{
			Default: def.Defaults,
			Help:    def.Help,
			InMenu:  def.InMenu,
			Name:    name,
		}
		if keys, ok := custom[name]; ok && len(keys) > 0 {
			row.Custom = keys
		}
		rows = append(rows, row)
	}
	return rows
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., copy, help, quit)"`
	Value string `arg:"" help:"Key binding (e.g., c, ctrl+s, or comma-separated for multiple: up,k)"`
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if !ui.IsValidKeyName(s.Key) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			s.Key, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)

	err := updateKeyBindings(func(keys config.KeyBindingsConfig) {
		keys[s.Key] = values
	})
	if err != nil {
		return err
	}

	fmt.Printf("Set '%s' to: %s\n", s.Key, strings.Join(values, ", "))
	return nil
}

// SettingsKeysResetCmd removes a custom binding
type SettingsKeysResetCmd struct {
	Key string `arg:"" help:"Key name"`
}

// Run executes the reset command
func (s *SettingsKeysResetCmd) Run(cli *CLI) error {
	def := ui.GetKeyDefinition(s.Key)
	if def == nil {
		return fmt.Errorf("unknown key '%s'", s.Key)
	}

	err := updateKeyBindings(func(keys config.KeyBindingsConfig) {
		delete(keys, s.Key)
	})
	if err != nil {
		return err
	}

	fmt.Printf("Reset '%s' to: %s\n", s.Key, strings.Join(def.Defaults, ", "))
	return nil
}

// updateKeyBindings re-reads settings.json, applies change and saves it back
// once the result has no conflicts
func updateKeyBindings(change func(config.KeyBindingsConfig)) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	change(settings.Keys)
	if len(settings.Keys) == 0 {
		settings.Keys = nil
	}

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// parseKeyValues parses comma-separated key values
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
