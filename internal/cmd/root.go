package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"tinta/internal/config"
	"tinta/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Browser     string           `help:"Browser command used to open coolors.co (overrides $TINTA_BROWSER, $BROWSER)"`
	Debug       bool             `help:"Enable debug logging to file" short:"d" env:"TINTA_DEBUG"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)" env:"TINTA_DEBUG_FILE"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000" env:"TINTA_MAX_LOG_FILES"`

	Run      RunCmd      `cmd:"" help:"Start the tinta TUI (default)" default:"1"`
	Form     FormCmd     `cmd:"form" help:"Open the save palette form directly"`
	Generate GenerateCmd `cmd:"generate" help:"Generate a palette from a prompt"`
	Palettes PalettesCmd `cmd:"palettes" help:"Manage saved palettes (list, show, add, del, export, import)"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the TUI over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (show, meta, keys)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies while the flag is at its default and the env
	// var is unset.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("TINTA_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("TINTA_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	// Logging must be ready before the container: GORM logs through it
	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	container, err := NewContainer(c.settings, c.Browser)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// loadedSettings returns the settings passed to SetSettings, never nil
func (c *CLI) loadedSettings() *config.Settings {
	if c.settings == nil {
		return &config.Settings{}
	}
	return c.settings
}
