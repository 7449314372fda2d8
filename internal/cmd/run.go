package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tinta/internal/config"
	"tinta/internal/domain"
	"tinta/internal/logging"
	"tinta/internal/ui"
)

// UIFlags are the TUI options shared by run and form
type UIFlags struct {
	DefaultCreativity  string `help:"Creativity preselected in the generate prompt" enum:"none,low,medium,high,maximum" default:"medium" env:"TINTA_DEFAULT_CREATIVITY"`
	DefaultMode        string `help:"Mode of new palettes" enum:"light,dark" default:"light" env:"TINTA_DEFAULT_MODE"`
	DefaultTotalColors int    `help:"Number of colors requested from the generator" default:"10" env:"TINTA_DEFAULT_TOTAL_COLORS"`
	Dev                bool   `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay    int    `help:"Seconds before error messages auto-clear" default:"10" env:"TINTA_ERROR_CLEAR_DELAY"`
	FocusDelayMs       int    `help:"Milliseconds before a new color field takes focus" default:"50" env:"TINTA_FOCUS_DELAY_MS"`
}

// applySettings fills flags still at their defaults from settings.json
func (f *UIFlags) applySettings(settings *config.Settings) {
	if f.DefaultCreativity == string(domain.DefaultCreativity) && !hasEnv("TINTA_DEFAULT_CREATIVITY") && settings.DefaultCreativity != "" {
		f.DefaultCreativity = settings.DefaultCreativity
	}
	if f.DefaultMode == string(domain.DefaultMode) && !hasEnv("TINTA_DEFAULT_MODE") && settings.DefaultMode != "" {
		f.DefaultMode = settings.DefaultMode
	}
	if f.DefaultTotalColors == domain.DefaultColorFields && !hasEnv("TINTA_DEFAULT_TOTAL_COLORS") && settings.DefaultTotalColors != nil {
		f.DefaultTotalColors = *settings.DefaultTotalColors
	}
	if f.ErrorClearDelay == 10 && !hasEnv("TINTA_ERROR_CLEAR_DELAY") && settings.ErrorClearDelay != nil {
		f.ErrorClearDelay = *settings.ErrorClearDelay
	}
	if f.FocusDelayMs == 50 && !hasEnv("TINTA_FOCUS_DELAY_MS") && settings.FocusDelayMs != nil {
		f.FocusDelayMs = *settings.FocusDelayMs
	}
}

// modelOptions merges flags and settings into the UI configuration
func (f *UIFlags) modelOptions(settings *config.Settings) (ui.ModelOptions, error) {
	f.applySettings(settings)

	mode, err := domain.ParseMode(f.DefaultMode)
	if err != nil {
		return ui.ModelOptions{}, err
	}
	if f.DefaultTotalColors < 1 || f.DefaultTotalColors > domain.MaxColorFields {
		return ui.ModelOptions{}, fmt.Errorf("default total colors must be between 1 and %d", domain.MaxColorFields)
	}

	var keysConfig config.KeyBindingsConfig
	if settings.Keys != nil {
		if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return ui.ModelOptions{}, fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = settings.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}

	return ui.ModelOptions{
		DefaultCreativity:  domain.Creativity(f.DefaultCreativity),
		DefaultMode:        mode,
		DefaultTotalColors: f.DefaultTotalColors,
		DevMode:            f.Dev,
		ErrorClearDelay:    time.Duration(f.ErrorClearDelay) * time.Second,
		FocusDelay:         time.Duration(f.FocusDelayMs) * time.Millisecond,
		KeysConfig:         keysConfig,
	}, nil
}

func hasEnv(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}

// RunCmd starts the TUI application
type RunCmd struct {
	UIFlags `embed:""`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	opts, err := r.modelOptions(cli.loadedSettings())
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting tinta TUI")
	c := cli.Container
	model := ui.NewModel(c.PaletteService, c.GenerationService, c.ExportService, c.Drafts, opts)
	return runProgram(model)
}

// runProgram runs model full screen until it quits
func runProgram(model tea.Model) error {
	logging.Logger.Debug("Initializing Bubble Tea program")
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
