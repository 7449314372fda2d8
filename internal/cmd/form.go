package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"tinta/internal/domain"
	"tinta/internal/logging"
	"tinta/internal/ui"
)

// FormCmd opens the TUI on the save palette form and exits when it closes
type FormCmd struct {
	UIFlags `embed:""`

	Context string `help:"JSON file with generated colors and text to seed the form" type:"existingfile"`
	Edit    string `help:"ID of a saved palette to edit"`
}

// Run executes the form command
func (f *FormCmd) Run(cli *CLI) error {
	if f.Context != "" && f.Edit != "" {
		return fmt.Errorf("--context and --edit cannot be combined")
	}

	opts, err := f.modelOptions(cli.loadedSettings())
	if err != nil {
		return err
	}
	opts.QuitAfterForm = true

	launch, err := f.loadLaunchContext()
	if err != nil {
		return err
	}

	logging.Logger.Info("Opening palette form", "edit", f.Edit, "with_context", launch != nil)
	c := cli.Container
	model := ui.NewModel(c.PaletteService, c.GenerationService, c.ExportService, c.Drafts, opts)
	model.StartWithForm(launch, f.Edit)
	return runProgram(model)
}

// loadLaunchContext reads the --context file, if any
func (f *FormCmd) loadLaunchContext() (*domain.LaunchContext, error) {
	if f.Context == "" {
		return nil, nil
	}

	data, err := os.ReadFile(f.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to read launch context: %w", err)
	}

	var launch domain.LaunchContext
	if err := json.Unmarshal(data, &launch); err != nil {
		return nil, fmt.Errorf("invalid launch context %s: %w", f.Context, err)
	}
	return &launch, nil
}
