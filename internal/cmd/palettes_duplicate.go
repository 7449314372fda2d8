package cmd

import (
	"context"
	"fmt"
)

// PalettesDuplicateCmd copies a palette under a new ID
type PalettesDuplicateCmd struct {
	ID string `arg:"" help:"Palette ID"`
}

// Run executes the duplicate command
func (p *PalettesDuplicateCmd) Run(cli *CLI) error {
	copied, err := cli.Container.PaletteService.Duplicate(context.Background(), p.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Created '%s' with ID %s\n", copied.Name, copied.ID)
	return nil
}
