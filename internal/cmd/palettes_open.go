package cmd

import (
	"context"
	"fmt"
)

// PalettesOpenCmd opens a palette on coolors.co
type PalettesOpenCmd struct {
	ID string `arg:"" help:"Palette ID"`
}

// Run executes the open command
func (p *PalettesOpenCmd) Run(cli *CLI) error {
	palette, err := cli.Container.PaletteService.Get(context.Background(), p.ID)
	if err != nil {
		return err
	}

	link, err := cli.Container.ExportService.OpenCoolors(palette.Colors)
	if err != nil {
		return err
	}
	fmt.Printf("Opened %s\n", link)
	return nil
}
