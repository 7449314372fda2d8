package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// PalettesDelCmd deletes a palette
type PalettesDelCmd struct {
	Force bool   `help:"Skip confirmation prompt" short:"f"`
	ID    string `arg:"" help:"Palette ID"`
}

// Run executes the del command
func (p *PalettesDelCmd) Run(cli *CLI) error {
	ctx := context.Background()

	palette, err := cli.Container.PaletteService.Get(ctx, p.ID)
	if err != nil {
		return err
	}

	if !p.Force {
		fmt.Printf("Delete palette '%s' (%s)? [y/N]: ", palette.Name, palette.ID)
		reader := bufio.NewReader(os.Stdin)
		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cli.Container.PaletteService.Delete(ctx, palette.ID); err != nil {
		return err
	}

	fmt.Printf("Palette '%s' deleted\n", palette.Name)
	return nil
}
