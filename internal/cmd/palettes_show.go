package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"tinta/internal/domain"
	"tinta/internal/theme"
)

// PalettesShowCmd shows one palette
type PalettesShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     string `arg:"" help:"Palette ID"`
}

// Run executes the show command
func (p *PalettesShowCmd) Run(cli *CLI) error {
	palette, err := cli.Container.PaletteService.Get(context.Background(), p.ID)
	if err != nil {
		return err
	}

	if p.Format == "json" {
		data, err := json.MarshalIndent(palette, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Palette: %s\n", palette.Name)
	fmt.Printf("ID: %s\n", palette.ID)
	fmt.Printf("Mode: %s\n", palette.Mode)
	fmt.Printf("Created: %s\n", palette.CreatedAt.Format("2006-01-02 15:04:05"))
	if len(palette.Keywords) > 0 {
		fmt.Printf("Keywords: %s\n", strings.Join(palette.Keywords, ", "))
	}
	if palette.Description != "" {
		fmt.Printf("\n%s\n", wordwrap.String(palette.Description, 72))
	}
	fmt.Printf("\nColors:\n")
	for _, c := range palette.Colors {
		if domain.IsValidHexColor(c) {
			fmt.Printf("  %s\n", theme.Swatch(c, c, 12))
		} else {
			fmt.Printf("  %s (invalid)\n", c)
		}
	}
	fmt.Printf("\n%s\n", domain.CoolorsURL(palette.Colors))
	return nil
}
