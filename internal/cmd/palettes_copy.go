package cmd

import (
	"context"
	"fmt"

	"tinta/internal/domain"
)

// PalettesCopyCmd renders a palette's colors and copies them
type PalettesCopyCmd struct {
	Format string `help:"Copy format: json, css, css-variables or txt" default:"json"`
	ID     string `arg:"" help:"Palette ID"`
	Link   bool   `help:"Copy the coolors.co link instead of the colors"`
	Stdout bool   `help:"Print to stdout instead of the clipboard"`
}

// Run executes the copy command
func (p *PalettesCopyCmd) Run(cli *CLI) error {
	format, err := domain.ParseCopyFormat(p.Format)
	if err != nil {
		return err
	}

	palette, err := cli.Container.PaletteService.Get(context.Background(), p.ID)
	if err != nil {
		return err
	}

	if p.Stdout {
		text := domain.CoolorsURL(palette.Colors)
		if !p.Link {
			if text, err = domain.ExportColors(palette.Colors, format); err != nil {
				return err
			}
		}
		fmt.Println(text)
		return nil
	}

	if p.Link {
		link, err := cli.Container.ExportService.CopyCoolorsLink(palette.Colors)
		if err != nil {
			return err
		}
		fmt.Printf("Copied %s\n", link)
		return nil
	}

	if _, err := cli.Container.ExportService.Copy(palette.Colors, format); err != nil {
		return err
	}
	fmt.Printf("Copied %d colors of '%s' as %s\n", len(palette.Colors), palette.Name, format)
	return nil
}
