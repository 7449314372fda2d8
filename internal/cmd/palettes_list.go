package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/muesli/reflow/truncate"

	"tinta/internal/domain"
	"tinta/internal/theme"
)

// PalettesListCmd lists saved palettes
type PalettesListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Search string `help:"Only palettes whose name, description or keywords contain this text" short:"s"`
}

// Run executes the list command
func (p *PalettesListCmd) Run(cli *CLI) error {
	palettes, err := cli.Container.PaletteService.List(context.Background(), p.Search)
	if err != nil {
		return err
	}

	if p.Format == "json" {
		data, err := json.MarshalIndent(palettes, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(palettes) == 0 {
		fmt.Println("No palettes found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tMode\tColors\tKeywords\tCreated")
	for _, palette := range palettes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			palette.ID,
			palette.Name,
			palette.Mode,
			theme.Strip(domain.FilterValidColors(palette.Colors), 2),
			truncate.StringWithTail(strings.Join(palette.Keywords, ", "), 30, "…"),
			palette.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
