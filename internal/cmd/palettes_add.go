package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"tinta/internal/domain"
	"tinta/internal/form"
	"tinta/internal/logging"
)

// PalettesAddCmd adds a palette from flags
type PalettesAddCmd struct {
	Colors      []string `help:"Hex colors, in order" name:"color" short:"c" required:""`
	Description string   `help:"Palette description"`
	Keywords    []string `help:"Keywords (repeat or comma-separate)" name:"keyword" short:"k"`
	Mode        string   `help:"Palette mode" enum:"light,dark" default:"light"`
	Name        string   `help:"Palette name" required:""`
}

// Run executes the add command
func (p *PalettesAddCmd) Run(cli *CLI) error {
	if len(p.Colors) > domain.MaxColorFields {
		return fmt.Errorf("at most %d colors are allowed", domain.MaxColorFields)
	}

	keywords := []string{}
	if text := strings.Join(p.Keywords, ","); strings.TrimSpace(text) != "" {
		processed := form.ProcessKeywords(text, nil)
		if len(processed.Invalid) > 0 {
			logging.Logger.Warn("Ignoring invalid keywords", "keywords", processed.Invalid)
		}
		keywords = processed.Valid
	}

	result, err := cli.Container.PaletteService.Submit(context.Background(), domain.PaletteFormFields{
		Colors:      p.Colors,
		Description: p.Description,
		Keywords:    keywords,
		Mode:        domain.Mode(p.Mode),
		Name:        p.Name,
	}, nil)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("invalid palette:\n%s", formatFieldErrors(verr))
		}
		return err
	}

	fmt.Printf("Palette '%s' added with ID %s\n", result.Palette.Name, result.Palette.ID)
	return nil
}

// formatFieldErrors renders one line per invalid field, in field order
func formatFieldErrors(verr *domain.ValidationError) string {
	names := make([]string, 0, len(verr.Fields))
	for name := range verr.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("  %s: %s", name, verr.Fields[name])
	}
	return strings.Join(lines, "\n")
}
