package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"tinta/internal/domain"
	"tinta/internal/logging"
	"tinta/internal/services"
	"tinta/internal/theme"
)

// GenerateCmd generates colors, a description and a title from a prompt
type GenerateCmd struct {
	Creativity  string `help:"Creativity level" enum:"none,low,medium,high,maximum" default:"medium"`
	Format      string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Mode        string `help:"Mode stored with --save" enum:"light,dark" default:"light"`
	Prompt      string `arg:"" help:"What the palette should evoke"`
	Save        bool   `help:"Save the generated palette"`
	TotalColors int    `help:"Number of colors (1 to 15)" default:"10" short:"n"`
}

type generateOutput struct {
	Colors      []string `json:"colors"`
	Description string   `json:"description"`
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
}

// Run executes the generate command
func (g *GenerateCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logging.Logger.Info("Executing generate command", "creativity", g.Creativity, "total_colors", g.TotalColors)

	lastStage := ""
	result, err := cli.Container.GenerationService.Generate(ctx, services.GenerateRequest{
		Creativity:  g.Creativity,
		Prompt:      g.Prompt,
		TotalColors: strconv.Itoa(g.TotalColors),
	}, func(state services.GenerationState) {
		if state.Stage != lastStage && state.Loading {
			lastStage = state.Stage
			fmt.Fprintln(os.Stderr, state.StageLabel())
		}
	})
	if err != nil {
		if result == nil || len(result.Colors) == 0 {
			return err
		}
		// Colors arrived; only the text stages failed
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if len(result.Colors) == 0 {
		return fmt.Errorf("the generator did not return any valid colors")
	}
	if result.Capped {
		fmt.Fprintf(os.Stderr, "Limited to %d colors\n", domain.MaxColorFields)
	}

	out := generateOutput{
		Colors:      result.Colors,
		Description: result.Description,
		Title:       result.Title,
	}

	if g.Save {
		saved, err := g.save(ctx, cli.Container.PaletteService, result)
		if err != nil {
			return err
		}
		out.ID = saved.ID
	}

	if g.Format == "json" {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(theme.TitleStyle.Render(out.Title))
	if out.Description != "" {
		fmt.Println(out.Description)
	}
	fmt.Println()
	for _, c := range out.Colors {
		fmt.Println(theme.Swatch(c, c, 12))
	}
	if out.ID != "" {
		fmt.Printf("\nSaved as %s\n", out.ID)
	}
	return nil
}

// save stores the generated palette with its title as name
func (g *GenerateCmd) save(ctx context.Context, palettes *services.PaletteService, result *services.GenerateResult) (*domain.SavedPalette, error) {
	name := strings.TrimSpace(result.Title)
	if name == "" {
		name = "Generated palette"
	}

	saved, err := palettes.Submit(ctx, domain.PaletteFormFields{
		Colors:      result.Colors,
		Description: result.Description,
		Keywords:    []string{},
		Mode:        domain.Mode(g.Mode),
		Name:        name,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to save palette: %w", err)
	}

	logging.Logger.Info("Generated palette saved", "id", saved.Palette.ID)
	return &saved.Palette, nil
}
