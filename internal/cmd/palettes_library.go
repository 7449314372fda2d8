package cmd

import (
	"context"
	"fmt"
	"os"

	"tinta/internal/logging"
	"tinta/internal/paths"
	"tinta/internal/services"
)

// PalettesExportCmd writes every palette to a library file
type PalettesExportCmd struct {
	File   string `arg:"" help:"Destination file (.yaml, .yml or .json)"`
	Format string `help:"Library format: yaml or json (default: from file extension)"`
}

// Run executes the export command
func (p *PalettesExportCmd) Run(cli *CLI) error {
	path := paths.ExpandPath(p.File)
	format, err := libraryFormat(p.Format, path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	count, err := cli.Container.LibraryService.Export(context.Background(), f, format)
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d palettes to %s\n", count, path)
	return nil
}

// PalettesImportCmd adds palettes from a library file
type PalettesImportCmd struct {
	File   string `arg:"" help:"Library file to import" type:"existingfile"`
	Format string `help:"Library format: yaml or json (default: from file extension)"`
}

// Run executes the import command
func (p *PalettesImportCmd) Run(cli *CLI) error {
	path := paths.ExpandPath(p.File)
	format, err := libraryFormat(p.Format, path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	result, err := cli.Container.LibraryService.Import(context.Background(), f, format)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d palettes", result.Imported)
	if result.Skipped > 0 {
		fmt.Printf(", skipped %d", result.Skipped)
	}
	fmt.Println()
	for _, problem := range result.Problems {
		fmt.Printf("  %s\n", problem)
	}
	logging.Logger.Info("Library imported", "path", path, "imported", result.Imported, "skipped", result.Skipped)
	return nil
}

func libraryFormat(flag, path string) (services.LibraryFormat, error) {
	if flag == "" {
		return services.FormatFromPath(path), nil
	}
	return services.ParseLibraryFormat(flag)
}
