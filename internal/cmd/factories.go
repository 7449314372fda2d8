package cmd

import (
	"fmt"

	adapterbrowser "tinta/internal/adapters/browser"
	adapterclipboard "tinta/internal/adapters/clipboard"
	adapterdrafts "tinta/internal/adapters/drafts"
	adaptergenerator "tinta/internal/adapters/generator"
	adapterstorage "tinta/internal/adapters/storage"
	"tinta/internal/config"
	"tinta/internal/paths"
	"tinta/internal/ports"
	"tinta/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	ExportService     *services.ExportService
	GenerationService *services.GenerationService
	LibraryService    *services.LibraryService
	PaletteService    *services.PaletteService

	// Adapters used directly by commands
	Drafts ports.DraftStore

	// Internal - for cleanup only
	paletteRepo *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings, browser string) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	paletteRepo, err := adapterstorage.NewSQLiteRepository(paths.GetDBPath())
	if err != nil {
		return nil, err
	}

	generator, err := adaptergenerator.NewCLIGenerator(settings.GeneratorCommand, settings.GeneratorEnv)
	if err != nil {
		paletteRepo.Close()
		return nil, fmt.Errorf("invalid generator settings: %w", err)
	}

	ids := services.UUIDGenerator{}
	clipboard := adapterclipboard.NewSystemClipboard()
	opener := adapterbrowser.NewOpener(browser)

	return &Container{
		Drafts:            adapterdrafts.NewFileStore(paths.GetDraftPath()),
		ExportService:     services.NewExportService(clipboard, opener),
		GenerationService: services.NewGenerationService(generator),
		LibraryService:    services.NewLibraryService(paletteRepo, ids, nil),
		PaletteService:    services.NewPaletteService(paletteRepo, ids, nil),
		paletteRepo:       paletteRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.paletteRepo != nil {
		return c.paletteRepo.Close()
	}
	return nil
}
