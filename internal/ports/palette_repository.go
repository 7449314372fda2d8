package ports

// Regenerates internal/ports/mocks and internal/services/mocks
//go:generate mockery --config ../../.mockery.yaml

import (
	"context"

	"tinta/internal/domain"
)

// PaletteReader reads saved palettes
type PaletteReader interface {
	// Get returns domain.ErrPaletteNotFound when no palette has the id
	Get(ctx context.Context, id string) (*domain.SavedPalette, error)
	// List returns every palette, newest first
	List(ctx context.Context) ([]domain.SavedPalette, error)
}

// PaletteWriter creates, updates and deletes palettes
type PaletteWriter interface {
	Create(ctx context.Context, palette domain.SavedPalette) error
	Delete(ctx context.Context, id string) error
	Update(ctx context.Context, palette domain.SavedPalette) error
}

// PaletteRepository is the composite interface
type PaletteRepository interface {
	PaletteReader
	PaletteWriter
	Close() error
}
