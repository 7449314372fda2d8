package ports

import "tinta/internal/domain"

// DraftStore keeps the values of an unfinished new-palette form between runs
type DraftStore interface {
	Clear() error
	// Load returns nil when there is no draft
	Load() (*domain.PaletteFormFields, error)
	Save(fields domain.PaletteFormFields) error
}
