package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"tinta/internal/domain"
	"tinta/internal/logging"
	"tinta/internal/ports"
)

// PaletteService handles palette submission and management
type PaletteService struct {
	clock Clock
	ids   IDGenerator
	repo  ports.PaletteRepository
}

// NewPaletteService creates a new PaletteService
func NewPaletteService(repo ports.PaletteRepository, ids IDGenerator, clock Clock) *PaletteService {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	if clock == nil {
		clock = time.Now
	}
	return &PaletteService{
		clock: clock,
		ids:   ids,
		repo:  repo,
	}
}

// Submit validates a form snapshot (restricted to the active color fields),
// builds the palette record and creates or updates it. onSuccess runs only
// after the store accepted the write. Validation failures are returned as
// *domain.ValidationError.
func (s *PaletteService) Submit(
	ctx context.Context,
	fields domain.PaletteFormFields,
	onSuccess func(domain.SavedPalette),
) (*SubmitResult, error) {
	if verr := domain.ValidateFormFields(fields, len(fields.Colors)); verr != nil {
		logging.Logger.Debug("Palette submission rejected", "error", verr)
		return nil, verr
	}

	palette := domain.SavedPalette{
		Colors:      domain.CompactColors(fields.Colors),
		Description: strings.TrimSpace(fields.Description),
		Keywords:    append([]string{}, fields.Keywords...),
		Mode:        fields.Mode,
		Name:        strings.TrimSpace(fields.Name),
	}

	result := &SubmitResult{}
	if fields.IsEditing() {
		existing, err := s.repo.Get(ctx, fields.EditID)
		if err != nil {
			logging.Logger.Error("Failed to load palette for update", "id", fields.EditID, "error", err)
			return nil, fmt.Errorf("failed to load palette: %w", err)
		}
		palette.ID = existing.ID
		palette.CreatedAt = existing.CreatedAt

		logging.Logger.Info("Updating palette", "id", palette.ID, "name", palette.Name)
		if err := s.repo.Update(ctx, palette); err != nil {
			logging.Logger.Error("Failed to update palette", "id", palette.ID, "error", err)
			return nil, fmt.Errorf("failed to update palette: %w", err)
		}
	} else {
		palette.ID = s.ids.NewID()
		palette.CreatedAt = s.clock()
		result.Created = true

		logging.Logger.Info("Creating palette", "id", palette.ID, "name", palette.Name)
		if err := s.repo.Create(ctx, palette); err != nil {
			logging.Logger.Error("Failed to create palette", "id", palette.ID, "error", err)
			return nil, fmt.Errorf("failed to create palette: %w", err)
		}
	}

	result.Palette = palette
	if onSuccess != nil {
		onSuccess(palette)
	}
	return result, nil
}

// List returns palettes, newest first. A non-empty query keeps palettes
// whose name, description or keywords contain it (case-insensitive).
func (s *PaletteService) List(ctx context.Context, query string) ([]domain.SavedPalette, error) {
	palettes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list palettes: %w", err)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return palettes, nil
	}

	filtered := make([]domain.SavedPalette, 0, len(palettes))
	for _, p := range palettes {
		if matchesQuery(p, query) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func matchesQuery(p domain.SavedPalette, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, k := range p.Keywords {
		if strings.Contains(strings.ToLower(k), query) {
			return true
		}
	}
	return false
}

// Get returns one palette
func (s *PaletteService) Get(ctx context.Context, id string) (*domain.SavedPalette, error) {
	palette, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get palette: %w", err)
	}
	return palette, nil
}

// Delete removes a palette
func (s *PaletteService) Delete(ctx context.Context, id string) error {
	logging.Logger.Info("Deleting palette", "id", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		logging.Logger.Error("Failed to delete palette", "id", id, "error", err)
		return fmt.Errorf("failed to delete palette: %w", err)
	}

	logging.Logger.Info("Palette deleted", "id", id)
	return nil
}

// Duplicate stores a copy of a palette under a new id, named "<name> copy"
// (truncated to the name limit) and created now
func (s *PaletteService) Duplicate(ctx context.Context, id string) (*domain.SavedPalette, error) {
	source, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get palette: %w", err)
	}

	duplicate := domain.SavedPalette{
		Colors:      append([]string{}, source.Colors...),
		CreatedAt:   s.clock(),
		Description: source.Description,
		ID:          s.ids.NewID(),
		Keywords:    append([]string{}, source.Keywords...),
		Mode:        source.Mode,
		Name:        truncateRunes(source.Name+" copy", domain.NameMaxLength),
	}

	logging.Logger.Info("Duplicating palette", "source", id, "id", duplicate.ID)
	if err := s.repo.Create(ctx, duplicate); err != nil {
		return nil, fmt.Errorf("failed to duplicate palette: %w", err)
	}
	return &duplicate, nil
}

// CreateEdit loads a palette and turns it into form values targeting it
func (s *PaletteService) CreateEdit(ctx context.Context, id string) (domain.PaletteFormFields, error) {
	palette, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.PaletteFormFields{}, fmt.Errorf("failed to get palette: %w", err)
	}
	return EditFields(*palette), nil
}

// EditFields converts a saved palette into form values with EditID set
func EditFields(p domain.SavedPalette) domain.PaletteFormFields {
	colors := append([]string{}, p.Colors...)
	if len(colors) == 0 {
		colors = []string{""}
	}
	if len(colors) > domain.MaxColorFields {
		colors = colors[:domain.MaxColorFields]
	}
	mode := p.Mode
	if !mode.Valid() {
		mode = domain.DefaultMode
	}
	return domain.PaletteFormFields{
		Colors:      colors,
		Description: p.Description,
		EditID:      p.ID,
		Keywords:    append([]string{}, p.Keywords...),
		Mode:        mode,
		Name:        p.Name,
	}
}

// IsNotFound reports whether err means a palette does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrPaletteNotFound)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n]))
}
