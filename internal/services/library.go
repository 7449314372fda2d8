package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"tinta/internal/domain"
	"tinta/internal/logging"
	"tinta/internal/ports"
)

// LibraryFormat is a palette library file format
type LibraryFormat string

const (
	LibraryJSON LibraryFormat = "json"
	LibraryYAML LibraryFormat = "yaml"
)

const libraryVersion = 1

// ParseLibraryFormat validates a format name; "yml" is accepted for YAML
func ParseLibraryFormat(s string) (LibraryFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return LibraryJSON, nil
	case "yaml", "yml":
		return LibraryYAML, nil
	}
	return "", fmt.Errorf("unknown library format %q (must be json or yaml)", s)
}

// FormatFromPath picks the library format from a file extension
func FormatFromPath(path string) LibraryFormat {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return LibraryJSON
	}
	return LibraryYAML
}

type library struct {
	Palettes []domain.SavedPalette `json:"palettes" yaml:"palettes"`
	Version  int                   `json:"version" yaml:"version"`
}

// ImportResult summarizes a library import
type ImportResult struct {
	Imported int
	// Problems holds one message per palette that was not imported
	Problems []string
	Skipped  int
}

// LibraryService moves whole palette collections in and out of files
type LibraryService struct {
	clock Clock
	ids   IDGenerator
	repo  ports.PaletteRepository
}

// NewLibraryService creates a new LibraryService
func NewLibraryService(repo ports.PaletteRepository, ids IDGenerator, clock Clock) *LibraryService {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	if clock == nil {
		clock = time.Now
	}
	return &LibraryService{clock: clock, ids: ids, repo: repo}
}

// Export writes every palette to w
func (s *LibraryService) Export(ctx context.Context, w io.Writer, format LibraryFormat) (int, error) {
	palettes, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list palettes: %w", err)
	}

	doc := library{Palettes: palettes, Version: libraryVersion}
	switch format {
	case LibraryJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case LibraryYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(doc)
		if err == nil {
			err = enc.Close()
		}
	default:
		return 0, fmt.Errorf("unknown library format %q", format)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to encode library: %w", err)
	}

	logging.Logger.Info("Library exported", "format", format, "palettes", len(palettes))
	return len(palettes), nil
}

// Import reads palettes from r. Palettes whose id already exists are
// skipped; palettes without an id get a new one. Invalid palettes are
// reported in Problems and not stored.
func (s *LibraryService) Import(ctx context.Context, r io.Reader, format LibraryFormat) (*ImportResult, error) {
	var doc library
	var err error
	switch format {
	case LibraryJSON:
		err = json.NewDecoder(r).Decode(&doc)
	case LibraryYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	default:
		return nil, fmt.Errorf("unknown library format %q", format)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode library: %w", err)
	}

	result := &ImportResult{}
	for i, p := range doc.Palettes {
		p, problem := s.normalize(p)
		if problem != "" {
			result.Problems = append(result.Problems, fmt.Sprintf("palette %d (%s): %s", i+1, p.Name, problem))
			continue
		}

		if err := s.repo.Create(ctx, p); err != nil {
			if errors.Is(err, domain.ErrPaletteExists) {
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("failed to import palette %s: %w", p.ID, err)
		}
		result.Imported++
	}

	logging.Logger.Info("Library imported",
		"imported", result.Imported,
		"skipped", result.Skipped,
		"problems", len(result.Problems))
	return result, nil
}

// normalize fills defaults and validates an imported palette
func (s *LibraryService) normalize(p domain.SavedPalette) (domain.SavedPalette, string) {
	p.Name = strings.TrimSpace(p.Name)
	if p.ID == "" {
		p.ID = s.ids.NewID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.clock()
	}
	if p.Mode == "" {
		p.Mode = domain.DefaultMode
	}
	if p.Keywords == nil {
		p.Keywords = []string{}
	}

	if !p.Mode.Valid() {
		return p, fmt.Sprintf("invalid mode %q", p.Mode)
	}
	if len(p.Colors) > domain.MaxColorFields {
		return p, fmt.Sprintf("at most %d colors are allowed", domain.MaxColorFields)
	}

	if verr := domain.ValidateFormFields(EditFields(p), len(p.Colors)); verr != nil {
		return p, verr.Error()
	}
	p.Colors = domain.CompactColors(p.Colors)
	return p, ""
}
