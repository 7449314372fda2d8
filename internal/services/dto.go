package services

import (
	"time"

	"github.com/google/uuid"

	"tinta/internal/domain"
)

// IDGenerator assigns ids to new palettes
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator implements IDGenerator with random UUIDs
type UUIDGenerator struct{}

// NewID returns a new random UUID string
func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// Clock returns the current time
type Clock func() time.Time

// SubmitResult contains the result of a palette submission
type SubmitResult struct {
	Created bool
	Palette domain.SavedPalette
}

// GenerateRequest contains the raw user inputs of a generation request
type GenerateRequest struct {
	Creativity  string
	Prompt      string
	TotalColors string
}

// GenerateResult contains the generated colors and text
type GenerateResult struct {
	Capped      bool
	Colors      []string
	Description string
	Requested   int
	Title       string
}

// Items wraps the generated colors for selection
func (r *GenerateResult) Items() []domain.ColorItem {
	return domain.NewColorItems(r.Colors)
}

// Text returns the generated title and description
func (r *GenerateResult) Text() domain.AIGeneratedText {
	return domain.AIGeneratedText{Description: r.Description, Title: r.Title}
}
