package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNoValidColors    = errors.New("at least one valid color is required")
	ErrPaletteExists    = errors.New("palette already exists")
	ErrPaletteNotFound  = errors.New("palette not found")
	ErrGenerationFailed = errors.New("generation failed")
)

// ValidationError collects per-field messages. Field names are form field
// ids (name, description, mode, keywords, color1..colorN).
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates an empty ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a message for a field; the first message wins
func (e *ValidationError) Add(field, message string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

// HasErrors reports whether any field failed
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// Field returns the message for a field, or ""
func (e *ValidationError) Field(field string) string {
	if e == nil {
		return ""
	}
	return e.Fields[field]
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + e.Fields[name]
	}
	return "invalid palette: " + strings.Join(parts, "; ")
}
