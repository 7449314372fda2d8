package ports

import (
	"context"

	"tinta/internal/domain"
)

// GenerateOptions tunes a single text generation request
type GenerateOptions struct {
	Creativity domain.Creativity
}

// TextGenerator turns a prompt into generated text
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}
