package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		maxWidth int
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			maxWidth: 80,
			expected: "",
		},
		{
			name:     "short message",
			err:      errors.New("palette not found"),
			maxWidth: 80,
			expected: "Error: palette not found",
		},
		{
			name:     "whitespace is collapsed",
			err:      errors.New("failed\n\tto   save"),
			maxWidth: 80,
			expected: "Error: failed to save",
		},
		{
			name:     "empty message",
			err:      errors.New("  "),
			maxWidth: 80,
			expected: "Error: unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatErrorForDisplay(tt.err, tt.maxWidth))
		})
	}
}

func TestFormatErrorForDisplay_LongMessageIsCut(t *testing.T) {
	err := errors.New(strings.Repeat("generator command exited early ", 20))

	result := formatErrorForDisplay(err, 40)
	lines := strings.Split(result, "\n")

	assert.Len(t, lines, maxErrorLines)
	assert.True(t, strings.HasPrefix(lines[0], errorPrefix))
	assert.True(t, strings.HasSuffix(result, truncationMark))
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 40)
	}
}
