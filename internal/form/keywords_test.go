package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessKeywords_DuplicatesAndEmptyTokens(t *testing.T) {
	result := ProcessKeywords("red, blue, red, , blue", []string{"blue"})

	assert.Equal(t, []string{"red"}, result.Valid)
	assert.Contains(t, result.Duplicate, "red")
	assert.Contains(t, result.Duplicate, "blue")
	assert.Equal(t, []string{"blue", "red", "blue"}, result.Removed)
	assert.Equal(t, []string{""}, result.Invalid)
	assert.Equal(t, 5, result.TotalProcessed)
}

func TestProcessKeywords_NewlinesAndCase(t *testing.T) {
	result := ProcessKeywords("Ocean\nsunset\r\nOCEAN", nil)

	assert.Equal(t, []string{"Ocean", "sunset"}, result.Valid)
	assert.Equal(t, []string{"OCEAN"}, result.Removed)
	assert.Equal(t, 3, result.TotalProcessed)
}

func TestProcessKeywords_InvalidTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"symbols", "#tag"},
		{"too long", strings.Repeat("a", 31)},
		{"punctuation", "warm!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ProcessKeywords(tt.input, nil)
			assert.Empty(t, result.Valid)
			assert.Equal(t, []string{tt.input}, result.Invalid)
		})
	}
}

func TestProcessKeywords_BlankInput(t *testing.T) {
	result := ProcessKeywords("   ", []string{"a"})

	assert.Empty(t, result.Valid)
	assert.Equal(t, []string{""}, result.Invalid)
	assert.Equal(t, 1, result.TotalProcessed)

	result = ProcessKeywords(",\n", nil)
	assert.Empty(t, result.Valid)
	assert.Equal(t, 3, result.TotalProcessed)
}

func TestProcessKeywords_AllowedCharacters(t *testing.T) {
	result := ProcessKeywords("dark-mode, high_contrast, café 2", nil)
	assert.Equal(t, []string{"dark-mode", "high_contrast", "café 2"}, result.Valid)
}
