package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF5733", true},
		{"#ff5733", true},
		{"#F57", true},
		{"#abc", true},
		{"FF5733", false},
		{"#FF573", false},
		{"#FF57333", false},
		{"#GGG", false},
		{"#", false},
		{"", false},
		{" #FFF", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidHexColor(tt.input))
		})
	}
}

func TestFilterValidColors(t *testing.T) {
	got := FilterValidColors([]string{"#fff", "nope", "", "#123456", "#12"})
	assert.Equal(t, []string{"#fff", "#123456"}, got)
}
