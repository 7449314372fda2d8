package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tinta/internal/domain"
)

func TestColorFields_AddSaturatesAtMax(t *testing.T) {
	for n := 1; n <= domain.MaxColorFields+2; n++ {
		c := NewColorFields(1)
		for i := 0; i < n; i++ {
			c.Add()
		}
		assert.Equal(t, min(1+n, domain.MaxColorFields), c.Count(), "after %d adds", n)
	}
}

func TestColorFields_RemoveFloorsAtOne(t *testing.T) {
	c := NewColorFields(2)
	c.Remove()
	c.Remove()
	c.Remove()
	assert.Equal(t, 1, c.Count())
}

func TestColorFields_Reset(t *testing.T) {
	c := NewColorFields(7)
	c.Reset()
	assert.Equal(t, 1, c.Count())
}

func TestNewColorFields_ClampsInitial(t *testing.T) {
	tests := []struct {
		name     string
		initial  int
		expected int
	}{
		{"zero", 0, 1},
		{"negative", -3, 1},
		{"in range", 4, 4},
		{"above max", domain.MaxColorFields + 5, domain.MaxColorFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewColorFields(tt.initial).Count())
		})
	}
}

func TestParseColorFieldID(t *testing.T) {
	tests := []struct {
		id    FieldID
		n     int
		valid bool
	}{
		{"color1", 1, true},
		{"color15", 15, true},
		{"color16", 0, false},
		{"color0", 0, false},
		{"color", 0, false},
		{"colorx", 0, false},
		{"color01", 0, false},
		{"color+1", 0, false},
		{"color-1", 0, false},
		{"color 1", 0, false},
		{"name", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			n, ok := ParseColorFieldID(tt.id)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.n, n)
		})
	}
}
