package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteFormFields_JSONUsesColorKeys(t *testing.T) {
	fields := PaletteFormFields{
		Colors:   []string{"#111", "#222"},
		EditID:   "p1",
		Keywords: []string{"calm"},
		Mode:     ModeDark,
		Name:     "Night",
	}

	data, err := json.Marshal(fields)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "#111", raw["color1"])
	assert.Equal(t, "#222", raw["color2"])
	assert.Equal(t, "p1", raw["editId"])

	var back PaletteFormFields
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, fields, back)
}

func TestPaletteFormFields_UnmarshalSparseColors(t *testing.T) {
	var fields PaletteFormFields
	err := json.Unmarshal([]byte(`{"name":"x","color3":"#333","color1":"#111","color99":"#999","extra":1}`), &fields)
	require.NoError(t, err)

	assert.Equal(t, []string{"#111", "", "#333"}, fields.Colors)
	assert.Equal(t, []string{}, fields.Keywords)
}

func TestPaletteFormFields_UnmarshalBadValue(t *testing.T) {
	var fields PaletteFormFields
	err := json.Unmarshal([]byte(`{"color1": 5}`), &fields)
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, ModeDark, m)

	_, err = ParseMode("dim")
	assert.Error(t, err)
}

func TestCompactColors(t *testing.T) {
	assert.Equal(t, []string{"#1", "#2"}, CompactColors([]string{"", " #1 ", "  ", "#2"}))
}
