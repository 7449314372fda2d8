package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Field limits and defaults shared by the form, the services and the UI
const (
	DefaultColorFields   = 10
	DescriptionMaxLength = 200
	KeywordMaxLength     = 30
	MaxColorFields       = 15
	NameMaxLength        = 30
)

// Mode is the palette appearance (light or dark)
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// DefaultMode is used for new palettes
const DefaultMode = ModeLight

// Valid reports whether m is one of the known modes
func (m Mode) Valid() bool {
	return m == ModeLight || m == ModeDark
}

// ParseMode converts a string into a Mode, case-insensitively
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("invalid mode %q (must be light or dark)", s)
	}
	return m, nil
}

// SavedPalette is a persisted color palette (domain entity)
type SavedPalette struct {
	Colors      []string  `json:"colors" yaml:"colors"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	Description string    `json:"description" yaml:"description"`
	ID          string    `json:"id" yaml:"id"`
	Keywords    []string  `json:"keywords" yaml:"keywords"`
	Mode        Mode      `json:"mode" yaml:"mode"`
	Name        string    `json:"name" yaml:"name"`
}

// ColorItem is one generated or previewed color. ID is the stable index
// string used for selection identity.
type ColorItem struct {
	Color string `json:"color"`
	ID    string `json:"id"`
}

// NewColorItems wraps colors into ColorItems indexed from "0"
func NewColorItems(colors []string) []ColorItem {
	items := make([]ColorItem, len(colors))
	for i, c := range colors {
		items[i] = ColorItem{ID: strconv.Itoa(i), Color: c}
	}
	return items
}

// AIGeneratedText holds the generated palette title and description
type AIGeneratedText struct {
	Description string `json:"description"`
	Title       string `json:"title"`
}

// LaunchContext is the payload handed from the generation grid to the
// save form.
type LaunchContext struct {
	AIText         *AIGeneratedText `json:"AItext,omitempty"`
	SelectedColors []ColorItem      `json:"selectedColors,omitempty"`
}

// PaletteFormFields is the full save-form snapshot. Colors[i] backs the
// field color{i+1}.
type PaletteFormFields struct {
	Colors      []string
	Description string
	EditID      string
	Keywords    []string
	Mode        Mode
	Name        string
}

// DefaultFormFields returns the cleared form snapshot: one empty color field
func DefaultFormFields() PaletteFormFields {
	return PaletteFormFields{
		Colors:   []string{""},
		Keywords: []string{},
		Mode:     DefaultMode,
	}
}

// Clone returns a deep copy of the snapshot
func (f PaletteFormFields) Clone() PaletteFormFields {
	out := f
	out.Colors = append([]string(nil), f.Colors...)
	out.Keywords = append([]string(nil), f.Keywords...)
	return out
}

// IsEditing reports whether the snapshot targets an existing palette
func (f PaletteFormFields) IsEditing() bool {
	return f.EditID != ""
}

// CompactColors returns the ordered non-empty color values
func CompactColors(colors []string) []string {
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// MarshalJSON writes colors as color1..colorN keys, the shape the save
// form receives as draft values.
func (f PaletteFormFields) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"description": f.Description,
		"keywords":    nonNil(f.Keywords),
		"mode":        f.Mode,
		"name":        f.Name,
	}
	if f.EditID != "" {
		m["editId"] = f.EditID
	}
	for i, c := range f.Colors {
		m[colorKey(i+1)] = c
	}
	return json.Marshal(m)
}

// UnmarshalJSON reads the color1..colorN keys back into Colors
func (f *PaletteFormFields) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var out PaletteFormFields
	colors := make(map[int]string)
	for key, value := range raw {
		var err error
		switch key {
		case "name":
			err = json.Unmarshal(value, &out.Name)
		case "description":
			err = json.Unmarshal(value, &out.Description)
		case "mode":
			err = json.Unmarshal(value, &out.Mode)
		case "keywords":
			err = json.Unmarshal(value, &out.Keywords)
		case "editId":
			err = json.Unmarshal(value, &out.EditID)
		default:
			n, ok := parseColorKey(key)
			if !ok {
				continue
			}
			var c string
			err = json.Unmarshal(value, &c)
			colors[n] = c
		}
		if err != nil {
			return fmt.Errorf("invalid form field %q: %w", key, err)
		}
	}

	indexes := make([]int, 0, len(colors))
	for n := range colors {
		indexes = append(indexes, n)
	}
	sort.Ints(indexes)
	if len(indexes) > 0 {
		out.Colors = make([]string, indexes[len(indexes)-1])
		for _, n := range indexes {
			out.Colors[n-1] = colors[n]
		}
	}
	if out.Keywords == nil {
		out.Keywords = []string{}
	}

	*f = out
	return nil
}

func colorKey(n int) string {
	return "color" + strconv.Itoa(n)
}

func parseColorKey(key string) (int, bool) {
	rest, ok := strings.CutPrefix(key, "color")
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > MaxColorFields {
		return 0, false
	}
	return n, true
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
