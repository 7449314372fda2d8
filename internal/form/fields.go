package form

import (
	"strconv"
	"strings"

	"tinta/internal/domain"
)

// FieldID identifies a form input. The empty FieldID means "no field".
type FieldID string

// Fixed field ids
const (
	FieldDescription FieldID = "description"
	FieldKeywords    FieldID = "keywords"
	FieldMode        FieldID = "mode"
	FieldName        FieldID = "name"
	FieldNone        FieldID = ""
)

const colorPrefix = "color"

// ColorFieldID returns the id of the n-th (1-based) color field
func ColorFieldID(n int) FieldID {
	return FieldID(colorPrefix + strconv.Itoa(n))
}

// ParseColorFieldID extracts n from "color{n}". It returns false for fixed
// fields, malformed or non-canonical ids ("color01", "color+1") and
// indexes outside [1, MaxColorFields].
func ParseColorFieldID(id FieldID) (int, bool) {
	rest, ok := strings.CutPrefix(string(id), colorPrefix)
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > domain.MaxColorFields || ColorFieldID(n) != id {
		return 0, false
	}
	return n, true
}

// IsColorField reports whether id names a color field
func (id FieldID) IsColorField() bool {
	_, ok := ParseColorFieldID(id)
	return ok
}
