package form

import (
	"strings"

	"tinta/internal/domain"
)

// Values is the form value store. It keeps a slot for every possible color
// field so values survive while a field is inactive, runs the field
// validators and exposes get/set/reset.
type Values struct {
	colors      [domain.MaxColorFields]string
	description string
	editID      string
	errors      map[FieldID]string
	keywords    []string
	mode        domain.Mode
	name        string
}

// NewValues creates a store seeded with initial
func NewValues(initial domain.PaletteFormFields) *Values {
	v := &Values{}
	v.Reset(initial)
	return v
}

// Reset replaces every value with the given snapshot and clears errors.
// Color slots beyond the snapshot are emptied.
func (v *Values) Reset(fields domain.PaletteFormFields) {
	v.colors = [domain.MaxColorFields]string{}
	for i, c := range fields.Colors {
		if i >= domain.MaxColorFields {
			break
		}
		v.colors[i] = c
	}
	v.description = fields.Description
	v.editID = fields.EditID
	v.errors = make(map[FieldID]string)
	v.keywords = append([]string{}, fields.Keywords...)
	v.mode = fields.Mode
	if v.mode == "" {
		v.mode = domain.DefaultMode
	}
	v.name = fields.Name
}

// Get returns the string value of a field. Keywords are joined by ", ".
func (v *Values) Get(id FieldID) string {
	if n, ok := ParseColorFieldID(id); ok {
		return v.colors[n-1]
	}
	switch id {
	case FieldName:
		return v.name
	case FieldDescription:
		return v.description
	case FieldMode:
		return string(v.mode)
	case FieldKeywords:
		return strings.Join(v.keywords, ", ")
	}
	return ""
}

// Set writes a string field and clears its validation error. Unknown ids
// and the keywords field are ignored; use SetKeywords for the list.
func (v *Values) Set(id FieldID, value string) {
	if n, ok := ParseColorFieldID(id); ok {
		v.colors[n-1] = value
		delete(v.errors, id)
		return
	}
	switch id {
	case FieldName:
		v.name = value
	case FieldDescription:
		v.description = value
	case FieldMode:
		v.mode = domain.Mode(value)
	default:
		return
	}
	delete(v.errors, id)
}

// Keywords returns a copy of the keyword list
func (v *Values) Keywords() []string {
	return append([]string{}, v.keywords...)
}

// SetKeywords replaces the keyword list
func (v *Values) SetKeywords(keywords []string) {
	v.keywords = append([]string{}, keywords...)
	delete(v.errors, FieldKeywords)
}

// Colors returns the values of color1..color{count}
func (v *Values) Colors(count int) []string {
	count = clampCount(count)
	return append([]string{}, v.colors[:count]...)
}

// Snapshot returns the form fields with the first count color fields
func (v *Values) Snapshot(count int) domain.PaletteFormFields {
	return domain.PaletteFormFields{
		Colors:      v.Colors(count),
		Description: v.description,
		EditID:      v.editID,
		Keywords:    v.Keywords(),
		Mode:        v.mode,
		Name:        v.name,
	}
}

// Validate runs every field validator over the active fields, records the
// per-field messages and returns them (nil when valid).
func (v *Values) Validate(count int) *domain.ValidationError {
	verr := domain.ValidateFormFields(v.Snapshot(count), count)
	v.errors = make(map[FieldID]string)
	if verr == nil {
		return nil
	}
	for field, msg := range verr.Fields {
		v.errors[FieldID(field)] = msg
	}
	return verr
}

// Error returns the last validation message for a field
func (v *Values) Error(id FieldID) string {
	return v.errors[id]
}
