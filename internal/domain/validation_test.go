package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	assert.NotEmpty(t, ValidateName("   "))
	assert.NotEmpty(t, ValidateName(strings.Repeat("x", NameMaxLength+1)))
	assert.Empty(t, ValidateName(strings.Repeat("x", NameMaxLength)))
}

func TestValidateDescription(t *testing.T) {
	assert.Empty(t, ValidateDescription(""))
	assert.NotEmpty(t, ValidateDescription(strings.Repeat("d", DescriptionMaxLength+1)))
}

func TestValidateColor(t *testing.T) {
	assert.NotEmpty(t, ValidateColor(1, ""), "first color is required")
	assert.Empty(t, ValidateColor(2, ""))
	assert.NotEmpty(t, ValidateColor(2, "red"))
	assert.Empty(t, ValidateColor(3, "#abc"))
}

func TestValidateFormFields(t *testing.T) {
	tests := []struct {
		name       string
		fields     PaletteFormFields
		count      int
		wantFields []string
	}{
		{
			name:   "valid",
			fields: PaletteFormFields{Name: "Ocean", Mode: ModeDark, Colors: []string{"#001122", ""}},
			count:  2,
		},
		{
			name:       "missing name and colors",
			fields:     PaletteFormFields{Mode: ModeLight, Colors: []string{""}},
			count:      1,
			wantFields: []string{"name", "color1"},
		},
		{
			name:       "bad color and mode",
			fields:     PaletteFormFields{Name: "x", Mode: "sepia", Colors: []string{"#fff", "oops"}},
			count:      2,
			wantFields: []string{"mode", "color2"},
		},
		{
			name:   "inactive field ignored",
			fields: PaletteFormFields{Name: "x", Mode: ModeLight, Colors: []string{"#fff", "oops"}},
			count:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateFormFields(tt.fields, tt.count)
			if len(tt.wantFields) == 0 {
				assert.Nil(t, verr)
				return
			}
			require.NotNil(t, verr)
			assert.Len(t, verr.Fields, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.NotEmpty(t, verr.Field(f), f)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	verr := NewValidationError()
	verr.Add("name", "name is required")
	verr.Add("name", "ignored")
	verr.Add("color1", "bad")

	assert.Equal(t, "invalid palette: color1: bad; name: name is required", verr.Error())
}
