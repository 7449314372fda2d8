package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidateName checks the required palette name
func ValidateName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "name is required"
	}
	if utf8.RuneCountInString(trimmed) > NameMaxLength {
		return fmt.Sprintf("name must be at most %d characters", NameMaxLength)
	}
	return ""
}

// ValidateDescription checks the optional description length
func ValidateDescription(description string) string {
	if utf8.RuneCountInString(strings.TrimSpace(description)) > DescriptionMaxLength {
		return fmt.Sprintf("description must be at most %d characters", DescriptionMaxLength)
	}
	return ""
}

// ValidateColor checks one color field. The first field is required.
func ValidateColor(index int, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		if index == 1 {
			return "at least one color is required"
		}
		return ""
	}
	if !IsValidHexColor(value) {
		return fmt.Sprintf("%q is not a valid hex color (e.g. #FF5733 or #F57)", value)
	}
	return ""
}

// ValidateFormFields validates a snapshot restricted to the first
// colorCount color fields. Returns nil when everything passes.
func ValidateFormFields(f PaletteFormFields, colorCount int) *ValidationError {
	verr := NewValidationError()

	if msg := ValidateName(f.Name); msg != "" {
		verr.Add("name", msg)
	}
	if msg := ValidateDescription(f.Description); msg != "" {
		verr.Add("description", msg)
	}
	if !f.Mode.Valid() {
		verr.Add("mode", fmt.Sprintf("mode must be %s or %s", ModeLight, ModeDark))
	}

	if colorCount > len(f.Colors) {
		colorCount = len(f.Colors)
	}
	valid := 0
	for i := 0; i < colorCount; i++ {
		value := strings.TrimSpace(f.Colors[i])
		if value == "" {
			continue
		}
		if msg := ValidateColor(i+1, value); msg != "" {
			verr.Add(colorKey(i+1), msg)
			continue
		}
		valid++
	}
	if valid == 0 {
		verr.Add(colorKey(1), ErrNoValidColors.Error())
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
