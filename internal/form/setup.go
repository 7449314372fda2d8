package form

import (
	"tinta/internal/domain"
)

// InitialValues computes the values a save form starts with:
//  1. draft values (saved form state, or an edit target) win outright
//  2. a launch context with selected colors fills the colors and the
//     generated title and description
//  3. otherwise the defaults
func InitialValues(draft *domain.PaletteFormFields, launch *domain.LaunchContext) domain.PaletteFormFields {
	values := domain.DefaultFormFields()

	if draft != nil {
		values = draft.Clone()
		if values.Mode == "" {
			values.Mode = domain.DefaultMode
		}
		if values.Keywords == nil {
			values.Keywords = []string{}
		}
		if len(values.Colors) == 0 {
			values.Colors = []string{""}
		}
		if len(values.Colors) > domain.MaxColorFields {
			values.Colors = values.Colors[:domain.MaxColorFields]
		}
		return values
	}

	if launch != nil && len(launch.SelectedColors) > 0 {
		if launch.AIText != nil {
			if launch.AIText.Title != "" {
				values.Name = launch.AIText.Title
			}
			if launch.AIText.Description != "" {
				values.Description = launch.AIText.Description
			}
		}

		n := min(len(launch.SelectedColors), domain.MaxColorFields)
		values.Colors = make([]string, n)
		for i := 0; i < n; i++ {
			values.Colors[i] = launch.SelectedColors[i].Color
		}
	}

	return values
}
