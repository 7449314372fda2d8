package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tinta/internal/domain"
)

func TestInitialValues_Defaults(t *testing.T) {
	assert.Equal(t, domain.DefaultFormFields(), InitialValues(nil, nil))
}

func TestInitialValues_DraftWins(t *testing.T) {
	draft := &domain.PaletteFormFields{
		Colors: []string{"#111", "#222"},
		Name:   "Draft",
	}
	launch := &domain.LaunchContext{
		AIText:         &domain.AIGeneratedText{Title: "Generated"},
		SelectedColors: domain.NewColorItems([]string{"#abc"}),
	}

	values := InitialValues(draft, launch)

	assert.Equal(t, "Draft", values.Name)
	assert.Equal(t, []string{"#111", "#222"}, values.Colors)
	assert.Equal(t, domain.DefaultMode, values.Mode)
	assert.NotNil(t, values.Keywords)

	values.Colors[0] = "#changed"
	assert.Equal(t, "#111", draft.Colors[0], "draft is not aliased")
}

func TestInitialValues_LaunchContext(t *testing.T) {
	launch := &domain.LaunchContext{
		AIText: &domain.AIGeneratedText{
			Description: "Calm blues",
			Title:       "Harbor",
		},
		SelectedColors: domain.NewColorItems([]string{"#001", "#002", "#003"}),
	}

	values := InitialValues(nil, launch)

	assert.Equal(t, "Harbor", values.Name)
	assert.Equal(t, "Calm blues", values.Description)
	assert.Equal(t, []string{"#001", "#002", "#003"}, values.Colors)
}

func TestInitialValues_LaunchContextCapsColors(t *testing.T) {
	colors := make([]string, domain.MaxColorFields+4)
	for i := range colors {
		colors[i] = "#fff"
	}

	values := InitialValues(nil, &domain.LaunchContext{SelectedColors: domain.NewColorItems(colors)})

	assert.Len(t, values.Colors, domain.MaxColorFields)
	assert.Empty(t, values.Name)
}

func TestInitialValues_EmptySelectionUsesDefaults(t *testing.T) {
	values := InitialValues(nil, &domain.LaunchContext{
		AIText: &domain.AIGeneratedText{Title: "Ignored"},
	})
	assert.Equal(t, domain.DefaultFormFields(), values)
}
