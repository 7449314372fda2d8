package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tinta/internal/domain"
)

func TestSelection(t *testing.T) {
	items := domain.NewColorItems([]string{"#a00", "#0a0", "#00a"})
	s := NewSelection(items)

	assert.False(t, s.AnySelected())

	s.Toggle(items[2])
	s.Toggle(items[0])
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, []domain.ColorItem{items[0], items[2]}, s.Selected(), "display order is kept")

	s.Toggle(items[0])
	assert.False(t, s.IsSelected(items[0]))

	s.SelectAll()
	assert.True(t, s.AllSelected())

	s.Clear()
	assert.False(t, s.AnySelected())
}

func TestSelection_LaunchContext(t *testing.T) {
	items := domain.NewColorItems([]string{"#a00", "#0a0"})
	s := NewSelection(items)
	s.Toggle(items[1])

	launch := s.LaunchContext(domain.AIGeneratedText{Title: "Forest"})

	assert.Equal(t, "Forest", launch.AIText.Title)
	assert.Equal(t, []domain.ColorItem{items[1]}, launch.SelectedColors)
}
