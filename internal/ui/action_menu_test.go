package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinta/internal/domain"
)

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		query  string
		target string
		want   bool
	}{
		{query: "", target: "delete palette", want: true},
		{query: "dup", target: "duplicate palette", want: true},
		{query: "cpl", target: "copy coolors.co link", want: true},
		{query: "zz", target: "copy colors", want: false},
		{query: "ec", target: "copy colors", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.query+"/"+tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, fuzzyMatch(tt.query, tt.target))
		})
	}
}

func TestActionMenu_FilterAndDispatchWithPalette(t *testing.T) {
	keys := NewKeyMap(nil)
	palette := domain.SavedPalette{ID: "p1", Name: "Dusk", Colors: []string{"#112233"}}
	menu := NewActionMenu(&palette, &keys)

	menu.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("duplicate")})
	require.Len(t, menu.actions, 1)

	menu.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, menu.Completed)

	assert.Equal(t, DuplicatePaletteMsg{ID: "p1"}, menu.Dispatch())
}

func TestActionMenu_PaletteActionWithoutSelection(t *testing.T) {
	keys := NewKeyMap(nil)
	menu := NewActionMenu(nil, &keys)

	menu.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("delete")})
	menu.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.True(t, menu.Completed)
	assert.Nil(t, menu.Dispatch())
}

func TestActionMenu_GlobalActionWithoutSelection(t *testing.T) {
	keys := NewKeyMap(nil)
	menu := NewActionMenu(nil, &keys)

	menu.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("generate")})
	menu.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, GenerateMsg{}, menu.Dispatch())
}

func TestActionMenu_EscCancels(t *testing.T) {
	keys := NewKeyMap(nil)
	menu := NewActionMenu(nil, &keys)

	menu.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, menu.Completed)
	assert.True(t, menu.Result.Cancelled)
	assert.Nil(t, menu.Dispatch())
}

func TestActionMenu_NavigationStaysInBounds(t *testing.T) {
	keys := NewKeyMap(nil)
	menu := NewActionMenu(nil, &keys)

	menu.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, menu.selectedIndex)

	for range len(menu.actions) + 2 {
		menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, len(menu.actions)-1, menu.selectedIndex)
}
