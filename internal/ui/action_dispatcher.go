package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tinta/internal/domain"
)

// ActionDispatcher maps key definitions to UI messages.
// This keeps the action menu decoupled from specific message types.
type ActionDispatcher struct {
	palette *domain.SavedPalette
}

// NewActionDispatcher creates a new action dispatcher.
// palette can be nil if the list is empty.
func NewActionDispatcher(palette *domain.SavedPalette) *ActionDispatcher {
	return &ActionDispatcher{palette: palette}
}

// Dispatch returns the appropriate tea.Msg for the given key definition.
// Returns nil if the action cannot be dispatched.
func (d *ActionDispatcher) Dispatch(def KeyDefinition) tea.Msg {
	if def.Msg == nil {
		return nil
	}

	if paletteMsg, ok := def.Msg.(PaletteAwareMsg); ok {
		if d.palette == nil {
			return nil
		}
		return paletteMsg.WithPalette(*d.palette)
	}

	return def.Msg
}
