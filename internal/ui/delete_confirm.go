package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"tinta/internal/domain"
)

// DeleteConfirmResult contains the result of the delete confirmation
type DeleteConfirmResult struct {
	Confirmed bool
	Palette   domain.SavedPalette
}

// DeleteConfirm asks before a palette is deleted
type DeleteConfirm struct {
	Completed bool
	form      *huh.Form
	result    DeleteConfirmResult
}

// NewDeleteConfirm creates a confirmation for p
func NewDeleteConfirm(p domain.SavedPalette) *DeleteConfirm {
	dc := &DeleteConfirm{
		result: DeleteConfirmResult{Palette: p},
	}

	dc.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", p.Name)).
				Description("This cannot be undone.").
				Affirmative("Delete").
				Negative("Keep").
				Value(&dc.result.Confirmed),
		),
	)
	return dc
}

func (dc *DeleteConfirm) Init() tea.Cmd {
	return dc.form.Init()
}

func (dc *DeleteConfirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			dc.result.Confirmed = false
			dc.Completed = true
			return dc, nil
		}
	}

	form, cmd := dc.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		dc.form = f
	}

	if dc.form.State == huh.StateCompleted {
		dc.Completed = true
		return dc, nil
	}

	return dc, cmd
}

func (dc *DeleteConfirm) View() string {
	if dc.form != nil {
		return dc.form.View()
	}
	return ""
}

// Result returns the confirmation result
func (dc *DeleteConfirm) Result() DeleteConfirmResult {
	return dc.result
}
