package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tinta/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap) string {
	var content string

	content += theme.HelpGroupStyle.Render("Navigation") + "\n"
	content += renderBinding(keys.Navigation.Up.Binding)
	content += renderBinding(keys.Navigation.Down.Binding)
	content += renderBinding(keys.Navigation.Filter.Binding)
	content += renderBinding(keys.Navigation.ClearFilter.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Palettes") + "\n"
	content += renderBinding(keys.Palette.New.Binding)
	content += renderBinding(keys.Palette.Generate.Binding)
	content += renderBinding(keys.Palette.Preview.Binding)
	content += renderBinding(keys.Palette.Edit.Binding)
	content += renderBinding(keys.Palette.Duplicate.Binding)
	content += renderBinding(keys.Palette.Delete.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Export") + "\n"
	content += renderBinding(keys.Palette.Copy.Binding)
	content += renderBinding(keys.Palette.CopyLink.Binding)
	content += renderBinding(keys.Palette.OpenCoolors.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Palette Form") + "\n"
	content += renderBinding(keys.Form.NextField.Binding)
	content += renderBinding(keys.Form.PrevField.Binding)
	content += renderBinding(keys.Form.AddColor.Binding)
	content += renderBinding(keys.Form.RemoveColor.Binding)
	content += renderBinding(keys.Form.RemoveLastColor.Binding)
	content += renderBinding(keys.Form.CycleMode.Binding)
	content += renderBinding(keys.Form.Preview.Binding)
	content += renderBinding(keys.Form.Clear.Binding)
	content += renderBinding(keys.Form.Submit.Binding)
	content += renderShortcut("enter", "add typed keywords (keywords field)")
	content += renderShortcut("backspace", "remove last keyword (empty keywords field)")
	content += renderShortcut("esc", "close form (new palettes are kept as a draft)")

	content += "\n" + theme.HelpGroupStyle.Render("Generated Colors") + "\n"
	content += renderBinding(keys.Selection.Toggle.Binding)
	content += renderBinding(keys.Selection.SelectAll.Binding)
	content += renderBinding(keys.Selection.ClearSelection.Binding)
	content += renderBinding(keys.Selection.SaveSelection.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Application") + "\n"
	content += renderBinding(keys.Application.Actions.Binding)
	content += renderBinding(keys.Application.Help.Binding)
	content += renderBinding(keys.Application.Quit.Binding)
	content += renderBinding(keys.Application.ForceQuit.Binding)

	return content
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, Footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, q or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}
