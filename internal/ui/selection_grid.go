package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tinta/internal/domain"
	"tinta/internal/form"
	"tinta/internal/theme"
)

// SelectionGrid shows generated colors and lets the user pick the ones to
// save
type SelectionGrid struct {
	Completed bool
	cursor    int
	keys      *KeyMap
	notice    string
	selection *form.Selection
	text      domain.AIGeneratedText
	width     int
}

// NewSelectionGrid creates a grid over items with nothing selected
func NewSelectionGrid(keys *KeyMap, items []domain.ColorItem, text domain.AIGeneratedText) *SelectionGrid {
	return &SelectionGrid{
		keys:      keys,
		selection: form.NewSelection(items),
		text:      text,
		width:     80,
	}
}

// Launch builds the save form hand-off for the current selection
func (g *SelectionGrid) Launch() domain.LaunchContext {
	return g.selection.LaunchContext(g.text)
}

func (g *SelectionGrid) Init() tea.Cmd {
	return nil
}

func (g *SelectionGrid) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	items := g.selection.Items()
	g.notice = ""

	switch {
	case key.Matches(keyMsg, g.keys.Selection.Toggle.Binding):
		if g.cursor < len(items) {
			g.selection.Toggle(items[g.cursor])
		}

	case key.Matches(keyMsg, g.keys.Selection.SelectAll.Binding):
		g.selection.SelectAll()

	case key.Matches(keyMsg, g.keys.Selection.ClearSelection.Binding):
		g.selection.Clear()

	case key.Matches(keyMsg, g.keys.Selection.SaveSelection.Binding):
		if !g.selection.AnySelected() {
			g.notice = "Select at least one color first"
			return g, nil
		}
		g.Completed = true

	case keyMsg.String() == "left", keyMsg.String() == "h", keyMsg.String() == "up":
		if g.cursor > 0 {
			g.cursor--
		}

	case keyMsg.String() == "right", keyMsg.String() == "l", keyMsg.String() == "down":
		if g.cursor < len(items)-1 {
			g.cursor++
		}
	}

	return g, nil
}

func (g *SelectionGrid) View() string {
	items := g.selection.Items()
	colors := make([]string, len(items))
	for i, item := range items {
		colors[i] = item.Color
	}

	var b strings.Builder
	if g.text.Title != "" {
		b.WriteString(theme.SubtitleStyle.Render(g.text.Title) + "\n")
	}
	if g.text.Description != "" {
		b.WriteString(theme.PaletteDescStyle.Render(g.text.Description) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(renderSwatchGrid(colors, g.width, func(i int, color string) string {
		mark := "  "
		if g.selection.IsSelected(items[i]) {
			mark = "✓ "
		}
		label := mark + color
		if i == g.cursor {
			label = "›" + label
		}
		return label
	}))

	b.WriteString("\n\n" + theme.HelpLabelStyle.Render(fmt.Sprintf("%d of %d selected", g.selection.Count(), len(items))))
	if g.notice != "" {
		b.WriteString("\n" + theme.WarningStyle.Render(g.notice))
	}

	help := fmt.Sprintf("%s: toggle • %s: select all • %s: clear • %s: save %d colors as palette • esc: back",
		g.keys.Selection.Toggle.Binding.Help().Key,
		g.keys.Selection.SelectAll.Binding.Help().Key,
		g.keys.Selection.ClearSelection.Binding.Help().Key,
		g.keys.Selection.SaveSelection.Binding.Help().Key,
		g.selection.Count())
	b.WriteString("\n" + theme.HelpStyle.Render(formatHelpLine(help)))
	return b.String()
}
