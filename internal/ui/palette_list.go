package ui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tinta/internal/domain"
	"tinta/internal/theme"
)

const escTimeout = 500 * time.Millisecond

// PaletteItem implements list.Item and list.DefaultItem
type PaletteItem struct {
	Palette domain.SavedPalette
}

// FilterValue implements list.Item. Search covers the name, description
// and keywords.
func (i PaletteItem) FilterValue() string {
	return i.Palette.Name + " " + i.Palette.Description + " " + strings.Join(i.Palette.Keywords, " ")
}

// Title implements list.DefaultItem
func (i PaletteItem) Title() string {
	return i.Palette.Name
}

// Description implements list.DefaultItem
func (i PaletteItem) Description() string {
	return i.Palette.Description
}

// PaletteDelegate renders palette items on two lines
type PaletteDelegate struct{}

// Height implements list.ItemDelegate
func (d PaletteDelegate) Height() int {
	return 2
}

// Spacing implements list.ItemDelegate
func (d PaletteDelegate) Spacing() int {
	return 1
}

// Update implements list.ItemDelegate
func (d PaletteDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d PaletteDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(PaletteItem)
	if !ok {
		return
	}
	p := item.Palette

	cursor := " "
	nameStyle := theme.PaletteItemStyle
	if index == m.Index() {
		cursor = ">"
		nameStyle = theme.PaletteItemSelectedStyle
	}

	line1 := fmt.Sprintf("%s %02d. %s %s %s",
		cursor,
		index+1,
		nameStyle.Render(p.Name),
		theme.ModeStyle(string(p.Mode)).Render(string(p.Mode)),
		theme.Strip(domain.FilterValidColors(p.Colors), 2))

	var details []string
	if p.Description != "" {
		details = append(details, p.Description)
	}
	if len(p.Keywords) > 0 {
		details = append(details, "#"+strings.Join(p.Keywords, " #"))
	}
	line2 := "      " + theme.PaletteDescStyle.Render(truncate.StringWithTail(strings.Join(details, " • "), uint(max(10, m.Width()-8)), "…"))

	fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// PaletteList is the palette list component. Actions are reported to the
// parent model as messages.
type PaletteList struct {
	currentTip    *Tip
	devMode       bool
	escPressCount int
	escPressTime  time.Time
	height        int
	keys          *KeyMap
	list          list.Model
	width         int
}

// NewPaletteList creates an empty palette list
func NewPaletteList(keys *KeyMap, devMode bool) *PaletteList {
	l := list.New(nil, PaletteDelegate{}, 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	var tip *Tip
	if allTips := keys.Tips(); len(allTips) > 0 {
		tip = &allTips[rand.Intn(len(allTips))]
	}

	return &PaletteList{
		currentTip: tip,
		devMode:    devMode,
		keys:       keys,
		list:       l,
	}
}

// SetPalettes replaces the list items
func (pl *PaletteList) SetPalettes(palettes []domain.SavedPalette) tea.Cmd {
	items := make([]list.Item, len(palettes))
	for i, p := range palettes {
		items[i] = PaletteItem{Palette: p}
	}
	return pl.list.SetItems(items)
}

// SelectID moves the cursor to the palette with id
func (pl *PaletteList) SelectID(id string) {
	for i, item := range pl.list.Items() {
		if pi, ok := item.(PaletteItem); ok && pi.Palette.ID == id {
			pl.list.Select(i)
			return
		}
	}
}

// Selected returns the palette under the cursor
func (pl *PaletteList) Selected() (domain.SavedPalette, bool) {
	item, ok := pl.list.SelectedItem().(PaletteItem)
	if !ok {
		return domain.SavedPalette{}, false
	}
	return item.Palette, true
}

// SetSize sets the list dimensions
func (pl *PaletteList) SetSize(width, height int) {
	pl.width = width
	pl.height = height
	pl.list.SetSize(width, max(height, 4))
}

func (pl *PaletteList) Init() tea.Cmd {
	return nil
}

func (pl *PaletteList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		pl.list, cmd = pl.list.Update(msg)
		return pl, cmd
	}

	// When actively filtering, bypass shortcuts to allow typing
	if pl.list.FilterState() == list.Filtering {
		if keyMsg.String() == "esc" {
			now := time.Now()
			if now.Sub(pl.escPressTime) < escTimeout && pl.escPressCount >= 1 {
				pl.list.ResetFilter()
				pl.escPressCount = 0
				return pl, nil
			}
			pl.escPressCount = 1
			pl.escPressTime = now
		}

		var cmd tea.Cmd
		pl.list, cmd = pl.list.Update(msg)
		return pl, cmd
	}

	switch {
	case key.Matches(keyMsg, pl.keys.Application.Quit.Binding, pl.keys.Application.ForceQuit.Binding):
		return pl, emit(QuitMsg{})

	case key.Matches(keyMsg, pl.keys.Application.Help.Binding):
		return pl, emit(ShowHelpMsg{})

	case key.Matches(keyMsg, pl.keys.Application.Actions.Binding):
		return pl, emit(ShowActionMenuMsg{})

	case key.Matches(keyMsg, pl.keys.Palette.New.Binding):
		return pl, emit(NewPaletteMsg{})

	case key.Matches(keyMsg, pl.keys.Palette.Generate.Binding):
		return pl, emit(GenerateMsg{})

	case key.Matches(keyMsg, pl.keys.Palette.Preview.Binding):
		return pl, pl.selectedAction(PreviewPaletteMsg{})

	case key.Matches(keyMsg, pl.keys.Palette.Edit.Binding):
		return pl, pl.selectedAction(EditPaletteMsg{})

	case key.Matches(keyMsg, pl.keys.Palette.Delete.Binding):
		return pl, pl.selectedAction(DeletePaletteMsg{})

	case key.Matches(keyMsg, pl.keys.Palette.Duplicate.Binding):
		return pl, pl.selectedAction(DuplicatePaletteMsg{})

	case key.Matches(keyMsg, pl.keys.Palette.Copy.Binding):
		return pl, pl.selectedAction(CopyPaletteMsg{})

	case key.Matches(keyMsg, pl.keys.Palette.CopyLink.Binding):
		return pl, pl.selectedAction(CopyLinkMsg{})

	case key.Matches(keyMsg, pl.keys.Palette.OpenCoolors.Binding):
		return pl, pl.selectedAction(OpenCoolorsMsg{})

	case key.Matches(keyMsg, pl.keys.Navigation.ClearFilter.Binding):
		if pl.list.FilterState() != list.Unfiltered {
			pl.list.ResetFilter()
			return pl, nil
		}
	}

	var cmd tea.Cmd
	pl.list, cmd = pl.list.Update(msg)
	return pl, cmd
}

// selectedAction binds proto to the selected palette
func (pl *PaletteList) selectedAction(proto PaletteAwareMsg) tea.Cmd {
	p, ok := pl.Selected()
	if !ok {
		return nil
	}
	return emit(proto.WithPalette(p))
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (pl *PaletteList) View() string {
	var s string
	s += renderHeader(pl.devMode, "")

	helpText := theme.HelpShortcutStyle.Render(pl.keys.Application.Help.Binding.Help().Key) + theme.HelpLabelStyle.Render(" shortcuts")
	if len(pl.list.Items()) > 0 {
		helpText = theme.HelpLabelStyle.Render(fmt.Sprintf("%d palettes  ", len(pl.list.Items()))) + helpText
	}
	s += theme.HelpStyle.Render(helpText) + "\n"

	if len(pl.list.Items()) == 0 {
		s += theme.HelpLabelStyle.Render("No palettes yet. Press ") +
			theme.HelpShortcutStyle.Render(pl.keys.Palette.New.Binding.Help().Key) +
			theme.HelpLabelStyle.Render(" to create one or ") +
			theme.HelpShortcutStyle.Render(pl.keys.Palette.Generate.Binding.Help().Key) +
			theme.HelpLabelStyle.Render(" to generate one.") + "\n"
	} else {
		s += pl.list.View()
	}

	help := make([]string, 0, 9)
	for _, b := range pl.keys.ShortHelp() {
		help = append(help, b.Help().Key+": "+b.Help().Desc)
	}
	footer := formatHelpLine(strings.Join(help, " • "))
	if pl.currentTip != nil {
		footer += "\n" + RenderTip(*pl.currentTip)
	}

	return lipgloss.JoinVertical(lipgloss.Left, s, theme.HelpStyle.Render(footer))
}
