package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tinta/internal/domain"
	"tinta/internal/theme"
)

// maxVisibleActions is the number of menu rows shown at once
const maxVisibleActions = 6

// ActionMenu is a searchable list of every action, anchored to the bottom of
// the palette list.
type ActionMenu struct {
	actions       []KeyDefinition // Filtered actions
	allActions    []KeyDefinition
	Completed     bool
	filterInput   textinput.Model
	keys          *KeyMap
	lastQuery     string
	palette       *domain.SavedPalette
	Result        ActionMenuResult
	selectedIndex int
	width         int
}

// ActionMenuResult contains the result of the action menu interaction.
type ActionMenuResult struct {
	Action    *KeyDefinition
	Cancelled bool
}

// NewActionMenu creates the action menu. palette is the palette under the
// list cursor and can be nil.
func NewActionMenu(palette *domain.SavedPalette, keys *KeyMap) *ActionMenu {
	actions := GetMenuActions()

	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.PromptStyle = theme.FilterPromptStyle
	ti.Cursor.Style = theme.FilterCursorStyle
	ti.Placeholder = "type to filter"
	ti.PlaceholderStyle = theme.DimmedStyle
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40

	return &ActionMenu{
		actions:     actions,
		allActions:  actions,
		filterInput: ti,
		keys:        keys,
		palette:     palette,
	}
}

func (am *ActionMenu) Init() tea.Cmd {
	return textinput.Blink
}

func (am *ActionMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		am.width = msg.Width
		return am, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, am.keys.Navigation.ClearFilter.Binding, am.keys.Application.ForceQuit.Binding):
			am.Completed = true
			am.Result.Cancelled = true
			return am, nil

		case msg.Type == tea.KeyEnter:
			if am.selectedIndex < len(am.actions) {
				am.Completed = true
				am.Result.Action = &am.actions[am.selectedIndex]
			}
			return am, nil

		case msg.Type == tea.KeyUp:
			if am.selectedIndex > 0 {
				am.selectedIndex--
			}
			return am, nil

		case msg.Type == tea.KeyDown:
			if am.selectedIndex < len(am.actions)-1 {
				am.selectedIndex++
			}
			return am, nil
		}
	}

	var cmd tea.Cmd
	am.filterInput, cmd = am.filterInput.Update(msg)
	am.filterActions()

	return am, cmd
}

// Dispatch turns the picked action into its message. Returns nil when
// nothing was picked or the action needs a palette and none is selected.
func (am *ActionMenu) Dispatch() tea.Msg {
	if am.Result.Action == nil {
		return nil
	}
	return NewActionDispatcher(am.palette).Dispatch(*am.Result.Action)
}

// View renders the menu as a full-width bottom panel
func (am *ActionMenu) View() string {
	width := am.width
	if width <= 0 {
		width = 80
	}

	header := theme.MenuTitleStyle.Render("Actions")
	if am.palette != nil {
		header += " " + theme.DimmedStyle.Render("(selected: "+am.palette.Name+")")
	}

	var items []string
	maxHelpLen := am.maxHelpLen()
	start, end := am.visibleRange()
	hasMoreAbove := start > 0
	hasMoreBelow := end < len(am.actions)

	for i := start; i < end; i++ {
		def := am.actions[i]

		var prefix string
		switch {
		case i == am.selectedIndex:
			prefix = "> "
		case i == start && hasMoreAbove:
			prefix = theme.ScrollIndicatorStyle.Render("↑ ")
		case i == end-1 && hasMoreBelow:
			prefix = theme.ScrollIndicatorStyle.Render("↓ ")
		default:
			prefix = "  "
		}

		help := padRight(capitalizeFirst(def.Help), maxHelpLen)
		items = append(items, prefix+
			theme.PaletteItemStyle.Render(help)+
			theme.MenuShortcutStyle.Render("  "+am.shortcut(def)))
	}

	if len(items) == 0 {
		items = append(items, theme.PaletteDescStyle.Render("  No matching actions"))
	}
	for len(items) < maxVisibleActions {
		items = append(items, "")
	}

	inner := header + "\n\n" + am.filterInput.View() + "\n\n" + strings.Join(items, "\n")
	return theme.MenuBorderStyle.Width(width - 2).Render(inner)
}

// Height returns the rendered height used for bottom anchoring
func (am *ActionMenu) Height() int {
	// border (2) + header + blank + filter + blank + rows
	return 6 + maxVisibleActions
}

// shortcut returns the first configured key for def
func (am *ActionMenu) shortcut(def KeyDefinition) string {
	keys := def.Defaults
	if len(am.keys.Custom[def.Name]) > 0 {
		keys = am.keys.Custom[def.Name]
	}
	if len(keys) == 0 {
		return ""
	}
	return displayKeys(keys)[0]
}

func (am *ActionMenu) filterActions() {
	query := strings.ToLower(am.filterInput.Value())
	if query == am.lastQuery {
		return
	}
	am.lastQuery = query

	if query == "" {
		am.actions = am.allActions
		am.selectedIndex = 0
		return
	}

	var filtered []KeyDefinition
	for _, def := range am.allActions {
		if fuzzyMatch(query, def.Help) {
			filtered = append(filtered, def)
		}
	}
	am.actions = filtered

	if am.selectedIndex >= len(am.actions) {
		am.selectedIndex = 0
	}
}

// fuzzyMatch checks if all characters in query appear in order in target.
func fuzzyMatch(query, target string) bool {
	target = strings.ToLower(target)
	queryRunes := []rune(query)
	qi := 0
	for _, c := range target {
		if qi < len(queryRunes) && c == queryRunes[qi] {
			qi++
		}
	}
	return qi == len(queryRunes)
}

// maxHelpLen uses allActions to keep alignment stable while filtering
func (am *ActionMenu) maxHelpLen() int {
	maxLen := 0
	for _, def := range am.allActions {
		maxLen = max(maxLen, len(def.Help))
	}
	return maxLen
}

// visibleRange keeps the selected row in view
func (am *ActionMenu) visibleRange() (int, int) {
	total := len(am.actions)
	if total <= maxVisibleActions {
		return 0, total
	}

	start := max(am.selectedIndex-maxVisibleActions/2, 0)
	end := start + maxVisibleActions
	if end > total {
		end = total
		start = end - maxVisibleActions
	}
	return start, end
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
