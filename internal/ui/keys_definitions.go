package ui

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults  []string
	Help      string
	InMenu    bool    // Listed in the action menu
	Msg       tea.Msg // Message sent when picked from the action menu
	Name      string
	TipFormat string
}

// AllKeyDefinitions contains all configurable key bindings.
// This is the single source of truth for key names, defaults, help text, and tips.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "actions", Defaults: []string{":"}, Help: "open action menu", TipFormat: "press %s to search all actions"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts", TipFormat: "press %s to see all shortcuts", InMenu: true, Msg: ShowHelpMsg{}},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application", InMenu: true, Msg: QuitMsg{}},

	// Navigation keys
	{Name: "clear_filter", Defaults: []string{"esc"}, Help: "clear search"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next palette"},
	{Name: "filter", Defaults: []string{"/"}, Help: "search palettes", TipFormat: "press %s to search by name, description or keyword"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous palette"},

	// Palette keys
	{Name: "copy", Defaults: []string{"c"}, Help: "copy colors", TipFormat: "press %s to copy colors as JSON, CSS or text", InMenu: true, Msg: CopyPaletteMsg{}},
	{Name: "copy_link", Defaults: []string{"l"}, Help: "copy coolors.co link", InMenu: true, Msg: CopyLinkMsg{}},
	{Name: "delete", Defaults: []string{"d"}, Help: "delete palette", InMenu: true, Msg: DeletePaletteMsg{}},
	{Name: "duplicate", Defaults: []string{"D"}, Help: "duplicate palette", TipFormat: "press %s to duplicate a palette", InMenu: true, Msg: DuplicatePaletteMsg{}},
	{Name: "edit", Defaults: []string{"e"}, Help: "edit palette", InMenu: true, Msg: EditPaletteMsg{}},
	{Name: "generate", Defaults: []string{"g"}, Help: "generate colors with AI", TipFormat: "press %s to generate a palette from a prompt", InMenu: true, Msg: GenerateMsg{}},
	{Name: "new", Defaults: []string{"n"}, Help: "create palette", InMenu: true, Msg: NewPaletteMsg{}},
	{Name: "open_coolors", Defaults: []string{"o"}, Help: "open on coolors.co", InMenu: true, Msg: OpenCoolorsMsg{}},
	{Name: "preview", Defaults: []string{"enter", "p"}, Help: "preview colors", InMenu: true, Msg: PreviewPaletteMsg{}},

	// Form keys
	{Name: "add_color", Defaults: []string{"ctrl+n"}, Help: "add color field", TipFormat: "press %s in the form to add a color"},
	{Name: "clear_form", Defaults: []string{"ctrl+l"}, Help: "clear form"},
	{Name: "cycle_mode", Defaults: []string{"ctrl+t"}, Help: "toggle light/dark mode"},
	{Name: "next_field", Defaults: []string{"tab", "down"}, Help: "next field"},
	{Name: "preview_form", Defaults: []string{"ctrl+p"}, Help: "preview form colors"},
	{Name: "prev_field", Defaults: []string{"shift+tab", "up"}, Help: "previous field"},
	{Name: "remove_color", Defaults: []string{"ctrl+r"}, Help: "remove focused color field", TipFormat: "press %s to remove the color you are editing"},
	{Name: "remove_last_color", Defaults: []string{"ctrl+x"}, Help: "remove last color field"},
	{Name: "submit", Defaults: []string{"ctrl+s"}, Help: "save palette"},

	// Selection keys
	{Name: "clear_selection", Defaults: []string{"x"}, Help: "clear selection"},
	{Name: "save_selection", Defaults: []string{"s"}, Help: "save selected colors as palette"},
	{Name: "select_all", Defaults: []string{"a"}, Help: "select all colors"},
	{Name: "toggle_select", Defaults: []string{" ", "enter"}, Help: "select/deselect color"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// GetMenuActions returns the definitions listed in the action menu, in
// definition order.
func GetMenuActions() []KeyDefinition {
	var actions []KeyDefinition
	for _, def := range AllKeyDefinitions {
		if def.InMenu {
			actions = append(actions, def)
		}
	}
	return actions
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
