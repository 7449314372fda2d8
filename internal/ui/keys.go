package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"tinta/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Custom      config.KeyBindingsConfig // User overrides, nil when defaults are used
	Form        FormKeys
	Navigation  NavigationKeys
	Palette     PaletteKeys
	Selection   SelectionKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// A nil keysConfig uses the default bindings.
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, keysConfig),
		Custom:      keysConfig,
		Form:        newFormKeys(defaults, keysConfig),
		Navigation:  newNavigationKeys(defaults, keysConfig),
		Palette:     newPaletteKeys(defaults, keysConfig),
		Selection:   newSelectionKeys(defaults, keysConfig),
	}
}

// ShortHelp returns a curated list of key bindings for the list footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Palette.New.Binding,
		k.Palette.Generate.Binding,
		k.Palette.Preview.Binding,
		k.Palette.Edit.Binding,
		k.Palette.Copy.Binding,
		k.Palette.Delete.Binding,
		k.Navigation.Filter.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// Tips returns the hints shown under the palette list, one per binding
// that has a tip
func (k KeyMap) Tips() []Tip {
	return listTips(
		k.Application.Actions,
		k.Application.Help,
		k.Navigation.Filter,
		k.Palette.Copy,
		k.Palette.CopyLink,
		k.Palette.Delete,
		k.Palette.Duplicate,
		k.Palette.Edit,
		k.Palette.Generate,
		k.Palette.New,
		k.Palette.OpenCoolors,
		k.Palette.Preview,
	)
}

// FormHelp returns the key bindings shown under the save form
func (k KeyMap) FormHelp() []key.Binding {
	return []key.Binding{
		k.Form.Submit.Binding,
		k.Form.AddColor.Binding,
		k.Form.RemoveColor.Binding,
		k.Form.RemoveLastColor.Binding,
		k.Form.Preview.Binding,
		k.Form.Clear.Binding,
		k.Form.CycleMode.Binding,
	}
}
