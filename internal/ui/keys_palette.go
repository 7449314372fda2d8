package ui

import (
	"tinta/internal/config"
)

// PaletteKeys defines key bindings for palette list actions
type PaletteKeys struct {
	Copy        KeyWithTip
	CopyLink    KeyWithTip
	Delete      KeyWithTip
	Duplicate   KeyWithTip
	Edit        KeyWithTip
	Generate    KeyWithTip
	New         KeyWithTip
	OpenCoolors KeyWithTip
	Preview     KeyWithTip
}

// FormKeys defines key bindings for the palette save form
type FormKeys struct {
	AddColor        KeyWithTip
	Clear           KeyWithTip
	CycleMode       KeyWithTip
	NextField       KeyWithTip
	Preview         KeyWithTip
	PrevField       KeyWithTip
	RemoveColor     KeyWithTip
	RemoveLastColor KeyWithTip
	Submit          KeyWithTip
}

// SelectionKeys defines key bindings for the generated colors grid
type SelectionKeys struct {
	ClearSelection KeyWithTip
	SaveSelection  KeyWithTip
	SelectAll      KeyWithTip
	Toggle         KeyWithTip
}

func newPaletteKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) PaletteKeys {
	return PaletteKeys{
		Copy:        buildBinding("copy", defaults, customKeys),
		CopyLink:    buildBinding("copy_link", defaults, customKeys),
		Delete:      buildBinding("delete", defaults, customKeys),
		Duplicate:   buildBinding("duplicate", defaults, customKeys),
		Edit:        buildBinding("edit", defaults, customKeys),
		Generate:    buildBinding("generate", defaults, customKeys),
		New:         buildBinding("new", defaults, customKeys),
		OpenCoolors: buildBinding("open_coolors", defaults, customKeys),
		Preview:     buildBinding("preview", defaults, customKeys),
	}
}

func newFormKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) FormKeys {
	return FormKeys{
		AddColor:        buildBinding("add_color", defaults, customKeys),
		Clear:           buildBinding("clear_form", defaults, customKeys),
		CycleMode:       buildBinding("cycle_mode", defaults, customKeys),
		NextField:       buildBinding("next_field", defaults, customKeys),
		Preview:         buildBinding("preview_form", defaults, customKeys),
		PrevField:       buildBinding("prev_field", defaults, customKeys),
		RemoveColor:     buildBinding("remove_color", defaults, customKeys),
		RemoveLastColor: buildBinding("remove_last_color", defaults, customKeys),
		Submit:          buildBinding("submit", defaults, customKeys),
	}
}

func newSelectionKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) SelectionKeys {
	return SelectionKeys{
		ClearSelection: buildBinding("clear_selection", defaults, customKeys),
		SaveSelection:  buildBinding("save_selection", defaults, customKeys),
		SelectAll:      buildBinding("select_all", defaults, customKeys),
		Toggle:         buildBinding("toggle_select", defaults, customKeys),
	}
}
