package ui

import (
	"tinta/internal/config"
)

// NavigationKeys defines key bindings for navigating the palette list
type NavigationKeys struct {
	ClearFilter KeyWithTip
	Down        KeyWithTip
	Filter      KeyWithTip
	Up          KeyWithTip
}

// newNavigationKeys creates navigation key bindings
func newNavigationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		ClearFilter: buildBinding("clear_filter", defaults, customKeys),
		Down:        buildBinding("down", defaults, customKeys),
		Filter:      buildBinding("filter", defaults, customKeys),
		Up:          buildBinding("up", defaults, customKeys),
	}
}
