package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinta/internal/config"
)

func TestKeyDefinitions_NamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range AllKeyDefinitions {
		assert.False(t, seen[def.Name], "duplicate key definition %q", def.Name)
		seen[def.Name] = true
		assert.NotEmpty(t, def.Defaults, "key %q has no default", def.Name)
		assert.NotEmpty(t, def.Help, "key %q has no help", def.Name)
	}
}

func TestGetValidKeyNames_Sorted(t *testing.T) {
	names := GetValidKeyNames()
	require.Len(t, names, len(AllKeyDefinitions))
	assert.IsNonDecreasing(t, names)
}

func TestIsValidKeyName(t *testing.T) {
	assert.True(t, IsValidKeyName("add_color"))
	assert.True(t, IsValidKeyName("remove_last_color"))
	assert.False(t, IsValidKeyName("open_session"))
}

func TestGetMenuActions_HaveMessages(t *testing.T) {
	actions := GetMenuActions()
	require.NotEmpty(t, actions)
	for _, def := range actions {
		assert.NotNil(t, def.Msg, "menu action %q has no message", def.Name)
	}
}

func TestNewKeyMap_CustomBindingOverridesDefault(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{"add_color": {"ctrl+a"}})

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlA}, keys.Form.AddColor.Binding))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlN}, keys.Form.AddColor.Binding))
	assert.Equal(t, "ctrl+a", keys.Form.AddColor.Binding.Help().Key)
}

func TestNewKeyMap_SpaceIsDisplayedByName(t *testing.T) {
	keys := NewKeyMap(nil)
	assert.Equal(t, "space/enter", keys.Selection.Toggle.Binding.Help().Key)
}

func TestKeyBindingsConfig_ValidateAgainstDefinitions(t *testing.T) {
	tests := []struct {
		name    string
		config  config.KeyBindingsConfig
		wantErr string
	}{
		{
			name:   "known names",
			config: config.KeyBindingsConfig{"submit": {"ctrl+enter"}, "help": {"f1"}},
		},
		{
			name:    "unknown name",
			config:  config.KeyBindingsConfig{"kill_session": {"k"}},
			wantErr: "unknown key binding 'kill_session'",
		},
		{
			name:    "same key twice",
			config:  config.KeyBindingsConfig{"copy": {"y"}, "copy_link": {"y"}},
			wantErr: "is assigned to both",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate(GetValidKeyNames())
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestKeyMap_TipsUseEffectiveKeys(t *testing.T) {
	first := NewKeyMap(config.KeyBindingsConfig{"copy": {"y"}})
	second := NewKeyMap(nil)

	var copyTip *Tip
	for _, tip := range first.Tips() {
		if tip.Format == GetKeyDefinition("copy").TipFormat {
			copyTip = &tip
		}
	}
	require.NotNil(t, copyTip)
	assert.Equal(t, []string{"y"}, copyTip.Keys)

	// Building more key maps must not accumulate tips
	assert.Len(t, second.Tips(), len(NewKeyMap(nil).Tips()))
	assert.Len(t, first.Tips(), len(second.Tips()))
}
