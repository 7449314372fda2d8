package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTintaHome_FromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TINTA_HOME", dir)

	assert.Equal(t, dir, GetTintaHome())
	assert.Equal(t, filepath.Join(dir, "palettes.db"), GetDBPath())
	assert.Equal(t, filepath.Join(dir, "settings.json"), GetSettingsPath())
	assert.Equal(t, filepath.Join(dir, "draft.json"), GetDraftPath())
	assert.Equal(t, filepath.Join(dir, "ssh"), GetSSHDir())
}

func TestGetTintaHome_Default(t *testing.T) {
	t.Setenv("TINTA_HOME", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".tinta"), GetTintaHome())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		input    string
		expected string
	}{
		{"~", home},
		{"~/palettes", filepath.Join(home, "palettes")},
		{"/abs/path", "/abs/path"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}
