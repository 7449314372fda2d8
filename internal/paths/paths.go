package paths

import (
	"os"
	"path/filepath"
)

// GetTintaHome returns TINTA_HOME or ~/.tinta default
func GetTintaHome() string {
	tintaHome := os.Getenv("TINTA_HOME")
	if tintaHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".tinta"
		}
		return filepath.Join(homeDir, ".tinta")
	}
	return ExpandPath(tintaHome)
}

// GetDBPath returns $TINTA_HOME/palettes.db
func GetDBPath() string {
	return filepath.Join(GetTintaHome(), "palettes.db")
}

// GetSettingsPath returns $TINTA_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetTintaHome(), "settings.json")
}

// GetDraftPath returns $TINTA_HOME/draft.json
func GetDraftPath() string {
	return filepath.Join(GetTintaHome(), "draft.json")
}

// GetSSHDir returns $TINTA_HOME/ssh, home of the host key and authorized_keys
func GetSSHDir() string {
	return filepath.Join(GetTintaHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
