package config

import (
	"os"
	"path/filepath"
)

// GetHome returns SPEECHTIMER_HOME or the ~/.speechtimer default
func GetHome() string {
	home := os.Getenv("SPEECHTIMER_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".speechtimer"
		}
		return filepath.Join(homeDir, ".speechtimer")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $SPEECHTIMER_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
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
