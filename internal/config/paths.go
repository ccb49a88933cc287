package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hypr-showkey/showkey/internal/domain"
)

// ConfigFileName is the name of the showkey config file
const ConfigFileName = "showkey.yaml"

// GetShowkeyConfigDir returns $XDG_CONFIG_HOME/hypr-showkey (or the OS equivalent)
func GetShowkeyConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".hypr-showkey"
	}
	return filepath.Join(dir, "hypr-showkey")
}

// GetDefaultConfigPath returns the default location of showkey.yaml
func GetDefaultConfigPath() string {
	return filepath.Join(GetShowkeyConfigDir(), ConfigFileName)
}

// GetHyprConfigDir returns the directory relative Hyprland paths resolve against
func GetHyprConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(ExpandPath(xdg), "hypr")
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(ExpandPath("~/.config"), "hypr")
	}
	return filepath.Join(dir, "hypr")
}

// GetDataDir returns SHOWKEY_HOME or $XDG_DATA_HOME/showkey
func GetDataDir() string {
	if home := os.Getenv("SHOWKEY_HOME"); home != "" {
		return ExpandPath(home)
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(ExpandPath(xdg), "showkey")
	}
	return filepath.Join(ExpandPath("~/.local/share"), "showkey")
}

// GetHistoryDBPath returns the usage history database path
func GetHistoryDBPath() string {
	return filepath.Join(GetDataDir(), "history.db")
}

// GetHostKeyPath returns the SSH host key used by `showkey serve`
func GetHostKeyPath() string {
	return filepath.Join(GetDataDir(), "ssh", "id_ed25519")
}

// GetAuthorizedKeysPath returns ~/.ssh/authorized_keys
func GetAuthorizedKeysPath() string {
	return ExpandPath("~/.ssh/authorized_keys")
}

// FindConfigFile returns the first existing config file from:
// $SHOWKEY_CONFIG, the user config dir, ./showkey.yaml
func FindConfigFile() (string, error) {
	candidates := ConfigCandidates()
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat config file %s: %w", candidate, err)
		}
	}
	return "", fmt.Errorf("%w: looked in %v", domain.ErrConfigNotFound, candidates)
}

// ConfigCandidates lists the config locations in lookup order
func ConfigCandidates() []string {
	var candidates []string
	if env := os.Getenv("SHOWKEY_CONFIG"); env != "" {
		candidates = append(candidates, ExpandPath(env))
	}
	return append(candidates, GetDefaultConfigPath(), ConfigFileName)
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
