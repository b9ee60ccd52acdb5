package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath returns the profile store location, honoring XDG_CONFIG_HOME
// and creating the parent directory if needed.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}

	dir := filepath.Join(configHome, "cccript")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "profiles.conf"), nil
}
