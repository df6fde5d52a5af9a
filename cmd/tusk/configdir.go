// ABOUTME: XDG-based config directory resolution for the tusk CLI.
// ABOUTME: Checks XDG_CONFIG_HOME, falls back to ~/.config/tusk.
package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultConfigDir returns the default config directory for tusk configuration.
// It checks XDG_CONFIG_HOME first, then falls back to ~/.config/tusk.
func defaultConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tusk"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".config", "tusk"), nil
}
