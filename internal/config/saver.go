package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Save writes the config to the given path, creating parent directories as
// needed. An empty path means the default location.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	// Write-then-rename so a watcher never reads a half-written file.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// SaveTheme updates only the theme name and saves.
func SaveTheme(themeName, path string) error {
	cfg, err := LoadFrom(path)
	if err != nil {
		return err
	}
	cfg.UI.Theme = themeName
	return Save(cfg, path)
}
