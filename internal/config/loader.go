package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	configDir  = ".config/jotty"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary. Pointer fields
// distinguish "absent" from zero values during the merge.
type rawConfig struct {
	UI     rawUIConfig  `json:"ui"`
	Keymap KeymapConfig `json:"keymap"`
}

type rawUIConfig struct {
	Theme      string `json:"theme"`
	ShowFooter *bool  `json:"showFooter"`
	ShowClock  *bool  `json:"showClock"`
	Preview    *bool  `json:"preview"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/jotty/config.json.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	mergeConfig(cfg, &raw)
	return cfg, nil
}

// mergeConfig merges raw config values into the defaults.
func mergeConfig(cfg *Config, raw *rawConfig) {
	if raw.UI.Theme != "" {
		cfg.UI.Theme = raw.UI.Theme
	}
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.ShowClock != nil {
		cfg.UI.ShowClock = *raw.UI.ShowClock
	}
	if raw.UI.Preview != nil {
		cfg.UI.Preview = *raw.UI.Preview
	}
	for k, v := range raw.Keymap.Overrides {
		cfg.Keymap.Overrides[k] = v
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}
