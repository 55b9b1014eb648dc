package config

// Config is the root configuration structure.
type Config struct {
	UI     UIConfig     `json:"ui"`
	Keymap KeymapConfig `json:"keymap"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	Theme      string `json:"theme"`      // built-in theme name ("default", "paper")
	ShowFooter bool   `json:"showFooter"` // key-hint footer
	ShowClock  bool   `json:"showClock"`  // clock in the header
	Preview    bool   `json:"preview"`    // markdown preview open on start
}

// KeymapConfig holds key binding overrides, keyed "context/command" -> key.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme:      "default",
			ShowFooter: true,
			ShowClock:  true,
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
	}
}
