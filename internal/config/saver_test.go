package config

import (
	"path/filepath"
	"testing"
)

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	cfg := Default()
	cfg.UI.Theme = "paper"
	cfg.UI.Preview = true
	cfg.Keymap.Overrides["editor/save"] = "ctrl+w"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.UI.Theme != "paper" {
		t.Errorf("theme not round-tripped, got %q", loaded.UI.Theme)
	}
	if !loaded.UI.Preview {
		t.Error("preview flag not round-tripped")
	}
	if loaded.Keymap.Overrides["editor/save"] != "ctrl+w" {
		t.Error("keymap override not round-tripped")
	}
}

func TestSaveTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.UI.Preview = true
	if err := Save(cfg, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := SaveTheme("paper", path); err != nil {
		t.Fatalf("save theme failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.UI.Theme != "paper" {
		t.Errorf("expected theme paper, got %q", loaded.UI.Theme)
	}
	if !loaded.UI.Preview {
		t.Error("SaveTheme must preserve unrelated settings")
	}
}
