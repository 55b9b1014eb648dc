package ui

import (
	"strings"
	"testing"
)

func TestNewConfirmDialogDefaults(t *testing.T) {
	d := NewConfirmDialog("Delete note?", "This cannot be undone.")

	if d.Title != "Delete note?" {
		t.Errorf("expected title 'Delete note?', got %q", d.Title)
	}
	if d.ConfirmLabel != " Confirm " || d.CancelLabel != " Cancel " {
		t.Errorf("unexpected default labels %q / %q", d.ConfirmLabel, d.CancelLabel)
	}
	if d.Width != ModalWidthMedium {
		t.Errorf("expected width %d, got %d", ModalWidthMedium, d.Width)
	}
	if d.ConfirmFocused() {
		t.Error("focus should start on cancel")
	}
}

func TestConfirmDialogSwitchFocus(t *testing.T) {
	d := NewConfirmDialog("t", "m")

	d.SwitchFocus()
	if !d.ConfirmFocused() {
		t.Error("expected confirm focused after one switch")
	}
	d.SwitchFocus()
	if d.ConfirmFocused() {
		t.Error("expected cancel focused after two switches")
	}
}

func TestConfirmDialogRenderContainsContent(t *testing.T) {
	d := NewConfirmDialog("Delete note?", "Are you sure?")
	d.ConfirmLabel = " Delete "
	d.Danger = true

	out := d.Render()
	for _, want := range []string{"Delete note?", "Are you sure?", "Delete", "Cancel"} {
		if !strings.Contains(out, want) {
			t.Errorf("render should contain %q", want)
		}
	}
}
