package keymap

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "ctrl+c", Command: "quit", Context: "global"},
		{Key: "?", Command: "toggle-help", Context: "global"},
		{Key: "ctrl+h", Command: "toggle-footer", Context: "global"},
		{Key: "ctrl+t", Command: "toggle-theme", Context: "global"},
		{Key: "ctrl+s", Command: "save", Context: "global"},

		// Note list context
		{Key: "q", Command: "quit", Context: "list"},
		{Key: "j", Command: "cursor-down", Context: "list"},
		{Key: "down", Command: "cursor-down", Context: "list"},
		{Key: "k", Command: "cursor-up", Context: "list"},
		{Key: "up", Command: "cursor-up", Context: "list"},
		{Key: "g", Command: "cursor-top", Context: "list"},
		{Key: "G", Command: "cursor-bottom", Context: "list"},
		{Key: "enter", Command: "open-note", Context: "list"},
		{Key: "n", Command: "new-note", Context: "list"},
		{Key: "d", Command: "delete-note", Context: "list"},
		{Key: "y", Command: "yank-note", Context: "list"},
		{Key: "tab", Command: "focus-editor", Context: "list"},

		// Editor context (title input or body textarea focused)
		{Key: "esc", Command: "focus-list", Context: "editor"},
		{Key: "tab", Command: "next-field", Context: "editor"},
		{Key: "shift+tab", Command: "prev-field", Context: "editor"},
		{Key: "ctrl+r", Command: "reset-drafts", Context: "editor"},
		{Key: "ctrl+p", Command: "toggle-preview", Context: "editor"},

		// Delete confirmation dialog
		{Key: "enter", Command: "confirm", Context: "confirm"},
		{Key: "y", Command: "confirm", Context: "confirm"},
		{Key: "esc", Command: "cancel", Context: "confirm"},
		{Key: "n", Command: "cancel", Context: "confirm"},
		{Key: "tab", Command: "switch-button", Context: "confirm"},
		{Key: "left", Command: "switch-button", Context: "confirm"},
		{Key: "right", Command: "switch-button", Context: "confirm"},
	}
}
