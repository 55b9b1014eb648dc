package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/jotty/internal/config"
	"github.com/marcus/jotty/internal/note"
	"github.com/marcus/jotty/internal/styles"
	"github.com/marcus/jotty/internal/ui"
)

// Update handles all messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case TickMsg:
		m.clearExpiredToast()
		return m, tickCmd()

	case ToastMsg:
		m.ShowToast(msg.Message, msg.IsError, msg.Duration)
		return m, nil

	case ErrorMsg:
		m.logger.Error("app error", "err", msg.Err)
		m.ShowToast("Error: "+msg.Err.Error(), true, 5*time.Second)
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg.Cfg)
		m.resize()
		return m, nil
	}

	return m, nil
}

// isEditorChord reports whether a key press should be resolved against the
// keymap even while a text input has focus. Plain runes and editing keys
// always go to the input; textarea's own chords (ctrl+a, ctrl+k, ...) pass
// through when unbound.
func isEditorChord(key string) bool {
	return key == "esc" || key == "tab" || key == "shift+tab" ||
		strings.HasPrefix(key, "ctrl+") || strings.HasPrefix(key, "alt+")
}

// handleKeyMsg processes keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Any key dismisses the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	ctx := m.activeContext()

	if ctx == "editor" {
		// Enter in the title line advances to the body.
		if key == "enter" && m.focus == focusTitle {
			return m, m.setFocus(focusBody)
		}
		if !isEditorChord(key) {
			return m.forwardToEditor(msg)
		}
	}

	cmd, ok := m.keymap.Lookup(ctx, key)
	if !ok {
		if ctx == "editor" {
			// Unbound chords are the textarea's editing keys.
			return m.forwardToEditor(msg)
		}
		return m, nil
	}
	return m.handleCommand(cmd, key)
}

// forwardToEditor routes a key to the focused input and mirrors the text
// into the controller's draft.
func (m Model) forwardToEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
		m.ctrl.SetTitleDraft(m.titleInput.Value())
	} else {
		m.bodyInput, cmd = m.bodyInput.Update(msg)
		m.ctrl.SetBodyDraft(m.bodyInput.Value())
	}
	return m, cmd
}

// handleCommand executes a resolved keymap command.
func (m Model) handleCommand(cmd, key string) (tea.Model, tea.Cmd) {
	switch cmd {
	case "quit":
		return m, tea.Quit

	case "toggle-help":
		m.showHelp = true
		return m, nil

	case "toggle-footer":
		m.showFooter = !m.showFooter
		return m, nil

	case "toggle-theme":
		return m, m.toggleTheme()

	case "toggle-preview":
		m.showPreview = !m.showPreview
		return m, nil

	case "save":
		m.saveDrafts()
		return m, nil

	case "cursor-down":
		m.moveCursor(1)
		return m, nil
	case "cursor-up":
		m.moveCursor(-1)
		return m, nil
	case "cursor-top":
		m.cursor = 0
		m.scroll = 0
		return m, nil
	case "cursor-bottom":
		if n := len(m.ctrl.ListNotes()); n > 0 {
			m.cursor = n - 1
			m.ensureCursorVisible()
		}
		return m, nil

	case "open-note":
		return m.openNoteAtCursor()

	case "new-note":
		st := m.ctrl.StartCreate()
		m.syncFromEditor(st)
		return m, m.setFocus(focusTitle)

	case "delete-note":
		m.requestDelete()
		return m, nil

	case "yank-note":
		m.yankNoteAtCursor()
		return m, nil

	case "focus-editor":
		return m, m.setFocus(focusTitle)

	case "focus-list":
		return m, m.setFocus(focusList)

	case "next-field", "prev-field":
		if m.focus == focusTitle {
			return m, m.setFocus(focusBody)
		}
		return m, m.setFocus(focusTitle)

	case "reset-drafts":
		st := m.ctrl.ResetToSelected()
		m.syncFromEditor(st)
		m.ShowToast("Drafts reset", false, 2*time.Second)
		return m, nil

	case "confirm":
		// Enter activates the focused button; y always confirms.
		if key == "enter" && !m.confirm.ConfirmFocused() {
			m.dismissConfirm()
			return m, nil
		}
		m.deletePending()
		return m, nil

	case "cancel":
		m.dismissConfirm()
		return m, nil

	case "switch-button":
		m.confirm.SwitchFocus()
		return m, nil
	}

	return m, nil
}

// moveCursor shifts the list cursor and keeps it visible.
func (m *Model) moveCursor(delta int) {
	n := len(m.ctrl.ListNotes())
	if n == 0 {
		m.cursor, m.scroll = 0, 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	m.ensureCursorVisible()
}

// ensureCursorVisible adjusts the scroll window around the cursor.
func (m *Model) ensureCursorVisible() {
	rows := m.listVisibleRows()
	if rows < 1 {
		rows = 1
	}
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+rows {
		m.scroll = m.cursor - rows + 1
	}
}

// openNoteAtCursor binds the editor to the highlighted note.
func (m Model) openNoteAtCursor() (tea.Model, tea.Cmd) {
	notes := m.ctrl.ListNotes()
	if m.cursor >= len(notes) {
		return m, nil
	}
	st, err := m.ctrl.SelectNote(notes[m.cursor].ID)
	if err != nil {
		return m, ReportError(err)
	}
	m.syncFromEditor(st)
	return m, m.setFocus(focusBody)
}

// requestDelete opens the confirmation dialog for the highlighted note.
func (m *Model) requestDelete() {
	notes := m.ctrl.ListNotes()
	if m.cursor >= len(notes) {
		return
	}
	n := notes[m.cursor]
	d := ui.NewConfirmDialog("Delete note?", fmt.Sprintf("%q will be gone for good.", n.Title))
	d.ConfirmLabel = " Delete "
	d.Danger = true
	m.confirm = d
	m.pendingDeleteID = n.ID
}

// dismissConfirm closes the dialog without deleting.
func (m *Model) dismissConfirm() {
	m.confirm = nil
	m.pendingDeleteID = ""
}

// deletePending performs the confirmed deletion and re-syncs the editor.
func (m *Model) deletePending() {
	id := m.pendingDeleteID
	m.dismissConfirm()

	removed, st := m.ctrl.DeleteNote(id)
	if !removed {
		m.ShowToast("Note is already gone", true, 3*time.Second)
		return
	}
	m.syncFromEditor(st)
	m.ensureCursorVisible()
	m.ShowToast("Note deleted", false, 2*time.Second)
}

// saveDrafts commits the drafts through the controller and reports the
// outcome.
func (m *Model) saveDrafts() {
	n, st, err := m.ctrl.Save()
	switch {
	case errors.Is(err, note.ErrEmptyNote):
		m.ShowToast("Nothing to save: note is empty", true, 3*time.Second)

	case errors.Is(err, note.ErrStaleSelection):
		// The note vanished under the editor. Keep the typed text and
		// continue composing it as a new note.
		title, body := st.TitleDraft, st.BodyDraft
		m.ctrl.StartCreate()
		m.ctrl.SetTitleDraft(title)
		m.ctrl.SetBodyDraft(body)
		m.ShowToast("Note was deleted elsewhere; kept as a new draft", true, 4*time.Second)

	default:
		m.syncFromEditor(st)
		m.ShowToast(fmt.Sprintf("Saved %q", n.Title), false, 2*time.Second)
	}
}

// yankNoteAtCursor copies the highlighted note's body to the clipboard.
func (m *Model) yankNoteAtCursor() {
	notes := m.ctrl.ListNotes()
	if m.cursor >= len(notes) {
		return
	}
	n := notes[m.cursor]
	if err := clipboard.WriteAll(n.Body); err != nil {
		m.logger.Warn("clipboard write failed", "err", err)
		m.ShowToast("Clipboard unavailable", true, 3*time.Second)
		return
	}
	m.ShowToast(fmt.Sprintf("Copied %q", n.Title), false, 2*time.Second)
}

// toggleTheme flips between the built-in themes and persists the choice.
func (m *Model) toggleTheme() tea.Cmd {
	next := "paper"
	if styles.GetCurrentThemeName() == "paper" {
		next = "default"
	}
	styles.ApplyTheme(next)
	m.cfg.UI.Theme = next
	m.ShowToast("Theme: "+styles.GetTheme(next).DisplayName, false, 2*time.Second)

	return func() tea.Msg {
		if err := config.SaveTheme(next, m.cfgPath); err != nil {
			return ErrorMsg{Err: err}
		}
		return nil
	}
}
