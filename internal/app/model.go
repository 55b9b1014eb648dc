// Package app is the Bubble Tea front end: a note list sidebar and the
// editor pane. It never mutates note or editor state itself; every change
// goes through the note.Controller and the returned state is rendered.
package app

import (
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/jotty/internal/config"
	"github.com/marcus/jotty/internal/keymap"
	"github.com/marcus/jotty/internal/note"
	"github.com/marcus/jotty/internal/styles"
	"github.com/marcus/jotty/internal/ui"
)

// focusArea says which pane owns keyboard input.
type focusArea int

const (
	focusList focusArea = iota
	focusTitle
	focusBody
)

// Model is the root Bubble Tea model for jotty.
type Model struct {
	cfg     *config.Config
	cfgPath string // "" means the default location
	ctrl    *note.Controller
	keymap  *keymap.Registry
	logger  *slog.Logger

	// Layout
	width, height int
	ready         bool

	// Focus and list position
	focus  focusArea
	cursor int // index into ctrl.ListNotes()
	scroll int // first visible list row

	// Editor inputs
	titleInput textinput.Model
	bodyInput  textarea.Model

	// Markdown preview of the body draft
	showPreview bool

	// Delete confirmation
	confirm         *ui.ConfirmDialog
	pendingDeleteID string

	// Overlays and chrome
	showHelp   bool
	showFooter bool
	showClock  bool

	// Toast
	statusMsg    string
	statusExpiry time.Time
	statusIsErr  bool

	// Digest of the drafts as last loaded or saved; differing current
	// drafts mean unsaved changes.
	savedDigest uint64
}

// New builds the application model around an already-initialized controller.
// cfgPath is where theme changes are persisted; empty means the default
// config location.
func New(ctrl *note.Controller, km *keymap.Registry, cfg *config.Config, cfgPath string, logger *slog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Untitled"
	ti.CharLimit = 200
	ti.Prompt = ""

	ta := textarea.New()
	ta.Placeholder = "Write something..."
	ta.ShowLineNumbers = false

	m := Model{
		cfg:         cfg,
		cfgPath:     cfgPath,
		ctrl:        ctrl,
		keymap:      km,
		logger:      logger,
		titleInput:  ti,
		bodyInput:   ta,
		showPreview: cfg.UI.Preview,
		showFooter:  cfg.UI.ShowFooter,
		showClock:   cfg.UI.ShowClock,
	}

	st := ctrl.EditorState()
	m.syncFromEditor(st)
	if st.Mode == note.ModeCreate {
		m.focus = focusTitle
		m.titleInput.Focus()
	}
	return m
}

// Init starts the clock tick.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// syncFromEditor loads the editor state's drafts into the inputs and marks
// them clean.
func (m *Model) syncFromEditor(st note.EditorState) {
	m.titleInput.SetValue(st.TitleDraft)
	m.bodyInput.SetValue(st.BodyDraft)
	m.savedDigest = draftDigest(st.TitleDraft, st.BodyDraft)
	m.cursor = m.indexOf(st.SelectedID)
}

// indexOf finds the list position of a note id, or 0.
func (m *Model) indexOf(id string) int {
	if id == "" {
		return 0
	}
	for i, n := range m.ctrl.ListNotes() {
		if n.ID == id {
			return i
		}
	}
	return 0
}

// draftDigest hashes the draft pair into one comparable value.
func draftDigest(title, body string) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(title)
	_, _ = h.Write([]byte{0}) // separator so ("ab","") != ("a","b")
	_, _ = h.WriteString(body)
	return h.Sum64()
}

// dirty reports whether the current drafts differ from the last loaded or
// saved values.
func (m *Model) dirty() bool {
	return draftDigest(m.titleInput.Value(), m.bodyInput.Value()) != m.savedDigest
}

// activeContext names the keymap context owning the next key press.
func (m *Model) activeContext() string {
	switch {
	case m.confirm != nil:
		return "confirm"
	case m.focus == focusTitle || m.focus == focusBody:
		return "editor"
	default:
		return "list"
	}
}

// ShowToast displays a transient status message.
func (m *Model) ShowToast(text string, isErr bool, d time.Duration) {
	m.statusMsg = text
	m.statusIsErr = isErr
	m.statusExpiry = time.Now().Add(d)
}

// clearExpiredToast drops the toast once its time is up.
func (m *Model) clearExpiredToast() {
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
	}
}

// applyConfig adopts a freshly loaded config (startup or live reload).
func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.showFooter = cfg.UI.ShowFooter
	m.showClock = cfg.UI.ShowClock
	if cfg.UI.Theme != styles.GetCurrentThemeName() {
		styles.ApplyTheme(cfg.UI.Theme)
	}
}

// resize recomputes input dimensions from the window size.
func (m *Model) resize() {
	m.titleInput.Width = m.editorWidth() - 2
	m.bodyInput.SetWidth(m.editorWidth() - 2)
	h := m.contentHeight() - editorChromeHeight
	if h < 3 {
		h = 3
	}
	m.bodyInput.SetHeight(h)
}

// setFocus moves keyboard focus between the list and the editor inputs.
func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.titleInput.Blur()
	m.bodyInput.Blur()
	switch f {
	case focusTitle:
		return m.titleInput.Focus()
	case focusBody:
		return m.bodyInput.Focus()
	}
	return nil
}
