package note

// Mode says whether the editor is composing a brand-new note or modifying
// an existing one.
type Mode int

const (
	// ModeCreate composes a new note; no backing entity exists yet.
	ModeCreate Mode = iota
	// ModeEdit is bound to an existing note via EditorState.SelectedID.
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// EditorState is the single active editing session: the mode, the bound
// note (edit mode only) and the uncommitted drafts. It stages a future
// mutation to the collection and is re-derived whenever the selection
// changes or a note is created or deleted.
type EditorState struct {
	Mode       Mode
	SelectedID string // empty unless Mode == ModeEdit
	TitleDraft string
	BodyDraft  string
}
