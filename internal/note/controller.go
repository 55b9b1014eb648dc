package note

import (
	"errors"
	"strings"
)

// DefaultTitle is stored when a note is saved with a blank title.
const DefaultTitle = "Untitled"

var (
	// ErrEmptyNote rejects a save whose title and body are both blank
	// after trimming. Drafts are left untouched for correction.
	ErrEmptyNote = errors.New("empty note")

	// ErrStaleSelection rejects an edit-mode save whose bound note no
	// longer exists. Nothing is mutated; the caller should re-derive the
	// editor state.
	ErrStaleSelection = errors.New("selected note no longer exists")
)

// Controller owns the note collection and the editor state and transitions
// them together. Every method runs to completion before the next call; the
// surrounding event loop invokes it serially, so there is no locking here.
type Controller struct {
	store  *Store
	editor EditorState
}

// NewController wraps store and derives the initial editor state: edit mode
// bound to the first note when the collection is non-empty, otherwise
// create mode with empty drafts.
func NewController(store *Store) *Controller {
	c := &Controller{store: store}
	if notes := store.Notes(); len(notes) > 0 {
		c.bindTo(notes[0])
	} else {
		c.editor = EditorState{Mode: ModeCreate}
	}
	return c
}

// ListNotes returns the collection, most recently created first.
func (c *Controller) ListNotes() []*Note {
	return c.store.Notes()
}

// EditorState returns the current editor state.
func (c *Controller) EditorState() EditorState {
	return c.editor
}

// SelectedNote resolves the editor's bound note, if any.
func (c *Controller) SelectedNote() (*Note, bool) {
	if c.editor.Mode != ModeEdit || c.editor.SelectedID == "" {
		return nil, false
	}
	return c.store.FindByID(c.editor.SelectedID)
}

// StartCreate switches to create mode with empty drafts.
func (c *Controller) StartCreate() EditorState {
	c.editor = EditorState{Mode: ModeCreate}
	return c.editor
}

// SelectNote binds the editor to the note with the given id and loads its
// fields into the drafts. Returns ErrNotFound, leaving the editor
// unchanged, when the id is unknown.
func (c *Controller) SelectNote(id string) (EditorState, error) {
	n, ok := c.store.FindByID(id)
	if !ok {
		return c.editor, ErrNotFound
	}
	c.bindTo(n)
	return c.editor, nil
}

// StartEditSelected re-syncs the drafts from the bound note's stored
// fields, discarding any drift. No-op outside edit mode.
func (c *Controller) StartEditSelected() EditorState {
	if n, ok := c.SelectedNote(); ok {
		c.bindTo(n)
	}
	return c.editor
}

// ResetToSelected restores the drafts from the bound note. With no usable
// selection it behaves like StartCreate.
func (c *Controller) ResetToSelected() EditorState {
	n, ok := c.SelectedNote()
	if !ok {
		return c.StartCreate()
	}
	c.bindTo(n)
	return c.editor
}

// SetTitleDraft replaces the title draft. No other state changes.
func (c *Controller) SetTitleDraft(text string) EditorState {
	c.editor.TitleDraft = text
	return c.editor
}

// SetBodyDraft replaces the body draft. No other state changes.
func (c *Controller) SetBodyDraft(text string) EditorState {
	c.editor.BodyDraft = text
	return c.editor
}

// Save commits the drafts into the collection. Both drafts blank after
// trimming fails with ErrEmptyNote; a blank title alone falls back to
// DefaultTitle. In create mode the editor then binds to the new note; in
// edit mode the bound note is overwritten in place, or ErrStaleSelection is
// returned untouched when it vanished. Failure paths mutate nothing.
func (c *Controller) Save() (*Note, EditorState, error) {
	title := strings.TrimSpace(c.editor.TitleDraft)
	body := strings.TrimSpace(c.editor.BodyDraft)
	if title == "" && body == "" {
		return nil, c.editor, ErrEmptyNote
	}
	if title == "" {
		title = DefaultTitle
	}

	if c.editor.Mode == ModeCreate {
		n := c.store.Create(title, body)
		c.bindTo(n)
		return n, c.editor, nil
	}

	n, err := c.store.Update(c.editor.SelectedID, title, body)
	if err != nil {
		return nil, c.editor, ErrStaleSelection
	}
	c.bindTo(n)
	return n, c.editor, nil
}

// DeleteNote removes the note with the given id and reports whether a note
// was removed. When the deleted note was the bound one, the editor moves to
// the next remaining note in collection order (the successor, or the new
// last note), or back to create mode when the collection emptied.
// Confirmation prompts are the caller's business; this mutates
// unconditionally.
func (c *Controller) DeleteNote(id string) (bool, EditorState) {
	idx := c.store.indexOf(id)
	if !c.store.Delete(id) {
		return false, c.editor
	}
	if c.editor.Mode == ModeEdit && c.editor.SelectedID == id {
		c.selectAfterDelete(idx)
	}
	return true, c.editor
}

// selectAfterDelete re-derives the editor state after the bound note was
// removed at index idx.
func (c *Controller) selectAfterDelete(idx int) {
	notes := c.store.Notes()
	if len(notes) == 0 {
		c.editor = EditorState{Mode: ModeCreate}
		return
	}
	if idx >= len(notes) {
		idx = len(notes) - 1
	}
	c.bindTo(notes[idx])
}

func (c *Controller) bindTo(n *Note) {
	c.editor = EditorState{
		Mode:       ModeEdit,
		SelectedID: n.ID,
		TitleDraft: n.Title,
		BodyDraft:  n.Body,
	}
}
