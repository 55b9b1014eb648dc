package note

import (
	"errors"
	"testing"
)

func newTestController() *Controller {
	return NewController(newTestStore())
}

func TestInitialStateEmptyCollection(t *testing.T) {
	c := newTestController()
	st := c.EditorState()
	if st.Mode != ModeCreate {
		t.Errorf("expected create mode on empty collection, got %s", st.Mode)
	}
	if st.SelectedID != "" || st.TitleDraft != "" || st.BodyDraft != "" {
		t.Error("expected no selection and empty drafts")
	}
}

func TestInitialStateNonEmptyCollection(t *testing.T) {
	s := newTestStore()
	s.Create("older", "o")
	first := s.Create("newest", "n")

	c := NewController(s)
	st := c.EditorState()
	if st.Mode != ModeEdit {
		t.Fatalf("expected edit mode, got %s", st.Mode)
	}
	if st.SelectedID != first.ID {
		t.Errorf("expected first note %s selected, got %s", first.ID, st.SelectedID)
	}
	if st.TitleDraft != "newest" || st.BodyDraft != "n" {
		t.Errorf("drafts not loaded from first note: %q / %q", st.TitleDraft, st.BodyDraft)
	}
}

func TestSaveEmptyRejected(t *testing.T) {
	c := newTestController()
	c.SetTitleDraft("")
	c.SetBodyDraft("   ")

	_, st, err := c.Save()
	if !errors.Is(err, ErrEmptyNote) {
		t.Fatalf("expected ErrEmptyNote, got %v", err)
	}
	if len(c.ListNotes()) != 0 {
		t.Error("failed save must not create a note")
	}
	if st.BodyDraft != "   " {
		t.Errorf("drafts must survive a rejected save, got %q", st.BodyDraft)
	}
}

func TestSaveDefaultTitle(t *testing.T) {
	c := newTestController()
	c.SetBodyDraft("hello")

	n, _, err := c.Save()
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if n.Title != DefaultTitle {
		t.Errorf("expected title %q, got %q", DefaultTitle, n.Title)
	}
	if n.Body != "hello" {
		t.Errorf("expected body %q, got %q", "hello", n.Body)
	}
}

func TestSaveCreateHandsOffToEdit(t *testing.T) {
	c := newTestController()
	c.SetTitleDraft("groceries")
	c.SetBodyDraft("milk")

	n, st, err := c.Save()
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if st.Mode != ModeEdit {
		t.Errorf("expected edit mode after create-save, got %s", st.Mode)
	}
	if st.SelectedID != n.ID {
		t.Errorf("expected selection %s, got %s", n.ID, st.SelectedID)
	}
	if st.TitleDraft != "groceries" || st.BodyDraft != "milk" {
		t.Errorf("drafts should match the saved note, got %q / %q", st.TitleDraft, st.BodyDraft)
	}
}

func TestSaveTrimsDrafts(t *testing.T) {
	c := newTestController()
	c.SetTitleDraft("  padded  ")
	c.SetBodyDraft("\nbody\n")

	n, _, err := c.Save()
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if n.Title != "padded" || n.Body != "body" {
		t.Errorf("expected trimmed fields, got %q / %q", n.Title, n.Body)
	}
}

func TestSaveEditOverwritesInPlace(t *testing.T) {
	c := newTestController()
	c.SetTitleDraft("a")
	c.SetBodyDraft("one")
	a, _, _ := c.Save()

	c.StartCreate()
	c.SetTitleDraft("b")
	c.SetBodyDraft("two")
	c.Save()

	if _, err := c.SelectNote(a.ID); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	c.SetBodyDraft("one, revised")
	n, st, err := c.Save()
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if n.ID != a.ID {
		t.Errorf("edit-save must keep the id, got %s", n.ID)
	}
	if st.Mode != ModeEdit || st.SelectedID != a.ID {
		t.Error("edit-save must not move the selection")
	}
	if got, _ := c.SelectedNote(); got.Body != "one, revised" {
		t.Errorf("body not updated, got %q", got.Body)
	}
	if len(c.ListNotes()) != 2 {
		t.Errorf("edit-save must not grow the collection, got %d", len(c.ListNotes()))
	}
}

func TestSaveStaleSelection(t *testing.T) {
	c := newTestController()
	c.SetBodyDraft("doomed")
	n, _, _ := c.Save()

	// Remove behind the editor's back, then attempt an edit-mode save.
	c.store.Delete(n.ID)
	_, st, err := c.Save()
	if !errors.Is(err, ErrStaleSelection) {
		t.Fatalf("expected ErrStaleSelection, got %v", err)
	}
	if len(c.ListNotes()) != 0 {
		t.Error("stale save must not mutate the collection")
	}
	if st.BodyDraft != "doomed" {
		t.Error("stale save must preserve drafts")
	}
}

func TestSaveRoundTripIsIdempotentOnContent(t *testing.T) {
	c := newTestController()
	c.SetTitleDraft("t")
	c.SetBodyDraft("b")
	orig, _, _ := c.Save()
	before := *orig

	if _, err := c.SelectNote(orig.ID); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	n, _, err := c.Save()
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if n.Title != before.Title || n.Body != before.Body {
		t.Errorf("round-trip changed content: %q/%q -> %q/%q", before.Title, before.Body, n.Title, n.Body)
	}
	if n.CreatedAt != before.CreatedAt {
		t.Error("round-trip must not touch CreatedAt")
	}
	if n.UpdatedAt < before.UpdatedAt {
		t.Errorf("UpdatedAt went backwards: %d -> %d", before.UpdatedAt, n.UpdatedAt)
	}
}

func TestSelectNoteUnknownID(t *testing.T) {
	c := newTestController()
	st, err := c.SelectNote("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if st.Mode != ModeCreate {
		t.Error("failed select must leave the editor unchanged")
	}
}

func TestDraftChangesAreIsolated(t *testing.T) {
	c := newTestController()
	c.SetBodyDraft("hello")
	n, _, _ := c.Save()

	c.SetTitleDraft("drifting")
	if got, _ := c.SelectedNote(); got.Title != n.Title {
		t.Error("draft edits must not leak into the stored note before save")
	}
	st := c.EditorState()
	if st.BodyDraft != "hello" {
		t.Error("title draft change must not touch the body draft")
	}
}

func TestStartEditSelectedResyncsDrift(t *testing.T) {
	c := newTestController()
	c.SetTitleDraft("stable")
	c.SetBodyDraft("text")
	c.Save()

	c.SetBodyDraft("half-typed garbage")
	st := c.StartEditSelected()
	if st.BodyDraft != "text" {
		t.Errorf("expected drafts re-synced from store, got %q", st.BodyDraft)
	}
}

func TestResetToSelectedWithoutSelection(t *testing.T) {
	c := newTestController()
	c.SetTitleDraft("typed")
	st := c.ResetToSelected()
	if st.Mode != ModeCreate || st.TitleDraft != "" {
		t.Error("reset without a selection should behave like StartCreate")
	}
}

func TestDeleteSelectedMovesToNextRemaining(t *testing.T) {
	c := newTestController()
	for _, title := range []string{"A", "B", "C"} {
		c.StartCreate()
		c.SetTitleDraft(title)
		c.SetBodyDraft("x")
		c.Save()
	}
	// Collection order is most-recent-first: [C, B, A].
	notes := c.ListNotes()
	b := notes[1]
	if _, err := c.SelectNote(b.ID); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	removed, st := c.DeleteNote(b.ID)
	if !removed {
		t.Fatal("expected removal")
	}
	if st.SelectedID == b.ID {
		t.Fatal("editor still bound to the deleted note")
	}
	// The successor by collection order now occupies B's index.
	if got, _ := c.SelectedNote(); got.Title != "A" {
		t.Errorf("expected successor A selected, got %q", got.Title)
	}
}

func TestDeleteLastNoteFallsBackToCreate(t *testing.T) {
	c := newTestController()
	c.SetBodyDraft("only one")
	n, _, _ := c.Save()

	removed, st := c.DeleteNote(n.ID)
	if !removed {
		t.Fatal("expected removal")
	}
	if st.Mode != ModeCreate {
		t.Errorf("expected create mode after deleting the last note, got %s", st.Mode)
	}
	if st.SelectedID != "" || st.TitleDraft != "" || st.BodyDraft != "" {
		t.Error("expected empty drafts and no selection")
	}
}

func TestDeleteUnselectedKeepsEditor(t *testing.T) {
	c := newTestController()
	c.SetTitleDraft("keep")
	c.SetBodyDraft("k")
	keep, _, _ := c.Save()
	c.StartCreate()
	c.SetTitleDraft("drop")
	c.SetBodyDraft("d")
	drop, _, _ := c.Save()

	if _, err := c.SelectNote(keep.ID); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	removed, st := c.DeleteNote(drop.ID)
	if !removed {
		t.Fatal("expected removal")
	}
	if st.SelectedID != keep.ID || st.TitleDraft != "keep" {
		t.Error("deleting an unselected note must not disturb the editor")
	}
}

func TestDeleteMissingReportsFalse(t *testing.T) {
	c := newTestController()
	c.SetBodyDraft("x")
	c.Save()

	removed, st := c.DeleteNote("nope")
	if removed {
		t.Error("expected false for a missing id")
	}
	if len(c.ListNotes()) != 1 {
		t.Error("missing delete must leave the collection intact")
	}
	if st.Mode != ModeEdit {
		t.Error("missing delete must leave the editor intact")
	}
}

func TestCreateSequenceIDsPairwiseDistinct(t *testing.T) {
	s := NewStore(SystemClock{}, NewSystemIDSource(SystemClock{}))
	c := NewController(s)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		c.StartCreate()
		c.SetBodyDraft("n")
		n, _, err := c.Save()
		if err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
		if seen[n.ID] {
			t.Fatalf("duplicate id %q", n.ID)
		}
		seen[n.ID] = true
	}
}
