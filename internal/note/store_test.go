package note

import (
	"fmt"
	"testing"
)

// fakeClock advances by step on every reading so successive operations get
// distinct timestamps.
type fakeClock struct {
	now  int64
	step int64
}

func (c *fakeClock) NowMillis() int64 {
	n := c.now
	c.now += c.step
	return n
}

// seqIDSource mints id-1, id-2, ... deterministically.
type seqIDSource struct {
	n int
}

func (s *seqIDSource) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func newTestStore() *Store {
	return NewStore(&fakeClock{now: 1000, step: 10}, &seqIDSource{})
}

func TestStoreCreateFrontInsert(t *testing.T) {
	s := newTestStore()
	a := s.Create("a", "")
	b := s.Create("b", "")

	notes := s.Notes()
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != b.ID || notes[1].ID != a.ID {
		t.Errorf("expected most-recent-first order [b a], got [%s %s]", notes[0].Title, notes[1].Title)
	}
	if a.CreatedAt != a.UpdatedAt {
		t.Errorf("expected CreatedAt == UpdatedAt on create, got %d vs %d", a.CreatedAt, a.UpdatedAt)
	}
}

func TestStoreCreateUniqueIDs(t *testing.T) {
	// Fixed clock: every id gets the same time component, so uniqueness
	// rests entirely on the random fragment.
	s := NewStore(&fakeClock{now: 1000, step: 0}, NewSystemIDSource(&fakeClock{now: 1000, step: 0}))
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		n := s.Create("t", "b")
		if seen[n.ID] {
			t.Fatalf("duplicate id %q after %d creates", n.ID, i+1)
		}
		seen[n.ID] = true
	}
}

func TestStoreUpdateIsolation(t *testing.T) {
	s := newTestStore()
	a := s.Create("a", "body a")
	b := s.Create("b", "body b")
	before := s.Notes()

	updated, err := s.Update(a.ID, "a2", "body a2")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != a.ID || updated.CreatedAt != a.CreatedAt {
		t.Error("update must preserve id and CreatedAt")
	}
	if updated.UpdatedAt <= updated.CreatedAt {
		t.Errorf("UpdatedAt should advance, got %d <= %d", updated.UpdatedAt, updated.CreatedAt)
	}
	if b.Title != "b" || b.Body != "body b" {
		t.Error("updating a must not touch b")
	}
	after := s.Notes()
	if len(after) != len(before) {
		t.Errorf("update changed collection size: %d -> %d", len(before), len(after))
	}
	for i := range after {
		if after[i].ID != before[i].ID {
			t.Errorf("update reordered collection at %d: %s -> %s", i, before[i].ID, after[i].ID)
		}
	}
}

func TestStoreUpdateNotFound(t *testing.T) {
	s := newTestStore()
	s.Create("a", "")
	if _, err := s.Update("nope", "x", "y"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if n, _ := s.FindByID(s.Notes()[0].ID); n.Title != "a" {
		t.Error("failed update must not mutate anything")
	}
}

func TestStoreDeleteMissingIsNoop(t *testing.T) {
	s := newTestStore()
	s.Create("a", "")
	before := s.Notes()

	if s.Delete("nope") {
		t.Error("deleting a missing id should report false")
	}
	after := s.Notes()
	if len(after) != len(before) || after[0].ID != before[0].ID {
		t.Error("deleting a missing id must leave the collection unchanged")
	}
}

func TestStoreDelete(t *testing.T) {
	s := newTestStore()
	a := s.Create("a", "")
	b := s.Create("b", "")

	if !s.Delete(a.ID) {
		t.Fatal("expected delete to report true")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 note left, got %d", s.Len())
	}
	if _, ok := s.FindByID(a.ID); ok {
		t.Error("deleted note still resolvable")
	}
	if _, ok := s.FindByID(b.ID); !ok {
		t.Error("surviving note lost")
	}
}

func TestStoreFindByIDHasNoSideEffects(t *testing.T) {
	s := newTestStore()
	n := s.Create("a", "body")
	got, ok := s.FindByID(n.ID)
	if !ok || got.ID != n.ID {
		t.Fatal("lookup failed")
	}
	if got.UpdatedAt != n.CreatedAt {
		t.Error("lookup must not advance timestamps")
	}
}
