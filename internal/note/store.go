package note

import "errors"

// ErrNotFound is returned when an id does not resolve to a stored note.
var ErrNotFound = errors.New("note not found")

// Store is the ordered note collection. Ordering is insertion order except
// that new notes go to the front, so the slice is always most-recent-first
// by creation. Edits never reorder.
type Store struct {
	notes []*Note
	clock Clock
	ids   IDSource
}

// NewStore returns an empty store using the given clock and id source.
func NewStore(clock Clock, ids IDSource) *Store {
	return &Store{clock: clock, ids: ids}
}

// Create inserts a new note at the front of the collection and returns it.
// CreatedAt and UpdatedAt are both set to the current clock reading.
func (s *Store) Create(title, body string) *Note {
	now := s.clock.NowMillis()
	n := &Note{
		ID:        s.ids.NewID(),
		Title:     title,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes = append([]*Note{n}, s.notes...)
	return n
}

// Update overwrites title and body of the note with the given id and
// advances UpdatedAt. Returns ErrNotFound without side effects when the id
// is unknown. ID, CreatedAt and collection order are preserved.
func (s *Store) Update(id, title, body string) (*Note, error) {
	n, ok := s.FindByID(id)
	if !ok {
		return nil, ErrNotFound
	}
	n.Title = title
	n.Body = body
	n.UpdatedAt = s.clock.NowMillis()
	return n, nil
}

// Delete removes the note with the given id. Deleting a missing id is a
// harmless no-op reported as false.
func (s *Store) Delete(id string) bool {
	for i, n := range s.notes {
		if n.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID is a pure lookup with no side effects.
func (s *Store) FindByID(id string) (*Note, bool) {
	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return nil, false
}

// Notes returns the collection in order. The slice is a copy; the notes
// themselves are shared.
func (s *Store) Notes() []*Note {
	out := make([]*Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Len reports the number of stored notes.
func (s *Store) Len() int {
	return len(s.notes)
}

// indexOf returns the position of id in the collection, or -1.
func (s *Store) indexOf(id string) int {
	for i, n := range s.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
