// Package note holds the in-memory note collection and the editor state
// machine that stages changes to it. The Controller is the only write path:
// the view layer calls its commands and renders the returned state. Nothing
// in this package touches disk; all note state is session-scoped.
package note

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Note is a single title/body record. ID and CreatedAt are immutable after
// creation; UpdatedAt advances on every successful save.
type Note struct {
	ID        string
	Title     string
	Body      string
	CreatedAt int64 // unix milliseconds
	UpdatedAt int64 // unix milliseconds
}

// Clock supplies timestamps. Injected so tests can run on a fixed or
// scripted timeline.
type Clock interface {
	NowMillis() int64
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// NowMillis returns the current time in unix milliseconds.
func (SystemClock) NowMillis() int64 {
	return time.Now().UnixMilli()
}

// IDSource mints note identifiers. Injected for deterministic tests.
type IDSource interface {
	NewID() string
}

// systemIDSource combines the clock's milliseconds with a random UUID
// fragment. The time component keeps ids roughly sortable; the random
// component makes collisions within one millisecond negligible.
type systemIDSource struct {
	clock Clock
}

// NewSystemIDSource returns the default id generator backed by clock.
func NewSystemIDSource(clock Clock) IDSource {
	return systemIDSource{clock: clock}
}

func (s systemIDSource) NewID() string {
	return fmt.Sprintf("%d-%s", s.clock.NowMillis(), uuid.NewString()[:8])
}
