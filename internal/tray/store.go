// Package tray tracks the last observed tray/status icon rectangle.
//
// The store is the only shared mutable state in the daemon: the tray
// subsystem writes icon geometry events into it while move operations
// read from it. Readers always get a copied snapshot so placement
// arithmetic never runs under the lock.
package tray

import (
	"sync"

	"github.com/wmutil/positioner/internal/placement"
)

// Store holds the last known tray icon rectangle. The zero value is an
// empty store: no icon has been observed yet, which is a valid state
// until the host records the first geometry event.
type Store struct {
	mu       sync.Mutex
	anchor   placement.Rect
	recorded bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Record stores r as the most recent tray icon rectangle.
func (s *Store) Record(r placement.Rect) {
	s.mu.Lock()
	s.anchor = r
	s.recorded = true
	s.mu.Unlock()
}

// Snapshot returns a copy of the last recorded rectangle. ok is false
// when no rectangle has been recorded since creation or the last Clear.
func (s *Store) Snapshot() (r placement.Rect, ok bool) {
	s.mu.Lock()
	r, ok = s.anchor, s.recorded
	s.mu.Unlock()
	return r, ok
}

// Clear forgets the recorded rectangle, e.g. when the icon is removed.
func (s *Store) Clear() {
	s.mu.Lock()
	s.anchor = placement.Rect{}
	s.recorded = false
	s.mu.Unlock()
}
