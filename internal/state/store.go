package state

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store serializes dispatches over the reducer: each action is processed
// to completion before the next, matching a single-threaded UI runtime.
// The clock and id source are injectable for deterministic tests.
type Store struct {
	mu    sync.Mutex
	state State
	now   func() time.Time
	newID func() uuid.UUID
}

// NewStore creates a state store with the given initial state.
func NewStore(initial State) *Store {
	return &Store{
		state: initial,
		now:   time.Now,
		newID: uuid.New,
	}
}

// WithClock replaces the dispatch clock. Test hook.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// WithIDSource replaces the id generator. Test hook.
func (s *Store) WithIDSource(newID func() uuid.UUID) *Store {
	s.newID = newID
	return s
}

// Dispatch applies one action and returns the resulting state snapshot.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state, action, s.now(), s.newID)
	return s.state
}

// State returns the current state snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
