package session

import "sync"

// Store holds one session's State and applies transitions serially.
// Bubble Tea runs commands on their own goroutines, so access is
// mutex-guarded even though transitions are logically sequential.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore creates a store holding the initial state.
func NewStore() *Store {
	return &Store{state: NewState()}
}

// Dispatch applies one action through Reduce. Invalid-argument errors
// leave the state untouched.
func (s *Store) Dispatch(a Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Reduce(s.state, a)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

// State returns a snapshot of the current state. Filters and results
// are copied so the caller cannot alias the stored value.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.state
	snap.Filters = s.state.Filters.clone()
	if len(s.state.Results) > 0 {
		snap.Results = append(snap.Results[:0:0], s.state.Results...)
	}
	return snap
}
