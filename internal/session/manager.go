package session

import (
	"context"
	"sync"

	"cratedig/internal/discogs"
)

// SearchFunc is the outbound call the lifecycle manager runs. The
// context is the call's cancellation token: implementations must return
// promptly once it is done, with an error satisfying
// errors.Is(err, context.Canceled).
type SearchFunc func(ctx context.Context, params discogs.SearchParams) (*discogs.SearchResponse, error)

// Manager guarantees at most one outstanding outbound call per session.
// Starting a new call cancels the previous one, so a superseded
// response can never be applied on top of a newer one even when it
// arrives late. After Close no call starts and no state is mutated.
type Manager struct {
	store *Store

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64
	closed bool
}

// NewManager creates a manager that drives loading/error transitions on
// the given store.
func NewManager(store *Store) *Manager {
	return &Manager{store: store}
}

// Execute runs fn as the session's single in-flight call.
//
// Any previous in-flight call is cancelled first. After Close, Execute
// returns (nil, nil) without starting the call. Before fn runs, the
// error is cleared and loading is set; on completion, state is updated
// only if this call is still the current one.
//
// Cancellation of the call's own context is re-raised to the caller but
// never reaches the session's error field. Any other failure sets the
// error (which clears loading) and is re-raised so the caller can log
// or branch on it. A successful result is returned to the caller, who
// owns feeding it into SetResults.
func (m *Manager) Execute(ctx context.Context, fn SearchFunc, params discogs.SearchParams) (*discogs.SearchResponse, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, nil
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	callCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.gen++
	gen := m.gen

	_ = m.store.Dispatch(SetError{})
	_ = m.store.Dispatch(SetLoading{Loading: true})
	m.mu.Unlock()

	resp, err := fn(callCtx, params)

	m.mu.Lock()
	defer m.mu.Unlock()

	// Read the token before the cleanup cancel below fires it; a plain
	// failure must not be mistaken for a cancellation.
	tokenFired := callCtx.Err() != nil

	current := gen == m.gen && !m.closed
	if current && m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	if err != nil {
		if tokenFired {
			// This call's own token fired: superseded, explicitly
			// cancelled, or torn down. Never user-visible.
			return nil, err
		}
		if current {
			_ = m.store.Dispatch(SetError{Message: err.Error()})
		}
		return nil, err
	}

	if !current {
		// A newer call owns the session now, or teardown happened
		// mid-flight. Discard silently.
		return nil, nil
	}

	_ = m.store.Dispatch(SetLoading{Loading: false})
	return resp, nil
}

// CancelRequest cancels the current in-flight call, if any. Calling it
// with nothing in flight is a no-op. An explicit cancel also turns the
// loading flag off, since nothing is outstanding anymore.
func (m *Manager) CancelRequest() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel == nil {
		return
	}
	m.cancel()
	m.cancel = nil
	if !m.closed {
		_ = m.store.Dispatch(SetLoading{Loading: false})
	}
}

// Close is the teardown hook: it cancels any in-flight call and
// permanently disables state mutation from this manager. Safe to call
// more than once.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}
