package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cratedig/internal/discogs"
)

type executeResult struct {
	resp *discogs.SearchResponse
	err  error
}

// blockUntilCancelled is a cooperative SearchFunc that signals once it
// is in flight and then waits for its token.
func blockUntilCancelled(started chan<- struct{}) SearchFunc {
	return func(ctx context.Context, _ discogs.SearchParams) (*discogs.SearchResponse, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	}
}

func staticResponse(resp *discogs.SearchResponse) SearchFunc {
	return func(context.Context, discogs.SearchParams) (*discogs.SearchResponse, error) {
		return resp, nil
	}
}

func TestManager_ExecuteSuccess(t *testing.T) {
	store := NewStore()
	m := NewManager(store)

	want := &discogs.SearchResponse{
		Pagination: discogs.Pagination{Page: 1, Pages: 2, Items: 60, PerPage: 50},
		Results:    []discogs.Record{{ID: 1}},
	}

	got, err := m.Execute(context.Background(), staticResponse(want), discogs.SearchParams{})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	st := store.State()
	assert.False(t, st.Loading)
	assert.Empty(t, st.Err)
}

func TestManager_ExecuteSetsLoadingBeforeCall(t *testing.T) {
	store := NewStore()
	m := NewManager(store)

	var sawLoading bool
	fn := func(context.Context, discogs.SearchParams) (*discogs.SearchResponse, error) {
		sawLoading = store.State().Loading
		return &discogs.SearchResponse{}, nil
	}

	_, err := m.Execute(context.Background(), fn, discogs.SearchParams{})
	require.NoError(t, err)
	assert.True(t, sawLoading, "loading must be on while the call is out")
}

func TestManager_NewCallSupersedesOldOne(t *testing.T) {
	store := NewStore()
	m := NewManager(store)

	started := make(chan struct{})
	resultA := make(chan executeResult, 1)
	go func() {
		resp, err := m.Execute(context.Background(), blockUntilCancelled(started), discogs.SearchParams{})
		resultA <- executeResult{resp, err}
	}()
	<-started

	respB := &discogs.SearchResponse{Results: []discogs.Record{{ID: 2}}}
	gotB, errB := m.Execute(context.Background(), staticResponse(respB), discogs.SearchParams{})
	require.NoError(t, errB)
	assert.Equal(t, respB, gotB)

	select {
	case resA := <-resultA:
		// The superseded call is rejected with its token's cancellation
		// and produces neither a result nor a surfaced error.
		assert.Nil(t, resA.resp)
		require.ErrorIs(t, resA.err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("superseded call never returned")
	}

	st := store.State()
	assert.Empty(t, st.Err, "cancellation must not reach the error channel")
	assert.False(t, st.Loading)
}

func TestManager_StaleFailureDoesNotOverwriteNewerState(t *testing.T) {
	store := NewStore()
	m := NewManager(store)

	started := make(chan struct{})
	resultA := make(chan executeResult, 1)
	go func() {
		resp, err := m.Execute(context.Background(), blockUntilCancelled(started), discogs.SearchParams{})
		resultA <- executeResult{resp, err}
	}()
	<-started

	_, err := m.Execute(context.Background(), staticResponse(&discogs.SearchResponse{}), discogs.SearchParams{})
	require.NoError(t, err)

	<-resultA
	st := store.State()
	assert.Empty(t, st.Err)
	assert.False(t, st.Loading)
}

func TestManager_FailureSurfacesErrorAndRethrows(t *testing.T) {
	store := NewStore()
	m := NewManager(store)

	boom := errors.New("Network timeout")
	fn := func(context.Context, discogs.SearchParams) (*discogs.SearchResponse, error) {
		return nil, boom
	}

	resp, err := m.Execute(context.Background(), fn, discogs.SearchParams{})
	assert.Nil(t, resp)
	require.ErrorIs(t, err, boom)

	st := store.State()
	assert.Equal(t, "Network timeout", st.Err)
	assert.False(t, st.Loading)

	// The session stays usable: the next call clears the error.
	_, err = m.Execute(context.Background(), staticResponse(&discogs.SearchResponse{}), discogs.SearchParams{})
	require.NoError(t, err)
	assert.Empty(t, store.State().Err)
}

func TestManager_CancelRequestIsIdempotent(t *testing.T) {
	store := NewStore()
	m := NewManager(store)

	before := store.State()
	m.CancelRequest()
	m.CancelRequest()
	assert.Equal(t, before, store.State(), "cancel with nothing in flight is a no-op")
}

func TestManager_CancelRequestStopsInFlightCall(t *testing.T) {
	store := NewStore()
	m := NewManager(store)

	started := make(chan struct{})
	result := make(chan executeResult, 1)
	go func() {
		resp, err := m.Execute(context.Background(), blockUntilCancelled(started), discogs.SearchParams{})
		result <- executeResult{resp, err}
	}()
	<-started

	m.CancelRequest()

	select {
	case res := <-result:
		require.ErrorIs(t, res.err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled call never returned")
	}

	st := store.State()
	assert.False(t, st.Loading, "explicit cancel leaves nothing outstanding")
	assert.Empty(t, st.Err)
}

func TestManager_ExecuteAfterCloseIsNoOp(t *testing.T) {
	store := NewStore()
	m := NewManager(store)
	m.Close()

	called := false
	fn := func(context.Context, discogs.SearchParams) (*discogs.SearchResponse, error) {
		called = true
		return &discogs.SearchResponse{Results: []discogs.Record{{ID: 1}}}, nil
	}

	before := store.State()
	resp, err := m.Execute(context.Background(), fn, discogs.SearchParams{})
	assert.Nil(t, resp)
	assert.NoError(t, err)
	assert.False(t, called, "the call must not start after teardown")
	assert.Equal(t, before, store.State())
}

func TestManager_CloseMidFlightDiscardsResult(t *testing.T) {
	store := NewStore()
	m := NewManager(store)

	started := make(chan struct{})
	release := make(chan struct{})
	fn := func(ctx context.Context, _ discogs.SearchParams) (*discogs.SearchResponse, error) {
		close(started)
		select {
		case <-release:
			// Ignores its token: resolves successfully after teardown.
			return &discogs.SearchResponse{Results: []discogs.Record{{ID: 9}}}, nil
		case <-time.After(5 * time.Second):
			return nil, errors.New("test deadlock")
		}
	}

	result := make(chan executeResult, 1)
	go func() {
		resp, err := m.Execute(context.Background(), fn, discogs.SearchParams{})
		result <- executeResult{resp, err}
	}()
	<-started

	m.Close()
	stateAtClose := store.State()
	close(release)

	select {
	case res := <-result:
		assert.Nil(t, res.resp, "late success after teardown is discarded")
		assert.NoError(t, res.err)
	case <-time.After(2 * time.Second):
		t.Fatal("call never returned")
	}

	assert.Equal(t, stateAtClose, store.State(), "no state mutation after teardown")

	m.Close() // second teardown is harmless
}
