package session

import (
	"context"

	"cratedig/internal/discogs"
)

// Controller ties a Store, a Manager, and an outbound search function
// into one search session. The UI dispatches user intents through it
// and renders the State snapshots it returns.
type Controller struct {
	store   *Store
	manager *Manager
	search  SearchFunc
}

// NewController creates a fresh session around the given search
// function.
func NewController(search SearchFunc) *Controller {
	store := NewStore()
	return &Controller{
		store:   store,
		manager: NewManager(store),
		search:  search,
	}
}

// State returns the current session snapshot.
func (c *Controller) State() State { return c.store.State() }

// CanSearch reports whether the current query/filter combination is
// worth sending.
func (c *Controller) CanSearch() bool { return c.store.State().CanSearch() }

// SetQuery replaces the query text.
func (c *Controller) SetQuery(query string) {
	_ = c.store.Dispatch(SetQuery{Query: query})
}

// UpdateFilter sets one filter value. Unknown keys are rejected.
func (c *Controller) UpdateFilter(key, value string) error {
	return c.store.Dispatch(UpdateFilter{Key: key, Value: value})
}

// ResetFilters clears the query and all filters.
func (c *Controller) ResetFilters() {
	_ = c.store.Dispatch(ResetFilters{})
}

// SetPage moves the pagination cursor. Pages below 1 are rejected.
func (c *Controller) SetPage(page int) error {
	return c.store.Dispatch(SetPage{Page: page})
}

// SetPerPage changes the page size used by subsequent searches.
func (c *Controller) SetPerPage(perPage int) error {
	return c.store.Dispatch(SetPerPage{PerPage: perPage})
}

// ResetSearch cancels any in-flight call and returns the session to its
// initial state.
func (c *Controller) ResetSearch() {
	c.manager.CancelRequest()
	_ = c.store.Dispatch(ResetSearch{})
}

// CancelRequest cancels the in-flight call, if any.
func (c *Controller) CancelRequest() { c.manager.CancelRequest() }

// Close tears the session down. The controller must not be used to
// trigger searches afterwards; transitions become no-ops via the
// manager and TriggerSearch returns nil.
func (c *Controller) Close() { c.manager.Close() }

// TriggerSearch derives request params from the current state, runs the
// outbound call through the lifecycle manager, and feeds a successful
// response into the state machine. The returned error is for
// caller-side logging; cancellation errors are expected whenever a
// newer search supersedes this one.
func (c *Controller) TriggerSearch(ctx context.Context) error {
	params := c.store.State().SearchParams()
	resp, err := c.manager.Execute(ctx, c.search, params)
	if err != nil || resp == nil {
		return err
	}
	return c.store.Dispatch(SetResults{
		Results: resp.Results,
		Patch:   patchFromWire(resp.Pagination),
	})
}

func patchFromWire(p discogs.Pagination) PaginationPatch {
	patch := PaginationPatch{
		Page:  intPtr(p.Page),
		Pages: intPtr(p.Pages),
		Items: intPtr(p.Items),
	}
	if p.PerPage > 0 {
		patch.PerPage = intPtr(p.PerPage)
	}
	return patch
}

func intPtr(v int) *int { return &v }
