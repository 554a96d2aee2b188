package session

import (
	"errors"
	"fmt"
	"strings"

	"cratedig/internal/discogs"
)

// Recognized filter keys. UpdateFilter rejects anything else.
const (
	FilterGenre       = "genre"
	FilterStyle       = "style"
	FilterArtist      = "artist"
	FilterLabel       = "label"
	FilterCountry     = "country"
	FilterYearFrom    = "year_from"
	FilterYearTo      = "year_to"
	FilterMinPrice    = "min_price"
	FilterMaxPrice    = "max_price"
	FilterMaxReleases = "max_releases"
)

// FilterKeys lists the recognized filter keys in display order.
var FilterKeys = []string{
	FilterGenre,
	FilterStyle,
	FilterArtist,
	FilterLabel,
	FilterCountry,
	FilterYearFrom,
	FilterYearTo,
	FilterMinPrice,
	FilterMaxPrice,
	FilterMaxReleases,
}

var (
	// ErrUnknownFilter reports an UpdateFilter with an unrecognized key.
	ErrUnknownFilter = errors.New("unknown filter key")
	// ErrInvalidPage reports a SetPage below 1. Out-of-range pages are
	// rejected rather than clamped so caller bugs fail fast; pages past
	// the known last page clamp down instead, keeping navigation sane
	// when the result set shrinks.
	ErrInvalidPage = errors.New("page must be >= 1")
	// ErrInvalidPerPage reports a SetPerPage below 1.
	ErrInvalidPerPage = errors.New("per-page must be >= 1")
)

// DefaultPerPage is the page size used until a response reports one.
const DefaultPerPage = 50

// Filters maps filter keys to raw string values. Empty string means
// unset.
type Filters map[string]string

func (f Filters) clone() Filters {
	dup := make(Filters, len(f))
	for k, v := range f {
		dup[k] = v
	}
	return dup
}

func (f Filters) anySet() bool {
	for _, v := range f {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// Pagination tracks the cursor into the server-side result set.
// Invariant: 1 <= CurrentPage <= max(TotalPages, 1).
type Pagination struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
}

// PaginationPatch is a partial pagination update; nil fields are left
// unchanged by SetResults.
type PaginationPatch struct {
	Page    *int
	Pages   *int
	Items   *int
	PerPage *int
}

// State is one search session's complete observable state. It is a
// value: transitions never mutate a State in place, they produce a new
// one via Reduce.
type State struct {
	Query      string
	Filters    Filters
	Pagination Pagination
	Results    []discogs.Record
	Loading    bool
	Err        string
}

// NewState returns the documented initial state: empty query, unset
// filters, zeroed result counters on page 1, no results, not loading,
// no error.
func NewState() State {
	return State{
		Filters: make(Filters, len(FilterKeys)),
		Pagination: Pagination{
			CurrentPage:  1,
			ItemsPerPage: DefaultPerPage,
		},
	}
}

// CanSearch reports whether there is anything to search for: a
// non-blank query or at least one non-blank filter value. It gates the
// UI's search binding; the lifecycle manager does not consult it.
func (s State) CanSearch() bool {
	return strings.TrimSpace(s.Query) != "" || s.Filters.anySet()
}

// SearchParams flattens query, filters, and the pagination cursor into
// a single request-parameter record.
func (s State) SearchParams() discogs.SearchParams {
	return discogs.SearchParams{
		Query:       s.Query,
		Genre:       s.Filters[FilterGenre],
		Style:       s.Filters[FilterStyle],
		Artist:      s.Filters[FilterArtist],
		Label:       s.Filters[FilterLabel],
		Country:     s.Filters[FilterCountry],
		YearFrom:    s.Filters[FilterYearFrom],
		YearTo:      s.Filters[FilterYearTo],
		MinPrice:    s.Filters[FilterMinPrice],
		MaxPrice:    s.Filters[FilterMaxPrice],
		MaxReleases: s.Filters[FilterMaxReleases],
		Page:        s.Pagination.CurrentPage,
		PerPage:     s.Pagination.ItemsPerPage,
	}
}

// Action is a tagged transition request applied by Reduce.
type Action interface{ isAction() }

// SetQuery replaces the query text. Filters and pagination are
// untouched.
type SetQuery struct{ Query string }

// UpdateFilter replaces one filter value, leaving the others alone.
type UpdateFilter struct{ Key, Value string }

// ResetFilters clears the query and every filter. Pagination is
// untouched.
type ResetFilters struct{}

// SetPage moves the pagination cursor.
type SetPage struct{ Page int }

// SetResults replaces the result list and merges the pagination patch.
// Loading is deliberately not touched here; only the lifecycle manager
// drives the loading flag.
type SetResults struct {
	Results []discogs.Record
	Patch   PaginationPatch
}

// SetPerPage changes the page size used by subsequent searches.
type SetPerPage struct{ PerPage int }

// SetLoading sets the loading flag without touching the error.
type SetLoading struct{ Loading bool }

// SetError sets (or, with an empty message, clears) the error and
// forces loading off.
type SetError struct{ Message string }

// ResetSearch returns to the initial state.
type ResetSearch struct{}

func (SetQuery) isAction()     {}
func (UpdateFilter) isAction() {}
func (ResetFilters) isAction() {}
func (SetPage) isAction()      {}
func (SetResults) isAction()   {}
func (SetPerPage) isAction()   {}
func (SetLoading) isAction()   {}
func (SetError) isAction()     {}
func (ResetSearch) isAction()  {}

// Reduce applies one transition to a state value and returns the new
// state. It is pure: the input state is never modified, and the same
// inputs always produce the same output. Errors are reserved for
// invalid arguments (unknown filter key, page below 1); every valid
// action is total.
func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case SetQuery:
		s.Query = a.Query
		return s, nil

	case UpdateFilter:
		if !recognizedFilter(a.Key) {
			return s, fmt.Errorf("%w: %q", ErrUnknownFilter, a.Key)
		}
		filters := s.Filters.clone()
		filters[a.Key] = a.Value
		s.Filters = filters
		return s, nil

	case ResetFilters:
		s.Query = ""
		s.Filters = make(Filters, len(FilterKeys))
		return s, nil

	case SetPage:
		if a.Page < 1 {
			return s, fmt.Errorf("%w: got %d", ErrInvalidPage, a.Page)
		}
		s.Pagination.CurrentPage = clampPage(a.Page, s.Pagination.TotalPages)
		return s, nil

	case SetResults:
		s.Results = a.Results
		if a.Patch.Page != nil {
			s.Pagination.CurrentPage = *a.Patch.Page
		}
		if a.Patch.Pages != nil {
			s.Pagination.TotalPages = *a.Patch.Pages
		}
		if a.Patch.Items != nil {
			s.Pagination.TotalItems = *a.Patch.Items
		}
		if a.Patch.PerPage != nil && *a.Patch.PerPage > 0 {
			s.Pagination.ItemsPerPage = *a.Patch.PerPage
		}
		s.Pagination.CurrentPage = clampPage(s.Pagination.CurrentPage, s.Pagination.TotalPages)
		return s, nil

	case SetPerPage:
		if a.PerPage < 1 {
			return s, fmt.Errorf("%w: got %d", ErrInvalidPerPage, a.PerPage)
		}
		s.Pagination.ItemsPerPage = a.PerPage
		return s, nil

	case SetLoading:
		s.Loading = a.Loading
		return s, nil

	case SetError:
		s.Err = a.Message
		s.Loading = false
		return s, nil

	case ResetSearch:
		return NewState(), nil
	}

	return s, fmt.Errorf("unhandled action %T", a)
}

func recognizedFilter(key string) bool {
	for _, k := range FilterKeys {
		if k == key {
			return true
		}
	}
	return false
}

// clampPage keeps the cursor inside [1, max(totalPages, 1)].
func clampPage(page, totalPages int) int {
	last := totalPages
	if last < 1 {
		last = 1
	}
	if page > last {
		return last
	}
	if page < 1 {
		return 1
	}
	return page
}
