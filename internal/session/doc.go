// Package session implements the search-session core: a reducer-style
// state machine for query/filter/pagination state and a request
// lifecycle manager that keeps at most one catalog call in flight.
//
// # State machine
//
// State is an immutable-per-step value mutated only through tagged
// Action variants applied by Reduce. Reduce is pure and total for valid
// inputs; it returns an error only for caller mistakes (an unknown
// filter key, a page below 1). Two values are derived rather than
// stored: SearchParams, the flattening of query + filters + cursor into
// one request record, and CanSearch, which is true once the trimmed
// query or any trimmed filter is non-empty.
//
// Invariants upheld across every transition sequence:
//
//   - 1 <= Pagination.CurrentPage <= max(Pagination.TotalPages, 1)
//   - a transition that sets the error always clears loading
//   - results and pagination change together (SetResults), never
//     independently of each other
//
// # Lifecycle manager
//
// Manager.Execute cancels any prior in-flight call before starting a
// new one, so only the newest call's outcome can ever reach the state
// machine: a stale response that arrives after a newer call started is
// discarded without touching state. The per-call context is the
// cancellation token handed to the SearchFunc; cancellation is
// cooperative, and a call that ignores its token is simply ignored on
// arrival rather than forcibly killed.
//
// Failure taxonomy: cancellation (the call's own context fired) is
// re-raised to the caller but never surfaces in State.Err; every other
// failure sets State.Err and is re-raised for caller-side logging.
// After Close (the teardown hook) Execute returns (nil, nil) and no
// manager path mutates state again.
//
// # Controller
//
// Controller composes Store + Manager + SearchFunc into the object the
// UI talks to. TriggerSearch derives params, runs Execute, and feeds a
// successful response into SetResults. The controller never retries;
// retry is a caller decision made by calling TriggerSearch again.
package session
