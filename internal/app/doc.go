// Package app wires cratedig together: configuration, the Discogs
// client, the search session, and the terminal UI.
//
// Run is the composition root. It loads config (including the token
// from file or environment), builds the catalog client, creates one
// session.Controller around it, and hands both to the UI. The
// controller's Close (the session teardown hook) is deferred here, so
// whatever way the UI exits, any in-flight request is cancelled and the
// session can no longer mutate state.
//
// The outbound call handed to the session is a thin adapter: it runs
// the catalog search and then applies the filters the wire API cannot
// express (price bounds, max releases) via discogs.Refine. The session
// core stays transport-agnostic.
package app
