// Package ui renders the cratedig terminal interface with Bubble Tea.
//
// The root Model owns a session.Controller and renders its State
// snapshots. User intents (query edits, filter edits, page moves,
// reset) are dispatched through the controller; searches run inside
// tea.Cmd goroutines so the session's single-flight lifecycle manager
// handles rapid re-triggering: mashing enter or paging quickly simply
// supersedes the previous request.
//
// Screens: the results list with a search bar and status footer, a
// filter form modal, a per-release detail view, and a help overlay.
// Themes come from theme.go and persist via the prefs package.
package ui
