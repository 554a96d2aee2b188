// Package discogs provides an HTTP client for the Discogs database API.
//
// # Overview
//
// This package defines the API client cratedig uses to search the
// record catalog and fetch release details. It handles HTTP
// communication, JSON deserialization, and type-safe representation of
// search hits, pagination, and release metadata.
//
// # Client Usage
//
// Create a client with the base URL and token from configuration:
//
//	client, err := discogs.NewClient("", cfg.Token)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	resp, err := client.Search(ctx, discogs.SearchParams{Query: "beatles"})
//	if err != nil {
//		log.Printf("search failed: %v", err)
//	}
//
// # API Endpoints
//
// The client supports two read-only endpoints:
//
//   - GET /database/search: Paginated catalog search with filter params
//   - GET /releases/{id}: Full release details including the tracklist
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json and a cratedig User-Agent
//   - Attach "Authorization: Discogs token=..." when a token is set
//   - Have a 10-second timeout (configurable via http.Client)
//   - Return wrapped errors with context about what failed
//
// Context cancellation is the one exception to error wrapping: when the
// request context is done, its error is returned unwrapped so callers
// can classify cancellation with errors.Is. The session lifecycle
// manager depends on this to keep superseded calls out of the
// user-visible error channel.
//
// # Search Parameters
//
// SearchParams mirrors the filter set the UI exposes. Most fields map
// directly to Discogs query parameters; a year range collapses into the
// API's single year parameter ("1990-1995"). Price bounds and the
// max-releases cap have no wire equivalent, so Refine applies them to
// the decoded response instead. The server's pagination block is never
// rewritten by Refine.
//
// # Error Handling
//
// The client distinguishes between several error types:
//
//   - Client initialization errors: invalid base URL
//   - Network errors: connection refused, timeout, DNS failure
//   - Rate limiting: HTTP 429, reported with a dedicated message
//   - HTTP errors: other 4xx/5xx status codes
//   - Deserialization errors: malformed JSON responses
//
// # Network Assumptions
//
// The client assumes a personal access token (no OAuth flow), HTTPS to
// api.discogs.com, and that the caller owns retry policy. No caching,
// no retries, no mutations.
package discogs
