// Package config loads cratedig settings from a TOML file.
//
// The file lives at ~/.config/cratedig/config.toml and carries the
// Discogs personal access token, an optional base URL override (useful
// against a mock server), the search page size, and the display
// currency. A missing file is not an error; defaults apply. The
// DISCOGS_TOKEN environment variable always wins over the file so a
// token never has to be written to disk.
package config
