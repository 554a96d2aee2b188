package ui

import (
	"testing"

	"cratedig/internal/session"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "abcdef", 5, "abcd…"},
		{"width one", "abc", 1, "…"},
		{"zero width", "abc", 0, ""},
		{"multibyte", "Dvořák — Symphonies", 10, "Dvořák — …"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.width); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 4); got != "ab  " {
		t.Errorf("pad = %q, want %q", got, "ab  ")
	}
	if got := pad("abcdef", 4); got != "abc…" {
		t.Errorf("pad = %q, want %q", got, "abc…")
	}
}

func TestPageLine(t *testing.T) {
	tests := []struct {
		name string
		p    session.Pagination
		want string
	}{
		{"empty", session.Pagination{CurrentPage: 1}, "No results"},
		{"single", session.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 1}, "Page 1/1 · 1 result"},
		{"many", session.Pagination{CurrentPage: 2, TotalPages: 5, TotalItems: 240}, "Page 2/5 · 240 results"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pageLine(tt.p); got != tt.want {
				t.Errorf("pageLine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilterSummary_OrderedAndSkipsBlank(t *testing.T) {
	filters := session.Filters{
		session.FilterCountry: "UK",
		session.FilterGenre:   "rock",
		session.FilterStyle:   "   ",
	}
	want := "genre=rock country=UK"
	if got := filterSummary(filters); got != want {
		t.Errorf("filterSummary = %q, want %q", got, want)
	}
}

func TestFilterLabel(t *testing.T) {
	if got := filterLabel(session.FilterGenre); got != "Genre" {
		t.Errorf("filterLabel(genre) = %q, want Genre", got)
	}
	if got := filterLabel(session.FilterYearFrom); got != "Year from" {
		t.Errorf("filterLabel(year_from) = %q, want Year from", got)
	}
	if got := filterLabel(session.FilterMaxReleases); got != "Max releases" {
		t.Errorf("filterLabel(max_releases) = %q, want Max releases", got)
	}
}
