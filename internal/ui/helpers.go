package ui

import (
	"fmt"
	"strings"

	"cratedig/internal/session"
)

// truncate shortens s to width runes, appending an ellipsis when it
// had to cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// pad right-pads s with spaces to exactly width runes, truncating when
// too long.
func pad(s string, width int) string {
	s = truncate(s, width)
	if gap := width - len([]rune(s)); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// joinNonEmpty joins the non-blank parts with the separator.
func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// pageLine formats the pagination footer, e.g. "Page 2/5 · 240 results".
func pageLine(p session.Pagination) string {
	if p.TotalItems == 0 {
		return "No results"
	}
	last := p.TotalPages
	if last < 1 {
		last = 1
	}
	noun := "results"
	if p.TotalItems == 1 {
		noun = "result"
	}
	return fmt.Sprintf("Page %d/%d · %d %s", p.CurrentPage, last, p.TotalItems, noun)
}

// filterSummary renders the active filters compactly for the header,
// e.g. "genre=rock country=UK".
func filterSummary(filters session.Filters) string {
	var parts []string
	for _, key := range session.FilterKeys {
		if v := strings.TrimSpace(filters[key]); v != "" {
			parts = append(parts, key+"="+v)
		}
	}
	return strings.Join(parts, " ")
}

// filterLabel maps a filter key to its form label.
func filterLabel(key string) string {
	switch key {
	case session.FilterYearFrom:
		return "Year from"
	case session.FilterYearTo:
		return "Year to"
	case session.FilterMinPrice:
		return "Min price"
	case session.FilterMaxPrice:
		return "Max price"
	case session.FilterMaxReleases:
		return "Max releases"
	default:
		return strings.ToUpper(key[:1]) + key[1:]
	}
}
