package ui

import (
	"fmt"
	"strings"

	"cratedig/internal/discogs"
)

// Column widths for the results list; the title column absorbs the
// remaining space.
const (
	yearColWidth    = 6
	countryColWidth = 9
	formatColWidth  = 12
	labelColWidth   = 18
	haveColWidth    = 7
)

// renderResults renders the result rows plus the list header.
func (m Model) renderResults(width, height int) string {
	styles := m.theme.Styles()
	snap := m.snapshot

	if len(snap.Results) == 0 {
		var msg string
		switch {
		case snap.Loading:
			msg = m.spinner.View() + " Searching…"
		case snap.Err != "":
			msg = styles.DangerText.Render("Error: " + snap.Err)
		case !snap.CanSearch():
			msg = styles.MutedText.Render("Type a query or set a filter, then press enter.")
		default:
			msg = styles.MutedText.Render("No releases matched. Adjust the query or filters.")
		}
		return msg
	}

	titleWidth := width - yearColWidth - countryColWidth - formatColWidth - labelColWidth - haveColWidth - 2
	if titleWidth < 16 {
		titleWidth = 16
	}

	var b strings.Builder
	header := pad("RELEASE", titleWidth) +
		pad("YEAR", yearColWidth) +
		pad("COUNTRY", countryColWidth) +
		pad("FORMAT", formatColWidth) +
		pad("LABEL", labelColWidth) +
		pad("W/H", haveColWidth)
	b.WriteString(styles.FaintText.Render(truncate(header, width)))
	b.WriteString("\n")

	rows := height - 1
	if rows < 1 {
		rows = 1
	}
	start := m.scrollTop(rows, len(snap.Results))

	for i := start; i < len(snap.Results) && i < start+rows; i++ {
		line := m.resultRow(snap.Results[i], titleWidth)
		line = truncate(line, width)
		if i == m.selectedRow {
			line = styles.SelectedRow.Render(line)
		} else {
			line = styles.Text.Render(line)
		}
		b.WriteString(line)
		if i < len(snap.Results)-1 && i < start+rows-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) resultRow(r discogs.Record, titleWidth int) string {
	title := r.Artist() + " — " + r.ReleaseTitle()
	if m.compact {
		title = r.Title
	}

	format := ""
	if len(r.Formats) > 0 {
		format = r.Formats[0]
	}

	wantHave := ""
	if r.Community.Want > 0 || r.Community.Have > 0 {
		wantHave = fmt.Sprintf("%d/%d", r.Community.Want, r.Community.Have)
	}

	return pad(title, titleWidth) +
		pad(r.Year, yearColWidth) +
		pad(r.Country, countryColWidth) +
		pad(format, formatColWidth) +
		pad(r.Label(), labelColWidth) +
		pad(wantHave, haveColWidth)
}

// scrollTop keeps the selected row visible inside a window of the
// given size.
func (m Model) scrollTop(rows, total int) int {
	if total <= rows {
		return 0
	}
	top := m.selectedRow - rows/2
	if top < 0 {
		top = 0
	}
	if top > total-rows {
		top = total - rows
	}
	return top
}
