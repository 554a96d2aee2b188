package ui

import (
	"fmt"
	"strings"

	"cratedig/internal/discogs"
)

// renderDetail fills the detail viewport with a release summary and
// tracklist.
func (m Model) renderDetailContent(r *discogs.Release) string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.Title.Render(r.Title))
	b.WriteString("\n")
	if artists := r.ArtistLine(); artists != "" {
		b.WriteString(styles.AccentText.Render(artists))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	writeField := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		b.WriteString(styles.MutedText.Render(pad(label, 10)))
		b.WriteString(styles.Text.Render(value))
		b.WriteString("\n")
	}

	year := ""
	if r.Year > 0 {
		year = fmt.Sprintf("%d", r.Year)
	}
	writeField("Year", year)
	writeField("Country", r.Country)
	writeField("Genres", strings.Join(r.Genres, ", "))
	writeField("Styles", strings.Join(r.Styles, ", "))
	writeField("Formats", formatLine(r.Formats))
	writeField("Labels", labelLine(r.Labels))

	if r.Community.Want > 0 || r.Community.Have > 0 {
		writeField("Community", fmt.Sprintf("%d want · %d have", r.Community.Want, r.Community.Have))
	}
	if r.LowestPrice > 0 {
		writeField("Price", fmt.Sprintf("from %.2f %s (%d for sale)", r.LowestPrice, m.currency, r.NumForSale))
	}

	if len(r.Tracklist) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("TRACKLIST"))
		b.WriteString("\n")
		for _, track := range r.Tracklist {
			pos := pad(track.Position, 5)
			duration := track.Duration
			b.WriteString(styles.MutedText.Render(pos))
			b.WriteString(styles.Text.Render(track.Title))
			if duration != "" {
				b.WriteString(styles.FaintText.Render("  " + duration))
			}
			b.WriteString("\n")
		}
	}

	if notes := strings.TrimSpace(r.Notes); notes != "" {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("NOTES"))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(notes))
		b.WriteString("\n")
	}

	if r.URI != "" {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(r.URI))
	}

	return b.String()
}

func formatLine(formats []discogs.Format) string {
	parts := make([]string, 0, len(formats))
	for _, f := range formats {
		part := f.Name
		if len(f.Descriptions) > 0 {
			part += " (" + strings.Join(f.Descriptions, ", ") + ")"
		}
		if f.Qty != "" && f.Qty != "1" {
			part = f.Qty + "× " + part
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}

func labelLine(labels []discogs.LabelRef) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		part := l.Name
		if l.CatNo != "" {
			part += " — " + l.CatNo
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}
