package ui

import "strings"

type helpEntry struct {
	key  string
	desc string
}

var helpEntries = []helpEntry{
	{"/", "focus the search box"},
	{"enter", "run the search / open release details"},
	{"f", "open the filter form"},
	{"j/k, ↓/↑", "move the selection"},
	{"h/l, ←/→", "previous / next page"},
	{"g/G", "first / last row"},
	{"r", "reset the search session"},
	{"x", "cancel the in-flight request"},
	{"T", "cycle color theme"},
	{"C", "toggle compact rows"},
	{"?", "toggle this help"},
	{"q, ctrl+c", "quit"},
}

// renderHelp renders the key binding overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.Title.Render("cratedig keys"))
	b.WriteString("\n\n")
	for _, e := range helpEntries {
		b.WriteString(styles.AccentText.Render(pad(e.key, 12)))
		b.WriteString(styles.Text.Render(e.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("press any key to close"))

	return m.centerOverlay(styles.Panel.Render(b.String()))
}
