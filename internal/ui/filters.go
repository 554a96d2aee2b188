package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cratedig/internal/session"
)

// initFilterInputs builds one text input per recognized filter key.
func (m *Model) initFilterInputs() {
	m.filterInputs = make([]textinput.Model, len(session.FilterKeys))
	for i, key := range session.FilterKeys {
		input := textinput.New()
		input.Prompt = ""
		input.CharLimit = 64
		input.Width = 28
		input.Placeholder = filterPlaceholder(key)
		m.filterInputs[i] = input
	}
}

func filterPlaceholder(key string) string {
	switch key {
	case session.FilterYearFrom:
		return "e.g. 1990"
	case session.FilterYearTo:
		return "e.g. 1999"
	case session.FilterMinPrice, session.FilterMaxPrice:
		return "e.g. 15.00"
	case session.FilterMaxReleases:
		return "e.g. 25"
	default:
		return ""
	}
}

// syncFilterInputs loads the session's current filter values into the
// form.
func (m *Model) syncFilterInputs() {
	filters := m.snapshot.Filters
	for i, key := range session.FilterKeys {
		m.filterInputs[i].SetValue(filters[key])
		m.filterInputs[i].Blur()
	}
	m.filterFocusIdx = 0
	m.filterInputs[0].Focus()
}

// applyFilters writes the form values back into the session. Keys come
// from session.FilterKeys, so UpdateFilter cannot reject them.
func (m *Model) applyFilters() {
	for i, key := range session.FilterKeys {
		_ = m.controller.UpdateFilter(key, strings.TrimSpace(m.filterInputs[i].Value()))
	}
}

// handleFiltersKey processes keys while the filter form is open.
func (m Model) handleFiltersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.showFilters = false
		return m, nil

	case "enter":
		m.applyFilters()
		m.showFilters = false
		cmd := m.startSearch(true)
		return m, cmd

	case "ctrl+r":
		for i := range m.filterInputs {
			m.filterInputs[i].SetValue("")
		}
		return m, nil

	case "tab", "down":
		m.moveFilterFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.moveFilterFocus(-1)
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInputs[m.filterFocusIdx], cmd = m.filterInputs[m.filterFocusIdx].Update(msg)
	return m, cmd
}

func (m *Model) moveFilterFocus(delta int) {
	m.filterInputs[m.filterFocusIdx].Blur()
	m.filterFocusIdx = (m.filterFocusIdx + delta + len(m.filterInputs)) % len(m.filterInputs)
	m.filterInputs[m.filterFocusIdx].Focus()
}

// renderFilters renders the filter form as a centered modal.
func (m Model) renderFilters() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.Title.Render("Filters"))
	b.WriteString("\n\n")

	for i, key := range session.FilterKeys {
		label := pad(filterLabel(key), 14)
		if i == m.filterFocusIdx {
			b.WriteString(styles.AccentText.Render(label))
		} else {
			b.WriteString(styles.MutedText.Render(label))
		}
		b.WriteString(m.filterInputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("enter apply · esc close · ctrl+r clear · tab next"))

	return m.centerOverlay(styles.PanelFocus.Render(b.String()))
}
