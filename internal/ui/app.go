// Package ui provides the Bubble Tea terminal interface for cratedig.
package ui

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cratedig/internal/discogs"
	"cratedig/internal/prefs"
	"cratedig/internal/session"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *session.Controller
	Catalog    discogs.Searcher
	Currency   string
	ThemeName  string
	PrefsPath  string
	Compact    bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	controller *session.Controller
	catalog    discogs.Searcher
	currency   string
	prefsPath  string

	// UI state
	theme   Theme
	compact bool
	width   int
	height  int
	ready   bool

	// Session snapshot rendered by View
	snapshot    session.State
	selectedRow int

	// Search bar
	queryInput    textinput.Model
	searchFocused bool

	// Filter form
	filterInputs   []textinput.Model
	filterFocusIdx int
	showFilters    bool

	// Release detail
	showDetail     bool
	detail         *discogs.Release
	detailErr      string
	detailLoading  bool
	detailViewport viewport.Model

	// Overlays
	showHelp bool

	spinner spinner.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Vinyl"
	}

	currency := opts.Currency
	if currency == "" {
		currency = "USD"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	queryInput := textinput.New()
	queryInput.Prompt = "/ "
	queryInput.Placeholder = "artist, release, anything…"
	queryInput.CharLimit = 128

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:        ctx,
		controller: opts.Controller,
		catalog:    opts.Catalog,
		currency:   currency,
		prefsPath:  prefsPath,
		theme:      GetTheme(themeName),
		compact:    opts.Compact,
		queryInput: queryInput,
		spinner:    sp,
	}
	if m.controller != nil {
		m.snapshot = m.controller.State()
	}
	m.initFilterInputs()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Messages

type searchDoneMsg struct{ err error }

type releaseMsg struct{ release *discogs.Release }

type releaseErrMsg struct{ err error }

// Commands

// startSearch dispatches the search through the session controller.
// With resetPage the cursor returns to page 1 first (a changed query or
// filter invalidates the old cursor).
func (m *Model) startSearch(resetPage bool) tea.Cmd {
	if m.controller == nil {
		return nil
	}
	if !m.controller.CanSearch() {
		m.snapshot = m.controller.State()
		return nil
	}
	if resetPage {
		_ = m.controller.SetPage(1)
	}
	ctrl, ctx := m.controller, m.ctx
	m.snapshot = ctrl.State()
	return tea.Batch(
		func() tea.Msg { return searchDoneMsg{err: ctrl.TriggerSearch(ctx)} },
		m.spinner.Tick,
	)
}

func (m *Model) fetchReleaseCmd(id int64) tea.Cmd {
	catalog, ctx := m.catalog, m.ctx
	m.detailLoading = true
	m.detailErr = ""
	return tea.Batch(
		func() tea.Msg {
			release, err := catalog.Release(ctx, id)
			if err != nil {
				return releaseErrMsg{err: err}
			}
			return releaseMsg{release: release}
		},
		m.spinner.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(msg.Width-4, msg.Height-6)
		} else {
			m.detailViewport.Width = msg.Width - 4
			m.detailViewport.Height = msg.Height - 6
		}
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refreshSnapshot()
		if m.snapshot.Loading || m.detailLoading {
			return m, cmd
		}
		return m, nil

	case searchDoneMsg:
		// A superseded call resolves with its token's cancellation;
		// that is routine. Real failures are already in State.Err, so
		// they are only logged here.
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			log.Printf("search failed: %v", msg.err)
		}
		m.refreshSnapshot()
		return m, nil

	case releaseMsg:
		m.detailLoading = false
		m.detail = msg.release
		m.detailErr = ""
		m.showDetail = true
		m.detailViewport.SetContent(m.renderDetailContent(msg.release))
		m.detailViewport.GotoTop()
		return m, nil

	case releaseErrMsg:
		m.detailLoading = false
		if !errors.Is(msg.err, context.Canceled) {
			m.detailErr = msg.err.Error()
		}
		return m, nil
	}

	return m, nil
}

// refreshSnapshot re-reads the session state and keeps the selection
// inside the result list.
func (m *Model) refreshSnapshot() {
	if m.controller == nil {
		return
	}
	m.snapshot = m.controller.State()
	if m.selectedRow >= len(m.snapshot.Results) {
		m.selectedRow = len(m.snapshot.Results) - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.showFilters {
		return m.handleFiltersKey(msg)
	}

	if m.searchFocused {
		return m.handleSearchKey(msg)
	}

	if m.showDetail {
		return m.handleDetailKey(msg)
	}

	return m.handleResultsKey(msg)
}

// handleSearchKey processes keys while the search box is focused. Every
// edit is dispatched into the session so the query is never stale.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchFocused = false
		m.queryInput.Blur()
		return m, nil

	case "enter":
		m.searchFocused = false
		m.queryInput.Blur()
		cmd := m.startSearch(true)
		return m, cmd
	}

	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	m.controller.SetQuery(m.queryInput.Value())
	m.refreshSnapshot()
	return m, cmd
}

// handleDetailKey processes keys while a release detail is shown.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "backspace":
		m.showDetail = false
		m.detail = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

// handleResultsKey processes keys on the results list.
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "/":
		m.searchFocused = true
		m.queryInput.Focus()
		return m, textinput.Blink

	case "f":
		m.refreshSnapshot()
		m.syncFilterInputs()
		m.showFilters = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case "C":
		m.compact = !m.compact
		m.savePrefs()
		return m, nil

	case "r":
		m.controller.ResetSearch()
		m.queryInput.SetValue("")
		m.selectedRow = 0
		m.refreshSnapshot()
		return m, nil

	case "x":
		m.controller.CancelRequest()
		m.refreshSnapshot()
		return m, nil

	case "j", "down":
		if m.selectedRow < len(m.snapshot.Results)-1 {
			m.selectedRow++
		}
		return m, nil

	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil

	case "g", "home":
		m.selectedRow = 0
		return m, nil

	case "G", "end":
		if n := len(m.snapshot.Results); n > 0 {
			m.selectedRow = n - 1
		}
		return m, nil

	case "l", "right":
		return m.gotoPage(m.snapshot.Pagination.CurrentPage + 1)

	case "h", "left":
		return m.gotoPage(m.snapshot.Pagination.CurrentPage - 1)

	case "enter":
		if m.selectedRow < len(m.snapshot.Results) {
			id := m.snapshot.Results[m.selectedRow].ID
			cmd := m.fetchReleaseCmd(id)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// gotoPage moves the cursor and re-runs the search on the new page.
func (m Model) gotoPage(page int) (tea.Model, tea.Cmd) {
	last := m.snapshot.Pagination.TotalPages
	if last < 1 {
		last = 1
	}
	if page < 1 || page > last || page == m.snapshot.Pagination.CurrentPage {
		return m, nil
	}
	if err := m.controller.SetPage(page); err != nil {
		return m, nil
	}
	m.selectedRow = 0
	cmd := m.startSearch(false)
	return m, cmd
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, CompactRows: m.compact})
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}

	if m.showHelp {
		return m.renderHelp()
	}
	if m.showFilters {
		return m.renderFilters()
	}
	if m.showDetail && m.detail != nil {
		return m.renderDetailView()
	}

	return m.renderMain()
}

func (m Model) renderMain() string {
	styles := m.theme.Styles()
	var b strings.Builder

	// Header: title plus active filter summary. Truncate before
	// styling so escape sequences are never cut in half.
	b.WriteString(styles.Title.Render("cratedig"))
	if summary := filterSummary(m.snapshot.Filters); summary != "" {
		b.WriteString("  ")
		b.WriteString(styles.MutedText.Render(truncate(summary, m.width-12)))
	}
	b.WriteString("\n")

	// Search bar.
	b.WriteString(m.queryInput.View())
	b.WriteString("\n\n")

	// Results.
	bodyHeight := m.height - 5
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	b.WriteString(m.renderResults(m.width, bodyHeight))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m Model) renderStatusBar() string {
	styles := m.theme.Styles()

	left := pageLine(m.snapshot.Pagination)
	if m.snapshot.Loading {
		left = m.spinner.View() + " searching  ·  " + left
	}

	var middle string
	switch {
	case m.snapshot.Err != "":
		middle = styles.DangerText.Render(m.snapshot.Err)
	case m.detailErr != "":
		middle = styles.DangerText.Render(m.detailErr)
	case m.detailLoading:
		middle = m.spinner.View() + " loading release"
	}

	right := styles.FaintText.Render("? help")

	return joinNonEmpty("   ", styles.StatusBar.Render(left), middle, right)
}

func (m Model) renderDetailView() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.Title.Render("cratedig"))
	b.WriteString(styles.MutedText.Render("  release detail"))
	b.WriteString("\n\n")
	b.WriteString(m.detailViewport.View())
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("esc back · j/k scroll"))
	return b.String()
}

// centerOverlay places content in the middle of the screen.
func (m Model) centerOverlay(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
