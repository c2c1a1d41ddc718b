// Package tui is a terminal rendition of the search page.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"github.com/meet1785/youtube-next/internal/search"
)

const (
	searchCharLimit = 200
	searchWidth     = 50
	maxDescLen      = 120
)

type searchDoneMsg struct {
	items []search.VideoSummary
}

type searchErrMsg struct {
	err error
}

type openedMsg struct {
	err error
}

// Model holds the UI state: the last submitted query, the last successful
// results and the last error. Only one search is in flight at a time.
type Model struct {
	ctx      context.Context
	searcher Searcher
	open     func(url string) error

	input   textinput.Model
	spinner spinner.Model

	lastQuery string
	results   []search.VideoSummary
	err       error
	loading   bool
	selected  int
	browsing  bool // focus on the result list rather than the input
	status    string
}

// Option customizes a Model.
type Option func(*Model)

// WithOpener replaces the browser launcher.
func WithOpener(open func(url string) error) Option {
	return func(m *Model) { m.open = open }
}

// New builds the root model.
func New(ctx context.Context, s Searcher, opts ...Option) Model {
	in := textinput.New()
	in.Placeholder = "Search videos..."
	in.CharLimit = searchCharLimit
	in.Width = searchWidth
	in.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle

	m := Model{
		ctx:      ctx,
		searcher: s,
		open:     browser.OpenURL,
		input:    in,
		spinner:  sp,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Run starts the interactive program and blocks until the user quits.
func Run(ctx context.Context, s Searcher) error {
	p := tea.NewProgram(New(ctx, s), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case searchDoneMsg:
		m.loading = false
		m.err = nil
		m.results = msg.items
		m.selected = 0
		if len(m.results) > 0 {
			m.browsing = true
			m.input.Blur()
		}
		return m, nil

	case searchErrMsg:
		m.loading = false
		m.err = msg.err
		m.browsing = false
		m.input.Focus()
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("could not open browser: %v", msg.err)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		if m.browsing {
			m.browsing = false
			m.input.Focus()
			return m, nil
		}
		return m, tea.Quit
	case tea.KeyTab:
		if len(m.results) > 0 && m.err == nil {
			m.browsing = !m.browsing
			if m.browsing {
				m.input.Blur()
			} else {
				m.input.Focus()
			}
		}
		return m, nil
	}

	if m.browsing {
		return m.handleBrowseKey(msg)
	}

	if msg.Type == tea.KeyEnter {
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.results)-1 {
			m.selected++
		}
	case "enter":
		if m.selected < len(m.results) {
			return m, m.openCmd(m.results[m.selected].WatchURL())
		}
	case "/":
		m.browsing = false
		m.input.Focus()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// submit starts a search unless one is in flight or the query is blank.
func (m Model) submit() (tea.Model, tea.Cmd) {
	query := m.input.Value()
	if m.loading || strings.TrimSpace(query) == "" {
		return m, nil
	}
	m.loading = true
	m.lastQuery = query
	m.status = ""
	return m, tea.Batch(m.spinner.Tick, m.searchCmd(query))
}

func (m Model) searchCmd(query string) tea.Cmd {
	ctx, s := m.ctx, m.searcher
	return func() tea.Msg {
		items, err := s.Search(ctx, query)
		if err != nil {
			return searchErrMsg{err: err}
		}
		return searchDoneMsg{items: items}
	}
}

func (m Model) openCmd(url string) tea.Cmd {
	open := m.open
	return func() tea.Msg {
		return openedMsg{err: open(url)}
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("YouTube Search"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + loadingStyle.Render(" Searching..."))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	case len(m.results) == 0 && m.lastQuery == "":
		b.WriteString(emptyStateStyle.Render("Search for videos to get started"))
		b.WriteString("\n")
	case len(m.results) == 0:
		b.WriteString(emptyStateStyle.Render(fmt.Sprintf("No videos found for %q", m.lastQuery)))
		b.WriteString("\n")
	default:
		for i, v := range m.results {
			b.WriteString(renderCard(v, m.browsing && i == m.selected))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m Model) helpLine() string {
	if m.browsing {
		return "↑/↓ select • enter open in browser • / edit query • q quit"
	}
	return "enter search • tab results • esc quit"
}

func renderCard(v search.VideoSummary, selected bool) string {
	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	desc := v.Description
	if r := []rune(desc); len(r) > maxDescLen {
		desc = string(r[:maxDescLen]) + "…"
	}
	body := cardTitleStyle.Render(v.Title) + "\n" +
		metaStyle.Render(v.ChannelTitle+" · "+formatPublished(v.PublishedAt)) + "\n" +
		desc
	return style.Render(body)
}

// formatPublished renders the timestamp as a calendar date; unparseable
// values are shown as-is.
func formatPublished(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("Jan 2, 2006")
}
