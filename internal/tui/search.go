// Package tui provides the Bubble Tea model for refind's interactive search.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/chazuruo/refind/internal/history"
	"github.com/chazuruo/refind/internal/match"
)

// ageWidth is the column reserved for the humanized entry age.
const ageWidth = 15

// SearchOptions configures a SearchModel.
type SearchOptions struct {
	// Seed is the initial query (the shell's in-progress buffer).
	Seed string

	// Prompt is the text shown before the query input.
	Prompt string

	// MaxResults bounds the ranked list.
	MaxResults int

	// Height fixes the number of visible result rows. 0 = fill the window.
	Height int
}

// SearchModel is a Bubble Tea model for incremental history search.
// The query line, match counter, and ranked list are redrawn as one frame
// per event; Bubble Tea owns raw mode and restores the terminal on every
// exit path.
type SearchModel struct {
	input  textinput.Model
	ranker *match.Ranker

	// results is the current RankedList, rebuilt on every query change.
	results []match.Ranked

	maxResults  int
	fixedHeight int

	// cursor indexes results; offset is the scroll position of the
	// visible window. Invariant: 0 <= cursor < len(results) whenever
	// results is non-empty.
	cursor int
	offset int

	width  int
	height int

	quit      bool
	confirmed bool

	counterStyle  lipgloss.Style
	normalStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	matchStyle    lipgloss.Style
	ageStyle      lipgloss.Style
	emptyStyle    lipgloss.Style
}

// NewSearchModel creates a search model over entries, which must be
// ordered most-recent-first and are never mutated.
func NewSearchModel(entries []history.Entry, opts SearchOptions) SearchModel {
	ti := textinput.New()
	if opts.Prompt != "" {
		ti.Prompt = opts.Prompt
	}
	ti.SetValue(opts.Seed)
	ti.Focus()

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = 100
	}

	ranker := match.NewRanker(entries)

	m := SearchModel{
		input:       ti,
		ranker:      ranker,
		results:     ranker.Rank(opts.Seed, maxResults),
		maxResults:  maxResults,
		fixedHeight: opts.Height,
		width:       80,
		height:      24,

		counterStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		normalStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		selectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		matchStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		ageStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		emptyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
	return m
}

// Init implements tea.Model.
func (m SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - runewidth.StringWidth(m.input.Prompt) - 1
		m.scrollToCursor()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "ctrl+g":
			m.quit = true
			return m, tea.Quit

		case "enter":
			// Confirm is a no-op while there is nothing to select.
			if len(m.results) == 0 {
				return m, nil
			}
			m.confirmed = true
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			m.scrollToCursor()
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			m.scrollToCursor()
			return m, nil
		}
	}

	// Everything else edits the query via the text input.
	oldQuery := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if newQuery := m.input.Value(); newQuery != oldQuery {
		m.results = m.ranker.Rank(newQuery, m.maxResults)
		m.clampCursor()
	}

	return m, cmd
}

// clampCursor keeps the selection inside the current result list after a
// re-rank changes its length. The index is clamped, not reset.
func (m *SearchModel) clampCursor() {
	if m.cursor >= len(m.results) {
		m.cursor = len(m.results) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scrollToCursor()
}

// scrollToCursor moves the window offset so the cursor stays visible.
func (m *SearchModel) scrollToCursor() {
	visible := m.visibleRows()

	if maxOffset := len(m.results) - visible; m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

// visibleRows returns the number of result rows that fit, at least one.
func (m SearchModel) visibleRows() int {
	// Two chrome lines: the query input and the match counter.
	rows := m.height - 2
	if m.fixedHeight > 0 && m.fixedHeight < rows {
		rows = m.fixedHeight
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View implements tea.Model.
func (m SearchModel) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	b.WriteString(m.counterStyle.Render(
		fmt.Sprintf("  %d/%d", len(m.results), m.ranker.Len()),
	))
	b.WriteString("\n")

	if len(m.results) == 0 {
		b.WriteString(m.emptyStyle.Render("  (no matches)"))
		return b.String()
	}

	visible := m.visibleRows()
	end := m.offset + visible
	if end > len(m.results) {
		end = len(m.results)
	}

	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(m.results[i], i == m.cursor))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderRow renders one result line: cursor marker, command with matched
// runes highlighted, and the humanized entry age right of it.
func (m SearchModel) renderRow(r match.Ranked, selected bool) string {
	prefix := "  "
	base := m.normalStyle
	if selected {
		prefix = "> "
		base = m.selectedStyle
	}

	cmdWidth := m.width - len(prefix) - ageWidth - 2
	if cmdWidth < 10 {
		cmdWidth = 10
	}

	cmd := m.renderCommand(r.Entry.Command, r.Result.Positions, cmdWidth, base)

	age := ""
	if !r.Entry.Timestamp.IsZero() {
		age = humanize.Time(r.Entry.Timestamp)
		if len(age) > ageWidth {
			age = age[:ageWidth]
		}
	}

	return base.Render(prefix) + cmd + "  " + m.ageStyle.Render(age)
}

// renderCommand renders the entry text rune by rune so matched positions
// can be styled individually, truncating to maxWidth display cells.
// Newlines in multi-line commands are shown as a return symbol; the
// substitution is one rune for one rune, keeping match positions aligned.
func (m SearchModel) renderCommand(cmd string, positions []int, maxWidth int, base lipgloss.Style) string {
	matched := make(map[int]bool, len(positions))
	for _, p := range positions {
		matched[p] = true
	}

	var b strings.Builder
	width := 0
	runes := []rune(cmd)

	for i, r := range runes {
		if r == '\n' {
			r = '⏎'
		}

		rw := runewidth.RuneWidth(r)
		if width+rw > maxWidth-1 && i < len(runes)-1 {
			b.WriteString(base.Render("…"))
			width++
			break
		}
		if width+rw > maxWidth {
			break
		}

		style := base
		if matched[i] {
			style = m.matchStyle
		}
		b.WriteString(style.Render(string(r)))
		width += rw
	}

	// Pad to the column width so the age column lines up.
	for width < maxWidth {
		b.WriteString(" ")
		width++
	}

	return b.String()
}

// Query returns the current query text.
func (m SearchModel) Query() string {
	return m.input.Value()
}

// Selected returns the entry under the cursor, if any.
func (m SearchModel) Selected() (history.Entry, bool) {
	if len(m.results) == 0 {
		return history.Entry{}, false
	}
	return m.results[m.cursor].Entry, true
}

// DidQuit returns true if the user canceled without selecting.
func (m SearchModel) DidQuit() bool {
	return m.quit
}

// DidConfirm returns true if the user confirmed a selection.
func (m SearchModel) DidConfirm() bool {
	return m.confirmed
}
