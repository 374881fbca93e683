package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chazuruo/refind/internal/history"
)

func makeEntries(commands ...string) []history.Entry {
	entries := make([]history.Entry, len(commands))
	for i, cmd := range commands {
		entries[i] = history.Entry{Command: cmd, Rank: i}
	}
	return entries
}

// update runs one Update cycle and returns the concrete model.
func update(t *testing.T, m SearchModel, msg tea.Msg) SearchModel {
	t.Helper()

	next, _ := m.Update(msg)
	model, ok := next.(SearchModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SearchModel", next)
	}
	return model
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewSearchModelShowsAllOnEmptyQuery(t *testing.T) {
	entries := makeEntries("git push", "ls -la", "cd /tmp")
	model := NewSearchModel(entries, SearchOptions{})

	if len(model.results) != 3 {
		t.Fatalf("expected 3 results before any keystroke, got %d", len(model.results))
	}
	if model.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", model.cursor)
	}
	if model.results[0].Entry.Command != "git push" {
		t.Errorf("expected recency order, got %q first", model.results[0].Entry.Command)
	}
}

func TestSeedQueryRanksBeforeFirstKeystroke(t *testing.T) {
	entries := makeEntries("git status", "git push", "ls -la")
	model := NewSearchModel(entries, SearchOptions{Seed: "gp"})

	if model.Query() != "gp" {
		t.Errorf("expected seed query 'gp', got %q", model.Query())
	}
	if len(model.results) != 1 {
		t.Fatalf("expected 1 result for seed 'gp', got %d", len(model.results))
	}
	if model.results[0].Entry.Command != "git push" {
		t.Errorf("expected 'git push', got %q", model.results[0].Entry.Command)
	}
}

func TestTypingNarrowsResults(t *testing.T) {
	entries := makeEntries("git status", "git push", "ls -la")
	model := NewSearchModel(entries, SearchOptions{})

	model = update(t, model, keyRunes("g"))
	if len(model.results) != 2 {
		t.Fatalf("expected 2 results for 'g', got %d", len(model.results))
	}

	model = update(t, model, keyRunes("p"))
	if len(model.results) != 1 {
		t.Fatalf("expected 1 result for 'gp', got %d", len(model.results))
	}
	if model.results[0].Entry.Command != "git push" {
		t.Errorf("expected 'git push', got %q", model.results[0].Entry.Command)
	}
}

func TestSelectionClampsWhenListShrinks(t *testing.T) {
	entries := makeEntries("aa one", "aa two", "bb one", "bb two", "bb three")
	model := NewSearchModel(entries, SearchOptions{})

	for i := 0; i < 4; i++ {
		model = update(t, model, tea.KeyMsg{Type: tea.KeyDown})
	}
	if model.cursor != 4 {
		t.Fatalf("expected cursor at 4, got %d", model.cursor)
	}

	// Narrowing to the two "aa" entries must clamp, not reset.
	model = update(t, model, keyRunes("a"))
	model = update(t, model, keyRunes("a"))

	if len(model.results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(model.results))
	}
	if model.cursor != 1 {
		t.Errorf("expected cursor clamped to 1, got %d", model.cursor)
	}
}

func TestCursorStopsAtBounds(t *testing.T) {
	entries := makeEntries("one", "two")
	model := NewSearchModel(entries, SearchOptions{})

	model = update(t, model, tea.KeyMsg{Type: tea.KeyUp})
	if model.cursor != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", model.cursor)
	}

	model = update(t, model, tea.KeyMsg{Type: tea.KeyDown})
	model = update(t, model, tea.KeyMsg{Type: tea.KeyDown})
	if model.cursor != 1 {
		t.Errorf("expected cursor to stop at last result, got %d", model.cursor)
	}
}

func TestEnterConfirmsSelection(t *testing.T) {
	entries := makeEntries("one", "two")
	model := NewSearchModel(entries, SearchOptions{})

	model = update(t, model, tea.KeyMsg{Type: tea.KeyDown})
	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if !model.DidConfirm() {
		t.Fatal("expected confirmed after enter")
	}
	selected, ok := model.Selected()
	if !ok {
		t.Fatal("expected a selected entry")
	}
	if selected.Command != "two" {
		t.Errorf("expected 'two' selected, got %q", selected.Command)
	}
}

func TestEnterIsNoopOnEmptyList(t *testing.T) {
	model := NewSearchModel(nil, SearchOptions{})

	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if model.DidConfirm() {
		t.Error("expected enter to be a no-op with no results")
	}
	if model.DidQuit() {
		t.Error("expected model to stay open")
	}
}

func TestEscCancels(t *testing.T) {
	model := NewSearchModel(makeEntries("one"), SearchOptions{})

	model = update(t, model, tea.KeyMsg{Type: tea.KeyEsc})

	if !model.DidQuit() {
		t.Error("expected quit after esc")
	}
	if model.DidConfirm() {
		t.Error("expected no confirmation after esc")
	}
}

func TestCtrlGCancels(t *testing.T) {
	model := NewSearchModel(makeEntries("one"), SearchOptions{})

	model = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlG})

	if !model.DidQuit() {
		t.Error("expected quit after ctrl+g")
	}
}

func TestVisibleRowsNeverBelowOne(t *testing.T) {
	model := NewSearchModel(makeEntries("one", "two"), SearchOptions{})

	model = update(t, model, tea.WindowSizeMsg{Width: 80, Height: 2})

	if got := model.visibleRows(); got != 1 {
		t.Errorf("expected at least 1 visible row, got %d", got)
	}
}

func TestFixedHeightCapsVisibleRows(t *testing.T) {
	model := NewSearchModel(makeEntries("one", "two"), SearchOptions{Height: 5})

	model = update(t, model, tea.WindowSizeMsg{Width: 80, Height: 40})

	if got := model.visibleRows(); got != 5 {
		t.Errorf("expected fixed height of 5 rows, got %d", got)
	}
}

func TestScrollFollowsCursor(t *testing.T) {
	entries := makeEntries("a", "b", "c", "d", "e", "f")
	model := NewSearchModel(entries, SearchOptions{})
	model = update(t, model, tea.WindowSizeMsg{Width: 80, Height: 5})

	for i := 0; i < 5; i++ {
		model = update(t, model, tea.KeyMsg{Type: tea.KeyDown})
	}

	visible := model.visibleRows()
	if model.cursor < model.offset || model.cursor >= model.offset+visible {
		t.Errorf("cursor %d outside window [%d, %d)",
			model.cursor, model.offset, model.offset+visible)
	}
}

func TestViewShowsNoMatches(t *testing.T) {
	model := NewSearchModel(makeEntries("ls"), SearchOptions{Seed: "zzz"})

	if view := model.View(); !strings.Contains(view, "(no matches)") {
		t.Error("expected view to show the no-matches line")
	}
}

func TestViewShowsMatchCounter(t *testing.T) {
	model := NewSearchModel(makeEntries("git push", "ls"), SearchOptions{Seed: "git"})

	if view := model.View(); !strings.Contains(view, "1/2") {
		t.Error("expected counter '1/2' in view")
	}
}

func TestSelectedOnEmptyResults(t *testing.T) {
	model := NewSearchModel(nil, SearchOptions{})

	if _, ok := model.Selected(); ok {
		t.Error("expected no selection with no results")
	}
}
