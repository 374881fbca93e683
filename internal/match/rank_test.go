package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/refind/internal/history"
)

// makeEntries builds a most-recent-first entry list with dense ranks.
func makeEntries(commands ...string) []history.Entry {
	entries := make([]history.Entry, len(commands))
	for i, cmd := range commands {
		entries[i] = history.Entry{Command: cmd, Rank: i}
	}
	return entries
}

func TestRankEmptyQueryIsRecencyOrder(t *testing.T) {
	entries := makeEntries("git push", "ls -la", "git commit", "git status")

	results := Rank(entries, "", 0)

	require.Len(t, results, 4)
	for i, r := range results {
		assert.Equal(t, entries[i].Command, r.Entry.Command)
		assert.Equal(t, i, r.Entry.Rank)
	}
}

func TestRankSubsequenceScenario(t *testing.T) {
	// "gp" is a subsequence of "git push" only: the other git commands
	// have no 'p' after the 'g'.
	entries := makeEntries("git status", "git commit", "ls -la", "git push")

	results := Rank(entries, "gp", 0)

	require.Len(t, results, 1)
	assert.Equal(t, "git push", results[0].Entry.Command)
}

func TestRankRecencyBreaksTies(t *testing.T) {
	entries := makeEntries("echo two", "echo one")

	results := Rank(entries, "echo", 0)

	require.Len(t, results, 2)
	assert.Equal(t, "echo two", results[0].Entry.Command)
	assert.Equal(t, "echo one", results[1].Entry.Command)
}

func TestRankIdempotent(t *testing.T) {
	entries := makeEntries("git push", "git pull", "grep -r pattern", "ls")

	first := Rank(entries, "gp", 0)
	second := Rank(entries, "gp", 0)

	assert.Equal(t, first, second)
}

func TestRankLimit(t *testing.T) {
	entries := makeEntries("ls -la", "ls -l", "ls", "lsof")

	results := Rank(entries, "ls", 2)

	assert.Len(t, results, 2)
}

func TestRankerNarrowingMatchesFullRescan(t *testing.T) {
	entries := makeEntries(
		"git status", "git push origin", "grep pattern", "ls -la", "go build",
	)

	ranker := NewRanker(entries)
	ranker.Rank("g", 0)
	narrowed := ranker.Rank("gp", 0)

	full := Rank(entries, "gp", 0)
	assert.Equal(t, full, narrowed)
}

func TestRankerRescansOnShrink(t *testing.T) {
	entries := makeEntries("git status", "ls -la")

	ranker := NewRanker(entries)
	require.Len(t, ranker.Rank("git", 0), 1)

	// Deleting back to a shorter query must widen the result set again.
	results := ranker.Rank("", 0)
	assert.Len(t, results, 2)
}

func TestRankerLen(t *testing.T) {
	ranker := NewRanker(makeEntries("a", "b", "c"))
	assert.Equal(t, 3, ranker.Len())
}
