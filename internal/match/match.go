// Package match implements refind's query matching, scoring, and ranking.
//
// Matching is a case-insensitive subsequence test: every query character
// must appear in the candidate text in order, not necessarily contiguously.
// Scoring prefers tight matches over spread-out ones, word-boundary starts
// over mid-word starts, and exact substrings over gapped subsequences.
// Everything in this package is a pure function of its inputs so ranking
// can be unit-tested without a terminal.
package match

import "unicode"

// Scoring weights. These are tunable; the binding contract is the ordering
// they produce: one extra character of match span always outweighs both
// bonuses combined, so span dominates, the boundary bonus breaks span
// ties, and a contiguous match beats any gapped one.
const (
	gapPenalty        = 16
	wordBoundaryBonus = 8
	contiguousBonus   = 4
)

// Result holds the outcome of matching a query against a candidate text.
type Result struct {
	// Score orders matches; higher is more relevant. The empty query
	// scores 0 against everything.
	Score int

	// Positions are the rune indices into the candidate text that matched
	// the query, in order. Nil for the empty query.
	Positions []int
}

// Match reports whether query is a case-insensitive subsequence of text.
// The empty query matches everything. On a match it returns the
// best-scoring alignment: every occurrence of the first query rune starts
// a greedy candidate window and the highest-scoring window wins, with the
// earliest window kept on score ties so results are deterministic.
func Match(query, text string) (Result, bool) {
	if query == "" {
		return Result{}, true
	}

	q := foldRunes(query)
	t := []rune(text)
	if len(q) > len(t) {
		return Result{}, false
	}

	var best Result
	found := false

	for start := 0; start+len(q) <= len(t); start++ {
		if fold(t[start]) != q[0] {
			continue
		}

		positions, ok := alignFrom(q, t, start)
		if !ok {
			// No alignment from here or anywhere later: the first query
			// rune may recur, but a failed greedy walk from this start
			// means the tail is missing for all later starts too.
			break
		}

		r := score(q, t, positions)
		if !found || r.Score > best.Score {
			best = r
			found = true
		}
	}

	return best, found
}

// alignFrom greedily matches q against t beginning at start, which must
// hold the first query rune.
func alignFrom(q, t []rune, start int) ([]int, bool) {
	positions := make([]int, 0, len(q))
	positions = append(positions, start)

	qi := 1
	for ti := start + 1; ti < len(t) && qi < len(q); ti++ {
		if fold(t[ti]) == q[qi] {
			positions = append(positions, ti)
			qi++
		}
	}

	if qi < len(q) {
		return nil, false
	}
	return positions, true
}

// score rates an alignment per the span/boundary/contiguity weights.
func score(q, t []rune, positions []int) Result {
	first := positions[0]
	last := positions[len(positions)-1]
	span := last - first + 1

	s := -(span - len(q)) * gapPenalty
	if startsWord(t, first) {
		s += wordBoundaryBonus
	}
	if span == len(q) {
		s += contiguousBonus
	}

	return Result{Score: s, Positions: positions}
}

// startsWord reports whether the rune at pos begins a word: it is the
// first rune or follows a non-alphanumeric one.
func startsWord(t []rune, pos int) bool {
	if pos == 0 {
		return true
	}
	prev := t[pos-1]
	return !unicode.IsLetter(prev) && !unicode.IsDigit(prev)
}

func foldRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = fold(r)
	}
	return runes
}

// fold lowers a single rune. Per-rune folding keeps matched positions
// aligned with the original text, which string-level folding cannot
// guarantee.
func fold(r rune) rune {
	return unicode.ToLower(r)
}
