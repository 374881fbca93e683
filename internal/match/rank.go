package match

import (
	"sort"
	"strings"

	"github.com/chazuruo/refind/internal/history"
)

// Ranked pairs a history entry with its match result for one query.
type Ranked struct {
	Entry  history.Entry
	Result Result
}

// Ranker ranks an immutable entry list against a changing query. It
// remembers the full match set of the previous query: when the new query
// merely extends the old one, only those entries are rescanned, which
// subsequence monotonicity makes lossless. Any other edit rescans
// everything.
type Ranker struct {
	entries    []history.Entry
	prevQuery  string
	candidates []int // indices into entries that matched prevQuery
	primed     bool
}

// NewRanker creates a Ranker over entries, which must be ordered
// most-recent-first (ascending Rank) and must not change afterwards.
func NewRanker(entries []history.Entry) *Ranker {
	return &Ranker{entries: entries}
}

// Rank returns the best matches for query ordered by score descending,
// ties broken by recency (more recent wins). limit > 0 truncates the
// result; the full match set is retained internally for narrowing.
// Ranking twice with the same query yields identical output.
func (r *Ranker) Rank(query string, limit int) []Ranked {
	scan := r.scanSet(query)

	matched := make([]int, 0, len(scan))
	results := make([]Ranked, 0, len(scan))
	for _, idx := range scan {
		entry := r.entries[idx]
		res, ok := Match(query, entry.Command)
		if !ok {
			continue
		}
		matched = append(matched, idx)
		results = append(results, Ranked{Entry: entry, Result: res})
	}

	r.prevQuery = query
	r.candidates = matched
	r.primed = true

	// Entries arrive most-recent-first, so a stable sort by score leaves
	// equal scores in recency order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Result.Score > results[j].Result.Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Len returns the total number of entries under the ranker.
func (r *Ranker) Len() int {
	return len(r.entries)
}

// scanSet picks the candidate indices to rescan for query.
func (r *Ranker) scanSet(query string) []int {
	if r.primed && strings.HasPrefix(query, r.prevQuery) {
		return r.candidates
	}

	all := make([]int, len(r.entries))
	for i := range r.entries {
		all[i] = i
	}
	return all
}

// Rank is the pure one-shot form of Ranker.Rank for callers that have no
// previous query to narrow from.
func Rank(entries []history.Entry, query string, limit int) []Ranked {
	return NewRanker(entries).Rank(query, limit)
}
