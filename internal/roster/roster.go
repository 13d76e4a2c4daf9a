// Package roster holds the fixed set of valid assignee names and fuzzy
// matching of free-text tokens against it.
package roster

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// DefaultThreshold is the minimum confidence (0-100) for a fuzzy match to be
// accepted.
const DefaultThreshold = 70

// DefaultNames is the built-in team roster.
var DefaultNames = []string{"Ravi", "Ankita", "Sam", "Alex", "Maya", "Jordan", "Taylor"}

// Roster is an immutable, ordered set of valid assignee names. Order matters:
// fuzzy-match ties resolve to the earliest entry.
type Roster struct {
	names []string
}

func New(names []string) Roster {
	r := Roster{names: make([]string, len(names))}
	copy(r.names, names)
	return r
}

// Default returns the built-in roster.
func Default() Roster {
	return New(DefaultNames)
}

// Names returns a copy of the roster in order.
func (r Roster) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Contains reports whether name is exactly in the roster (case-sensitive).
func (r Roster) Contains(name string) bool {
	for _, n := range r.names {
		if n == name {
			return true
		}
	}
	return false
}

// Match finds the best roster entry for input. An exact case-sensitive hit
// returns (name, 100, true). Otherwise the Levenshtein similarity (scaled to
// 0-100) is computed against every entry and the highest scorer wins; on a
// tie the earliest roster entry wins, so identical input always resolves
// identically. Scores below threshold return ("", 0, false), as does empty
// input. Pass threshold <= 0 for DefaultThreshold.
func (r Roster) Match(input string, threshold float64) (name string, confidence float64, ok bool) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if input == "" {
		return "", 0, false
	}

	if r.Contains(input) {
		return input, 100, true
	}

	lev := metrics.NewLevenshtein()
	best := ""
	bestScore := -1.0
	for _, n := range r.names {
		score := strutil.Similarity(input, n, lev) * 100
		if score > bestScore {
			best = n
			bestScore = score
		}
	}

	if bestScore >= threshold {
		return best, bestScore, true
	}
	return "", 0, false
}
