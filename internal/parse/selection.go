package parse

import (
	"sort"
	"strconv"
	"strings"
)

// SelectionCommand is the parsed form of a suggestion-selection reply.
// Cancel distinguishes an explicit "none"/"cancel" from an invalid
// selection: the latter is reported as ErrInvalidSelection instead.
type SelectionCommand struct {
	Indices []int // 0-based, ascending, deduplicated
	Cancel  bool
}

var (
	cancelWords = map[string]bool{"none": true, "cancel": true, "no": true}
	allWords    = map[string]bool{"all": true, "yes": true, "create all": true}
)

// Selection parses a selection reply against a buffer of count suggestions.
// Accepted forms: cancel words, all words, or a comma list of 1-based
// numbers and single-dash inclusive ranges ("1,3,5", "1-3"). Unparseable
// tokens are dropped silently; indices outside [1,count] are discarded. An
// empty result that was not an explicit cancel is ErrInvalidSelection.
func Selection(text string, count int) (SelectionCommand, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	if cancelWords[normalized] {
		return SelectionCommand{Cancel: true}, nil
	}

	if allWords[normalized] {
		indices := make([]int, count)
		for i := range indices {
			indices[i] = i
		}
		return SelectionCommand{Indices: indices}, nil
	}

	seen := make(map[int]bool)
	for _, part := range strings.Split(strings.ReplaceAll(normalized, " ", ""), ",") {
		if strings.Count(part, "-") == 1 {
			bounds := strings.SplitN(part, "-", 2)
			start, err1 := strconv.Atoi(bounds[0])
			end, err2 := strconv.Atoi(bounds[1])
			if err1 != nil || err2 != nil {
				continue
			}
			for i := start; i <= end; i++ {
				markIndex(seen, i-1, count)
			}
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		markIndex(seen, n-1, count)
	}

	if len(seen) == 0 {
		return SelectionCommand{}, ErrInvalidSelection
	}

	indices := make([]int, 0, len(seen))
	for i := range seen {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return SelectionCommand{Indices: indices}, nil
}

func markIndex(seen map[int]bool, idx, count int) {
	if idx >= 0 && idx < count {
		seen[idx] = true
	}
}
