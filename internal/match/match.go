// Package match ranks choice options against a typed query so choice
// widgets can filter as the user types.
package match

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Score returns a similarity in [0,1] between the query and a
// candidate. Substring hits score ahead of pure edit-distance
// similarity so short queries behave like a filter, not a spellcheck.
func Score(query, candidate string) float64 {
	q := strings.ToUpper(strings.TrimSpace(query))
	c := strings.ToUpper(strings.TrimSpace(candidate))
	if q == "" {
		return 1
	}
	if c == "" {
		return 0
	}
	if q == c {
		return 1
	}
	if strings.Contains(c, q) {
		// Earlier and longer matches rank higher.
		pos := strings.Index(c, q)
		return 0.9 - 0.1*float64(pos)/float64(len(c))
	}
	dist := levenshtein.ComputeDistance(q, c)
	longest := len(q)
	if len(c) > longest {
		longest = len(c)
	}
	return 1 - float64(dist)/float64(longest)
}

// Filter returns the indices of candidates scoring at least minScore
// for the query, best first. Ties keep the original option order. An
// empty query returns every index in order.
func Filter(query string, candidates []string, minScore float64) []int {
	if strings.TrimSpace(query) == "" {
		out := make([]int, len(candidates))
		for i := range candidates {
			out[i] = i
		}
		return out
	}

	type scored struct {
		idx   int
		score float64
	}
	kept := make([]scored, 0, len(candidates))
	for i, c := range candidates {
		if s := Score(query, c); s >= minScore {
			kept = append(kept, scored{idx: i, score: s})
		}
	}
	sort.SliceStable(kept, func(a, b int) bool {
		return kept[a].score > kept[b].score
	})
	out := make([]int, len(kept))
	for i, k := range kept {
		out[i] = k.idx
	}
	return out
}
