// internal/solver/recommend.go
//
// Top-N guess recommendations. The pool of eligible words and the basis used
// for frequency statistics are deliberately separate arguments: candidates are
// drawn from the narrowed set, but letter frequencies are computed over the
// full dictionary for statistically denser scoring. That split matches the
// reference behavior and must not be "corrected".

package solver

import (
	"sort"
	"strings"
)

// DefaultTopN bounds recommendation and filler lists.
const DefaultTopN = 9

// Recommendation pairs a candidate word with its heuristic score.
type Recommendation struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// Recommend filters pool by length/prefix, scores each surviving word against
// frequencies computed over basis (pool itself when basis is nil), and
// returns at most topN recommendations sorted by score descending. Ties keep
// their original relative order. An empty filtered pool yields an empty list.
func Recommend(pool []string, length int, prefix string, topN, guessIndex int, basis []string) []Recommendation {
	if topN <= 0 {
		topN = DefaultTopN
	}
	filtered := filterPool(pool, length, prefix)
	if len(filtered) == 0 {
		return []Recommendation{}
	}

	if basis == nil {
		basis = pool
	}
	letterScores := Normalize(Frequencies(basis, length, prefix))

	scored := make([]Recommendation, len(filtered))
	for i, w := range filtered {
		scored[i] = Recommendation{Word: w, Score: Score(w, letterScores, guessIndex)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}

// filterPool keeps words of the given length with the given prefix.
func filterPool(pool []string, length int, prefix string) []string {
	out := make([]string, 0, len(pool))
	for _, w := range pool {
		if len(w) != length {
			continue
		}
		if prefix != "" && !strings.HasPrefix(w, prefix) {
			continue
		}
		out = append(out, w)
	}
	return out
}
