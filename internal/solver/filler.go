// internal/solver/filler.go
//
// Variable-position analysis and exploratory "filler" guesses.
//
// A variable position is an index where the remaining candidates still
// disagree. Filler words probe those letters: they are drawn from the full
// dictionary (not the candidate set) and ranked by how many distinct variable
// letters they touch, so one throwaway guess can split a large candidate set.

package solver

import "sort"

// VariablePositions maps each position where candidates disagree to the
// sorted distinct letters observed there. Positions where every candidate
// agrees are omitted.
func VariablePositions(candidates []string) map[int][]byte {
	out := make(map[int][]byte)
	if len(candidates) == 0 {
		return out
	}
	length := len(candidates[0])
	for pos := 0; pos < length; pos++ {
		var seen [26]bool
		n := 0
		for _, w := range candidates {
			if pos >= len(w) {
				continue
			}
			c := w[pos]
			if c < 'a' || c > 'z' || seen[c-'a'] {
				continue
			}
			seen[c-'a'] = true
			n++
		}
		if n < 2 {
			continue
		}
		letters := make([]byte, 0, n)
		for i := 0; i < 26; i++ {
			if seen[i] {
				letters = append(letters, byte('a'+i))
			}
		}
		out[pos] = letters
	}
	return out
}

// VariableLetters is the sorted union of letters over all variable positions.
func VariableLetters(positions map[int][]byte) []byte {
	var seen [26]bool
	for _, letters := range positions {
		for _, c := range letters {
			seen[c-'a'] = true
		}
	}
	out := make([]byte, 0, 26)
	for i := 0; i < 26; i++ {
		if seen[i] {
			out = append(out, byte('a'+i))
		}
	}
	return out
}

// FindFillers returns up to topN words of the target length from the broad
// word list that contain at least one variable letter, ranked by the count of
// distinct variable letters they contain (repeats of a letter count once).
// The sort is stable, so ties keep dictionary order.
func FindFillers(broad []string, variableLetters []byte, length, topN int) []string {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if len(variableLetters) == 0 {
		return []string{}
	}
	var wanted [26]bool
	for _, c := range variableLetters {
		wanted[c-'a'] = true
	}

	type scored struct {
		word string
		hits int
	}
	cands := make([]scored, 0, 64)
	for _, w := range broad {
		if len(w) != length {
			continue
		}
		var counted [26]bool
		hits := 0
		for i := 0; i < len(w); i++ {
			c := w[i]
			if c < 'a' || c > 'z' {
				continue
			}
			if wanted[c-'a'] && !counted[c-'a'] {
				counted[c-'a'] = true
				hits++
			}
		}
		if hits > 0 {
			cands = append(cands, scored{word: w, hits: hits})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].hits > cands[j].hits })

	if len(cands) > topN {
		cands = cands[:topN]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.word
	}
	return out
}
