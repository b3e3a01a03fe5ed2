// internal/solver/filter.go
//
// Candidate filter: narrows a word list to those consistent with one guess's
// feedback. Correct duplicate-letter handling is the whole point here, so the
// filter works on per-letter counts rather than simple membership:
//   - correctCount[L]: green tiles for letter L in this feedback.
//   - presentCount[L]: yellow tiles for letter L in this feedback.
//
// A word survives iff, for every tile (position i, letter L, symbol s):
//   Correct: word[i] == L and the word has at least correctCount[L]
//            occurrences of L.
//   Present: L occurs in the word, word[i] != L, and the word has an
//            occurrence of L beyond those pinned green
//            (occurrences(L) > correctCount[L]).
//   Absent:  if L occurs in the word, it occurs no more often than the
//            green+yellow tiles account for
//            (occurrences(L) <= correctCount[L] + presentCount[L]).
//
// The Absent rule is the subtle one: a black tile on a repeated letter only
// rules out occurrences beyond those already confirmed by green/yellow tiles
// in the same guess.

package solver

import "strings"

// Filter returns the subset of words consistent with fb.
// An empty feedback returns the input unchanged. The result preserves the
// input order; the input slice is never mutated.
func Filter(words []string, fb Feedback) []string {
	if len(fb) == 0 {
		return words
	}

	var correct, present [26]int
	for _, t := range fb {
		switch t.Symbol {
		case Correct:
			correct[t.Letter-'a']++
		case Present:
			present[t.Letter-'a']++
		}
	}

	out := make([]string, 0, len(words))
	for _, w := range words {
		if consistent(w, fb, &correct, &present) {
			out = append(out, w)
		}
	}
	return out
}

// consistent checks one word against one guess's feedback.
func consistent(word string, fb Feedback, correct, present *[26]int) bool {
	if len(word) != len(fb) {
		return false
	}
	for i, t := range fb {
		l := t.Letter
		occ := strings.Count(word, string(l))
		switch t.Symbol {
		case Correct:
			if word[i] != l || occ < correct[l-'a'] {
				return false
			}
		case Present:
			if occ == 0 || word[i] == l || occ <= correct[l-'a'] {
				return false
			}
		case Absent:
			if occ > correct[l-'a']+present[l-'a'] {
				return false
			}
		}
	}
	return true
}
