// internal/solver/frequency.go
//
// Letter-frequency analysis over a basis word list, plus normalization of the
// resulting percentages onto a fixed 0-10 scale for scoring.

package solver

import "strings"

// Frequencies tallies letter occurrences over the basis words of the given
// length (and optional prefix) and returns per-letter percentages. When a
// prefix is set it is stripped before counting, so the already-known letters
// do not skew the statistics. Percentages over the returned letters sum to
// ~100; an empty filtered basis yields an empty table.
func Frequencies(basis []string, length int, prefix string) map[byte]float64 {
	var counts [26]int
	total := 0
	for _, w := range basis {
		if len(w) != length || (prefix != "" && !strings.HasPrefix(w, prefix)) {
			continue
		}
		for i := len(prefix); i < len(w); i++ {
			c := w[i]
			if c < 'a' || c > 'z' {
				continue
			}
			counts[c-'a']++
			total++
		}
	}
	if total == 0 {
		return map[byte]float64{}
	}
	out := make(map[byte]float64)
	for i, n := range counts {
		if n > 0 {
			out[byte('a'+i)] = float64(n) / float64(total) * 100
		}
	}
	return out
}

// Normalize rescales a frequency table linearly onto [0,10] using its own
// min/max. If every frequency is equal the scale is degenerate and every
// letter maps to 5.0. Empty input yields empty output.
func Normalize(freq map[byte]float64) map[byte]float64 {
	if len(freq) == 0 {
		return map[byte]float64{}
	}
	first := true
	var min, max float64
	for _, v := range freq {
		if first {
			min, max = v, v
			first = false
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	out := make(map[byte]float64, len(freq))
	if min == max {
		for l := range freq {
			out[l] = 5.0
		}
		return out
	}
	for l, v := range freq {
		out[l] = (v - min) / (max - min) * 10
	}
	return out
}
