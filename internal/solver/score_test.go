package solver

import (
	"math"
	"testing"
)

func TestScore_DistinctLettersEarly(t *testing.T) {
	scores := map[byte]float64{'a': 10, 'p': 5, 'l': 3, 'e': 8}

	// Guesses 1 and 2 count distinct letters only: a+p+l+e = 26.
	for _, idx := range []int{1, 2} {
		got := Score("apple", scores, idx)
		if math.Abs(got-26) > 1e-9 {
			t.Errorf("guess %d: expected 26, got %.4f", idx, got)
		}
	}
}

func TestScore_RepeatsCountFromThirdGuess(t *testing.T) {
	scores := map[byte]float64{'a': 10, 'p': 5, 'l': 3, 'e': 8}

	// Guess 3 counts every occurrence: a+p+p+l+e = 31.
	got := Score("apple", scores, 3)
	if math.Abs(got-31) > 1e-9 {
		t.Errorf("expected 31, got %.4f", got)
	}
}

// The guess-index boundary: a word with a repeated letter scores strictly
// higher at index 3 than at index 2 under the same table.
func TestScore_IndexBoundary(t *testing.T) {
	scores := map[byte]float64{'a': 10, 'p': 5, 'l': 3, 'e': 8}
	at2 := Score("apple", scores, 2)
	at3 := Score("apple", scores, 3)
	if at3 <= at2 {
		t.Errorf("repeated letter should raise the score at index 3: %.4f <= %.4f", at3, at2)
	}
}

func TestScore_UnknownLettersScoreZero(t *testing.T) {
	scores := map[byte]float64{'a': 10}
	if got := Score("zzz", scores, 1); got != 0 {
		t.Errorf("expected 0, got %.4f", got)
	}
	if got := Score("azz", scores, 1); got != 10 {
		t.Errorf("expected 10, got %.4f", got)
	}
}
