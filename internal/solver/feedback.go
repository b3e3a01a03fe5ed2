// internal/solver/feedback.go
//
// Feedback types for the solver engine.
// Defines:
//   - Symbol: per-letter feedback result (correct/present/absent).
//   - Tile: one (letter, symbol) pair of a scored guess.
//   - Feedback: the full per-letter feedback for one guess.
//
// Symbols are a closed enum so an invalid feedback character is rejected at
// construction time, never carried into the filter.

package solver

import "fmt"

// Symbol is the evaluation result for a single letter of a guess.
type Symbol uint8

const (
	// Correct: letter is in the word at this exact position (green).
	Correct Symbol = iota
	// Present: letter is in the word but not at this position (yellow).
	Present
	// Absent: letter has no unaccounted-for occurrence in the word (black).
	Absent
)

// String returns the single-character wire form ("g"/"y"/"b").
func (s Symbol) String() string {
	switch s {
	case Correct:
		return "g"
	case Present:
		return "y"
	case Absent:
		return "b"
	}
	return "?"
}

// ParseSymbol maps a feedback character to its Symbol.
func ParseSymbol(c byte) (Symbol, error) {
	switch c {
	case 'g':
		return Correct, nil
	case 'y':
		return Present, nil
	case 'b':
		return Absent, nil
	}
	return 0, fmt.Errorf("invalid feedback character %q (want g, y or b)", string(c))
}

// Tile is one letter of a guess together with its feedback symbol.
type Tile struct {
	Letter byte
	Symbol Symbol
}

// Feedback is the ordered per-letter feedback for a whole guess.
type Feedback []Tile

// ParseFeedback pairs a guessed word with its feedback string.
// The guess must be lowercase a-z, the feedback string must have the same
// length as the guess and consist only of 'g', 'y' and 'b'.
func ParseFeedback(guess, feedback string) (Feedback, error) {
	if len(guess) == 0 {
		return nil, fmt.Errorf("empty guess")
	}
	if len(feedback) != len(guess) {
		return nil, fmt.Errorf("feedback length %d does not match guess length %d", len(feedback), len(guess))
	}
	for i := 0; i < len(guess); i++ {
		if guess[i] < 'a' || guess[i] > 'z' {
			return nil, fmt.Errorf("guess %q is not lowercase alphabetic", guess)
		}
	}
	fb := make(Feedback, len(guess))
	for i := 0; i < len(guess); i++ {
		sym, err := ParseSymbol(feedback[i])
		if err != nil {
			return nil, err
		}
		fb[i] = Tile{Letter: guess[i], Symbol: sym}
	}
	return fb, nil
}
