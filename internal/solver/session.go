// internal/solver/session.go
//
// Explicit solve session. A Session carries everything the engine needs —
// target length, optional prefix, the feedback applied so far, and the
// derived candidate set — so callers hold no hidden state and the same
// history always replays to the same candidates. Sessions are values:
// Advance returns a narrowed copy, the receiver is never mutated.

package solver

import "fmt"

// Session is the state of one solve: the initial pool constraints plus the
// candidates still consistent with every feedback applied so far.
type Session struct {
	Length     int
	Prefix     string
	History    []Feedback
	Candidates []string
}

// NewSession filters pool down to words of the given length with the given
// prefix and starts a session with an empty history.
func NewSession(pool []string, length int, prefix string) Session {
	return Session{
		Length:     length,
		Prefix:     prefix,
		Candidates: filterPool(pool, length, prefix),
	}
}

// Advance applies one guess's feedback and returns the narrowed session.
// The feedback length must match the session's word length; the candidate
// set is untouched when validation fails.
func (s Session) Advance(fb Feedback) (Session, error) {
	if len(fb) != s.Length {
		return s, fmt.Errorf("feedback has %d tiles, session word length is %d", len(fb), s.Length)
	}
	next := s
	next.History = append(append([]Feedback{}, s.History...), fb)
	next.Candidates = Filter(s.Candidates, fb)
	return next, nil
}

// GuessCount is the 1-based index of the upcoming guess.
func (s Session) GuessCount() int { return len(s.History) + 1 }

// Replay builds a session from pool and a full guess/feedback history.
// Every entry is parsed and validated against the target length before any
// filtering begins, so a bad entry never leaves a half-narrowed session.
func Replay(pool []string, length int, prefix string, guesses, feedbacks []string) (Session, error) {
	if len(guesses) != len(feedbacks) {
		return Session{}, fmt.Errorf("%d guesses but %d feedback strings", len(guesses), len(feedbacks))
	}
	parsed := make([]Feedback, len(guesses))
	for i := range guesses {
		fb, err := ParseFeedback(guesses[i], feedbacks[i])
		if err != nil {
			return Session{}, fmt.Errorf("history entry %d: %w", i, err)
		}
		if len(fb) != length {
			return Session{}, fmt.Errorf("history entry %d: guess length %d does not match word length %d", i, len(fb), length)
		}
		parsed[i] = fb
	}

	s := NewSession(pool, length, prefix)
	for _, fb := range parsed {
		var err error
		s, err = s.Advance(fb)
		if err != nil {
			return Session{}, err
		}
	}
	return s, nil
}
