package solver

import (
	"reflect"
	"testing"
)

var sessionPool = []string{"crane", "slate", "plate", "grape", "apple", "amble", "cab"}

func TestNewSession_FiltersPool(t *testing.T) {
	s := NewSession(sessionPool, 5, "")
	if len(s.Candidates) != 6 {
		t.Errorf("expected 6 five-letter candidates, got %v", s.Candidates)
	}

	s = NewSession(sessionPool, 5, "a")
	want := []string{"apple", "amble"}
	if !reflect.DeepEqual(s.Candidates, want) {
		t.Errorf("prefix pool: got %v, want %v", s.Candidates, want)
	}
	if s.GuessCount() != 1 {
		t.Errorf("fresh session should be at guess 1, got %d", s.GuessCount())
	}
}

func TestSession_AdvanceNarrowsWithoutMutating(t *testing.T) {
	s := NewSession(sessionPool, 5, "")
	before := len(s.Candidates)

	next, err := s.Advance(fb(t, "crane", "bbgbg"))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Candidates) != before || len(s.History) != 0 {
		t.Error("Advance mutated the receiver")
	}
	if next.GuessCount() != 2 {
		t.Errorf("expected guess count 2, got %d", next.GuessCount())
	}
	if !reflect.DeepEqual(next.Candidates, []string{"slate", "plate"}) {
		t.Errorf("got %v", next.Candidates)
	}
}

func TestSession_AdvanceLengthMismatch(t *testing.T) {
	s := NewSession(sessionPool, 5, "")
	if _, err := s.Advance(fb(t, "cab", "gyb")); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestReplay_EqualsIncremental(t *testing.T) {
	// Hidden word "plate": guess crane leaves {slate, plate}, guess slate
	// pins l,a,t,e and rules out s.
	guesses := []string{"crane", "slate"}
	feedbacks := []string{"bbgbg", "bgggg"}

	replayed, err := Replay(sessionPool, 5, "", guesses, feedbacks)
	if err != nil {
		t.Fatal(err)
	}

	step := NewSession(sessionPool, 5, "")
	for i := range guesses {
		step, err = step.Advance(fb(t, guesses[i], feedbacks[i]))
		if err != nil {
			t.Fatal(err)
		}
	}

	if !reflect.DeepEqual(replayed.Candidates, step.Candidates) {
		t.Errorf("replay %v != incremental %v", replayed.Candidates, step.Candidates)
	}
	if !reflect.DeepEqual(replayed.Candidates, []string{"plate"}) {
		t.Errorf("expected only plate to survive, got %v", replayed.Candidates)
	}
	if replayed.GuessCount() != 3 {
		t.Errorf("expected guess count 3, got %d", replayed.GuessCount())
	}
}

func TestReplay_ValidatesBeforeFiltering(t *testing.T) {
	// Second entry is malformed: Replay must fail with a zero session, not
	// a half-narrowed one.
	_, err := Replay(sessionPool, 5, "", []string{"crane", "slate"}, []string{"bbgbg", "bgxbg"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	if _, err := Replay(sessionPool, 5, "", []string{"crane"}, nil); err == nil {
		t.Fatal("expected guess/feedback count mismatch error")
	}

	if _, err := Replay(sessionPool, 5, "", []string{"cab"}, []string{"gyb"}); err == nil {
		t.Fatal("expected guess length error")
	}
}
