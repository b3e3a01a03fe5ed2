package solver

import (
	"reflect"
	"testing"
)

// fb is a test helper: builds Feedback from guess + feedback strings,
// failing the test on malformed input.
func fb(t *testing.T, guess, feedback string) Feedback {
	t.Helper()
	f, err := ParseFeedback(guess, feedback)
	if err != nil {
		t.Fatalf("ParseFeedback(%q, %q): %v", guess, feedback, err)
	}
	return f
}

func TestFilter_EmptyFeedbackReturnsInput(t *testing.T) {
	in := []string{"crane", "slate", "plate"}
	out := Filter(in, nil)
	if !reflect.DeepEqual(out, in) {
		t.Errorf("empty feedback should be a no-op, got %v", out)
	}
}

func TestFilter_GreenCorrectness(t *testing.T) {
	// Guess "crane" against a hidden word with a..e fixed:
	// c,r,n absent; a green at index 2; e green at index 4.
	pool := []string{"crane", "slate", "plate", "grape"}
	out := Filter(pool, fb(t, "crane", "bbgbg"))

	want := []string{"slate", "plate"}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("got %v, want %v", out, want)
	}
	for _, w := range out {
		if w[2] != 'a' || w[4] != 'e' {
			t.Errorf("retained word %q violates green positions", w)
		}
	}
	// grape has its a at index 1, crane contains the absent c.
	if len(out) > len(pool) {
		t.Errorf("filter grew the set: %d > %d", len(out), len(pool))
	}
}

func TestFilter_MonotonicShrink(t *testing.T) {
	pool := []string{"crane", "slate", "plate", "grape", "sassy", "gassy"}
	cases := []struct{ guess, feedback string }{
		{"crane", "bbbbb"},
		{"crane", "ggggg"},
		{"sassy", "ybgby"},
		{"aaaaa", "bbbbb"},
	}
	for _, c := range cases {
		out := Filter(pool, fb(t, c.guess, c.feedback))
		if len(out) > len(pool) {
			t.Errorf("%s/%s: |out|=%d > |in|=%d", c.guess, c.feedback, len(out), len(pool))
		}
	}
}

// Hidden word "sassy", guess "assss".
// True feedback: a present, s present, s green, s green, s absent.
// Counts for s: correct=2, present=1 — so a surviving word needs exactly
// three occurrences of s: more than the two pinned green (yellow rule,
// occ > correctCount) but no more than green+yellow account for (black rule,
// occ <= correctCount+presentCount).
func TestFilter_DuplicateLetters_ThreeOccurrences(t *testing.T) {
	feedback := fb(t, "assss", "yyggb")

	pool := []string{
		"sassy", // s x3, a not at index 0: the hidden word, must survive
		"gassy", // s x2: yellow s needs a third occurrence, must be rejected
		"sasss", // s x4: black s caps occurrences at three, must be rejected
		"assay", // s at index 3 is 'a', violates green, must be rejected
		"mossy", // no 'a' at all, violates present a, must be rejected
	}
	out := Filter(pool, feedback)
	want := []string{"sassy"}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("got %v, want %v", out, want)
	}
}

// Guess "sssss" against hidden "sassy": s green at 0,2,3, the other two s
// tiles are black. correct=3, present=0, so words keep exactly three s.
func TestFilter_DuplicateLetters_GreenLowerBound(t *testing.T) {
	feedback := fb(t, "sssss", "gbggb")

	pool := []string{"sassy", "sossy", "sssss", "sasss"}
	out := Filter(pool, feedback)
	// sssss and sasss carry a fourth/fifth s, rejected by the black rule;
	// sassy and sossy have s at 0,2,3 and exactly three total.
	want := []string{"sassy", "sossy"}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("got %v, want %v", out, want)
	}
}

func TestFilter_PresentExcludesSamePosition(t *testing.T) {
	// Yellow 'a' at index 0: word must contain a, but not at index 0.
	pool := []string{"alarm", "solar", "sonar"}
	out := Filter(pool, fb(t, "axxxx", "ybbbb"))
	want := []string{"solar", "sonar"}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("got %v, want %v", out, want)
	}
}

func TestFilter_WordLengthMismatchDropped(t *testing.T) {
	pool := []string{"crane", "cran", "cranes"}
	out := Filter(pool, fb(t, "crane", "ggggg"))
	want := []string{"crane"}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("got %v, want %v", out, want)
	}
}

func TestParseFeedback_Validation(t *testing.T) {
	if _, err := ParseFeedback("crane", "bbgb"); err == nil {
		t.Error("length mismatch should fail")
	}
	if _, err := ParseFeedback("crane", "bbgbx"); err == nil {
		t.Error("invalid symbol should fail")
	}
	if _, err := ParseFeedback("cranE", "bbgbb"); err == nil {
		t.Error("non-lowercase guess should fail")
	}
	if _, err := ParseFeedback("", ""); err == nil {
		t.Error("empty guess should fail")
	}
}
