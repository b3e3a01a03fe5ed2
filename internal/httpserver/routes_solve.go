// internal/httpserver/routes_solve.go
//
// The solver endpoint: POST /solve/next.
//
// Stateless by design: the caller sends its full guess/feedback history on
// every call and the candidate set is rebuilt by replaying that history over
// the dictionary. Nothing about a solve is kept server-side between calls
// (the solve log records request metadata only, never candidates).
//
// Error envelope (matches the reference service):
//   400 {"error":"INVALID_ARGUMENT","message":...}   malformed config/history
//   404 {"error":"DICTIONARY_NOT_FOUND","message":...} unknown/bad dictionary
//   500 {"error":"INTERNAL_ERROR"}                   anything unexpected; the
//       detail is logged, never surfaced.

package httpserver

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/solvelog"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

const (
	// remainingWordsCap bounds the candidate list echoed in responses.
	remainingWordsCap = 100
	// fillerMinRemaining: fillers are only suggested while the candidate set
	// is still large (strictly more than this many words remain).
	fillerMinRemaining = 10
)

// solveConfig describes the game being solved.
type solveConfig struct {
	WordLength int    `json:"wordLength"`
	Prefix     string `json:"prefix"`
	Dictionary string `json:"dictionary"`
}

// historyEntry is one past guess with its feedback string ('g'/'y'/'b').
type historyEntry struct {
	Guess    string `json:"guess"`
	Feedback string `json:"feedback"`
}

// solveReq is the request payload for POST /solve/next.
type solveReq struct {
	Config  *solveConfig   `json:"config"`
	History []historyEntry `json:"history"`
}

// solveRes is the response payload for POST /solve/next.
type solveRes struct {
	Recommendations   []solver.Recommendation `json:"recommendations"`
	RemainingWords    []string                `json:"remainingWords"`
	RemainingCount    int                     `json:"remainingCount"`
	VariablePositions map[string][]string     `json:"variablePositions"`
	FillerSuggestions []string                `json:"fillerSuggestions"`
	GuessCount        int                     `json:"guessCount"`
}

// handleSolveNext validates the request, replays the guess history over the
// chosen dictionary, and returns recommendations, remaining candidates, and
// exploratory filler suggestions.
func (s *Server) handleSolveNext(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSolveErr(w, http.StatusBadRequest, "INVALID_ARGUMENT", "request body is not valid JSON")
		return
	}

	cfg, err := validateConfig(req.Config)
	if err != nil {
		writeSolveErr(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}

	dictionary, err := s.words.Load(cfg.Dictionary)
	if err != nil {
		if errors.Is(err, words.ErrNotFound) || errors.Is(err, words.ErrBadFormat) {
			writeSolveErr(w, http.StatusNotFound, "DICTIONARY_NOT_FOUND", err.Error())
			return
		}
		log.Error().Err(err).Str("dictionary", cfg.Dictionary).Msg("dictionary load failed")
		writeSolveErr(w, http.StatusInternalServerError, "INTERNAL_ERROR", "")
		return
	}

	guesses := make([]string, len(req.History))
	feedbacks := make([]string, len(req.History))
	for i, h := range req.History {
		guesses[i] = strings.ToLower(strings.TrimSpace(h.Guess))
		feedbacks[i] = strings.ToLower(strings.TrimSpace(h.Feedback))
	}

	sess, err := solver.Replay(dictionary, cfg.WordLength, cfg.Prefix, guesses, feedbacks)
	if err != nil {
		writeSolveErr(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}

	// Candidates come from the narrowed set; letter frequencies come from
	// the full dictionary. Intentional, see internal/solver/recommend.go.
	recs := solver.Recommend(sess.Candidates, cfg.WordLength, cfg.Prefix,
		solver.DefaultTopN, sess.GuessCount(), dictionary)
	for i := range recs {
		recs[i].Score = round2(recs[i].Score)
	}

	positions := solver.VariablePositions(sess.Candidates)
	fillers := []string{}
	if len(sess.Candidates) > fillerMinRemaining {
		letters := solver.VariableLetters(positions)
		fillers = solver.FindFillers(dictionary, letters, cfg.WordLength, solver.DefaultTopN)
	}

	remaining := sess.Candidates
	if len(remaining) > remainingWordsCap {
		remaining = remaining[:remainingWordsCap]
	}

	s.recordSolve(w, r, cfg, sess)

	_ = json.NewEncoder(w).Encode(solveRes{
		Recommendations:   recs,
		RemainingWords:    remaining,
		RemainingCount:    len(sess.Candidates),
		VariablePositions: formatPositions(positions),
		FillerSuggestions: fillers,
		GuessCount:        sess.GuessCount(),
	})
}

// validateConfig applies defaults and rejects malformed configs before any
// dictionary work happens.
func validateConfig(cfg *solveConfig) (solveConfig, error) {
	if cfg == nil {
		return solveConfig{}, errors.New("missing config in request")
	}
	out := *cfg
	if out.WordLength < 1 {
		return solveConfig{}, errors.New("wordLength must be a positive integer")
	}
	out.Prefix = strings.ToLower(strings.TrimSpace(out.Prefix))
	for _, r := range out.Prefix {
		if r < 'a' || r > 'z' {
			return solveConfig{}, errors.New("prefix must be lowercase letters")
		}
	}
	if len(out.Prefix) >= out.WordLength {
		return solveConfig{}, errors.New("prefix must be shorter than wordLength")
	}
	if strings.TrimSpace(out.Dictionary) == "" {
		out.Dictionary = words.DefaultName
	}
	return out, nil
}

// recordSolve appends to the solve log (best effort, non-fatal if it fails).
func (s *Server) recordSolve(w http.ResponseWriter, r *http.Request, cfg solveConfig, sess solver.Session) {
	e := solvelog.Entry{
		Dictionary:     cfg.Dictionary,
		WordLength:     cfg.WordLength,
		GuessCount:     sess.GuessCount(),
		RemainingCount: len(sess.Candidates),
	}
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		e.UserID = me.ID
	} else {
		e.AnonID = s.ensureAnonID(w, r)
	}
	if err := s.log.Insert(r.Context(), e); err != nil {
		log.Warn().Err(err).Msg("insert solve log row")
	}
}

// formatPositions renders variable positions with string keys for JSON.
func formatPositions(positions map[int][]byte) map[string][]string {
	out := make(map[string][]string, len(positions))
	for pos, letters := range positions {
		ls := make([]string, len(letters))
		for i, c := range letters {
			ls[i] = string(c)
		}
		out[strconv.Itoa(pos)] = ls
	}
	return out
}

// writeSolveErr writes the solver error envelope. For INTERNAL_ERROR the
// message is withheld from the caller.
func writeSolveErr(w http.ResponseWriter, status int, kind, msg string) {
	w.WriteHeader(status)
	body := map[string]string{"error": kind}
	if kind != "INTERNAL_ERROR" && msg != "" {
		body["message"] = msg
	} else if kind == "INTERNAL_ERROR" {
		body["message"] = "An unexpected error occurred"
	}
	_ = json.NewEncoder(w).Encode(body)
}

// round2 rounds to two decimal places for response scores.
func round2(v float64) float64 { return math.Round(v*100) / 100 }
