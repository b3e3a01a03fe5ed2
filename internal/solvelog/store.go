// internal/solvelog/store.go
//
// SQLite-backed log of accepted solve requests. One row per /solve/next call:
// which dictionary, what word length, how far into the solve the caller was,
// and how many candidates remained. Rows are owned by a user ID or an
// anonymous cookie ID; anonymous rows can be claimed on signup/login.
// The candidate words themselves are never stored — sessions stay stateless.

package solvelog

import (
	"context"
	"database/sql"
	"time"
)

// Entry is one solve request to record.
type Entry struct {
	UserID         string // empty for guests
	AnonID         string // empty for authenticated users
	Dictionary     string
	WordLength     int
	GuessCount     int
	RemainingCount int
}

// Row is a recorded solve request as returned to clients.
type Row struct {
	Dictionary     string `json:"dictionary"`
	WordLength     int    `json:"wordLength"`
	GuessCount     int    `json:"guessCount"`
	RemainingCount int    `json:"remainingCount"`
	CreatedAt      string `json:"createdAt"`
}

// Stats summarizes a user's solve history.
type Stats struct {
	Solves       int     `json:"solves"`
	AvgGuesses   float64 `json:"avgGuesses"`
	Dictionaries int     `json:"dictionaries"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert appends one solve row. Exactly one of UserID/AnonID should be set.
func (s *Store) Insert(ctx context.Context, e Entry) error {
	user := sql.NullString{String: e.UserID, Valid: e.UserID != ""}
	anon := sql.NullString{String: e.AnonID, Valid: e.AnonID != ""}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO solve_log (user_id, anonymous_id, dictionary, word_length, guess_count, remaining_count, created_at)
        VALUES (?,?,?,?,?,?,?)`,
		user, anon, e.Dictionary, e.WordLength, e.GuessCount, e.RemainingCount,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Recent returns the caller's latest solve rows, newest first.
// userID takes precedence over anonID when both are present.
func (s *Store) Recent(ctx context.Context, userID, anonID string, limit int) ([]Row, error) {
	if limit <= 0 {
		limit = 50
	}
	owner, arg := `anonymous_id=?`, anonID
	if userID != "" {
		owner, arg = `user_id=?`, userID
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT dictionary, word_length, guess_count, remaining_count, created_at
        FROM solve_log WHERE `+owner+`
        ORDER BY id DESC LIMIT ?`, arg, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Row, 0, limit)
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Dictionary, &r.WordLength, &r.GuessCount, &r.RemainingCount, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// UserStats aggregates a user's solve history.
func (s *Store) UserStats(ctx context.Context, userID string) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(1), COALESCE(AVG(guess_count), 0), COUNT(DISTINCT dictionary)
        FROM solve_log WHERE user_id=?`, userID,
	).Scan(&st.Solves, &st.AvgGuesses, &st.Dictionaries)
	return st, err
}

// Claim transfers anonymous solve rows to a user account after auth.
func (s *Store) Claim(ctx context.Context, anonID, userID string) error {
	if anonID == "" || userID == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE solve_log SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`,
		userID, anonID,
	)
	return err
}
