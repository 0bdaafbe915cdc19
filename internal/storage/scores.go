package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/ecosnake/internal/core"
)

// ScoreEntry is one leaderboard row.
type ScoreEntry struct {
	ID         int64
	Profile    string
	Name       string
	Score      int
	Difficulty string
	SessionID  string
	CreatedAt  time.Time
}

// MergeScore folds a finished session into a profile's leaderboard.
// Each player name holds at most one row, replaced only by a strictly
// higher score; the board is then cut to the best limit rows. A replaced
// row gets a new id, so among equal scores whoever reached the score
// first ranks higher.
// Reports whether the record is on the board afterwards.
func (s *Store) MergeScore(profile string, rec core.ScoreRecord, limit int) (bool, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	var oldID int64
	var oldScore int
	err = tx.QueryRow(
		"SELECT id, score FROM scores WHERE profile = ? AND name = ?",
		profile, rec.Name,
	).Scan(&oldID, &oldScore)

	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return false, fmt.Errorf("storage: cannot query player score: %w", err)
	case rec.Score <= oldScore:
		return false, nil
	default:
		if _, err := tx.Exec("DELETE FROM scores WHERE id = ?", oldID); err != nil {
			return false, fmt.Errorf("storage: cannot replace score: %w", err)
		}
	}

	res, err := tx.Exec(
		"INSERT INTO scores (profile, name, score, difficulty, session_id) VALUES (?, ?, ?, ?, ?)",
		profile, rec.Name, rec.Score, rec.Difficulty, rec.SessionID,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save score: %w", err)
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	_, err = tx.Exec(
		`DELETE FROM scores
		 WHERE profile = ? AND id NOT IN (
			SELECT id FROM scores WHERE profile = ?
			ORDER BY score DESC, id ASC
			LIMIT ?
		 )`,
		profile, profile, limit,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot truncate scores: %w", err)
	}

	var kept int
	if err := tx.QueryRow("SELECT COUNT(*) FROM scores WHERE id = ?", newID).Scan(&kept); err != nil {
		return false, fmt.Errorf("storage: cannot check score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("storage: cannot commit score: %w", err)
	}
	return kept == 1, nil
}

// TopScores retrieves the leaderboard for a profile, best first.
func (s *Store) TopScores(profile string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT id, profile, name, score, difficulty, session_id, created_at
		 FROM scores
		 WHERE profile = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Profile, &e.Name, &e.Score, &e.Difficulty, &e.SessionID, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best score on a profile's board.
// Returns 0 if no scores exist.
func (s *Store) HighScore(profile string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE profile = ?",
		profile,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes a profile's leaderboard and session history.
func (s *Store) ClearScores(profile string) error {
	for _, table := range []string{"scores", "sessions"} {
		if _, err := s.db.Exec("DELETE FROM "+table+" WHERE profile = ?", profile); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}
	return nil
}
