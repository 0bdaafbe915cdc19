package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/ecosnake/internal/core"
)

// SessionResult is one finished session in the history table. Unlike the
// leaderboard the history keeps every game.
type SessionResult struct {
	ID         int64
	SessionID  string
	Profile    string
	Name       string
	Difficulty string
	Score      int
	CreatedAt  time.Time
}

// SaveSession appends a finished session to the history.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(profile string, rec core.ScoreRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO sessions (session_id, profile, name, difficulty, score)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.SessionID, profile, rec.Name, rec.Difficulty, rec.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions of a profile.
func (s *Store) RecentSessions(profile string, limit int) ([]SessionResult, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySessions(
		`SELECT id, session_id, profile, name, difficulty, score, created_at
		 FROM sessions
		 WHERE profile = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		profile, limit,
	)
}

// PlayerHistory retrieves the most recent sessions of one player.
func (s *Store) PlayerHistory(profile, name string, limit int) ([]SessionResult, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySessions(
		`SELECT id, session_id, profile, name, difficulty, score, created_at
		 FROM sessions
		 WHERE profile = ? AND name = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		profile, name, limit,
	)
}

func (s *Store) querySessions(query string, args ...any) ([]SessionResult, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var results []SessionResult
	for rows.Next() {
		var r SessionResult
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Profile, &r.Name, &r.Difficulty, &r.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats contains aggregated statistics for a profile.
type Stats struct {
	Profile    string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics over a profile's session history.
func (s *Store) Stats(profile string) (*Stats, error) {
	stats := &Stats{Profile: profile}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM sessions WHERE profile = ?`,
		profile,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM sessions WHERE profile = ? ORDER BY id DESC LIMIT 1`,
		profile,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// AllStats retrieves statistics for every profile that has been played.
func (s *Store) AllStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT profile, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM sessions
		 GROUP BY profile`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Profile, &st.GamesCount, &st.HighScore, &st.AvgScore, &st.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Profile] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
