package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ecosnake/internal/core"
)

// Recorder is the score sink handed to sessions. It writes the session
// history and merges the leaderboard synchronously; failures are logged
// and dropped so they never reach the game loop.
type Recorder struct {
	store   *Store
	profile string
	limit   int
	logger  *log.Logger
}

var _ core.ScoreSink = (*Recorder)(nil)

// NewRecorder creates a sink for one profile. A nil store makes every
// Record a logged no-op, for running without a database.
func NewRecorder(store *Store, profile string, limit int, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{
		store:   store,
		profile: profile,
		limit:   limit,
		logger:  logger.With("profile", profile),
	}
}

// Record implements core.ScoreSink.
func (r *Recorder) Record(rec core.ScoreRecord) {
	if r.store == nil {
		r.logger.Debug("no score store, dropping record", "name", rec.Name, "score", rec.Score)
		return
	}

	if _, err := r.store.SaveSession(r.profile, rec); err != nil {
		r.logger.Error("could not save session", "session", rec.SessionID, "error", err)
	}

	kept, err := r.store.MergeScore(r.profile, rec, r.limit)
	if err != nil {
		r.logger.Error("could not merge score", "name", rec.Name, "score", rec.Score, "error", err)
		return
	}
	r.logger.Info("score recorded",
		"name", rec.Name,
		"score", rec.Score,
		"difficulty", rec.Difficulty,
		"leaderboard", kept,
	)
}
