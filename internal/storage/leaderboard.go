package storage

import (
	"fmt"
	"time"

	"github.com/vovakirdan/skyflap/internal/sanitize"
)

// AnonymousName is stored for submissions whose name sanitizes to nothing.
const AnonymousName = "Anonymous"

// LeaderboardEntry is one name's best submitted score.
type LeaderboardEntry struct {
	Name      string
	Score     int
	UpdatedAt time.Time
}

// Submit records score under name. Each name keeps only its highest score,
// so repeating a submission is harmless.
func (s *Store) Submit(name string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO leaderboard (name, score) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			score = MAX(leaderboard.score, excluded.score),
			updated_at = CASE WHEN excluded.score > leaderboard.score
				THEN CURRENT_TIMESTAMP ELSE leaderboard.updated_at END`,
		sanitize.NameOr(name, AnonymousName), score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot submit score: %w", err)
	}
	return nil
}

// FetchTop retrieves the top N leaderboard entries, highest first.
func (s *Store) FetchTop(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT name, score, updated_at
		 FROM leaderboard
		 ORDER BY score DESC, updated_at ASC, name ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		var updatedAt any
		if err := rows.Scan(&e.Name, &e.Score, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearLeaderboard deletes every leaderboard entry.
func (s *Store) ClearLeaderboard() error {
	_, err := s.db.Exec("DELETE FROM leaderboard")
	if err != nil {
		return fmt.Errorf("storage: cannot clear leaderboard: %w", err)
	}
	return nil
}
