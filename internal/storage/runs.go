package storage

import (
	"fmt"
	"time"
)

// Run is one finished session.
type Run struct {
	ID        int64
	ProfileID string
	Score     int
	Duration  time.Duration
	CreatedAt time.Time
}

// Stats summarizes a profile's run history.
type Stats struct {
	Runs      int
	Best      int
	Average   float64
	TotalTime time.Duration
}

// RecordRun stores a finished run. Returns the ID of the inserted record.
func (s *Store) RecordRun(profileID string, score int, d time.Duration) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (profile_id, score, duration_ms) VALUES (?, ?, ?)",
		profileID, score, d.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves a profile's latest runs, newest first.
func (s *Store) RecentRuns(profileID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, profile_id, score, duration_ms, created_at
		 FROM runs
		 WHERE profile_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		profileID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.ProfileID, &r.Score, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats aggregates a profile's run history. A profile with no runs yields
// zero stats.
func (s *Store) Stats(profileID string) (Stats, error) {
	var st Stats
	var totalMs int64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0.0), COALESCE(SUM(duration_ms), 0)
		 FROM runs
		 WHERE profile_id = ?`,
		profileID,
	).Scan(&st.Runs, &st.Best, &st.Average, &totalMs)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	st.TotalTime = time.Duration(totalMs) * time.Millisecond
	return st, nil
}
