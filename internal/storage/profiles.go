package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/skyflap/internal/sanitize"
)

// Profile is a local or per-SSH-user player record.
type Profile struct {
	ID        string
	Name      string
	BestScore int
	UpdatedAt time.Time
}

// Profile returns the profile with the given id. A missing profile is not an
// error: it comes back empty with only the ID set.
func (s *Store) Profile(id string) (Profile, error) {
	p := Profile{ID: id}
	var updatedAt any

	err := s.db.QueryRow(
		"SELECT name, best_score, updated_at FROM profiles WHERE id = ?",
		id,
	).Scan(&p.Name, &p.BestScore, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("storage: cannot query profile %s: %w", id, err)
	}

	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}

// SaveName sanitizes and stores the profile's display name, returning the
// stored value.
func (s *Store) SaveName(id, name string) (string, error) {
	clean := sanitize.DisplayName(name)

	_, err := s.db.Exec(
		`INSERT INTO profiles (id, name) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, updated_at = CURRENT_TIMESTAMP`,
		id, clean,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save name: %w", err)
	}
	return clean, nil
}

// SaveBestScore raises the profile's best score. Lower scores are ignored.
func (s *Store) SaveBestScore(id string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO profiles (id, best_score) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			best_score = MAX(profiles.best_score, excluded.best_score),
			updated_at = CURRENT_TIMESTAMP`,
		id, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// ProfileScores binds a profile id to the store so it can serve as the
// session's score keeper and run recorder.
type ProfileScores struct {
	store *Store
	id    string
}

// ForProfile returns the adapter for one profile.
func (s *Store) ForProfile(id string) *ProfileScores {
	return &ProfileScores{store: s, id: id}
}

// SaveBestScore implements session.ScoreKeeper.
func (p *ProfileScores) SaveBestScore(score int) error {
	return p.store.SaveBestScore(p.id, score)
}

// RecordRun implements session.RunRecorder.
func (p *ProfileScores) RecordRun(score int, d time.Duration) error {
	_, err := p.store.RecordRun(p.id, score, d)
	return err
}
