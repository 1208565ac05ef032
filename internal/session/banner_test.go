package session

import (
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/skyflap/internal/viewport"
)

func TestBanner(t *testing.T) {
	tests := []struct {
		name     string
		snap     Snapshot
		contains []string
		absent   []string
	}{
		{
			name:     "not started",
			snap:     Snapshot{State: NotStarted},
			contains: []string{"SKYFLAP", "press space or click to start"},
		},
		{
			name:     "locked",
			snap:     Snapshot{State: Ended, Score: 3, Best: 9, RestartLocked: true, LockRemaining: 450 * time.Millisecond},
			contains: []string{"GAME OVER", "Score: 3", "Best: 9", "restart in 0.5s"},
			absent:   []string{"press space or r to restart"},
		},
		{
			name:     "unlocked new best with notice",
			snap:     Snapshot{State: Ended, Score: 12, Best: 12, NewBest: true, Notice: "leaderboard unavailable"},
			contains: []string{"Score: 12", "New best!", "leaderboard unavailable", "press space or r to restart"},
			absent:   []string{"Best: 12"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lines := tc.snap.Banner()
			for _, want := range tc.contains {
				if !slices.Contains(lines, want) {
					t.Errorf("Banner() = %q, missing %q", lines, want)
				}
			}
			for _, bad := range tc.absent {
				if slices.Contains(lines, bad) {
					t.Errorf("Banner() = %q, must not contain %q", lines, bad)
				}
			}
		})
	}

	if lines := (Snapshot{State: Playing}).Banner(); len(lines) != 0 {
		t.Errorf("expected no banner while playing, got %q", lines)
	}
}

func TestBannerCountdownFromSnapshot(t *testing.T) {
	m := New(viewport.Compute(800, 600), Options{})
	m.Start(0)
	m.End(0)

	lines := m.Snapshot(500 * time.Millisecond).Banner()
	if !slices.Contains(lines, "restart in 0.3s") {
		t.Errorf("Banner() = %q, expected the remaining lock time", lines)
	}

	lines = m.Snapshot(750 * time.Millisecond).Banner()
	if !slices.Contains(lines, "press space or r to restart") {
		t.Errorf("Banner() = %q, expected the restart hint once unlocked", lines)
	}
}

func TestCountdown(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{750 * time.Millisecond, "restart in 0.8s"},
		{700 * time.Millisecond, "restart in 0.7s"},
		{time.Millisecond, "restart in 0.1s"},
		{1500 * time.Millisecond, "restart in 1.5s"},
	}
	for _, tc := range tests {
		if got := countdown(tc.d); got != tc.want {
			t.Errorf("countdown(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestScoreLine(t *testing.T) {
	snap := Snapshot{Name: "kit", Score: 4, Best: 9}
	if got := snap.ScoreLine(); got != "kit scored 4 in skyflap (best 9)" {
		t.Errorf("ScoreLine() = %q", got)
	}
}
