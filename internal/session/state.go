package session

import (
	"time"

	"github.com/vovakirdan/skyflap/internal/collision"
	"github.com/vovakirdan/skyflap/internal/flyer"
	"github.com/vovakirdan/skyflap/internal/obstacles"
	"github.com/vovakirdan/skyflap/internal/viewport"
)

// State is the session lifecycle phase.
type State int

const (
	NotStarted State = iota
	Playing
	Ended
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Playing:
		return "Playing"
	case Ended:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Snapshot is a read-only copy of the session for renderers.
type Snapshot struct {
	State         State
	RestartLocked bool
	LockRemaining time.Duration

	Score   int
	Best    int
	NewBest bool // The last ended run set a new best
	Ticks   int
	Name    string
	Notice  string
	Cause   collision.Cause

	Params    viewport.Params
	Flyer     flyer.Flyer
	Obstacles []obstacles.Obstacle
}
