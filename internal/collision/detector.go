// Package collision detects crashes and scores passed obstacles each tick.
package collision

import (
	"github.com/vovakirdan/skyflap/internal/flyer"
	"github.com/vovakirdan/skyflap/internal/obstacles"
	"github.com/vovakirdan/skyflap/internal/viewport"
)

// Cause identifies what ended a session.
type Cause int

const (
	CauseNone Cause = iota
	CauseObstacle
	CauseBounds
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseObstacle:
		return "obstacle"
	case CauseBounds:
		return "bounds"
	default:
		return "unknown"
	}
}

// Result is the outcome of one detection pass.
type Result struct {
	Crashed bool
	Cause   Cause // First violation found this tick
	Scored  int   // Obstacles newly passed this tick
}

// Check tests the flyer against every live obstacle and the playfield bounds,
// and marks obstacles the flyer has fully passed. Passed flags are written
// through the slice, so each obstacle scores at most once.
func Check(f *flyer.Flyer, items []obstacles.Obstacle, p viewport.Params) Result {
	var res Result
	fb := f.Box()

	for i := range items {
		o := &items[i]

		if !res.Crashed && hitsObstacle(f, o, p.ObstacleWidth) {
			res.Crashed = true
			res.Cause = CauseObstacle
		}

		if !o.Passed && f.X > o.X+p.ObstacleWidth {
			o.Passed = true
			res.Scored++
		}
	}

	if !res.Crashed && (fb.Y < 0 || fb.Bottom() > p.Height) {
		res.Crashed = true
		res.Cause = CauseBounds
	}

	return res
}

// hitsObstacle reports horizontal overlap combined with a miss of the gap.
func hitsObstacle(f *flyer.Flyer, o *obstacles.Obstacle, width float64) bool {
	if !f.Box().OverlapsX(o.TopBox(width)) {
		return false
	}
	return f.Y < o.TopHeight || f.Y+f.Height > o.GapBottom()
}
