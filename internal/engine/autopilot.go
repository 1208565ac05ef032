package engine

import (
	"github.com/vovakirdan/skyflap/internal/core"
	"github.com/vovakirdan/skyflap/internal/session"
)

// Autopilot is a simple bot for headless runs. It flaps whenever the
// flyer's bottom sinks past the lower part of the next gap.
type Autopilot struct {
	// Band is the share of the gap, measured down from its top, that the
	// flyer's bottom may reach before a flap. Zero means 5/6.
	Band float64
}

// Decide picks the action for the current frame.
func (a Autopilot) Decide(m *session.Machine) core.Action {
	if m.State() != session.Playing {
		return core.ActionNone
	}

	band := a.Band
	if band <= 0 {
		band = 5.0 / 6.0
	}

	p := m.Params()
	f := m.Flyer()

	// Aim for the middle of the field until an obstacle is ahead.
	threshold := p.Height/2 + f.Height/2
	for _, o := range m.Stream().Items() {
		if o.X+p.ObstacleWidth >= f.X {
			threshold = o.TopHeight + band*o.Gap
			break
		}
	}

	if f.Y+f.Height > threshold && f.Velocity >= 0 {
		return core.ActionJumpOrStart
	}
	return core.ActionNone
}
