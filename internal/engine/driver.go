// Package engine advances a session one frame at a time: it applies pending
// resizes, integrates the flyer, scrolls obstacles, resolves collisions and
// ends the run on a crash.
package engine

import (
	"context"
	"time"

	"github.com/vovakirdan/skyflap/internal/collision"
	"github.com/vovakirdan/skyflap/internal/core"
	"github.com/vovakirdan/skyflap/internal/session"
	"github.com/vovakirdan/skyflap/internal/viewport"
)

// Pilot chooses an input before each frame of Run.
type Pilot interface {
	Decide(m *session.Machine) core.Action
}

// Driver runs the per-frame pipeline for one session.
type Driver struct {
	machine *session.Machine
	pilot   Pilot

	pending       bool
	width, height float64
}

// New wraps a session machine.
func New(m *session.Machine) *Driver {
	return &Driver{machine: m}
}

// Machine returns the driven session.
func (d *Driver) Machine() *session.Machine {
	return d.machine
}

// SetPilot installs a pilot consulted by Run before every tick.
func (d *Driver) SetPilot(p Pilot) {
	d.pilot = p
}

// Resize records a new playfield size. The viewport is recomputed at the
// start of the next tick so a frame never mixes two sizes.
func (d *Driver) Resize(width, height float64) {
	d.pending = true
	d.width = width
	d.height = height
}

// Input forwards a semantic action to the session.
func (d *Driver) Input(action core.Action, now time.Duration) bool {
	return d.machine.HandleInput(action, now)
}

// Tick advances one frame and reports whether the session is still Playing.
// Outside Playing only a pending resize is applied.
func (d *Driver) Tick(now time.Duration) bool {
	m := d.machine
	if d.pending {
		d.pending = false
		m.Resize(viewport.Compute(d.width, d.height))
	}

	if m.State() != session.Playing {
		return false
	}

	p := m.Params()
	f := m.Flyer()
	f.Step(m.Physics())

	stream := m.Stream()
	stream.Update(now, p, m.Score(), m.Ticks())

	res := collision.Check(f, stream.Items(), p)
	m.Advance(res.Scored)
	if res.Crashed {
		m.Crash(now, res.Cause)
	}

	return m.State() == session.Playing
}

// Run ticks once per received frame timestamp until the session leaves
// Playing, the channel closes or ctx is cancelled.
func (d *Driver) Run(ctx context.Context, frames <-chan time.Duration) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-frames:
			if !ok {
				return nil
			}
			if d.pilot != nil {
				d.Input(d.pilot.Decide(d.machine), now)
			}
			if !d.Tick(now) {
				return nil
			}
		}
	}
}
