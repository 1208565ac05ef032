// Package flyer integrates the vertical motion of the player-controlled flyer.
package flyer

import (
	"time"

	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/core"
	"github.com/vovakirdan/skyflap/internal/viewport"
)

// Physics holds the integration constants, in playfield units per tick.
type Physics struct {
	Gravity         float64       // Downward acceleration per tick
	JumpImpulse     float64       // Velocity set by a jump (negative = up)
	MaxVelocity     float64       // Velocity cap
	AscentDamping   float64       // Multiplier applied while rising
	MinJumpInterval time.Duration // Cooldown armed by an accepted jump
	TickBudget      time.Duration // Nominal tick length used for cooldown decay
}

// PhysicsFromConfig converts the YAML physics section.
func PhysicsFromConfig(c config.Physics) Physics {
	return Physics{
		Gravity:         c.Gravity,
		JumpImpulse:     c.JumpImpulse,
		MaxVelocity:     c.MaxVelocity,
		AscentDamping:   c.AscentDamping,
		MinJumpInterval: c.MinJumpInterval(),
		TickBudget:      c.TickBudget(),
	}
}

// Flyer is the player-controlled entity. X and the size come from the viewport;
// Y and Velocity are integrated every tick.
type Flyer struct {
	X, Y          float64
	Width, Height float64
	Velocity      float64
	Cooldown      time.Duration // Remaining jump cooldown
}

// Place puts the flyer at the viewport origin at rest.
func (f *Flyer) Place(p viewport.Params) {
	f.X = p.FlyerX
	f.Y = p.FlyerY
	f.Width = p.FlyerWidth
	f.Height = p.FlyerHeight
	f.Velocity = 0
	f.Cooldown = 0
}

// Resize adopts the viewport's horizontal position and size; Y is kept.
func (f *Flyer) Resize(p viewport.Params) {
	f.X = p.FlyerX
	f.Width = p.FlyerWidth
	f.Height = p.FlyerHeight
}

// Step advances the flyer by one tick. It never clamps Y: leaving the
// playfield is detected by the collision pass.
func (f *Flyer) Step(ph Physics) {
	f.Velocity = min(f.Velocity+ph.Gravity, ph.MaxVelocity)
	if f.Velocity < 0 {
		f.Velocity *= ph.AscentDamping
	}
	f.Y += f.Velocity

	f.Cooldown = max(0, f.Cooldown-ph.TickBudget)
}

// Jump applies the jump impulse unless the cooldown is still running.
// It reports whether the jump was accepted; rejected jumps change nothing.
func (f *Flyer) Jump(ph Physics) bool {
	if f.Cooldown > 0 {
		return false
	}
	f.Velocity = ph.JumpImpulse
	f.Cooldown = ph.MinJumpInterval
	return true
}

// Box returns the flyer's hitbox.
func (f *Flyer) Box() core.Box {
	return core.Box{X: f.X, Y: f.Y, W: f.Width, H: f.Height}
}
