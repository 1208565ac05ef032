package flyer

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/viewport"
)

func testPhysics() Physics {
	return PhysicsFromConfig(config.DefaultConfig().Physics)
}

func placed() *Flyer {
	f := &Flyer{}
	f.Place(viewport.Compute(800, 600))
	return f
}

func TestPlace(t *testing.T) {
	f := placed()
	if f.X != 80 || f.Y != 300 || f.Width != 35 || f.Height != 50 {
		t.Errorf("Place() = %+v, expected x=80 y=300 35x50", *f)
	}
	if f.Velocity != 0 || f.Cooldown != 0 {
		t.Error("Place() should reset velocity and cooldown")
	}
}

func TestGravity(t *testing.T) {
	ph := testPhysics()
	f := placed()

	f.Step(ph)

	if f.Velocity != ph.Gravity {
		t.Errorf("velocity after one tick = %v, expected %v", f.Velocity, ph.Gravity)
	}
	if f.Y != 300+ph.Gravity {
		t.Errorf("y after one tick = %v, expected %v", f.Y, 300+ph.Gravity)
	}
}

func TestVelocityNeverExceedsCap(t *testing.T) {
	ph := testPhysics()
	f := placed()

	for i := 0; i < 500; i++ {
		if i%37 == 0 {
			f.Jump(ph)
		}
		f.Step(ph)
		if f.Velocity > ph.MaxVelocity {
			t.Fatalf("tick %d: velocity %v exceeds cap %v", i, f.Velocity, ph.MaxVelocity)
		}
	}
}

func TestAscentDamping(t *testing.T) {
	ph := testPhysics()
	f := placed()

	if !f.Jump(ph) {
		t.Fatal("first jump should be accepted")
	}
	f.Step(ph)

	want := (ph.JumpImpulse + ph.Gravity) * ph.AscentDamping
	if f.Velocity != want {
		t.Errorf("velocity after jump tick = %v, expected %v", f.Velocity, want)
	}
	if f.Y != 300+want {
		t.Errorf("flyer should rise: y = %v, expected %v", f.Y, 300+want)
	}
}

func TestJumpCooldown(t *testing.T) {
	ph := testPhysics()
	f := placed()

	if !f.Jump(ph) {
		t.Fatal("first jump should be accepted")
	}
	f.Step(ph)
	v := f.Velocity

	// Repeated requests inside the cooldown window are dropped.
	for i := 0; i < 5; i++ {
		if f.Jump(ph) {
			t.Fatalf("jump %d inside cooldown was accepted", i)
		}
		if f.Velocity != v {
			t.Fatalf("rejected jump changed velocity: %v -> %v", v, f.Velocity)
		}
	}

	// 150ms cooldown at a 16ms budget needs ceil(150/16) = 10 ticks in total.
	for i := 1; i < 10; i++ {
		f.Step(ph)
	}
	if f.Cooldown != 0 {
		t.Fatalf("cooldown = %v after 10 ticks, expected 0", f.Cooldown)
	}
	if !f.Jump(ph) {
		t.Error("jump after cooldown should be accepted")
	}
	if f.Velocity != ph.JumpImpulse || f.Cooldown != ph.MinJumpInterval {
		t.Errorf("accepted jump: velocity=%v cooldown=%v", f.Velocity, f.Cooldown)
	}
}

func TestCooldownDecayStopsAtZero(t *testing.T) {
	ph := testPhysics()
	f := placed()
	f.Cooldown = 5 * time.Millisecond

	f.Step(ph)
	if f.Cooldown != 0 {
		t.Errorf("cooldown = %v, expected clamp to 0", f.Cooldown)
	}
}

func TestResizeKeepsY(t *testing.T) {
	f := placed()
	f.Y = 123

	f.Resize(viewport.Compute(300, 600))
	if f.Y != 123 {
		t.Errorf("Resize should keep y, got %v", f.Y)
	}
	if math.Abs(f.X-30) > 1e-9 || math.Abs(f.Width-24) > 1e-9 {
		t.Errorf("Resize should adopt x and width, got x=%v w=%v", f.X, f.Width)
	}
}
