package engine

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/skyflap/internal/collision"
	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/core"
	"github.com/vovakirdan/skyflap/internal/flyer"
	"github.com/vovakirdan/skyflap/internal/obstacles"
	"github.com/vovakirdan/skyflap/internal/session"
	"github.com/vovakirdan/skyflap/internal/viewport"
)

const frame = 16 * time.Millisecond

func newDriver(width, height float64) *Driver {
	cfg := config.DefaultConfig()
	m := session.New(viewport.Compute(width, height), session.Options{
		Physics: flyer.PhysicsFromConfig(cfg.Physics),
		Tuning:  obstacles.TuningFromConfig(cfg),
		Seed:    42,
	})
	return New(m)
}

func TestTickBeforeStart(t *testing.T) {
	d := newDriver(800, 600)
	if d.Tick(frame) {
		t.Error("Tick before start should report false")
	}
	m := d.Machine()
	if m.Ticks() != 0 || m.Stream().Len() != 0 || m.Flyer().Y != 300 {
		t.Error("Tick before start must not simulate")
	}
}

func TestFirstTickSpawns(t *testing.T) {
	d := newDriver(800, 600)
	m := d.Machine()
	m.Start(0)

	if !d.Tick(frame) {
		t.Fatal("first tick should keep playing")
	}
	if m.Stream().Len() != 1 {
		t.Fatalf("expected one obstacle after the first tick, got %d", m.Stream().Len())
	}
	speed := m.Params().ScrollSpeed(3, 1, 1920)
	if got := m.Stream().Items()[0].X; math.Abs(got-(800-speed)) > 1e-9 {
		t.Errorf("expected obstacle at %v, got %v", 800-speed, got)
	}
	if m.Flyer().Y != 300.5 {
		t.Errorf("expected flyer to fall to 300.5, got %v", m.Flyer().Y)
	}
}

func TestBoundaryEndsSession(t *testing.T) {
	d := newDriver(800, 600)
	m := d.Machine()
	m.Start(0)
	m.Flyer().Y = 560

	if d.Tick(frame) {
		t.Fatal("flyer past the floor should end the session")
	}
	snap := m.Snapshot(frame)
	if snap.State != session.Ended {
		t.Fatalf("expected Ended, got %v", snap.State)
	}
	if snap.Cause != collision.CauseBounds {
		t.Errorf("expected bounds cause, got %v", snap.Cause)
	}
	if !snap.RestartLocked {
		t.Error("expected restart lock right after the crash")
	}
}

func TestCeilingEndsSession(t *testing.T) {
	d := newDriver(800, 600)
	m := d.Machine()
	m.Start(0)
	m.Flyer().Y = 2
	d.Input(core.ActionJumpOrStart, 0)

	if d.Tick(frame) {
		t.Fatal("flyer above the ceiling should end the session")
	}
	if m.Snapshot(frame).Cause != collision.CauseBounds {
		t.Error("expected bounds cause")
	}
}

func TestFreeFallEnds(t *testing.T) {
	d := newDriver(800, 600)
	m := d.Machine()
	m.Start(0)

	ticks := 0
	for now := frame; d.Tick(now); now += frame {
		ticks++
		if ticks > 200 {
			t.Fatal("free fall never ended")
		}
	}

	if ticks < 20 || ticks > 60 {
		t.Errorf("unexpected free fall length: %d ticks", ticks)
	}
	if m.Score() != 0 {
		t.Errorf("expected score 0, got %d", m.Score())
	}
	if m.Snapshot(0).Cause != collision.CauseBounds {
		t.Error("expected bounds cause")
	}
}

func TestObstacleCrash(t *testing.T) {
	d := newDriver(800, 600)
	m := d.Machine()
	m.Start(0)
	d.Tick(frame)

	// Wall with its gap far above the flyer, right in its path.
	m.Stream().Append(obstacles.Obstacle{X: 90, TopHeight: 50, Gap: 120})
	m.Flyer().Velocity = 0

	if d.Tick(2 * frame) {
		t.Fatal("expected crash into the obstacle")
	}
	if m.Snapshot(0).Cause != collision.CauseObstacle {
		t.Errorf("expected obstacle cause, got %v", m.Snapshot(0).Cause)
	}
}

func TestScoring(t *testing.T) {
	d := newDriver(800, 600)
	m := d.Machine()
	m.Start(0)
	d.Tick(frame)

	// Obstacle whose right edge sits just ahead of the flyer; one scroll
	// step moves it behind.
	m.Stream().Append(obstacles.Obstacle{X: 31, TopHeight: 100, Gap: 400})
	d.Tick(2 * frame)

	if m.Score() != 1 {
		t.Errorf("expected score 1, got %d", m.Score())
	}
	d.Tick(3 * frame)
	if m.Score() != 1 {
		t.Errorf("obstacle scored twice, got %d", m.Score())
	}
}

func TestPendingResize(t *testing.T) {
	d := newDriver(800, 600)
	m := d.Machine()

	d.Resize(1000, 400)
	if m.Params().Width != 800 {
		t.Fatal("resize should wait for the next tick")
	}
	d.Tick(frame)
	if m.Params().Width != 1000 || m.Params().Height != 400 {
		t.Errorf("expected 1000x400 after tick, got %vx%v", m.Params().Width, m.Params().Height)
	}

	m.Start(2 * frame)
	m.Flyer().Y = 100
	d.Resize(1200, 900)
	d.Tick(3 * frame)
	if m.Params().Width != 1200 {
		t.Error("resize not applied while playing")
	}
	if m.Flyer().Y != 100.5 {
		t.Errorf("mid-run resize should keep y, got %v", m.Flyer().Y)
	}
}

func TestRunStopsWhenSessionEnds(t *testing.T) {
	d := newDriver(800, 600)
	d.Machine().Start(0)

	frames := make(chan time.Duration, 500)
	for i := 1; i <= 500; i++ {
		frames <- time.Duration(i) * frame
	}
	close(frames)

	if err := d.Run(context.Background(), frames); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if d.Machine().State() != session.Ended {
		t.Errorf("expected Ended, got %v", d.Machine().State())
	}
	if len(frames) == 0 {
		t.Error("Run should stop reading once the session ended")
	}
}

func TestRunStopsOnClosedChannel(t *testing.T) {
	d := newDriver(800, 600)
	d.Machine().Start(0)

	frames := make(chan time.Duration)
	close(frames)

	if err := d.Run(context.Background(), frames); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if d.Machine().State() != session.Playing {
		t.Error("closing the frame source must not end the session")
	}
}

func TestRunCancelled(t *testing.T) {
	d := newDriver(800, 600)
	d.Machine().Start(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Run(ctx, make(chan time.Duration))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestAutopilotDecide(t *testing.T) {
	d := newDriver(800, 600)
	m := d.Machine()
	bot := Autopilot{}

	if bot.Decide(m) != core.ActionNone {
		t.Error("autopilot should not act before the run starts")
	}

	m.Start(0)
	m.Stream().Append(obstacles.Obstacle{X: 200, TopHeight: 100, Gap: 150})

	m.Flyer().Y = 300
	if bot.Decide(m) != core.ActionJumpOrStart {
		t.Error("expected a flap below the gap")
	}
	m.Flyer().Y = 100
	if bot.Decide(m) != core.ActionNone {
		t.Error("expected no flap inside the gap")
	}
	m.Flyer().Y = 300
	m.Flyer().Velocity = -3
	if bot.Decide(m) != core.ActionNone {
		t.Error("expected no flap while rising")
	}
}

func TestAutopilotHovers(t *testing.T) {
	d := newDriver(800, 600)
	m := d.Machine()
	m.Start(0)
	bot := Autopilot{}

	now := time.Duration(0)
	for i := 0; i < 150; i++ {
		now += frame
		d.Input(bot.Decide(m), now)
		if !d.Tick(now) {
			t.Fatalf("autopilot crashed after %d ticks (cause %v)", i, m.Snapshot(now).Cause)
		}
	}
}

type countingPilot struct {
	calls int
}

func (p *countingPilot) Decide(m *session.Machine) core.Action {
	p.calls++
	return Autopilot{}.Decide(m)
}

func TestRunConsultsPilot(t *testing.T) {
	d := newDriver(800, 600)
	d.Machine().Start(0)
	pilot := &countingPilot{}
	d.SetPilot(pilot)

	frames := make(chan time.Duration, 100)
	for i := 1; i <= 100; i++ {
		frames <- time.Duration(i) * frame
	}
	close(frames)

	if err := d.Run(context.Background(), frames); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if pilot.calls != 100 {
		t.Errorf("pilot consulted %d times, want 100", pilot.calls)
	}
	if d.Machine().State() != session.Playing {
		t.Errorf("piloted run should survive 100 frames, got %v", d.Machine().State())
	}
}
