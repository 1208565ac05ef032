package engine

import (
	"context"
	"time"

	"github.com/vovakirdan/skyflap/internal/collision"
	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/session"
)

// SimResult is the outcome of one autopilot game.
type SimResult struct {
	Seed  int64
	Score int
	Ticks int
	Cause collision.Cause
	Ended bool // false when the tick limit stopped the game
}

// Simulate plays one autopilot game on a synthetic clock of fps frames per
// second. It stops on a crash, after maxTicks or when ctx is cancelled.
func Simulate(ctx context.Context, cfg config.Config, seed int64, width, height float64, maxTicks, fps int) (SimResult, error) {
	if fps <= 0 {
		fps = 60
	}
	step := time.Second / time.Duration(fps)

	d := NewDriver(Setup{
		Config: cfg,
		Seed:   seed,
		Width:  width,
		Height: height,
	})
	d.SetPilot(Autopilot{})
	m := d.Machine()
	m.Start(0)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	frames := make(chan time.Duration)
	go func() {
		defer close(frames)
		for i := 1; i <= maxTicks; i++ {
			select {
			case frames <- time.Duration(i) * step:
			case <-ctx.Done():
				return
			}
		}
	}()

	err := d.Run(ctx, frames)

	snap := m.Snapshot(time.Duration(m.Ticks()) * step)
	return SimResult{
		Seed:  seed,
		Score: snap.Score,
		Ticks: snap.Ticks,
		Cause: snap.Cause,
		Ended: snap.State == session.Ended,
	}, err
}
