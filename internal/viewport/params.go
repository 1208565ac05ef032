// Package viewport derives every size-dependent constant of the playfield from
// its current width and height.
package viewport

import (
	"math"
	"time"

	"github.com/vovakirdan/skyflap/internal/core"
)

// Layout constants, in playfield pixels unless noted.
const (
	MaxObstacleWidth   = 50.0
	ObstacleWidthRatio = 0.10
	GapRatio           = 0.20
	MinGap             = 120.0
	MaxGap             = 180.0
	MaxGapFraction     = 0.5 // Gap never exceeds this share of the height
	MinSpawnInterval   = 2000 * time.Millisecond
	MaxSpawnInterval   = 3000 * time.Millisecond
	MaxFlyerWidth      = 35.0
	FlyerWidthRatio    = 0.08
	FlyerAspect        = 50.0 / 35.0 // height / width
	FlyerXRatio        = 0.10
	MaxMinHeight       = 50.0
	MinHeightRatio     = 0.10
)

// Params holds the playfield size and every value derived from it.
// A Params is always computed as a whole; it is never patched field by field.
type Params struct {
	Width, Height float64

	ObstacleWidth float64
	Gap           float64
	SpawnInterval time.Duration

	FlyerWidth, FlyerHeight float64
	FlyerX, FlyerY          float64 // Origin used when a session starts
}

// Compute derives Params for a W x H playfield. It is total: non-positive
// sizes are treated as 1.
func Compute(width, height float64) Params {
	w := math.Max(width, 1)
	h := math.Max(height, 1)

	gap := core.ClampF(GapRatio*h, MinGap, MaxGap)
	gap = math.Min(gap, MaxGapFraction*h)

	// Spawn interval in ms tracks the width in pixels.
	interval := time.Duration(core.ClampF(w, float64(MinSpawnInterval/time.Millisecond), float64(MaxSpawnInterval/time.Millisecond))) * time.Millisecond

	flyerW := math.Min(MaxFlyerWidth, FlyerWidthRatio*w)

	return Params{
		Width:         w,
		Height:        h,
		ObstacleWidth: math.Min(MaxObstacleWidth, ObstacleWidthRatio*w),
		Gap:           gap,
		SpawnInterval: interval,
		FlyerWidth:    flyerW,
		FlyerHeight:   flyerW * FlyerAspect,
		FlyerX:        FlyerXRatio * w,
		FlyerY:        h / 2,
	}
}

// MinObstacleHeight returns the minimum height of an obstacle's top or bottom segment.
func (p Params) MinObstacleHeight() float64 {
	return math.Min(MaxMinHeight, MinHeightRatio*p.Height)
}

// ScrollSpeed returns the per-tick horizontal obstacle speed: base plus a bonus
// that grows with the width and saturates at refWidth.
func (p Params) ScrollSpeed(base, bonus, refWidth float64) float64 {
	return base + math.Min(p.Width/refWidth, 1)*bonus
}
