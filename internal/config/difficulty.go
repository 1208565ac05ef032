package config

import (
	"math"
	"time"
)

// Floors below which difficulty scaling never pushes a parameter.
const (
	minPlayableGap      = 100.0
	minPlayableInterval = 1200 * time.Millisecond
)

// DifficultyManager calculates dynamic obstacle parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpeedFactor returns the multiplier applied to the scroll speed.
func (d *DifficultyManager) SpeedFactor(score, ticks int) float64 {
	return 1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier
}

// Gap returns the gap for a newly spawned obstacle. It never widens the base
// gap and never shrinks it below a playable floor (or the base, if that is smaller).
func (d *DifficultyManager) Gap(baseGap float64, score, ticks int) float64 {
	reduction := d.Level(score, ticks) * d.cfg.Scaling.GapReduction
	return math.Max(baseGap-reduction, math.Min(baseGap, minPlayableGap))
}

// SpawnInterval returns the spawn interval after difficulty reduction.
func (d *DifficultyManager) SpawnInterval(base time.Duration, score, ticks int) time.Duration {
	reduction := time.Duration(d.Level(score, ticks) * float64(d.cfg.Scaling.IntervalReductionMs) * float64(time.Millisecond))
	result := base - reduction
	if floor := min(base, minPlayableInterval); result < floor {
		result = floor
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
