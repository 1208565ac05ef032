// Package config provides YAML-based tuning for the simulation and the
// difficulty progression used by the obstacle stream.
package config

import "time"

// Config contains all tunable parameters for skyflap.
type Config struct {
	Physics    Physics          `yaml:"physics"`
	Obstacles  Obstacles        `yaml:"obstacles"`
	Session    Session          `yaml:"session"`
	Terminal   Terminal         `yaml:"terminal"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Physics defines flyer integration parameters, in playfield units per tick.
type Physics struct {
	Gravity           float64 `yaml:"gravity"`
	JumpImpulse       float64 `yaml:"jump_impulse"`   // Negative = up
	MaxVelocity       float64 `yaml:"max_velocity"`   // Terminal falling speed
	AscentDamping     float64 `yaml:"ascent_damping"` // Applied while rising, in (0,1)
	MinJumpIntervalMs int     `yaml:"min_jump_interval_ms"`
	TickBudgetMs      int     `yaml:"tick_budget_ms"` // Nominal frame time for cooldown decay
}

// Obstacles defines scroll speed parameters.
type Obstacles struct {
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedBonus     float64 `yaml:"speed_bonus"`     // Extra speed at reference width
	ReferenceWidth float64 `yaml:"reference_width"` // Width at which the full bonus applies
}

// Session defines lifecycle parameters.
type Session struct {
	RestartCooldownMs int `yaml:"restart_cooldown_ms"`
	LeaderboardSize   int `yaml:"leaderboard_size"`
}

// Terminal defines how many playfield units one terminal cell covers.
type Terminal struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier     float64 `yaml:"speed_multiplier"`      // Added to the speed factor
	GapReduction        float64 `yaml:"gap_reduction"`         // Playfield units removed from the gap
	IntervalReductionMs int     `yaml:"interval_reduction_ms"` // Removed from the spawn interval
}

// MinJumpInterval returns the jump cooldown as a duration.
func (p Physics) MinJumpInterval() time.Duration {
	return time.Duration(p.MinJumpIntervalMs) * time.Millisecond
}

// TickBudget returns the nominal tick duration used for cooldown decay.
func (p Physics) TickBudget() time.Duration {
	return time.Duration(p.TickBudgetMs) * time.Millisecond
}

// RestartCooldown returns the restart lock duration.
func (s Session) RestartCooldown() time.Duration {
	return time.Duration(s.RestartCooldownMs) * time.Millisecond
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyClassic DifficultyPreset = "classic"
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyFixed   DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
