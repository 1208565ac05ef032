package config

import (
	_ "embed"
)

//go:embed defaults/skyflap.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors defaults/skyflap.yaml
// and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Physics: Physics{
			Gravity:           0.5,
			JumpImpulse:       -8.0,
			MaxVelocity:       10.0,
			AscentDamping:     0.97,
			MinJumpIntervalMs: 150,
			TickBudgetMs:      16,
		},
		Obstacles: Obstacles{
			BaseSpeed:      3.0,
			SpeedBonus:     1.0,
			ReferenceWidth: 1920,
		},
		Session: Session{
			RestartCooldownMs: 750,
			LeaderboardSize:   10,
		},
		Terminal: Terminal{
			CellWidth:  10,
			CellHeight: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:     0.5,
				GapReduction:        30,
				IntervalReductionMs: 600,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
