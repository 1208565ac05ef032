package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the user and local directories.
const FileName = "skyflap.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.skyflap/configs/skyflap.yaml -> ./configs/skyflap.yaml -> embedded default.
// Files only need to list the values they override.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(DefaultYAML())
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultConfig and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Physics.Gravity <= 0 {
		errs = append(errs, errors.New("physics.gravity must be positive"))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, errors.New("physics.jump_impulse must be negative (upward)"))
	}
	if c.Physics.MaxVelocity <= 0 {
		errs = append(errs, errors.New("physics.max_velocity must be positive"))
	}
	if c.Physics.AscentDamping <= 0 || c.Physics.AscentDamping > 1 {
		errs = append(errs, errors.New("physics.ascent_damping must be in (0, 1]"))
	}
	if c.Physics.MinJumpIntervalMs < 0 || c.Physics.TickBudgetMs <= 0 {
		errs = append(errs, errors.New("physics: jump interval must be >= 0 and tick budget > 0"))
	}
	if c.Obstacles.BaseSpeed <= 0 || c.Obstacles.ReferenceWidth <= 0 {
		errs = append(errs, errors.New("obstacles: base_speed and reference_width must be positive"))
	}
	if c.Session.RestartCooldownMs <= 0 {
		errs = append(errs, errors.New("session.restart_cooldown_ms must be positive"))
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		errs = append(errs, errors.New("terminal: cell sizes must be positive"))
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, time, none", c.Difficulty.Progression.Type))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyflap", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the loaded config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	switch preset {
	case "":
		return nil
	case DifficultyClassic:
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	default:
		return fmt.Errorf("unknown difficulty preset %q (want classic, easy, normal, hard, fixed)", preset)
	}
	return nil
}
