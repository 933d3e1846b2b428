// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunables for the shooter. Distances are in world units
// (logical pixels of the arena), durations in ticks.
type Config struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Bomb       BombConfig       `yaml:"bomb"`
	Beam       BeamConfig       `yaml:"beam"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	PowerUps   PowerUpsConfig   `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the playfield and loop timing.
type ArenaConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	TickRate      int     `yaml:"tick_rate"`
	GameOverDelay int     `yaml:"game_over_delay"` // Ticks the final frame stays up
}

// PlayerConfig defines the bird.
type PlayerConfig struct {
	StartX     float64 `yaml:"start_x"` // Center
	StartY     float64 `yaml:"start_y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	BoostSpeed float64 `yaml:"boost_speed"`
	MoodTicks  int     `yaml:"mood_ticks"` // How long the happy face lasts
}

// EnemyConfig defines enemy spawning and behavior.
type EnemyConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	SpawnEvery  int     `yaml:"spawn_every"`
	MinStop     float64 `yaml:"min_stop"`
	MaxStop     float64 `yaml:"max_stop"` // 0 means half the arena height
	MinInterval int     `yaml:"min_interval"`
	MaxInterval int     `yaml:"max_interval"`
}

// BombConfig defines bombs.
type BombConfig struct {
	Speed     float64 `yaml:"speed"`
	MinRadius int     `yaml:"min_radius"`
	MaxRadius int     `yaml:"max_radius"`
}

// BeamConfig defines beams and the spread shot.
type BeamConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	SpreadCount int     `yaml:"spread_count"`
	SpreadAngle int     `yaml:"spread_angle"` // Half-width of the fan in degrees
}

// ExplosionConfig defines explosion size and lifetimes.
type ExplosionConfig struct {
	Size        float64 `yaml:"size"`
	EnemyLife   int     `yaml:"enemy_life"`
	BombLife    int     `yaml:"bomb_life"`
	GravityLife int     `yaml:"gravity_life"`
	FrameTicks  int     `yaml:"frame_ticks"`
}

// ScoringConfig defines points per kill.
type ScoringConfig struct {
	Enemy int `yaml:"enemy"`
	Bomb  int `yaml:"bomb"`
}

// PowerUpConfig is the price and duration of one power-up.
type PowerUpConfig struct {
	Cost     int     `yaml:"cost"`
	Duration float64 `yaml:"duration"`
}

// PowerUpsConfig groups all power-ups.
type PowerUpsConfig struct {
	Hyper           PowerUpConfig `yaml:"hyper"`
	Shield          PowerUpConfig `yaml:"shield"`
	ShieldThickness float64       `yaml:"shield_thickness"`
	Gravity         PowerUpConfig `yaml:"gravity"`
	EMP             PowerUpConfig `yaml:"emp"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to bomb speed at max difficulty
	SpawnReduction   int     `yaml:"spawn_reduction"`   // Enemy spawn period reduction at max difficulty
	IntervalFraction float64 `yaml:"interval_fraction"` // Fraction cut from new drop intervals at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate reports settings the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena size must be positive, got %gx%g", c.Arena.Width, c.Arena.Height))
	}
	if c.Arena.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("arena.tick_rate must be positive, got %d", c.Arena.TickRate))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.Width > c.Arena.Width || c.Player.Height > c.Arena.Height {
		errs = append(errs, errors.New("player does not fit in the arena"))
	}
	if c.Enemy.SpawnEvery <= 0 {
		errs = append(errs, fmt.Errorf("enemy.spawn_every must be positive, got %d", c.Enemy.SpawnEvery))
	}
	if c.Enemy.MinInterval <= 0 || c.Enemy.MaxInterval < c.Enemy.MinInterval {
		errs = append(errs, fmt.Errorf("enemy interval range [%d, %d] is invalid", c.Enemy.MinInterval, c.Enemy.MaxInterval))
	}
	if c.Enemy.MaxStop != 0 && c.Enemy.MaxStop < c.Enemy.MinStop {
		errs = append(errs, fmt.Errorf("enemy stop range [%g, %g] is invalid", c.Enemy.MinStop, c.Enemy.MaxStop))
	}
	if c.Bomb.MinRadius <= 0 || c.Bomb.MaxRadius < c.Bomb.MinRadius {
		errs = append(errs, fmt.Errorf("bomb radius range [%d, %d] is invalid", c.Bomb.MinRadius, c.Bomb.MaxRadius))
	}
	for name, v := range map[string]float64{
		"player.speed":              c.Player.Speed,
		"player.boost_speed":        c.Player.BoostSpeed,
		"enemy.speed":               c.Enemy.Speed,
		"bomb.speed":                c.Bomb.Speed,
		"beam.speed":                c.Beam.Speed,
		"explosion.size":            c.Explosion.Size,
		"powerups.shield_thickness": c.PowerUps.ShieldThickness,
	} {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}
	if c.Beam.SpreadCount < 1 {
		errs = append(errs, fmt.Errorf("beam.spread_count must be at least 1, got %d", c.Beam.SpreadCount))
	}
	for name, p := range map[string]PowerUpConfig{
		"hyper":   c.PowerUps.Hyper,
		"shield":  c.PowerUps.Shield,
		"gravity": c.PowerUps.Gravity,
		"emp":     c.PowerUps.EMP,
	} {
		if p.Cost < 0 {
			errs = append(errs, fmt.Errorf("powerups.%s.cost must not be negative", name))
		}
		if p.Duration <= 0 {
			errs = append(errs, fmt.Errorf("powerups.%s.duration must be positive, got %g", name, p.Duration))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
