package config

import "github.com/vovakirdan/musou/internal/core"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
// With progression disabled the level is 0 and every parameter stays at its base.
func (d *DifficultyManager) Level(score int, ticks uint64) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = core.ClampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// BombSpeed returns the bomb speed for the current difficulty.
func (d *DifficultyManager) BombSpeed(base float64, score int, ticks uint64) float64 {
	level := d.Level(score, ticks)
	return base * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnEvery returns the enemy spawn period in ticks.
func (d *DifficultyManager) SpawnEvery(base int, score int, ticks uint64) int {
	level := d.Level(score, ticks)
	result := base - int(level*float64(d.cfg.Scaling.SpawnReduction))
	if result < 20 { // Minimum playable period
		result = 20
	}
	return result
}

// DropInterval returns a bomb-drop interval shortened for the current difficulty.
func (d *DifficultyManager) DropInterval(base int, score int, ticks uint64) int {
	level := d.Level(score, ticks)
	result := int(float64(base) * (1.0 - level*core.ClampF(d.cfg.Scaling.IntervalFraction, 0, 0.9)))
	if result < 1 {
		result = 1
	}
	return result
}
