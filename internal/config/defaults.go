package config

import (
	_ "embed"
)

//go:embed defaults/musou.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultConfig returns the default configuration. It mirrors
// defaults/musou.yaml and is used if the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Arena: ArenaConfig{
			Width:         1100,
			Height:        650,
			TickRate:      50,
			GameOverDelay: 100, // 2 seconds
		},
		Player: PlayerConfig{
			StartX:     900,
			StartY:     400,
			Width:      80,
			Height:     80,
			Speed:      10,
			BoostSpeed: 20,
			MoodTicks:  25,
		},
		Enemy: EnemyConfig{
			Width:       80,
			Height:      60,
			Speed:       6,
			SpawnEvery:  200,
			MinStop:     50,
			MaxStop:     0,
			MinInterval: 50,
			MaxInterval: 300,
		},
		Bomb: BombConfig{
			Speed:     6,
			MinRadius: 10,
			MaxRadius: 50,
		},
		Beam: BeamConfig{
			Width:       60,
			Height:      20,
			Speed:       10,
			SpreadCount: 5,
			SpreadAngle: 50,
		},
		Explosion: ExplosionConfig{
			Size:        80,
			EnemyLife:   100,
			BombLife:    50,
			GravityLife: 30,
			FrameTicks:  10,
		},
		Scoring: ScoringConfig{
			Enemy: 10,
			Bomb:  1,
		},
		PowerUps: PowerUpsConfig{
			Hyper:           PowerUpConfig{Cost: 100, Duration: 500},
			Shield:          PowerUpConfig{Cost: 50, Duration: 400},
			ShieldThickness: 20,
			Gravity:         PowerUpConfig{Cost: 200, Duration: 400},
			EMP:             PowerUpConfig{Cost: 20, Duration: 2.5}, // 0.05 s at 50 FPS
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				SpawnReduction:   120,
				IntervalFraction: 0.5,
			},
		},
	}
}
