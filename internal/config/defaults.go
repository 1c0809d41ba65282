package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the classic 480x640 configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{
			Width:  480,
			Height: 640,
		},
		Player: PlayerConfig{
			Width:        40,
			Height:       30,
			Speed:        5,
			BottomMargin: 20,
		},
		Bullet: BulletConfig{
			Width:      3,
			Height:     15,
			Speed:      7,
			CooldownMs: 300,
		},
		Formation: FormationConfig{
			Rows:           5,
			Cols:           8,
			EnemyWidth:     30,
			EnemyHeight:    30,
			Padding:        15,
			Top:            50,
			Step:           10,
			Drop:           30,
			MoveIntervalMs: 1000,
			MinIntervalMs:  50,
			SpeedUp:        0.8,
		},
		Scoring: ScoringConfig{
			PointsPerKill: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
