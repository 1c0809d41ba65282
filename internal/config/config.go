// Package config provides YAML and TOML game configuration loading for the
// invaders playfield.
package config

// InvadersConfig contains all configuration for the Invaders game.
// Distances are playfield pixels, times are milliseconds.
type InvadersConfig struct {
	Field     FieldConfig     `yaml:"field" toml:"field"`
	Player    PlayerConfig    `yaml:"player" toml:"player"`
	Bullet    BulletConfig    `yaml:"bullet" toml:"bullet"`
	Formation FormationConfig `yaml:"formation" toml:"formation"`
	Scoring   ScoringConfig   `yaml:"scoring" toml:"scoring"`
}

// FieldConfig defines the playfield size.
type FieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlayerConfig defines the player cannon.
type PlayerConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	BottomMargin float64 `yaml:"bottom_margin" toml:"bottom_margin"`
}

// BulletConfig defines player projectiles.
type BulletConfig struct {
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	Speed      float64 `yaml:"speed" toml:"speed"`
	CooldownMs float64 `yaml:"cooldown_ms" toml:"cooldown_ms"`
}

// FormationConfig defines the enemy grid and its pacing.
type FormationConfig struct {
	Rows             int     `yaml:"rows" toml:"rows"`
	Cols             int     `yaml:"cols" toml:"cols"`
	EnemyWidth       float64 `yaml:"enemy_width" toml:"enemy_width"`
	EnemyHeight      float64 `yaml:"enemy_height" toml:"enemy_height"`
	Padding          float64 `yaml:"padding" toml:"padding"`
	Top              float64 `yaml:"top" toml:"top"`
	Step             float64 `yaml:"step" toml:"step"`
	Drop             float64 `yaml:"drop" toml:"drop"`
	MoveIntervalMs   float64 `yaml:"move_interval_ms" toml:"move_interval_ms"`
	MinIntervalMs    float64 `yaml:"min_interval_ms" toml:"min_interval_ms"`
	SpeedUp          float64 `yaml:"speed_up" toml:"speed_up"`                   // Interval multiplier per cleared grid
	RemainingSpeedup bool    `yaml:"remaining_speedup" toml:"remaining_speedup"` // Move faster as the grid thins out
}

// ScoringConfig defines points awarded.
type ScoringConfig struct {
	PointsPerKill int `yaml:"points_per_kill" toml:"points_per_kill"`
}
