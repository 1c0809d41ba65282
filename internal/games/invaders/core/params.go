package core

import (
	"errors"
	"fmt"
)

// Params holds every tunable constant of the playfield.
// Distances are canvas pixels, times are milliseconds.
type Params struct {
	CanvasWidth  float64
	CanvasHeight float64

	PlayerWidth        float64
	PlayerHeight       float64
	PlayerSpeed        float64 // Pixels per tick while an intent is held
	PlayerBottomMargin float64

	BulletWidth  float64
	BulletHeight float64
	BulletSpeed  float64 // Pixels per tick, upward
	FireCooldown float64

	EnemyWidth   float64
	EnemyHeight  float64
	Rows         int
	Cols         int
	EnemyPadding float64
	GridTop      float64

	Step            float64 // Horizontal displacement per formation move
	Drop            float64 // Vertical displacement on an edge bounce
	MoveInterval    float64 // Initial time between formation moves
	MinMoveInterval float64 // Floor for the interval after level clears
	SpeedUp         float64 // Interval multiplier applied on each level clear

	// RemainingSpeedup makes the formation move faster as it thins out.
	// Off by default: the classic game computes the factor but never uses it.
	RemainingSpeedup bool

	PointsPerKill int
}

// DefaultParams returns the classic 480x640 playfield.
func DefaultParams() Params {
	return Params{
		CanvasWidth:  480,
		CanvasHeight: 640,

		PlayerWidth:        40,
		PlayerHeight:       30,
		PlayerSpeed:        5,
		PlayerBottomMargin: 20,

		BulletWidth:  3,
		BulletHeight: 15,
		BulletSpeed:  7,
		FireCooldown: 300,

		EnemyWidth:   30,
		EnemyHeight:  30,
		Rows:         5,
		Cols:         8,
		EnemyPadding: 15,
		GridTop:      50,

		Step:            10,
		Drop:            30,
		MoveInterval:    1000,
		MinMoveInterval: 50,
		SpeedUp:         0.8,

		PointsPerKill: 10,
	}
}

// ErrInvalidParams is wrapped by every error returned from Validate.
var ErrInvalidParams = errors.New("invalid params")

// Validate checks that the params describe a playable field.
func (p Params) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"canvas width", p.CanvasWidth},
		{"canvas height", p.CanvasHeight},
		{"player width", p.PlayerWidth},
		{"player height", p.PlayerHeight},
		{"player speed", p.PlayerSpeed},
		{"bullet width", p.BulletWidth},
		{"bullet height", p.BulletHeight},
		{"bullet speed", p.BulletSpeed},
		{"enemy width", p.EnemyWidth},
		{"enemy height", p.EnemyHeight},
		{"step", p.Step},
		{"move interval", p.MoveInterval},
		{"min move interval", p.MinMoveInterval},
	}
	for _, f := range positive {
		if f.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidParams, f.name, f.v)
		}
	}

	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("%w: grid must have at least one row and column, got %dx%d", ErrInvalidParams, p.Rows, p.Cols)
	}
	if p.FireCooldown < 0 || p.Drop < 0 || p.EnemyPadding < 0 || p.GridTop < 0 || p.PlayerBottomMargin < 0 {
		return fmt.Errorf("%w: cooldown, drop, padding, grid top and bottom margin must not be negative", ErrInvalidParams)
	}
	if p.SpeedUp <= 0 || p.SpeedUp > 1 {
		return fmt.Errorf("%w: speed-up must be in (0, 1], got %v", ErrInvalidParams, p.SpeedUp)
	}
	if p.MinMoveInterval > p.MoveInterval {
		return fmt.Errorf("%w: min move interval %v exceeds move interval %v", ErrInvalidParams, p.MinMoveInterval, p.MoveInterval)
	}
	if p.PlayerWidth > p.CanvasWidth {
		return fmt.Errorf("%w: player wider than canvas", ErrInvalidParams)
	}
	if gridW := float64(p.Cols) * (p.EnemyWidth + p.EnemyPadding); gridW > p.CanvasWidth {
		return fmt.Errorf("%w: grid width %v exceeds canvas width %v", ErrInvalidParams, gridW, p.CanvasWidth)
	}
	if p.PointsPerKill < 0 {
		return fmt.Errorf("%w: points per kill must not be negative", ErrInvalidParams)
	}
	return nil
}

// maxPlayerX is the rightmost allowed player x.
func (p Params) maxPlayerX() float64 {
	return p.CanvasWidth - p.PlayerWidth
}
