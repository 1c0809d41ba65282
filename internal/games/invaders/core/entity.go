// Package core implements the Invaders simulation: the player cannon, its
// bullets and the enemy formation, advanced one tick at a time.
// This package is UI-agnostic and deterministic: the same timestamps and
// intents always produce the same world.
package core

// Box is an axis-aligned rectangle in playfield units (canvas pixels).
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Intersects reports whether two boxes overlap.
// All comparisons are strict, so boxes that only touch do not intersect.
func (b Box) Intersects(other Box) bool {
	return b.X < other.Right() &&
		b.Right() > other.X &&
		b.Y < other.Bottom() &&
		b.Bottom() > other.Y
}

// Player is the cannon at the bottom of the playfield.
// Y never changes after spawn.
type Player struct {
	Box
	Speed float64
}

// Bullet is a player projectile travelling straight up.
type Bullet struct {
	Box
	Speed float64
}

// Enemy is one invader of the formation.
// Row selects the color tier; Col is kept for bookkeeping only.
type Enemy struct {
	Box
	Row int
	Col int
}

// spawnPlayer creates the player centered horizontally above the bottom margin.
func spawnPlayer(p Params) Player {
	return Player{
		Box: Box{
			X: p.CanvasWidth/2 - p.PlayerWidth/2,
			Y: p.CanvasHeight - p.PlayerHeight - p.PlayerBottomMargin,
			W: p.PlayerWidth,
			H: p.PlayerHeight,
		},
		Speed: p.PlayerSpeed,
	}
}

// spawnBullet creates a bullet centered on the player's nose.
func spawnBullet(p Params, pl Player) Bullet {
	return Bullet{
		Box: Box{
			X: pl.X + pl.W/2 - p.BulletWidth/2,
			Y: pl.Y - p.BulletHeight,
			W: p.BulletWidth,
			H: p.BulletHeight,
		},
		Speed: p.BulletSpeed,
	}
}
