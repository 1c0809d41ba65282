package core

import "slices"

// GameOverReason explains why a game ended.
type GameOverReason uint8

const (
	ReasonNone      GameOverReason = iota
	ReasonCollision                // An enemy touched the player
	ReasonBreach                   // An enemy reached the player's line
)

// String returns a human-readable name for the reason.
func (r GameOverReason) String() string {
	switch r {
	case ReasonNone:
		return "None"
	case ReasonCollision:
		return "Collision"
	case ReasonBreach:
		return "Breach"
	default:
		return "Unknown"
	}
}

// resolveBulletHits removes every bullet/enemy pair that overlaps.
// Bullets are scanned from the newest to the oldest and, for each bullet,
// enemies from the last to the first; the first overlapping enemy wins and
// a bullet destroys at most one enemy. Survivors keep their order.
func resolveBulletHits(bullets []Bullet, enemies []Enemy) ([]Bullet, []Enemy, []Enemy) {
	var destroyed []Enemy
	for i := len(bullets) - 1; i >= 0; i-- {
		for j := len(enemies) - 1; j >= 0; j-- {
			if !bullets[i].Intersects(enemies[j].Box) {
				continue
			}
			destroyed = append(destroyed, enemies[j])
			enemies = slices.Delete(enemies, j, j+1)
			bullets = slices.Delete(bullets, i, i+1)
			break
		}
	}
	return bullets, enemies, destroyed
}

// findPlayerContact checks enemies in list order against the player.
// An overlap is a collision; an enemy whose bottom edge reaches the player's
// top edge is a breach even without horizontal overlap. The first offending
// enemy decides the reason.
func findPlayerContact(enemies []Enemy, pl Player) GameOverReason {
	for _, e := range enemies {
		if e.Intersects(pl.Box) {
			return ReasonCollision
		}
		if e.Bottom() >= pl.Y {
			return ReasonBreach
		}
	}
	return ReasonNone
}

// advanceBullets moves every bullet up and drops those that left the top
// of the field.
func advanceBullets(bullets []Bullet) []Bullet {
	for i := len(bullets) - 1; i >= 0; i-- {
		bullets[i].Y -= bullets[i].Speed
		if bullets[i].Y < 0 {
			bullets = slices.Delete(bullets, i, i+1)
		}
	}
	return bullets
}
