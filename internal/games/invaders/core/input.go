package core

// Direction is a horizontal movement intent.
type Direction int

const (
	Left Direction = iota
	Right
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Controller holds the player's intents between ticks.
// Left and right are independent flags; holding both cancels out because
// each is applied on its own against the playfield bounds.
type Controller struct {
	movingLeft  bool
	movingRight bool

	cooldown float64
	lastFire float64
	hasFired bool
}

// NewController creates a controller with the given fire cooldown in ms.
func NewController(cooldown float64) *Controller {
	return &Controller{cooldown: cooldown}
}

// SetIntent turns a movement intent on or off.
func (c *Controller) SetIntent(d Direction, active bool) {
	switch d {
	case Left:
		c.movingLeft = active
	case Right:
		c.movingRight = active
	}
}

// MovingLeft reports whether the left intent is held.
func (c *Controller) MovingLeft() bool {
	return c.movingLeft
}

// MovingRight reports whether the right intent is held.
func (c *Controller) MovingRight() bool {
	return c.movingRight
}

// TryFire consumes a fire request at time now.
// It returns false while the cooldown since the last successful fire has
// not elapsed. The first fire after a reset is never throttled.
func (c *Controller) TryFire(now float64) bool {
	if c.hasFired && now-c.lastFire < c.cooldown {
		return false
	}
	c.lastFire = now
	c.hasFired = true
	return true
}

// Reset clears intents and the fire cooldown.
func (c *Controller) Reset() {
	c.movingLeft = false
	c.movingRight = false
	c.lastFire = 0
	c.hasFired = false
}

// movePlayer applies the held intents to the player.
// Each direction is gated by its own bound check before moving, so the
// player may step past a bound by less than one speed unit and is then
// clamped back into the field.
func (c *Controller) movePlayer(pl *Player, maxX float64) {
	if c.movingLeft && pl.X > 0 {
		pl.X -= pl.Speed
	}
	if c.movingRight && pl.X < maxX {
		pl.X += pl.Speed
	}
	pl.X = clamp(pl.X, 0, maxX)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
