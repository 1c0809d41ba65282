package core

import "fmt"

// Status is the lifecycle state of a game.
type Status uint8

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusGameOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "NotStarted"
	case StatusRunning:
		return "Running"
	case StatusGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// World is the whole simulation: player, bullets, formation and score.
// It is not safe for concurrent use; callers serialize intents and ticks.
type World struct {
	params Params

	status Status
	score  int
	level  int
	ticks  uint64
	reason GameOverReason

	player    Player
	bullets   []Bullet
	formation *Formation
	input     *Controller

	pendingFired int
}

// NewWorld creates a world in the NotStarted state.
func NewWorld(p Params) (*World, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invaders: %w", err)
	}
	w := &World{
		params:    p,
		formation: NewFormation(p),
		input:     NewController(p.FireCooldown),
	}
	w.reset()
	return w, nil
}

// reset rebuilds everything a new game starts from.
// The status is left to the caller.
func (w *World) reset() {
	w.player = spawnPlayer(w.params)
	w.bullets = w.bullets[:0]
	w.formation.Reset()
	w.input.Reset()
	w.score = 0
	w.level = 1
	w.ticks = 0
	w.reason = ReasonNone
	w.pendingFired = 0
}

// StartOrRestart begins play. A finished game is fully reset first,
// including the formation interval. It is a no-op while running.
func (w *World) StartOrRestart() {
	switch w.status {
	case StatusRunning:
		return
	case StatusGameOver:
		w.reset()
	}
	w.status = StatusRunning
}

// SetIntent turns a movement intent on or off.
// Intents are accepted in every status so a release is never lost.
func (w *World) SetIntent(d Direction, active bool) {
	w.input.SetIntent(d, active)
}

// Fire spawns a bullet at the player's nose if the game is running and the
// cooldown allows it. It reports whether a bullet was spawned.
func (w *World) Fire(now float64) bool {
	if w.status != StatusRunning {
		return false
	}
	if !w.input.TryFire(now) {
		return false
	}
	w.bullets = append(w.bullets, spawnBullet(w.params, w.player))
	w.pendingFired++
	return true
}

// Tick advances the simulation to time now (ms).
// Outside the Running state it changes nothing and reports the current scene.
func (w *World) Tick(now float64) StepResult {
	if w.status != StatusRunning {
		return StepResult{Tick: w.ticks, Scene: w.Scene()}
	}

	w.ticks++
	result := StepResult{Tick: w.ticks, Fired: w.pendingFired}
	w.pendingFired = 0

	w.input.movePlayer(&w.player, w.params.maxPlayerX())
	w.bullets = advanceBullets(w.bullets)

	if _, dropped := w.formation.Advance(now); dropped {
		result.Dropped = &DropEvent{Direction: w.formation.Direction}
	}

	w.resolveCollisions(&result)
	w.evaluateStatus(&result)

	result.Scene = w.Scene()
	return result
}

// resolveCollisions handles bullet hits, scoring and enemy contact with the player.
func (w *World) resolveCollisions(result *StepResult) {
	var destroyed []Enemy
	w.bullets, w.formation.Enemies, destroyed = resolveBulletHits(w.bullets, w.formation.Enemies)
	for _, e := range destroyed {
		w.score += w.params.PointsPerKill
		result.Destroyed = append(result.Destroyed, DestroyedEvent{
			Row:    e.Row,
			Col:    e.Col,
			Points: w.params.PointsPerKill,
			Score:  w.score,
		})
	}

	if reason := findPlayerContact(w.formation.Enemies, w.player); reason != ReasonNone {
		w.status = StatusGameOver
		w.reason = reason
		result.GameOver = &GameOverEvent{Reason: reason, Score: w.score}
	}
}

// Status returns the lifecycle state.
func (w *World) Status() Status {
	return w.status
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// Level returns the 1-based level being played.
func (w *World) Level() int {
	return w.level
}

// Reason returns why the last game ended, or ReasonNone.
func (w *World) Reason() GameOverReason {
	return w.reason
}

// Interval returns the formation's current move interval in ms.
func (w *World) Interval() float64 {
	return w.formation.Interval
}

// Params returns the parameters the world was built with.
func (w *World) Params() Params {
	return w.params
}
