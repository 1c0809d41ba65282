package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to derive their simulated clock.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameMillis returns the simulated time one tick stands for.
func (c RuntimeConfig) FrameMillis() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60
	}
	return 1000.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Level    int    // 1-based level
	Started  bool   // Whether the first game has begun
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
	Reason   string // Why the game ended, empty while playing
}

// EventKind identifies a notable thing that happened during a tick.
type EventKind uint8

const (
	EventFired EventKind = iota
	EventEnemyDestroyed
	EventFormationDropped
	EventLevelCleared
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventFired:
		return "Fired"
	case EventEnemyDestroyed:
		return "EnemyDestroyed"
	case EventFormationDropped:
		return "FormationDropped"
	case EventLevelCleared:
		return "LevelCleared"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a platform-level notification produced by a game step.
// Value carries the kind-specific number: score for kills and game over,
// level for level clears, direction for drops, bullet count for fires.
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the result contains an event of the given kind.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
