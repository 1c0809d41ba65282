package core

// DestroyedEvent reports one enemy shot down during a tick.
type DestroyedEvent struct {
	Row    int
	Col    int
	Points int // Points awarded for this kill
	Score  int // Score after the kill
}

// DropEvent reports an edge bounce of the formation.
type DropEvent struct {
	Direction int // New direction after the bounce
}

// LevelClearedEvent reports a cleared grid and the faster interval that follows.
type LevelClearedEvent struct {
	Level    int     // Level now being played
	Interval float64 // New move interval in ms
}

// GameOverEvent reports the end of a game.
type GameOverEvent struct {
	Reason GameOverReason
	Score  int
}

// StepResult contains everything that happened in one tick.
type StepResult struct {
	Tick         uint64
	Fired        int // Bullets fired since the previous tick
	Destroyed    []DestroyedEvent
	Dropped      *DropEvent
	LevelCleared *LevelClearedEvent
	GameOver     *GameOverEvent
	Scene        Scene
}

// Changed reports whether the tick produced any event.
func (r StepResult) Changed() bool {
	return r.Fired > 0 || len(r.Destroyed) > 0 || r.Dropped != nil ||
		r.LevelCleared != nil || r.GameOver != nil
}
