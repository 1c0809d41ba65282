package core

// evaluateStatus runs after collisions. A game that just ended is left alone;
// an empty grid is a cleared level: a fresh, faster grid spawns while score,
// player and bullets carry over.
func (w *World) evaluateStatus(result *StepResult) {
	if w.status != StatusRunning {
		return
	}
	if len(w.formation.Enemies) > 0 {
		return
	}

	w.formation.OnGridCleared()
	w.level++
	result.LevelCleared = &LevelClearedEvent{
		Level:    w.level,
		Interval: w.formation.Interval,
	}
}
