package core

import "math"

// Formation moves the enemy grid as one rigid body.
// It owns the move interval, which is the only source of pacing: it shrinks
// on every level clear and is restored only by a full reset.
type Formation struct {
	Enemies   []Enemy
	Direction int     // +1 right, -1 left
	LastMove  float64 // Timestamp of the last move
	Interval  float64 // Current time between moves

	params Params
}

// NewFormation creates a formation at the canonical start layout.
func NewFormation(p Params) *Formation {
	f := &Formation{params: p}
	f.Reset()
	return f
}

// Reset restores the formation to the start of a new game:
// fresh grid, base interval, moving right.
func (f *Formation) Reset() {
	f.Direction = 1
	f.LastMove = 0
	f.Interval = f.params.MoveInterval
	f.SpawnGrid()
}

// SpawnGrid lays out a full grid, centered horizontally, row 0 on top.
// Direction, timing and interval are left untouched.
func (f *Formation) SpawnGrid() {
	p := f.params
	pitchX := p.EnemyWidth + p.EnemyPadding
	pitchY := p.EnemyHeight + p.EnemyPadding
	startX := (p.CanvasWidth - float64(p.Cols)*pitchX) / 2

	f.Enemies = make([]Enemy, 0, p.Rows*p.Cols)
	for row := range p.Rows {
		for col := range p.Cols {
			f.Enemies = append(f.Enemies, Enemy{
				Box: Box{
					X: startX + float64(col)*pitchX,
					Y: p.GridTop + float64(row)*pitchY,
					W: p.EnemyWidth,
					H: p.EnemyHeight,
				},
				Row: row,
				Col: col,
			})
		}
	}
}

// Bounds returns the leftmost x and rightmost right edge of the enemies.
// An empty formation reports (canvas width, 0).
func (f *Formation) Bounds() (minX, maxX float64) {
	minX = f.params.CanvasWidth
	maxX = 0
	for _, e := range f.Enemies {
		minX = math.Min(minX, e.X)
		maxX = math.Max(maxX, e.Right())
	}
	return minX, maxX
}

// SpeedFactor grows from 1.0 with a full grid to 1.5 with no enemies left.
// It only affects pacing when Params.RemainingSpeedup is set.
func (f *Formation) SpeedFactor() float64 {
	total := float64(f.params.Rows * f.params.Cols)
	remaining := float64(len(f.Enemies))
	return 1 + (1-remaining/total)*0.5
}

// effectiveInterval is the interval the next move waits for.
func (f *Formation) effectiveInterval() float64 {
	if f.params.RemainingSpeedup {
		return f.Interval / f.SpeedFactor()
	}
	return f.Interval
}

// Advance moves the formation if more than one interval has passed since the
// last move. A timestamp earlier than the last move is treated as "not due".
// On the tick it reaches a wall, the formation reverses and drops a row.
func (f *Formation) Advance(now float64) (moved, dropped bool) {
	if now-f.LastMove <= f.effectiveInterval() {
		return false, false
	}

	minX, maxX := f.Bounds()
	switch {
	case f.Direction == 1 && maxX >= f.params.CanvasWidth:
		f.Direction = -1
		dropped = true
	case f.Direction == -1 && minX <= 0:
		f.Direction = 1
		dropped = true
	}

	dx := float64(f.Direction) * f.params.Step
	for i := range f.Enemies {
		f.Enemies[i].X += dx
		if dropped {
			f.Enemies[i].Y += f.params.Drop
		}
	}

	f.LastMove = now
	return true, dropped
}

// OnGridCleared spawns a fresh grid and speeds up future moves.
// The interval never drops below Params.MinMoveInterval.
func (f *Formation) OnGridCleared() {
	f.SpawnGrid()
	f.Interval = math.Max(f.Interval*f.params.SpeedUp, f.params.MinMoveInterval)
}
