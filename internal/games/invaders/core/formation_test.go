package core

import (
	"testing"
)

func TestSpawnGridLayout(t *testing.T) {
	f := NewFormation(DefaultParams())

	if len(f.Enemies) != 40 {
		t.Fatalf("expected 40 enemies, got %d", len(f.Enemies))
	}

	first := f.Enemies[0]
	if first.X != 60 || first.Y != 50 {
		t.Errorf("first enemy at (%v,%v), expected (60,50)", first.X, first.Y)
	}
	last := f.Enemies[39]
	if last.Row != 4 || last.Col != 7 {
		t.Errorf("last enemy is (%d,%d), expected (4,7)", last.Row, last.Col)
	}
	if last.X != 375 || last.Y != 230 {
		t.Errorf("last enemy at (%v,%v), expected (375,230)", last.X, last.Y)
	}

	seen := make(map[[2]int]bool)
	for i, e := range f.Enemies {
		key := [2]int{e.Row, e.Col}
		if seen[key] {
			t.Errorf("duplicate enemy at row=%d col=%d", e.Row, e.Col)
		}
		seen[key] = true

		// Row-major order
		if e.Row != i/8 || e.Col != i%8 {
			t.Errorf("enemy %d is (%d,%d), expected (%d,%d)", i, e.Row, e.Col, i/8, i%8)
		}
	}
}

func TestAdvanceWaitsForInterval(t *testing.T) {
	f := NewFormation(DefaultParams())

	tests := []struct {
		now       float64
		wantMoved bool
	}{
		{0, false},
		{500, false},
		{1000, false}, // Elapsed must exceed the interval
		{1000.5, true},
		{1500, false},
		{-20, false}, // Time going backwards is never due
		{2001, true},
	}

	for _, tt := range tests {
		moved, _ := f.Advance(tt.now)
		if moved != tt.wantMoved {
			t.Errorf("Advance(%v) moved = %v, expected %v", tt.now, moved, tt.wantMoved)
		}
	}

	if f.Enemies[0].X != 80 {
		t.Errorf("after two moves first enemy x = %v, expected 80", f.Enemies[0].X)
	}
}

func TestAdvanceBouncesOffRightEdge(t *testing.T) {
	f := NewFormation(DefaultParams())

	// Right edge starts at 405 and grows by 10 per move: after 8 moves it is 485.
	now := 0.0
	for i := range 8 {
		now += 1001
		moved, dropped := f.Advance(now)
		if !moved || dropped {
			t.Fatalf("move %d: moved=%v dropped=%v, expected a plain move", i+1, moved, dropped)
		}
	}
	if _, maxX := f.Bounds(); maxX != 485 {
		t.Fatalf("right edge = %v, expected 485", maxX)
	}

	now += 1001
	moved, dropped := f.Advance(now)
	if !moved || !dropped {
		t.Fatalf("9th move: moved=%v dropped=%v, expected a drop", moved, dropped)
	}
	if f.Direction != -1 {
		t.Errorf("direction = %d, expected -1", f.Direction)
	}
	if _, maxX := f.Bounds(); maxX != 475 {
		t.Errorf("right edge after bounce = %v, expected 475", maxX)
	}
	for _, e := range f.Enemies {
		wantY := 50 + float64(e.Row)*45 + 30
		if e.Y != wantY {
			t.Errorf("enemy (%d,%d) y = %v, expected %v", e.Row, e.Col, e.Y, wantY)
		}
	}
}

func TestAdvanceBouncesOffLeftEdge(t *testing.T) {
	f := NewFormation(DefaultParams())
	f.Direction = -1

	// Left edge starts at 60 and shrinks by 10 per move: after 6 moves it is 0.
	now := 0.0
	for range 6 {
		now += 1001
		f.Advance(now)
	}
	if minX, _ := f.Bounds(); minX != 0 {
		t.Fatalf("left edge = %v, expected 0", minX)
	}

	now += 1001
	_, dropped := f.Advance(now)
	if !dropped {
		t.Fatal("expected a drop at the left edge")
	}
	if f.Direction != 1 {
		t.Errorf("direction = %d, expected 1", f.Direction)
	}
	if minX, _ := f.Bounds(); minX != 10 {
		t.Errorf("left edge after bounce = %v, expected 10", minX)
	}
}

func TestOnGridClearedSpeedsUp(t *testing.T) {
	f := NewFormation(DefaultParams())
	f.Direction = -1
	f.LastMove = 1234
	f.Enemies = nil

	f.OnGridCleared()

	if f.Interval != 800 {
		t.Errorf("interval = %v, expected 800", f.Interval)
	}
	if len(f.Enemies) != 40 {
		t.Errorf("expected 40 enemies after respawn, got %d", len(f.Enemies))
	}
	if f.Enemies[0].X != 60 || f.Enemies[0].Y != 50 {
		t.Errorf("respawned grid not at canonical layout: first enemy at (%v,%v)", f.Enemies[0].X, f.Enemies[0].Y)
	}
	if f.Direction != -1 || f.LastMove != 1234 {
		t.Errorf("respawn changed direction/last move: %d, %v", f.Direction, f.LastMove)
	}
}

func TestIntervalFloor(t *testing.T) {
	f := NewFormation(DefaultParams())

	prev := f.Interval
	for i := range 20 {
		f.OnGridCleared()
		if f.Interval > prev {
			t.Errorf("clear %d: interval grew from %v to %v", i+1, prev, f.Interval)
		}
		if f.Interval < 50 {
			t.Errorf("clear %d: interval %v below floor", i+1, f.Interval)
		}
		prev = f.Interval
	}

	if f.Interval != 50 {
		t.Errorf("interval after 20 clears = %v, expected floor 50", f.Interval)
	}

	f.Reset()
	if f.Interval != 1000 {
		t.Errorf("interval after reset = %v, expected 1000", f.Interval)
	}
}

func TestSpeedFactor(t *testing.T) {
	f := NewFormation(DefaultParams())

	if got := f.SpeedFactor(); got != 1 {
		t.Errorf("SpeedFactor() with full grid = %v, expected 1", got)
	}
	f.Enemies = f.Enemies[:20]
	if got := f.SpeedFactor(); got != 1.25 {
		t.Errorf("SpeedFactor() with half grid = %v, expected 1.25", got)
	}

	// Without the switch the factor does not change pacing.
	if moved, _ := f.Advance(900); moved {
		t.Error("formation moved early without remaining speed-up")
	}

	p := DefaultParams()
	p.RemainingSpeedup = true
	g := NewFormation(p)
	g.Enemies = g.Enemies[:20]
	// 1000 / 1.25 = 800
	if moved, _ := g.Advance(801); !moved {
		t.Error("expected formation to move after 801ms with remaining speed-up")
	}
}
