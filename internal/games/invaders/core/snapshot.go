package core

import (
	"math"
	"slices"
)

// RectKind identifies what a scene rectangle depicts.
type RectKind uint8

const (
	KindPlayer RectKind = iota
	KindBullet
	KindEnemy
)

// Rect is one renderable rectangle of the scene.
// Color is the enemy row (0 = top row) and zero for other kinds.
type Rect struct {
	Kind  RectKind
	Box   Box
	Color int
}

// Scene is an immutable copy of the world after a tick.
// It shares no memory with the world that produced it.
type Scene struct {
	Tick        uint64
	Player      Box
	MovingLeft  bool
	MovingRight bool
	Bullets     []Box
	Enemies     []Enemy

	Score     int
	Level     int
	Status    Status
	Reason    GameOverReason
	Interval  float64
	Direction int

	CanvasWidth  float64
	CanvasHeight float64
}

// Scene returns a snapshot of the current world.
func (w *World) Scene() Scene {
	bullets := make([]Box, len(w.bullets))
	for i, b := range w.bullets {
		bullets[i] = b.Box
	}
	return Scene{
		Tick:         w.ticks,
		Player:       w.player.Box,
		MovingLeft:   w.input.MovingLeft(),
		MovingRight:  w.input.MovingRight(),
		Bullets:      bullets,
		Enemies:      slices.Clone(w.formation.Enemies),
		Score:        w.score,
		Level:        w.level,
		Status:       w.status,
		Reason:       w.reason,
		Interval:     w.formation.Interval,
		Direction:    w.formation.Direction,
		CanvasWidth:  w.params.CanvasWidth,
		CanvasHeight: w.params.CanvasHeight,
	}
}

// Rects lists the scene in draw order: enemies, bullets, then the player.
func (s Scene) Rects() []Rect {
	rects := make([]Rect, 0, len(s.Enemies)+len(s.Bullets)+1)
	for _, e := range s.Enemies {
		rects = append(rects, Rect{Kind: KindEnemy, Box: e.Box, Color: e.Row})
	}
	for _, b := range s.Bullets {
		rects = append(rects, Rect{Kind: KindBullet, Box: b})
	}
	rects = append(rects, Rect{Kind: KindPlayer, Box: s.Player})
	return rects
}

// Hash returns a simple hash of the scene for determinism testing.
func (s Scene) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Level) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Status)
	h = h*31 + uint64(s.Reason)
	h = h*31 + math.Float64bits(s.Interval)
	h = h*31 + uint64(s.Direction+1) //#nosec G115 -- hash computation
	h = hashBox(h, s.Player)

	for _, b := range s.Bullets {
		h = hashBox(h, b)
	}
	for _, e := range s.Enemies {
		h = hashBox(h, e.Box)
		h = h*31 + uint64(e.Row) //#nosec G115 -- hash computation
		h = h*31 + uint64(e.Col) //#nosec G115 -- hash computation
	}
	return h
}

func hashBox(h uint64, b Box) uint64 {
	h = h*31 + math.Float64bits(b.X)
	h = h*31 + math.Float64bits(b.Y)
	h = h*31 + math.Float64bits(b.W)
	h = h*31 + math.Float64bits(b.H)
	return h
}
