// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned area of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Viewport maps a continuous playfield onto a rectangle of screen cells.
// Terminal cells are about twice as tall as they are wide, so one cell
// covers CellW units horizontally and 2*CellW units vertically.
type Viewport struct {
	Area  Rect    // Cells the playfield occupies
	CellW float64 // Playfield units per cell column
	CellH float64 // Playfield units per cell row
}

// FitViewport finds the largest viewport for a fieldW x fieldH playfield
// inside avail, centered. ok is false if the playfield would need more than
// maxCell units per column to fit.
func FitViewport(fieldW, fieldH float64, avail Rect, maxCell float64) (vp Viewport, ok bool) {
	if avail.Empty() {
		return Viewport{}, false
	}
	cellW := math.Max(fieldW/float64(avail.W), fieldH/(2*float64(avail.H)))
	if cellW > maxCell {
		return Viewport{}, false
	}

	w := int(math.Ceil(fieldW / cellW))
	h := int(math.Ceil(fieldH / (2 * cellW)))
	w = Clamp(w, 1, avail.W)
	h = Clamp(h, 1, avail.H)

	return Viewport{
		Area:  NewRect(avail.X+(avail.W-w)/2, avail.Y+(avail.H-h)/2, w, h),
		CellW: cellW,
		CellH: 2 * cellW,
	}, true
}

// Project converts a playfield box to the screen cells it touches.
// Every non-empty box covers at least one cell.
func (v Viewport) Project(x, y, w, h float64) Rect {
	x0 := int(math.Floor(x / v.CellW))
	y0 := int(math.Floor(y / v.CellH))
	x1 := int(math.Ceil((x + w) / v.CellW))
	y1 := int(math.Ceil((y + h) / v.CellH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(v.Area.X+x0, v.Area.Y+y0, x1-x0, y1-y0)
}

// Clip returns the part of r that lies inside the viewport.
func (v Viewport) Clip(r Rect) Rect {
	x0 := Clamp(r.X, v.Area.X, v.Area.Right())
	y0 := Clamp(r.Y, v.Area.Y, v.Area.Bottom())
	x1 := Clamp(r.Right(), v.Area.X, v.Area.Right())
	y1 := Clamp(r.Bottom(), v.Area.Y, v.Area.Bottom())
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
