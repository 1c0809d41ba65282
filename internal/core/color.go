package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the game and its overlays.
const (
	ColorDefault Color = iota
	ColorRed           // Top enemy row
	ColorCoral
	ColorOrange
	ColorGold
	ColorLime // Bottom enemy row
	ColorCyan // Player hull
	ColorTeal // Player cannon
	ColorWhite
	ColorGray
)
