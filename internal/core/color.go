package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for arena elements and themes.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorPink
	ColorYellow
	ColorGreen
	ColorWhite
	ColorGray
	ColorDimGray
	ColorRed
)
