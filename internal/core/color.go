package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI color codes by the platform layer.
type Color uint8

// Predefined colors for world elements. Token values get their own
// color each so the viewport reads at a glance.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorCyan
	ColorGreen
	ColorYellow
	ColorOrange
	ColorBrightMagenta
	ColorBrightWhite
	ColorGray
)
