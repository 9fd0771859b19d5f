package core

// Color is a foreground color for a screen cell. The platform layer maps
// these to ANSI colors; the core stays terminal-agnostic.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightCyan
	ColorGray
)
