package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal layer.
type Color uint8

// Palette used by the snake renderers.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorDarkGreen
	ColorOrange
	ColorGray
	ColorDarkGray
)
