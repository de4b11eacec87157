package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Palette.
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
	ColorBrightBlue
	ColorBrightWhite
	ColorGray
	ColorOrange
)

// Slope elements.
const (
	ColorSnow     = ColorBrightWhite
	ColorTree     = ColorGreen
	ColorRock     = ColorGray
	ColorPost     = ColorBrightRed
	ColorPostBent = ColorOrange
	ColorFinish   = ColorBrightBlue
	ColorSkier    = ColorBrightYellow
	ColorOpponent = ColorMagenta
	ColorHUD      = ColorCyan
)
