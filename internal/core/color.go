package core

// Color is the foreground color of a screen cell. The platform layer maps it
// to an ANSI 256-color code.
type Color uint8

// Base terminal colors.
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
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Scene palette: one color per kind of drawn object.
const (
	ColorSky            = ColorGray
	ColorCloud          = ColorWhite
	ColorGround         = ColorGreen
	ColorPlatform       = ColorBrightGreen
	ColorMovingPlatform = ColorCyan
	ColorEnemy          = ColorBrightRed
	ColorPlayer         = ColorBrightYellow
	ColorBeak           = ColorOrange
	ColorHUD            = ColorBrightWhite
	ColorBanner         = ColorBrightMagenta
	ColorPanelTitle     = ColorBrightYellow
)
