package core

// Color is the foreground colour of a screen cell. The platform decides how
// each value is drawn.
type Color uint8

// Colours used by the game: one per block type plus HUD and sprites.
const (
	ColorDefault Color = iota
	ColorOrange
	ColorLightBlue
	ColorGreen
	ColorRed
	ColorBlue
	ColorPink
	ColorSilver
	ColorGold
	ColorBrightWhite  // Paddle
	ColorBrightYellow // Ball
)
