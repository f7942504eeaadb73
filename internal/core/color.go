package core

// Color is the foreground color of a screen cell. The platform layer maps
// it to terminal styles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorBrightGreen
	ColorGray
)
