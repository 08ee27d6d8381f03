package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
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
	ColorBrightYellow
	ColorOrange
	ColorGray
)

// ColorFromRGB maps a 24-bit tint to the nearest predefined color.
// Only the tints the games actually use are recognised; anything else is default.
func ColorFromRGB(rgb uint32) Color {
	switch rgb {
	case 0xff0000:
		return ColorBrightRed
	case 0xffff00:
		return ColorBrightYellow
	case 0xffffff:
		return ColorWhite
	default:
		return ColorDefault
	}
}
