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
	ColorOrange
	ColorGray
	ColorSalmon
)

// MaxColors is the number of distinct bubble colors a level may use.
const MaxColors = 8

// bubblePalette maps a bubble color index to a screen color.
var bubblePalette = [MaxColors]Color{
	ColorRed,
	ColorGreen,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
	ColorYellow,
	ColorOrange,
	ColorWhite,
}

// BubbleColor returns the screen color for a bubble color index.
// Indexes outside the palette render as ColorGray.
func BubbleColor(index int) Color {
	if index < 0 || index >= MaxColors {
		return ColorGray
	}
	return bubblePalette[index]
}

// BubbleColorName returns a short human-readable name for a bubble color index.
func BubbleColorName(index int) string {
	switch BubbleColor(index) {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorYellow:
		return "yellow"
	case ColorOrange:
		return "orange"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}
