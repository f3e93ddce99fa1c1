package core

// Color is a symbolic foreground color for surface cells and styled elements.
// The platform maps it to terminal colors; games never deal in escape codes.
type Color uint8

// Palette of colors the games draw with.
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
)

// DataColor is the element data key holding a color name the renderer
// paints the element's text with.
const DataColor = "color"

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
	ColorOrange:  "orange",
	ColorGray:    "gray",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseColor resolves a color name. Unknown names map to ColorDefault.
func ParseColor(name string) Color {
	for c, n := range colorNames {
		if n == name {
			return c
		}
	}
	return ColorDefault
}
