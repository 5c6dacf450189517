package core

// Color identifies a named color of the drawing surface.
// The platform layer decides how each one is shown on the terminal.
type Color uint8

// Named colors used by the games. ColorDefault leaves the terminal's own
// foreground/background untouched.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorGray
	ColorAzure
	ColorAzure3
	ColorChartreuse4
	ColorDarkGoldenrod1
	ColorDarkOrchid2
	ColorDarkOrchid3
)

// String returns the color's name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorAzure:
		return "azure"
	case ColorAzure3:
		return "azure3"
	case ColorChartreuse4:
		return "chartreuse4"
	case ColorDarkGoldenrod1:
		return "darkgoldenrod1"
	case ColorDarkOrchid2:
		return "darkorchid2"
	case ColorDarkOrchid3:
		return "darkorchid3"
	default:
		return "unknown"
	}
}
