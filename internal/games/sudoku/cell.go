package sudoku

import (
	"github.com/vovakirdan/blockarcade/internal/core"
)

// State is the visual state of a board cell.
type State int

const (
	StateEnabled State = iota
	StateDisabled
	StateHovered
	StateFocused
	StateGroupFocused
)

func (s State) String() string {
	switch s {
	case StateEnabled:
		return "ENABLED"
	case StateDisabled:
		return "DISABLED"
	case StateHovered:
		return "HOVERED"
	case StateFocused:
		return "FOCUSED"
	case StateGroupFocused:
		return "GROUP_FOCUSED"
	default:
		return "UNKNOWN"
	}
}

// style is how a state is painted: the texture is tinted with Color and the
// number is written in Text.
type style struct {
	Color core.Color
	Text  core.Color
}

var styles = map[State]style{
	StateEnabled:      {Color: core.ColorAzure, Text: core.ColorBlack},
	StateDisabled:     {Color: core.ColorAzure3, Text: core.ColorAzure3},
	StateHovered:      {Color: core.ColorDarkGoldenrod1, Text: core.ColorWhite},
	StateFocused:      {Color: core.ColorDarkOrchid2, Text: core.ColorWhite},
	StateGroupFocused: {Color: core.ColorDarkOrchid3, Text: core.ColorWhite},
}

// Cell is one numbered square of the board.
type Cell struct {
	pos   core.Point // Board column/row
	rect  core.Rect  // Area on the surface
	state State
	text  string
}

// Position returns the cell's board coordinates.
func (c *Cell) Position() core.Point {
	return c.pos
}

// State returns the current visual state.
func (c *Cell) State() State {
	return c.state
}

// Text returns the number shown in the cell.
func (c *Cell) Text() string {
	return c.text
}

// Rect returns the surface area the cell covers.
func (c *Cell) Rect() core.Rect {
	return c.rect
}

// hit reports whether the surface point p lies inside the cell.
func (c *Cell) hit(p core.Point) bool {
	return c.rect.Contains(p.X, p.Y)
}

// draw paints the tinted texture and the centered number.
func (c *Cell) draw(dst *core.Screen, texture []string) {
	st := styles[c.state]

	for dy, row := range texture {
		if dy >= c.rect.H {
			break
		}
		dx := 0
		for _, r := range row {
			if dx >= c.rect.W {
				break
			}
			x, y := c.rect.X+dx, c.rect.Y+dy
			if r == ' ' {
				dst.SetCell(x, y, core.Cell{Rune: ' ', Bg: st.Color})
			} else {
				bg := dst.GetCell(x, y).Bg
				dst.SetCell(x, y, core.Cell{Rune: r, Fg: st.Color, Bg: bg})
			}
			dx++
		}
	}

	cx, cy := c.rect.Center()
	x := cx - len([]rune(c.text))/2
	dst.DrawTextColor(x, cy, c.text, st.Text, st.Color)
}
