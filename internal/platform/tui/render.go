package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockarcade/internal/core"
)

// palette maps core colors to terminal colors. ColorDefault is absent and
// leaves the terminal's own color in place.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:          lipgloss.Color("#000000"),
	core.ColorWhite:          lipgloss.Color("#FFFFFF"),
	core.ColorGray:           lipgloss.Color("#BEBEBE"),
	core.ColorAzure:          lipgloss.Color("#F0FFFF"),
	core.ColorAzure3:         lipgloss.Color("#C1CDCD"),
	core.ColorChartreuse4:    lipgloss.Color("#458B00"),
	core.ColorDarkGoldenrod1: lipgloss.Color("#FFB90F"),
	core.ColorDarkOrchid2:    lipgloss.Color("#B23AEE"),
	core.ColorDarkOrchid3:    lipgloss.Color("#9A32CD"),
}

// colorPair is the foreground/background combination of a run of cells.
type colorPair struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per color pair seen so far.
// Only touched from the Bubble Tea goroutine.
var styleCache = map[colorPair]lipgloss.Style{}

func styleFor(p colorPair) lipgloss.Style {
	if s, ok := styleCache[p]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c, ok := palette[p.fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := palette[p.bg]; ok {
		s = s.Background(c)
	}
	styleCache[p] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
