// Package sudoku implements a Sudoku board UI: 9x9 numbered cells that react
// to the mouse. Hovering highlights a cell, clicking focuses it and lights up
// its row and column, clicking the focused cell again clears focus.
package sudoku

import (
	"github.com/vovakirdan/blockarcade/internal/assets"
	"github.com/vovakirdan/blockarcade/internal/config"
	"github.com/vovakirdan/blockarcade/internal/core"
	"github.com/vovakirdan/blockarcade/internal/registry"
)

const (
	backgroundColor = core.ColorWhite
	artColor        = core.ColorGray
)

// Game is the Sudoku board manager.
type Game struct {
	cfg    config.SudokuConfig
	assets *assets.Pack
	cells  []*Cell

	mouse        core.Point // Pointer position on the surface
	mousePressed bool       // Button went down and the press was not consumed yet
	cellFocused  bool
	focusedPos   core.Point
}

// New creates a board drawn with the given assets.
func New(cfg config.SudokuConfig, pack *assets.Pack) *Game {
	return &Game{
		cfg:    cfg,
		assets: pack,
	}
}

func init() {
	registry.Register("sudoku", "Sudoku", func(b config.Bundle) (registry.Game, error) {
		pack, err := assets.Load(b.Sudoku.AssetsDir)
		if err != nil {
			return nil, err
		}
		return New(b.Sudoku, pack), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "sudoku"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sudoku"
}

// Size returns the configured surface size.
func (g *Game) Size() (int, int) {
	return g.cfg.Surface.Width, g.cfg.Surface.Height
}

// Background returns the clear color.
func (g *Game) Background() core.Color {
	return backgroundColor
}

// Controls lists the key bindings.
func (g *Game) Controls() []core.Control {
	return []core.Control{
		{Keys: "mouse", Help: "hover"},
		{Keys: "click", Help: "focus/unfocus cell"},
	}
}

// Reset rebuilds the board with no focus.
func (g *Game) Reset(_ core.RuntimeConfig) {
	g.cells = newCells(g.cfg)
	g.mouse = core.Point{X: -1, Y: -1}
	g.mousePressed = false
	g.cellFocused = false
	g.focusedPos = core.Point{}
}

// Update recomputes every cell state from the focus and the pointer.
//
// Cells are walked in board order. The focused cell records the focus and
// may be toggled off by a click; every other cell starts from ENABLED, joins
// the focus group if it shares its column or row, and turns HOVERED under
// the pointer. A click on a hovered cell resets the whole board and focuses
// it. A single press is consumed by at most one cell.
func (g *Game) Update(in core.InputFrame) core.StepResult {
	for _, b := range in.Buttons {
		g.mousePressed = b == core.ButtonDown
	}
	g.mouse = in.Mouse

	var events []core.Event
	for _, c := range g.cells {
		if c.state == StateFocused {
			g.cellFocused = true
			g.focusedPos = c.pos
			if c.hit(g.mouse) && g.mousePressed {
				g.mousePressed = false
				g.cellFocused = false
				c.state = StateEnabled
				events = append(events, core.Event{Kind: core.EventBlur, Reason: "click", At: c.pos})
			}
			continue
		}

		c.state = StateEnabled

		if g.cellFocused {
			if c.pos.X == g.focusedPos.X {
				c.state = StateGroupFocused
			}
			if c.pos.Y == g.focusedPos.Y {
				c.state = StateGroupFocused
			}
		}

		if c.hit(g.mouse) {
			c.state = StateHovered
			if g.mousePressed {
				g.mousePressed = false
				for _, other := range g.cells {
					other.state = StateEnabled
				}
				c.state = StateFocused
				events = append(events, core.Event{Kind: core.EventFocus, Reason: "click", At: c.pos})
			}
		}
	}

	return core.StepResult{Events: events}
}

// FixedUpdate does nothing; the board has no timed behavior.
func (g *Game) FixedUpdate(_ float64) core.StepResult {
	return core.StepResult{}
}

// Draw renders the background art and the cells.
func (g *Game) Draw(dst *core.Screen) {
	for y, row := range g.assets.Background {
		x := 0
		for _, r := range row {
			if r != ' ' {
				bg := dst.GetCell(x, y).Bg
				dst.SetCell(x, y, core.Cell{Rune: r, Fg: artColor, Bg: bg})
			}
			x++
		}
	}

	for _, c := range g.cells {
		c.draw(dst, g.assets.Cell)
	}
}

// Cell returns the cell at board position (x, y), or nil if out of range.
func (g *Game) Cell(x, y int) *Cell {
	if x < 0 || x >= BoardSize || y < 0 || y >= BoardSize {
		return nil
	}
	return g.cells[x*BoardSize+y]
}

// Focused returns the focused cell position, if any.
func (g *Game) Focused() (core.Point, bool) {
	for _, c := range g.cells {
		if c.state == StateFocused {
			return c.pos, true
		}
	}
	return core.Point{}, false
}
