package sudoku

import (
	"strconv"

	"github.com/vovakirdan/blockarcade/internal/config"
	"github.com/vovakirdan/blockarcade/internal/core"
)

// BoardSize is the number of cells per row and column.
const BoardSize = 9

// groupSize is the side of a highlighted block of cells.
const groupSize = 3

// Numbers returns the board's numbers, indexed [row][column].
// Every row is 1..9; it is a display pattern, not a solvable puzzle.
func Numbers() [BoardSize][BoardSize]int {
	var n [BoardSize][BoardSize]int
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			n[y][x] = x + 1
		}
	}
	return n
}

// layout computes cell rectangles for a board centered on the surface.
type layout struct {
	cell   config.SudokuCell
	origin core.Point
}

func newLayout(cfg config.SudokuConfig) layout {
	c := cfg.Cell
	boardW := BoardSize*c.Width + (BoardSize-1)*c.MarginX + (BoardSize/groupSize-1)*c.GroupGapX
	boardH := BoardSize*c.Height + (BoardSize-1)*c.MarginY + (BoardSize/groupSize-1)*c.GroupGapY
	return layout{
		cell: c,
		origin: core.Point{
			X: (cfg.Surface.Width - boardW) / 2,
			Y: (cfg.Surface.Height - boardH) / 2,
		},
	}
}

// rect returns the surface rectangle of board cell (x, y).
func (l layout) rect(x, y int) core.Rect {
	c := l.cell
	return core.NewRect(
		l.origin.X+x*(c.Width+c.MarginX)+c.GroupGapX*(x/groupSize),
		l.origin.Y+y*(c.Height+c.MarginY)+c.GroupGapY*(y/groupSize),
		c.Width,
		c.Height,
	)
}

// newCells builds the board cells in column-major order (x outer, y inner),
// which is also the order Update walks them in.
func newCells(cfg config.SudokuConfig) []*Cell {
	numbers := Numbers()
	l := newLayout(cfg)

	cells := make([]*Cell, 0, BoardSize*BoardSize)
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			cells = append(cells, &Cell{
				pos:   core.Point{X: x, Y: y},
				rect:  l.rect(x, y),
				state: StateEnabled,
				text:  strconv.Itoa(numbers[y][x]),
			})
		}
	}
	return cells
}
