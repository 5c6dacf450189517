package snake

import (
	"github.com/vovakirdan/blockarcade/internal/core"
)

// Draw renders the fruit, then the snake, as solid blocks.
func (g *Game) Draw(dst *core.Screen) {
	g.drawBlock(dst, g.fruit.Position(), fruitColor)
	for _, block := range g.snake.Blocks() {
		g.drawBlock(dst, block, snakeColor)
	}
}

// drawBlock fills the screen rectangle of one grid cell.
func (g *Game) drawBlock(dst *core.Screen, p core.Point, color core.Color) {
	bw, bh := g.cfg.Board.BlockWidth, g.cfg.Board.BlockHeight
	at := p.Scale(bw, bh)
	dst.FillRect(core.NewRect(at.X, at.Y, bw, bh), core.Cell{Rune: ' ', Bg: color})
}
