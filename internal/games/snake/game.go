// Package snake implements the Snake game: a snake driven by a speed
// accumulator on a square grid, one fruit, and a full restart whenever the
// snake hits itself or a wall.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/blockarcade/internal/config"
	"github.com/vovakirdan/blockarcade/internal/core"
	"github.com/vovakirdan/blockarcade/internal/registry"
)

// Restart reasons reported in events.
const (
	ReasonSelf = "self"
	ReasonWall = "wall"
)

// Colors.
const (
	backgroundColor = core.ColorBlack
	snakeColor      = core.ColorChartreuse4
	fruitColor      = core.ColorAzure
)

// Game is the Snake game manager. It owns the snake and the fruit and
// applies the rules after every fixed tick.
type Game struct {
	cfg      config.SnakeConfig
	rng      *rand.Rand
	snake    *Snake
	fruit    *Fruit
	tick     uint64
	restarts int
}

// New creates a Snake game with the given configuration.
func New(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("snake", "Snake", func(b config.Bundle) (registry.Game, error) {
		return New(b.Snake), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Size returns the surface size: the board scaled by the block size.
func (g *Game) Size() (int, int) {
	n := g.cfg.Board.Size
	return n * g.cfg.Board.BlockWidth, n * g.cfg.Board.BlockHeight
}

// Background returns the clear color.
func (g *Game) Background() core.Color {
	return backgroundColor
}

// Controls lists the key bindings.
func (g *Game) Controls() []core.Control {
	return []core.Control{
		{Keys: "w/a/s/d", Help: "move"},
	}
}

// Reset seeds the RNG and creates a fresh snake and fruit.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.restarts = 0
	g.spawn()
}

// spawn replaces the snake and fruit with new instances.
func (g *Game) spawn() {
	start := make([]core.Point, len(g.cfg.Start.Body))
	for i, p := range g.cfg.Start.Body {
		start[i] = core.Point{X: p.X, Y: p.Y}
	}
	g.snake = NewSnake(start, g.cfg.Movement)
	g.fruit = NewFruit(g.cfg.Board.Size, g.rng)
}

// Update applies the frame's movement keys.
func (g *Game) Update(in core.InputFrame) core.StepResult {
	g.snake.ApplyInput(in)
	return core.StepResult{}
}

// FixedUpdate moves the snake and applies the rules.
func (g *Game) FixedUpdate(dt float64) core.StepResult {
	g.tick++
	g.snake.Advance(dt)
	return g.collide()
}

// collide checks, in order: the head against the rest of the body, the head
// against the board edges, the head against the fruit. The first rule that
// triggers a restart ends the check.
func (g *Game) collide() core.StepResult {
	head := g.snake.Head()

	for _, block := range g.snake.Tail() {
		if head == block {
			return g.restart(ReasonSelf, head)
		}
	}

	n := g.cfg.Board.Size
	if head.X >= n || head.X < 0 || head.Y >= n || head.Y < 0 {
		return g.restart(ReasonWall, head)
	}

	if head == g.fruit.Position() {
		g.snake.RequestGrowth()
		g.fruit.Resample()
		return core.StepResult{Events: []core.Event{
			{Kind: core.EventGrowth, Reason: "fruit", At: head},
		}}
	}

	return core.StepResult{}
}

// restart discards the snake and fruit and builds new ones.
func (g *Game) restart(reason string, at core.Point) core.StepResult {
	g.restarts++
	g.spawn()
	return core.StepResult{Events: []core.Event{
		{Kind: core.EventRestart, Reason: reason, At: at},
	}}
}
