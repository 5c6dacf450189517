package snake

import "github.com/vovakirdan/blockarcade/internal/core"

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick          uint64
	Restarts      int
	SnakeLen      int
	Head          core.Point
	Dir           Direction
	Speed         float64
	GrowthPending bool
	Fruit         core.Point
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:          g.tick,
		Restarts:      g.restarts,
		SnakeLen:      g.snake.Len(),
		Head:          g.snake.Head(),
		Dir:           g.snake.Direction(),
		Speed:         g.snake.Speed(),
		GrowthPending: g.snake.GrowthPending(),
		Fruit:         g.fruit.Position(),
	}
}
