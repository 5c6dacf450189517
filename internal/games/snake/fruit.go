package snake

import (
	"math/rand"

	"github.com/vovakirdan/blockarcade/internal/core"
)

// Fruit is the single item the snake eats.
type Fruit struct {
	position  core.Point
	boardSize int
	rng       *rand.Rand
}

// NewFruit creates a fruit at a random interior position.
func NewFruit(boardSize int, rng *rand.Rand) *Fruit {
	f := &Fruit{boardSize: boardSize, rng: rng}
	f.Resample()
	return f
}

// Resample moves the fruit to a uniformly random cell in [1, N-1) on each
// axis: the first row/column is never used, nor is the last. The snake's
// body is not avoided.
func (f *Fruit) Resample() {
	f.position = core.Point{
		X: 1 + f.rng.Intn(f.boardSize-2),
		Y: 1 + f.rng.Intn(f.boardSize-2),
	}
}

// Position returns the fruit's grid cell.
func (f *Fruit) Position() core.Point {
	return f.position
}
