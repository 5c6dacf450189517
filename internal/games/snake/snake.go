package snake

import (
	"math"

	"github.com/vovakirdan/blockarcade/internal/config"
	"github.com/vovakirdan/blockarcade/internal/core"
)

// Direction is the unit vector the snake's head moves by on each step.
type Direction struct {
	X, Y int
}

// Movement directions. DirNone is the direction of a fresh snake.
var (
	DirNone  = Direction{0, 0}
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
	DirRight = Direction{1, 0}
	DirLeft  = Direction{-1, 0}
)

// Vector returns the direction as a grid offset.
func (d Direction) Vector() core.Point {
	return core.Point{X: d.X, Y: d.Y}
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionPressed maps one input snapshot to a direction.
// Keys are checked up, down, right, left; when several are held in the same
// frame the last one checked wins. ok is false if no movement key is held.
func DirectionPressed(in core.InputFrame) (dir Direction, ok bool) {
	if in.Has(core.ActionUp) {
		dir, ok = DirUp, true
	}
	if in.Has(core.ActionDown) {
		dir, ok = DirDown, true
	}
	if in.Has(core.ActionRight) {
		dir, ok = DirRight, true
	}
	if in.Has(core.ActionLeft) {
		dir, ok = DirLeft, true
	}
	return dir, ok
}

// Snake is the player entity: an ordered body with the head at index 0.
type Snake struct {
	body          []core.Point
	direction     Direction
	speed         float64 // Movement accumulator
	pendingGrowth bool
	movement      config.SnakeMovement
}

// NewSnake creates a snake standing still on the given body, head first.
// body must not be empty.
func NewSnake(body []core.Point, movement config.SnakeMovement) *Snake {
	return &Snake{
		body:      append([]core.Point(nil), body...),
		direction: DirNone,
		movement:  movement,
	}
}

// ApplyInput stores the direction of the held movement key, if any.
// Reversing into the body is allowed.
func (s *Snake) ApplyInput(in core.InputFrame) {
	if dir, ok := DirectionPressed(in); ok {
		s.direction = dir
	}
}

// Advance feeds dt seconds into the speed accumulator and takes a single grid
// step when it crosses the threshold. Returns true if a step was taken.
// However large dt is, at most one step happens per call.
func (s *Snake) Advance(dt float64) bool {
	s.speed += math.Pow(s.movement.Base, dt*s.movement.Rate)
	if s.speed <= s.movement.Threshold {
		return false
	}
	s.speed = math.Mod(s.speed, s.movement.Threshold)

	head := s.body[0].Add(s.direction.Vector())

	if s.pendingGrowth {
		s.body = append([]core.Point{head}, s.body...)
		s.pendingGrowth = false
		return true
	}

	// Shift: drop the tail, prepend the new head
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head
	return true
}

// RequestGrowth makes the next step keep the tail.
func (s *Snake) RequestGrowth() {
	s.pendingGrowth = true
}

// Head returns the head position.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Tail returns every block except the head.
// The returned slice aliases the snake and must not be modified.
func (s *Snake) Tail() []core.Point {
	return s.body[1:]
}

// Blocks returns the whole body, head first.
// The returned slice aliases the snake and must not be modified.
func (s *Snake) Blocks() []core.Point {
	return s.body
}

// Len returns the number of body blocks.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current movement direction.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Speed returns the movement accumulator.
func (s *Snake) Speed() float64 {
	return s.speed
}

// GrowthPending reports whether the next step will grow the snake.
func (s *Snake) GrowthPending() bool {
	return s.pendingGrowth
}
