package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/blockarcade/internal/config"
	"github.com/vovakirdan/blockarcade/internal/core"
)

// fixedSource makes every rng.Intn(n) call return v % n (for small n).
type fixedSource struct{ v int64 }

func (s fixedSource) Int63() int64 { return s.v << 32 }
func (s fixedSource) Seed(int64)   {}

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: seed})
	return g
}

// place swaps in a snake that takes a step on the next fixed tick.
func place(g *Game, body []core.Point, dir Direction) {
	g.snake = primed(body, dir)
}

func TestNewGameState(t *testing.T) {
	g := newGame(t, 1)

	snap := g.Snapshot()
	if snap.SnakeLen != 3 || snap.Head != core.Pt(2, 2) {
		t.Errorf("Fresh snake = len %d head %v, expected len 3 head (2, 2)", snap.SnakeLen, snap.Head)
	}
	if snap.Dir != DirNone {
		t.Errorf("Fresh snake direction = %v, expected none", snap.Dir)
	}
	w, h := g.Size()
	if w != 40 || h != 20 {
		t.Errorf("Size() = %dx%d, expected 40x20", w, h)
	}
}

func TestSelfCollisionRestarts(t *testing.T) {
	g := newGame(t, 2)
	place(g, pts(5, 5, 5, 6, 5, 7), DirDown)

	res := g.FixedUpdate(0)

	if len(res.Events) != 1 || res.Events[0].Kind != core.EventRestart || res.Events[0].Reason != ReasonSelf {
		t.Fatalf("Expected a self-collision restart event, got %+v", res.Events)
	}
	if res.Events[0].At != core.Pt(5, 6) {
		t.Errorf("Restart at %v, expected (5, 6)", res.Events[0].At)
	}

	snap := g.Snapshot()
	if snap.SnakeLen != 3 || snap.Head != core.Pt(2, 2) {
		t.Errorf("After restart: len %d head %v, expected len 3 head (2, 2)", snap.SnakeLen, snap.Head)
	}
	if snap.Restarts != 1 {
		t.Errorf("Restarts = %d, expected 1", snap.Restarts)
	}
	if snap.Dir != DirNone || snap.Speed != 0 {
		t.Errorf("Restart should build a fresh snake, got dir %v speed %f", snap.Dir, snap.Speed)
	}
}

func TestWallCollisionRestarts(t *testing.T) {
	tests := []struct {
		name string
		body []core.Point
		dir  Direction
	}{
		{"right edge", pts(19, 5, 18, 5, 17, 5), DirRight},
		{"left edge", pts(0, 5, 1, 5, 2, 5), DirLeft},
		{"top edge", pts(5, 0, 5, 1, 5, 2), DirUp},
		{"bottom edge", pts(5, 19, 5, 18, 5, 17), DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t, 3)
			place(g, tc.body, tc.dir)

			res := g.FixedUpdate(0)

			if len(res.Events) != 1 || res.Events[0].Reason != ReasonWall {
				t.Fatalf("Expected a wall restart event, got %+v", res.Events)
			}
			if g.Snapshot().Head != core.Pt(2, 2) {
				t.Errorf("Head after restart = %v, expected (2, 2)", g.Snapshot().Head)
			}
		})
	}
}

func TestInsideBoardNoRestart(t *testing.T) {
	g := newGame(t, 4)
	g.fruit.position = core.Pt(1, 1)
	place(g, pts(18, 5, 17, 5, 16, 5), DirRight)

	res := g.FixedUpdate(0)

	if len(res.Events) != 0 {
		t.Fatalf("Expected no events, got %+v", res.Events)
	}
	if g.Snapshot().Head != core.Pt(19, 5) {
		t.Errorf("Head = %v, expected (19, 5)", g.Snapshot().Head)
	}
}

func TestFruitConsumption(t *testing.T) {
	g := newGame(t, 5)
	g.fruit = &Fruit{position: core.Pt(10, 10), boardSize: 20, rng: rand.New(fixedSource{v: 3})}
	place(g, pts(10, 11, 10, 12, 10, 13), DirUp)

	res := g.FixedUpdate(0)

	if len(res.Events) != 1 || res.Events[0].Kind != core.EventGrowth {
		t.Fatalf("Expected a growth event, got %+v", res.Events)
	}
	snap := g.Snapshot()
	if !snap.GrowthPending {
		t.Error("Growth should be pending in the tick the fruit is eaten")
	}
	if snap.SnakeLen != 3 {
		t.Errorf("Length = %d, expected growth to wait for the next step", snap.SnakeLen)
	}
	if snap.Fruit != core.Pt(4, 4) {
		t.Errorf("Fruit = %v, expected resample to (4, 4)", snap.Fruit)
	}

	// Run ticks until the next step happens
	for i := 0; i < 20 && g.snake.Len() == 3; i++ {
		g.FixedUpdate(0)
	}
	snap = g.Snapshot()
	if snap.SnakeLen != 4 {
		t.Errorf("Length = %d after the next step, expected 4", snap.SnakeLen)
	}
	if snap.GrowthPending {
		t.Error("Growth flag should be cleared after the step")
	}
	if snap.Head != core.Pt(10, 9) {
		t.Errorf("Head = %v, expected (10, 9)", snap.Head)
	}
}

func TestStandingStillRestartsOnFirstStep(t *testing.T) {
	// A snake that has not been given a direction steps onto its own neck.
	g := newGame(t, 6)

	var restarts int
	for i := 0; i < 11; i++ {
		for _, ev := range g.FixedUpdate(0).Events {
			if ev.Kind == core.EventRestart && ev.Reason == ReasonSelf {
				restarts++
			}
		}
	}
	if restarts != 1 {
		t.Errorf("Expected one self restart after the first step, got %d", restarts)
	}
}

func TestLengthNeverDecreasesWithoutRestart(t *testing.T) {
	g := newGame(t, 7)
	g.fruit.position = core.Pt(1, 1)
	place(g, pts(10, 10, 10, 11, 10, 12), DirUp)
	g.snake.RequestGrowth()

	prev := g.snake.Len()
	for i := 0; i < 60; i++ {
		res := g.FixedUpdate(0)
		if len(res.Events) > 0 && res.Events[0].Kind == core.EventRestart {
			break
		}
		if g.snake.Len() < prev {
			t.Fatalf("Length decreased from %d to %d at tick %d", prev, g.snake.Len(), i)
		}
		prev = g.snake.Len()
	}
	if prev != 4 {
		t.Errorf("Expected length 4 after one growth, got %d", prev)
	}
}

func TestUpdateAppliesInput(t *testing.T) {
	g := newGame(t, 8)

	in := core.NewInputFrame()
	in.Set(core.ActionDown)
	g.Update(in)

	if g.Snapshot().Dir != DirDown {
		t.Errorf("Direction = %v, expected down", g.Snapshot().Dir)
	}
}

func TestFruitStaysInInterior(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	f := NewFruit(20, rng)

	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		f.Resample()
		p := f.Position()
		if p.X < 1 || p.X >= 19 || p.Y < 1 || p.Y >= 19 {
			t.Fatalf("Fruit at %v, expected within [1, 19)", p)
		}
		seen[p.X] = true
	}
	if !seen[1] || !seen[18] {
		t.Error("Expected both ends of the range to be reachable")
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t, 12345)
	g2 := newGame(t, 12345)

	for i := 0; i < 500; i++ {
		in := core.NewInputFrame()
		switch {
		case i == 5:
			in.Set(core.ActionRight)
		case i == 150:
			in.Set(core.ActionDown)
		case i == 300:
			in.Set(core.ActionLeft)
		}
		g1.Update(in)
		g2.Update(in)
		g1.FixedUpdate(0.016)
		g2.FixedUpdate(0.016)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestDraw(t *testing.T) {
	g := newGame(t, 9)
	g.fruit.position = core.Pt(10, 10)

	w, h := g.Size()
	dst := core.NewScreen(w, h)
	dst.Fill(g.Background())
	g.Draw(dst)

	// Head (2, 2) covers columns 4-5 of row 2
	for _, x := range []int{4, 5} {
		if c := dst.GetCell(x, 2); c.Bg != snakeColor {
			t.Errorf("Cell (%d, 2) = %+v, expected snake block", x, c)
		}
	}
	if c := dst.GetCell(6, 2); c.Bg != backgroundColor {
		t.Errorf("Cell (6, 2) = %+v, expected background", c)
	}
	if c := dst.GetCell(21, 10); c.Bg != fruitColor {
		t.Errorf("Cell (21, 10) = %+v, expected fruit block", c)
	}
}
