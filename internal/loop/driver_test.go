package loop

import (
	"testing"
	"time"

	"github.com/vovakirdan/blockarcade/internal/config"
	"github.com/vovakirdan/blockarcade/internal/core"
)

// recorder is a game that logs every call it receives.
type recorder struct {
	calls  []string
	deltas []float64
	inputs []core.InputFrame
}

func (r *recorder) ID() string                 { return "recorder" }
func (r *recorder) Title() string              { return "Recorder" }
func (r *recorder) Size() (int, int)           { return 4, 2 }
func (r *recorder) Background() core.Color     { return core.ColorBlack }
func (r *recorder) Controls() []core.Control   { return nil }
func (r *recorder) Reset(_ core.RuntimeConfig) {}

func (r *recorder) Update(in core.InputFrame) core.StepResult {
	r.calls = append(r.calls, "update")
	r.inputs = append(r.inputs, in)
	return core.StepResult{Events: []core.Event{{Kind: core.EventFocus, Reason: "test"}}}
}

func (r *recorder) FixedUpdate(dt float64) core.StepResult {
	r.calls = append(r.calls, "tick")
	r.deltas = append(r.deltas, dt)
	return core.StepResult{}
}

func (r *recorder) Draw(dst *core.Screen) {
	dst.SetCell(0, 0, core.Cell{Rune: '@', Bg: core.ColorBlack})
}

var testLoop = config.LoopConfig{FPS: 60, TickMillis: 20, MaxCatchUp: 3}

func TestFrameRunsTicksBeforeUpdate(t *testing.T) {
	start := time.Unix(0, 0)
	g := &recorder{}
	d := New(g, testLoop, start, nil)

	d.Frame(start.Add(10*time.Millisecond), core.NewInputFrame())
	d.Frame(start.Add(45*time.Millisecond), core.NewInputFrame())

	expected := []string{"update", "tick", "tick", "update"}
	if len(g.calls) != len(expected) {
		t.Fatalf("Calls = %v, expected %v", g.calls, expected)
	}
	for i := range expected {
		if g.calls[i] != expected[i] {
			t.Fatalf("Calls = %v, expected %v", g.calls, expected)
		}
	}

	frames, ticks := d.Counts()
	if frames != 2 || ticks != 2 {
		t.Errorf("Counts() = (%d, %d), expected (2, 2)", frames, ticks)
	}
}

func TestFixedUpdateGetsPreviousDelta(t *testing.T) {
	start := time.Unix(0, 0)
	g := &recorder{}
	d := New(g, testLoop, start, nil)

	d.Frame(start.Add(10*time.Millisecond), core.NewInputFrame())

	// This frame's ticks see the 10ms frame, not the 30ms one.
	d.Frame(start.Add(40*time.Millisecond), core.NewInputFrame())
	if len(g.deltas) != 2 {
		t.Fatalf("Expected 2 ticks, got %d", len(g.deltas))
	}
	for i, dt := range g.deltas {
		if dt != 0.01 {
			t.Errorf("Tick %d dt = %v, expected 0.01", i, dt)
		}
	}

	// The next tick sees the 30ms frame.
	d.Frame(start.Add(60*time.Millisecond), core.NewInputFrame())
	if len(g.deltas) != 3 || g.deltas[2] != 0.03 {
		t.Errorf("Deltas = %v, expected a third tick with 0.03", g.deltas)
	}
}

func TestFrameCatchUpCap(t *testing.T) {
	start := time.Unix(0, 0)
	g := &recorder{}
	d := New(g, testLoop, start, nil)

	d.Frame(start.Add(time.Second), core.NewInputFrame())
	if _, ticks := d.Counts(); ticks != 3 {
		t.Errorf("Ticks after a long stall = %d, expected cap of 3", ticks)
	}

	// Dropped ticks are not replayed on the next frame.
	d.Frame(start.Add(time.Second+5*time.Millisecond), core.NewInputFrame())
	if _, ticks := d.Counts(); ticks != 3 {
		t.Errorf("Ticks = %d, expected no replay", ticks)
	}
}

func TestFramePassesInput(t *testing.T) {
	start := time.Unix(0, 0)
	g := &recorder{}
	d := New(g, testLoop, start, nil)

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	in.Mouse = core.Pt(2, 1)
	d.Frame(start, in)

	if len(g.inputs) != 1 || !g.inputs[0].Has(core.ActionUp) || g.inputs[0].Mouse != core.Pt(2, 1) {
		t.Errorf("Update saw %+v", g.inputs)
	}
}

func TestDrawClearsToBackground(t *testing.T) {
	start := time.Unix(0, 0)
	g := &recorder{}
	d := New(g, testLoop, start, nil)

	d.Draw().SetCell(3, 1, core.Cell{Rune: 'x', Fg: core.ColorWhite, Bg: core.ColorAzure})
	scr := d.Draw()

	if w, h := scr.Width(), scr.Height(); w != 4 || h != 2 {
		t.Fatalf("Screen size = %dx%d, expected 4x2", w, h)
	}
	if c := scr.GetCell(3, 1); c.Rune != ' ' || c.Bg != core.ColorBlack {
		t.Errorf("Stale cell %+v survived the clear", c)
	}
	if c := scr.GetCell(0, 0); c.Rune != '@' || c.Bg != core.ColorBlack {
		t.Errorf("Drawn cell = %+v, expected '@' on black", c)
	}
	if d.Game() != g {
		t.Error("Game() should return the driven game")
	}
}
