package template

import (
	"testing"
	"time"

	"github.com/vovakirdan/blockarcade/internal/config"
	"github.com/vovakirdan/blockarcade/internal/core"
	"github.com/vovakirdan/blockarcade/internal/loop"
	"github.com/vovakirdan/blockarcade/internal/registry"
)

func TestRegistered(t *testing.T) {
	g, err := registry.Create("template", config.Defaults())
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Template" {
		t.Errorf("Title() = %q, expected Template", g.Title())
	}
	if w, h := g.Size(); w != 64 || h != 24 {
		t.Errorf("Size() = %dx%d, expected 64x24", w, h)
	}
}

func TestBlankWhiteSurface(t *testing.T) {
	g := New(config.DefaultTemplateConfig())
	g.Reset(core.DefaultConfig())

	start := time.Unix(0, 0)
	d := loop.New(g, config.DefaultLoopConfig(), start, nil)

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	in.Press(core.ButtonDown)
	for i := 0; i < 10; i++ {
		d.Frame(start.Add(time.Duration(i)*50*time.Millisecond), in)
	}

	scr := d.Draw()
	for y := 0; y < scr.Height(); y++ {
		for x := 0; x < scr.Width(); x++ {
			if c := scr.GetCell(x, y); c.Rune != ' ' || c.Bg != core.ColorWhite {
				t.Fatalf("Cell (%d, %d) = %+v, expected blank white", x, y, c)
			}
		}
	}
}
