// Package template is the skeleton every game starts from: a manager that
// owns no entities on a blank white surface. Copy it to begin a new game.
package template

import (
	"github.com/vovakirdan/blockarcade/internal/config"
	"github.com/vovakirdan/blockarcade/internal/core"
	"github.com/vovakirdan/blockarcade/internal/registry"
)

// Game is an empty game manager.
type Game struct {
	cfg config.TemplateConfig
}

// New creates the empty game.
func New(cfg config.TemplateConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("template", "Template", func(b config.Bundle) (registry.Game, error) {
		return New(b.Template), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "template"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Template"
}

// Size returns the configured surface size.
func (g *Game) Size() (int, int) {
	return g.cfg.Surface.Width, g.cfg.Surface.Height
}

// Background returns the clear color.
func (g *Game) Background() core.Color {
	return core.ColorWhite
}

// Controls lists the key bindings. The template has none beyond quit.
func (g *Game) Controls() []core.Control {
	return nil
}

// Reset does nothing: there is no state to rebuild.
func (g *Game) Reset(_ core.RuntimeConfig) {}

// Update ignores input and never restarts.
func (g *Game) Update(_ core.InputFrame) core.StepResult {
	return core.StepResult{}
}

// FixedUpdate has no simulation to advance.
func (g *Game) FixedUpdate(_ float64) core.StepResult {
	return core.StepResult{}
}

// Draw leaves the surface at its background color.
func (g *Game) Draw(_ *core.Screen) {}
