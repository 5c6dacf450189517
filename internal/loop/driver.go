// Package loop drives a game: it dispatches fixed simulation ticks at a
// constant cadence, runs the per-frame update and draws onto the game's
// fixed-size surface. It knows nothing about terminals; the platform layer
// calls Frame once per rendered frame and displays the surface.
package loop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockarcade/internal/clock"
	"github.com/vovakirdan/blockarcade/internal/config"
	"github.com/vovakirdan/blockarcade/internal/core"
	"github.com/vovakirdan/blockarcade/internal/registry"
)

// Driver owns the drawing surface and the timers of one running game.
type Driver struct {
	game   registry.Game
	screen *core.Screen
	frames *clock.FrameTimer
	ticker *clock.FixedTicker
	logger *log.Logger

	deltaTime  float64 // Duration of the previous frame in seconds
	frameCount uint64
	tickCount  uint64
}

// New prepares a driver for game, starting its timers at start.
// The game must already be Reset. A nil logger discards output.
func New(game registry.Game, cfg config.LoopConfig, start time.Time, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := game.Size()
	return &Driver{
		game:   game,
		screen: core.NewScreen(w, h),
		frames: clock.NewFrameTimer(start),
		ticker: clock.NewFixedTicker(cfg.TickInterval(), cfg.MaxCatchUp, start),
		logger: logger.With("game", game.ID()),
	}
}

// Frame runs one loop iteration at time now: fixed ticks that came due are
// dispatched with the previous frame's delta, then the per-frame update sees
// the input, then the frame delta is sampled for the next iteration.
func (d *Driver) Frame(now time.Time, in core.InputFrame) {
	d.frameCount++

	due := d.ticker.Due(now)
	if due > 1 {
		d.logger.Debug("catching up", "ticks", due, "frame", d.frameCount)
	}
	for i := 0; i < due; i++ {
		d.tickCount++
		d.report(d.game.FixedUpdate(d.deltaTime))
	}

	d.report(d.game.Update(in))

	d.deltaTime = d.frames.Delta(now)
}

// Draw clears the surface to the game's background and renders the game.
func (d *Driver) Draw() *core.Screen {
	d.screen.Fill(d.game.Background())
	d.game.Draw(d.screen)
	return d.screen
}

// Game returns the driven game.
func (d *Driver) Game() registry.Game {
	return d.game
}

// Counts returns the number of frames and fixed ticks run so far.
func (d *Driver) Counts() (frames, ticks uint64) {
	return d.frameCount, d.tickCount
}

// report logs game events.
func (d *Driver) report(res core.StepResult) {
	for _, ev := range res.Events {
		d.logger.Info(string(ev.Kind),
			"reason", ev.Reason,
			"x", ev.At.X,
			"y", ev.At.Y,
			"tick", d.tickCount,
		)
	}
}
