// Package config provides YAML-based configuration for the arcade loop and
// its games. Values are loaded once at startup into an immutable Bundle that
// is handed to game constructors.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned (wrapped) when a loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid value")

// Bundle groups every configuration section.
type Bundle struct {
	Loop     LoopConfig
	Snake    SnakeConfig
	Sudoku   SudokuConfig
	Template TemplateConfig
}

// LoopConfig controls frame pacing and the fixed simulation tick.
type LoopConfig struct {
	FPS        int `yaml:"fps"`          // Render frames per second (frame-rate cap)
	TickMillis int `yaml:"tick_ms"`      // Fixed tick interval in milliseconds
	MaxCatchUp int `yaml:"max_catch_up"` // Max fixed ticks dispatched per frame
}

// TickInterval returns the fixed tick period.
func (l LoopConfig) TickInterval() time.Duration {
	return time.Duration(l.TickMillis) * time.Millisecond
}

// FrameInterval returns the time between rendered frames.
func (l LoopConfig) FrameInterval() time.Duration {
	if l.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(l.FPS)
}

// Position is a grid coordinate as written in YAML.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board    SnakeBoard    `yaml:"board"`
	Movement SnakeMovement `yaml:"movement"`
	Start    SnakeStart    `yaml:"start"`
}

// SnakeBoard defines the grid and how a grid block maps to screen cells.
type SnakeBoard struct {
	Size        int `yaml:"size"`         // N for an N x N grid
	BlockWidth  int `yaml:"block_width"`  // Screen columns per block
	BlockHeight int `yaml:"block_height"` // Screen rows per block
}

// SnakeMovement defines the speed accumulator.
// Each fixed tick adds Base^(dt*Rate); crossing Threshold takes one step.
type SnakeMovement struct {
	Base      float64 `yaml:"base"`
	Rate      float64 `yaml:"rate"`
	Threshold float64 `yaml:"threshold"`
}

// SnakeStart defines the body a fresh snake is created with, head first.
type SnakeStart struct {
	Body []Position `yaml:"body"`
}

// SudokuConfig contains all configuration for the Sudoku board.
type SudokuConfig struct {
	Surface   SurfaceSize `yaml:"surface"`
	Cell      SudokuCell  `yaml:"cell"`
	AssetsDir string      `yaml:"assets_dir"` // Empty means embedded assets
}

// SudokuCell defines cell size and spacing in screen cells.
type SudokuCell struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	MarginX   int `yaml:"margin_x"`    // Gap between neighbouring cells
	MarginY   int `yaml:"margin_y"`    //
	GroupGapX int `yaml:"group_gap_x"` // Extra gap after every third column
	GroupGapY int `yaml:"group_gap_y"` // Extra gap after every third row
}

// TemplateConfig contains configuration for the template game.
type TemplateConfig struct {
	Surface SurfaceSize `yaml:"surface"`
}

// SurfaceSize is a fixed drawing surface size in screen cells.
type SurfaceSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Validate checks loop settings.
func (l LoopConfig) Validate() error {
	if l.FPS <= 0 {
		return fmt.Errorf("%w: loop fps must be positive, got %d", ErrInvalid, l.FPS)
	}
	if l.TickMillis <= 0 {
		return fmt.Errorf("%w: loop tick_ms must be positive, got %d", ErrInvalid, l.TickMillis)
	}
	if l.MaxCatchUp < 0 {
		return fmt.Errorf("%w: loop max_catch_up must not be negative, got %d", ErrInvalid, l.MaxCatchUp)
	}
	return nil
}

// Validate checks Snake settings.
func (c SnakeConfig) Validate() error {
	if c.Board.Size < 3 {
		return fmt.Errorf("%w: snake board size must be at least 3, got %d", ErrInvalid, c.Board.Size)
	}
	if c.Board.BlockWidth <= 0 || c.Board.BlockHeight <= 0 {
		return fmt.Errorf("%w: snake block size must be positive, got %dx%d",
			ErrInvalid, c.Board.BlockWidth, c.Board.BlockHeight)
	}
	if c.Movement.Base <= 0 {
		return fmt.Errorf("%w: snake movement base must be positive, got %v", ErrInvalid, c.Movement.Base)
	}
	if c.Movement.Threshold <= 0 {
		return fmt.Errorf("%w: snake movement threshold must be positive", ErrInvalid)
	}
	if len(c.Start.Body) == 0 {
		return fmt.Errorf("%w: snake start body must not be empty", ErrInvalid)
	}
	seen := make(map[Position]bool, len(c.Start.Body))
	for _, p := range c.Start.Body {
		if p.X < 0 || p.X >= c.Board.Size || p.Y < 0 || p.Y >= c.Board.Size {
			return fmt.Errorf("%w: snake start block (%d, %d) is outside the %dx%d board",
				ErrInvalid, p.X, p.Y, c.Board.Size, c.Board.Size)
		}
		if seen[p] {
			return fmt.Errorf("%w: snake start block (%d, %d) appears twice", ErrInvalid, p.X, p.Y)
		}
		seen[p] = true
	}
	return nil
}

// Validate checks Sudoku settings.
func (c SudokuConfig) Validate() error {
	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		return fmt.Errorf("%w: sudoku cell size must be positive, got %dx%d",
			ErrInvalid, c.Cell.Width, c.Cell.Height)
	}
	if c.Cell.MarginX < 0 || c.Cell.MarginY < 0 || c.Cell.GroupGapX < 0 || c.Cell.GroupGapY < 0 {
		return fmt.Errorf("%w: sudoku margins must not be negative", ErrInvalid)
	}
	return c.Surface.validate("sudoku")
}

// Validate checks template settings.
func (c TemplateConfig) Validate() error {
	return c.Surface.validate("template")
}

func (s SurfaceSize) validate(game string) error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %s surface must be positive, got %dx%d", ErrInvalid, game, s.Width, s.Height)
	}
	return nil
}

// Validate checks every section.
func (b Bundle) Validate() error {
	return errors.Join(
		b.Loop.Validate(),
		b.Snake.Validate(),
		b.Sudoku.Validate(),
		b.Template.Validate(),
	)
}
