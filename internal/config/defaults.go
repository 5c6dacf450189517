package config

import (
	_ "embed"
)

//go:embed defaults/loop.yaml
var defaultLoopYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/sudoku.yaml
var defaultSudokuYAML []byte

//go:embed defaults/template.yaml
var defaultTemplateYAML []byte

// DefaultLoopConfig returns the default loop configuration.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		FPS:        60,
		TickMillis: 20,
		MaxCatchUp: 5,
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Size:        20,
			BlockWidth:  2, // Terminal cells are about twice as tall as wide
			BlockHeight: 1,
		},
		Movement: SnakeMovement{
			Base:      0.5,
			Rate:      0.5,
			Threshold: 10,
		},
		Start: SnakeStart{
			Body: []Position{{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 4}},
		},
	}
}

// DefaultSudokuConfig returns the default Sudoku configuration.
func DefaultSudokuConfig() SudokuConfig {
	return SudokuConfig{
		Surface: SurfaceSize{
			Width:  61,
			Height: 15,
		},
		Cell: SudokuCell{
			Width:     5,
			Height:    1,
			MarginX:   1,
			MarginY:   0,
			GroupGapX: 1,
			GroupGapY: 1,
		},
	}
}

// DefaultTemplateConfig returns the default template configuration.
func DefaultTemplateConfig() TemplateConfig {
	return TemplateConfig{
		Surface: SurfaceSize{
			Width:  64,
			Height: 24,
		},
	}
}

// Defaults returns the hardcoded bundle.
func Defaults() Bundle {
	return Bundle{
		Loop:     DefaultLoopConfig(),
		Snake:    DefaultSnakeConfig(),
		Sudoku:   DefaultSudokuConfig(),
		Template: DefaultTemplateConfig(),
	}
}

// GetDefaultYAML returns the embedded default YAML for a section.
func GetDefaultYAML(section string) []byte {
	switch section {
	case "loop":
		return defaultLoopYAML
	case "snake":
		return defaultSnakeYAML
	case "sudoku":
		return defaultSudokuYAML
	case "template":
		return defaultTemplateYAML
	default:
		return nil
	}
}
