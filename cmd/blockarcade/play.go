package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockarcade/internal/platform/tui"
	"github.com/vovakirdan/blockarcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  W/A/S/D, arrows  - Move (Snake)
  Mouse            - Hover and click cells (Sudoku)
  Q/Ctrl+C         - Quit

Examples:
  blockarcade play snake
  blockarcade play snake --seed 7 --tick 10
  blockarcade play sudoku --assets ./assets
  blockarcade play snake --config ./my-configs`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	s, err := setup()
	if err != nil {
		fatal(err)
	}
	defer s.close()

	id := args[0]
	if !registry.Exists(id) {
		s.logger.Error("unknown game", "game", id)
		fmt.Fprintln(os.Stderr, "Run 'blockarcade list' to see available games.")
		s.close()
		fatal(fmt.Errorf("%w: %q", registry.ErrUnknownGame, id))
	}

	game, err := registry.Create(id, s.bundle)
	if err != nil {
		s.logger.Error("cannot create game", "game", id, "err", err)
		s.close()
		fatal(err)
	}

	if _, err := tui.Run(game, s.options(false)); err != nil {
		s.close()
		fatal(err)
	}
}
