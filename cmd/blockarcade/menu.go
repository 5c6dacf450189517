package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockarcade/internal/platform/tui"
	"github.com/vovakirdan/blockarcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Press Esc in a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q/Esc        - Quit

Examples:
  blockarcade menu
  blockarcade menu --fps 30`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	s, err := setup()
	if err != nil {
		fatal(err)
	}
	defer s.close()

	// Menu loop
	for {
		gameID, err := tui.RunMenu(s.runtime.ScreenW, s.runtime.ScreenH)
		if err != nil {
			s.close()
			fatal(err)
		}
		if gameID == "" {
			return // User quit
		}

		game, err := registry.Create(gameID, s.bundle)
		if err != nil {
			s.logger.Error("cannot create game", "game", gameID, "err", err)
			s.close()
			fatal(err)
		}

		outcome, err := tui.Run(game, s.options(true))
		if err != nil {
			s.close()
			fatal(err)
		}
		if outcome == tui.OutcomeQuit {
			return
		}
		// Back to menu
	}
}
