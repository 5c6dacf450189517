// blockarcade plays small block games in the terminal.
//
// Usage:
//
//	blockarcade              - Start menu to pick games interactively
//	blockarcade menu         - Same as above
//	blockarcade play <game>  - Play a game
//	blockarcade list         - List available games
//
// Global flags:
//
//	--fps <rate>         - Frame rate cap (default from loop.yaml: 60)
//	--tick <ms>          - Fixed tick interval (default from loop.yaml: 20)
//	--seed <value>       - RNG seed for reproducible gameplay
//	--config <dir>       - Directory with loop/snake/sudoku/template.yaml
//	--assets <dir>       - Directory with Sudoku background.txt and cell.txt
//	--log-file <path>    - Log file (default: ~/.blockarcade/arcade.log)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/blockarcade/internal/games/snake"
	_ "github.com/vovakirdan/blockarcade/internal/games/sudoku"
	_ "github.com/vovakirdan/blockarcade/internal/games/template"

	"github.com/vovakirdan/blockarcade/internal/logging"
)

var (
	// Global flags
	flagFPS       int
	flagTick      int
	flagSeed      int64
	flagConfigDir string
	flagAssetsDir string
	flagLogFile   string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockarcade",
	Short: "Block Arcade - Snake and Sudoku in your terminal",
	Long: `Block Arcade runs small block games on a fixed-size surface centered
in your terminal.

Available commands:
  menu     - Interactive game picker (default)
  play     - Play a specific game directly
  list     - Show all available games

Examples:
  blockarcade
  blockarcade play snake --seed 42
  blockarcade play sudoku --assets ./my-assets
  blockarcade list`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate cap (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagTick, "tick", 0, "Fixed tick interval in milliseconds (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Directory with custom config YAML files")
	rootCmd.PersistentFlags().StringVar(&flagAssetsDir, "assets", "", "Directory with Sudoku assets (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", logging.DefaultPath, "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
}
