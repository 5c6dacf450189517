package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockarcade/internal/config"
	"github.com/vovakirdan/blockarcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows every game registered in the arcade with the surface size it
needs and its controls. Configuration and asset flags apply, so a game
whose assets are missing is reported as unavailable.`,
	Run: runList,
}

// listRow is one game as shown by the list command.
type listRow struct {
	ID       string
	Title    string
	Size     string
	Controls string
}

// listRows builds a game instance per registered game to report its size
// and controls. Games that cannot be created show the reason instead.
func listRows(b config.Bundle) []listRow {
	games := registry.List()
	rows := make([]listRow, 0, len(games))

	for _, info := range games {
		row := listRow{ID: info.ID, Title: info.Title}

		game, err := registry.Create(info.ID, b)
		if err != nil {
			row.Size = "-"
			row.Controls = "unavailable: " + err.Error()
			rows = append(rows, row)
			continue
		}

		w, h := game.Size()
		row.Size = fmt.Sprintf("%dx%d", w, h)

		controls := make([]string, 0, len(game.Controls())+1)
		for _, c := range game.Controls() {
			controls = append(controls, c.Keys+" "+c.Help)
		}
		controls = append(controls, "q quit")
		row.Controls = strings.Join(controls, ", ")

		rows = append(rows, row)
	}
	return rows
}

func runList(_ *cobra.Command, _ []string) {
	bundle, err := config.Load(flagConfigDir)
	if err != nil {
		fatal(err)
	}
	rows := listRows(applyFlags(bundle))

	if len(rows) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	idW, titleW, sizeW := len("ID"), len("Title"), len("Size")
	for _, r := range rows {
		idW = max(idW, len(r.ID))
		titleW = max(titleW, len(r.Title))
		sizeW = max(sizeW, len(r.Size))
	}

	fmt.Printf("  %-*s  %-*s  %-*s  %s\n", idW, "ID", titleW, "Title", sizeW, "Size", "Controls")
	fmt.Printf("  %-*s  %-*s  %-*s  %s\n", idW, "--", titleW, "-----", sizeW, "----", "--------")
	for _, r := range rows {
		fmt.Printf("  %-*s  %-*s  %-*s  %s\n", idW, r.ID, titleW, r.Title, sizeW, r.Size, r.Controls)
	}

	fmt.Println()
	fmt.Println("Run 'blockarcade play <id>' to play a game.")
}
