// Package tui provides the Bubble Tea integration for the arcade.
// It owns the terminal, maps keys and the mouse to game input, paces frames
// and renders the game surface.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per rendered frame.
type FrameMsg time.Time

// frameCmd schedules the next frame after interval, capping the frame rate.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
