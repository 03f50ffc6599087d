// Package tui runs games in a Bubble Tea program: the tick loop, key and
// mouse input, the variant picker, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall time of one simulation frame.
type TickMsg time.Time

// tickCmd schedules the next frame. The game measures the real gap between
// frames, so a late tick only means a longer step.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
