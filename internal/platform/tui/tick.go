// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// game model that scheduled it, so ticks left over from a previous game
// are dropped.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

var lastGen atomic.Uint64

func nextGen() uint64 {
	return lastGen.Add(1)
}

// tickCmd schedules the next tick after d. Each game picks its own delay:
// a fixed interval for grid games and one frame for continuous ones.
func tickCmd(gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
