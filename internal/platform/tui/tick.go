// Package tui provides the Bubble Tea integration for Arkanoid.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when the runtime config carries no frame rate.
const defaultTickRate = 60

// TickMsg carries the wall-clock time of a frame. Model.handleTick turns
// the gap since the previous TickMsg into the simulation delta, so a late
// frame steps further instead of slowing the game down.
type TickMsg time.Time

// frameInterval is the requested spacing between frames at rate per second.
func frameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = defaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next frame. One is queued per handled frame, so
// frames never pile up behind a slow render.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(frameInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
