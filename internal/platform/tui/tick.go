// Package tui provides the Bubble Tea frontend. It drives the game at a fixed
// logical tick rate, maps keys and mouse motion to input frames and renders
// the character screen with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 60

// TickMsg asks the model to advance the simulation by one tick.
type TickMsg time.Time

// tickInterval is the wall-clock time between logical ticks. Velocities are
// per tick, so this alone sets the apparent game speed.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next tick.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
