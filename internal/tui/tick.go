// Package tui provides the Bubble Tea integration: the terminal UI loop,
// key mapping, the tick scheduler, and screen rendering. It is the game's
// renderer, input source, and clock in one place; the game logic itself
// lives in internal/game and never sees the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the game simulation by one step.
type TickMsg time.Time

// tickCmd schedules the next simulation tick. The interval follows the
// difficulty's ticks-per-second, so changing difficulty re-times the loop
// from the next tick onward.
func tickCmd(ticksPerSecond int) tea.Cmd {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 1
	}
	interval := time.Second / time.Duration(ticksPerSecond)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
