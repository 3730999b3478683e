// Package tui provides the Bubble Tea front-end for the snake game.
// It maps keys to game actions, drives ticks and draws renderer output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step. Gen identifies the run that armed
// it; ticks from an older run are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a command that delivers a TickMsg after interval.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
