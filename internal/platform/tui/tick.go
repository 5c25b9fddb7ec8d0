// Package tui provides the Bubble Tea integration for the invaders platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// It carries the wall time at which the tick fired.
type TickMsg time.Time

// maxDelta caps the elapsed time fed into one Step.
const maxDelta = 100 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// elapsed returns the seconds between two ticks, capped at maxDelta.
// A zero previous time yields the nominal interval of the tick rate.
func elapsed(prev, now time.Time, tickRate int) float64 {
	if prev.IsZero() {
		if tickRate <= 0 {
			tickRate = 60
		}
		return 1.0 / float64(tickRate)
	}
	d := now.Sub(prev)
	if d < 0 {
		d = 0
	}
	if d > maxDelta {
		d = maxDelta
	}
	return d.Seconds()
}
