// Package tui provides the Bubble Tea integration for terminoid.
// It handles the terminal UI loop, input mapping and the tick schedule.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after period.
// Re-issuing it from every tick gives a plain repeating timer; there is no
// drift correction.
func tickCmd(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
