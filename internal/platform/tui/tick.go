// Package tui runs the game in a terminal with Bubble Tea, locally or over
// SSH through Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// countdownMsg redraws the game-over screen while the restart lock runs
// down, and once more when it expires.
type countdownMsg struct{}

// countdownStep matches the tenth-of-a-second banner countdown.
const countdownStep = 100 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = DefaultFPS
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// countdownCmd schedules the next redraw for a lock that has remaining
// time left: one step later, or exactly at expiry.
func countdownCmd(remaining time.Duration) tea.Cmd {
	return tea.Tick(min(max(remaining, 0), countdownStep), func(time.Time) tea.Msg {
		return countdownMsg{}
	})
}
