// Package tui provides the Bubble Tea integration for the arcade platform.
// It renders the menu and the active game's container, maps keys to
// element events, and runs game timers on the update loop.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minigame-arcade/internal/sched"
)

// TimerMsg carries a fired game timer callback onto the update loop.
type TimerMsg struct {
	fn func()
}

// loopClosedMsg is sent once the timer loop stops delivering.
type loopClosedMsg struct{}

// waitForTimer returns a command that blocks until the next timer callback
// is posted to loop.
func waitForTimer(loop *sched.Loop) tea.Cmd {
	return func() tea.Msg {
		select {
		case fn := <-loop.C():
			return TimerMsg{fn: fn}
		case <-loop.Done():
			return loopClosedMsg{}
		}
	}
}
