// Package tui provides the Bubble Tea play screen for semester runs,
// the run history view and the SSH server that serves both.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status line stays on screen.
const statusTimeout = 4 * time.Second

// clearStatusMsg expires the status line with the given sequence number.
type clearStatusMsg int

// clearStatusCmd returns a command that expires status seq after statusTimeout.
func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg(seq)
	})
}
