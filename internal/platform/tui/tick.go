// Package tui provides the Bubble Tea front end for interactive matches
// and lipgloss rendering of boards.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ReplyMsg is sent when the computer should fire back.
type ReplyMsg time.Time

// replyCmd returns a Bubble Tea command that triggers the computer's
// turn after delay.
func replyCmd(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg {
			return ReplyMsg(time.Now())
		}
	}
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ReplyMsg(t)
	})
}
