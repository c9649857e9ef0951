// Package app contains the root model of the song list TUI.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Notification represents a temporary notification message.
type Notification struct {
	ID      int64
	Message string
	IsError bool
}

// NotificationClearMsg is sent to clear a specific notification after a delay.
type NotificationClearMsg struct {
	ID int64
}

// NotificationDuration is how long notifications are displayed.
const NotificationDuration = 3 * time.Second

// NotificationClearCmd returns a command that clears the notification after a delay.
func NotificationClearCmd(id int64) tea.Cmd {
	return tea.Tick(NotificationDuration, func(time.Time) tea.Msg {
		return NotificationClearMsg{ID: id}
	})
}
