package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/jotty/internal/config"
)

// Message types for tea.Cmd
type (
	// TickMsg is sent on each clock tick.
	TickMsg time.Time

	// ToastMsg displays a temporary message.
	ToastMsg struct {
		Message  string
		Duration time.Duration
		IsError  bool
	}

	// ErrorMsg represents an error condition.
	ErrorMsg struct {
		Err error
	}

	// ConfigReloadedMsg carries a freshly loaded config, sent by the
	// config file watcher via Program.Send.
	ConfigReloadedMsg struct {
		Cfg *config.Config
	}
)

// tickCmd returns a command that ticks every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ShowToast returns a command to show a toast message.
func ShowToast(msg string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Message: msg, Duration: duration}
	}
}

// ReportError returns a command to report an error.
func ReportError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}
