package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/jotty/internal/styles"
)

// Default modal widths.
const (
	ModalWidthSmall  = 40
	ModalWidthMedium = 50
)

// ConfirmDialog is a two-button confirmation modal. The caller routes keys:
// switch focus on tab/arrows, activate the focused button on enter.
type ConfirmDialog struct {
	Title        string
	Message      string
	ConfirmLabel string // e.g., " Delete ", " Yes "
	CancelLabel  string // e.g., " Cancel ", " No "
	Danger       bool   // red border and confirm button
	Width        int

	focus int // 0 = confirm, 1 = cancel
}

// NewConfirmDialog creates a dialog with sensible defaults. Focus starts on
// cancel so a stray enter never destroys anything.
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:        title,
		Message:      message,
		ConfirmLabel: " Confirm ",
		CancelLabel:  " Cancel ",
		Width:        ModalWidthMedium,
		focus:        1,
	}
}

// SwitchFocus moves focus to the other button.
func (d *ConfirmDialog) SwitchFocus() {
	d.focus = 1 - d.focus
}

// ConfirmFocused reports whether the confirm button holds focus.
func (d *ConfirmDialog) ConfirmFocused() bool {
	return d.focus == 0
}

// Render draws the dialog box.
func (d *ConfirmDialog) Render() string {
	borderColor := styles.BorderActive
	confirmStyle := styles.ButtonFocused
	if d.Danger {
		borderColor = styles.Error
		if d.ConfirmFocused() {
			confirmStyle = styles.ButtonDanger
		}
	}
	if !d.ConfirmFocused() {
		confirmStyle = styles.ButtonNormal
	}
	cancelStyle := styles.ButtonNormal
	if !d.ConfirmFocused() {
		cancelStyle = styles.ButtonFocused
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		confirmStyle.Render(d.ConfirmLabel),
		"  ",
		cancelStyle.Render(d.CancelLabel),
	)

	inner := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(d.Title),
		"",
		styles.Body.Render(d.Message),
		"",
		lipgloss.PlaceHorizontal(d.Width-4, lipgloss.Center, buttons),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(d.Width).
		Render(inner)
}
