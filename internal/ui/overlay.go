// Package ui provides shared UI components for the TUI: the modal overlay
// compositor and the confirmation dialog.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DimStyle recolors background content behind modals. Existing ANSI codes
// are stripped first because SGR faint does not combine reliably with
// color codes across terminals.
var DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// blockWidth returns the maximum visual width across lines.
func blockWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		if lw := ansi.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

// dimLine strips ANSI codes and recolors the line.
func dimLine(s string) string {
	return DimStyle.Render(ansi.Strip(s))
}

// spliceRow lays modalLine over bgLine starting at startX: dimmed left
// segment, modal content, dimmed right segment.
func spliceRow(bgLine, modalLine string, startX, modalWidth, totalWidth int) string {
	var row strings.Builder

	stripped := ansi.Strip(bgLine)
	bgWidth := ansi.StringWidth(stripped)

	if startX > 0 {
		left := ansi.Truncate(stripped, startX, "")
		row.WriteString(DimStyle.Render(left))
		if lw := ansi.StringWidth(left); lw < startX {
			row.WriteString(strings.Repeat(" ", startX-lw))
		}
	}

	row.WriteString(modalLine)

	if rightStart := startX + modalWidth; rightStart < totalWidth && bgWidth > rightStart {
		right := ansi.Cut(stripped, rightStart, bgWidth)
		row.WriteString(DimStyle.Render(right))
	}

	return row.String()
}

// OverlayModal centers modal over a dimmed rendering of background. Rows
// outside the modal are dimmed whole; rows inside are spliced so the
// background stays visible on both sides.
func OverlayModal(background, modal string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	modalLines := strings.Split(modal, "\n")

	modalWidth := blockWidth(modalLines)
	startX := (width - modalWidth) / 2
	startY := (height - len(modalLines)) / 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	rows := make([]string, 0, height)
	for y := 0; y < height; y++ {
		bgLine := ""
		if y < len(bgLines) {
			bgLine = bgLines[y]
		}
		if i := y - startY; i >= 0 && i < len(modalLines) {
			rows = append(rows, spliceRow(bgLine, modalLines[i], startX, modalWidth, width))
		} else {
			rows = append(rows, dimLine(bgLine))
		}
	}

	return strings.Join(rows, "\n")
}
