package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/jotty/internal/note"
	"github.com/marcus/jotty/internal/styles"
	"github.com/marcus/jotty/internal/ui"
	"github.com/mattn/go-runewidth"
)

const (
	headerHeight = 2 // header line + spacing
	footerHeight = 1
	sidebarWidth = 32
	minWidth     = 60
	minHeight    = 16

	// Rows the editor panel spends on chrome: borders, mode line, title
	// input and separators.
	editorChromeHeight = 7
)

// contentHeight is the vertical space left for the panes.
func (m Model) contentHeight() int {
	h := m.height - headerHeight
	if m.showFooter {
		h -= footerHeight
	}
	if h < 0 {
		h = 0
	}
	return h
}

// editorWidth is the horizontal space for the editor panel.
func (m Model) editorWidth() int {
	w := m.width - sidebarWidth
	if w < 20 {
		w = 20
	}
	return w
}

// listVisibleRows is how many note rows fit in the sidebar.
func (m Model) listVisibleRows() int {
	return m.contentHeight() - 2 // panel borders
}

// View renders the entire application UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.width < minWidth || m.height < minHeight {
		msg := fmt.Sprintf("Terminal too small (%dx%d)\nMinimum: %dx%d",
			m.width, m.height, minWidth, minHeight)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			styles.ToastError.Render(msg))
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSidebar(),
		m.renderEditor(),
	)
	b.WriteString(content)

	if m.showFooter {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}

	bg := b.String()
	if m.confirm != nil {
		return ui.OverlayModal(bg, m.confirm.Render(), m.width, m.height)
	}
	if m.showHelp {
		return ui.OverlayModal(bg, m.renderHelp(), m.width, m.height)
	}
	return bg
}

// renderHeader draws the top bar: logo, note count, dirty marker, clock.
func (m Model) renderHeader() string {
	left := styles.Logo.Render(" jotty ")

	count := len(m.ctrl.ListNotes())
	info := fmt.Sprintf("%d notes", count)
	if count == 1 {
		info = "1 note"
	}
	left += " " + styles.BarText.Render(info)

	if m.dirty() {
		left += " " + styles.DraftDirty.Render("● unsaved")
	}

	right := ""
	if m.showClock {
		right = styles.BarText.Render(time.Now().Format("15:04"))
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderSidebar draws the note list panel.
func (m Model) renderSidebar() string {
	panel := styles.PanelInactive
	if m.focus == focusList && m.confirm == nil {
		panel = styles.PanelActive
	}

	innerWidth := sidebarWidth - 4 // borders + padding
	rows := m.listVisibleRows()
	notes := m.ctrl.ListNotes()
	selectedID := m.ctrl.EditorState().SelectedID

	var lines []string
	if len(notes) == 0 {
		lines = append(lines, styles.Muted.Render("No notes yet."), styles.Subtle.Render("Press n to start one."))
	}
	now := time.Now()
	for i := m.scroll; i < len(notes) && i-m.scroll < rows; i++ {
		n := notes[i]
		marker := "  "
		if n.ID == selectedID {
			marker = styles.ListCursor.Render("• ")
		}

		age := relativeTime(n.UpdatedAt, now)
		title := n.Title
		maxTitle := innerWidth - 2 - runewidth.StringWidth(age) - 1
		if maxTitle < 4 {
			maxTitle = 4
		}
		title = runewidth.Truncate(title, maxTitle, "…")
		pad := innerWidth - 2 - runewidth.StringWidth(title) - runewidth.StringWidth(age)
		if pad < 1 {
			pad = 1
		}

		row := title + strings.Repeat(" ", pad) + age
		if i == m.cursor {
			row = styles.ListItemSelected.Render(row)
		} else {
			row = styles.ListItemNormal.Render(title) + strings.Repeat(" ", pad) + styles.Subtle.Render(age)
		}
		lines = append(lines, marker+row)
	}

	body := strings.Join(lines, "\n")
	return panel.Width(sidebarWidth - 2).Height(m.contentHeight() - 2).Render(body)
}

// renderEditor draws the editor panel: mode line, title input, then either
// the body textarea or its markdown preview.
func (m Model) renderEditor() string {
	panel := styles.PanelInactive
	if m.focus != focusList && m.confirm == nil {
		panel = styles.PanelActive
	}

	st := m.ctrl.EditorState()
	mode := "New note"
	if st.Mode == note.ModeEdit {
		mode = "Editing"
	}
	modeLine := styles.PanelHeader.Render(mode)
	if m.dirty() {
		modeLine += " " + styles.DraftDirty.Render("●")
	}
	if m.showPreview {
		modeLine += " " + styles.Muted.Render("(preview)")
	}

	var body string
	if m.showPreview {
		body = m.renderPreview()
	} else {
		body = m.bodyInput.View()
	}

	inner := lipgloss.JoinVertical(lipgloss.Left,
		modeLine,
		m.titleInput.View(),
		styles.Subtle.Render(strings.Repeat("─", m.editorWidth()-4)),
		body,
	)

	return panel.Width(m.editorWidth() - 2).Height(m.contentHeight() - 2).Render(inner)
}

// renderPreview renders the body draft as markdown.
func (m Model) renderPreview() string {
	src := m.bodyInput.Value()
	if strings.TrimSpace(src) == "" {
		return styles.Muted.Render("Nothing to preview.")
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.GetMarkdownTheme()),
		glamour.WithWordWrap(m.editorWidth()-6),
	)
	if err != nil {
		m.logger.Warn("preview renderer failed", "err", err)
		return src
	}
	out, err := r.Render(src)
	if err != nil {
		m.logger.Warn("preview render failed", "err", err)
		return src
	}
	return strings.TrimRight(out, "\n")
}

// renderFooter draws the toast when one is active, otherwise key hints for
// the current context.
func (m Model) renderFooter() string {
	if m.statusMsg != "" {
		style := styles.ToastSuccess
		if m.statusIsErr {
			style = styles.ToastError
		}
		return style.Render(m.statusMsg)
	}

	var hints string
	switch m.activeContext() {
	case "confirm":
		hints = "tab switch • enter choose • esc cancel"
	case "editor":
		hints = "esc list • tab field • ctrl+s save • ctrl+r reset • ctrl+p preview"
	default:
		hints = "n new • enter open • d delete • y yank • ctrl+s save • ? help • q quit"
	}
	return styles.Footer.Width(m.width).Render(" " + hints)
}

// renderHelp draws the help overlay.
func (m Model) renderHelp() string {
	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"Notes", [][2]string{
			{"n", "new note"},
			{"enter", "open note under cursor"},
			{"d", "delete note (asks first)"},
			{"y", "copy note body to clipboard"},
			{"ctrl+s", "save drafts"},
		}},
		{"Editor", [][2]string{
			{"esc", "back to the list"},
			{"tab", "switch title/body"},
			{"ctrl+r", "reset drafts to saved note"},
			{"ctrl+p", "toggle markdown preview"},
		}},
		{"App", [][2]string{
			{"ctrl+t", "toggle theme"},
			{"ctrl+h", "toggle footer"},
			{"?", "this help"},
			{"q / ctrl+c", "quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("jotty keys"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(styles.PanelHeader.Render(sec.title))
		b.WriteString("\n")
		for _, row := range sec.rows {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				styles.KeyHint.Render(row[0]),
				styles.Body.Render(row[1])))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderActive).
		Padding(0, 2).
		Render(b.String())
}

// relativeTime formats a unix-millisecond timestamp relative to now.
func relativeTime(millis int64, now time.Time) string {
	t := time.UnixMilli(millis)
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}
