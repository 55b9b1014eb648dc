// Package styles holds the themeable color palette and the lipgloss styles
// shared across the UI. ApplyTheme swaps the palette and rebuilds every
// style in place.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - default dark theme
var (
	// Primary colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#3B82F6") // Blue
	Accent    = lipgloss.Color("#F59E0B") // Amber

	// Status colors
	Success = lipgloss.Color("#10B981") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Error   = lipgloss.Color("#EF4444") // Red
	Info    = lipgloss.Color("#3B82F6") // Blue

	// Text colors
	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#9CA3AF")
	TextMuted     = lipgloss.Color("#6B7280")
	TextSubtle    = lipgloss.Color("#4B5563")

	// Background colors
	BgPrimary   = lipgloss.Color("#111827")
	BgSecondary = lipgloss.Color("#1F2937")
	BgTertiary  = lipgloss.Color("#374151")

	// Border colors
	BorderNormal = lipgloss.Color("#374151")
	BorderActive = lipgloss.Color("#7C3AED")
	BorderMuted  = lipgloss.Color("#1F2937")

	// Toast foregrounds (updated by ApplyTheme)
	ToastSuccessTextColor = lipgloss.Color("#000000")
	ToastErrorTextColor   = lipgloss.Color("#FFFFFF")

	// Third-party theme name for glamour rendering (updated by ApplyTheme)
	CurrentMarkdownTheme = "dark"
)

// Panel styles
var (
	// Active panel with highlighted border
	PanelActive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderActive).
			Padding(0, 1)

	// Inactive panel with subtle border
	PanelInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal).
			Padding(0, 1)

	// Panel header
	PanelHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextPrimary).
			MarginBottom(1)
)

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	Body = lipgloss.NewStyle().
		Foreground(TextPrimary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Subtle = lipgloss.NewStyle().
		Foreground(TextSubtle)

	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)

	Logo = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)
)

// List item styles
var (
	ListItemNormal = lipgloss.NewStyle().
			Foreground(TextPrimary)

	ListItemSelected = lipgloss.NewStyle().
				Foreground(TextPrimary).
				Background(BgTertiary)

	ListItemFocused = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(Primary)

	ListCursor = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// Toast styles for status messages
var (
	ToastSuccess = lipgloss.NewStyle().
			Background(Success).
			Foreground(ToastSuccessTextColor).
			Bold(true).
			Padding(0, 1)

	ToastError = lipgloss.NewStyle().
			Background(Error).
			Foreground(ToastErrorTextColor).
			Bold(true).
			Padding(0, 1)
)

// Button styles for modal dialogs
var (
	ButtonNormal = lipgloss.NewStyle().
			Foreground(TextMuted).
			Background(BgTertiary).
			Padding(0, 1)

	ButtonFocused = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(Primary).
			Padding(0, 1).
			Bold(true)

	ButtonDanger = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(Error).
			Padding(0, 1).
			Bold(true)
)

// Header and footer bars
var (
	BarTitle = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Bold(true)

	BarText = lipgloss.NewStyle().
		Foreground(TextMuted)

	Footer = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgSecondary)
)

// Draft state indicator (unsaved changes in the editor)
var DraftDirty = lipgloss.NewStyle().
	Foreground(Warning).
	Bold(true)

// rebuildStyles re-derives every style from the current palette. Called by
// ApplyThemeColors after the color variables change.
func rebuildStyles() {
	PanelActive = PanelActive.BorderForeground(BorderActive)
	PanelInactive = PanelInactive.BorderForeground(BorderNormal)
	PanelHeader = PanelHeader.Foreground(TextPrimary)

	Title = Title.Foreground(TextPrimary)
	Body = Body.Foreground(TextPrimary)
	Muted = Muted.Foreground(TextMuted)
	Subtle = Subtle.Foreground(TextSubtle)
	KeyHint = KeyHint.Foreground(TextMuted).Background(BgTertiary)
	Logo = Logo.Foreground(Primary)

	ListItemNormal = ListItemNormal.Foreground(TextPrimary)
	ListItemSelected = ListItemSelected.Foreground(TextPrimary).Background(BgTertiary)
	ListItemFocused = ListItemFocused.Foreground(TextPrimary).Background(Primary)
	ListCursor = ListCursor.Foreground(Primary)

	ToastSuccess = ToastSuccess.Background(Success).Foreground(ToastSuccessTextColor)
	ToastError = ToastError.Background(Error).Foreground(ToastErrorTextColor)

	ButtonNormal = ButtonNormal.Foreground(TextMuted).Background(BgTertiary)
	ButtonFocused = ButtonFocused.Foreground(TextPrimary).Background(Primary)
	ButtonDanger = ButtonDanger.Foreground(TextPrimary).Background(Error)

	BarTitle = BarTitle.Foreground(TextPrimary)
	BarText = BarText.Foreground(TextMuted)
	Footer = Footer.Foreground(TextMuted).Background(BgSecondary)

	DraftDirty = DraftDirty.Foreground(Warning)
}
