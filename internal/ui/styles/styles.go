// Package styles defines the visual appearance for the readmestats TUI.
// Using Catppuccin Mocha color palette.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Catppuccin Mocha color palette
var (
	// Base colors
	Rosewater = lipgloss.Color("#F5E0DC")
	Flamingo  = lipgloss.Color("#F2CDCD")
	Pink      = lipgloss.Color("#F5C2E7")
	Mauve     = lipgloss.Color("#CBA6F7")
	Red       = lipgloss.Color("#F38BA8")
	Maroon    = lipgloss.Color("#EBA0AC")
	Peach     = lipgloss.Color("#FAB387")
	Yellow    = lipgloss.Color("#F9E2AF")
	Green     = lipgloss.Color("#A6E3A1")
	Teal      = lipgloss.Color("#94E2D5")
	Sky       = lipgloss.Color("#89DCEB")
	Sapphire  = lipgloss.Color("#74C7EC")
	Blue      = lipgloss.Color("#89B4FA")
	Lavender  = lipgloss.Color("#B4BEFE")

	// Surface colors
	Text     = lipgloss.Color("#CDD6F4")
	Subtext1 = lipgloss.Color("#BAC2DE")
	Subtext0 = lipgloss.Color("#A6ADC8")
	Overlay2 = lipgloss.Color("#9399B2")
	Overlay1 = lipgloss.Color("#7F849C")
	Overlay0 = lipgloss.Color("#6C7086")
	Surface2 = lipgloss.Color("#585B70")
	Surface1 = lipgloss.Color("#45475A")
	Surface0 = lipgloss.Color("#313244")
	Base     = lipgloss.Color("#1E1E2E")
	Mantle   = lipgloss.Color("#181825")
	Crust    = lipgloss.Color("#11111B")
)

// Semantic colors (using the palette)
var (
	Primary     = Mauve
	Secondary   = Green
	Accent      = Sapphire
	Danger      = Red
	Warning     = Peach
	Success     = Green
	Info        = Blue
	Muted       = Overlay0
	Background  = Base
	SurfaceCol  = Surface0
	TextCol     = Text
	TextMuted   = Subtext0
	Border      = Surface1
	BorderFocus = Mauve
)

// Card status colors
var (
	CardPending = Overlay0
	CardLoaded  = Green
	CardFailed  = Red
	CardLoading = Yellow
)

// Base styles
var (
	// BaseStyle is applied to the entire application
	BaseStyle = lipgloss.NewStyle().
			Background(Background)

	// BorderStyle for panels
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border)

	// FocusedBorderStyle for focused panels
	FocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(BorderFocus)

	// ReadyBorder for a preview whose cards have all reported
	ReadyBorder = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Sapphire)
)

// Panel styles
var (
	// PanelTitle for panel headers
	PanelTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextCol).
			Padding(0, 1)

	// PanelTitleFocused for focused panel headers
	PanelTitleFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(Primary).
				Padding(0, 1)

	// PanelTitleIcon for icon prefix
	PanelTitleIcon = lipgloss.NewStyle().
			Foreground(Accent).
			MarginRight(1)
)

// List item styles
var (
	// ListItem for normal list items
	ListItem = lipgloss.NewStyle().
			Foreground(TextCol).
			Padding(0, 1)

	// ListItemSelected for selected list items
	ListItemSelected = lipgloss.NewStyle().
				Foreground(TextCol).
				Background(SurfaceCol).
				Bold(true).
				Padding(0, 1)

	// ListItemDim for inactive/dimmed items
	ListItemDim = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1)

	// ListItemHighlight for highlighted items
	ListItemHighlight = lipgloss.NewStyle().
				Foreground(Accent).
				Bold(true).
				Padding(0, 1)
)

// Card status styles
var (
	CardLoadedStyle = lipgloss.NewStyle().
			Foreground(CardLoaded).
			Bold(true)

	CardPendingStyle = lipgloss.NewStyle().
				Foreground(CardPending)

	CardFailedStyle = lipgloss.NewStyle().
			Foreground(CardFailed).
			Bold(true)

	CardTitle = lipgloss.NewStyle().
			Foreground(TextCol).
			Bold(true)

	CardLine = lipgloss.NewStyle().
			Foreground(Subtext1).
			PaddingLeft(3)
)

// StatusBar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Background(Mantle).
			Padding(0, 1)

	StatusBarKey = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	StatusBarDesc = lipgloss.NewStyle().
			Foreground(TextMuted)

	StatusBarSeparator = lipgloss.NewStyle().
				Foreground(Overlay0).
				SetString(" │ ")

	StatusBarBrand = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// Preview styles
var (
	Placeholder = lipgloss.NewStyle().
			Foreground(TextMuted).
			Italic(true)

	MarkdownStyle = lipgloss.NewStyle().
			Foreground(Subtext0).
			Background(Crust).
			Padding(0, 1)

	CopiedBadge = lipgloss.NewStyle().
			Foreground(Base).
			Background(Success).
			Bold(true).
			Padding(0, 1)
)

// Dialog styles
var (
	DialogBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2).
			Background(SurfaceCol)

	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextCol).
			MarginBottom(1)

	DialogLabel = lipgloss.NewStyle().
			Foreground(TextMuted)

	DialogLabelFocused = lipgloss.NewStyle().
				Foreground(Pink).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Overlay0).
			MarginTop(1)
)

// Logo and branding styles
var (
	LogoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(Overlay0)
)

// Helper functions

// StateColor returns the color for a preview state.
func StateColor(state string) lipgloss.Color {
	switch state {
	case "ready":
		return Success
	case "loading":
		return CardLoading
	default:
		return Muted
	}
}

// RenderSwatch returns a small colored block for a theme color.
func RenderSwatch(color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Render("●")
}

// TruncateWithEllipsis truncates a string to maxLen cells with ellipsis.
func TruncateWithEllipsis(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return ansi.Truncate(s, maxLen, "")
	}
	return ansi.Truncate(s, maxLen, "...")
}

// Icons
var (
	IconUser      = "👤"
	IconPalette   = "🎨"
	IconPreview   = "🖼"
	IconOK        = "✓"
	IconFailed    = "✗"
	IconCheckOn   = "[x]"
	IconCheckOff  = "[ ]"
	IconDot       = "●"
	IconDotEmpty  = "○"
	IconArrowR    = "→"
	IconStar      = "★"
	IconStarEmpty = "☆"
)

// Fancy header style with gradient effect simulation
func RenderFancyHeader(title string, width int) string {
	// Create a fancy header with decorative elements
	left := lipgloss.NewStyle().Foreground(Mauve).Render("╭─")
	right := lipgloss.NewStyle().Foreground(Mauve).Render("─╮")
	titleStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(TextCol).
		Background(Surface0).
		Padding(0, 1).
		Render(title)

	titleWidth := lipgloss.Width(titleStyled)
	leftDecor := lipgloss.Width(left)
	rightDecor := lipgloss.Width(right)
	fillWidth := width - titleWidth - leftDecor - rightDecor

	if fillWidth < 0 {
		fillWidth = 0
	}

	leftFill := fillWidth / 2
	rightFill := fillWidth - leftFill

	leftLine := lipgloss.NewStyle().Foreground(Surface1).Render(strings.Repeat("─", leftFill))
	rightLine := lipgloss.NewStyle().Foreground(Surface1).Render(strings.Repeat("─", rightFill))

	return left + leftLine + titleStyled + rightLine + right
}
