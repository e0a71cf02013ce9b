package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/readmestats/internal/ui/styles"
)

// View renders the entire application.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	if !a.ready {
		loading := lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Accent).
			Render("Loading readmestats...")
		return lipgloss.NewStyle().
			Width(a.width).
			Height(a.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(loading)
	}

	if a.windowTooSmall() {
		msg := fmt.Sprintf("Window too small, need at least %dx%d (have %dx%d)", minAppWidth, minAppHeight, a.width, a.height)
		return lipgloss.NewStyle().
			Width(a.width).
			Height(a.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(styles.Placeholder.Render(msg))
	}

	if a.showDialog {
		return a.dialog.View()
	}
	if a.showHelp {
		return a.renderHelp()
	}

	leftWidth, _, contentHeight := a.layout()
	left := lipgloss.JoinVertical(
		lipgloss.Left,
		a.renderSubjectPane(leftWidth),
		a.themeList.View(),
	)
	left = lipgloss.NewStyle().MaxHeight(contentHeight).Render(left)

	mainContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		left,
		a.panel.View(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		mainContent,
		a.statusBar.View(),
	)
}

// renderSubjectPane renders the username input and toggles.
func (a App) renderSubjectPane(width int) string {
	innerWidth := max(width-4, 0)

	titleStyle := styles.PanelTitle
	border := styles.BorderStyle
	if a.focus == FocusSubject {
		titleStyle = styles.PanelTitleFocused
		border = styles.FocusedBorderStyle
	}
	header := styles.PanelTitleIcon.Render(styles.IconUser) + titleStyle.Render("GitHub Username")

	rows := []string{
		header,
		strings.Repeat("─", innerWidth),
		a.input.View(),
		"",
		a.renderToggle("Include private contributions", a.draft.IncludePrivate, a.keys.TogglePrivate.Help().Key, innerWidth),
		a.renderToggle("Contributions panel", a.draft.IncludeOptional, a.keys.ToggleOption.Help().Key, innerWidth),
	}

	return border.
		Width(max(width-2, 0)).
		Height(subjectPaneHeight - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) renderToggle(label string, on bool, hint string, width int) string {
	box := styles.IconCheckOff
	style := styles.ListItemDim
	if on {
		box = styles.IconCheckOn
		style = styles.ListItemHighlight
	}
	text := styles.TruncateWithEllipsis(box+" "+label, max(width-len(hint)-1, 4))
	return style.Render(text) + " " + styles.StatusBarKey.Render(hint)
}

// renderHelp renders the full key map overlay.
func (a App) renderHelp() string {
	title := styles.LogoStyle.Render("readmestats")
	if a.version != "" {
		title += " " + styles.VersionStyle.Render("v"+a.version)
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.RenderFancyHeader(title, min(a.width-8, 64)),
		"",
		a.help.FullHelpView(a.keys.FullHelp()),
		styles.HelpStyle.Render("Press any key to close"),
	)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, styles.DialogBox.Render(body))
}
