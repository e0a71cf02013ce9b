// Package statusbar provides the status bar UI component.
package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/readmestats/internal/ui/keys"
	"github.com/lazyvibe/readmestats/internal/ui/styles"
)

// Model is the status bar component.
type Model struct {
	width      int
	message    string
	isError    bool
	keyMap     keys.KeyMap
	stateLabel string
	presetInfo string
}

// New creates a new status bar component.
func New() Model {
	return Model{
		keyMap:     keys.DefaultKeyMap(),
		stateLabel: "IDLE",
	}
}

// SetWidth updates the status bar width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetMessage sets a temporary message.
func (m *Model) SetMessage(msg string, isError bool) {
	m.message = msg
	m.isError = isError
}

// ClearMessage clears the temporary message.
func (m *Model) ClearMessage() {
	m.message = ""
	m.isError = false
}

// Message returns the current message and whether it is an error.
func (m Model) Message() (string, bool) {
	return m.message, m.isError
}

// SetStateLabel updates the preview state badge.
func (m *Model) SetStateLabel(label string) {
	m.stateLabel = strings.ToUpper(strings.TrimSpace(label))
}

// SetPresetInfo sets the "preset n/m" indicator.
func (m *Model) SetPresetInfo(info string) {
	m.presetInfo = info
}

// View renders the status bar.
func (m Model) View() string {
	brand := styles.StatusBarBrand.Render("README STATS ")

	label := m.stateLabel
	if label == "" {
		label = "IDLE"
	}
	stateBadge := lipgloss.NewStyle().
		Foreground(styles.Base).
		Background(styles.StateColor(strings.ToLower(label))).
		Bold(true).
		Padding(0, 1).
		Render(label)

	helpItems := make([]string, 0, len(m.keyMap.ShortHelp()))
	for _, b := range m.keyMap.ShortHelp() {
		helpItems = append(helpItems, m.renderKey(b.Help().Key, b.Help().Desc))
	}
	help := strings.Join(helpItems, styles.StatusBarSeparator.String())

	leftContent := brand + stateBadge
	if m.presetInfo != "" {
		leftContent += lipgloss.NewStyle().
			Foreground(styles.Secondary).
			Render(" " + m.presetInfo + " ")
	}

	var msgArea string
	if m.message != "" {
		msgStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
		if m.isError {
			msgStyle = lipgloss.NewStyle().Foreground(styles.Danger).Bold(true)
		}
		msgArea = msgStyle.Render(" " + m.message + " ")
	}

	leftWidth := lipgloss.Width(leftContent)
	middleWidth := lipgloss.Width(msgArea)
	// Drop the key hints before the message when space runs out.
	if leftWidth+middleWidth+lipgloss.Width(help) > m.width-2 {
		help = ""
	}
	rightWidth := lipgloss.Width(help)

	padding := m.width - 2 - leftWidth - middleWidth - rightWidth
	if padding < 0 {
		padding = 0
	}
	leftPad := padding / 2
	rightPad := padding - leftPad

	content := leftContent +
		strings.Repeat(" ", leftPad) +
		msgArea +
		strings.Repeat(" ", rightPad) +
		help

	return styles.StatusBarStyle.
		Width(m.width).
		MaxHeight(1).
		Render(content)
}

// renderKey renders a key binding hint.
func (m Model) renderKey(key, desc string) string {
	return styles.StatusBarKey.Render(key) + styles.StatusBarDesc.Render(":"+desc)
}
