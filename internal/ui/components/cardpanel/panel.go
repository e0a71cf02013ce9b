// Package cardpanel renders the live preview of a stats card session.
package cardpanel

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/readmestats/internal/fetch"
	"github.com/lazyvibe/readmestats/internal/model"
	"github.com/lazyvibe/readmestats/internal/preview"
	"github.com/lazyvibe/readmestats/internal/ui/styles"
)

// maxCardLines caps how many SVG text lines are shown per card.
const maxCardLines = 6

type Model struct {
	viewport viewport.Model
	session  preview.Session
	cards    map[model.ResourceKind]fetch.Result
	markdown string
	frame    string
	copied   bool
	focused  bool
	width    int
	height   int
	active   bool
}

func New() Model {
	return Model{
		viewport: viewport.New(0, 0),
		cards:    make(map[model.ResourceKind]fetch.Result),
		frame:    "…",
	}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = max(w-4, 0)
	m.viewport.Height = max(h-5, 0)
	m.refresh()
}

func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// SetSession switches the panel to a new session and forgets every card
// of the previous one.
func (m *Model) SetSession(s preview.Session) {
	if s.ID != m.session.ID {
		m.cards = make(map[model.ResourceKind]fetch.Result)
		m.markdown = ""
		m.viewport.GotoTop()
	}
	m.session = s
	m.active = s.ID != 0
	m.refresh()
}

// SetCard records the outcome of one card of the current session.
func (m *Model) SetCard(res fetch.Result) {
	m.cards[res.Kind] = res
	m.refresh()
}

// SetMarkdown shows the export text. Empty hides it.
func (m *Model) SetMarkdown(text string) {
	m.markdown = text
	m.refresh()
}

// SetCopied toggles the copy confirmation badge.
func (m *Model) SetCopied(copied bool) {
	m.copied = copied
}

// SetFrame updates the spinner frame drawn next to pending cards.
func (m *Model) SetFrame(frame string) {
	if frame == m.frame {
		return
	}
	m.frame = frame
	if m.session.State == model.StateLoading {
		m.refresh()
	}
}

func (m Model) IsActive() bool {
	return m.active
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "home", "g":
			m.viewport.GotoTop()
			return m, nil
		case "end", "G":
			m.viewport.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) refresh() {
	if !m.active {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(m.body())
}

func (m Model) body() string {
	width := max(m.viewport.Width, 10)
	var b strings.Builder

	for _, loc := range m.session.Locators {
		b.WriteString(m.renderCard(loc, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.markdown == "" {
		pending := m.session.Expected - m.session.Completed
		b.WriteString(styles.Placeholder.Render(
			fmt.Sprintf("Waiting for %d of %d cards…", pending, m.session.Expected)))
		return b.String()
	}

	b.WriteString(styles.CardTitle.Render("Markdown"))
	b.WriteString("\n")
	for _, line := range strings.Split(m.markdown, "\n") {
		b.WriteString(styles.MarkdownStyle.Render(styles.TruncateWithEllipsis(line, width-2)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderCard(loc model.ResourceLocator, width int) string {
	res, done := m.cards[loc.Kind]
	if !done && m.session.Done(loc.Kind) {
		done = true
	}

	var icon, detail string
	switch {
	case !done:
		icon = styles.CardPendingStyle.Render(m.frame)
		detail = styles.ListItemDim.Render("loading")
	case res.OK():
		icon = styles.CardLoadedStyle.Render(styles.IconOK)
		detail = styles.ListItemDim.Render(fmt.Sprintf("%d bytes in %s", res.Bytes, res.Duration.Round(time.Millisecond)))
	default:
		icon = styles.CardFailedStyle.Render(styles.IconFailed)
		reason := "failed"
		if res.Err != nil {
			reason = res.Err.Error()
		}
		detail = styles.CardFailedStyle.Render(styles.TruncateWithEllipsis(reason, width/2))
	}

	lines := []string{icon + " " + styles.CardTitle.Render(loc.Kind.Title()) + "  " + detail}
	shown := res.Lines
	if len(shown) > maxCardLines {
		shown = shown[:maxCardLines]
	}
	for _, l := range shown {
		lines = append(lines, styles.CardLine.Render(styles.TruncateWithEllipsis(l, width-4)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) View() string {
	title := "Preview"
	if m.session.Config.Subject != "" {
		title = fmt.Sprintf("Preview · %s", m.session.Config.Subject)
	}
	titleStyle := styles.PanelTitle
	if m.focused {
		titleStyle = styles.PanelTitleFocused
	}
	header := styles.PanelTitleIcon.Render(styles.IconPreview) + titleStyle.Render(title)

	if m.active {
		state := string(m.session.State)
		badge := lipgloss.NewStyle().
			Foreground(styles.Base).
			Background(styles.StateColor(state)).
			Bold(true).
			Padding(0, 1).
			Render(fmt.Sprintf("%s %d/%d", strings.ToUpper(state), m.session.Completed, m.session.Expected))
		header += " " + badge
		if m.copied {
			header += " " + styles.CopiedBadge.Render("Copied!")
		}
	}

	var content string
	if !m.active {
		content = lipgloss.NewStyle().
			Width(max(m.width-4, 0)).
			Height(max(m.height-5, 0)).
			Align(lipgloss.Center, lipgloss.Center).
			Render(styles.Placeholder.Render("Ready to Generate\nEnter a username on the left to visualize the stats."))
	} else {
		content = m.viewport.View()
	}

	border := styles.BorderStyle
	switch {
	case m.focused:
		border = styles.FocusedBorderStyle
	case m.session.State == model.StateReady:
		border = styles.ReadyBorder
	}

	return border.
		Width(max(m.width-2, 0)).
		Height(max(m.height-2, 0)).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			strings.Repeat("─", max(m.width-4, 0)),
			content,
		))
}
