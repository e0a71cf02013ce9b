// Package themelist provides the theme picker UI component.
package themelist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/readmestats/internal/themes"
	"github.com/lazyvibe/readmestats/internal/ui/styles"
)

// Model is the theme list component.
type Model struct {
	items    []themes.Theme
	cursor   int
	selected string
	focused  bool
	width    int
	height   int
	offset   int
}

// New creates a theme list over the catalog with id preselected.
func New(selected string) Model {
	m := Model{
		items:    themes.All(),
		selected: selected,
	}
	if i := themes.Index(selected); i >= 0 {
		m.cursor = i
	}
	return m
}

// SetSize updates the component dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// SetFocused updates the focus state.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// Select marks id as the active theme and moves the cursor to it.
// Unknown ids are kept as the selection but leave the cursor alone.
func (m *Model) Select(id string) {
	m.selected = id
	if i := themes.Index(id); i >= 0 {
		m.cursor = i
		m.ensureVisible()
	}
}

// Selected returns the active theme id.
func (m Model) Selected() string {
	return m.selected
}

// Highlighted returns the theme under the cursor.
func (m Model) Highlighted() (themes.Theme, bool) {
	if m.cursor >= 0 && m.cursor < len(m.items) {
		return m.items[m.cursor], true
	}
	return themes.Theme{}, false
}

// HandleKey processes a navigation key.
func (m *Model) HandleKey(key string) bool {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}
		return true
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
			m.ensureVisible()
		}
		return true
	case "home", "g":
		m.cursor = 0
		m.offset = 0
		return true
	case "end", "G":
		if len(m.items) > 0 {
			m.cursor = len(m.items) - 1
			m.ensureVisible()
		}
		return true
	}
	return false
}

// View renders the theme list.
func (m Model) View() string {
	innerWidth := m.width - 4
	innerHeight := m.height - 4

	icon := styles.PanelTitleIcon.Render(styles.IconPalette)
	title := "Visual Theme"
	if m.focused {
		title = styles.PanelTitleFocused.Render(title)
	} else {
		title = styles.PanelTitle.Render(title)
	}
	header := icon + title

	visibleRows := innerHeight - 2
	if visibleRows < 1 {
		visibleRows = 1
	}
	endIdx := m.offset + visibleRows
	if endIdx > len(m.items) {
		endIdx = len(m.items)
	}

	var rows []string
	for i := m.offset; i < endIdx; i++ {
		rows = append(rows, m.renderItem(m.items[i], i == m.cursor, innerWidth-2))
	}
	if len(m.items) > visibleRows {
		rows = append(rows, styles.ListItemDim.Render(fmt.Sprintf(" %d/%d ", m.cursor+1, len(m.items))))
	}

	var borderStyle lipgloss.Style
	if m.focused {
		borderStyle = styles.FocusedBorderStyle
	} else {
		borderStyle = styles.BorderStyle
	}

	return borderStyle.
		Width(m.width - 2).
		Height(m.height - 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			strings.Repeat("─", max(innerWidth, 0)),
			lipgloss.JoinVertical(lipgloss.Left, rows...),
		))
}

func (m *Model) renderItem(t themes.Theme, highlighted bool, maxWidth int) string {
	mark := styles.IconStarEmpty
	if t.ID == m.selected {
		mark = styles.IconStar
	}
	content := styles.TruncateWithEllipsis(mark+" "+t.Name, maxWidth-2)
	swatch := styles.RenderSwatch(t.Color)

	if highlighted && m.focused {
		return swatch + styles.ListItemSelected.Render(content)
	}
	if t.ID == m.selected {
		return swatch + styles.ListItemHighlight.Render(content)
	}
	return swatch + styles.ListItem.Render(content)
}

func (m *Model) ensureVisible() {
	visibleRows := m.height - 6
	if visibleRows < 1 {
		visibleRows = 1
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visibleRows {
		m.offset = m.cursor - visibleRows + 1
	}
}
