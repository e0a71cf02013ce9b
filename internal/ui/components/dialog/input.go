// Package dialog provides modal dialog components for readmestats.
package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/readmestats/internal/ui/styles"
)

// maxSuggestions caps the suggestion list drawn under a field.
const maxSuggestions = 5

// InputField represents a single input field in the dialog.
type InputField struct {
	Label       string
	Placeholder string
	Value       string
	// Options are offered as completions while typing.
	Options []string
}

// InputDialog is a modal dialog for text input.
type InputDialog struct {
	title      string
	inputs     []textinput.Model
	labels     []string
	options    [][]string
	focusIndex int
	width      int
	height     int
	submitted  bool
	cancelled  bool

	suggestions     []string
	suggestionIndex int
}

// NewInputDialog creates a new input dialog.
func NewInputDialog(title string, fields []InputField) InputDialog {
	inputs := make([]textinput.Model, len(fields))
	labels := make([]string, len(fields))
	options := make([][]string, len(fields))

	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.SetValue(f.Value)
		ti.CharLimit = 64
		ti.Width = 36
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
		labels[i] = f.Label
		options[i] = append([]string(nil), f.Options...)
	}

	return InputDialog{
		title:   title,
		inputs:  inputs,
		labels:  labels,
		options: options,
	}
}

// SetSize updates the dialog dimensions.
func (d *InputDialog) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Update handles input dialog messages.
func (d InputDialog) Update(msg tea.Msg) (InputDialog, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab":
			if len(d.suggestions) > 0 {
				d.inputs[d.focusIndex].SetValue(d.suggestions[d.suggestionIndex])
				d.inputs[d.focusIndex].CursorEnd()
				d.suggestionIndex = (d.suggestionIndex + 1) % len(d.suggestions)
				return d, nil
			}
			return d, d.moveFocus(1)

		case "shift+tab", "up":
			return d, d.moveFocus(-1)

		case "down":
			return d, d.moveFocus(1)

		case "enter":
			d.submitted = true
			return d, nil

		case "esc":
			if len(d.suggestions) > 0 {
				d.suggestions = nil
				return d, nil
			}
			d.cancelled = true
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.inputs[d.focusIndex], cmd = d.inputs[d.focusIndex].Update(msg)
	d.suggestions = d.matchOptions(d.inputs[d.focusIndex].Value())
	d.suggestionIndex = 0
	return d, cmd
}

func (d *InputDialog) moveFocus(delta int) tea.Cmd {
	n := len(d.inputs)
	if n == 0 {
		return nil
	}
	d.focusIndex = (d.focusIndex + delta + n) % n
	d.suggestions = nil

	cmds := make([]tea.Cmd, n)
	for i := range d.inputs {
		if i == d.focusIndex {
			cmds[i] = d.inputs[i].Focus()
		} else {
			d.inputs[i].Blur()
		}
	}
	return tea.Batch(cmds...)
}

// View renders the dialog centered in its area.
func (d InputDialog) View() string {
	var b strings.Builder

	b.WriteString(styles.DialogTitle.Render(styles.IconStar + " " + d.title))
	b.WriteString("\n\n")

	for i, input := range d.inputs {
		labelStyle := styles.DialogLabel
		if i == d.focusIndex {
			labelStyle = styles.DialogLabelFocused
		}
		b.WriteString(labelStyle.Render(d.labels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n")

		if i != d.focusIndex || len(d.suggestions) == 0 {
			b.WriteString("\n")
			continue
		}
		shown := d.suggestions
		if len(shown) > maxSuggestions {
			shown = shown[:maxSuggestions]
		}
		for j, s := range shown {
			if j == d.suggestionIndex {
				b.WriteString(styles.ListItemSelected.Render(styles.IconArrowR + " " + s))
			} else {
				b.WriteString(styles.ListItemDim.Render("  " + s))
			}
			b.WriteString("\n")
		}
	}

	help := "Enter: Confirm • Esc: Cancel"
	if len(d.suggestions) > 0 {
		help = "Tab: Complete • " + help
	}
	b.WriteString(styles.HelpStyle.Render(help))

	content := styles.DialogBox.Render(b.String())
	if d.width <= 0 || d.height <= 0 {
		return content
	}
	return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, content)
}

// IsSubmitted returns true if the user submitted the dialog.
func (d InputDialog) IsSubmitted() bool {
	return d.submitted
}

// IsCancelled returns true if the user cancelled the dialog.
func (d InputDialog) IsCancelled() bool {
	return d.cancelled
}

// Value returns the trimmed value of the input at index.
func (d InputDialog) Value(index int) string {
	if index < 0 || index >= len(d.inputs) {
		return ""
	}
	return strings.TrimSpace(d.inputs[index].Value())
}

// SetValue prefills the input at index.
func (d *InputDialog) SetValue(index int, value string) {
	if index < 0 || index >= len(d.inputs) {
		return
	}
	d.inputs[index].SetValue(value)
	d.inputs[index].CursorEnd()
}

// Reset clears every field and returns focus to the first one.
func (d *InputDialog) Reset() {
	d.submitted = false
	d.cancelled = false
	d.suggestions = nil
	for i := range d.inputs {
		d.inputs[i].SetValue("")
	}
	d.focusIndex = 0
	_ = d.moveFocus(0)
}

// SetFieldOptions replaces the completion options of the input at index.
func (d *InputDialog) SetFieldOptions(index int, options []string) {
	if index < 0 || index >= len(d.inputs) {
		return
	}
	d.options[index] = append([]string(nil), options...)
}

func (d *InputDialog) matchOptions(input string) []string {
	opts := d.options[d.focusIndex]
	if len(opts) == 0 || input == "" {
		return nil
	}
	lower := strings.ToLower(input)
	var matches []string
	for _, opt := range opts {
		if strings.HasPrefix(strings.ToLower(opt), lower) && !strings.EqualFold(opt, input) {
			matches = append(matches, opt)
		}
	}
	if len(matches) > 10 {
		matches = matches[:10]
	}
	return matches
}
