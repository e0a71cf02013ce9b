// Package keys defines keyboard shortcuts for the readmestats TUI.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Tab      key.Binding
	ShiftTab key.Binding

	// Actions
	Generate      key.Binding
	Select        key.Binding
	TogglePrivate key.Binding
	ToggleOption  key.Binding
	Copy          key.Binding
	Refresh       key.Binding
	SavePreset    key.Binding
	PrevPreset    key.Binding
	NextPreset    key.Binding
	Help          key.Binding
	Quit          key.Binding
	ForceQuit     key.Binding
}

// DefaultKeyMap returns the default keyboard shortcuts.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev pane"),
		),
		Generate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "generate"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "use theme"),
		),
		TogglePrivate: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("Ctrl+P", "private"),
		),
		ToggleOption: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("Ctrl+O", "contrib panel"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("Ctrl+Y", "copy markdown"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "reload"),
		),
		SavePreset: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("Ctrl+S", "save preset"),
		),
		PrevPreset: key.NewBinding(
			key.WithKeys("alt+["),
			key.WithHelp("Alt+[", "prev preset"),
		),
		NextPreset: key.NewBinding(
			key.WithKeys("alt+]"),
			key.WithHelp("Alt+]", "next preset"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "quit"),
		),
	}
}

// ShortHelp returns short help text for the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Tab,
		k.Generate,
		k.TogglePrivate,
		k.ToggleOption,
		k.Copy,
		k.SavePreset,
		k.Quit,
	}
}

// FullHelp returns complete help text.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab, k.ShiftTab},
		{k.Generate, k.Select, k.Refresh, k.Copy},
		{k.TogglePrivate, k.ToggleOption, k.SavePreset, k.PrevPreset, k.NextPreset},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
