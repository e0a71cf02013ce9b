package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lazyvibe/readmestats/internal/model"
)

// Update handles all messages for the application.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// If a dialog is open, only intercept key input; allow other messages through.
	if a.showDialog {
		if msg, ok := msg.(tea.KeyMsg); ok {
			return a.handleDialogUpdate(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case CardLoadedMsg:
		return a, a.handleCardLoaded(msg)

	case CopyExpiredMsg:
		if a.action.Expire(msg.Ticket) {
			a.panel.SetCopied(false)
			if text, _ := a.statusBar.Message(); text == "Copied!" {
				a.statusBar.ClearMessage()
			}
		}
		return a, nil

	case spinner.TickMsg:
		// Ticking stops on its own once nothing is pending.
		if a.machine.State() != model.StateLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		a.panel.SetFrame(a.spinner.View())
		return a, cmd

	case PresetsLoadedMsg:
		if msg.Err != nil {
			a.statusBar.SetMessage("Error loading presets: "+msg.Err.Error(), true)
			return a, nil
		}
		a.presets = msg.Presets
		if a.presetIndex >= len(a.presets) {
			a.presetIndex = 0
		}
		a.updatePresetInfo()
		return a, nil

	case PresetSavedMsg:
		if msg.Err != nil {
			a.statusBar.SetMessage("Error saving preset: "+msg.Err.Error(), true)
			return a, nil
		}
		a.statusBar.SetMessage("Preset saved: "+msg.Preset.DisplayName(), false)
		return a, a.loadPresets()

	case ConfigSavedMsg:
		if msg.Err != nil {
			a.logger.Warn("save config failed", "err", msg.Err)
		}
		return a, nil

	case NotifiedMsg:
		if msg.Err != nil {
			a.logger.Warn("notification failed", "event", msg.Event, "err", msg.Err)
		}
		return a, nil

	case ErrorMsg:
		a.statusBar.SetMessage("Error: "+msg.Err.Error(), true)
		return a, nil
	}

	if a.focus == FocusSubject {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

// handleKey routes key input. Global bindings use modifiers so they work
// while the username input has focus.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showHelp {
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, a.quit()
		}
		a.showHelp = false
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.ForceQuit), key.Matches(msg, a.keys.Quit):
		return a, a.quit()

	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
		return a, nil

	case key.Matches(msg, a.keys.Tab):
		if a.focus == FocusSubject && a.hasPendingSuggestion() {
			break
		}
		return a, a.cycleFocus(1)

	case key.Matches(msg, a.keys.ShiftTab):
		return a, a.cycleFocus(-1)

	case key.Matches(msg, a.keys.TogglePrivate):
		return a, a.togglePrivate()

	case key.Matches(msg, a.keys.ToggleOption):
		return a, a.toggleOptional()

	case key.Matches(msg, a.keys.Copy):
		return a, a.copyMarkdown()

	case key.Matches(msg, a.keys.Refresh):
		if a.machine.Active() == 0 {
			return a, a.generate()
		}
		return a, a.startSession(a.machine.Config())

	case key.Matches(msg, a.keys.SavePreset):
		a.openPresetDialog()
		return a, nil

	case key.Matches(msg, a.keys.PrevPreset):
		return a, a.cyclePreset(-1)

	case key.Matches(msg, a.keys.NextPreset):
		return a, a.cyclePreset(1)
	}

	return a.handlePaneKeys(msg)
}

// handlePaneKeys handles keys for the focused pane.
func (a App) handlePaneKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.focus {
	case FocusSubject:
		if key.Matches(msg, a.keys.Generate) {
			return a, a.generate()
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd

	case FocusThemes:
		if key.Matches(msg, a.keys.Select) {
			return a, a.selectTheme()
		}
		a.themeList.HandleKey(msg.String())
		return a, nil

	case FocusPreview:
		var cmd tea.Cmd
		a.panel, cmd = a.panel.Update(msg)
		return a, cmd
	}
	return a, nil
}

// handleDialogUpdate handles updates when the preset dialog is open.
func (a App) handleDialogUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		return a, a.quit()
	}

	var cmd tea.Cmd
	a.dialog, cmd = a.dialog.Update(msg)

	if a.dialog.IsCancelled() {
		a.showDialog = false
		return a, nil
	}
	if a.dialog.IsSubmitted() {
		return a, a.submitPresetDialog()
	}
	return a, cmd
}

// hasPendingSuggestion reports whether tab would complete the input.
func (a App) hasPendingSuggestion() bool {
	s := a.input.CurrentSuggestion()
	return s != "" && !strings.EqualFold(s, a.input.Value())
}
