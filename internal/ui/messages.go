// Package ui provides the terminal user interface for readmestats.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lazyvibe/readmestats/internal/app"
	"github.com/lazyvibe/readmestats/internal/clipboard"
	"github.com/lazyvibe/readmestats/internal/fetch"
	"github.com/lazyvibe/readmestats/internal/model"
	"github.com/lazyvibe/readmestats/internal/notify"
	"github.com/lazyvibe/readmestats/internal/store"
)

const notifyTimeout = 5 * time.Second

// ---------- Preview Messages ----------

// CardLoadedMsg reports that one card of a session finished loading,
// successfully or not.
type CardLoadedMsg struct {
	Session model.SessionID
	Result  fetch.Result
}

// CopyExpiredMsg fires when a copy confirmation window elapses.
type CopyExpiredMsg struct {
	Ticket clipboard.Ticket
}

// ---------- Preset Messages ----------

// PresetsLoadedMsg is sent when presets are loaded from store.
type PresetsLoadedMsg struct {
	Presets []model.Preset
	Err     error
}

// PresetSavedMsg is sent when a preset is created or updated.
type PresetSavedMsg struct {
	Preset *model.Preset
	Err    error
}

// ---------- Background Messages ----------

// ConfigSavedMsg reports the outcome of persisting the config.
type ConfigSavedMsg struct {
	Err error
}

// NotifiedMsg reports the outcome of a notification dispatch.
type NotifiedMsg struct {
	Event notify.EventType
	Err   error
}

// ErrorMsg is sent when an error occurs.
type ErrorMsg struct {
	Err error
}

// ---------- Command Functions ----------

// FetchCard returns a command that loads one card for session id.
func FetchCard(ctx context.Context, f fetch.Fetcher, id model.SessionID, loc model.ResourceLocator) tea.Cmd {
	return func() tea.Msg {
		return CardLoadedMsg{Session: id, Result: f.Fetch(ctx, loc)}
	}
}

// ExpireCopy returns a command that fires once the ticket's window elapses.
func ExpireCopy(t clipboard.Ticket) tea.Cmd {
	return tea.Tick(t.After, func(time.Time) tea.Msg {
		return CopyExpiredMsg{Ticket: t}
	})
}

// LoadPresets returns a command to load presets from store.
func LoadPresets(ctx context.Context, s store.PresetStore) tea.Cmd {
	return func() tea.Msg {
		presets, err := s.List(ctx)
		return PresetsLoadedMsg{Presets: presets, Err: err}
	}
}

// SavePreset returns a command that stores p.
func SavePreset(ctx context.Context, s store.PresetStore, p *model.Preset) tea.Cmd {
	return func() tea.Msg {
		saved, err := s.Save(ctx, p)
		return PresetSavedMsg{Preset: saved, Err: err}
	}
}

// TouchPreset returns a command that marks a preset as used.
func TouchPreset(ctx context.Context, s store.PresetStore, id string) tea.Cmd {
	return func() tea.Msg {
		if err := s.Touch(ctx, id); err != nil {
			return ErrorMsg{Err: err}
		}
		return nil
	}
}

// SaveConfig returns a command that persists a snapshot of cfg.
func SaveConfig(configDir string, cfg *app.Config) tea.Cmd {
	snapshot := *cfg
	snapshot.RecentSubjects = append([]string(nil), cfg.RecentSubjects...)
	return func() tea.Msg {
		return ConfigSavedMsg{Err: app.SaveConfig(configDir, &snapshot)}
	}
}

// Notify returns a command that dispatches event, or nil when no channel
// is configured.
func Notify(n Notifier, cfg model.NotificationConfig, event notify.Event) tea.Cmd {
	if n == nil || (!cfg.Desktop && cfg.WebhookURL == "") {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		return NotifiedMsg{Event: event.Type, Err: n.Dispatch(ctx, cfg, event)}
	}
}
