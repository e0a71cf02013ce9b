package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lazyvibe/readmestats/internal/app"
	"github.com/lazyvibe/readmestats/internal/clipboard"
	"github.com/lazyvibe/readmestats/internal/fetch"
	"github.com/lazyvibe/readmestats/internal/model"
	"github.com/lazyvibe/readmestats/internal/notify"
	"github.com/lazyvibe/readmestats/internal/preview"
	"github.com/lazyvibe/readmestats/internal/store"
	"github.com/lazyvibe/readmestats/internal/ui/components/cardpanel"
	"github.com/lazyvibe/readmestats/internal/ui/components/dialog"
	"github.com/lazyvibe/readmestats/internal/ui/components/statusbar"
	"github.com/lazyvibe/readmestats/internal/ui/components/themelist"
	"github.com/lazyvibe/readmestats/internal/ui/keys"
	"github.com/lazyvibe/readmestats/internal/ui/styles"
)

// FocusArea represents which UI pane has focus.
type FocusArea int

const (
	// FocusSubject is the username input.
	FocusSubject FocusArea = iota
	// FocusThemes is the theme list.
	FocusThemes
	// FocusPreview is the card preview pane.
	FocusPreview
)

const focusCount = 3

const (
	minAppWidth  = 60
	minAppHeight = 16

	// subjectPaneHeight is the height of the input and toggles box.
	subjectPaneHeight = 9
)

// Notifier delivers ready/copy events.
type Notifier interface {
	Dispatch(ctx context.Context, cfg model.NotificationConfig, event notify.Event) error
}

// Dependencies are the collaborators the App needs.
type Dependencies struct {
	Config    *app.Config
	ConfigDir string
	Store     store.PresetStore
	Fetcher   fetch.Fetcher
	Clipboard clipboard.Writer
	Notifier  Notifier
	Logger    *slog.Logger
	Version   string
}

// App is the main application model.
type App struct {
	// Components
	input     textinput.Model
	themeList themelist.Model
	panel     cardpanel.Model
	statusBar statusbar.Model
	spinner   spinner.Model
	help      help.Model
	dialog    dialog.InputDialog

	// State
	focus      FocusArea
	showDialog bool
	showHelp   bool
	width      int
	height     int
	ready      bool
	quitting   bool

	// draft holds the form values; the subject lives in input.
	draft       model.Configuration
	presets     []model.Preset
	presetIndex int

	// Preview
	machine *preview.Machine
	action  *clipboard.Action
	cancel  context.CancelFunc

	// Dependencies
	ctx       context.Context
	config    *app.Config
	configDir string
	store     store.PresetStore
	fetcher   fetch.Fetcher
	notifier  Notifier
	logger    *slog.Logger
	version   string
	keys      keys.KeyMap
}

// New creates a new application instance.
func New(deps Dependencies) App {
	cfg := deps.Config
	if cfg == nil {
		cfg = app.DefaultConfig()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	fetcher := deps.Fetcher
	if fetcher == nil {
		fetcher = fetch.NewHTTPFetcher(cfg.RequestTimeout(), logger)
	}

	draft := cfg.InitialConfiguration()

	input := textinput.New()
	input.Prompt = styles.IconUser + " "
	input.Placeholder = "Type your username..."
	input.CharLimit = 39
	input.ShowSuggestions = true
	input.SetSuggestions(cfg.RecentSubjects)
	input.SetValue(draft.Subject)
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot
	spin.Style = styles.CardPendingStyle

	themeList := themelist.New(draft.Theme)

	return App{
		input:     input,
		themeList: themeList,
		panel:     cardpanel.New(),
		statusBar: statusbar.New(),
		spinner:   spin,
		help:      help.New(),
		dialog: dialog.NewInputDialog("Save Preset", []dialog.InputField{
			{Label: "Preset Name", Placeholder: "my profile card"},
			{Label: "Username", Placeholder: "octocat", Options: cfg.RecentSubjects},
		}),
		focus:     FocusSubject,
		draft:     draft,
		machine:   preview.NewMachine(cfg.BaseURL, preview.WithLogger(logger)),
		action:    clipboard.NewAction(deps.Clipboard, cfg.CopyConfirmDuration()),
		ctx:       context.Background(),
		config:    cfg,
		configDir: deps.ConfigDir,
		store:     deps.Store,
		fetcher:   fetcher,
		notifier:  deps.Notifier,
		logger:    logger,
		version:   deps.Version,
		keys:      keys.DefaultKeyMap(),
	}
}

// Init initializes the application.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		a.loadPresets(),
	)
}

// loadPresets returns a command to load presets.
func (a App) loadPresets() tea.Cmd {
	if a.store == nil {
		return nil
	}
	return LoadPresets(a.ctx, a.store)
}

// generate starts a preview for the subject typed in the input.
func (a *App) generate() tea.Cmd {
	subject := strings.TrimSpace(a.input.Value())
	if subject == "" {
		a.statusBar.SetMessage("Enter a username first", true)
		return nil
	}
	return a.startSession(a.draft.WithSubject(subject))
}

// reconfigure re-arms the active preview after a form change.
func (a *App) reconfigure() tea.Cmd {
	if a.machine.Active() == 0 {
		return nil
	}
	return a.startSession(a.draft.WithSubject(a.machine.Config().Subject))
}

// startSession supersedes the active preview and launches one fetch per card.
func (a *App) startSession(cfg model.Configuration) tea.Cmd {
	if a.cancel != nil {
		a.cancel()
	}
	ctx, cancel := context.WithCancel(a.ctx)
	a.cancel = cancel

	session := a.machine.Start(cfg)
	a.panel.SetSession(session)
	a.statusBar.SetStateLabel(string(session.State))
	a.statusBar.SetMessage(fmt.Sprintf("Loading %d cards for %s", session.Expected, cfg.Subject), false)
	a.logger.Info("preview requested",
		"session", session.ID,
		"config", cfg.String())

	a.config.Remember(cfg)
	a.input.SetSuggestions(a.config.RecentSubjects)
	a.dialog.SetFieldOptions(1, a.config.RecentSubjects)

	cmds := make([]tea.Cmd, 0, len(session.Locators)+2)
	for _, loc := range session.Locators {
		cmds = append(cmds, FetchCard(ctx, a.fetcher, session.ID, loc))
	}
	cmds = append(cmds, a.spinner.Tick)
	if a.configDir != "" {
		cmds = append(cmds, SaveConfig(a.configDir, a.config))
	}
	return tea.Batch(cmds...)
}

// handleCardLoaded routes a card completion into the machine.
func (a *App) handleCardLoaded(msg CardLoadedMsg) tea.Cmd {
	tr := a.machine.Signal(msg.Session, msg.Result.Kind)
	if tr.Result != preview.SignalCounted {
		return nil
	}
	if !msg.Result.OK() {
		a.logger.Warn("card failed",
			"session", msg.Session,
			"kind", msg.Result.Kind,
			"url", msg.Result.URL,
			"err", msg.Result.Err)
	}

	session := a.machine.Snapshot()
	a.panel.SetCard(msg.Result)
	a.panel.SetSession(session)
	if !tr.BecameReady {
		return nil
	}

	markdown, _ := a.machine.Export()
	a.panel.SetMarkdown(markdown)
	a.statusBar.SetStateLabel(string(session.State))
	a.statusBar.SetMessage("Preview ready, press "+a.keys.Copy.Help().Key+" to copy", false)
	return Notify(a.notifier, a.config.Notify, notify.Event{
		Subject: session.Config.Subject,
		Theme:   session.Config.Theme,
		Type:    notify.EventPreviewReady,
		Message: fmt.Sprintf("%d cards rendered", session.Completed),
	})
}

// copyMarkdown copies the export text once the preview is ready.
func (a *App) copyMarkdown() tea.Cmd {
	switch a.machine.State() {
	case model.StateIdle:
		a.statusBar.SetMessage("Generate a preview first", true)
		return nil
	case model.StateLoading:
		a.statusBar.SetMessage("Preview still loading", true)
		return nil
	}

	markdown, _ := a.machine.Export()
	cfg := a.machine.Config()
	ticket, err := a.action.Copy(markdown)
	if err != nil {
		a.logger.Error("copy failed", "err", err)
		a.statusBar.SetMessage("Copy failed: "+err.Error(), true)
		return Notify(a.notifier, a.config.Notify, notify.Event{
			Subject: cfg.Subject,
			Theme:   cfg.Theme,
			Type:    notify.EventCopyFailed,
			Message: err.Error(),
		})
	}

	a.panel.SetCopied(true)
	a.statusBar.SetMessage("Copied!", false)
	return tea.Batch(
		ExpireCopy(ticket),
		Notify(a.notifier, a.config.Notify, notify.Event{
			Subject: cfg.Subject,
			Theme:   cfg.Theme,
			Type:    notify.EventCopied,
			Message: "Markdown copied to clipboard",
		}),
	)
}

// togglePrivate flips the include-private toggle.
func (a *App) togglePrivate() tea.Cmd {
	a.draft.IncludePrivate = !a.draft.IncludePrivate
	a.statusBar.SetMessage("Include private: "+onOff(a.draft.IncludePrivate), false)
	return a.reconfigure()
}

// toggleOptional flips the optional contributions panel.
func (a *App) toggleOptional() tea.Cmd {
	a.draft.IncludeOptional = !a.draft.IncludeOptional
	a.statusBar.SetMessage("Contributions panel: "+onOff(a.draft.IncludeOptional), false)
	return a.reconfigure()
}

// selectTheme applies the theme under the cursor.
func (a *App) selectTheme() tea.Cmd {
	t, ok := a.themeList.Highlighted()
	if !ok || t.ID == a.draft.Theme {
		return nil
	}
	a.draft.Theme = t.ID
	a.themeList.Select(t.ID)
	a.statusBar.SetMessage("Theme: "+t.Name, false)
	return a.reconfigure()
}

// openPresetDialog shows the save preset dialog prefilled with the subject.
func (a *App) openPresetDialog() {
	if a.store == nil {
		a.statusBar.SetMessage("Presets are unavailable", true)
		return
	}
	a.dialog.Reset()
	a.dialog.SetFieldOptions(1, a.config.RecentSubjects)
	a.dialog.SetValue(1, strings.TrimSpace(a.input.Value()))
	a.dialog.SetSize(a.width, a.height)
	a.showDialog = true
}

// submitPresetDialog stores the dialog values as a preset.
func (a *App) submitPresetDialog() tea.Cmd {
	a.showDialog = false
	subject := a.dialog.Value(1)
	if subject == "" {
		a.statusBar.SetMessage("A preset needs a username", true)
		return nil
	}
	p := model.NewPreset(a.dialog.Value(0), a.draft.WithSubject(subject))
	return SavePreset(a.ctx, a.store, p)
}

// cyclePreset applies the previous or next stored preset.
func (a *App) cyclePreset(delta int) tea.Cmd {
	if len(a.presets) == 0 {
		a.statusBar.SetMessage("No saved presets", true)
		return nil
	}
	a.presetIndex = (a.presetIndex + delta + len(a.presets)) % len(a.presets)
	p := a.presets[a.presetIndex]
	a.updatePresetInfo()

	a.draft = p.Config
	a.input.SetValue(p.Config.Subject)
	a.input.CursorEnd()
	a.themeList.Select(p.Config.Theme)
	cmd := a.startSession(p.Config)
	a.statusBar.SetMessage("Preset: "+p.DisplayName(), false)
	return tea.Batch(cmd, TouchPreset(a.ctx, a.store, p.ID))
}

func (a *App) updatePresetInfo() {
	if len(a.presets) == 0 {
		a.statusBar.SetPresetInfo("")
		return
	}
	a.statusBar.SetPresetInfo(fmt.Sprintf("preset %d/%d", a.presetIndex+1, len(a.presets)))
}

// cycleFocus moves focus to the next pane.
func (a *App) cycleFocus(delta int) tea.Cmd {
	a.focus = FocusArea((int(a.focus) + delta + focusCount) % focusCount)
	return a.applyFocus()
}

func (a *App) applyFocus() tea.Cmd {
	a.themeList.SetFocused(a.focus == FocusThemes)
	a.panel.SetFocused(a.focus == FocusPreview)
	if a.focus == FocusSubject {
		return a.input.Focus()
	}
	a.input.Blur()
	return nil
}

// quit cancels in-flight fetches and exits.
func (a *App) quit() tea.Cmd {
	if a.cancel != nil {
		a.cancel()
	}
	a.quitting = true
	return tea.Quit
}

// SetSize updates the window dimensions.
func (a *App) SetSize(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	a.statusBar.SetWidth(width)
	a.dialog.SetSize(width, height)
	a.help.Width = width
	if a.windowTooSmall() {
		return
	}

	leftWidth, rightWidth, contentHeight := a.layout()
	a.input.Width = max(leftWidth-10, 8)
	a.themeList.SetSize(leftWidth, contentHeight-subjectPaneHeight)
	a.panel.SetSize(rightWidth, contentHeight)
}

func (a App) layout() (leftWidth, rightWidth, contentHeight int) {
	leftWidth = a.width * 35 / 100
	leftWidth = min(max(leftWidth, 28), 44)
	rightWidth = a.width - leftWidth
	contentHeight = a.height - 1
	return leftWidth, rightWidth, contentHeight
}

func (a App) windowTooSmall() bool {
	return a.width < minAppWidth || a.height < minAppHeight
}

// Machine exposes the preview state machine.
func (a App) Machine() *preview.Machine {
	return a.machine
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
