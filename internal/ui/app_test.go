package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazyvibe/readmestats/internal/app"
	"github.com/lazyvibe/readmestats/internal/clipboard"
	"github.com/lazyvibe/readmestats/internal/fetch"
	"github.com/lazyvibe/readmestats/internal/model"
	"github.com/lazyvibe/readmestats/internal/notify"
	"github.com/lazyvibe/readmestats/internal/store"
)

const testBaseURL = "http://stats.test/api"

type fakeWriter struct {
	writes []string
	err    error
}

func (w *fakeWriter) WriteAll(text string) error {
	if w.err != nil {
		return w.err
	}
	w.writes = append(w.writes, text)
	return nil
}

type fakeFetcher struct{}

func (fakeFetcher) Fetch(_ context.Context, loc model.ResourceLocator) fetch.Result {
	return fetch.Result{Kind: loc.Kind, URL: loc.URL, Status: 200, Lines: []string{"Total Stars: 42"}}
}

type fakeNotifier struct {
	events []notify.EventType
}

func (n *fakeNotifier) Dispatch(_ context.Context, _ model.NotificationConfig, e notify.Event) error {
	n.events = append(n.events, e.Type)
	return nil
}

type testEnv struct {
	app      App
	writer   *fakeWriter
	notifier *fakeNotifier
	store    *store.JSONStore
}

func newTestApp(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()

	s, err := store.NewJSONStore(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	cfg := app.DefaultConfig()
	cfg.BaseURL = testBaseURL
	cfg.Notify = model.NotificationConfig{Desktop: true}

	env := &testEnv{writer: &fakeWriter{}, notifier: &fakeNotifier{}, store: s}
	env.app = New(Dependencies{
		Config:    cfg,
		ConfigDir: dir,
		Store:     s,
		Fetcher:   fakeFetcher{},
		Clipboard: env.writer,
		Notifier:  env.notifier,
	})
	env.app = apply(t, env.app, tea.WindowSizeMsg{Width: 120, Height: 40})
	return env
}

func apply(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	next, _ := a.Update(msg)
	got, ok := next.(App)
	require.True(t, ok, "Update returned %T, want App", next)
	return got
}

func applyCmd(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	next, cmd := a.Update(msg)
	got, ok := next.(App)
	require.True(t, ok, "Update returned %T, want App", next)
	return got, cmd
}

func typeText(t *testing.T, a App, text string) App {
	t.Helper()
	for _, r := range text {
		a = apply(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return a
}

func press(t *testing.T, a App, k tea.KeyType) App {
	t.Helper()
	return apply(t, a, tea.KeyMsg{Type: k})
}

func loaded(id model.SessionID, kind model.ResourceKind, err error) CardLoadedMsg {
	return CardLoadedMsg{Session: id, Result: fetch.Result{Kind: kind, Err: err}}
}

func generate(t *testing.T, a App, subject string) App {
	t.Helper()
	a = typeText(t, a, subject)
	return press(t, a, tea.KeyEnter)
}

func completeAll(t *testing.T, a App) App {
	t.Helper()
	s := a.machine.Snapshot()
	for _, loc := range s.Locators {
		a = apply(t, a, loaded(s.ID, loc.Kind, nil))
	}
	return a
}

func TestGenerate_EmptySubjectDoesNotStart(t *testing.T) {
	env := newTestApp(t)
	a := press(t, env.app, tea.KeyEnter)

	assert.Equal(t, model.StateIdle, a.machine.State())
	assert.Zero(t, a.machine.Active())
	msg, isErr := a.statusBar.Message()
	assert.True(t, isErr)
	assert.Equal(t, "Enter a username first", msg)
}

func TestGenerate_StartsLoadingSession(t *testing.T) {
	env := newTestApp(t)
	a := generate(t, env.app, "octocat")

	assert.Equal(t, model.StateLoading, a.machine.State())
	s := a.machine.Snapshot()
	assert.Equal(t, 3, s.Expected)
	assert.Equal(t, "octocat", s.Config.Subject)
	assert.Equal(t, "default", s.Config.Theme)
	assert.Equal(t, "octocat", a.config.LastSubject)
	assert.Equal(t, []string{"octocat"}, a.config.RecentSubjects)
}

func TestCardLoaded_ReadyOnceAllCardsComplete(t *testing.T) {
	env := newTestApp(t)
	a := generate(t, env.app, "octocat")
	id := a.machine.Active()

	a = apply(t, a, loaded(id, model.KindTertiary, errors.New("status 404")))
	a = apply(t, a, loaded(id, model.KindPrimary, nil))
	assert.Equal(t, model.StateLoading, a.machine.State())

	a, cmd := applyCmd(t, a, loaded(id, model.KindSecondary, nil))
	assert.Equal(t, model.StateReady, a.machine.State())
	require.NotNil(t, cmd, "ready should dispatch a notification")
	_ = cmd()
	assert.Equal(t, []notify.EventType{notify.EventPreviewReady}, env.notifier.events)

	// Duplicates after ready change nothing and notify nobody.
	a, cmd = applyCmd(t, a, loaded(id, model.KindSecondary, nil))
	assert.Nil(t, cmd)
	assert.Equal(t, model.StateReady, a.machine.State())
	assert.Equal(t, 3, a.machine.Snapshot().Completed)
}

func TestTogglePrivate_RestartsAndDiscardsStaleCards(t *testing.T) {
	env := newTestApp(t)
	a := generate(t, env.app, "octocat")
	first := a.machine.Active()

	a = press(t, a, tea.KeyCtrlP)
	second := a.machine.Active()
	require.NotEqual(t, first, second)
	assert.True(t, a.machine.Config().IncludePrivate)
	assert.Equal(t, "octocat", a.machine.Config().Subject)

	for _, kind := range []model.ResourceKind{model.KindPrimary, model.KindSecondary, model.KindTertiary} {
		a = apply(t, a, loaded(first, kind, nil))
	}
	assert.Equal(t, model.StateLoading, a.machine.State())
	assert.Zero(t, a.machine.Snapshot().Completed)

	a = completeAll(t, a)
	assert.Equal(t, model.StateReady, a.machine.State())
}

func TestToggleOptional_ExpectsFourCards(t *testing.T) {
	env := newTestApp(t)
	a := generate(t, env.app, "octocat")
	a = completeAll(t, a)
	require.Equal(t, model.StateReady, a.machine.State())

	a = press(t, a, tea.KeyCtrlO)
	assert.Equal(t, model.StateLoading, a.machine.State())
	assert.Equal(t, 4, a.machine.Snapshot().Expected)

	a = completeAll(t, a)
	md, ok := a.machine.Export()
	require.True(t, ok)
	assert.Contains(t, md, "![Contributions]("+testBaseURL+"/contributions/octocat/svg?theme=default&include_private=false)")
}

func TestToggleBeforeGenerate_OnlyChangesDraft(t *testing.T) {
	env := newTestApp(t)
	a := press(t, env.app, tea.KeyCtrlP)

	assert.True(t, a.draft.IncludePrivate)
	assert.Zero(t, a.machine.Active())
	assert.Equal(t, model.StateIdle, a.machine.State())
}

func TestCopy_DisabledWhileLoading(t *testing.T) {
	env := newTestApp(t)
	a := generate(t, env.app, "octocat")

	a = press(t, a, tea.KeyCtrlY)
	assert.Empty(t, env.writer.writes)
	assert.False(t, a.action.Confirmed())
	msg, isErr := a.statusBar.Message()
	assert.True(t, isErr)
	assert.Equal(t, "Preview still loading", msg)
}

func TestCopy_ConfirmsAndExpiresWithLatestTicket(t *testing.T) {
	env := newTestApp(t)
	a := completeAll(t, generate(t, env.app, "octocat"))

	a = press(t, a, tea.KeyCtrlY)
	require.Len(t, env.writer.writes, 1)
	want, _ := a.machine.Export()
	assert.Equal(t, want, env.writer.writes[0])
	assert.True(t, a.action.Confirmed())

	// A second copy restarts the window: the first timer is inert.
	a = press(t, a, tea.KeyCtrlY)
	a = apply(t, a, CopyExpiredMsg{Ticket: clipboard.Ticket{Seq: 1}})
	assert.True(t, a.action.Confirmed())

	a = apply(t, a, CopyExpiredMsg{Ticket: clipboard.Ticket{Seq: 2}})
	assert.False(t, a.action.Confirmed())
	msg, _ := a.statusBar.Message()
	assert.Empty(t, msg)
}

func TestCopy_FailureLeavesConfirmationUnset(t *testing.T) {
	env := newTestApp(t)
	env.writer.err = errors.New("no clipboard")
	a := completeAll(t, generate(t, env.app, "octocat"))

	a = press(t, a, tea.KeyCtrlY)
	assert.False(t, a.action.Confirmed())
	msg, isErr := a.statusBar.Message()
	assert.True(t, isErr)
	assert.Contains(t, msg, "no clipboard")
}

func TestThemeSelect_RestartsActivePreview(t *testing.T) {
	env := newTestApp(t)
	a := completeAll(t, generate(t, env.app, "octocat"))
	first := a.machine.Active()

	a = press(t, a, tea.KeyTab)
	require.Equal(t, FocusThemes, a.focus)
	a = press(t, a, tea.KeyDown)
	a = press(t, a, tea.KeyEnter)

	assert.Equal(t, "light", a.draft.Theme)
	assert.NotEqual(t, first, a.machine.Active())
	assert.Equal(t, "light", a.machine.Config().Theme)
	assert.Equal(t, model.StateLoading, a.machine.State())
}

func TestFetchCard_ReportsSessionAndKind(t *testing.T) {
	loc := model.ResourceLocator{Kind: model.KindSecondary, URL: testBaseURL + "/languages/octocat/svg"}
	msg := FetchCard(context.Background(), fakeFetcher{}, 7, loc)()

	got, ok := msg.(CardLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, model.SessionID(7), got.Session)
	assert.Equal(t, model.KindSecondary, got.Result.Kind)
	assert.True(t, got.Result.OK())
}

func TestSavePreset_ThroughDialogAndCycle(t *testing.T) {
	env := newTestApp(t)
	a := generate(t, env.app, "octocat")

	a = press(t, a, tea.KeyCtrlS)
	require.True(t, a.showDialog)
	a = typeText(t, a, "main")
	a, cmd := applyCmd(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, a.showDialog)
	require.NotNil(t, cmd)

	saved, ok := cmd().(PresetSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.Err)
	assert.Equal(t, "main", saved.Preset.Name)
	assert.Equal(t, "octocat", saved.Preset.Config.Subject)

	a, cmd = applyCmd(t, a, saved)
	require.NotNil(t, cmd)
	a = apply(t, a, cmd())
	require.Len(t, a.presets, 1)

	a = press(t, a, tea.KeyCtrlP)
	require.True(t, a.machine.Config().IncludePrivate)
	a = apply(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("]"), Alt: true})
	assert.False(t, a.machine.Config().IncludePrivate)
	assert.False(t, a.draft.IncludePrivate)
	assert.Equal(t, "octocat", a.input.Value())
}

func TestQuit_CancelsInFlightFetches(t *testing.T) {
	env := newTestApp(t)
	a := generate(t, env.app, "octocat")
	require.NotNil(t, a.cancel)

	a, cmd := applyCmd(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, a.quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_RendersWithoutPanic(t *testing.T) {
	env := newTestApp(t)
	a := completeAll(t, generate(t, env.app, "octocat"))
	assert.Contains(t, a.View(), "octocat")

	a = press(t, a, tea.KeyF1)
	assert.Contains(t, a.View(), "readmestats")
}
