package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazyvibe/readmestats/internal/model"
)

const testBase = "http://localhost:5000/api"

func octocat() model.Configuration {
	return model.Configuration{Subject: "octocat", Theme: "nord"}
}

func TestBuildLocators_KindSets(t *testing.T) {
	tests := []struct {
		name     string
		optional bool
		want     []model.ResourceKind
	}{
		{"without optional panel", false, []model.ResourceKind{model.KindPrimary, model.KindSecondary, model.KindTertiary}},
		{"with optional panel", true, []model.ResourceKind{model.KindPrimary, model.KindSecondary, model.KindTertiary, model.KindOptional}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := octocat()
			cfg.IncludeOptional = tt.optional
			locs, expected := BuildLocators(testBase, cfg)
			require.Len(t, locs, len(tt.want))
			assert.Equal(t, len(tt.want), expected)
			for i, loc := range locs {
				assert.Equal(t, tt.want[i], loc.Kind)
				assert.NotEmpty(t, loc.URL)
			}
		})
	}
}

func TestBuildLocators_URLShape(t *testing.T) {
	locs, _ := BuildLocators(testBase+"/", octocat())
	assert.Equal(t, "http://localhost:5000/api/stats/octocat/svg?theme=nord&include_private=false", locs[0].URL)
	assert.Equal(t, "http://localhost:5000/api/languages/octocat/svg?theme=nord&include_private=false", locs[1].URL)
	assert.Equal(t, "http://localhost:5000/api/streak/octocat/svg?theme=nord&include_private=false", locs[2].URL)

	cfg := octocat()
	cfg.IncludePrivate = true
	cfg.IncludeOptional = true
	locs, _ = BuildLocators(testBase, cfg)
	assert.Equal(t, "http://localhost:5000/api/contributions/octocat/svg?theme=nord&include_private=true", locs[3].URL)
}

func TestBuildLocators_Deterministic(t *testing.T) {
	cfg := model.Configuration{Subject: "a b/c", Theme: "solarized dark", IncludePrivate: true, IncludeOptional: true}
	first, _ := BuildLocators(testBase, cfg)
	second, _ := BuildLocators(testBase, cfg)
	assert.Equal(t, first, second)
	assert.Contains(t, first[0].URL, "/stats/a%20b%2Fc/svg?theme=solarized+dark")
}

func TestBuildLocators_UnknownThemePassesThrough(t *testing.T) {
	cfg := octocat()
	cfg.Theme = "not-a-theme"
	locs, _ := BuildLocators(testBase, cfg)
	for _, loc := range locs {
		assert.Contains(t, loc.URL, "theme=not-a-theme")
	}
}

func TestTracker_Signals(t *testing.T) {
	tr := NewTracker()
	assert.Equal(t, SignalStale, tr.OnSignal(1, model.KindPrimary))
	assert.False(t, tr.IsComplete())

	tr.Reset(7, []model.ResourceKind{model.KindPrimary, model.KindSecondary})
	assert.Equal(t, SignalStale, tr.OnSignal(6, model.KindPrimary))
	assert.Equal(t, SignalUnexpected, tr.OnSignal(7, model.KindOptional))
	assert.Equal(t, SignalCounted, tr.OnSignal(7, model.KindPrimary))
	assert.Equal(t, SignalDuplicate, tr.OnSignal(7, model.KindPrimary))
	assert.Equal(t, 1, tr.Completed())
	assert.False(t, tr.IsComplete())
	assert.Equal(t, SignalCounted, tr.OnSignal(7, model.KindSecondary))
	assert.True(t, tr.IsComplete())
}

func TestMachine_ReadyAfterAllKindsAnyOrder(t *testing.T) {
	orders := [][]model.ResourceKind{
		{model.KindSecondary, model.KindPrimary, model.KindTertiary},
		{model.KindTertiary, model.KindSecondary, model.KindPrimary},
		{model.KindPrimary, model.KindPrimary, model.KindTertiary, model.KindSecondary, model.KindTertiary},
	}
	for _, order := range orders {
		readyCalls := 0
		m := NewMachine(testBase, WithOnReady(func(Session) { readyCalls++ }))
		s := m.Start(octocat())
		require.Equal(t, model.StateLoading, s.State)
		require.Equal(t, 3, s.Expected)

		becameReady := 0
		for _, kind := range order {
			if m.Signal(s.ID, kind).BecameReady {
				becameReady++
			}
		}
		assert.Equal(t, model.StateReady, m.State())
		assert.Equal(t, 1, becameReady)
		assert.Equal(t, 1, readyCalls)
		assert.Equal(t, 3, m.Snapshot().Completed)
	}
}

func TestMachine_StaysLoadingWithoutAllSignals(t *testing.T) {
	m := NewMachine(testBase)
	s := m.Start(octocat())
	m.Signal(s.ID, model.KindPrimary)
	m.Signal(s.ID, model.KindSecondary)
	assert.Equal(t, model.StateLoading, m.State())
	assert.Equal(t, 2, m.Snapshot().Completed)
	_, ok := m.Export()
	assert.False(t, ok)
}

func TestMachine_DuplicateDoesNotDoubleCount(t *testing.T) {
	m := NewMachine(testBase)
	s := m.Start(octocat())
	tr := m.Signal(s.ID, model.KindPrimary)
	assert.Equal(t, SignalCounted, tr.Result)
	tr = m.Signal(s.ID, model.KindPrimary)
	assert.Equal(t, SignalDuplicate, tr.Result)
	assert.Equal(t, 1, m.Snapshot().Completed)
}

func TestMachine_OptionalSignalIgnoredWhenPanelOff(t *testing.T) {
	m := NewMachine(testBase)
	s := m.Start(octocat())
	tr := m.Signal(s.ID, model.KindOptional)
	assert.Equal(t, SignalUnexpected, tr.Result)
	assert.Equal(t, 0, m.Snapshot().Completed)
}

func TestMachine_RestartDiscardsStaleSignals(t *testing.T) {
	m := NewMachine(testBase)
	first := m.Start(octocat())
	for _, kind := range first.Config.Kinds() {
		m.Signal(first.ID, kind)
	}
	require.Equal(t, model.StateReady, m.State())

	cfg := octocat()
	cfg.IncludePrivate = true
	second := m.Start(cfg)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, model.StateLoading, second.State)
	assert.Equal(t, 3, second.Expected)
	assert.Equal(t, 0, second.Completed)

	tr := m.Signal(first.ID, model.KindPrimary)
	assert.Equal(t, SignalStale, tr.Result)
	assert.False(t, tr.BecameReady)
	assert.Equal(t, 0, m.Snapshot().Completed)
	assert.Equal(t, model.StateLoading, m.State())
}

func TestMachine_RestartMidFlight(t *testing.T) {
	m := NewMachine(testBase)
	cfg := octocat()
	cfg.IncludeOptional = true
	first := m.Start(cfg)
	m.Signal(first.ID, model.KindPrimary)
	m.Signal(first.ID, model.KindSecondary)

	cfg.Theme = "dracula"
	second := m.Start(cfg)
	assert.Equal(t, 0, second.Completed)
	assert.Equal(t, 4, second.Expected)

	m.Signal(first.ID, model.KindTertiary)
	m.Signal(first.ID, model.KindOptional)
	assert.Equal(t, model.StateLoading, m.State())
	assert.False(t, m.Snapshot().Done(model.KindPrimary))

	for _, kind := range cfg.Kinds() {
		m.Signal(second.ID, kind)
	}
	assert.Equal(t, model.StateReady, m.State())
}

func TestMachine_ExportWhenReady(t *testing.T) {
	m := NewMachine(testBase)
	s := m.Start(octocat())
	for _, kind := range []model.ResourceKind{model.KindSecondary, model.KindPrimary, model.KindTertiary} {
		m.Signal(s.ID, kind)
	}
	text, ok := m.Export()
	require.True(t, ok)
	lines := strings.Split(text, "\n\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Contains(t, line, "theme=nord&include_private=false")
	}
}

func TestFormatMarkdown(t *testing.T) {
	cfg := octocat()
	text := FormatMarkdown(testBase, cfg)
	assert.Equal(t,
		"![octocat's Stats](http://localhost:5000/api/stats/octocat/svg?theme=nord&include_private=false)\n\n"+
			"![Top Langs](http://localhost:5000/api/languages/octocat/svg?theme=nord&include_private=false)\n\n"+
			"![Streak](http://localhost:5000/api/streak/octocat/svg?theme=nord&include_private=false)",
		text)
	assert.NotContains(t, text, "Contributions")

	cfg.IncludeOptional = true
	text = FormatMarkdown(testBase, cfg)
	blocks := strings.Split(text, "\n\n")
	require.Len(t, blocks, 4)
	assert.True(t, strings.HasPrefix(blocks[0], "![octocat's Stats]"))
	assert.True(t, strings.HasPrefix(blocks[1], "![Top Langs]"))
	assert.True(t, strings.HasPrefix(blocks[2], "![Streak]"))
	assert.True(t, strings.HasPrefix(blocks[3], "![Contributions]"))
}
