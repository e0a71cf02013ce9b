package preview

import (
	"log/slog"

	"github.com/lazyvibe/readmestats/internal/model"
)

// Session is a read-only view of the active preview session.
type Session struct {
	ID        model.SessionID
	Config    model.Configuration
	Locators  []model.ResourceLocator
	Expected  int
	Completed int
	State     model.LoadState
	done      map[model.ResourceKind]bool
}

// Done reports whether kind completed in this session.
func (s Session) Done(kind model.ResourceKind) bool {
	return s.done[kind]
}

// Transition is the outcome of routing one completion signal.
type Transition struct {
	Result SignalResult
	// BecameReady is true only for the signal that completed the session.
	BecameReady bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for transitions and discarded signals.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithOnReady registers a hook called once per session on loading -> ready.
func WithOnReady(fn func(Session)) Option {
	return func(m *Machine) {
		m.onReady = fn
	}
}

// Machine derives the aggregate loading/ready state of a preview.
// It is not safe for concurrent use; callers serialize events, as the
// bubbletea update loop does.
type Machine struct {
	baseURL  string
	logger   *slog.Logger
	onReady  func(Session)
	tracker  *Tracker
	lastID   model.SessionID
	config   model.Configuration
	locators []model.ResourceLocator
	state    model.LoadState
}

// NewMachine creates an idle machine building locators against baseURL.
func NewMachine(baseURL string, opts ...Option) *Machine {
	m := &Machine{
		baseURL: baseURL,
		logger:  slog.Default(),
		tracker: NewTracker(),
		state:   model.StateIdle,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// BaseURL returns the service root locators are built against.
func (m *Machine) BaseURL() string {
	return m.baseURL
}

// Start supersedes any active session and begins loading cfg.
func (m *Machine) Start(cfg model.Configuration) Session {
	previous := m.tracker.Session()
	m.lastID++
	m.config = cfg
	m.locators, _ = BuildLocators(m.baseURL, cfg)
	m.tracker.Reset(m.lastID, cfg.Kinds())
	m.state = model.StateLoading

	m.logger.Debug("preview session started",
		"session", m.lastID,
		"superseded", previous,
		"config", cfg.String(),
		"expected", m.tracker.Expected())
	return m.Snapshot()
}

// Signal records that kind finished loading in session id, successfully or
// not. Stale, duplicate and unexpected signals leave the session untouched.
func (m *Machine) Signal(id model.SessionID, kind model.ResourceKind) Transition {
	result := m.tracker.OnSignal(id, kind)
	if result != SignalCounted {
		m.logger.Debug("preview signal ignored",
			"session", id,
			"active", m.tracker.Session(),
			"kind", kind,
			"reason", result.String())
		return Transition{Result: result}
	}

	if m.state != model.StateLoading || !m.tracker.IsComplete() {
		return Transition{Result: result}
	}

	m.state = model.StateReady
	snap := m.Snapshot()
	m.logger.Info("preview ready",
		"session", snap.ID,
		"config", snap.Config.String(),
		"completed", snap.Completed)
	if m.onReady != nil {
		m.onReady(snap)
	}
	return Transition{Result: result, BecameReady: true}
}

// State returns the aggregate state of the active session.
func (m *Machine) State() model.LoadState {
	return m.state
}

// Active returns the active session id, or zero before the first Start.
func (m *Machine) Active() model.SessionID {
	return m.tracker.Session()
}

// Config returns the configuration of the active session.
func (m *Machine) Config() model.Configuration {
	return m.config
}

// Snapshot returns a copy of the active session.
func (m *Machine) Snapshot() Session {
	done := make(map[model.ResourceKind]bool, len(m.locators))
	for _, loc := range m.locators {
		if m.tracker.Done(loc.Kind) {
			done[loc.Kind] = true
		}
	}
	locators := make([]model.ResourceLocator, len(m.locators))
	copy(locators, m.locators)
	return Session{
		ID:        m.tracker.Session(),
		Config:    m.config,
		Locators:  locators,
		Expected:  m.tracker.Expected(),
		Completed: m.tracker.Completed(),
		State:     m.state,
		done:      done,
	}
}

// Export returns the shareable Markdown once the session is ready.
func (m *Machine) Export() (string, bool) {
	if m.state != model.StateReady {
		return "", false
	}
	return FormatMarkdown(m.baseURL, m.config), true
}
