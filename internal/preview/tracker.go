package preview

import "github.com/lazyvibe/readmestats/internal/model"

// SignalResult describes what a completion signal did to the tracker.
type SignalResult int

const (
	// SignalCounted means the signal completed a previously pending kind.
	SignalCounted SignalResult = iota
	// SignalStale means the signal belongs to a superseded session.
	SignalStale
	// SignalDuplicate means the kind had already completed in this session.
	SignalDuplicate
	// SignalUnexpected means the kind is not part of the current locator set.
	SignalUnexpected
)

func (r SignalResult) String() string {
	switch r {
	case SignalCounted:
		return "counted"
	case SignalStale:
		return "stale"
	case SignalDuplicate:
		return "duplicate"
	case SignalUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// Tracker records which expected kinds have completed in the active session.
// Success and failure both count as completion.
type Tracker struct {
	session   model.SessionID
	expected  map[model.ResourceKind]bool
	completed map[model.ResourceKind]bool
}

// NewTracker returns a tracker with no active session.
func NewTracker() *Tracker {
	return &Tracker{
		expected:  map[model.ResourceKind]bool{},
		completed: map[model.ResourceKind]bool{},
	}
}

// Reset arms the tracker for a new session expecting the given kinds.
func (t *Tracker) Reset(id model.SessionID, kinds []model.ResourceKind) {
	t.session = id
	t.expected = make(map[model.ResourceKind]bool, len(kinds))
	for _, k := range kinds {
		t.expected[k] = true
	}
	t.completed = make(map[model.ResourceKind]bool, len(kinds))
}

// OnSignal records a completion for kind in session id.
func (t *Tracker) OnSignal(id model.SessionID, kind model.ResourceKind) SignalResult {
	if id == 0 || id != t.session {
		return SignalStale
	}
	if !t.expected[kind] {
		return SignalUnexpected
	}
	if t.completed[kind] {
		return SignalDuplicate
	}
	t.completed[kind] = true
	return SignalCounted
}

// Session returns the active session id.
func (t *Tracker) Session() model.SessionID {
	return t.session
}

// Completed returns the number of distinct kinds that have completed.
func (t *Tracker) Completed() int {
	return len(t.completed)
}

// Expected returns the number of kinds the session waits for.
func (t *Tracker) Expected() int {
	return len(t.expected)
}

// IsComplete reports whether every expected kind has completed.
func (t *Tracker) IsComplete() bool {
	return t.session != 0 && t.Completed() >= t.Expected()
}

// Done reports whether kind has completed in the active session.
func (t *Tracker) Done(kind model.ResourceKind) bool {
	return t.completed[kind]
}
