// Package model defines core data structures for readmestats.
package model

// ResourceKind identifies one of the cards that make up a preview.
type ResourceKind string

const (
	// KindPrimary is the main stats card.
	KindPrimary ResourceKind = "primary"
	// KindSecondary is the top languages card.
	KindSecondary ResourceKind = "secondary"
	// KindTertiary is the contribution streak card.
	KindTertiary ResourceKind = "tertiary"
	// KindOptional is the contributions panel, shown only when enabled.
	KindOptional ResourceKind = "optional"
)

// AllKinds lists every kind in preview order.
var AllKinds = []ResourceKind{KindPrimary, KindSecondary, KindTertiary, KindOptional}

// Path returns the service path segment serving this kind.
func (k ResourceKind) Path() string {
	switch k {
	case KindPrimary:
		return "stats"
	case KindSecondary:
		return "languages"
	case KindTertiary:
		return "streak"
	case KindOptional:
		return "contributions"
	default:
		return string(k)
	}
}

// Title returns the human readable panel name.
func (k ResourceKind) Title() string {
	switch k {
	case KindPrimary:
		return "GitHub Stats"
	case KindSecondary:
		return "Top Languages"
	case KindTertiary:
		return "GitHub Streak"
	case KindOptional:
		return "Contributions"
	default:
		return string(k)
	}
}

// Valid reports whether k is one of the known kinds.
func (k ResourceKind) Valid() bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

// LoadState is the aggregate readiness of a preview session.
type LoadState string

const (
	// StateIdle means no session has been started yet.
	StateIdle LoadState = "idle"
	// StateLoading means at least one expected card has not completed.
	StateLoading LoadState = "loading"
	// StateReady means every expected card completed, successfully or not.
	StateReady LoadState = "ready"
)

// SessionID identifies one preview session. Zero means no session.
type SessionID uint64

// ResourceLocator addresses one externally rendered card.
type ResourceLocator struct {
	Kind ResourceKind `json:"kind"`
	URL  string       `json:"url"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	// Desktop enables desktop notifications via system APIs.
	Desktop bool `json:"desktop"`
	// WebhookURL is the optional URL to send webhook notifications.
	WebhookURL string `json:"webhook_url,omitempty"`
}
