package model

import (
	"fmt"
	"strings"
)

// Configuration is one generation request. It is a value type; any field
// change means a different request.
type Configuration struct {
	// Subject is the GitHub username the cards describe.
	Subject string `json:"subject"`
	// Theme is a theme identifier. Unknown ids are passed through.
	Theme string `json:"theme"`
	// IncludePrivate asks the service to count private contributions.
	IncludePrivate bool `json:"include_private"`
	// IncludeOptional adds the contributions panel.
	IncludeOptional bool `json:"include_optional"`
}

// Equal reports whether two configurations describe the same request.
func (c Configuration) Equal(other Configuration) bool {
	return c == other
}

// Kinds returns the ordered card kinds this configuration renders.
func (c Configuration) Kinds() []ResourceKind {
	kinds := []ResourceKind{KindPrimary, KindSecondary, KindTertiary}
	if c.IncludeOptional {
		kinds = append(kinds, KindOptional)
	}
	return kinds
}

// WithSubject returns a copy with the subject trimmed and replaced.
func (c Configuration) WithSubject(subject string) Configuration {
	c.Subject = strings.TrimSpace(subject)
	return c
}

// String renders a compact description for logs and the status bar.
func (c Configuration) String() string {
	return fmt.Sprintf("%s/%s private=%t optional=%t", c.Subject, c.Theme, c.IncludePrivate, c.IncludeOptional)
}
