// Package clipboard provides the copy action and its timed confirmation.
package clipboard

import (
	"errors"
	"fmt"
	"time"

	sysclip "github.com/atotto/clipboard"
)

// DefaultConfirmDuration is how long the copy confirmation stays visible.
const DefaultConfirmDuration = 2 * time.Second

// ErrEmptyText is returned when there is nothing to copy.
var ErrEmptyText = errors.New("nothing to copy")

// Writer is the host clipboard capability.
type Writer interface {
	WriteAll(text string) error
}

// SystemWriter writes to the OS clipboard.
type SystemWriter struct{}

// WriteAll copies text to the system clipboard.
func (SystemWriter) WriteAll(text string) error {
	if sysclip.Unsupported {
		return errors.New("clipboard unsupported on this system")
	}
	return sysclip.WriteAll(text)
}

// Ticket identifies the reset timer armed by a successful copy.
type Ticket struct {
	Seq   uint64
	After time.Duration
}

// Action copies text and keeps a short-lived confirmation flag. Every
// successful copy issues a new ticket; only the latest ticket may clear
// the confirmation, so a re-copy restarts the window.
type Action struct {
	writer    Writer
	duration  time.Duration
	seq       uint64
	confirmed bool
}

// NewAction creates an action writing through w. A non-positive duration
// falls back to DefaultConfirmDuration.
func NewAction(w Writer, d time.Duration) *Action {
	if w == nil {
		w = SystemWriter{}
	}
	if d <= 0 {
		d = DefaultConfirmDuration
	}
	return &Action{writer: w, duration: d}
}

// Copy writes text to the clipboard. On success the confirmation is set
// and the returned ticket should be handed back to Expire after
// Ticket.After. On failure the confirmation is left untouched.
func (a *Action) Copy(text string) (Ticket, error) {
	if text == "" {
		return Ticket{}, ErrEmptyText
	}
	if err := a.writer.WriteAll(text); err != nil {
		return Ticket{}, fmt.Errorf("copy to clipboard: %w", err)
	}
	a.seq++
	a.confirmed = true
	return Ticket{Seq: a.seq, After: a.duration}, nil
}

// Expire clears the confirmation if t is the most recent ticket and
// reports whether it did.
func (a *Action) Expire(t Ticket) bool {
	if t.Seq == 0 || t.Seq != a.seq || !a.confirmed {
		return false
	}
	a.confirmed = false
	return true
}

// Confirmed reports whether the confirmation is showing.
func (a *Action) Confirmed() bool {
	return a.confirmed
}

// Duration returns the confirmation window.
func (a *Action) Duration() time.Duration {
	return a.duration
}
