// Package notify sends desktop and webhook notifications.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/lazyvibe/readmestats/internal/model"
)

// EventType represents a notification event type.
type EventType string

const (
	EventPreviewReady EventType = "preview_ready"
	EventCopied       EventType = "copied"
	EventCopyFailed   EventType = "copy_failed"
)

// Event describes a notification event.
type Event struct {
	Subject   string
	Theme     string
	Type      EventType
	Title     string
	Message   string
	Timestamp time.Time
}

// Dispatcher sends notifications to configured channels.
type Dispatcher struct {
	client *http.Client
	notify func(title, message string) error
}

// NewDispatcher creates a Dispatcher with sensible defaults.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// Dispatch sends a notification event using the given config and returns
// the first delivery error.
func (d *Dispatcher) Dispatch(ctx context.Context, cfg model.NotificationConfig, event Event) error {
	title := strings.TrimSpace(event.Title)
	if title == "" {
		if event.Subject != "" {
			title = "readmestats · " + event.Subject
		} else {
			title = "readmestats"
		}
	}
	message := strings.TrimSpace(event.Message)
	if message == "" {
		message = string(event.Type)
	}
	if len(message) > 800 {
		message = message[:800] + "..."
	}

	var firstErr error
	if cfg.Desktop && d.notify != nil {
		if err := d.notify(title, message); err != nil {
			firstErr = fmt.Errorf("desktop notification: %w", err)
		}
	}

	if cfg.WebhookURL != "" {
		if err := d.postWebhook(ctx, cfg.WebhookURL, title, message, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (d *Dispatcher) postWebhook(ctx context.Context, url, title, message string, event Event) error {
	ts := event.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	payload := map[string]any{
		"subject":   event.Subject,
		"theme":     event.Theme,
		"event":     event.Type,
		"title":     title,
		"message":   message,
		"timestamp": ts.Unix(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook: unexpected status %d", resp.StatusCode)
	}
	return nil
}
