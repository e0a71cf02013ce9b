package model

import (
	"time"

	"github.com/google/uuid"
)

// Preset is a saved configuration.
type Preset struct {
	// ID is the unique identifier for this preset.
	ID string `json:"id"`
	// Name is the display name for the preset.
	Name string `json:"name"`
	// Config is the saved request.
	Config Configuration `json:"config"`
	// LastUsed is the Unix timestamp of the last time the preset was applied.
	LastUsed int64 `json:"last_used"`
	// CreatedAt is when the preset was saved.
	CreatedAt int64 `json:"created_at"`
}

// NewPreset creates a new preset with a generated UUID.
func NewPreset(name string, cfg Configuration) *Preset {
	now := time.Now().Unix()
	return &Preset{
		ID:        uuid.New().String(),
		Name:      name,
		Config:    cfg,
		CreatedAt: now,
		LastUsed:  now,
	}
}

// Touch updates the LastUsed timestamp to now.
func (p *Preset) Touch() {
	p.LastUsed = time.Now().Unix()
}

// DisplayName returns the name to display in the UI.
// Falls back to subject and theme if name is empty.
func (p *Preset) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	if p.Config.Theme == "" {
		return p.Config.Subject
	}
	return p.Config.Subject + " · " + p.Config.Theme
}
