// Package store provides data persistence abstractions for readmestats.
package store

import (
	"context"

	"github.com/lazyvibe/readmestats/internal/model"
)

// PresetStore defines the interface for preset persistence.
type PresetStore interface {
	// List returns all presets sorted by LastUsed descending.
	List(ctx context.Context) ([]model.Preset, error)
	// Get retrieves a preset by its ID.
	Get(ctx context.Context, id string) (*model.Preset, error)
	// Create adds a new preset.
	Create(ctx context.Context, p *model.Preset) error
	// Save stores p, replacing a preset that holds the same configuration.
	Save(ctx context.Context, p *model.Preset) (*model.Preset, error)
	// Touch marks a preset as just used.
	Touch(ctx context.Context, id string) error
	// Delete removes a preset by its ID.
	Delete(ctx context.Context, id string) error
	// Close releases any resources held by the store.
	Close() error
}
