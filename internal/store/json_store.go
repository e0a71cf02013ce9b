package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/lazyvibe/readmestats/internal/model"
)

var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when creating a duplicate entity.
	ErrAlreadyExists = errors.New("already exists")
)

// maxPresets bounds the file; the least recently used presets are dropped.
const maxPresets = 50

// data represents the JSON file structure.
type data struct {
	Presets []model.Preset `json:"presets"`
}

// JSONStore implements PresetStore using JSON file persistence.
type JSONStore struct {
	mu       sync.RWMutex
	path     string
	data     *data
	modified bool
}

// NewJSONStore creates a new JSON file-based store in configDir.
func NewJSONStore(configDir string) (*JSONStore, error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	s := &JSONStore{
		path: filepath.Join(configDir, "presets.json"),
		data: &data{Presets: []model.Preset{}},
	}

	if _, err := os.Stat(s.path); err == nil {
		if err := s.load(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// load reads data from the JSON file.
func (s *JSONStore) load() error {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read presets: %w", err)
	}
	if len(content) == 0 {
		return nil
	}
	if err := json.Unmarshal(content, s.data); err != nil {
		return fmt.Errorf("decode presets: %w", err)
	}
	if s.data.Presets == nil {
		s.data.Presets = []model.Preset{}
	}
	return nil
}

// save writes data to the JSON file.
func (s *JSONStore) save() error {
	content, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, content, 0644); err != nil {
		return fmt.Errorf("write presets: %w", err)
	}
	s.modified = false
	return nil
}

// Close persists any pending changes.
func (s *JSONStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.modified {
		return s.save()
	}
	return nil
}

// List returns all presets sorted by LastUsed descending.
func (s *JSONStore) List(_ context.Context) ([]model.Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Preset, len(s.data.Presets))
	copy(result, s.data.Presets)

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LastUsed > result[j].LastUsed
	})
	return result, nil
}

// Get retrieves a preset by ID.
func (s *JSONStore) Get(_ context.Context, id string) (*model.Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.data.Presets {
		if s.data.Presets[i].ID == id {
			p := s.data.Presets[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// Create adds a new preset.
func (s *JSONStore) Create(_ context.Context, p *model.Preset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.data.Presets {
		if existing.ID == p.ID {
			return ErrAlreadyExists
		}
	}

	s.data.Presets = append(s.data.Presets, *p)
	s.trim()
	s.modified = true
	return s.save()
}

// Save stores p. A preset holding an equal configuration is replaced in
// place, keeping its ID and creation time. The stored preset is returned.
func (s *JSONStore) Save(_ context.Context, p *model.Preset) (*model.Preset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Presets {
		existing := &s.data.Presets[i]
		if existing.ID == p.ID || existing.Config.Equal(p.Config) {
			existing.Name = p.Name
			existing.Config = p.Config
			existing.Touch()
			s.modified = true
			out := *existing
			return &out, s.save()
		}
	}

	s.data.Presets = append(s.data.Presets, *p)
	s.trim()
	s.modified = true
	out := *p
	return &out, s.save()
}

// Touch marks a preset as just used.
func (s *JSONStore) Touch(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Presets {
		if s.data.Presets[i].ID == id {
			s.data.Presets[i].Touch()
			s.modified = true
			return s.save()
		}
	}
	return ErrNotFound
}

// Delete removes a preset by ID.
func (s *JSONStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Presets {
		if s.data.Presets[i].ID == id {
			s.data.Presets = append(s.data.Presets[:i], s.data.Presets[i+1:]...)
			s.modified = true
			return s.save()
		}
	}
	return ErrNotFound
}

// trim drops the least recently used presets beyond maxPresets.
func (s *JSONStore) trim() {
	if len(s.data.Presets) <= maxPresets {
		return
	}
	sort.SliceStable(s.data.Presets, func(i, j int) bool {
		return s.data.Presets[i].LastUsed > s.data.Presets[j].LastUsed
	})
	s.data.Presets = s.data.Presets[:maxPresets]
}
