// Package app provides application-level configuration and initialization.
package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lazyvibe/readmestats/internal/model"
	"github.com/lazyvibe/readmestats/internal/themes"
)

const (
	// DefaultBaseURL is where the stats rendering service listens by default.
	DefaultBaseURL = "http://localhost:5000/api"

	maxRecentSubjects = 20
)

// LogConfig controls the slog logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`
	// Format is text or json.
	Format string `json:"format,omitempty"`
	// File is where the TUI writes logs. Empty means <configDir>/readmestats.log.
	File string `json:"file,omitempty"`
}

// Config holds the application configuration.
type Config struct {
	// BaseURL is the root of the stats rendering service.
	BaseURL string `json:"base_url"`
	// Theme is the theme preselected at startup.
	Theme string `json:"theme"`
	// LastSubject is the most recently generated username.
	LastSubject string `json:"last_subject,omitempty"`
	// IncludePrivate is the initial include-private toggle.
	IncludePrivate bool `json:"include_private"`
	// IncludeOptional is the initial optional-panel toggle.
	IncludeOptional bool `json:"include_optional"`
	// CopyConfirmMillis is how long the "Copied!" confirmation shows.
	CopyConfirmMillis int `json:"copy_confirm_ms,omitempty"`
	// RequestTimeoutSeconds bounds each card fetch.
	RequestTimeoutSeconds int `json:"request_timeout_seconds,omitempty"`
	// RecentSubjects stores recently used usernames for completion.
	RecentSubjects []string `json:"recent_subjects,omitempty"`
	// Notify configures ready/copy notifications.
	Notify model.NotificationConfig `json:"notify"`
	// Log configures logging.
	Log LogConfig `json:"log"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:               DefaultBaseURL,
		Theme:                 themes.DefaultID,
		CopyConfirmMillis:     2000,
		RequestTimeoutSeconds: 10,
		RecentSubjects:        []string{},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath(configDir string) string {
	return filepath.Join(configDir, "config.json")
}

// ConfigDir returns the readmestats configuration directory.
func ConfigDir() (string, error) {
	// Use XDG_CONFIG_HOME if available, otherwise default to ~/.config
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "readmestats"), nil
}

// LoadConfig loads the configuration from disk.
func LoadConfig(configDir string) (*Config, error) {
	return LoadConfigFile(ConfigPath(configDir))
}

// LoadConfigFile loads the configuration from an explicit path. A missing
// file yields the defaults.
func LoadConfigFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	config.normalize()
	return config, nil
}

// SaveConfig saves the configuration to disk.
func SaveConfig(configDir string, config *Config) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigPath(configDir), data, 0644)
}

// ConfigReader is the subset of viper the overrides need.
type ConfigReader interface {
	GetString(string) string
	GetBool(string) bool
	GetInt(string) int
	IsSet(string) bool
}

// ApplyOverrides merges flag and environment values from r on top of c.
// Only keys that are explicitly set win over the file.
func (c *Config) ApplyOverrides(r ConfigReader) {
	if r == nil {
		return
	}
	if r.IsSet("base_url") && strings.TrimSpace(r.GetString("base_url")) != "" {
		c.BaseURL = strings.TrimSpace(r.GetString("base_url"))
	}
	if r.IsSet("theme") && strings.TrimSpace(r.GetString("theme")) != "" {
		c.Theme = strings.TrimSpace(r.GetString("theme"))
	}
	if r.IsSet("include_private") {
		c.IncludePrivate = r.GetBool("include_private")
	}
	if r.IsSet("include_optional") {
		c.IncludeOptional = r.GetBool("include_optional")
	}
	if r.IsSet("copy_confirm_ms") && r.GetInt("copy_confirm_ms") > 0 {
		c.CopyConfirmMillis = r.GetInt("copy_confirm_ms")
	}
	if r.IsSet("request_timeout_seconds") && r.GetInt("request_timeout_seconds") > 0 {
		c.RequestTimeoutSeconds = r.GetInt("request_timeout_seconds")
	}
	if r.IsSet("notify.desktop") {
		c.Notify.Desktop = r.GetBool("notify.desktop")
	}
	if r.IsSet("notify.webhook_url") {
		c.Notify.WebhookURL = strings.TrimSpace(r.GetString("notify.webhook_url"))
	}
	if v := strings.TrimSpace(r.GetString("logging.level")); r.IsSet("logging.level") && v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(r.GetString("logging.format")); r.IsSet("logging.format") && v != "" {
		c.Log.Format = v
	}
	if v := strings.TrimSpace(r.GetString("logging.file")); r.IsSet("logging.file") && v != "" {
		c.Log.File = v
	}
	c.normalize()
}

// InitialConfiguration returns the request the UI starts with.
func (c *Config) InitialConfiguration() model.Configuration {
	return model.Configuration{
		Subject:         c.LastSubject,
		Theme:           c.Theme,
		IncludePrivate:  c.IncludePrivate,
		IncludeOptional: c.IncludeOptional,
	}
}

// CopyConfirmDuration returns the confirmation window.
func (c *Config) CopyConfirmDuration() time.Duration {
	return time.Duration(c.CopyConfirmMillis) * time.Millisecond
}

// RequestTimeout returns the per-card fetch timeout.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Remember records cfg as the last generated request.
func (c *Config) Remember(cfg model.Configuration) {
	c.LastSubject = cfg.Subject
	c.Theme = cfg.Theme
	c.IncludePrivate = cfg.IncludePrivate
	c.IncludeOptional = cfg.IncludeOptional
	c.AddRecentSubject(cfg.Subject)
}

// AddRecentSubject adds a username to the recent list.
func (c *Config) AddRecentSubject(subject string) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return
	}

	// Remove if already exists
	subjects := make([]string, 0, len(c.RecentSubjects))
	for _, s := range c.RecentSubjects {
		if !strings.EqualFold(s, subject) {
			subjects = append(subjects, s)
		}
	}

	// Add to front
	c.RecentSubjects = append([]string{subject}, subjects...)

	if len(c.RecentSubjects) > maxRecentSubjects {
		c.RecentSubjects = c.RecentSubjects[:maxRecentSubjects]
	}
}

func (c *Config) normalize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if strings.TrimSpace(c.Theme) == "" {
		c.Theme = themes.DefaultID
	}
	if c.CopyConfirmMillis <= 0 {
		c.CopyConfirmMillis = 2000
	}
	if c.RequestTimeoutSeconds <= 0 {
		c.RequestTimeoutSeconds = 10
	}
}
