package cli

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lazyvibe/readmestats/internal/logutil"
	"github.com/lazyvibe/readmestats/internal/notify"
	"github.com/lazyvibe/readmestats/internal/store"
	"github.com/lazyvibe/readmestats/internal/ui"
	"github.com/lazyvibe/readmestats/pkg/utils"
)

// runTUI starts the interactive previewer. The alternate screen owns the
// terminal, so logs go to a file.
func runTUI(env *runtimeEnv) error {
	logPath := utils.ExpandPath(env.config.Log.File)
	if logPath == "" {
		logPath = filepath.Join(env.configDir, "readmestats.log")
	}
	logger, closer, err := logutil.NewFile(logPath, env.loggerConfig())
	if err != nil {
		return err
	}
	defer closer.Close()

	s, err := store.NewJSONStore(env.configDir)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer s.Close()

	logger.Info("starting",
		"version", env.deps.Version,
		"base_url", env.config.BaseURL,
		"config_dir", env.configDir)

	application := ui.New(ui.Dependencies{
		Config:    env.config,
		ConfigDir: env.configDir,
		Store:     s,
		Fetcher:   env.fetcher(logger),
		Clipboard: env.deps.Clipboard,
		Notifier:  notify.NewDispatcher(),
		Logger:    logger,
		Version:   env.deps.Version,
	})

	p := tea.NewProgram(
		application,
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
