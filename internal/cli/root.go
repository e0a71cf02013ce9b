// Package cli wires the readmestats commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lazyvibe/readmestats/internal/app"
	"github.com/lazyvibe/readmestats/internal/clipboard"
	"github.com/lazyvibe/readmestats/internal/fetch"
	"github.com/lazyvibe/readmestats/internal/logutil"
	"github.com/lazyvibe/readmestats/pkg/utils"
)

const envPrefix = "READMESTATS"

// Dependencies lets callers replace the collaborators that touch the
// outside world.
type Dependencies struct {
	Version   string
	Fetcher   fetch.Fetcher
	Clipboard clipboard.Writer
}

// runtimeEnv is what every command needs once flags are parsed.
type runtimeEnv struct {
	v         *viper.Viper
	deps      Dependencies
	config    *app.Config
	configDir string
}

// Execute runs the root command and exits non-zero on failure.
func Execute(version string) {
	root := NewRootCmd(Dependencies{Version: version})
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. Each call owns its own viper
// instance so commands can be built repeatedly in tests.
func NewRootCmd(deps Dependencies) *cobra.Command {
	env := &runtimeEnv{v: viper.New(), deps: deps}

	cmd := &cobra.Command{
		Use:          "readmestats",
		Short:        "Preview GitHub README stats cards and copy their Markdown",
		Version:      deps.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return env.load()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(env)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "Config file path (defaults to $XDG_CONFIG_HOME/readmestats/config.json).")
	pf.String("base-url", "", "Root URL of the stats rendering service.")
	pf.String("log-level", "", "Logging level: debug|info|warn|error (defaults to info).")
	pf.String("log-format", "", "Logging format: text|json.")
	pf.String("log-file", "", "Log file used by the TUI (defaults to <config dir>/readmestats.log).")

	_ = env.v.BindPFlag("config", pf.Lookup("config"))
	_ = env.v.BindPFlag("base_url", pf.Lookup("base-url"))
	_ = env.v.BindPFlag("logging.level", pf.Lookup("log-level"))
	_ = env.v.BindPFlag("logging.format", pf.Lookup("log-format"))
	_ = env.v.BindPFlag("logging.file", pf.Lookup("log-file"))

	cmd.AddCommand(newMarkdownCmd(env))
	cmd.AddCommand(newCheckCmd(env))
	cmd.AddCommand(newThemesCmd())
	return cmd
}

// load reads the JSON config and layers flags and environment on top.
func (e *runtimeEnv) load() error {
	e.v.SetEnvPrefix(envPrefix)
	e.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	e.v.AutomaticEnv()

	dir, err := app.ConfigDir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	path := utils.ExpandPath(e.v.GetString("config"))
	if path == "" {
		path = app.ConfigPath(dir)
	} else {
		dir = filepath.Dir(path)
	}

	cfg, err := app.LoadConfigFile(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyOverrides(e.v)

	e.config = cfg
	e.configDir = dir
	return nil
}

// stderrLogger is the logger for headless commands.
func (e *runtimeEnv) stderrLogger(w io.Writer) (*slog.Logger, error) {
	return logutil.New(w, e.loggerConfig())
}

func (e *runtimeEnv) loggerConfig() logutil.LoggerConfig {
	return logutil.LoggerConfig{
		Level:  e.config.Log.Level,
		Format: e.config.Log.Format,
	}
}

func (e *runtimeEnv) fetcher(logger *slog.Logger) fetch.Fetcher {
	if e.deps.Fetcher != nil {
		return e.deps.Fetcher
	}
	return fetch.NewHTTPFetcher(e.config.RequestTimeout(), logger)
}
