package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/lazyvibe/readmestats/internal/clipboard"
	"github.com/lazyvibe/readmestats/internal/fetch"
	"github.com/lazyvibe/readmestats/internal/model"
	"github.com/lazyvibe/readmestats/internal/preview"
)

// ErrCardsFailed is returned by check when at least one card did not load.
var ErrCardsFailed = errors.New("some cards failed to load")

func newCheckCmd(env *runtimeEnv) *cobra.Command {
	var (
		copyMarkdown bool
		timeout      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load every card once and print its status and the Markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := env.configurationFromFlags(cmd)
			if err != nil {
				return err
			}
			logger, err := env.stderrLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			report, err := runCheck(ctx, env.config.BaseURL, env.fetcher(logger), cfg, logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := report.Print(out); err != nil {
				return err
			}

			if copyMarkdown {
				action := clipboard.NewAction(env.deps.Clipboard, env.config.CopyConfirmDuration())
				if _, err := action.Copy(report.Markdown); err != nil {
					return err
				}
				fmt.Fprintln(out, "\nCopied!")
			}
			if report.Failed() > 0 {
				return fmt.Errorf("%w: %d of %d", ErrCardsFailed, report.Failed(), len(report.Results))
			}
			return nil
		},
	}
	addConfigurationFlags(cmd)
	cmd.Flags().BoolVar(&copyMarkdown, "copy", false, "Copy the Markdown to the clipboard once ready.")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Give up if the preview is not ready in time.")
	return cmd
}

// CheckReport is the outcome of a headless preview.
type CheckReport struct {
	Session  preview.Session
	Results  []fetch.Result
	Markdown string
}

// Failed counts the cards that did not load.
func (r CheckReport) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.OK() {
			n++
		}
	}
	return n
}

// Print writes one status line per card followed by the Markdown.
func (r CheckReport) Print(w io.Writer) error {
	byKind := make(map[model.ResourceKind]fetch.Result, len(r.Results))
	for _, res := range r.Results {
		byKind[res.Kind] = res
	}
	for _, loc := range r.Session.Locators {
		res := byKind[loc.Kind]
		var err error
		if res.OK() {
			_, err = fmt.Fprintf(w, "✓ %-14s %3d  %6d bytes  %s\n",
				loc.Kind.Title(), res.Status, res.Bytes, res.Duration.Round(time.Millisecond))
		} else {
			_, err = fmt.Fprintf(w, "✗ %-14s %v\n", loc.Kind.Title(), res.Err)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%s\n", r.Markdown)
	return err
}

// runCheck drives one preview session to ready from a single select loop.
func runCheck(ctx context.Context, baseURL string, f fetch.Fetcher, cfg model.Configuration, logger *slog.Logger) (CheckReport, error) {
	var ready preview.Session
	machine := preview.NewMachine(baseURL,
		preview.WithLogger(logger),
		preview.WithOnReady(func(s preview.Session) { ready = s }),
	)
	session := machine.Start(cfg)

	report := CheckReport{Session: session}
	results := fetch.FetchAll(ctx, f, session.Locators)
	for machine.State() != model.StateReady {
		select {
		case res, ok := <-results:
			if !ok {
				return report, fmt.Errorf("preview incomplete: %d of %d cards reported",
					machine.Snapshot().Completed, session.Expected)
			}
			if tr := machine.Signal(session.ID, res.Kind); tr.Result == preview.SignalCounted {
				report.Results = append(report.Results, res)
			}
		case <-ctx.Done():
			return report, fmt.Errorf("preview not ready: %w", ctx.Err())
		}
	}

	report.Session = ready
	report.Markdown, _ = machine.Export()
	return report, nil
}
