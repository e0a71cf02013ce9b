package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lazyvibe/readmestats/internal/model"
	"github.com/lazyvibe/readmestats/internal/preview"
)

// addConfigurationFlags registers the flags shared by markdown and check.
func addConfigurationFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("user", "u", "", "GitHub username (defaults to the last one used).")
	cmd.Flags().StringP("theme", "t", "", "Theme id (defaults to the configured theme).")
	cmd.Flags().Bool("private", false, "Include private contributions.")
	cmd.Flags().Bool("optional", false, "Add the contributions panel.")
}

// configurationFromFlags starts from the saved form and applies any flag
// the user passed explicitly.
func (e *runtimeEnv) configurationFromFlags(cmd *cobra.Command) (model.Configuration, error) {
	cfg := e.config.InitialConfiguration()

	if cmd.Flags().Changed("user") {
		user, _ := cmd.Flags().GetString("user")
		cfg.Subject = user
	}
	if cmd.Flags().Changed("theme") {
		theme, _ := cmd.Flags().GetString("theme")
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("private") {
		cfg.IncludePrivate, _ = cmd.Flags().GetBool("private")
	}
	if cmd.Flags().Changed("optional") {
		cfg.IncludeOptional, _ = cmd.Flags().GetBool("optional")
	}

	cfg.Subject = strings.TrimSpace(cfg.Subject)
	cfg.Theme = strings.TrimSpace(cfg.Theme)
	if cfg.Subject == "" {
		return cfg, fmt.Errorf("missing username: pass --user")
	}
	return cfg, nil
}

func newMarkdownCmd(env *runtimeEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "markdown",
		Short: "Print the README Markdown for a configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := env.configurationFromFlags(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), preview.FormatMarkdown(env.config.BaseURL, cfg))
			return err
		},
	}
	addConfigurationFlags(cmd)
	return cmd
}
