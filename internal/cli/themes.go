package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lazyvibe/readmestats/internal/themes"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available card themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCOLOR")
			for _, t := range themes.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, t.Name, string(t.Color))
			}
			return tw.Flush()
		},
	}
}
