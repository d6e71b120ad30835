package cli

import (
	"fmt"

	"github.com/lumipallolabs/hashseek/internal/ui"
	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show lifetime usage totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.stats.Snapshot()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %d\n", ui.LabelStyle.Render("Searches:"), s.Searches)
			fmt.Fprintf(w, "%s %d\n", ui.LabelStyle.Render("Files hashed:"), s.FilesHashed)
			fmt.Fprintf(w, "%s %d\n", ui.LabelStyle.Render("Matches found:"), s.MatchesFound)
			if s.LastRoot != "" {
				fmt.Fprintf(w, "%s %s\n", ui.LabelStyle.Render("Last searched:"), ui.PathStyle.Render(s.LastRoot))
			}
			return nil
		},
	}
}
