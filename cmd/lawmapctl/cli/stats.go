package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"lawmap/application/queries"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "print workspace statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := newContainer()
			if err != nil {
				return err
			}
			defer container.Shutdown()

			result, err := container.QueryBus.Ask(context.Background(), queries.GetStatsQuery{})
			if err != nil {
				return err
			}
			stats, ok := result.(*queries.GetStatsResult)
			if !ok {
				return fmt.Errorf("unexpected stats result type %T", result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "articles:     %d (in %d categories)\n", stats.Articles, stats.Categories)
			fmt.Fprintf(out, "regulations:  %d\n", stats.Regulations)
			fmt.Fprintf(out, "links:        %d (across %d articles)\n", stats.Links, stats.ArticlesWithLinks)
			fmt.Fprintf(out, "notes:        %d (across %d articles)\n", stats.Notes, stats.ArticlesWithNotes)
			fmt.Fprintf(out, "themes:       %d\n", stats.Themes)

			if len(stats.LinksByCategory) > 0 {
				fmt.Fprintln(out, "links by category:")
				keys := make([]string, 0, len(stats.LinksByCategory))
				for k := range stats.LinksByCategory {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintf(out, "  %-12s %d\n", k, stats.LinksByCategory[k])
				}
			}
			return nil
		},
	}
}
