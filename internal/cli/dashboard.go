package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func addDashboard(topLevel *cobra.Command, g *globalOptions) {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"upcoming"},
		Short:   "show the nearest pending assignments across all tabs",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			e, err := openEnv(ctx, g)
			if err != nil {
				return err
			}
			defer e.Close()

			entries := e.mgr.Dashboard(ctx)
			w := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(w, "Nothing due.")
				return nil
			}
			printDashboard(w, entries)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
