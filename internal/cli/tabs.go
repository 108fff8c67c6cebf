package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func addTabs(topLevel *cobra.Command, g *globalOptions) {
	cmd := &cobra.Command{
		Use:   "tabs",
		Short: "list and manage tabs",
		Example: `
assignments tabs
assignments tabs add "Biology 101"
assignments tabs rename "Biology 101" "Biology 102"
assignments tabs delete "Biology 102"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listTabs(cmd, g)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "list tabs with assignment counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listTabs(cmd, g)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add NAME",
		Short: "create a tab",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := openEnv(ctx, g)
			if err != nil {
				return err
			}
			defer e.Close()

			created, err := e.mgr.AddTab(ctx, args[0])
			if err != nil {
				return err
			}
			if !created {
				return fmt.Errorf("tab %q already exists", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added tab %q\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename OLD NEW",
		Short: "rename a tab, keeping its assignments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := openEnv(ctx, g)
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.requireTab(ctx, args[0]); err != nil {
				return err
			}
			if err := e.mgr.RenameTab(ctx, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %q to %q\n", args[0], args[1])
			return nil
		},
	})

	var yes bool
	del := &cobra.Command{
		Use:   "delete NAME",
		Short: "delete a tab and all of its assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("deleting a tab removes its assignments; pass --yes to confirm")
			}
			ctx := context.Background()
			e, err := openEnv(ctx, g)
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.requireTab(ctx, args[0]); err != nil {
				return err
			}
			if err := e.mgr.DeleteTab(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted tab %q\n", args[0])
			return nil
		},
	}
	del.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion")
	cmd.AddCommand(del)

	topLevel.AddCommand(cmd)
}

func listTabs(cmd *cobra.Command, g *globalOptions) error {
	ctx := context.Background()
	e, err := openEnv(ctx, g)
	if err != nil {
		return err
	}
	defer e.Close()

	tabs, err := e.mgr.Tabs(ctx)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, t := range tabs {
		total, completed, err := e.mgr.TabSummary(ctx, t)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d/%d done\n", t, completed, total)
	}
	return nil
}
