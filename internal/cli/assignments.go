package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nhle/assignment-tracker/internal/dateutil"
	"github.com/nhle/assignment-tracker/internal/tracker"
)

type assignmentOptions struct {
	Tab   string
	Title string
	Due   string
	Notes string
	Sort  string
	Desc  bool
	Yes   bool
}

func addAdd(topLevel *cobra.Command, g *globalOptions) {
	o := &assignmentOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "add an assignment to a tab",
		Example: `
assignments add --tab "Biology 101" --title "Lab report" --due 2024-05-01
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			e, err := openEnv(ctx, g)
			if err != nil {
				return err
			}
			defer e.Close()

			tab := o.Tab
			if tab == "" {
				tab = e.cfg.Tabs.DefaultName
			}
			if err := e.requireTab(ctx, tab); err != nil {
				return err
			}
			id, err := e.mgr.AddAssignment(ctx, tracker.Input{
				Tab:     tab,
				Title:   o.Title,
				DueDate: o.Due,
				Notes:   o.Notes,
			})
			if err != nil {
				var fe *dateutil.FormatError
				if errors.As(err, &fe) {
					return fmt.Errorf("invalid --due %q: use %s", fe.Text, fe.Expected)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added #%d to %q\n", id, tab)
			return nil
		},
	}
	cmd.Flags().StringVar(&o.Tab, "tab", "", "tab to add to (default: the configured default tab)")
	cmd.Flags().StringVar(&o.Title, "title", "", "assignment title")
	cmd.Flags().StringVar(&o.Due, "due", "", "due date, "+dateutil.FormatHint)
	cmd.Flags().StringVar(&o.Notes, "notes", "", "optional notes")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("due")

	topLevel.AddCommand(cmd)
}

func addList(topLevel *cobra.Command, g *globalOptions) {
	o := &assignmentOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list a tab's assignments colored by urgency",
		Example: `
assignments list --tab "Biology 101"
assignments list --tab "Biology 101" --sort due --desc
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			e, err := openEnv(ctx, g)
			if err != nil {
				return err
			}
			defer e.Close()

			tab := o.Tab
			if tab == "" {
				tab = e.cfg.Tabs.DefaultName
			}
			if err := e.requireTab(ctx, tab); err != nil {
				return err
			}
			rows, err := e.mgr.AssignmentsForTab(ctx, tab)
			if err != nil {
				return err
			}
			if o.Sort != "" {
				col, err := tracker.ParseColumn(o.Sort)
				if err != nil {
					return err
				}
				tracker.SortBy(rows, col, o.Desc, tracker.RowField)
			}

			w := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintf(w, "No assignments in %q\n", tab)
				return nil
			}
			printRows(w, rows)
			printLegend(w)
			return nil
		},
	}
	cmd.Flags().StringVar(&o.Tab, "tab", "", "tab to list (default: the configured default tab)")
	cmd.Flags().StringVar(&o.Sort, "sort", "", "sort column: title, due, or status")
	cmd.Flags().BoolVar(&o.Desc, "desc", false, "sort descending")

	topLevel.AddCommand(cmd)
}

func addComplete(topLevel *cobra.Command, g *globalOptions) {
	o := &assignmentOptions{}

	cmd := &cobra.Command{
		Use:     "complete ID...",
		Aliases: []string{"done"},
		Short:   "mark assignments completed",
		Example: `
assignments complete --tab "Biology 101" 3 4
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBulk(cmd, g, o, args, "Completed", (*tracker.Manager).MarkCompleted)
		},
	}
	cmd.Flags().StringVar(&o.Tab, "tab", "", "only act on assignments in this tab")

	topLevel.AddCommand(cmd)
}

func addDelete(topLevel *cobra.Command, g *globalOptions) {
	o := &assignmentOptions{}

	cmd := &cobra.Command{
		Use:     "delete ID...",
		Aliases: []string{"rm"},
		Short:   "delete assignments",
		Example: `
assignments delete --tab "Biology 101" --yes 3
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !o.Yes {
				return errors.New("pass --yes to confirm the deletion")
			}
			return runBulk(cmd, g, o, args, "Deleted", (*tracker.Manager).DeleteAssignments)
		},
	}
	cmd.Flags().StringVar(&o.Tab, "tab", "", "only act on assignments in this tab")
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false, "confirm the deletion")

	topLevel.AddCommand(cmd)
}

type bulkAction func(*tracker.Manager, context.Context, tracker.Selection) (int, error)

func runBulk(cmd *cobra.Command, g *globalOptions, o *assignmentOptions, args []string, verb string, act bulkAction) error {
	ids, err := tracker.ParseIDs(args)
	if err != nil {
		return err
	}

	ctx := context.Background()
	e, err := openEnv(ctx, g)
	if err != nil {
		return err
	}
	defer e.Close()

	if o.Tab != "" {
		if err := e.requireTab(ctx, o.Tab); err != nil {
			return err
		}
	}
	n, err := act(e.mgr, ctx, tracker.Selection{Tab: o.Tab, IDs: ids})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d assignment(s)\n", verb, n)
	return nil
}

func addNotes(topLevel *cobra.Command, g *globalOptions) {
	cmd := &cobra.Command{
		Use:   "notes ID [TEXT]",
		Short: "show or replace an assignment's notes",
		Example: `
assignments notes 3
assignments notes 3 "bring goggles"
`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return &tracker.InvalidIDError{Raw: args[0]}
			}

			ctx := context.Background()
			e, err := openEnv(ctx, g)
			if err != nil {
				return err
			}
			defer e.Close()

			a, err := e.mgr.Get(ctx, id)
			if err != nil {
				return err
			}
			if a == nil {
				return fmt.Errorf("assignment #%d does not exist", id)
			}

			w := cmd.OutOrStdout()
			if len(args) == 1 {
				fmt.Fprintln(w, bold.Sprint(a.Title))
				fmt.Fprintln(w, a.Notes)
				return nil
			}
			if !e.mgr.SaveNotes(ctx, id, args[1]) {
				return fmt.Errorf("could not save notes for #%d", id)
			}
			fmt.Fprintf(w, "Saved notes for #%d\n", id)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
