package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

func addImport(topLevel *cobra.Command, g *globalOptions) {
	var tab string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "import assignments from a CSV file",
		Long: `Import assignments from a CSV file with a header row.

The assignment_title and due_date columns are required and notes is
optional. Rows with a blank title or a due date not in YYYY-MM-DD form
are skipped.`,
		Example: `
assignments import --tab "Biology 101" syllabus.csv
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := homedir.Expand(args[0])
			if err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			ctx := context.Background()
			e, err := openEnv(ctx, g)
			if err != nil {
				return err
			}
			defer e.Close()

			target := tab
			if target == "" {
				target = e.cfg.Tabs.DefaultName
			}
			n, err := e.mgr.ImportCSV(ctx, target, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d assignment(s) into %q\n", n, target)
			return nil
		},
	}
	cmd.Flags().StringVar(&tab, "tab", "", "tab to import into (default: the configured default tab)")

	topLevel.AddCommand(cmd)
}
