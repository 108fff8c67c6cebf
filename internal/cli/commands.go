// Package cli wires the cobra command tree for the assignments binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/nhle/assignment-tracker/internal/model"
)

// globalOptions are flags shared by every verb.
type globalOptions struct {
	ConfigPath string
}

// New builds the root command. With no verb it opens the interactive UI.
func New() *cobra.Command {
	g := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "assignments",
		Short:         "Track coursework assignments by tab, due date, and urgency.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, g)
		},
	}
	cmd.PersistentFlags().StringVar(&g.ConfigPath, "config", model.DefaultConfigPath(), "path to the config file")

	AddCommands(cmd, g)
	return cmd
}

// AddCommands attaches every verb to topLevel.
func AddCommands(topLevel *cobra.Command, g *globalOptions) {
	addUI(topLevel, g)
	addTabs(topLevel, g)
	addAdd(topLevel, g)
	addList(topLevel, g)
	addDashboard(topLevel, g)
	addImport(topLevel, g)
	addComplete(topLevel, g)
	addDelete(topLevel, g)
	addNotes(topLevel, g)
}
