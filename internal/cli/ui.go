package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nhle/assignment-tracker/internal/app"
)

func addUI(topLevel *cobra.Command, g *globalOptions) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
assignments ui
assignments --config ~/school.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd, g)
		},
	}

	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command, g *globalOptions) error {
	e, err := openEnv(context.Background(), g)
	if err != nil {
		return err
	}
	defer e.Close()

	// Route the standard logger to a file so it cannot draw over the UI.
	if err := os.MkdirAll(filepath.Dir(e.cfg.Log.File), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := tea.LogToFile(e.cfg.Log.File, "assignments")
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	p := tea.NewProgram(app.New(e.mgr), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
