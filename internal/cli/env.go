package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/nhle/assignment-tracker/internal/model"
	"github.com/nhle/assignment-tracker/internal/store"
	"github.com/nhle/assignment-tracker/internal/theme"
	"github.com/nhle/assignment-tracker/internal/tracker"
)

// env is what a verb needs to run: the loaded config, an open store, and a
// manager over it.
type env struct {
	cfg   *model.AppConfig
	store *store.SQLiteStore
	mgr   *tracker.Manager
}

// openEnv loads config, opens the database, and makes sure a tab exists.
// The caller must Close the returned env.
func openEnv(ctx context.Context, g *globalOptions) (*env, error) {
	cfg, err := model.LoadConfig(g.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.Display.Theme == "plain" {
		color.NoColor = true
		theme.SetPlain(true)
	}

	if dir := filepath.Dir(cfg.Database.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory %s: %w", dir, err)
		}
	}
	s, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	mgr := tracker.New(s,
		tracker.WithDefaultTabName(cfg.Tabs.DefaultName),
		tracker.WithDashboardLimit(cfg.Dashboard.Limit),
	)
	if _, err := mgr.EnsureDefaultTab(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return &env{cfg: cfg, store: s, mgr: mgr}, nil
}

// Close releases the database.
func (e *env) Close() error {
	return e.store.Close()
}

// requireTab fails with tracker.ErrUnknownTab when tab does not exist.
func (e *env) requireTab(ctx context.Context, tab string) error {
	ok, err := e.mgr.HasTab(ctx, tab)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%q: %w", tab, tracker.ErrUnknownTab)
	}
	return nil
}
