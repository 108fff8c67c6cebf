package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/assignment-tracker/internal/model"
	"github.com/nhle/assignment-tracker/internal/tracker"
)

// newConfig writes a config pointing at a fresh database and returns its path.
func newConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	cfg := &model.AppConfig{
		Database:  model.DatabaseConfig{Path: filepath.Join(dir, "data", "assignments.db")},
		Tabs:      model.TabsConfig{DefaultName: "Inbox"},
		Dashboard: model.DashboardConfig{Limit: 10},
		Log:       model.LogConfig{File: filepath.Join(dir, "debug.log")},
		Display:   model.DisplayConfig{Theme: "plain"},
	}
	require.NoError(t, model.SaveConfig(path, cfg))
	return path
}

func run(t *testing.T, config string, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", config}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestTabsLifecycle(t *testing.T) {
	cfg := newConfig(t)

	out, err := run(t, cfg, "tabs")
	require.NoError(t, err)
	assert.Contains(t, out, "Inbox")

	_, err = run(t, cfg, "tabs", "add", "Biology")
	require.NoError(t, err)
	_, err = run(t, cfg, "tabs", "add", "Biology")
	assert.Error(t, err)

	_, err = run(t, cfg, "add", "--tab", "Biology", "--title", "Lab report", "--due", "2030-05-01")
	require.NoError(t, err)

	_, err = run(t, cfg, "tabs", "rename", "Biology", "Bio")
	require.NoError(t, err)

	out, err = run(t, cfg, "list", "--tab", "Bio")
	require.NoError(t, err)
	assert.Contains(t, out, "Lab report")

	_, err = run(t, cfg, "tabs", "delete", "Bio")
	assert.Error(t, err, "delete needs --yes")
	_, err = run(t, cfg, "tabs", "delete", "--yes", "Bio")
	require.NoError(t, err)

	_, err = run(t, cfg, "list", "--tab", "Bio")
	assert.ErrorIs(t, err, tracker.ErrUnknownTab)
}

func TestAddRejectsBadDate(t *testing.T) {
	cfg := newConfig(t)

	_, err := run(t, cfg, "add", "--title", "Essay", "--due", "May 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")

	out, err := run(t, cfg, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No assignments")
}

func TestCompleteDeleteAndNotes(t *testing.T) {
	cfg := newConfig(t)

	_, err := run(t, cfg, "add", "--title", "Essay", "--due", "2030-01-01")
	require.NoError(t, err)

	out, err := run(t, cfg, "complete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Completed 1")

	out, err = run(t, cfg, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Completed")

	_, err = run(t, cfg, "notes", "1", "cite three sources")
	require.NoError(t, err)
	out, err = run(t, cfg, "notes", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "cite three sources")

	_, err = run(t, cfg, "complete", "abc")
	var invalid *tracker.InvalidIDError
	assert.ErrorAs(t, err, &invalid)

	out, err = run(t, cfg, "delete", "--yes", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1")
}

func TestImportAndDashboard(t *testing.T) {
	cfg := newConfig(t)
	csvPath := filepath.Join(t.TempDir(), "hw.csv")
	body := "assignment_title,due_date,notes\n" +
		"Reading,2030-02-01,ch 1\n" +
		",2030-02-02,\n" +
		"Quiz,02/03/2030,\n" +
		"Project,2030-01-15,\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(body), 0o644))

	out, err := run(t, cfg, "import", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2")

	out, err = run(t, cfg, "dashboard")
	require.NoError(t, err)
	assert.Less(t, bytes.Index([]byte(out), []byte("Project")), bytes.Index([]byte(out), []byte("Reading")))
}

func TestHexRGB(t *testing.T) {
	r, g, b, ok := hexRGB("#ffa500")
	require.True(t, ok)
	assert.Equal(t, []int{255, 165, 0}, []int{r, g, b})

	_, _, _, ok = hexRGB("orange")
	assert.False(t, ok)
}
