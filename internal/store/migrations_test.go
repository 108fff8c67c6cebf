package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsAreSequential(t *testing.T) {
	for i, m := range migrations {
		assert.Equal(t, i+1, m.version)
	}
}

// A database created before notes existed gains the column on open and
// keeps its rows.
func TestMigrateFromVersionOne(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")

	db, err := sqlx.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(migrations[0].sql)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO tabs (name) VALUES ('Legacy')")
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO assignments (tab_name, title, due_date, status)
		VALUES ('Legacy', 'Old essay', '2023-10-01', 'Pending')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	version, err := s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)

	list, err := s.ListAssignments(ctx, "Legacy")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Old essay", list[0].Title)
	assert.Equal(t, "", list[0].Notes)

	assert.True(t, s.UpdateNotes(ctx, list[0].ID, "found it"))
}
