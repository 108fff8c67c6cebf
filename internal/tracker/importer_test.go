package tracker_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/assignment-tracker/internal/tracker"
)

func TestImportSkipsInvalidRecords(t *testing.T) {
	m, s := newManager(t)
	ctx := context.Background()
	require.NoError(t, s.AddTab(ctx, "A"))

	n, err := m.Import(ctx, "A", []tracker.ImportRecord{
		{Title: "Lab report", DueDate: "2024-05-01", Notes: "group"},
		{Title: "", DueDate: "2024-05-02"},
		{Title: "Reading", DueDate: "May 3"},
		{Title: "   ", DueDate: "2024-05-04"},
		{Title: "Quiz prep", DueDate: "2024-05-05"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rows, err := m.AssignmentsForTab(ctx, "A")
	require.NoError(t, err)
	titles := []string{}
	for _, r := range rows {
		titles = append(titles, r.Title)
	}
	assert.ElementsMatch(t, []string{"Lab report", "Quiz prep"}, titles)
}

func TestImportIntoUnknownTab(t *testing.T) {
	m, _ := newManager(t)
	n, err := m.Import(context.Background(), "Nowhere", []tracker.ImportRecord{
		{Title: "x", DueDate: "2024-05-01"},
	})
	assert.ErrorIs(t, err, tracker.ErrUnknownTab)
	assert.Zero(t, n)
}

func TestImportCSV(t *testing.T) {
	m, s := newManager(t)
	ctx := context.Background()
	require.NoError(t, s.AddTab(ctx, "A"))

	doc := "\ufeffassignment_title,due_date,notes\n" +
		"Essay draft, 2024-05-01 ,outline first\n" +
		",2024-05-02,missing title\n" +
		"Problem set,2024-13-01,bad month\n" +
		"Slides,2024-05-03\n" +
		"Short\n"

	n, err := m.ImportCSV(ctx, "A", strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rows, err := m.AssignmentsForTab(ctx, "A")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	byTitle := map[string]string{}
	for _, r := range rows {
		byTitle[r.Title] = r.DueDate + "|" + r.Notes
	}
	assert.Equal(t, "2024-05-01|outline first", byTitle["Essay draft"])
	assert.Equal(t, "2024-05-03|", byTitle["Slides"])
}

func TestImportCSVMissingHeaders(t *testing.T) {
	m, s := newManager(t)
	ctx := context.Background()
	require.NoError(t, s.AddTab(ctx, "A"))

	_, err := m.ImportCSV(ctx, "A", strings.NewReader("title,notes\nx,y\n"))
	var missing *tracker.MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"assignment_title", "due_date"}, missing.Missing)

	_, err = m.ImportCSV(ctx, "A", strings.NewReader(""))
	require.True(t, errors.As(err, &missing))
}

func TestImportCSVColumnOrderIndependent(t *testing.T) {
	m, s := newManager(t)
	ctx := context.Background()
	require.NoError(t, s.AddTab(ctx, "A"))

	n, err := m.ImportCSV(ctx, "A", strings.NewReader("notes,due_date,assignment_title\nbring id,2024-06-01,Final exam\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rows, err := m.AssignmentsForTab(ctx, "A")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Final exam", rows[0].Title)
	assert.Equal(t, "bring id", rows[0].Notes)
}
