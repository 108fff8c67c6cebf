package tracker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/assignment-tracker/internal/model"
	"github.com/nhle/assignment-tracker/internal/tracker"
)

func TestParseIDs(t *testing.T) {
	got, err := tracker.ParseIDs([]string{"3", " 12 "})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 12}, got)

	_, err = tracker.ParseIDs([]string{"3", "abc"})
	var invalid *tracker.InvalidIDError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "abc", invalid.Raw)

	_, err = tracker.ParseIDs([]string{"0"})
	assert.Error(t, err)
}

func TestMarkCompletedSelection(t *testing.T) {
	m, s := newManager(t)
	ctx := context.Background()
	require.NoError(t, s.AddTab(ctx, "A"))
	require.NoError(t, s.AddTab(ctx, "B"))
	a1, err := s.AddAssignment(ctx, "A", "one", day(1), "")
	require.NoError(t, err)
	a2, err := s.AddAssignment(ctx, "A", "two", day(2), "")
	require.NoError(t, err)
	b1, err := s.AddAssignment(ctx, "B", "other", day(1), "")
	require.NoError(t, err)

	n, err := m.MarkCompleted(ctx, tracker.Selection{Tab: "A", IDs: []int64{a1, b1, 999}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := m.Get(ctx, a1)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, got.Status)
	got, err = m.Get(ctx, a2)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, got.Status)
	got, err = m.Get(ctx, b1)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, got.Status, "selection is scoped to its tab")

	// Completing twice is harmless.
	n, err = m.MarkCompleted(ctx, tracker.Selection{Tab: "A", IDs: []int64{a1}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDeleteAssignmentsSelection(t *testing.T) {
	m, s := newManager(t)
	ctx := context.Background()
	require.NoError(t, s.AddTab(ctx, "A"))
	a1, err := s.AddAssignment(ctx, "A", "one", day(1), "")
	require.NoError(t, err)
	a2, err := s.AddAssignment(ctx, "A", "two", day(2), "")
	require.NoError(t, err)

	n, err := m.DeleteAssignments(ctx, tracker.Selection{Tab: "A", IDs: []int64{a1}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rows, err := m.AssignmentsForTab(ctx, "A")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, a2, rows[0].ID)
}

func TestEmptySelection(t *testing.T) {
	m, _ := newManager(t)
	_, err := m.MarkCompleted(context.Background(), tracker.Selection{Tab: "A"})
	assert.ErrorIs(t, err, tracker.ErrNothingSelected)
	_, err = m.DeleteAssignments(context.Background(), tracker.Selection{Tab: "A"})
	assert.ErrorIs(t, err, tracker.ErrNothingSelected)
}
