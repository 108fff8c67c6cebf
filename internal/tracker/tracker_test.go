package tracker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/assignment-tracker/internal/dateutil"
	"github.com/nhle/assignment-tracker/internal/model"
	"github.com/nhle/assignment-tracker/internal/store"
	"github.com/nhle/assignment-tracker/internal/tracker"
	"github.com/nhle/assignment-tracker/internal/urgency"
	"github.com/nhle/assignment-tracker/tests/testutil"
)

var now = time.Date(2024, time.April, 15, 9, 30, 0, 0, time.UTC)

func day(offset int) string {
	return dateutil.Format(now.AddDate(0, 0, offset))
}

func newManager(t *testing.T, opts ...tracker.Option) (*tracker.Manager, *store.SQLiteStore) {
	t.Helper()
	s := testutil.NewTestStore(t)
	opts = append([]tracker.Option{tracker.WithClock(func() time.Time { return now })}, opts...)
	return tracker.New(s, opts...), s
}

func TestEnsureDefaultTab(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	created, err := m.EnsureDefaultTab(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = m.EnsureDefaultTab(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	tabs, err := m.Tabs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{model.DefaultTabName}, tabs)
}

func TestEnsureDefaultTabCustomName(t *testing.T) {
	m, _ := newManager(t, tracker.WithDefaultTabName("Inbox"))
	ctx := context.Background()

	_, err := m.EnsureDefaultTab(ctx)
	require.NoError(t, err)
	tabs, err := m.Tabs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Inbox"}, tabs)
}

func TestEnsureDefaultTabLeavesExistingTabs(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()
	_, err := m.AddTab(ctx, "Biology")
	require.NoError(t, err)

	created, err := m.EnsureDefaultTab(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	tabs, err := m.Tabs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Biology"}, tabs)
}

func TestAddTabReportsDuplicates(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	created, err := m.AddTab(ctx, " X ")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = m.AddTab(ctx, "X")
	require.NoError(t, err)
	assert.False(t, created)

	tabs, err := m.Tabs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, tabs)
}

func TestAssignmentsForTabAnnotatesUrgency(t *testing.T) {
	m, s := newManager(t)
	ctx := context.Background()
	require.NoError(t, s.AddTab(ctx, "A"))

	overdue, err := s.AddAssignment(ctx, "A", "overdue", day(-1), "")
	require.NoError(t, err)
	soon, err := s.AddAssignment(ctx, "A", "soon", day(3), "")
	require.NoError(t, err)
	week, err := s.AddAssignment(ctx, "A", "week", day(4), "")
	require.NoError(t, err)
	twoWeeks, err := s.AddAssignment(ctx, "A", "two weeks", day(10), "")
	require.NoError(t, err)
	later, err := s.AddAssignment(ctx, "A", "later", day(20), "")
	require.NoError(t, err)
	done, err := s.AddAssignment(ctx, "A", "done", day(1), "")
	require.NoError(t, err)
	require.NoError(t, s.MarkCompleted(ctx, done))
	broken, err := s.AddAssignment(ctx, "A", "broken", "someday", "")
	require.NoError(t, err)

	rows, err := m.AssignmentsForTab(ctx, "A")
	require.NoError(t, err)

	got := map[int64]urgency.Bucket{}
	for _, r := range rows {
		got[r.ID] = r.Bucket
	}
	assert.Equal(t, map[int64]urgency.Bucket{
		overdue:  urgency.OverdueOrDueSoon,
		soon:     urgency.OverdueOrDueSoon,
		week:     urgency.DueThisWeek,
		twoWeeks: urgency.DueInTwoWeeks,
		later:    urgency.DueLater,
		done:     urgency.Completed,
		broken:   urgency.Unclassified,
	}, got)
}

func TestAddAssignmentValidation(t *testing.T) {
	m, s := newManager(t)
	ctx := context.Background()
	require.NoError(t, s.AddTab(ctx, "A"))

	_, err := m.AddAssignment(ctx, tracker.Input{Tab: "A", Title: "  ", DueDate: day(1)})
	assert.ErrorIs(t, err, tracker.ErrTitleRequired)

	_, err = m.AddAssignment(ctx, tracker.Input{Tab: "A", Title: "Essay", DueDate: " "})
	assert.ErrorIs(t, err, tracker.ErrDueDateRequired)

	_, err = m.AddAssignment(ctx, tracker.Input{Tab: "A", Title: "Essay", DueDate: "2024/05/01"})
	var fe *dateutil.FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "2024/05/01", fe.Text)

	rows, err := m.AssignmentsForTab(ctx, "A")
	require.NoError(t, err)
	assert.Empty(t, rows, "failed validation must not write")

	id, err := m.AddAssignment(ctx, tracker.Input{Tab: "A", Title: " Essay ", DueDate: " 2024-05-01 ", Notes: "MLA"})
	require.NoError(t, err)
	a, err := m.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Essay", a.Title)
	assert.Equal(t, "2024-05-01", a.DueDate)
	assert.Equal(t, model.StatusPending, a.Status)
}

func TestDashboard(t *testing.T) {
	m, s := newManager(t)
	ctx := context.Background()
	require.NoError(t, s.AddTab(ctx, "A"))
	require.NoError(t, s.AddTab(ctx, "B"))

	_, err := s.AddAssignment(ctx, "A", "yesterday", day(-1), "")
	require.NoError(t, err)
	done, err := s.AddAssignment(ctx, "B", "done", day(2), "")
	require.NoError(t, err)
	require.NoError(t, s.MarkCompleted(ctx, done))
	_, err = s.AddAssignment(ctx, "B", "bad date", "2024-9-1", "")
	require.NoError(t, err)

	// Twelve pending, inserted out of order, across both tabs.
	offsets := []int{11, 0, 5, 2, 9, 1, 7, 3, 10, 4, 8, 6}
	for i, off := range offsets {
		tab := "A"
		if i%2 == 1 {
			tab = "B"
		}
		_, err := s.AddAssignment(ctx, tab, "hw", day(off), "")
		require.NoError(t, err)
	}

	entries := m.Dashboard(ctx)
	require.Len(t, entries, 10)
	for i, e := range entries {
		assert.Equal(t, day(i), e.DueDate, "entry %d", i)
		assert.Equal(t, model.StatusPending, e.Status)
	}
}

func TestDashboardLimitOption(t *testing.T) {
	m, s := newManager(t, tracker.WithDashboardLimit(2))
	ctx := context.Background()
	require.NoError(t, s.AddTab(ctx, "A"))
	for _, off := range []int{3, 1, 2} {
		_, err := s.AddAssignment(ctx, "A", "hw", day(off), "")
		require.NoError(t, err)
	}

	entries := m.Dashboard(ctx)
	require.Len(t, entries, 2)
	assert.Equal(t, day(1), entries[0].DueDate)
	assert.Equal(t, day(2), entries[1].DueDate)
}

func TestRenameAndDeleteTabThroughManager(t *testing.T) {
	m, s := newManager(t)
	ctx := context.Background()
	require.NoError(t, s.AddTab(ctx, "A"))
	id, err := s.AddAssignment(ctx, "A", "one", day(1), "")
	require.NoError(t, err)

	require.NoError(t, m.RenameTab(ctx, "A", " B "))
	tab, ok := m.Locate(ctx, id)
	require.True(t, ok)
	assert.Equal(t, "B", tab)

	require.NoError(t, m.DeleteTab(ctx, "B"))
	_, ok = m.Locate(ctx, id)
	assert.False(t, ok)
}

func TestSaveNotes(t *testing.T) {
	m, s := newManager(t)
	ctx := context.Background()
	require.NoError(t, s.AddTab(ctx, "A"))
	id, err := s.AddAssignment(ctx, "A", "one", day(1), "")
	require.NoError(t, err)

	assert.True(t, m.SaveNotes(ctx, id, "chapter 4"))
	a, err := m.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "chapter 4", a.Notes)
}

func TestTabSummary(t *testing.T) {
	m, s := newManager(t)
	ctx := context.Background()
	require.NoError(t, s.AddTab(ctx, "A"))
	id, err := s.AddAssignment(ctx, "A", "one", day(1), "")
	require.NoError(t, err)
	_, err = s.AddAssignment(ctx, "A", "two", day(2), "")
	require.NoError(t, err)
	require.NoError(t, s.MarkCompleted(ctx, id))

	total, completed, err := m.TabSummary(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, completed)
}
