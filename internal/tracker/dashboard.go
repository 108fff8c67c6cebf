package tracker

import (
	"context"
	"slices"
	"time"

	"github.com/nhle/assignment-tracker/internal/dateutil"
	"github.com/nhle/assignment-tracker/internal/urgency"
)

// DashboardEntry is one upcoming assignment shown on the dashboard.
type DashboardEntry struct {
	Row
	Due time.Time
}

// Dashboard returns pending assignments from every tab due today or later,
// nearest first, capped at the configured limit. Assignments whose due date
// does not parse are left out.
func (m *Manager) Dashboard(ctx context.Context) []DashboardEntry {
	today := m.Today()
	upcoming := m.store.ListUpcoming(ctx, dateutil.Format(today))

	entries := make([]DashboardEntry, 0, len(upcoming))
	for _, a := range upcoming {
		due, err := dateutil.Parse(a.DueDate)
		if err != nil || due.Before(today) {
			continue
		}
		entries = append(entries, DashboardEntry{
			Row: Row{Assignment: a, Bucket: urgency.ClassifyDate(a.Status, due, today)},
			Due: due,
		})
	}

	slices.SortStableFunc(entries, func(a, b DashboardEntry) int {
		return a.Due.Compare(b.Due)
	})

	if len(entries) > m.dashboardLimit {
		entries = entries[:m.dashboardLimit]
	}
	return entries
}
