// Package tracker is the application core. It combines the store with the
// urgency classifier to serve tab lists, the dashboard, imports, and bulk
// actions driven by the presentation layer.
package tracker

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/nhle/assignment-tracker/internal/dateutil"
	"github.com/nhle/assignment-tracker/internal/model"
	"github.com/nhle/assignment-tracker/internal/store"
	"github.com/nhle/assignment-tracker/internal/urgency"
)

// Row is an assignment annotated with its urgency bucket.
type Row struct {
	model.Assignment
	Bucket urgency.Bucket
}

// Input is the raw form data for a new assignment.
type Input struct {
	Tab     string
	Title   string `validate:"required"`
	DueDate string `validate:"required,canonicaldate"`
	Notes   string
}

// Manager coordinates the store and the classifier.
type Manager struct {
	store          store.Store
	now            func() time.Time
	defaultTab     string
	dashboardLimit int
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the wall clock used to determine today.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithDefaultTabName sets the tab created when none exist.
func WithDefaultTabName(name string) Option {
	return func(m *Manager) {
		if strings.TrimSpace(name) != "" {
			m.defaultTab = name
		}
	}
}

// WithDashboardLimit caps the number of dashboard entries.
func WithDashboardLimit(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.dashboardLimit = n
		}
	}
}

// New creates a Manager over s.
func New(s store.Store, opts ...Option) *Manager {
	m := &Manager{
		store:          s,
		now:            time.Now,
		defaultTab:     model.DefaultTabName,
		dashboardLimit: model.DefaultDashboardLimit,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Today returns the current calendar date.
func (m *Manager) Today() time.Time {
	return dateutil.Today(m.now())
}

// DefaultTabName returns the name used for the first-run tab.
func (m *Manager) DefaultTabName() string {
	return m.defaultTab
}

// EnsureDefaultTab creates the default tab when the store has none.
func (m *Manager) EnsureDefaultTab(ctx context.Context) (bool, error) {
	tabs, err := m.store.ListTabs(ctx)
	if err != nil {
		return false, err
	}
	if len(tabs) > 0 {
		return false, nil
	}
	if err := m.store.AddTab(ctx, m.defaultTab); err != nil {
		return false, fmt.Errorf("creating default tab: %w", err)
	}
	return true, nil
}

// Tabs returns all tab names.
func (m *Manager) Tabs(ctx context.Context) ([]string, error) {
	return m.store.ListTabs(ctx)
}

// HasTab reports whether a tab with the given name exists.
func (m *Manager) HasTab(ctx context.Context, name string) (bool, error) {
	tabs, err := m.store.ListTabs(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(tabs, name), nil
}

// AddTab creates a tab. created is false when the name was already taken.
func (m *Manager) AddTab(ctx context.Context, name string) (created bool, err error) {
	name = strings.TrimSpace(name)
	exists, err := m.HasTab(ctx, name)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := m.store.AddTab(ctx, name); err != nil {
		return false, err
	}
	return true, nil
}

// RenameTab renames a tab, carrying its assignments along.
func (m *Manager) RenameTab(ctx context.Context, oldName, newName string) error {
	return m.store.RenameTab(ctx, oldName, strings.TrimSpace(newName))
}

// DeleteTab removes a tab and everything in it.
func (m *Manager) DeleteTab(ctx context.Context, name string) error {
	return m.store.DeleteTab(ctx, name)
}

// AssignmentsForTab lists a tab's assignments annotated with urgency as of
// today, in store order.
func (m *Manager) AssignmentsForTab(ctx context.Context, tab string) ([]Row, error) {
	assignments, err := m.store.ListAssignments(ctx, tab)
	if err != nil {
		return nil, err
	}
	today := m.Today()
	rows := make([]Row, len(assignments))
	for i, a := range assignments {
		rows[i] = Row{Assignment: a, Bucket: urgency.Classify(a.Status, a.DueDate, today)}
	}
	return rows, nil
}

// TabSummary returns the total and completed assignment counts of a tab.
func (m *Manager) TabSummary(ctx context.Context, tab string) (total, completed int, err error) {
	return m.store.CountAssignments(ctx, tab)
}

// AddAssignment validates raw form input and stores a pending assignment.
// Validation failures are ErrTitleRequired, ErrDueDateRequired, or a
// *dateutil.FormatError; nothing is written in that case.
func (m *Manager) AddAssignment(ctx context.Context, in Input) (int64, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.DueDate = strings.TrimSpace(in.DueDate)
	if err := validateInput(in); err != nil {
		return 0, err
	}
	return m.store.AddAssignment(ctx, in.Tab, in.Title, in.DueDate, in.Notes)
}

// Get returns an assignment, or nil when it does not exist.
func (m *Manager) Get(ctx context.Context, id int64) (*model.Assignment, error) {
	return m.store.GetAssignment(ctx, id)
}

// Locate returns the tab holding an assignment.
func (m *Manager) Locate(ctx context.Context, id int64) (string, bool) {
	a, err := m.store.GetAssignment(ctx, id)
	if err != nil || a == nil {
		return "", false
	}
	return a.TabName, true
}

// SaveNotes replaces an assignment's notes and reports success.
func (m *Manager) SaveNotes(ctx context.Context, id int64, notes string) bool {
	return m.store.UpdateNotes(ctx, id, notes)
}
