package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nhle/assignment-tracker/internal/model"
)

// assignmentColumns selects assignment rows in model field order. Rows
// written before notes existed may hold NULL.
const assignmentColumns = `id, tab_name, title, due_date, status, COALESCE(notes, '') AS notes`

// AddAssignment inserts a pending assignment under tab and returns its id.
// The caller is expected to have validated the due date.
func (s *SQLiteStore) AddAssignment(
	ctx context.Context,
	tab, title, dueDate, notes string,
) (int64, error) {
	if strings.TrimSpace(title) == "" {
		return 0, fmt.Errorf("assignment title must not be empty")
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO assignments (tab_name, title, due_date, status, notes)
		VALUES (?, ?, ?, ?, ?)`,
		tab, title, dueDate, model.StatusPending, notes,
	)
	if err != nil {
		return 0, fmt.Errorf("creating assignment in tab %q: %w", tab, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading new assignment id: %w", err)
	}
	return id, nil
}

// ListAssignments returns the assignments of a tab. Callers sort.
func (s *SQLiteStore) ListAssignments(
	ctx context.Context,
	tab string,
) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := s.db.SelectContext(ctx, &assignments,
		"SELECT "+assignmentColumns+" FROM assignments WHERE tab_name = ?", tab)
	if err != nil {
		return nil, fmt.Errorf("querying assignments for tab %q: %w", tab, err)
	}
	return assignments, nil
}

// GetAssignment retrieves a single assignment. It returns nil, nil when no
// assignment has that id.
func (s *SQLiteStore) GetAssignment(
	ctx context.Context,
	id int64,
) (*model.Assignment, error) {
	var a model.Assignment
	err := s.db.GetContext(ctx, &a,
		"SELECT "+assignmentColumns+" FROM assignments WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting assignment %d: %w", id, err)
	}
	return &a, nil
}

// CountAssignments returns how many assignments a tab holds and how many of
// those are completed.
func (s *SQLiteStore) CountAssignments(
	ctx context.Context,
	tab string,
) (total, completed int, err error) {
	row := s.db.QueryRowxContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		FROM assignments WHERE tab_name = ?`,
		model.StatusCompleted, tab)
	if err := row.Scan(&total, &completed); err != nil {
		return 0, 0, fmt.Errorf("counting assignments for tab %q: %w", tab, err)
	}
	return total, completed, nil
}

// UpdateNotes replaces the notes of an assignment. A storage failure is
// logged and reported as false.
func (s *SQLiteStore) UpdateNotes(ctx context.Context, id int64, notes string) bool {
	_, err := s.db.ExecContext(ctx,
		"UPDATE assignments SET notes = ? WHERE id = ?", notes, id)
	if err != nil {
		log.Printf("store: updating notes for assignment %d: %v", id, err)
		return false
	}
	return true
}

// MarkCompleted sets an assignment's status to Completed.
func (s *SQLiteStore) MarkCompleted(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE assignments SET status = ? WHERE id = ?", model.StatusCompleted, id)
	if err != nil {
		return fmt.Errorf("completing assignment %d: %w", id, err)
	}
	return nil
}

// DeleteAssignment removes an assignment by id.
func (s *SQLiteStore) DeleteAssignment(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM assignments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting assignment %d: %w", id, err)
	}
	return nil
}

// ListUpcoming returns pending assignments due on or after today across all
// tabs, ordered by due date. Canonical dates compare correctly as text. A
// storage failure is logged and yields an empty result.
func (s *SQLiteStore) ListUpcoming(ctx context.Context, today string) []model.Assignment {
	var assignments []model.Assignment
	err := s.db.SelectContext(ctx, &assignments, `
		SELECT `+assignmentColumns+` FROM assignments
		WHERE status = ? AND due_date >= ?
		ORDER BY due_date, id`,
		model.StatusPending, today)
	if err != nil {
		log.Printf("store: querying upcoming assignments: %v", err)
		return []model.Assignment{}
	}
	return assignments
}
