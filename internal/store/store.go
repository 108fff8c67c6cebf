package store

import (
	"context"
	"errors"

	"github.com/nhle/assignment-tracker/internal/model"
)

var (
	// ErrEmptyTabName is returned when a tab name is blank.
	ErrEmptyTabName = errors.New("tab name must not be empty")
	// ErrTabExists is returned when a rename targets a name already in use.
	ErrTabExists = errors.New("tab already exists")
)

// Store defines the persistence interface for tabs and their assignments.
//
// Operations on missing tabs or assignment ids are no-ops rather than
// errors. UpdateNotes and ListUpcoming absorb storage faults: they log the
// failure and report it through their return value.
type Store interface {
	// === Tabs ===

	ListTabs(ctx context.Context) ([]string, error)
	AddTab(ctx context.Context, name string) error
	RenameTab(ctx context.Context, oldName, newName string) error
	DeleteTab(ctx context.Context, name string) error

	// === Assignments ===

	AddAssignment(ctx context.Context, tab, title, dueDate, notes string) (int64, error)
	ListAssignments(ctx context.Context, tab string) ([]model.Assignment, error)
	GetAssignment(ctx context.Context, id int64) (*model.Assignment, error)
	CountAssignments(ctx context.Context, tab string) (total, completed int, err error)
	UpdateNotes(ctx context.Context, id int64, notes string) bool
	MarkCompleted(ctx context.Context, id int64) error
	DeleteAssignment(ctx context.Context, id int64) error
	ListUpcoming(ctx context.Context, today string) []model.Assignment
}
