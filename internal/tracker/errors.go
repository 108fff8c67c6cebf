package tracker

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTitleRequired is returned for a blank assignment title.
	ErrTitleRequired = errors.New("assignment title is required")
	// ErrDueDateRequired is returned for a blank due date.
	ErrDueDateRequired = errors.New("due date is required")
	// ErrUnknownTab is returned when an operation targets a tab that does not exist.
	ErrUnknownTab = errors.New("tab does not exist")
	// ErrNothingSelected is returned by bulk actions given an empty selection.
	ErrNothingSelected = errors.New("no assignments selected")
)

// InvalidIDError reports a row key that is not an assignment id.
type InvalidIDError struct {
	Raw string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid assignment id %q", e.Raw)
}

// MissingColumnsError reports required CSV headers that were not found.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return "csv file must contain headers: " + strings.Join(e.Missing, ", ")
}
