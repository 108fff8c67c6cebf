package tracker

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nhle/assignment-tracker/internal/dateutil"
)

// Column identifies a sortable list column.
type Column int

const (
	ColumnTitle Column = iota
	ColumnDue
	ColumnStatus
)

// Columns lists the sortable columns in display order.
var Columns = []Column{ColumnTitle, ColumnDue, ColumnStatus}

func (c Column) String() string {
	switch c {
	case ColumnTitle:
		return "Assignment Title"
	case ColumnDue:
		return "Due Date"
	case ColumnStatus:
		return "Status"
	default:
		return fmt.Sprintf("Column(%d)", int(c))
	}
}

// ParseColumn resolves a column from a user-supplied name.
func ParseColumn(name string) (Column, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "title", "assignment_title":
		return ColumnTitle, nil
	case "due", "due_date", "date":
		return ColumnDue, nil
	case "status":
		return ColumnStatus, nil
	}
	return 0, fmt.Errorf("unknown column %q (want title, due, or status)", name)
}

// SortBy stably sorts items by the text field returns for col.
//
// The due-date column compares parsed dates. If any value in the set fails
// to parse, the whole sort falls back to case-insensitive text order rather
// than failing. All other columns compare case-insensitively as text.
func SortBy[T any](items []T, col Column, desc bool, field func(T, Column) string) {
	cmp := compareFolded[T](col, field)
	if col == ColumnDue {
		if dateCmp, ok := compareDates(items, col, field); ok {
			cmp = dateCmp
		}
	}
	if desc {
		asc := cmp
		cmp = func(a, b T) int { return asc(b, a) }
	}
	slices.SortStableFunc(items, cmp)
}

func compareFolded[T any](col Column, field func(T, Column) string) func(a, b T) int {
	return func(a, b T) int {
		return strings.Compare(strings.ToLower(field(a, col)), strings.ToLower(field(b, col)))
	}
}

func compareDates[T any](items []T, col Column, field func(T, Column) string) (func(a, b T) int, bool) {
	for _, it := range items {
		if !dateutil.IsValid(field(it, col)) {
			return nil, false
		}
	}
	return func(a, b T) int {
		da, _ := dateutil.Parse(field(a, col))
		db, _ := dateutil.Parse(field(b, col))
		return da.Compare(db)
	}, true
}

// RowField returns the display text of a row for col.
func RowField(r Row, col Column) string {
	switch col {
	case ColumnTitle:
		return r.Title
	case ColumnDue:
		return r.DueDate
	case ColumnStatus:
		return string(r.Status)
	default:
		return ""
	}
}

// Sorter remembers the sort applied to a list view. Each column keeps its
// own direction: the first request sorts ascending and every repeated
// request for the same column flips it.
type Sorter struct {
	active    Column
	hasActive bool
	desc      map[Column]bool
}

// Toggle selects col, flipping its direction if it was requested before.
func (s *Sorter) Toggle(col Column) {
	if s.desc == nil {
		s.desc = make(map[Column]bool)
	}
	if d, seen := s.desc[col]; seen {
		s.desc[col] = !d
	} else {
		s.desc[col] = false
	}
	s.active = col
	s.hasActive = true
}

// Active returns the current column and direction. ok is false before the
// first Toggle.
func (s *Sorter) Active() (col Column, desc bool, ok bool) {
	if !s.hasActive {
		return 0, false, false
	}
	return s.active, s.desc[s.active], true
}

// Sort applies the current column and direction to rows. It leaves rows in
// store order before the first Toggle.
func (s *Sorter) Sort(rows []Row) {
	col, desc, ok := s.Active()
	if !ok {
		return
	}
	SortBy(rows, col, desc, RowField)
}
