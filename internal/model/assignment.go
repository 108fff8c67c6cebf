package model

// Status is the completion state of an assignment.
type Status string

// Assignment status values. The only transition is Pending to Completed.
const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// Assignment is a single piece of coursework tracked under a tab.
type Assignment struct {
	ID      int64  `json:"id" db:"id"`
	TabName string `json:"tab_name" db:"tab_name"`
	Title   string `json:"title" db:"title"`
	// DueDate is kept in canonical YYYY-MM-DD form.
	DueDate string `json:"due_date" db:"due_date"`
	Status  Status `json:"status" db:"status"`
	Notes   string `json:"notes" db:"notes"`
}

// IsCompleted reports whether the assignment has been marked done.
func (a Assignment) IsCompleted() bool { return a.Status == StatusCompleted }
