// Package urgency maps an assignment's status and due date to a display
// bucket and the fixed color pair used to render it.
package urgency

import (
	"time"

	"github.com/nhle/assignment-tracker/internal/dateutil"
	"github.com/nhle/assignment-tracker/internal/model"
)

// Bucket is a display-priority classification.
type Bucket string

const (
	Completed        Bucket = "completed"
	OverdueOrDueSoon Bucket = "overdue_or_due_soon"
	DueThisWeek      Bucket = "due_this_week"
	DueInTwoWeeks    Bucket = "due_in_two_weeks"
	DueLater         Bucket = "due_later"
	// Unclassified is returned for due dates that do not parse. Views render
	// it without color emphasis.
	Unclassified Bucket = "unclassified"
)

// Day thresholds, inclusive upper bounds.
const (
	soonDays     = 3
	weekDays     = 7
	twoWeeksDays = 14
)

// Buckets lists the colored buckets in legend order.
var Buckets = []Bucket{OverdueOrDueSoon, DueThisWeek, DueInTwoWeeks, DueLater, Completed}

// Classify buckets an assignment whose due date is in canonical text form.
func Classify(status model.Status, dueDate string, today time.Time) Bucket {
	if status == model.StatusCompleted {
		return Completed
	}
	due, err := dateutil.Parse(dueDate)
	if err != nil {
		return Unclassified
	}
	return ClassifyDate(status, due, today)
}

// ClassifyDate buckets an assignment with an already parsed due date.
func ClassifyDate(status model.Status, due, today time.Time) Bucket {
	if status == model.StatusCompleted {
		return Completed
	}
	delta := dateutil.DaysBetween(today, due)
	switch {
	case delta <= soonDays:
		return OverdueOrDueSoon
	case delta <= weekDays:
		return DueThisWeek
	case delta <= twoWeeksDays:
		return DueInTwoWeeks
	default:
		return DueLater
	}
}

// Label returns short legend text for the bucket.
func (b Bucket) Label() string {
	switch b {
	case Completed:
		return "completed"
	case OverdueOrDueSoon:
		return "overdue / due in 3 days"
	case DueThisWeek:
		return "due this week"
	case DueInTwoWeeks:
		return "due in two weeks"
	case DueLater:
		return "due later"
	default:
		return "unknown date"
	}
}
