// Package dateutil parses and formats the single canonical date form used
// for storage, display, and input.
package dateutil

import (
	"fmt"
	"time"
)

// Layout is the canonical date layout. Dates in this form sort
// lexicographically in calendar order.
const Layout = "2006-01-02"

// FormatHint is the user-facing description of Layout.
const FormatHint = "YYYY-MM-DD"

// FormatError reports text that is not a canonical date.
type FormatError struct {
	Text     string
	Expected string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("date %q does not match format %s", e.Text, e.Expected)
}

// Parse converts canonical text into a calendar date at UTC midnight.
func Parse(text string) (time.Time, error) {
	t, err := time.Parse(Layout, text)
	if err != nil {
		return time.Time{}, &FormatError{Text: text, Expected: FormatHint}
	}
	return t, nil
}

// Format renders a date in the canonical layout.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// IsValid reports whether Parse would accept text.
func IsValid(text string) bool {
	_, err := Parse(text)
	return err == nil
}

// Today returns the calendar date of now, in now's location, as UTC midnight
// so it compares directly with values returned by Parse.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from one calendar date to
// another. It is negative when to is before from.
func DaysBetween(from, to time.Time) int {
	return int(Today(to).Sub(Today(from)).Hours() / 24)
}
