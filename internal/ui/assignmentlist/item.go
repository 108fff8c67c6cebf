package assignmentlist

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/assignment-tracker/internal/theme"
	"github.com/nhle/assignment-tracker/internal/tracker"
)

const (
	dueWidth    = 12
	statusWidth = 11
	markerWidth = 6
)

// rowItem wraps a tracker.Row so it can be used in a bubbles/list.
type rowItem struct {
	tracker.Row
}

// Key is the row's identifier as the list knows it.
func (i rowItem) Key() string { return strconv.FormatInt(i.ID, 10) }

// FilterValue returns the string used for filtering.
func (i rowItem) FilterValue() string { return i.Title }

// rowDelegate implements list.ItemDelegate for assignment rows.
type rowDelegate struct {
	// marked is shared with the list Model so toggles are visible here.
	marked map[string]bool
}

func (d rowDelegate) Height() int                             { return 1 }
func (d rowDelegate) Spacing() int                            { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render draws a single assignment line colored by its urgency bucket.
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(rowItem)
	if !ok {
		return
	}

	cursor := "  "
	if index == m.Index() {
		cursor = theme.CursorStyle.Render("> ")
	}
	check := "[ ]"
	if d.marked[it.Key()] {
		check = "[x]"
	}

	line := formatColumns(m.Width(), it.Title, it.DueDate, string(it.Status))
	fmt.Fprint(w, cursor+check+" "+theme.UrgencyStyle(it.Bucket).Render(line))
}

// formatColumns lays out the three visible columns in width.
func formatColumns(width int, title, due, status string) string {
	titleWidth := width - markerWidth - dueWidth - statusWidth
	if titleWidth < 10 {
		titleWidth = 10
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		cell(title, titleWidth),
		cell(due, dueWidth),
		cell(status, statusWidth),
	)
}

func cell(s string, width int) string {
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Inline(true).Render(" " + s)
}
