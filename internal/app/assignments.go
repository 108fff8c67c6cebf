package app

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mitchellh/go-homedir"

	"github.com/nhle/assignment-tracker/internal/tracker"
	"github.com/nhle/assignment-tracker/internal/ui/detail"
	"github.com/nhle/assignment-tracker/internal/urgency"
)

// defaultTabReadyMsg is sent once the startup tab check has run.
type defaultTabReadyMsg struct {
	created bool
	err     error
}

// assignmentAddedMsg is sent after the form's assignment is persisted.
type assignmentAddedMsg struct {
	title string
	err   error
}

// notesSavedMsg is sent after notes are written.
type notesSavedMsg struct {
	ok bool
}

// importDoneMsg reports a CSV import.
type importDoneMsg struct {
	path  string
	count int
	err   error
}

// ensureDefaultTab creates the default tab when the database has none.
func (m *Model) ensureDefaultTab() tea.Cmd {
	mgr := m.mgr
	return func() tea.Msg {
		created, err := mgr.EnsureDefaultTab(context.Background())
		return defaultTabReadyMsg{created: created, err: err}
	}
}

// addAssignment validates and stores a new assignment.
func (m *Model) addAssignment(in tracker.Input) tea.Cmd {
	mgr := m.mgr
	return func() tea.Msg {
		_, err := mgr.AddAssignment(context.Background(), in)
		return assignmentAddedMsg{title: in.Title, err: err}
	}
}

// loadDetail loads an assignment and classifies it for the detail view.
func (m *Model) loadDetail(id int64) tea.Cmd {
	mgr := m.mgr
	return func() tea.Msg {
		a, err := mgr.Get(context.Background(), id)
		if err != nil || a == nil {
			return detail.LoadedMsg{}
		}
		return detail.LoadedMsg{
			Assignment: a,
			Bucket:     urgency.Classify(a.Status, a.DueDate, mgr.Today()),
		}
	}
}

// saveNotes persists edited notes.
func (m *Model) saveNotes(id int64, notes string) tea.Cmd {
	mgr := m.mgr
	return func() tea.Msg {
		return notesSavedMsg{ok: mgr.SaveNotes(context.Background(), id, notes)}
	}
}

// importFile reads a CSV file into tab.
func (m *Model) importFile(tab, path string) tea.Cmd {
	mgr := m.mgr
	return func() tea.Msg {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return importDoneMsg{path: path, err: err}
		}
		f, err := os.Open(expanded)
		if err != nil {
			return importDoneMsg{path: path, err: fmt.Errorf("opening %s: %w", path, err)}
		}
		defer f.Close()

		n, err := mgr.ImportCSV(context.Background(), tab, f)
		return importDoneMsg{path: path, count: n, err: err}
	}
}
