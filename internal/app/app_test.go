package app

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/assignment-tracker/internal/dateutil"
	"github.com/nhle/assignment-tracker/internal/tracker"
	"github.com/nhle/assignment-tracker/internal/ui/command"
	"github.com/nhle/assignment-tracker/tests/testutil"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	fixed := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	mgr := tracker.New(testutil.NewTestStore(t), tracker.WithClock(func() time.Time { return fixed }))
	return New(mgr)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, runeKey('?'))
	assert.Equal(t, ViewHelp, m.currentView)

	m = update(t, m, runeKey('?'))
	assert.Equal(t, ViewList, m.currentView)
}

func TestShortcutsIgnoredWhileTyping(t *testing.T) {
	m := newTestModel(t)
	m.currentView = ViewForm

	m = update(t, m, runeKey('?'))
	assert.Equal(t, ViewForm, m.currentView)

	m = update(t, m, runeKey('D'))
	assert.Equal(t, ViewForm, m.currentView)
}

func TestPaletteCommands(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, runeKey(':'))
	require.Equal(t, ViewCommand, m.currentView)

	m = update(t, m, command.CommandMsg{Verb: command.VerbDashboard})
	assert.Equal(t, ViewDashboard, m.currentView)

	m = update(t, m, command.CommandMsg{Verb: command.VerbTabs})
	assert.Equal(t, ViewTabs, m.currentView)

	// Palette results return to the view the palette was opened from.
	m = update(t, m, command.CommandMsg{Verb: "bogus"})
	assert.Equal(t, ViewList, m.currentView)
}

func TestDayTickReloadsOnlyWhenDateChanges(t *testing.T) {
	m := newTestModel(t)
	today := m.today

	m = update(t, m, dayTickMsg{day: today})
	assert.Equal(t, today, m.today)

	m = update(t, m, dayTickMsg{day: "2024-03-02"})
	assert.Equal(t, "2024-03-02", m.today)
}

func TestAddResultText(t *testing.T) {
	assert.Equal(t, `Added "Essay"`, addResultText(assignmentAddedMsg{title: "Essay"}))
	assert.Equal(t, "Please enter an assignment title",
		addResultText(assignmentAddedMsg{err: tracker.ErrTitleRequired}))
	assert.Equal(t, `Invalid date "5/1", use YYYY-MM-DD`,
		addResultText(assignmentAddedMsg{err: &dateutil.FormatError{Text: "5/1", Expected: dateutil.FormatHint}}))
	assert.Equal(t, "Error: disk full",
		addResultText(assignmentAddedMsg{err: errors.New("disk full")}))
}
