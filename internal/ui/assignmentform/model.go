package assignmentform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/assignment-tracker/internal/dateutil"
	"github.com/nhle/assignment-tracker/internal/theme"
	"github.com/nhle/assignment-tracker/internal/tracker"
)

// SubmittedMsg is dispatched when the form is filled in.
type SubmittedMsg struct {
	Input tracker.Input
}

// CancelMsg is dispatched when the user cancels the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title   string
	dueDate string
	notes   string
}

// Model is the Bubble Tea model for the new assignment form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	tab    string
	width  int
	height int
}

// New creates a new assignment form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Start resets the form for a new assignment in tab.
func (m *Model) Start(tab string) tea.Cmd {
	m.tab = tab
	*m.fb = formBindings{}
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		in := tracker.Input{
			Tab:     m.tab,
			Title:   m.fb.title,
			DueDate: m.fb.dueDate,
			Notes:   m.fb.notes,
		}
		m.form = nil
		return m, func() tea.Msg { return SubmittedMsg{Input: in} }
	case huh.StateAborted:
		m.form = nil
		return m, func() tea.Msg { return CancelMsg{} }
	}
	return m, cmd
}

// View renders the form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}
	title := theme.TitleStyle.Render(fmt.Sprintf("New Assignment in %s", m.tab))
	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(title + "\n" + m.form.View())
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Assignment Title").
				Placeholder("Chapter 3 problem set").
				Value(&m.fb.title).
				Validate(ValidateTitle),
			huh.NewInput().
				Title("Due Date").
				Placeholder(dateutil.FormatHint).
				Value(&m.fb.dueDate).
				Validate(ValidateDueDate),
			huh.NewText().
				Title("Notes").
				Placeholder("Optional").
				Value(&m.fb.notes),
		),
	).WithKeyMap(km).
		WithWidth(min(max(m.width-4, 40), 100)).
		WithHeight(max(m.height-4, 10))
}

// ValidateTitle rejects a blank title.
func ValidateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("please enter an assignment title")
	}
	return nil
}

// ValidateDueDate accepts only the canonical date format.
func ValidateDueDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("please enter a due date")
	}
	if !dateutil.IsValid(s) {
		return fmt.Errorf("invalid date, use %s", dateutil.FormatHint)
	}
	return nil
}
