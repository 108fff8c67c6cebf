package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/assignment-tracker/internal/keys"
	"github.com/nhle/assignment-tracker/internal/model"
	"github.com/nhle/assignment-tracker/internal/theme"
	"github.com/nhle/assignment-tracker/internal/urgency"
)

// BackMsg signals the parent to navigate back to the list view.
type BackMsg struct{}

// LoadedMsg carries the assignment to show. Assignment is nil when it no
// longer exists.
type LoadedMsg struct {
	Assignment *model.Assignment
	Bucket     urgency.Bucket
}

// SaveNotesMsg asks the parent to persist edited notes.
type SaveNotesMsg struct {
	ID    int64
	Notes string
}

type formBindings struct {
	notes string
}

// Model shows an assignment's details and edits its notes.
type Model struct {
	assignment *model.Assignment
	bucket     urgency.Bucket
	form       *huh.Form
	fb         *formBindings
	keys       *keys.KeyMap
	width      int
	height     int
	loading    bool
}

// New creates a new detail view model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{
		fb:     &formBindings{},
		keys:   k,
		width:  width,
		height: height,
	}
}

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.loading = false
		m.assignment = msg.Assignment
		m.bucket = msg.Bucket
		if m.assignment == nil {
			m.form = nil
			return m, nil
		}
		m.fb.notes = m.assignment.Notes
		m.form = m.buildForm()
		return m, m.form.Init()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Back) || m.form == nil {
			return m, func() tea.Msg { return BackMsg{} }
		}
	}

	if m.form == nil {
		return m, nil
	}
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		id, notes := m.assignment.ID, m.fb.notes
		m.form = nil
		return m, func() tea.Msg { return SaveNotesMsg{ID: id, Notes: notes} }
	}
	return m, cmd
}

// View renders the detail view.
func (m Model) View() string {
	placeholder := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)
	if m.loading {
		return placeholder.Render("Loading assignment...")
	}
	if m.assignment == nil {
		return placeholder.Render("Assignment not found")
	}

	a := m.assignment
	label := lipgloss.NewStyle().Foreground(theme.ColorGray)
	sections := []string{
		theme.TitleStyle.Render(a.Title),
		fmt.Sprintf("%s  %s", label.Render("Tab:     "), a.TabName),
		fmt.Sprintf("%s  %s", label.Render("Due Date:"), a.DueDate),
		fmt.Sprintf("%s  %s", label.Render("Status:  "), a.Status),
		fmt.Sprintf("%s  %s", label.Render("Urgency: "), theme.UrgencyStyle(m.bucket).Padding(0, 1).Render(m.bucket.Label())),
		"",
		lipgloss.NewStyle().Foreground(theme.ColorSubtle).Render(strings.Repeat("─", min(max(m.width-4, 0), 80))),
	}
	if m.form != nil {
		sections = append(sections, m.form.View())
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Notes").
				Description("enter to save, alt+enter for a new line").
				Value(&m.fb.notes),
		),
	).WithShowHelp(false).
		WithWidth(min(max(m.width-4, 40), 100))
}

// SetLoading sets the loading state.
func (m *Model) SetLoading(loading bool) {
	m.loading = loading
}

// SetSize updates the detail view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
