package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/assignment-tracker/internal/dateutil"
	"github.com/nhle/assignment-tracker/internal/keys"
	"github.com/nhle/assignment-tracker/internal/theme"
	"github.com/nhle/assignment-tracker/internal/tracker"
)

// CloseMsg signals the parent to close the dashboard.
type CloseMsg struct{}

// JumpMsg asks the parent to show an assignment in its tab.
type JumpMsg struct {
	Tab string
	ID  int64
}

// LoadedMsg carries the dashboard entries.
type LoadedMsg struct {
	Entries []tracker.DashboardEntry
}

// Model lists the nearest upcoming assignments across all tabs.
type Model struct {
	mgr     *tracker.Manager
	keys    *keys.KeyMap
	entries []tracker.DashboardEntry
	cursor  int
	loaded  bool
	width   int
	height  int
}

// New creates a new dashboard model.
func New(mgr *tracker.Manager, k *keys.KeyMap, width, height int) Model {
	return Model{mgr: mgr, keys: k, width: width, height: height}
}

// Init loads the entries.
func (m Model) Init() tea.Cmd {
	return m.Load()
}

// Load returns a command that recomputes the dashboard.
func (m Model) Load() tea.Cmd {
	mgr := m.mgr
	return func() tea.Msg {
		return LoadedMsg{Entries: mgr.Dashboard(context.Background())}
	}
}

// Update handles messages for the dashboard.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.entries = msg.Entries
		m.loaded = true
		m.cursor = min(m.cursor, max(len(m.entries)-1, 0))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return CloseMsg{} }
		case key.Matches(msg, m.keys.Refresh):
			return m, m.Load()
		case key.Matches(msg, m.keys.Down):
			if len(m.entries) > 0 {
				m.cursor = (m.cursor + 1) % len(m.entries)
			}
		case key.Matches(msg, m.keys.Up):
			if len(m.entries) > 0 {
				m.cursor = (m.cursor - 1 + len(m.entries)) % len(m.entries)
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.entries) == 0 {
				return m, nil
			}
			e := m.entries[m.cursor]
			return m, func() tea.Msg { return JumpMsg{Tab: e.TabName, ID: e.ID} }
		}
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Upcoming Assignments"))
	b.WriteString("\n")

	switch {
	case !m.loaded:
		b.WriteString(theme.HintStyle.Render("Loading..."))
	case len(m.entries) == 0:
		b.WriteString(theme.HintStyle.Render("Nothing due. Enjoy the break."))
	default:
		today := m.mgr.Today()
		tabWidth, titleWidth := columnWidths(m.entries)
		for i, e := range m.entries {
			line := fmt.Sprintf("%-*s  %-*s  %s  %s",
				tabWidth, e.TabName,
				titleWidth, e.Title,
				dateutil.Format(e.Due),
				daysLeft(dateutil.DaysBetween(today, e.Due)),
			)
			line = theme.UrgencyStyle(e.Bucket).Render(line)
			if i == m.cursor {
				line = theme.CursorStyle.Render("> ") + line
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.HintStyle.Render("enter open | r refresh | esc back"))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// SetSize updates the dashboard dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func columnWidths(entries []tracker.DashboardEntry) (tab, title int) {
	for _, e := range entries {
		tab = max(tab, lipgloss.Width(e.TabName))
		title = max(title, lipgloss.Width(e.Title))
	}
	return tab, min(title, 48)
}

func daysLeft(n int) string {
	switch n {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", n)
	}
}
