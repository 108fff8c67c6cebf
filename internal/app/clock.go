package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/assignment-tracker/internal/dateutil"
)

// dayCheckInterval is how often the UI checks whether the date changed.
const dayCheckInterval = time.Minute

// dayTickMsg carries the current date as seen by the manager.
type dayTickMsg struct {
	day string
}

// watchDay schedules the next date check.
func (m Model) watchDay() tea.Cmd {
	mgr := m.mgr
	return tea.Tick(dayCheckInterval, func(time.Time) tea.Msg {
		return dayTickMsg{day: dateutil.Format(mgr.Today())}
	})
}

// handleDayTick reloads rows after midnight so urgency buckets follow the
// calendar, then re-arms the check.
func (m Model) handleDayTick(msg dayTickMsg) (Model, tea.Cmd) {
	if msg.day == m.today {
		return m, m.watchDay()
	}
	m.today = msg.day
	cmds := []tea.Cmd{m.watchDay(), m.list.LoadRows()}
	if m.currentView == ViewDashboard {
		cmds = append(cmds, m.dashView.Load())
	}
	return m, tea.Batch(cmds...)
}
