package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/assignment-tracker/internal/dateutil"
	"github.com/nhle/assignment-tracker/internal/keys"
	"github.com/nhle/assignment-tracker/internal/theme"
	"github.com/nhle/assignment-tracker/internal/tracker"
	"github.com/nhle/assignment-tracker/internal/ui"
	"github.com/nhle/assignment-tracker/internal/ui/assignmentform"
	"github.com/nhle/assignment-tracker/internal/ui/assignmentlist"
	"github.com/nhle/assignment-tracker/internal/ui/command"
	"github.com/nhle/assignment-tracker/internal/ui/dashboard"
	"github.com/nhle/assignment-tracker/internal/ui/detail"
	helpview "github.com/nhle/assignment-tracker/internal/ui/help"
	"github.com/nhle/assignment-tracker/internal/ui/tabmgr"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewList ViewState = iota
	ViewDetail
	ViewHelp
	ViewCommand
	ViewForm
	ViewTabs
	ViewDashboard
)

// Model is the root Bubble Tea model that manages view routing and
// layout.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	mgr          *tracker.Manager
	keys         *keys.KeyMap
	list         assignmentlist.Model
	detail       detail.Model
	helpView     helpview.Model
	commandView  command.Model
	form         assignmentform.Model
	tabView      tabmgr.Model
	dashView     dashboard.Model
	today        string
	ready        bool
}

// New creates the root application model over mgr.
func New(mgr *tracker.Manager) Model {
	k := keys.DefaultKeyMap()
	return Model{
		currentView: ViewList,
		mgr:         mgr,
		keys:        k,
		list:        assignmentlist.New(mgr, k, 80, 24),
		detail:      detail.New(k, 80, 24),
		helpView:    helpview.New(k, 80, 24),
		commandView: command.New(80, 24),
		form:        assignmentform.New(80, 24),
		tabView:     tabmgr.New(mgr, k, 80, 24),
		dashView:    dashboard.New(mgr, k, 80, 24),
		today:       dateutil.Format(mgr.Today()),
	}
}

// Init makes sure a tab exists before the list loads and starts watching
// for the date to change.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.ensureDefaultTab(), m.watchDay())
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
		m.list.SetSize(w, h)
		m.detail.SetSize(w, h)
		m.helpView.SetSize(w, h)
		m.commandView.SetSize(w, h)
		m.form.SetSize(w, h)
		m.tabView.SetSize(w, h)
		m.dashView.SetSize(w, h)
		// Forward to the active view so huh forms can lay out.
		return m.updateActiveView(msg)

	case dayTickMsg:
		return m.handleDayTick(msg)

	case defaultTabReadyMsg:
		if msg.err != nil {
			log.Printf("app: ensuring default tab: %v", msg.err)
			m.list.SetStatus(fmt.Sprintf("Error: %v", msg.err))
		}
		return m, m.list.Init()

	// Results owned by the list are routed to it whatever view is active.
	case assignmentlist.TabsLoadedMsg, assignmentlist.RowsLoadedMsg, assignmentlist.ActionDoneMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd

	case assignmentlist.OpenDetailMsg:
		m.currentView = ViewDetail
		m.detail.SetLoading(true)
		return m, m.loadDetail(msg.ID)

	case assignmentlist.NewAssignmentMsg:
		return m, m.openForm(msg.Tab)

	case assignmentform.SubmittedMsg:
		m.currentView = ViewList
		return m, m.addAssignment(msg.Input)

	case assignmentform.CancelMsg:
		m.currentView = ViewList
		return m, nil

	case assignmentAddedMsg:
		m.list.SetStatus(addResultText(msg))
		return m, m.list.LoadRows()

	case detail.BackMsg:
		m.currentView = ViewList
		return m, nil

	case detail.SaveNotesMsg:
		m.currentView = ViewList
		return m, m.saveNotes(msg.ID, msg.Notes)

	case notesSavedMsg:
		if msg.ok {
			m.list.SetStatus("Notes saved")
		} else {
			m.list.SetStatus("Could not save notes")
		}
		return m, m.list.LoadRows()

	case tabmgr.CloseMsg:
		m.currentView = ViewList
		return m, m.list.LoadTabs()

	case tabmgr.ChangedMsg:
		if msg.Active != "" {
			return m, m.list.SelectTab(msg.Active)
		}
		return m, m.list.LoadTabs()

	case dashboard.CloseMsg:
		m.currentView = ViewList
		return m, nil

	case dashboard.JumpMsg:
		m.currentView = ViewList
		return m, m.list.Focus(msg.Tab, msg.ID)

	case command.CancelMsg:
		m.currentView = m.previousView
		return m, nil

	case command.CommandMsg:
		m.currentView = m.previousView
		return m, m.executeCommand(msg)

	case importDoneMsg:
		if msg.err != nil {
			m.list.SetStatus(importErrorText(msg.err))
		} else {
			m.list.SetStatus(fmt.Sprintf("Imported %d assignment(s) from %s", msg.count, msg.path))
		}
		return m, m.list.LoadRows()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.capturingInput() {
			if next, cmd, handled := m.handleGlobalKey(msg); handled {
				return next, cmd
			}
		}
	}

	return m.updateActiveView(msg)
}

// capturingInput reports whether the active view is taking free text, in
// which case single-letter shortcuts belong to it.
func (m Model) capturingInput() bool {
	switch m.currentView {
	case ViewCommand, ViewForm, ViewDetail:
		return true
	case ViewTabs:
		return m.tabView.Editing()
	case ViewList:
		return m.list.Confirming()
	}
	return false
}

func (m Model) handleGlobalKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.currentView == ViewList {
			return m, tea.Quit, true
		}

	case key.Matches(msg, m.keys.Help):
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return m, nil, true
		}
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return m, nil, true

	case key.Matches(msg, m.keys.Command):
		m.previousView = m.currentView
		m.currentView = ViewCommand
		return m, m.commandView.Focus(), true

	case key.Matches(msg, m.keys.Back):
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return m, nil, true
		}

	case key.Matches(msg, m.keys.Dashboard):
		if m.currentView == ViewList {
			return m, m.openDashboard(), true
		}

	case key.Matches(msg, m.keys.Tabs):
		if m.currentView == ViewList {
			return m, m.openTabs(), true
		}
	}
	return m, nil, false
}

func (m *Model) openForm(tab string) tea.Cmd {
	m.currentView = ViewForm
	return m.form.Start(tab)
}

func (m *Model) openDashboard() tea.Cmd {
	m.currentView = ViewDashboard
	return m.dashView.Init()
}

func (m *Model) openTabs() tea.Cmd {
	m.currentView = ViewTabs
	return m.tabView.Init()
}

// executeCommand handles a command from the palette.
func (m *Model) executeCommand(c command.CommandMsg) tea.Cmd {
	switch c.Verb {
	case command.VerbQuit:
		return tea.Quit
	case command.VerbDashboard:
		return m.openDashboard()
	case command.VerbTabs:
		return m.openTabs()
	case command.VerbNew:
		tab := m.list.ActiveTab()
		if tab == "" {
			m.list.SetStatus("Create a tab first (t)")
			return nil
		}
		return m.openForm(tab)
	case command.VerbTab:
		m.currentView = ViewList
		return m.list.SelectTab(c.Arg)
	case command.VerbImport:
		m.currentView = ViewList
		tab := m.list.ActiveTab()
		if c.Arg == "" {
			m.list.SetStatus("Usage: import <path>")
			return nil
		}
		if tab == "" {
			m.list.SetStatus("Create a tab first (t)")
			return nil
		}
		return m.importFile(tab, c.Arg)
	default:
		m.list.SetStatus(fmt.Sprintf("Unknown command %q", c.Verb))
		return nil
	}
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewList:
		m.list, cmd = m.list.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	case ViewForm:
		m.form, cmd = m.form.Update(msg)
	case ViewTabs:
		m.tabView, cmd = m.tabView.Update(msg)
	case ViewDashboard:
		m.dashView, cmd = m.dashView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Assignment Tracker", m.summary())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, theme.Legend(), statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewList:
		return m.list.View()
	case ViewDetail:
		return m.detail.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	case ViewForm:
		return m.form.View()
	case ViewTabs:
		return m.tabView.View()
	case ViewDashboard:
		return m.dashView.View()
	default:
		return ""
	}
}

// summary describes the active tab for the header.
func (m Model) summary() string {
	tab := m.list.ActiveTab()
	if tab == "" {
		return dateutil.Format(m.mgr.Today())
	}
	total, completed := m.list.Counts()
	return fmt.Sprintf("%s: %d/%d done | %s", tab, completed, total, dateutil.Format(m.mgr.Today()))
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return "enter execute | esc back"
	case ViewDetail:
		return "enter save notes | esc back"
	case ViewForm:
		return "enter next | esc cancel"
	case ViewTabs:
		return "n new | e rename | d delete | esc back"
	case ViewDashboard:
		return "enter open | r refresh | esc back"
	default:
		return "q quit | ? help | [ ] tabs | space select | x complete | d delete | n new | 1/2/3 sort | t tabs | D dashboard | : command"
	}
}

func addResultText(msg assignmentAddedMsg) string {
	var fe *dateutil.FormatError
	switch {
	case msg.err == nil:
		return fmt.Sprintf("Added %q", msg.title)
	case errors.As(msg.err, &fe):
		return fmt.Sprintf("Invalid date %q, use %s", fe.Text, fe.Expected)
	case errors.Is(msg.err, tracker.ErrTitleRequired):
		return "Please enter an assignment title"
	case errors.Is(msg.err, tracker.ErrDueDateRequired):
		return "Please enter a due date"
	default:
		return fmt.Sprintf("Error: %v", msg.err)
	}
}

func importErrorText(err error) string {
	var missing *tracker.MissingColumnsError
	if errors.As(err, &missing) {
		return missing.Error()
	}
	return fmt.Sprintf("Import failed: %v", err)
}
