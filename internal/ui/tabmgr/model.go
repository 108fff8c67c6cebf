package tabmgr

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/assignment-tracker/internal/keys"
	"github.com/nhle/assignment-tracker/internal/theme"
	"github.com/nhle/assignment-tracker/internal/tracker"
)

// CloseMsg signals the parent to close the tab view.
type CloseMsg struct{}

// ChangedMsg signals that tabs were modified. Active names the tab the
// list should show afterwards, or is empty to keep the current one.
type ChangedMsg struct {
	Active string
}

type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirmDelete
)

type formBindings struct {
	name    string
	confirm bool
}

type tabSummary struct {
	name      string
	total     int
	completed int
}

type tabsLoadedMsg struct {
	tabs []tabSummary
	err  error
}

type tabSavedMsg struct {
	name    string
	created bool
	renamed bool
	err     error
}

type tabDeletedMsg struct {
	name string
	err  error
}

// Model is the Bubble Tea model for tab management.
type Model struct {
	mode        mode
	mgr         *tracker.Manager
	keys        *keys.KeyMap
	tabs        []tabSummary
	selectedIdx int
	renaming    string
	form        *huh.Form
	confirmForm *huh.Form
	fb          *formBindings
	statusMsg   string
	width       int
	height      int
}

// New creates a new tab manager model.
func New(mgr *tracker.Manager, k *keys.KeyMap, width, height int) Model {
	return Model{
		mode:   modeList,
		mgr:    mgr,
		keys:   k,
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Init loads tabs from the manager.
func (m Model) Init() tea.Cmd {
	return m.loadTabs()
}

// Editing reports whether a form has keyboard focus.
func (m Model) Editing() bool {
	return m.mode != modeList
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tabsLoadedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
		}
		m.tabs = msg.tabs
		if m.selectedIdx >= len(m.tabs) {
			m.selectedIdx = max(len(m.tabs)-1, 0)
		}
		return m, nil

	case tabSavedMsg:
		m.mode = modeList
		switch {
		case msg.err != nil:
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		case msg.renamed:
			m.statusMsg = fmt.Sprintf("Renamed to %q", msg.name)
		case !msg.created:
			m.statusMsg = fmt.Sprintf("Tab %q already exists", msg.name)
			return m, nil
		default:
			m.statusMsg = fmt.Sprintf("Added %q", msg.name)
		}
		name := msg.name
		return m, tea.Batch(m.loadTabs(), func() tea.Msg { return ChangedMsg{Active: name} })

	case tabDeletedMsg:
		m.mode = modeList
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Deleted %q", msg.name)
		return m, tea.Batch(m.loadTabs(), func() tea.Msg { return ChangedMsg{} })

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveForm(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.mode != modeList && key.Matches(msg, m.keys.Back) {
		m.mode = modeList
		return m, nil
	}
	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return CloseMsg{} }

	case key.Matches(msg, m.keys.Down):
		if len(m.tabs) > 0 {
			m.selectedIdx = (m.selectedIdx + 1) % len(m.tabs)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if len(m.tabs) > 0 {
			m.selectedIdx--
			if m.selectedIdx < 0 {
				m.selectedIdx = len(m.tabs) - 1
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.renaming = ""
		m.fb.name = ""
		m.form = m.buildForm("New tab")
		m.mode = modeForm
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Rename):
		if len(m.tabs) == 0 {
			return m, nil
		}
		m.renaming = m.tabs[m.selectedIdx].name
		m.fb.name = m.renaming
		m.form = m.buildForm(fmt.Sprintf("Rename %q", m.renaming))
		m.mode = modeForm
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		if len(m.tabs) == 0 {
			return m, nil
		}
		m.fb.confirm = false
		m.confirmForm = m.buildConfirmForm()
		m.mode = modeConfirmDelete
		return m, m.confirmForm.Init()
	}
	return m, nil
}

func (m Model) buildForm(title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder("Tab name").
				Value(&m.fb.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
		),
	).WithWidth(m.formWidth()).WithShowHelp(false)
}

func (m Model) buildConfirmForm() *huh.Form {
	t := m.tabs[m.selectedIdx]
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete tab %q?", t.name)).
				Description(fmt.Sprintf("Its %d assignment(s) will be deleted too.", t.total)).
				Affirmative("Yes, delete").
				Negative("Cancel").
				Value(&m.fb.confirm),
		),
	).WithWidth(m.formWidth()).WithShowHelp(false)
}

func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		return m, m.saveTab()
	case huh.StateAborted:
		m.mode = modeList
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (Model, tea.Cmd) {
	if m.confirmForm == nil {
		return m, nil
	}
	mdl, cmd := m.confirmForm.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.confirmForm = f
	}
	switch m.confirmForm.State {
	case huh.StateCompleted:
		if m.fb.confirm {
			return m, m.deleteTab(m.tabs[m.selectedIdx].name)
		}
		m.mode = modeList
		return m, nil
	case huh.StateAborted:
		m.mode = modeList
		return m, nil
	}
	return m, cmd
}

func (m Model) updateActiveForm(msg tea.Msg) (Model, tea.Cmd) {
	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	}
	return m, nil
}

// View renders the tab manager.
func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return m.viewForm(m.form)
	case modeConfirmDelete:
		return m.viewForm(m.confirmForm)
	default:
		return m.viewList()
	}
}

func (m Model) viewList() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("Tabs"))
	b.WriteString("\n\n")

	if len(m.tabs) == 0 {
		b.WriteString(theme.HintStyle.Render("No tabs yet. Press 'n' to create one."))
	} else {
		for i, t := range m.tabs {
			label := fmt.Sprintf("%s  (%d/%d done)", t.name, t.completed, t.total)
			if i == m.selectedIdx {
				b.WriteString(theme.CursorStyle.Render("> " + label))
			} else {
				b.WriteString("  " + label)
			}
			b.WriteString("\n")
		}
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.MessageStyle.Render(m.statusMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.HintStyle.Render("n new | e rename | d delete | esc back"))

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Render(b.String())
}

func (m Model) viewForm(f *huh.Form) string {
	if f == nil {
		return ""
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(f.View())
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) formWidth() int {
	return min(max(m.width-4, 40), 100)
}

func (m Model) loadTabs() tea.Cmd {
	mgr := m.mgr
	return func() tea.Msg {
		ctx := context.Background()
		names, err := mgr.Tabs(ctx)
		if err != nil {
			return tabsLoadedMsg{err: err}
		}
		tabs := make([]tabSummary, 0, len(names))
		for _, name := range names {
			total, completed, err := mgr.TabSummary(ctx, name)
			if err != nil {
				return tabsLoadedMsg{tabs: tabs, err: err}
			}
			tabs = append(tabs, tabSummary{name: name, total: total, completed: completed})
		}
		return tabsLoadedMsg{tabs: tabs}
	}
}

func (m Model) saveTab() tea.Cmd {
	mgr := m.mgr
	name := strings.TrimSpace(m.fb.name)
	oldName := m.renaming
	return func() tea.Msg {
		ctx := context.Background()
		if oldName != "" {
			err := mgr.RenameTab(ctx, oldName, name)
			return tabSavedMsg{name: name, renamed: err == nil, err: err}
		}
		created, err := mgr.AddTab(ctx, name)
		return tabSavedMsg{name: name, created: created, err: err}
	}
}

func (m Model) deleteTab(name string) tea.Cmd {
	mgr := m.mgr
	return func() tea.Msg {
		err := mgr.DeleteTab(context.Background(), name)
		return tabDeletedMsg{name: name, err: err}
	}
}
