package assignmentlist

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/assignment-tracker/internal/keys"
	"github.com/nhle/assignment-tracker/internal/theme"
	"github.com/nhle/assignment-tracker/internal/tracker"
)

// TabsLoadedMsg carries the tab names in creation order.
type TabsLoadedMsg struct {
	Tabs []string
	Err  error
}

// RowsLoadedMsg carries the annotated assignments of one tab.
type RowsLoadedMsg struct {
	Tab  string
	Rows []tracker.Row
	Err  error
}

// ActionDoneMsg reports the outcome of a bulk action.
type ActionDoneMsg struct {
	Verb  string
	Count int
	Err   error
}

// OpenDetailMsg asks the parent to open the details view for an assignment.
type OpenDetailMsg struct {
	ID int64
}

// NewAssignmentMsg asks the parent to open the form for a new assignment.
type NewAssignmentMsg struct {
	Tab string
}

type formBindings struct {
	confirm bool
}

// Model is the per-tab assignment list.
type Model struct {
	list      list.Model
	mgr       *tracker.Manager
	keys      *keys.KeyMap
	tabs      []string
	active    int
	wantTab   string
	rows      []tracker.Row
	marked    map[string]bool
	sorter    tracker.Sorter
	focusID   int64
	confirm   *huh.Form
	fb        *formBindings
	pending   tracker.Selection
	statusMsg string
	width     int
	height    int
}

// New creates a new assignment list model.
func New(mgr *tracker.Manager, k *keys.KeyMap, width, height int) Model {
	marked := make(map[string]bool)
	l := list.New([]list.Item{}, rowDelegate{marked: marked}, width, listHeight(height))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return Model{
		list:   l,
		mgr:    mgr,
		keys:   k,
		marked: marked,
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Init loads the tabs and then the first tab's rows.
func (m Model) Init() tea.Cmd {
	return m.LoadTabs()
}

// ActiveTab returns the name of the tab being viewed, or "" when there are
// no tabs.
func (m Model) ActiveTab() string {
	if m.active < 0 || m.active >= len(m.tabs) {
		return ""
	}
	return m.tabs[m.active]
}

// Confirming reports whether the delete confirmation has focus.
func (m Model) Confirming() bool {
	return m.confirm != nil
}

// SetStatus shows a message above the list until the next action.
func (m *Model) SetStatus(msg string) {
	m.statusMsg = msg
}

// SelectTab switches to the named tab once the tab list is known.
func (m *Model) SelectTab(name string) tea.Cmd {
	m.wantTab = name
	return m.LoadTabs()
}

// Focus switches to tab and places the cursor on assignment id.
func (m *Model) Focus(tab string, id int64) tea.Cmd {
	m.focusID = id
	return m.SelectTab(tab)
}

// Update handles messages for the list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TabsLoadedMsg:
		if msg.Err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
			return m, nil
		}
		current := m.ActiveTab()
		if m.wantTab != "" {
			current = m.wantTab
		}
		if m.wantTab != "" && !contains(msg.Tabs, m.wantTab) {
			m.statusMsg = fmt.Sprintf("No tab named %q", m.wantTab)
		}
		m.wantTab = ""
		prev := m.active
		m.tabs = msg.Tabs
		m.active = indexOf(m.tabs, current)
		if m.active < 0 {
			// The tab went away; stay near where it was.
			m.active = min(max(prev, 0), len(m.tabs)-1)
		}
		if m.ActiveTab() == "" {
			m.rows = nil
			return m, m.refreshItems()
		}
		return m, m.LoadRows()

	case RowsLoadedMsg:
		if msg.Tab != m.ActiveTab() {
			return m, nil
		}
		if msg.Err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		}
		m.rows = msg.Rows
		return m, m.refreshItems()

	case ActionDoneMsg:
		if msg.Err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		} else {
			m.statusMsg = fmt.Sprintf("%s %d assignment(s)", msg.Verb, msg.Count)
			clear(m.marked)
		}
		return m, m.LoadRows()

	case tea.KeyMsg:
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		return m.handleKey(msg)
	}

	if m.confirm != nil {
		return m.updateConfirm(msg)
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevTab):
		return m, m.switchTab(-1)

	case key.Matches(msg, m.keys.NextTab):
		return m, m.switchTab(1)

	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.list.SelectedItem().(rowItem); ok {
			k := it.Key()
			if m.marked[k] {
				delete(m.marked, k)
			} else {
				m.marked[k] = true
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		it, ok := m.list.SelectedItem().(rowItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return OpenDetailMsg{ID: it.ID} }

	case key.Matches(msg, m.keys.New):
		tab := m.ActiveTab()
		if tab == "" {
			m.statusMsg = "Create a tab first (t)"
			return m, nil
		}
		return m, func() tea.Msg { return NewAssignmentMsg{Tab: tab} }

	case key.Matches(msg, m.keys.Complete):
		sel, err := m.selection()
		if err != nil {
			m.statusMsg = err.Error()
			return m, nil
		}
		return m, m.markCompleted(sel)

	case key.Matches(msg, m.keys.Delete):
		sel, err := m.selection()
		if err != nil {
			m.statusMsg = err.Error()
			return m, nil
		}
		m.pending = sel
		m.fb.confirm = false
		m.confirm = m.buildConfirmForm(len(sel.IDs))
		return m, m.confirm.Init()

	case key.Matches(msg, m.keys.SortTitle):
		return m, m.toggleSort(tracker.ColumnTitle)

	case key.Matches(msg, m.keys.SortDue):
		return m, m.toggleSort(tracker.ColumnDue)

	case key.Matches(msg, m.keys.SortStatus):
		return m, m.toggleSort(tracker.ColumnStatus)

	case key.Matches(msg, m.keys.Refresh):
		return m, m.LoadTabs()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) switchTab(delta int) tea.Cmd {
	if len(m.tabs) == 0 {
		return nil
	}
	m.active = (m.active + delta + len(m.tabs)) % len(m.tabs)
	m.statusMsg = ""
	clear(m.marked)
	m.rows = nil
	m.list.ResetSelected()
	return tea.Batch(m.list.SetItems(nil), m.LoadRows())
}

func (m *Model) toggleSort(col tracker.Column) tea.Cmd {
	m.sorter.Toggle(col)
	return m.refreshItems()
}

// refreshItems sorts the rows, drops stale marks, and hands the rows to the
// list widget.
func (m *Model) refreshItems() tea.Cmd {
	m.sorter.Sort(m.rows)

	live := make(map[string]bool, len(m.rows))
	items := make([]list.Item, len(m.rows))
	for i, r := range m.rows {
		it := rowItem{Row: r}
		items[i] = it
		live[it.Key()] = true
	}
	for k := range m.marked {
		if !live[k] {
			delete(m.marked, k)
		}
	}

	cmd := m.list.SetItems(items)
	if m.focusID != 0 {
		for i, r := range m.rows {
			if r.ID == m.focusID {
				m.list.Select(i)
				break
			}
		}
		m.focusID = 0
	}
	return cmd
}

// selection returns the marked rows, or the row under the cursor when
// nothing is marked.
func (m Model) selection() (tracker.Selection, error) {
	var raw []string
	for _, r := range m.rows {
		if k := (rowItem{Row: r}).Key(); m.marked[k] {
			raw = append(raw, k)
		}
	}
	if len(raw) == 0 {
		if it, ok := m.list.SelectedItem().(rowItem); ok {
			raw = []string{it.Key()}
		}
	}
	if len(raw) == 0 {
		return tracker.Selection{}, tracker.ErrNothingSelected
	}
	ids, err := tracker.ParseIDs(raw)
	if err != nil {
		return tracker.Selection{}, err
	}
	return tracker.Selection{Tab: m.ActiveTab(), IDs: ids}, nil
}

func (m Model) buildConfirmForm(n int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %d assignment(s)?", n)).
				Description("This cannot be undone.").
				Affirmative("Yes, delete").
				Negative("Cancel").
				Value(&m.fb.confirm),
		),
	).WithWidth(formWidth(m.width)).WithShowHelp(false)
}

func (m Model) updateConfirm(msg tea.Msg) (Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Back) {
		m.confirm = nil
		return m, nil
	}
	mdl, cmd := m.confirm.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.confirm = f
	}
	switch m.confirm.State {
	case huh.StateCompleted:
		m.confirm = nil
		if m.fb.confirm {
			return m, m.deleteAssignments(m.pending)
		}
		return m, nil
	case huh.StateAborted:
		m.confirm = nil
		return m, nil
	}
	return m, cmd
}

// View renders the tab strip, column header, and rows.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabStrip())
	b.WriteString("\n")

	if m.confirm != nil {
		b.WriteString(lipgloss.NewStyle().Padding(1, 2).Render(m.confirm.View()))
		return b.String()
	}

	if m.statusMsg != "" {
		b.WriteString(theme.MessageStyle.Render(m.statusMsg))
	}
	b.WriteString("\n")

	switch {
	case len(m.tabs) == 0:
		b.WriteString(theme.HintStyle.Render("No tabs yet. Press 't' to create one."))
	case len(m.rows) == 0:
		b.WriteString(theme.HintStyle.Render("No assignments in this tab. Press 'n' to add one."))
	default:
		b.WriteString(m.renderColumnHeader())
		b.WriteString("\n")
		b.WriteString(m.list.View())
	}
	return b.String()
}

func (m Model) renderTabStrip() string {
	if len(m.tabs) == 0 {
		return theme.TabStyle.Render("(no tabs)")
	}
	parts := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.active {
			parts[i] = theme.ActiveTabStyle.Render(t)
		} else {
			parts[i] = theme.TabStyle.Render(t)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderColumnHeader() string {
	col, desc, sorted := m.sorter.Active()
	label := func(c tracker.Column) string {
		s := c.String()
		if sorted && c == col {
			if desc {
				return s + " ▼"
			}
			return s + " ▲"
		}
		return s
	}
	header := formatColumns(m.list.Width(),
		label(tracker.ColumnTitle),
		label(tracker.ColumnDue),
		label(tracker.ColumnStatus),
	)
	return lipgloss.NewStyle().Bold(true).Render(strings.Repeat(" ", 6) + header)
}

// LoadTabs returns a command that reloads the tab names.
func (m Model) LoadTabs() tea.Cmd {
	mgr := m.mgr
	return func() tea.Msg {
		tabs, err := mgr.Tabs(context.Background())
		return TabsLoadedMsg{Tabs: tabs, Err: err}
	}
}

// LoadRows returns a command that reloads the active tab's rows.
func (m Model) LoadRows() tea.Cmd {
	tab := m.ActiveTab()
	if tab == "" {
		return nil
	}
	mgr := m.mgr
	return func() tea.Msg {
		rows, err := mgr.AssignmentsForTab(context.Background(), tab)
		return RowsLoadedMsg{Tab: tab, Rows: rows, Err: err}
	}
}

func (m Model) markCompleted(sel tracker.Selection) tea.Cmd {
	mgr := m.mgr
	return func() tea.Msg {
		n, err := mgr.MarkCompleted(context.Background(), sel)
		return ActionDoneMsg{Verb: "Completed", Count: n, Err: err}
	}
}

func (m Model) deleteAssignments(sel tracker.Selection) tea.Cmd {
	mgr := m.mgr
	return func() tea.Msg {
		n, err := mgr.DeleteAssignments(context.Background(), sel)
		return ActionDoneMsg{Verb: "Deleted", Count: n, Err: err}
	}
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, listHeight(height))
}

// listHeight leaves room for the tab strip, status line, and column header.
func listHeight(height int) int {
	return max(height-3, 1)
}

func formWidth(width int) int {
	return min(max(width-4, 40), 100)
}

func indexOf(items []string, s string) int {
	for i, it := range items {
		if it == s {
			return i
		}
	}
	return -1
}

func contains(items []string, s string) bool {
	return indexOf(items, s) >= 0
}

// Counts returns how many assignments the active tab holds and how many of
// them are completed.
func (m Model) Counts() (total, completed int) {
	for _, r := range m.rows {
		if r.IsCompleted() {
			completed++
		}
	}
	return len(m.rows), completed
}
