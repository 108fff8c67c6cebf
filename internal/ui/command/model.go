package command

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/assignment-tracker/internal/theme"
)

// Palette verbs.
const (
	VerbImport    = "import"
	VerbDashboard = "dashboard"
	VerbTabs      = "tabs"
	VerbTab       = "tab"
	VerbNew       = "new"
	VerbQuit      = "quit"
)

// Usage lists the palette commands for the help view.
var Usage = []string{
	"import <path>   import a CSV file into the current tab",
	"tab <name>      switch to a tab",
	"new             add an assignment",
	"tabs            manage tabs",
	"dashboard       show upcoming assignments",
	"quit            exit",
}

// CommandMsg is emitted when the user executes a command.
type CommandMsg struct {
	Verb string
	Arg  string
}

// CancelMsg is emitted when the user leaves the palette without running
// anything.
type CancelMsg struct{}

// Parse splits a command line into its verb and argument. The verb is
// lower-cased; the argument keeps its spacing apart from the outer edges.
func Parse(line string) CommandMsg {
	line = strings.TrimSpace(line)
	verb, arg, _ := strings.Cut(line, " ")
	verb = strings.ToLower(verb)
	switch verb {
	case "q":
		verb = VerbQuit
	case "d", "dash":
		verb = VerbDashboard
	}
	return CommandMsg{Verb: verb, Arg: strings.TrimSpace(arg)}
}

// Model is the command palette view.
type Model struct {
	input  textinput.Model
	width  int
	height int
}

// New creates a new command palette model.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "type a command..."
	ti.Prompt = ": "
	ti.Width = width - 6

	return Model{
		input:  ti,
		width:  width,
		height: height,
	}
}

// Update handles messages for the command palette.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			line := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(line) == "" {
				return m, func() tea.Msg { return CancelMsg{} }
			}
			cmd := Parse(line)
			return m, func() tea.Msg { return cmd }
		case "esc":
			m.input.Reset()
			return m, func() tea.Msg { return CancelMsg{} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the command palette.
func (m Model) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.TitleStyle.Render("Command Palette"),
		m.input.View(),
		"",
		theme.HintStyle.Render(strings.Join(Usage, "\n")),
	)
	return theme.PanelStyle.
		Width(max(m.width-4, 0)).
		Render(content)
}

// SetSize updates the command palette dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}

// Focus gives keyboard focus to the text input.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}
