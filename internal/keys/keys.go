package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down    key.Binding
	Up      key.Binding
	PrevTab key.Binding
	NextTab key.Binding

	// Selection
	Select key.Binding
	Toggle key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Command palette
	Command key.Binding

	// Help toggle
	Help key.Binding

	// Manual refresh
	Refresh key.Binding

	// Assignment actions
	New      key.Binding
	Complete key.Binding
	Delete   key.Binding
	Rename   key.Binding

	// Views
	Tabs      key.Binding
	Dashboard key.Binding

	// Sort
	SortTitle  key.Binding
	SortDue    key.Binding
	SortStatus key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("[", "shift+tab"),
			key.WithHelp("[", "previous tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]", "tab"),
			key.WithHelp("]", "next tab"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details / notes"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Complete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "mark completed"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Rename: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "rename"),
		),
		Tabs: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "manage tabs"),
		),
		Dashboard: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "dashboard"),
		),
		SortTitle: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "sort by title"),
		),
		SortDue: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "sort by due date"),
		),
		SortStatus: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "sort by status"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.PrevTab, k.NextTab, k.New,
		k.Quit, k.Help,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevTab, k.NextTab, k.Select, k.Back, k.Quit},
		{k.Toggle, k.New, k.Complete, k.Delete, k.Rename},
		{k.SortTitle, k.SortDue, k.SortStatus},
		{k.Tabs, k.Dashboard, k.Command, k.Help, k.Refresh},
	}
}
