package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Rows
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding

	// Pages
	NextPage  key.Binding
	PrevPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	Refresh   key.Binding

	// Actions
	SelectRows      key.Binding
	ToggleInspector key.Binding
	Quit            key.Binding
	Help            key.Binding
	Escape          key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle row"),
		),

		NextPage: key.NewBinding(
			key.WithKeys("n", "l", "right"),
			key.WithHelp("n/l/→", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "h", "left"),
			key.WithHelp("p/h/←", "previous page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "first page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "last page"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refetch page"),
		),

		SelectRows: key.NewBinding(
			key.WithKeys("#"),
			key.WithHelp("#", "select first N rows"),
		),
		ToggleInspector: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "toggle details"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.NextPage, k.PrevPage, k.SelectRows, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.NextPage, k.PrevPage, k.FirstPage, k.LastPage, k.Refresh},
		{k.SelectRows, k.ToggleInspector, k.Help, k.Escape, k.Quit},
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
