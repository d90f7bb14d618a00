package components

import "github.com/charmbracelet/bubbles/key"

// RecordTableKeyMap defines key bindings for moving the table cursor
type RecordTableKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	HalfUp   key.Binding
	HalfDown key.Binding
}

// DefaultRecordTableKeyMap returns the default record table key bindings.
// g/G belong to page navigation, so row jumps use home/end.
func DefaultRecordTableKeyMap() RecordTableKeyMap {
	return RecordTableKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first row"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last row"),
		),
		HalfUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("C-u", "half page up"),
		),
		HalfDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("C-d", "half page down"),
		),
	}
}

// TargetModalKeyMap defines key bindings for the target count modal
type TargetModalKeyMap struct {
	Commit key.Binding
	Close  key.Binding
}

// DefaultTargetModalKeyMap returns the default target modal key bindings
func DefaultTargetModalKeyMap() TargetModalKeyMap {
	return TargetModalKeyMap{
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select rows"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// Package-level key map instances
var (
	RecordTableKeys = DefaultRecordTableKeyMap()
	TargetModalKeys = DefaultTargetModalKeyMap()
)
