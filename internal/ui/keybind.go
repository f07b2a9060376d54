package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every binding on the feed screen.
// Movement and copy keys only apply while the grid has focus; the input
// swallows printable keys otherwise.
type KeyMap struct {
	Submit    key.Binding
	Focus     key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Copy      key.Binding
	Refresh   key.Binding
	Details   key.Binding
	Close     key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// Ensure KeyMap can drive bubbles/help.
var _ help.KeyMap = KeyMap{}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "fetch"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy url"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refetch"),
		),
		Details: key.NewBinding(
			key.WithKeys("i", " "),
			key.WithHelp("i/space", "details"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Focus, k.Copy, k.Refresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Submit, k.Focus, k.Copy, k.Refresh, k.Details},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

// InputHelp lists the bindings that work while typing a count.
func (k KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Focus, k.ForceQuit}
}

// DetailsHelp lists the bindings that work while the details overlay is open.
func (k KeyMap) DetailsHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Close}
}
