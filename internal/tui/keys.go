package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level key bindings
type KeyMap struct {
	// Focus
	Search      key.Binding
	FocusTable  key.Binding
	Enter       key.Binding
	Back        key.Binding
	History     key.Binding
	OpenDocs    key.Binding
	FilterFuncs key.Binding

	// Actions
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Escape    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search: key.NewBinding(
			key.WithKeys("/", "tab"),
			key.WithHelp("/", "search"),
		),
		FocusTable: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "to table"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open package"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back to list"),
		),
		History: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "recently viewed"),
		),
		OpenDocs: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open docs"),
		),
		FilterFuncs: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter functions"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
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

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
