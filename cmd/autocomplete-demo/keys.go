package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the demo host's global bindings. Field editing keys belong
// to the focused autocomplete.
type KeyMap struct {
	Quit      key.Binding
	Submit    key.Binding
	Copy      key.Binding
	Reset     key.Binding
	Theme     key.Binding
	Help      key.Binding
	NextField key.Binding
	PrevField key.Binding
	CloseHelp key.Binding
}

// DefaultKeyMap returns the demo bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit form"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy form data"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset form"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		CloseHelp: key.NewBinding(
			key.WithKeys("esc", "?", "q"),
			key.WithHelp("esc", "close help"),
		),
	}
}

// ShortHelp returns the footer bindings.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Copy, k.Reset, k.Theme, k.Help, k.Quit}
}
