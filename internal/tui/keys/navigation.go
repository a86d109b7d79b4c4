package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type navigation struct {
	Next      key.Binding
	Prev      key.Binding
	DragRight key.Binding
	DragLeft  key.Binding
	Release   key.Binding
	First     key.Binding
	Last      key.Binding
	Jump      key.Binding
}

// Navigation returns key bindings for moving between tabs.
var Navigation = navigation{
	Next: key.NewBinding(
		key.WithKeys("right", "l", "tab"),
		key.WithHelp("→/l", "next tab"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h", "shift+tab"),
		key.WithHelp("←/h", "previous tab"),
	),
	DragRight: key.NewBinding(
		key.WithKeys("shift+right", ">"),
		key.WithHelp("shift+→/>", "drag right"),
	),
	DragLeft: key.NewBinding(
		key.WithKeys("shift+left", "<"),
		key.WithHelp("shift+←/<", "drag left"),
	),
	Release: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "release drag"),
	),
	First: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g/home", "first tab"),
	),
	Last: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G/end", "last tab"),
	),
	Jump: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "go to tab"),
	),
}
