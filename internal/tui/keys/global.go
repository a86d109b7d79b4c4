package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type global struct {
	Logs   key.Binding
	Mode   key.Binding
	Escape key.Binding
	Quit   key.Binding
	Help   key.Binding
}

var Global = global{
	Logs: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "logs"),
	),
	Mode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "indicator mode"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc", "`"),
		key.WithHelp("esc, `", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/^c", "exit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}
