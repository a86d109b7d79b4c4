// Package logs lists the log messages emitted by the app, newest first.
package logs

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/swipetabs/internal/logging"
	"github.com/leg100/swipetabs/internal/pubsub"
	"github.com/leg100/swipetabs/internal/tui"
)

type Lister interface {
	List() []logging.Message
}

type Model struct {
	messages []logging.Message
	width    int
	height   int
}

// New constructs the model, populated with the messages logged thus far.
func New(lister Lister) Model {
	msgs := lister.List()
	slices.SortFunc(msgs, logging.BySerialDesc)
	return Model{messages: msgs}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pubsub.Event[logging.Message]:
		if msg.Type == pubsub.CreatedEvent {
			m.messages = slices.Insert(m.messages, 0, msg.Payload)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Model) View() string {
	n := min(len(m.messages), max(0, m.height))
	lines := make([]string, n)
	for i, msg := range m.messages[:n] {
		lines[i] = line(msg)
	}
	return tui.Regular.
		Margin(0, 1).
		MaxWidth(m.width).
		Render(strings.Join(lines, "\n"))
}

func (m Model) Title() string {
	return "logs"
}
