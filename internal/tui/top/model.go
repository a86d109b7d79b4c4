package top

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/leg100/swipetabs/internal/logging"
	"github.com/leg100/swipetabs/internal/pubsub"
	"github.com/leg100/swipetabs/internal/strip"
	"github.com/leg100/swipetabs/internal/tui"
	"github.com/leg100/swipetabs/internal/tui/keys"
	"github.com/leg100/swipetabs/internal/tui/logs"
	"github.com/leg100/swipetabs/internal/tui/tabs"
	"github.com/leg100/swipetabs/internal/version"
)

type model struct {
	tabs  tabs.Model
	logs  logs.Model
	strip *strip.Strip

	logger *logging.Logger

	width  int
	height int

	showHelp bool
	showLogs bool

	// Either an error or an informational message is rendered in the footer.
	err  error
	info string

	dump *os.File
}

func newModel(opts Options, dump *os.File) model {
	if opts.Tabs.Logger == nil {
		opts.Tabs.Logger = opts.Logger
	}
	return model{
		tabs:   tabs.New(opts.Tabs),
		logs:   logs.New(opts.Logger),
		strip:  opts.Tabs.Strip,
		logger: opts.Logger,
		dump:   dump,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.tabs, cmd = m.tabs.Update(msg)
		cmds = append(cmds, cmd)
		m.logs, _ = m.logs.Update(tea.WindowSizeMsg{
			Width:  m.width,
			Height: m.contentHeight(),
		})
	case tea.KeyMsg:
		// Pressing any key makes any info/error message in the footer disappear
		m.info = ""
		m.err = nil

		switch {
		case key.Matches(msg, keys.Global.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Global.Escape):
			m.showHelp = false
			m.showLogs = false
		case key.Matches(msg, keys.Global.Help):
			// '?' toggles help
			m.showHelp = !m.showHelp
		case key.Matches(msg, keys.Global.Logs):
			// 'L' toggles logs
			m.showLogs = !m.showLogs
		default:
			// Send other keys to the tabs
			m.tabs, cmd = m.tabs.Update(msg)
			cmds = append(cmds, cmd)
		}
	case pubsub.Event[logging.Message]:
		m.logs, cmd = m.logs.Update(msg)
		cmds = append(cmds, cmd)
	case tui.ErrorMsg:
		if msg.Error != nil {
			err := msg.Error
			msg := fmt.Sprintf(msg.Message, msg.Args...)

			// Both print error in footer as well as log it.
			m.err = fmt.Errorf("%s: %w", msg, err)
			m.logger.Error(msg, "error", err)
		}
	case tui.InfoMsg:
		m.info = string(msg)
	default:
		m.tabs, cmd = m.tabs.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

const (
	horizontalRuleHeight = 1
	footerHeight         = shortHelpRows + 1
)

var (
	metadataStyle = tui.Padded.Foreground(tui.LightGrey).Align(lipgloss.Right)
	errorStyle    = tui.Padded.Foreground(tui.Red)
	infoStyle     = tui.Padded
)

// contentHeight is the height available between the tab strip and the footer.
func (m model) contentHeight() int {
	return max(0, m.height-m.tabs.Height()-horizontalRuleHeight-footerHeight)
}

func (m model) View() string {
	var (
		content  string
		bindings []key.Binding
	)
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().
			Margin(1).
			Render(fullHelpView(
				helpSection{heading: "GENERAL", bindings: keys.KeyMapToSlice(keys.Global)},
				helpSection{heading: "NAVIGATION", bindings: m.tabs.HelpBindings()},
			))
		bindings = []key.Binding{
			key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", "close help"),
			),
		}
	case m.showLogs:
		content = m.logs.View()
		bindings = []key.Binding{
			key.NewBinding(
				key.WithKeys("L"),
				key.WithHelp("L", "close logs"),
			),
		}
	default:
		content = m.pagesView(m.width, m.contentHeight())
		bindings = append(m.tabs.HelpBindings(), keys.KeyMapToSlice(keys.Global)...)
	}

	// Metadata goes in the bottom right corner of the footer, with help for
	// the key bindings filling the remaining width to its left.
	metadata := metadataStyle.Render(strings.Join([]string{
		m.tabs.Status(),
		fmt.Sprintf("x=%d %s", m.tabs.ScrollX(), version.Version),
	}, "\n"))
	helpWidth := max(0, m.width-tui.Width(metadata)-1)
	shortHelp := tui.Regular.
		Margin(0, 0, 0, 1).
		Width(helpWidth).
		Render(shortHelpView(bindings, helpWidth-1))

	// Any info/error message is shown beneath the help.
	var footerMsg string
	if m.err != nil {
		footerMsg = errorStyle.Render("Error: " + m.err.Error())
	} else if m.info != "" {
		footerMsg = infoStyle.Render(m.info)
	}

	var rows []string
	if header := m.tabs.View(); header != "" {
		rows = append(rows, header)
	}
	rows = append(rows,
		// content
		lipgloss.NewStyle().
			Height(m.contentHeight()).
			MaxHeight(m.contentHeight()).
			Render(content),
		// horizontal rule, doubling as the strip's scrollbar
		m.tabs.Scrollbar(),
		// footer
		lipgloss.JoinHorizontal(lipgloss.Top, shortHelp, metadata),
		tui.Regular.
			Inline(true).
			MaxWidth(m.width).
			Render(footerMsg),
	)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
