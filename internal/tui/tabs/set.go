package tabs

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/swipetabs/internal/indicator"
	"github.com/leg100/swipetabs/internal/logging"
	"github.com/leg100/swipetabs/internal/pager"
	"github.com/leg100/swipetabs/internal/pubsub"
	"github.com/leg100/swipetabs/internal/strip"
	"github.com/leg100/swipetabs/internal/tui"
	"github.com/leg100/swipetabs/internal/tui/keys"
)

const (
	// frameInterval is the delay between successive animation steps.
	frameInterval = 20 * time.Millisecond
	// dragStep is the fraction of a page moved by each drag key press.
	dragStep = 0.1
	// fallbackFixedWidth is used when cycling to the fixed sizing mode without
	// a configured width.
	fallbackFixedWidth = 4
)

type frameMsg struct{}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

type Options struct {
	Strip  *strip.Strip
	Pager  *pager.Pager
	Logger logging.Interface

	Indicator    indicator.Config
	Padding      strip.Padding
	Fill         bool
	Gravity      strip.Gravity
	MaxTabWidth  int
	SelectedBold bool
}

// Model is a scrollable strip of tabs, with an indicator beneath the tabs
// tracking the pager's position.
type Model struct {
	strip  *strip.Strip
	pager  *pager.Pager
	logger logging.Interface

	cfg         indicator.Config
	layout      strip.LayoutOptions
	maxTabWidth int
	styles      map[tui.Kind]lipgloss.Style

	// tabs is a snapshot of the strip taken after each layout.
	tabs []strip.Tab
	// total is the width occupied by the tabs.
	total int
	width int

	scroll   indicator.ScrollState
	geometry indicator.Geometry
	// scrollX is the leftmost visible column of the strip.
	scrollX int

	selected int
	ticking  bool
}

func New(opts Options) Model {
	opts.Logger.AddArgsUpdater(&logging.ReferenceUpdater[*strip.Tab]{
		Getter: opts.Strip,
		Key:    "tab",
	})
	pos := opts.Pager.Position()
	return Model{
		strip:  opts.Strip,
		pager:  opts.Pager,
		logger: opts.Logger,
		cfg:    opts.Indicator,
		layout: strip.LayoutOptions{
			Measurer: Measure(opts.MaxTabWidth),
			Padding:  opts.Padding,
			Fill:     opts.Fill,
			Gravity:  opts.Gravity,
		},
		maxTabWidth: opts.MaxTabWidth,
		styles:      Styles(opts.SelectedBold),
		scroll:      indicator.ScrollState{Index: pos.Index, Offset: pos.Offset},
		selected:    opts.Pager.Current(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if err := m.relayout(); err != nil {
			return m, tui.ReportError(err, "laying out tabs")
		}
	case tea.KeyMsg:
		return m.handleKey(msg)
	case frameMsg:
		if m.pager.Step() {
			return m, frame()
		}
		m.ticking = false
	case pubsub.Event[pager.Position]:
		switch msg.Type {
		case pager.ScrolledEvent:
			m.scroll.Index = msg.Payload.Index
			m.scroll.Offset = msg.Payload.Offset
			if err := m.compute(); err != nil {
				return m, tui.ReportError(err, "computing indicator")
			}
		case pager.SelectedEvent:
			if msg.Payload.Index != m.selected {
				m.logger.Debug("tab deselected", "tab", m.selected)
				m.selected = msg.Payload.Index
				m.logger.Info("tab selected", "tab", m.selected)
			}
		case pager.StateChangedEvent:
			m.logger.Debug("pager state changed", "state", msg.Payload.State)
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Navigation.Next):
		m.pager.Next()
	case key.Matches(msg, keys.Navigation.Prev):
		m.pager.Prev()
	case key.Matches(msg, keys.Navigation.First):
		m.pager.SetCurrent(0, true)
	case key.Matches(msg, keys.Navigation.Last):
		m.pager.SetCurrent(m.pager.Pages()-1, true)
	case key.Matches(msg, keys.Navigation.Jump):
		// Ignore digits beyond the last tab.
		n, err := strconv.Atoi(msg.String())
		if err != nil || n > m.pager.Pages() {
			return m, nil
		}
		m.pager.SetCurrent(n-1, true)
	case key.Matches(msg, keys.Navigation.DragRight):
		m.pager.Drag(dragStep)
		return m, nil
	case key.Matches(msg, keys.Navigation.DragLeft):
		m.pager.Drag(-dragStep)
		return m, nil
	case key.Matches(msg, keys.Navigation.Release):
		m.pager.Release()
	case key.Matches(msg, keys.Global.Mode):
		m.cycleSizing()
		if err := m.compute(); err != nil {
			return m, tui.ReportError(err, "computing indicator")
		}
		return m, tui.ReportInfo("indicator sized to %s", m.cfg.Sizing)
	default:
		return m, nil
	}
	return m, m.animate()
}

// animate starts stepping the pager if it is settling and is not already
// being stepped.
func (m *Model) animate() tea.Cmd {
	if m.ticking || !m.pager.Animating() {
		return nil
	}
	m.ticking = true
	return frame()
}

func (m *Model) cycleSizing() {
	m.cfg = m.cfg.WithSizing(m.cfg.Sizing.Next())
	if m.cfg.Sizing == indicator.Fixed && m.cfg.FixedWidth == 0 {
		m.cfg.FixedWidth = fallbackFixedWidth
	}
	m.logger.Info("changed indicator sizing", "mode", m.cfg.Sizing)
}

func (m *Model) relayout() error {
	m.layout.Width = m.width
	m.total = m.strip.Layout(m.layout)
	m.tabs = m.strip.Tabs()
	m.scrollX = m.clampScroll(m.scrollX)
	return m.compute()
}

// compute recomputes the indicator and scrolls the strip if instructed to do
// so.
func (m *Model) compute() error {
	g, err := indicator.Compute(m.tabs, m.scroll, m.cfg, m.width)
	if err != nil {
		return err
	}
	m.geometry = g
	if g.Scroll.Apply {
		m.scrollX = m.clampScroll(g.Scroll.X)
		m.scroll = m.scroll.Commit(g.Scroll)
	}
	return nil
}

// clampScroll keeps the strip from being scrolled beyond either end.
func (m Model) clampScroll(x int) int {
	return max(0, min(x, m.total-m.width))
}

func (m Model) View() string {
	if len(m.tabs) == 0 {
		return ""
	}
	height := m.Height()
	c := tui.NewCanvas(max(m.total, m.width), height)
	if m.layout.Padding.Bottom > 0 {
		paintBaseline(c, height-1)
	}
	for _, t := range m.tabs {
		paintTab(c, t, m.layout.Padding, m.maxTabWidth, t.Index == m.selected)
	}
	paintIndicator(c, m.geometry.Indicator, m.cfg.CornerRadius > 0)
	return c.Render(m.scrollX, m.width, m.styles)
}

// Height is the number of rows occupied by the strip.
func (m Model) Height() int {
	if len(m.tabs) == 0 {
		return 0
	}
	return m.tabs[0].Box.Bottom
}

// Scrollbar renders a horizontal rule that tracks the visible portion of the
// strip.
func (m Model) Scrollbar() string {
	return tui.Scrollbar(m.width, m.total, m.width, m.scrollX)
}

func (m Model) Geometry() indicator.Geometry { return m.geometry }
func (m Model) ScrollX() int                 { return m.scrollX }
func (m Model) Selected() int                { return m.selected }
func (m Model) Sizing() indicator.SizingMode { return m.cfg.Sizing }

// Status summarises the position of the strip.
func (m Model) Status() string {
	return fmt.Sprintf("%s %d/%d", m.cfg.Sizing, m.selected+1, len(m.tabs))
}

func (m Model) HelpBindings() []key.Binding {
	return keys.KeyMapToSlice(keys.Navigation)
}
