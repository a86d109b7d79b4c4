package top

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/leg100/swipetabs/internal/indicator"
	"github.com/leg100/swipetabs/internal/logging"
	"github.com/leg100/swipetabs/internal/pager"
	"github.com/leg100/swipetabs/internal/strip"
	"github.com/leg100/swipetabs/internal/tui/tabs"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func setup(t *testing.T, labels ...string) *teatest.TestModel {
	t.Helper()

	s := strip.New()
	for _, l := range labels {
		tab := s.NewTab()
		tab.Label = l
		require.NoError(t, s.Add(tab))
	}
	logger := logging.NewLogger(logging.Options{Level: "debug"})

	return StartTest(t, Options{
		Tabs: tabs.Options{
			Strip:     s,
			Pager:     pager.New(s.Count(), logger),
			Indicator: indicator.Config{Height: 1},
			Padding:   strip.Padding{Left: 1, Right: 1, Bottom: 1},
		},
		Logger: logger,
	}, 80, 20)
}

func waitFor(t *testing.T, tm *teatest.TestModel, s string) {
	t.Helper()

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte(s))
		},
		teatest.WithCheckInterval(time.Millisecond*100),
		teatest.WithDuration(time.Second*3),
	)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestQuit(t *testing.T) {
	tm := setup(t, "one", "two")

	waitFor(t, tm, "page 1 of 2")

	tm.Send(runes("q"))

	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
}

func TestSwipe(t *testing.T) {
	tm := setup(t, "one", "two", "three")

	waitFor(t, tm, "page 1 of 3")

	tm.Send(tea.KeyMsg{Type: tea.KeyRight})
	waitFor(t, tm, "page 2 of 3")

	// the selection is logged
	tm.Send(runes("L"))
	waitFor(t, tm, "tab selected tab=two")
}

func TestHelp(t *testing.T) {
	tm := setup(t, "one", "two")

	tm.Send(runes("?"))
	waitFor(t, tm, "NAVIGATION")
}

func TestModeInfo(t *testing.T) {
	tm := setup(t, "one", "two")

	tm.Send(runes("m"))
	waitFor(t, tm, "indicator sized to fixed")
}

func TestNoTabs(t *testing.T) {
	tm := setup(t)

	waitFor(t, tm, "no tabs")
}
