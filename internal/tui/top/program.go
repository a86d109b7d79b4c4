package top

import (
	"context"
	"os"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/leg100/swipetabs/internal/logging"
	"github.com/leg100/swipetabs/internal/tui/tabs"
	"github.com/stretchr/testify/require"
)

// Options for starting the TUI.
type Options struct {
	Tabs   tabs.Options
	Logger *logging.Logger
	// Debug dumps every message received by the TUI to messages.log.
	Debug bool
}

// Start starts the TUI and blocks until the user exits.
func Start(opts Options) error {
	p, err := newProgram(opts)
	if err != nil {
		return err
	}
	defer p.cleanup()

	tp := tea.NewProgram(p.model,
		// Use the full size of the terminal with its "alternate screen buffer"
		tea.WithAltScreen(),
	)
	// Relay events in background
	go func() {
		for msg := range p.ch {
			tp.Send(msg)
		}
	}()
	// Blocks until user quits
	_, err = tp.Run()
	return err
}

// StartTest starts the TUI and returns a test model for testing purposes.
func StartTest(t *testing.T, opts Options, width, height int) *teatest.TestModel {
	p, err := newProgram(opts)
	require.NoError(t, err)

	tm := teatest.NewTestModel(t, p.model, teatest.WithInitialTermSize(width, height))
	t.Cleanup(func() {
		p.cleanup()
		tm.Quit()
	})

	// Relay events in background
	go func() {
		for msg := range p.ch {
			tm.Send(msg)
		}
	}()
	return tm
}

type program struct {
	model   tea.Model
	ch      chan tea.Msg
	cleanup func()
}

func newProgram(opts Options) (*program, error) {
	var dump *os.File
	if opts.Debug {
		var err error
		dump, err = os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
	}
	m := newModel(opts, dump)

	// Relay events to TUI. Deliberately set up subscriptions *before* any
	// events are triggered, to ensure the TUI receives all messages.
	ch := make(chan tea.Msg)
	wg := sync.WaitGroup{} // sync closure of subscriptions

	ctx, cancel := context.WithCancel(context.Background())

	logEvents := opts.Logger.Subscribe(ctx)
	wg.Add(1)
	go func() {
		for ev := range logEvents {
			ch <- ev
		}
		wg.Done()
	}()

	pagerEvents := opts.Tabs.Pager.Subscribe(ctx)
	wg.Add(1)
	go func() {
		for ev := range pagerEvents {
			ch <- ev
		}
		wg.Done()
	}()

	// cleanup function to be invoked when program is terminated.
	cleanup := func() {
		// Close subscriptions
		cancel()

		// Wait for relays to finish before closing channel, to avoid sends
		// to a closed channel, which would result in a panic.
		wg.Wait()
		close(ch)

		if dump != nil {
			dump.Close()
		}
	}

	return &program{
		cleanup: cleanup,
		ch:      ch,
		model:   m,
	}, nil
}
