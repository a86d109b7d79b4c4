package app

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/leg100/swipetabs/internal/tui/top"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func init() {
	// Disable color in tests (see https://charm.sh/blog/teatest/)
	lipgloss.SetColorProfile(termenv.Ascii)
}

// setup starts the app with the given command line arguments, returning a
// test model of its TUI.
func setup(t *testing.T, args ...string) *teatest.TestModel {
	t.Helper()

	setupEnv(t)

	cfg, err := parse(io.Discard, append([]string{"--log-level", "debug"}, args...))
	require.NoError(t, err)
	cfg.loggingOptions.AdditionalWriters = []io.Writer{&testLogger{t}}

	app, err := newApp(cfg)
	require.NoError(t, err)

	tm := top.StartTest(t, app.tuiOptions(cfg), 100, 30)
	t.Cleanup(app.cleanup)
	return tm
}

// testLogger relays log records to the go test logger
type testLogger struct {
	t *testing.T
}

func (l *testLogger) Write(b []byte) (int, error) {
	l.t.Helper()

	l.t.Log(string(b))
	return len(b), nil
}

func waitFor(t *testing.T, tm *teatest.TestModel, s string) {
	t.Helper()

	teatest.WaitFor(
		t,
		tm.Output(),
		func(b []byte) bool {
			return bytes.Contains(b, []byte(s))
		},
		teatest.WithCheckInterval(time.Millisecond*100),
		teatest.WithDuration(time.Second*10),
	)
}
