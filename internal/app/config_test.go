package app

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leg100/swipetabs/internal/logging"
	"github.com/leg100/swipetabs/internal/strip"
	"github.com/leg100/swipetabs/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	// Unset environment variables set on host computer
	testutils.UnsetEnvWithPrefix(t, "SWIPETABS_")
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name string
		file string
		args []string
		envs []string
		want func(t *testing.T, got config)
	}{
		{
			"defaults",
			"",
			nil,
			nil,
			func(t *testing.T, got config) {
				want := config{
					IndicatorHeight: 1,
					Padding:         strip.Padding{Left: 1, Right: 1, Bottom: 1},
					Gravity:         "center",
					DumpWidth:       80,
					loggingOptions: logging.Options{
						Level: "info",
					},
				}
				assert.Empty(t, got.Tabs)
				got.Tabs = nil
				assert.Equal(t, want, got)
			},
		},
		{
			"config file override default",
			"indicator-height: 2\n",
			nil,
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, 2.0, got.IndicatorHeight)
			},
		},
		{
			"config file with list of tabs",
			"tab:\n  - one\n  - two\n",
			nil,
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, []string{"one", "two"}, got.Tabs)
			},
		},
		{
			"env var override default",
			"",
			nil,
			[]string{"SWIPETABS_INDICATOR_WIDTH=4"},
			func(t *testing.T, got config) {
				assert.Equal(t, 4.0, got.IndicatorWidth)
			},
		},
		{
			"flag override default",
			"",
			[]string{"--indicator-width", "6"},
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, 6.0, got.IndicatorWidth)
			},
		},
		{
			"env var overrides config file",
			"tab-gravity: left\n",
			nil,
			[]string{"SWIPETABS_TAB_GRAVITY=right"},
			func(t *testing.T, got config) {
				assert.Equal(t, strip.End, got.gravity())
			},
		},
		{
			"flag overrides env var",
			"",
			[]string{"--tab-gravity", "left"},
			[]string{"SWIPETABS_TAB_GRAVITY=right"},
			func(t *testing.T, got config) {
				assert.Equal(t, strip.Start, got.gravity())
			},
		},
		{
			"flag overrides both env var and config",
			"log-level: warn\n",
			[]string{"--log-level", "debug"},
			[]string{"SWIPETABS_LOG_LEVEL=error"},
			func(t *testing.T, got config) {
				assert.Equal(t, "debug", got.loggingOptions.Level)
			},
		},
		{
			"set multiple tabs",
			"",
			[]string{"-t", "one", "-t", "two", "--tab", "three"},
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, []string{"one", "two", "three"}, got.Tabs)
			},
		},
		{
			"set tab padding",
			"",
			[]string{"--tab-padding-left", "2", "--tab-padding-top", "1"},
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, strip.Padding{Left: 2, Right: 1, Top: 1, Bottom: 1}, got.Padding)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// change into a temp dir in case the host computer has a config file
			testutils.ChTempDir(t)

			// set env vars
			for _, ev := range tt.envs {
				name, val, _ := strings.Cut(ev, "=")
				t.Setenv(name, val)
			}

			// set config file
			if tt.file != "" {
				path := filepath.Join(os.Getenv("HOME"), ".swipetabs.yaml")
				err := os.WriteFile(path, []byte(tt.file), 0o644)
				require.NoError(t, err)
				t.Cleanup(func() { os.Remove(path) })
			}

			// and pass in flags
			got, err := parse(io.Discard, tt.args)
			require.NoError(t, err)

			tt.want(t, got)
		})
	}
}

func TestConfig_InvalidGravity(t *testing.T) {
	testutils.UnsetEnvWithPrefix(t, "SWIPETABS_")
	t.Setenv("HOME", t.TempDir())

	_, err := parse(io.Discard, []string{"--tab-gravity", "top"})
	assert.Error(t, err)
}
