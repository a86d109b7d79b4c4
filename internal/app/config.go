package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/leg100/swipetabs/internal/logging"
	"github.com/leg100/swipetabs/internal/strip"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"
)

type config struct {
	Tabs     []string
	TabsFile string
	FirstTab int

	IndicatorWidth        float64
	IndicatorHeight       float64
	IndicatorMarginBottom float64
	IndicatorCornerRadius float64
	IndicatorEqualText    bool

	Padding      strip.Padding
	Fill         bool
	Gravity      string
	MaxTabWidth  int
	SelectedBold bool

	Debug     bool
	Dump      bool
	DumpWidth int
	LogFile   string
	Version   bool

	loggingOptions logging.Options
}

var gravities = map[string]strip.Gravity{
	"center": strip.Center,
	"left":   strip.Start,
	"right":  strip.End,
}

// set config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func parse(stderr io.Writer, args []string) (config, error) {
	var cfg config

	home, err := os.UserHomeDir()
	if err != nil {
		return config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultConfigFile := filepath.Join(home, ".swipetabs.yaml")

	fs := ff.NewFlagSet("swipetabs")
	fs.StringListVar(&cfg.Tabs, 't', "tab", "Label of a tab. Can set more than once.")
	fs.StringVar(&cfg.TabsFile, 'f', "tabs-file", "", "Path to a YAML file listing tabs.")
	fs.IntVar(&cfg.FirstTab, 0, "first-tab", 0, "Index of the tab selected upon startup.")

	fs.Float64Var(&cfg.IndicatorWidth, 0, "indicator-width", 0, "Fixed width of the indicator. Zero matches the width of the tab.")
	fs.Float64Var(&cfg.IndicatorHeight, 0, "indicator-height", 1, "Height of the indicator.")
	fs.Float64Var(&cfg.IndicatorMarginBottom, 0, "indicator-margin-bottom", 0, "Space between the indicator and the bottom of the tab.")
	fs.Float64Var(&cfg.IndicatorCornerRadius, 0, "indicator-corner-radius", 0, "Round the ends of the indicator if greater than zero.")
	fs.BoolVar(&cfg.IndicatorEqualText, 0, "indicator-equal-text", "Match the width of the indicator to the tab's content. Overrides --indicator-width.")

	fs.IntVar(&cfg.Padding.Left, 0, "tab-padding-left", 1, "Padding to the left of each tab's content.")
	fs.IntVar(&cfg.Padding.Right, 0, "tab-padding-right", 1, "Padding to the right of each tab's content.")
	fs.IntVar(&cfg.Padding.Top, 0, "tab-padding-top", 0, "Padding above each tab's content.")
	fs.IntVar(&cfg.Padding.Bottom, 0, "tab-padding-bottom", 1, "Padding below each tab's content.")
	fs.BoolVar(&cfg.Fill, 0, "tab-fill", "Share spare width equally between the tabs.")
	fs.StringEnumVar(&cfg.Gravity, 0, "tab-gravity", "Position of tabs narrower than the terminal (valid: center,left,right).", "center", "left", "right")
	fs.IntVar(&cfg.MaxTabWidth, 0, "tab-max-width", 0, "Truncate labels wider than this. Zero disables truncation.")
	fs.BoolVar(&cfg.SelectedBold, 'b', "selected-bold", "Render the selected tab's label in bold.")

	fs.BoolVar(&cfg.Debug, 'd', "debug", "Log bubbletea messages to messages.log")
	fs.BoolVar(&cfg.Dump, 0, "dump", "Print the indicator geometry while sweeping across the tabs, and exit.")
	fs.IntVar(&cfg.DumpWidth, 0, "dump-width", 80, "Viewport width used by --dump.")
	fs.StringVar(&cfg.LogFile, 0, "log-file", "", "Path to a file to which logs are also written.")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.loggingOptions.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("SWIPETABS"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return config{}, err
	}
	return cfg, nil
}

func (c config) gravity() strip.Gravity {
	return gravities[c.Gravity]
}
