// package app is the main entrypoint into the application, responsible for
// configuring and starting the application.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/leg100/swipetabs/internal/indicator"
	"github.com/leg100/swipetabs/internal/logging"
	"github.com/leg100/swipetabs/internal/pager"
	"github.com/leg100/swipetabs/internal/strip"
	"github.com/leg100/swipetabs/internal/tui/tabs"
	"github.com/leg100/swipetabs/internal/tui/top"
	"github.com/leg100/swipetabs/internal/version"
)

// Start the app.
func Start(stdout, stderr io.Writer, args []string) error {
	// Parse configuration from env vars and flags
	cfg, err := parse(stderr, args)
	if err != nil {
		return err
	}

	if cfg.Version {
		fmt.Fprintln(stdout, version.Version)
		return nil
	}

	app, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer app.cleanup()

	if cfg.Dump {
		return app.dump(stdout, cfg.DumpWidth)
	}

	// Blocks until user quits
	return top.Start(app.tuiOptions(cfg))
}

type app struct {
	strip     *strip.Strip
	pager     *pager.Pager
	logger    *logging.Logger
	indicator indicator.Config
	layout    strip.LayoutOptions
	cleanup   func()
}

func newApp(cfg config) (*app, error) {
	var (
		logWriters []io.Writer
		cleanup    = func() {}
	)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		logWriters = append(logWriters, f)
		cleanup = func() { f.Close() }
	}
	logger := logging.NewLogger(logging.Options{
		Level:             cfg.loggingOptions.Level,
		AdditionalWriters: append(cfg.loggingOptions.AdditionalWriters, logWriters...),
	})

	indicatorCfg, err := newIndicatorConfig(cfg)
	if err != nil {
		cleanup()
		return nil, err
	}
	if cfg.FirstTab < 0 {
		cleanup()
		return nil, fmt.Errorf("first tab %d: %w", cfg.FirstTab, strip.ErrInvalidArgument)
	}
	s, err := newStrip(cfg)
	if err != nil {
		cleanup()
		return nil, err
	}
	logger.Info("loaded tabs", "count", s.Count())
	logger.Info("configured indicator", "mode", indicatorCfg.Sizing, "fixed_width", indicatorCfg.FixedWidth, "height", indicatorCfg.Height)

	p := pager.New(s.Count(), logger)
	p.SetCurrent(cfg.FirstTab, false)

	return &app{
		strip:     s,
		pager:     p,
		logger:    logger,
		indicator: indicatorCfg,
		layout: strip.LayoutOptions{
			Measurer: tabs.Measure(cfg.MaxTabWidth),
			Padding:  cfg.Padding,
			Fill:     cfg.Fill,
			Gravity:  cfg.gravity(),
		},
		cleanup: func() {
			p.Shutdown()
			logger.Shutdown()
			cleanup()
		},
	}, nil
}

func newIndicatorConfig(cfg config) (indicator.Config, error) {
	sizing, fixedWidth := indicator.ResolveSizing(cfg.IndicatorEqualText, cfg.IndicatorWidth)
	ic := indicator.Config{
		Sizing:       sizing,
		FixedWidth:   fixedWidth,
		Height:       cfg.IndicatorHeight,
		BottomMargin: cfg.IndicatorMarginBottom,
		CornerRadius: cfg.IndicatorCornerRadius,
	}
	if err := ic.Validate(); err != nil {
		return indicator.Config{}, err
	}
	if cfg.Padding.Left < 0 || cfg.Padding.Right < 0 || cfg.Padding.Top < 0 || cfg.Padding.Bottom < 0 {
		return indicator.Config{}, fmt.Errorf("tab padding %+v: %w", cfg.Padding, strip.ErrInvalidArgument)
	}
	// The indicator is inset by the tab's horizontal padding.
	ic.Padding = indicator.Padding{
		Left:   float64(cfg.Padding.Left),
		Right:  float64(cfg.Padding.Right),
		Top:    float64(cfg.Padding.Top),
		Bottom: float64(cfg.Padding.Bottom),
	}
	return ic, nil
}

func (a *app) tuiOptions(cfg config) top.Options {
	return top.Options{
		Tabs: tabs.Options{
			Strip:        a.strip,
			Pager:        a.pager,
			Logger:       a.logger,
			Indicator:    a.indicator,
			Padding:      a.layout.Padding,
			Fill:         a.layout.Fill,
			Gravity:      a.layout.Gravity,
			MaxTabWidth:  cfg.MaxTabWidth,
			SelectedBold: cfg.SelectedBold,
		},
		Logger: a.logger,
		Debug:  cfg.Debug,
	}
}
