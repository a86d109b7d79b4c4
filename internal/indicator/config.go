package indicator

import (
	"fmt"

	"github.com/leg100/swipetabs/internal/strip"
)

// SizingMode determines the width of the indicator.
type SizingMode int

const (
	// EqualToTabBody spans the tab box less its horizontal padding.
	EqualToTabBody SizingMode = iota
	// Fixed uses Config.FixedWidth, centered within the padded tab body.
	Fixed
	// EqualToText narrows the indicator to the tab's content width.
	EqualToText
)

func (m SizingMode) String() string {
	switch m {
	case Fixed:
		return "fixed"
	case EqualToText:
		return "text"
	default:
		return "tab"
	}
}

// Next cycles through the sizing modes.
func (m SizingMode) Next() SizingMode {
	return (m + 1) % 3
}

// ResolveSizing decides the sizing mode from the indicator's width settings.
// Matching the text always wins over a fixed width, in which case the fixed
// width is reset to zero.
func ResolveSizing(widthEqualsText bool, fixedWidth float64) (SizingMode, float64) {
	switch {
	case widthEqualsText:
		return EqualToText, 0
	case fixedWidth > 0:
		return Fixed, fixedWidth
	default:
		return EqualToTabBody, fixedWidth
	}
}

type Padding struct {
	Left, Right, Top, Bottom float64
}

// Config configures the indicator. It is treated as immutable for the
// duration of a draw.
type Config struct {
	Sizing       SizingMode
	FixedWidth   float64
	Height       float64
	BottomMargin float64
	CornerRadius float64
	Padding      Padding
}

// Validate checks the config for negative dimensions.
func (c Config) Validate() error {
	dims := []struct {
		name string
		v    float64
	}{
		{"fixed width", c.FixedWidth},
		{"height", c.Height},
		{"bottom margin", c.BottomMargin},
		{"corner radius", c.CornerRadius},
		{"left padding", c.Padding.Left},
		{"right padding", c.Padding.Right},
		{"top padding", c.Padding.Top},
		{"bottom padding", c.Padding.Bottom},
	}
	for _, d := range dims {
		if d.v < 0 {
			return fmt.Errorf("indicator %s %v: %w", d.name, d.v, strip.ErrInvalidArgument)
		}
	}
	return nil
}

// WithSizing returns a copy of the config using the given sizing mode.
// Switching away from Fixed keeps the fixed width so that switching back
// restores it.
func (c Config) WithSizing(m SizingMode) Config {
	c.Sizing = m
	return c
}
