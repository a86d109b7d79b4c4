// Package tabs renders a strip of tabs with an indicator that tracks the
// scroll position of a pager.
package tabs

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/go-runewidth"
	"github.com/leg100/swipetabs/internal/indicator"
	"github.com/leg100/swipetabs/internal/strip"
	"github.com/leg100/swipetabs/internal/tui"
	"github.com/muesli/ansi"
)

// Measure returns a measurer for the content of tabs rendered by this
// package. Labels wider than maxWidth are truncated. A maxWidth of zero or
// less leaves labels untruncated.
func Measure(maxWidth int) strip.Measurer {
	return strip.MeasureFunc(func(t strip.Tab) (int, int) {
		if t.IsCustom() {
			lines := strings.Split(t.Custom, "\n")
			var w int
			for _, l := range lines {
				w = max(w, ansi.PrintableRuneWidth(l))
			}
			return w, len(lines)
		}
		return runewidth.StringWidth(label(t, maxWidth)), 1
	})
}

// label is the text rendered for a labelled tab: its icon, if any, followed by
// its label.
func label(t strip.Tab, maxWidth int) string {
	s := t.Label
	if t.Icon != "" {
		s = t.Icon + " " + s
	}
	if maxWidth > 0 {
		s = runewidth.Truncate(s, maxWidth, "…")
	}
	return s
}

// Styles returns the styles for each kind of cell painted by the strip.
func Styles(selectedBold bool) map[tui.Kind]lipgloss.Style {
	selected := tui.Regular.Foreground(tui.SelectedTabColor)
	if selectedBold {
		selected = selected.Bold(true)
	}
	return map[tui.Kind]lipgloss.Style{
		tui.Text:         tui.Regular.Foreground(tui.DefaultTabColor),
		tui.SelectedText: selected,
		tui.Baseline:     tui.Regular.Foreground(tui.BaselineColor),
		tui.Bar:          tui.Regular.Foreground(tui.IndicatorColor),
	}
}

// paintTab paints a tab's content. The content is vertically centered within
// the tab's box, less its padding.
func paintTab(c *tui.Canvas, t strip.Tab, pad strip.Padding, maxWidth int, selected bool) {
	kind := tui.Text
	if selected {
		kind = tui.SelectedText
	}
	lines := []string{label(t, maxWidth)}
	if t.IsCustom() {
		lines = tui.SplitStyledLines(t.Custom)
	}
	inner := t.Box.Height() - pad.Top - pad.Bottom
	top := t.Box.Top + pad.Top + max(0, inner-len(lines))/2
	for i, line := range lines {
		if t.IsCustom() {
			c.WriteStyled(t.ContentLeft, top+i, line, kind)
		} else {
			c.WriteString(t.ContentLeft, top+i, line, kind)
		}
	}
}

const (
	barGlyph   = "━"
	blockGlyph = "█"
)

// paintIndicator paints the indicator's rectangle. A rectangle one row high
// is painted as a bar, and anything taller as a solid block. If rounded, the
// ends of the bar, or the corners of the block, are softened.
func paintIndicator(c *tui.Canvas, r indicator.Rect, rounded bool) {
	if r.Empty() {
		return
	}
	if r.Height() == 1 {
		c.Fill(r.Left, r.Top, r.Right, r.Bottom, barGlyph, tui.Bar)
		if rounded && r.Width() > 1 {
			c.Set(r.Left, r.Top, "╺", 1, tui.Bar)
			c.Set(r.Right-1, r.Top, "╸", 1, tui.Bar)
		}
		return
	}
	c.Fill(r.Left, r.Top, r.Right, r.Bottom, blockGlyph, tui.Bar)
	if rounded && r.Width() > 1 {
		c.Set(r.Left, r.Top, "▗", 1, tui.Bar)
		c.Set(r.Right-1, r.Top, "▖", 1, tui.Bar)
		c.Set(r.Left, r.Bottom-1, "▝", 1, tui.Bar)
		c.Set(r.Right-1, r.Bottom-1, "▘", 1, tui.Bar)
	}
}

// paintBaseline rules off the bottom row of the strip.
func paintBaseline(c *tui.Canvas, row int) {
	c.Fill(0, row, c.Width(), row+1, "─", tui.Baseline)
}
