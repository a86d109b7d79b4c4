// Package indicator computes where the indicator beneath a tab strip is drawn
// and how far the strip should be scrolled, for a given scroll position
// between two pages.
package indicator

import (
	"fmt"
	"math"

	"github.com/leg100/swipetabs/internal/strip"
)

// Rect is the indicator's bounds. Right and Bottom are exclusive. A rect with
// a non-positive width or height is invisible but otherwise valid.
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// ScrollState is the scroll position of the pages tracked by the strip.
type ScrollState struct {
	// Index of the page being scrolled from.
	Index int
	// Offset is the progress from Index towards Index+1, from 0 to 1.
	Offset float64
	// LastAppliedScrollX is the most recent scroll offset applied to the
	// strip.
	LastAppliedScrollX int
}

// Commit returns the state updated to reflect that the command has been
// carried out.
func (s ScrollState) Commit(cmd ScrollCommand) ScrollState {
	if cmd.Apply {
		s.LastAppliedScrollX = cmd.X
	}
	return s
}

// ScrollCommand instructs the strip to scroll horizontally to X. If Apply is
// false then the strip must be left where it is.
type ScrollCommand struct {
	X     int  `json:"x"`
	Apply bool `json:"apply"`
}

// Geometry is the outcome of a computation.
type Geometry struct {
	Indicator Rect          `json:"indicator"`
	Scroll    ScrollCommand `json:"scroll"`
	// Index and Offset are the scroll position after clamping.
	Index  int     `json:"index"`
	Offset float64 `json:"offset"`
}

// Compute derives the indicator rectangle and the scroll target for the tabs
// at the given scroll position. The scroll position is clamped to the tabs:
// an out of range index or offset is never an error. An error is returned
// only if a tab's box has a negative width.
func Compute(tabs []strip.Tab, scroll ScrollState, cfg Config, viewportWidth int) (Geometry, error) {
	for _, t := range tabs {
		if t.Box.Width() < 0 {
			return Geometry{}, fmt.Errorf("tab %d has box %s with negative width: %w", t.Index, t.Box, strip.ErrInvalidArgument)
		}
	}
	g := Geometry{Scroll: ScrollCommand{X: scroll.LastAppliedScrollX}}
	if len(tabs) == 0 {
		return g, nil
	}
	g.Index, g.Offset = clamp(len(tabs), scroll.Index, scroll.Offset)
	g.Indicator = indicatorRect(tabs, g.Index, g.Offset, cfg)
	g.Scroll = scrollTarget(tabs, g.Index, g.Offset, viewportWidth, scroll.LastAppliedScrollX)
	return g, nil
}

func clamp(n, index int, offset float64) (int, float64) {
	index = max(0, min(index, n-1))
	switch {
	case math.IsNaN(offset), offset < 0:
		offset = 0
	case offset > 1:
		offset = 1
	}
	// There is no tab beyond the last to move towards.
	if index == n-1 {
		offset = 0
	}
	return index, offset
}

func indicatorRect(tabs []strip.Tab, index int, offset float64, cfg Config) Rect {
	var (
		current  = tabs[index]
		left     = current.Box.Left
		right    = current.Box.Right
		bottom   = current.Box.Bottom
		padLeft  = int(cfg.Padding.Left)
		padRight = int(cfg.Padding.Right)
	)
	if cfg.Sizing == Fixed {
		in := inset(current.Box, cfg)
		left += in
		right -= in
	}
	margin := contentMargin(current, left+padLeft, right-padRight, cfg)
	marginLeft := gutter(margin, cfg.Padding.Left)
	marginRight := gutter(margin, cfg.Padding.Right)

	if index+1 < len(tabs) {
		next := tabs[index+1]
		leftDelta := float64(next.Box.Left - left)
		rightDelta := float64(next.Box.Right - right)
		if cfg.Sizing == Fixed {
			// Track the next tab's inset edges rather than its box edges.
			in := float64(inset(next.Box, cfg))
			leftDelta = (leftDelta + in) * offset
			rightDelta = (rightDelta - in) * offset
		} else {
			leftDelta *= offset
			rightDelta *= offset

			nextMargin := contentMargin(next, next.Box.Left+padLeft, next.Box.Right-padRight, cfg)
			marginLeft = blend(marginLeft, gutter(nextMargin, cfg.Padding.Left), offset)
			marginRight = blend(marginRight, gutter(nextMargin, cfg.Padding.Right), offset)
		}
		left = int(float64(left) + leftDelta)
		right = int(float64(right) + rightDelta)
	}

	bottomMargin := int(cfg.BottomMargin)
	return Rect{
		Left:   left + marginLeft,
		Top:    bottom - int(cfg.Height) - bottomMargin,
		Right:  right - marginRight,
		Bottom: bottom - bottomMargin,
	}
}

// inset is the distance from each side of the box to a fixed width indicator
// centered within the box's padded interior.
func inset(box strip.Box, cfg Config) int {
	return (box.Width() - int(cfg.FixedWidth) - int(cfg.Padding.Left) - int(cfg.Padding.Right)) / 2
}

// contentMargin is the space either side of a tab's content, between the
// given edges. It is zero unless the indicator matches the content width,
// and negative if the content overflows the edges.
func contentMargin(tab strip.Tab, left, right int, cfg Config) int {
	if cfg.Sizing != EqualToText {
		return 0
	}
	return int(float64(right-left-tab.ContentWidth) / 2)
}

// gutter combines a content margin with a side's padding. The padding wins if
// the margin is smaller, otherwise the padding is added on top of the margin.
func gutter(margin int, padding float64) int {
	g := max(margin, int(padding))
	if margin > int(padding) {
		g = int(float64(g) + padding)
	}
	return g
}

func blend(from, to int, offset float64) int {
	return int(float64(to-from)*offset + float64(from))
}
