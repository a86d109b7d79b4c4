package indicator

import "github.com/leg100/swipetabs/internal/strip"

// scrollTarget computes the horizontal scroll offset that keeps the tabs
// being scrolled between centered in the viewport. No scroll is issued while
// the pages are at rest, or if the target is where the strip was last
// scrolled to.
func scrollTarget(tabs []strip.Tab, index int, offset float64, viewportWidth, last int) ScrollCommand {
	if len(tabs) == 0 || offset <= 0 {
		return ScrollCommand{X: last}
	}
	active := tabs[index].Box
	px := int(offset * float64(active.Width()))
	x := active.Left + px

	// Half the width of the interpolated span between the active tab and the
	// next.
	var half int
	if index+1 < len(tabs) {
		next := tabs[index+1].Box
		leftEdge := float64(active.Left) + float64(next.Left-active.Left)*offset
		rightEdge := float64(active.Right) + float64(next.Right-active.Right)*offset
		half = int((rightEdge - leftEdge) / 2)
	}

	// The first tab, when not dragged by at least a whole cell, is left
	// uncentered.
	if index > 0 || px > 0 {
		x -= viewportWidth / 2
		x += half
	}
	return ScrollCommand{X: x, Apply: x != last}
}
