package tui

import (
	"math"
	"strings"
)

const (
	scrollbarThumb = "━"
	scrollbarTrack = "─"
)

// Scrollbar renders a horizontal scrollbar width cells wide, for content of
// total width of which visible cells are shown starting at offset. Content
// that fits is rendered as a plain track.
func Scrollbar(width, total, visible, offset int) string {
	if width <= 0 {
		return ""
	}
	if total <= visible || total <= 0 {
		return strings.Repeat(scrollbarTrack, width)
	}
	ratio := float64(width) / float64(total)
	thumbWidth := max(1, int(math.Round(float64(visible)*ratio)))
	thumbOffset := max(0, min(width-thumbWidth, int(math.Round(float64(offset)*ratio))))

	return strings.Repeat(scrollbarTrack, thumbOffset) +
		strings.Repeat(scrollbarThumb, thumbWidth) +
		strings.Repeat(scrollbarTrack, max(0, width-thumbOffset-thumbWidth))
}
