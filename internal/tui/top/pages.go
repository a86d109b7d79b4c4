package top

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/go-runewidth"
	"github.com/leg100/swipetabs/internal/strip"
	"github.com/leg100/swipetabs/internal/tui"
)

var pageStyles = map[tui.Kind]lipgloss.Style{
	tui.Text:         tui.Regular.Foreground(tui.LightGrey),
	tui.SelectedText: tui.Bold.Foreground(tui.SelectedTabColor),
}

// pagesView renders the page being scrolled from alongside the page being
// scrolled towards, shifted left in proportion to the scroll offset.
func (m model) pagesView(width, height int) string {
	if m.strip.Count() == 0 {
		return tui.Padded.Render("no tabs")
	}
	g := m.tabs.Geometry()
	c := tui.NewCanvas(2*width, height)
	for i, index := range []int{g.Index, g.Index + 1} {
		tab, err := m.strip.Get(index)
		if err != nil {
			continue
		}
		paintPage(c, i*width, width, *tab, m.strip.Count())
	}
	return c.Render(int(g.Offset*float64(width)), width, pageStyles)
}

// paintPage paints the body of a page, centered within the columns from left
// to left+width.
func paintPage(c *tui.Canvas, left, width int, tab strip.Tab, pages int) {
	lines := []struct {
		text string
		kind tui.Kind
	}{
		{tab.String(), tui.SelectedText},
		{fmt.Sprintf("page %d of %d", tab.Index+1, pages), tui.Text},
	}
	top := (c.Height() - len(lines)) / 2
	for i, line := range lines {
		x := left + max(0, (width-runewidth.StringWidth(line.text))/2)
		c.WriteString(x, top+i, line.text, line.kind)
	}
}
