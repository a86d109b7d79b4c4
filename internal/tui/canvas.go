package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/go-runewidth"
	"github.com/muesli/ansi"
)

// Kind classifies the content of a cell, determining how it is styled when
// rendered.
type Kind int

const (
	Blank Kind = iota
	Text
	SelectedText
	Baseline
	Bar
)

// Canvas is a fixed grid of terminal cells. Content is painted onto the canvas
// at absolute columns and later rendered through a horizontal window, allowing
// content wider than the terminal to be scrolled.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
}

type cell struct {
	content string
	// width is the number of columns the content spans. The columns
	// following wide content are continuations with a width of zero.
	width int
	kind  Kind
}

var blank = cell{content: " ", width: 1}

func NewCanvas(width, height int) *Canvas {
	width, height = max(0, width), max(0, height)
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
		for x := range cells[y] {
			cells[y][x] = blank
		}
	}
	return &Canvas{width: width, height: height, cells: cells}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Set paints content spanning the given number of columns, starting at x. Any
// wide content it overlaps is blanked. Content that does not entirely fit on
// the canvas is replaced with blanks.
func (c *Canvas) Set(x, y int, content string, width int, kind Kind) {
	if y < 0 || y >= c.height || width < 1 {
		return
	}
	if x < 0 || x+width > c.width {
		for i := max(0, x); i < min(x+width, c.width); i++ {
			c.clear(i, y)
			c.cells[y][i].kind = kind
		}
		return
	}
	for i := x; i < x+width; i++ {
		c.clear(i, y)
	}
	row := c.cells[y]
	row[x] = cell{content: content, width: width, kind: kind}
	for i := x + 1; i < x+width; i++ {
		row[i] = cell{kind: kind}
	}
}

// WriteString paints s from x onwards, one rune at a time, and returns the
// number of columns painted. Zero-width runes are combined with the preceding
// rune.
func (c *Canvas) WriteString(x, y int, s string, kind Kind) int {
	start := x
	last := -1
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			if last >= 0 && last < c.width && y >= 0 && y < c.height && c.cells[y][last].width > 0 {
				c.cells[y][last].content += string(r)
			}
			continue
		}
		c.Set(x, y, string(r), w, kind)
		last = x
		x += w
	}
	return x - start
}

// WriteStyled paints a line that may contain escape sequences as a single
// cell spanning its printable width. It returns the number of columns painted.
func (c *Canvas) WriteStyled(x, y int, s string, kind Kind) int {
	w := ansi.PrintableRuneWidth(s)
	c.Set(x, y, s, w, kind)
	return w
}

// Fill paints every cell within the rectangle with the glyph. Right and bottom
// are exclusive.
func (c *Canvas) Fill(left, top, right, bottom int, glyph string, kind Kind) {
	for y := max(0, top); y < min(bottom, c.height); y++ {
		for x := max(0, left); x < min(right, c.width); x++ {
			c.Set(x, y, glyph, 1, kind)
		}
	}
}

// clear blanks the cell at x, along with all the columns of any wide content
// it belongs to.
func (c *Canvas) clear(x, y int) {
	row := c.cells[y]
	origin := x
	for origin > 0 && row[origin].width == 0 {
		origin--
	}
	for i := origin; i < min(origin+max(1, row[origin].width), c.width); i++ {
		row[i] = cell{content: " ", width: 1, kind: row[i].kind}
	}
}

// Render renders the columns from left up to left+width. Columns beyond the
// canvas are rendered blank, as is any wide content cut by the window. Each
// run of cells of the same kind is rendered with the style for that kind.
func (c *Canvas) Render(left, width int, styles map[Kind]lipgloss.Style) string {
	rows := make([]string, c.height)
	for y := range c.cells {
		rows[y] = c.renderRow(y, left, width, styles)
	}
	return strings.Join(rows, "\n")
}

func (c *Canvas) renderRow(y, left, width int, styles map[Kind]lipgloss.Style) string {
	var (
		out  strings.Builder
		run  strings.Builder
		kind Kind
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if style, ok := styles[kind]; ok {
			out.WriteString(style.Render(run.String()))
		} else {
			out.WriteString(run.String())
		}
		run.Reset()
	}
	emit := func(s string, k Kind) {
		if k != kind {
			flush()
			kind = k
		}
		run.WriteString(s)
	}

	end := left + width
	for x := left; x < end; x++ {
		if x < 0 || x >= c.width {
			emit(" ", Blank)
			continue
		}
		cl := c.cells[y][x]
		switch {
		case cl.width == 0 && x == left:
			// wide content starting before the window
			emit(" ", cl.kind)
		case cl.width == 0:
			// already emitted along with its content
		case x+cl.width > end:
			emit(strings.Repeat(" ", end-x), cl.kind)
			x = end
		default:
			emit(cl.content, cl.kind)
		}
	}
	flush()
	return out.String()
}
