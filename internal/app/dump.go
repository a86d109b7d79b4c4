package app

import (
	"fmt"
	"io"
	"os"

	"github.com/hokaccha/go-prettyjson"
	"github.com/leg100/swipetabs/internal/indicator"
	"github.com/mattn/go-isatty"
)

// dumpSteps is the number of frames computed between adjacent tabs.
const dumpSteps = 4

// dump lays out the tabs within the given width and sweeps the scroll position
// from the first tab to the last, writing the geometry of each frame as JSON.
// Scroll commands are committed as a scroller would commit them.
func (a *app) dump(w io.Writer, width int) error {
	opts := a.layout
	opts.Width = width
	a.strip.Layout(opts)
	tabs := a.strip.Tabs()

	formatter := prettyjson.NewFormatter()
	formatter.DisabledColor = !isTerminal(w)

	var scroll indicator.ScrollState
	for i := range tabs {
		for step := range dumpSteps {
			// There is nothing beyond the last tab to sweep towards.
			if i == len(tabs)-1 && step > 0 {
				break
			}
			scroll.Index = i
			scroll.Offset = float64(step) / dumpSteps

			g, err := indicator.Compute(tabs, scroll, a.indicator, width)
			if err != nil {
				return err
			}
			scroll = scroll.Commit(g.Scroll)

			out, err := formatter.Marshal(g)
			if err != nil {
				return fmt.Errorf("marshaling geometry: %w", err)
			}
			if _, err := fmt.Fprintln(w, string(out)); err != nil {
				return err
			}
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
