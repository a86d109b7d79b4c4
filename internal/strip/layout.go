package strip

// Measurer measures the natural size of a tab's content, excluding padding.
type Measurer interface {
	Measure(tab Tab) (width, height int)
}

// MeasureFunc adapts an ordinary function to a Measurer.
type MeasureFunc func(tab Tab) (width, height int)

func (f MeasureFunc) Measure(tab Tab) (int, int) { return f(tab) }

// Gravity positions tabs within the container, and content within each tab.
type Gravity int

const (
	Center Gravity = iota
	Start
	End
)

type Padding struct {
	Left, Right, Top, Bottom int
}

type LayoutOptions struct {
	Measurer Measurer
	Padding  Padding
	// Width of the container. Tabs may overflow it, in which case the strip
	// is expected to be scrolled horizontally.
	Width int
	// Fill shares any spare container width equally between the tabs.
	Fill    bool
	Gravity Gravity
}

// Layout lays out tabs left to right, refreshing each tab's box, content
// width, and content position. All tabs share the height of the tallest. It
// returns the total width occupied by the tabs, including any leading space
// introduced by gravity.
func (s *Strip) Layout(opts LayoutOptions) int {
	if len(s.tabs) == 0 {
		return 0
	}
	var (
		widths  = make([]int, len(s.tabs))
		natural int
		height  int
	)
	for i, t := range s.tabs {
		w, h := opts.Measurer.Measure(*t)
		t.ContentWidth = w
		widths[i] = opts.Padding.Left + w + opts.Padding.Right
		natural += widths[i]
		height = max(height, h)
	}
	height += opts.Padding.Top + opts.Padding.Bottom

	var origin int
	if spare := opts.Width - natural; spare > 0 {
		if opts.Fill {
			share, remainder := spare/len(widths), spare%len(widths)
			for i := range widths {
				widths[i] += share
				if i < remainder {
					widths[i]++
				}
			}
		} else {
			origin = align(opts.Gravity, spare)
		}
	}

	left := origin
	for i, t := range s.tabs {
		t.Box = Box{Left: left, Top: 0, Right: left + widths[i], Bottom: height}
		inner := widths[i] - opts.Padding.Left - opts.Padding.Right
		t.ContentLeft = left + opts.Padding.Left + align(opts.Gravity, inner-t.ContentWidth)
		left += widths[i]
	}
	return left
}

func align(g Gravity, spare int) int {
	if spare <= 0 {
		return 0
	}
	switch g {
	case Start:
		return 0
	case End:
		return spare
	default:
		return spare / 2
	}
}
