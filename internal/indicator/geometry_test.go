package indicator

import (
	"math"
	"testing"

	"github.com/leg100/swipetabs/internal/strip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeTabs are laid out side by side: [0,100], [100,180], [180,300], with a
// bottom of 40.
func threeTabs(contentWidths ...int) []strip.Tab {
	edges := []int{0, 100, 180, 300}
	tabs := make([]strip.Tab, 3)
	for i := range tabs {
		tabs[i] = strip.Tab{
			Index: i,
			Box:   strip.Box{Left: edges[i], Top: 0, Right: edges[i+1], Bottom: 40},
		}
		if i < len(contentWidths) {
			tabs[i].ContentWidth = contentWidths[i]
		}
	}
	return tabs
}

var fixedConfig = Config{
	Sizing:       Fixed,
	FixedWidth:   20,
	Height:       3,
	BottomMargin: 2,
}

func compute(t *testing.T, tabs []strip.Tab, scroll ScrollState, cfg Config) Geometry {
	t.Helper()

	g, err := Compute(tabs, scroll, cfg, 200)
	require.NoError(t, err)
	return g
}

func TestCompute_Indicator(t *testing.T) {
	tests := []struct {
		name   string
		tabs   []strip.Tab
		cfg    Config
		index  int
		offset float64
		want   Rect
	}{
		{
			"fixed at rest",
			threeTabs(),
			fixedConfig,
			0, 0,
			Rect{Left: 40, Top: 35, Right: 60, Bottom: 38},
		},
		{
			"fixed halfway to next tab",
			threeTabs(),
			fixedConfig,
			0, 0.5,
			Rect{Left: 85, Top: 35, Right: 105, Bottom: 38},
		},
		{
			"fixed at rest on second tab",
			threeTabs(),
			fixedConfig,
			1, 0,
			Rect{Left: 130, Top: 35, Right: 150, Bottom: 38},
		},
		{
			"fixed with padding",
			threeTabs(),
			Config{Sizing: Fixed, FixedWidth: 20, Height: 1, Padding: Padding{Left: 10, Right: 4}},
			0, 0,
			// inset is (100-20-10-4)/2 = 33
			Rect{Left: 43, Top: 39, Right: 63, Bottom: 40},
		},
		{
			"tab body subtracts padding",
			threeTabs(),
			Config{Sizing: EqualToTabBody, Height: 1, Padding: Padding{Left: 2, Right: 3}},
			0, 0,
			Rect{Left: 2, Top: 39, Right: 97, Bottom: 40},
		},
		{
			"tab body halfway to next tab",
			threeTabs(),
			Config{Sizing: EqualToTabBody, Height: 1, Padding: Padding{Left: 2, Right: 3}},
			0, 0.5,
			Rect{Left: 52, Top: 39, Right: 137, Bottom: 40},
		},
		{
			"text at rest",
			threeTabs(40, 20, 60),
			Config{Sizing: EqualToText, Height: 1, Padding: Padding{Left: 2, Right: 2}},
			0, 0,
			Rect{Left: 30, Top: 39, Right: 70, Bottom: 40},
		},
		{
			"text at rest on second tab",
			threeTabs(40, 20, 60),
			Config{Sizing: EqualToText, Height: 1, Padding: Padding{Left: 2, Right: 2}},
			1, 0,
			Rect{Left: 130, Top: 39, Right: 150, Bottom: 40},
		},
		{
			"text halfway to next tab",
			threeTabs(40, 20, 60),
			Config{Sizing: EqualToText, Height: 1, Padding: Padding{Left: 2, Right: 2}},
			0, 0.5,
			Rect{Left: 80, Top: 39, Right: 110, Bottom: 40},
		},
		{
			"text narrower than padding lets padding win",
			threeTabs(94),
			Config{Sizing: EqualToText, Height: 1, Padding: Padding{Left: 2, Right: 2}},
			0, 0,
			Rect{Left: 2, Top: 39, Right: 98, Bottom: 40},
		},
		{
			"text wider than tab",
			threeTabs(120),
			Config{Sizing: EqualToText, Height: 1},
			0, 0,
			Rect{Left: 0, Top: 39, Right: 100, Bottom: 40},
		},
		{
			"last tab ignores offset",
			threeTabs(),
			fixedConfig,
			2, 0.5,
			Rect{Left: 230, Top: 35, Right: 250, Bottom: 38},
		},
		{
			"index beyond last tab is clamped",
			threeTabs(),
			fixedConfig,
			7, 0.5,
			Rect{Left: 230, Top: 35, Right: 250, Bottom: 38},
		},
		{
			"negative index and offset are clamped",
			threeTabs(),
			fixedConfig,
			-3, -0.5,
			Rect{Left: 40, Top: 35, Right: 60, Bottom: 38},
		},
		{
			"NaN offset is treated as rest",
			threeTabs(),
			fixedConfig,
			0, math.NaN(),
			Rect{Left: 40, Top: 35, Right: 60, Bottom: 38},
		},
		{
			"fixed wider than tab overflows it",
			threeTabs(),
			Config{Sizing: Fixed, FixedWidth: 140, Height: 1},
			0, 0,
			// inset is (100-140)/2 = -20
			Rect{Left: -20, Top: 39, Right: 120, Bottom: 40},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compute(t, tt.tabs, ScrollState{Index: tt.index, Offset: tt.offset}, tt.cfg)
			assert.Equal(t, tt.want, got.Indicator)
		})
	}
}

func TestCompute_Continuity(t *testing.T) {
	configs := map[string]Config{
		"fixed": fixedConfig,
		"tab":   {Sizing: EqualToTabBody, Height: 1, Padding: Padding{Left: 3, Right: 1}},
		"text":  {Sizing: EqualToText, Height: 1, Padding: Padding{Left: 2, Right: 5}},
	}
	tabs := threeTabs(37, 11, 64)

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			for index := 0; index < 2; index++ {
				prev := compute(t, tabs, ScrollState{Index: index}, cfg).Indicator
				for step := 1; step <= 100; step++ {
					offset := float64(step) / 100
					got := compute(t, tabs, ScrollState{Index: index, Offset: offset}, cfg).Indicator

					assert.LessOrEqual(t, abs(got.Left-prev.Left), 3, "left jumped at offset %v", offset)
					assert.LessOrEqual(t, abs(got.Right-prev.Right), 3, "right jumped at offset %v", offset)
					assert.Equal(t, prev.Top, got.Top)
					assert.Equal(t, prev.Bottom, got.Bottom)
					prev = got
				}
				// a full offset lands exactly where the next tab rests
				next := compute(t, tabs, ScrollState{Index: index + 1}, cfg).Indicator
				assert.Equal(t, next, prev)
			}
		})
	}
}

func TestCompute_StationaryWithinTab(t *testing.T) {
	configs := []Config{
		fixedConfig,
		{Sizing: EqualToTabBody, Height: 1, Padding: Padding{Left: 4, Right: 4}},
		{Sizing: EqualToText, Height: 1, Padding: Padding{Left: 1, Right: 6}},
	}
	tabs := threeTabs(30, 30, 30)

	for _, cfg := range configs {
		for i, tab := range tabs {
			got := compute(t, tabs, ScrollState{Index: i}, cfg).Indicator

			assert.GreaterOrEqual(t, got.Left, tab.Box.Left, cfg.Sizing)
			assert.LessOrEqual(t, got.Right, tab.Box.Right, cfg.Sizing)
		}
	}
}

func TestCompute_TextWidthBound(t *testing.T) {
	cfg := Config{Sizing: EqualToText, Height: 1, Padding: Padding{Left: 3, Right: 3}}
	for _, content := range []int{0, 10, 40, 74, 78, 87, 94, 100} {
		tabs := threeTabs(content, content, content)
		for i, tab := range tabs {
			got := compute(t, tabs, ScrollState{Index: i}, cfg).Indicator

			inner := tab.Box.Width() - 6
			margin := (inner - content) / 2
			// plus the odd cell lost when halving the margin
			bound := content + 2*max(margin, 3) + 1
			assert.LessOrEqual(t, got.Width(), bound, "content width %d", content)
		}
	}
}

func TestCompute_TextOddMarginTruncates(t *testing.T) {
	cfg := Config{Sizing: EqualToText, Height: 1, Padding: Padding{Left: 3, Right: 3}}
	tabs := threeTabs(75)

	got := compute(t, tabs, ScrollState{}, cfg).Indicator

	// The margin of (94-75)/2 = 9.5 truncates to 9, and the padding of 3 is
	// added on top, leaving the indicator one cell wider than the content
	// plus its exact margins.
	assert.Equal(t, Rect{Left: 12, Top: 39, Right: 88, Bottom: 40}, got)
	assert.Equal(t, 76, got.Width())
}

func TestCompute_Empty(t *testing.T) {
	got, err := Compute(nil, ScrollState{Index: 3, Offset: 0.4}, fixedConfig, 100)
	require.NoError(t, err)

	assert.Equal(t, Rect{}, got.Indicator)
	assert.True(t, got.Indicator.Empty())
	assert.Equal(t, ScrollCommand{}, got.Scroll)
}

func TestCompute_NegativeWidth(t *testing.T) {
	tabs := threeTabs()
	tabs[1].Box.Right = 90

	_, err := Compute(tabs, ScrollState{}, fixedConfig, 100)
	assert.ErrorIs(t, err, strip.ErrInvalidArgument)
}

func TestCompute_Idempotent(t *testing.T) {
	tabs := threeTabs(13, 57, 21)
	scroll := ScrollState{Index: 1, Offset: 0.337, LastAppliedScrollX: 12}
	cfg := Config{Sizing: EqualToText, Height: 2, Padding: Padding{Left: 1.5, Right: 2.5}}

	first := compute(t, tabs, scroll, cfg)
	second := compute(t, tabs, scroll, cfg)
	assert.Equal(t, first, second)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
