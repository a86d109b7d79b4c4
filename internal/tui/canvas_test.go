package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanvas_Render(t *testing.T) {
	c := NewCanvas(6, 1)
	n := c.WriteString(0, 0, "a世b", Text)
	assert.Equal(t, 4, n)

	tests := []struct {
		name  string
		left  int
		width int
		want  string
	}{
		{"whole canvas", 0, 6, "a世b  "},
		{"wide rune cut on the left", 2, 4, " b  "},
		{"wide rune cut on the right", 0, 2, "a "},
		{"window before canvas", -2, 4, "  a "},
		{"window beyond canvas", 4, 4, "    "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Render(tt.left, tt.width, nil))
		})
	}
}

func TestCanvas_OverwriteWideRune(t *testing.T) {
	c := NewCanvas(6, 1)
	c.WriteString(0, 0, "a世b", Text)

	c.Set(2, 0, "x", 1, Text)

	assert.Equal(t, "a xb  ", c.Render(0, 6, nil))
}

func TestCanvas_Fill(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Fill(-1, 1, 2, 5, "━", Bar)

	assert.Equal(t, "    \n━━  ", c.Render(0, 4, nil))
}

func TestCanvas_ContentOverflowingCanvas(t *testing.T) {
	c := NewCanvas(3, 1)

	c.WriteString(2, 0, "世", Text)

	assert.Equal(t, "   ", c.Render(0, 3, nil))
}

func TestCanvas_WriteStyled(t *testing.T) {
	c := NewCanvas(4, 1)
	styled := "\x1b[1mhi\x1b[0m"

	n := c.WriteStyled(1, 0, styled, Text)

	assert.Equal(t, 2, n)
	assert.Equal(t, " "+styled+" ", c.Render(0, 4, nil))
	// partially visible styled content is blanked
	assert.Equal(t, "  ", c.Render(2, 2, nil))
}
