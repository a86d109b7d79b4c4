package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollbar(t *testing.T) {
	tests := []struct {
		name                           string
		width, total, visible, offset int
		want                           string
	}{
		{"fits", 5, 4, 10, 0, "─────"},
		{"start", 10, 20, 10, 0, "━━━━━─────"},
		{"end", 10, 20, 10, 10, "─────━━━━━"},
		{"middle", 10, 40, 10, 15, "────━━━───"},
		{"tiny thumb", 4, 1000, 1, 999, "───━"},
		{"no width", 0, 20, 10, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Scrollbar(tt.width, tt.total, tt.visible, tt.offset))
		})
	}
}
