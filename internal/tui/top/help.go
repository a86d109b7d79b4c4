package top

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/swipetabs/internal/tui"
)

var (
	shortHelpKeyStyle  = tui.Bold.Foreground(tui.HelpKey).Margin(0, 1, 0, 0)
	shortHelpDescStyle = tui.Regular.Foreground(tui.HelpDesc)

	longHelpHeadingStyle = tui.Bold.Foreground(tui.HelpKey).Margin(0, 3, 0, 0)
	longHelpKeyStyle     = tui.Bold.Foreground(tui.HelpKey).Margin(0, 1, 0, 0)
	longHelpDescStyle    = tui.Regular.Foreground(tui.HelpDesc).Margin(0, 3, 0, 0)
)

const shortHelpRows = 2

// shortHelpView renders help for key bindings within the footer, filling
// columns of shortHelpRows bindings until maxWidth is reached.
func shortHelpView(bindings []key.Binding, maxWidth int) string {
	var (
		pairs []string
		width int
	)
	for i := 0; i < len(bindings); i += shortHelpRows {
		var (
			keys  []string
			descs []string
		)
		for j := i; j < min(i+shortHelpRows, len(bindings)); j++ {
			keys = append(keys, bindings[j].Help().Key)
			descs = append(descs, bindings[j].Help().Desc)
		}
		// Separate each pair of columns from the previous pair.
		var cols []string
		if len(pairs) > 0 {
			cols = []string{"   "}
		}
		cols = append(cols,
			shortHelpKeyStyle.Render(strings.Join(keys, "\n")),
			shortHelpDescStyle.Render(strings.Join(descs, "\n")),
		)

		pair := lipgloss.JoinHorizontal(lipgloss.Left, cols...)
		width += lipgloss.Width(pair)
		if width > maxWidth {
			break
		}
		pairs = append(pairs, pair)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pairs...)
}

type helpSection struct {
	heading  string
	bindings []key.Binding
}

// fullHelpView renders a column for each section, each describing the
// section's key bindings beneath its heading.
func fullHelpView(sections ...helpSection) string {
	columns := make([]string, len(sections))
	for i, section := range sections {
		keys := make([]string, len(section.bindings))
		descs := make([]string, len(section.bindings))
		for j, kb := range section.bindings {
			keys[j] = longHelpKeyStyle.Render(kb.Help().Key)
			descs[j] = longHelpDescStyle.Render(kb.Help().Desc)
		}
		columns[i] = lipgloss.JoinVertical(lipgloss.Top,
			longHelpHeadingStyle.Render(section.heading),
			lipgloss.JoinHorizontal(lipgloss.Left,
				strings.Join(keys, "\n"),
				strings.Join(descs, "\n"),
			),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, columns...)
}
