package logs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/swipetabs/internal/logging"
	"github.com/leg100/swipetabs/internal/tui"
)

func coloredLogLevel(level string) string {
	var levelColor lipgloss.TerminalColor
	switch level {
	case "ERROR":
		levelColor = tui.ErrorLogLevel
	case "WARN":
		levelColor = tui.WarnLogLevel
	case "DEBUG":
		levelColor = tui.DebugLogLevel
	case "INFO":
		levelColor = tui.InfoLogLevel
	}
	return tui.Bold.Foreground(levelColor).Render(fmt.Sprintf("%-5s", level))
}

var attrKeyStyle = tui.Regular.Foreground(tui.LogRecordAttributeKey)

// line renders a message on a single line, with its attributes following the
// message.
func line(msg logging.Message) string {
	parts := make([]string, 0, len(msg.Attributes)+3)
	parts = append(parts,
		msg.Time.Format("15:04:05.000"),
		coloredLogLevel(msg.Level),
		msg.Message,
	)
	for _, attr := range msg.Attributes {
		parts = append(parts, attrKeyStyle.Render(attr.Key+"=")+attr.Value)
	}
	return strings.Join(parts, " ")
}
