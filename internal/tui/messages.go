package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

type InfoMsg string

type ErrorMsg struct {
	Error   error
	Message string
	Args    []any
}

func NewErrorMsg(err error, msg string, args ...any) ErrorMsg {
	return ErrorMsg{
		Error:   err,
		Message: msg,
		Args:    args,
	}
}

// ReportError returns a command that reports the error to the top-level model.
func ReportError(err error, msg string, args ...any) tea.Cmd {
	return func() tea.Msg {
		return NewErrorMsg(err, msg, args...)
	}
}

// ReportInfo returns a command that reports an informational message to the
// top-level model.
func ReportInfo(msg string, args ...any) tea.Cmd {
	return func() tea.Msg {
		if len(args) > 0 {
			msg = fmt.Sprintf(msg, args...)
		}
		return InfoMsg(msg)
	}
}
