package tui

import (
	"strings"
)

const resetSequence = "\x1b[0m"

// SplitStyledLines splits s into lines that can each be rendered on their
// own. A color sequence still active at the end of a line is reset there and
// re-activated at the start of the following line.
func SplitStyledLines(s string) []string {
	var (
		lines   []string
		line    strings.Builder
		seq     strings.Builder
		inSeq   bool
		current string
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\x1b':
			inSeq = true
			seq.Reset()
			seq.WriteByte(c)
		case inSeq:
			seq.WriteByte(c)
			if isTerminator(c) {
				inSeq = false
				switch {
				case strings.HasSuffix(seq.String(), "[0m"):
					current = ""
				case c == 'm':
					current = seq.String()
				}
			}
		case c == '\n':
			if current != "" {
				line.WriteString(resetSequence)
			}
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(current)
			continue
		}
		line.WriteByte(c)
	}
	return append(lines, line.String())
}

func isTerminator(c byte) bool {
	return (c >= 0x40 && c <= 0x5a) || (c >= 0x61 && c <= 0x7a)
}
