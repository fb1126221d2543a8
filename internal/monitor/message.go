package monitor

import (
	"fmt"
	"strings"
)

// Message is the status reported to monitors: success or failure, with optional details.
type Message struct {
	OK    bool
	Lines []string
}

// NewMessagef creates a message with a single formatted line.
func NewMessagef(ok bool, format string, args ...any) Message {
	return Message{OK: ok, Lines: []string{fmt.Sprintf(format, args...)}}
}

// Format gives the request body: the non-blank lines, trimmed, one per line.
func (m Message) Format() string {
	lines := make([]string, 0, len(m.Lines))
	for _, l := range m.Lines {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, "\n")
}
