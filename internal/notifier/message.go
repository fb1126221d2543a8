package notifier

import (
	"fmt"
	"strings"
)

// Message is a notification made of sentences.
type Message []string

// NewMessagef creates a message with a single formatted sentence.
func NewMessagef(format string, args ...any) Message {
	return Message{fmt.Sprintf(format, args...)}
}

// Format joins the sentences into one paragraph.
func (m Message) Format() string { return strings.Join(m, " ") }

// IsEmpty tells whether there is nothing to send.
func (m Message) IsEmpty() bool { return len(m) == 0 }
