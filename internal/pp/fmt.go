package pp

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// shared is the state shared by a formatter and all its indented copies.
type shared struct {
	mu         sync.Mutex
	writer     io.Writer
	emitted    map[ID]bool
	suppressed map[ID]bool
}

type formatter struct {
	*shared
	emoji     bool
	indent    int
	verbosity Verbosity
}

// New creates a new pretty printer.
func New(writer io.Writer, emoji bool, verbosity Verbosity) PP {
	return formatter{
		shared: &shared{
			mu:         sync.Mutex{},
			writer:     writer,
			emitted:    map[ID]bool{},
			suppressed: map[ID]bool{},
		},
		emoji:     emoji,
		indent:    0,
		verbosity: verbosity,
	}
}

// Verbosity returns the current verbosity.
func (f formatter) Verbosity() Verbosity {
	return f.verbosity
}

// IsShowing checks whether a message of verbosity level v will be printed.
func (f formatter) IsShowing(v Verbosity) bool {
	return v >= f.verbosity
}

// Indent returns a new printer that indents the messages more than the input printer.
func (f formatter) Indent() PP {
	f.indent++
	return f
}

// BlankLineIfVerbose prints a blank line when [Verbose] messages are shown.
func (f formatter) BlankLineIfVerbose() {
	if f.IsShowing(Verbose) {
		f.mu.Lock()
		defer f.mu.Unlock()
		fmt.Fprintln(f.writer)
	}
}

func (f formatter) output(v Verbosity, emoji Emoji, msg string) {
	if !f.IsShowing(v) {
		return
	}

	var line string
	if f.emoji {
		line = fmt.Sprintf("%s%s %s", strings.Repeat(indentPrefix, f.indent), string(emoji), msg)
	} else {
		line = fmt.Sprintf("%s%s", strings.Repeat(indentPrefix, f.indent), msg)
	}
	line = strings.TrimSuffix(line, "\n")

	f.mu.Lock()
	defer f.mu.Unlock()
	fmt.Fprintln(f.writer, line)
}

// Infof formats and sends a message at the level [Info].
func (f formatter) Infof(emoji Emoji, format string, args ...any) {
	f.output(Info, emoji, fmt.Sprintf(format, args...))
}

// Noticef formats and sends a message at the level [Notice].
func (f formatter) Noticef(emoji Emoji, format string, args ...any) {
	f.output(Notice, emoji, fmt.Sprintf(format, args...))
}

// Suppress marks the message ID as suppressed.
func (f formatter) Suppress(id ID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suppressed[id] = true
}

// claim returns true exactly once for each ID that was not suppressed.
func (f formatter) claim(id ID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.suppressed[id] || f.emitted[id] {
		return false
	}
	f.emitted[id] = true
	return true
}

// InfoOncef calls [formatter.Infof] unless the ID was used before.
func (f formatter) InfoOncef(id ID, emoji Emoji, format string, args ...any) {
	if f.IsShowing(Info) && f.claim(id) {
		f.Infof(emoji, format, args...)
	}
}

// NoticeOncef calls [formatter.Noticef] unless the ID was used before.
func (f formatter) NoticeOncef(id ID, emoji Emoji, format string, args ...any) {
	if f.IsShowing(Notice) && f.claim(id) {
		f.Noticef(emoji, format, args...)
	}
}
