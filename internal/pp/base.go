// Package pp handles pretty-printing.
package pp

//go:generate mockgen -destination=../mocks/mock_pp.go -package=mocks . PP

// PP is the abstraction of a pretty printer.
//
// Implementations returned by [New] are safe for concurrent use.
type PP interface {
	// Verbosity returns the current verbosity level.
	Verbosity() Verbosity

	// IsShowing checks whether a message of a certain level will be displayed.
	IsShowing(v Verbosity) bool

	// Indent returns a new pretty-printer with more indentation.
	Indent() PP

	// BlankLineIfVerbose prints a blank line if the verbosity is at least [Verbose].
	BlankLineIfVerbose()

	// Infof formats and prints a message at the info level.
	Infof(emoji Emoji, format string, args ...any)

	// Noticef formats and prints a message at the notice level.
	Noticef(emoji Emoji, format string, args ...any)

	// Suppress suppresses all future calls to [PP.InfoOncef] and [PP.NoticeOncef] with the same ID.
	Suppress(id ID)

	// InfoOncef formats and prints a message at the info level,
	// unless a message with the same ID was printed or suppressed.
	InfoOncef(id ID, emoji Emoji, format string, args ...any)

	// NoticeOncef formats and prints a message at the notice level,
	// unless a message with the same ID was printed or suppressed.
	NoticeOncef(id ID, emoji Emoji, format string, args ...any)
}
