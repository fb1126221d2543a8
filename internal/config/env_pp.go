package config

import (
	"io"
	"strconv"

	"github.com/favonia/ddnsp/internal/pp"
)

// ReadEmoji reads an environment variable as emoji/no-emoji.
func ReadEmoji(ppfmt pp.PP, key string, field *bool) bool {
	val := Getenv(key)
	if val == "" {
		return true
	}

	emoji, err := strconv.ParseBool(val)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, val, err)
		return false
	}

	*field = emoji
	return true
}

// ReadQuiet reads an environment variable as quiet/verbose.
func ReadQuiet(ppfmt pp.PP, key string, field *pp.Verbosity) bool {
	val := Getenv(key)
	if val == "" {
		return true
	}

	quiet, err := strconv.ParseBool(val)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, val, err)
		return false
	}

	if quiet {
		*field = pp.Quiet
	} else {
		*field = pp.Verbose
	}
	return true
}

// SetupPP sets up a new PP according to the values of EMOJI and QUIET.
// Problems in these two variables are reported with the default style.
func SetupPP(output io.Writer) (pp.PP, bool) {
	emoji, verbosity := true, pp.DefaultVerbosity

	fallback := pp.New(output, emoji, verbosity)
	if !ReadEmoji(fallback, "EMOJI", &emoji) || !ReadQuiet(fallback, "QUIET", &verbosity) {
		return nil, false
	}

	return pp.New(output, emoji, verbosity), true
}
