package backend

import (
	"strconv"
	"time"

	"github.com/favonia/ddnsp/internal/file"
	"github.com/favonia/ddnsp/internal/pp"
)

// Settings are the environment variables DNS_<ID>_* of one backend, with the prefix removed.
type Settings struct {
	Prefix string
	Values map[string]string
}

// NewSettings wraps the values read under the prefix.
func NewSettings(prefix string, values map[string]string) Settings {
	if values == nil {
		values = map[string]string{}
	}
	return Settings{Prefix: prefix, Values: values}
}

// Name returns the full name of the environment variable behind key.
func (s Settings) Name(key string) string {
	return s.Prefix + key
}

// String returns the value of key, or def when it is empty.
func (s Settings) String(key, def string) string {
	if val := s.Values[key]; val != "" {
		return val
	}
	return def
}

// Secret reads a secret either from key or from the file named by key_FILE.
// Setting both is an error.
func (s Settings) Secret(ppfmt pp.PP, key string) (string, bool) {
	val := s.Values[key]
	path := s.Values[key+"_FILE"]

	switch {
	case val != "" && path != "":
		ppfmt.Noticef(pp.EmojiUserError, "Cannot have both %s and %s set", s.Name(key), s.Name(key+"_FILE"))
		return "", false
	case path != "":
		secret, ok := file.ReadString(ppfmt, path)
		if !ok {
			return "", false
		}
		if secret == "" {
			ppfmt.Noticef(pp.EmojiUserError, "The file specified by %s does not contain a secret", s.Name(key+"_FILE"))
			return "", false
		}
		return secret, true
	default:
		return val, true
	}
}

// Bool reads key as a boolean value.
func (s Settings) Bool(ppfmt pp.PP, key string, def bool) (bool, bool) {
	val := s.Values[key]
	if val == "" {
		return def, true
	}

	b, err := strconv.ParseBool(val)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a boolean: %v", s.Name(key), val, err)
		return false, false
	}
	return b, true
}

// NonnegInt reads key as a non-negative integer.
func (s Settings) NonnegInt(ppfmt pp.PP, key string, def int) (int, bool) {
	val := s.Values[key]
	if val == "" {
		return def, true
	}

	i, err := strconv.Atoi(val)
	switch {
	case err != nil:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a number: %v", s.Name(key), val, err)
		return 0, false
	case i < 0:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%d) is negative", s.Name(key), i)
		return 0, false
	default:
		return i, true
	}
}

// Duration reads key as a non-negative time duration. "0" is accepted and means no bound.
func (s Settings) Duration(ppfmt pp.PP, key string, def time.Duration) (time.Duration, bool) {
	val := s.Values[key]
	if val == "" {
		return def, true
	}

	t, err := time.ParseDuration(val)
	switch {
	case err != nil:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a time duration: %v", s.Name(key), val, err)
		return 0, false
	case t < 0:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%v) is negative", s.Name(key), t)
		return 0, false
	default:
		return t, true
	}
}

// required reports an empty mandatory setting.
func (s Settings) required(ppfmt pp.PP, key, val string) bool {
	if val == "" {
		ppfmt.Noticef(pp.EmojiUserError, "%s is required but empty", s.Name(key))
		return false
	}
	return true
}
