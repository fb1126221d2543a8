package config

import (
	"github.com/favonia/ddnsp/internal/notifier"
	"github.com/favonia/ddnsp/internal/pp"
)

// ReadAndAppendShoutrrrURLs reads the shoutrrr URLs, one per line.
func ReadAndAppendShoutrrrURLs(ppfmt pp.PP, key string, field *[]notifier.Notifier) bool {
	vals := Getenvs(key)
	if len(vals) == 0 {
		return true
	}

	s, ok := notifier.NewShoutrrr(ppfmt, vals)
	if !ok {
		return false
	}

	*field = append(*field, s)
	return true
}
