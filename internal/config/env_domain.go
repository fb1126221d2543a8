package config

import (
	"github.com/favonia/ddnsp/internal/domain"
	"github.com/favonia/ddnsp/internal/pp"
)

// ReadDomain reads the zone managed at the DNS provider.
func ReadDomain(ppfmt pp.PP, key string, field *domain.FQDN) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, field.Describe())
		return true
	}

	d, err := domain.New(val)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a valid domain: %v", key, val, err)
		return false
	}

	*field = d
	return true
}

// ReadSubdomain reads the labels inserted between host names and the zone.
func ReadSubdomain(ppfmt pp.PP, key string, field *string) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, *field)
		return true
	}

	s, err := domain.NewSubdomain(val)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a valid subdomain: %v", key, val, err)
		return false
	}

	*field = s
	return true
}
