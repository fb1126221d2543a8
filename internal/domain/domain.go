// Package domain parses DNS domain names.
package domain

import (
	"errors"
	"strings"

	"golang.org/x/net/idna"
)

// profileDroppingLeadingDots does C2 in UTS#46 with all checks on + removing leading dots.
// This is the main conversion profile in use.
//
//nolint:gochecknoglobals
var (
	profileDroppingLeadingDots = idna.New(
		idna.MapForLookup(),
		idna.BidiRule(),
		idna.Transitional(false),
		idna.RemoveLeadingDots(true),
	)
	profileKeepingLeadingDots = idna.New(
		idna.MapForLookup(),
		idna.BidiRule(),
		idna.Transitional(false),
		idna.RemoveLeadingDots(false),
	)
)

// safelyToUnicode takes an ASCII form and returns the Unicode form
// when the round trip gives the same ASCII form back without errors.
// Otherwise, the input ASCII form is returned.
func safelyToUnicode(ascii string) string {
	unicode, errToA := profileKeepingLeadingDots.ToUnicode(ascii)
	roundTrip, errToU := profileKeepingLeadingDots.ToASCII(unicode)
	if errToA != nil || errToU != nil || roundTrip != ascii {
		return ascii
	}

	return unicode
}

var (
	// ErrNotFQDN means a domain name is not fully qualified.
	ErrNotFQDN = errors.New("not fully qualified")

	// ErrEmpty means a domain name is empty after normalization.
	ErrEmpty = errors.New("empty domain name")
)

func normalize(domain string) (string, error) {
	normalized, err := profileDroppingLeadingDots.ToASCII(domain)

	// Remove the final dot for consistency
	normalized = strings.TrimRight(normalized, ".")

	return normalized, err
}

// New normalizes the name of a zone to its ASCII form.
// The zone must have at least two labels, such as "example.org".
func New(domain string) (FQDN, error) {
	normalized, err := normalize(domain)
	switch {
	case normalized == "":
		return "", ErrEmpty
	case strings.IndexByte(normalized, '.') == -1:
		return FQDN(normalized), ErrNotFQDN
	default:
		return FQDN(normalized), err
	}
}

// NewSubdomain normalizes the labels inserted between host names and the zone.
// The empty string is accepted and means no extra labels.
func NewSubdomain(subdomain string) (string, error) {
	if strings.TrimSpace(subdomain) == "" {
		return "", nil
	}

	normalized, err := normalize(subdomain)
	if err == nil && normalized == "" {
		err = ErrEmpty
	}
	return normalized, err
}

// RecordName is the name of a host relative to the zone.
func RecordName(hostname, subdomain string) string {
	if subdomain == "" {
		return hostname
	}
	return hostname + "." + subdomain
}
