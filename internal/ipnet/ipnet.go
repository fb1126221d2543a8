// Package ipnet contains utility functions for IPv4 and IPv6 networks.
package ipnet

import (
	"fmt"
	"net/netip"

	"github.com/favonia/ddnsp/internal/pp"
)

// Type is the type of IP networks.
type Type int

const (
	// IP4 is IP version 4.
	IP4 Type = 4

	// IP6 is IP version 6.
	IP6 Type = 6
)

// FromAddr returns the IP network of an address. IPv4-mapped IPv6 addresses belong to [IP4].
// It returns 0 for invalid addresses.
func FromAddr(ip netip.Addr) Type {
	ip = ip.Unmap()
	switch {
	case ip.Is4():
		return IP4
	case ip.Is6():
		return IP6
	default:
		return 0
	}
}

// Int returns the version of the IP networks. It is either 4 or 6.
func (t Type) Int() int {
	switch t {
	case IP4, IP6:
		return int(t)
	default:
		return 0
	}
}

// Describe returns a human-readable description of the IP network.
func (t Type) Describe() string {
	switch t {
	case IP4, IP6:
		return fmt.Sprintf("IPv%d", t)
	default:
		return "<unrecognized IP network>"
	}
}

// RecordType prints out the type of DNS records for the IP network. For IPv4, it is A; for IPv6, it is AAAA.
func (t Type) RecordType() string {
	switch t {
	case IP4:
		return "A"
	case IP6:
		return "AAAA"
	default:
		return ""
	}
}

// Matches checks whether an IP belongs to it.
func (t Type) Matches(ip netip.Addr) bool {
	return t != 0 && FromAddr(ip) == t
}

// WarnUnusual prints a notice when a reported address is unlikely to be reachable by others.
// The address is still published; the return value tells whether it looked like a global address.
func WarnUnusual(ppfmt pp.PP, ip netip.Addr) bool {
	t := FromAddr(ip)
	switch {
	case ip.IsUnspecified():
		ppfmt.Noticef(pp.EmojiWarning, "Reported %s address %s is an unspecified address", t.Describe(), ip.String())
	case ip.IsLoopback():
		ppfmt.Noticef(pp.EmojiWarning, "Reported %s address %s is a loopback address", t.Describe(), ip.String())
	case ip.IsMulticast():
		ppfmt.Noticef(pp.EmojiWarning, "Reported %s address %s is a multicast address", t.Describe(), ip.String())
	case ip.IsLinkLocalUnicast():
		ppfmt.Noticef(pp.EmojiWarning, "Reported %s address %s is a link-local address", t.Describe(), ip.String())
	case ip.IsPrivate():
		ppfmt.Infof(pp.EmojiWarning, "Reported %s address %s is a private address", t.Describe(), ip.String())
	case !ip.IsGlobalUnicast():
		ppfmt.Noticef(pp.EmojiWarning,
			"Reported %s address %s does not look like a global unicast address", t.Describe(), ip.String())
	default:
		return true
	}
	return false
}
