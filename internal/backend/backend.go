// Package backend publishes host addresses to authoritative DNS providers.
package backend

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strconv"

	"github.com/favonia/ddnsp/internal/domain"
	"github.com/favonia/ddnsp/internal/pp"
)

//go:generate mockgen -destination=../mocks/mock_backend.go -package=mocks . Backend

// TTL is the time-to-live of DNS records in seconds.
type TTL int

// TTLDefault leaves the choice of TTL to the provider.
const TTLDefault TTL = 0

// Int returns the TTL as an integer.
func (t TTL) Int() int {
	return int(t)
}

// Describe gives a human-readable representation of the TTL.
func (t TTL) Describe() string {
	if t == TTLDefault {
		return "0 (provider default)"
	}
	return strconv.Itoa(t.Int())
}

// A Backend publishes the address of one DNS record.
//
// Implementations are shared by all requests and must be safe for concurrent use.
type Backend interface {
	// ID returns the identifier under which the backend was registered.
	ID() string

	// UpdateIP makes name (relative to zone) point to ip, replacing other records of the same type.
	UpdateIP(ctx context.Context, ppfmt pp.PP, zone domain.FQDN, name string, ip netip.Addr, ttl TTL) error
}

// ErrBackendNotFound means no backend was registered under the identifier.
var ErrBackendNotFound = errors.New("DNS backend not found")

// ErrBackendSetup means the settings of a backend were rejected.
var ErrBackendSetup = errors.New("DNS backend could not be set up")

// Error is a failure that happened before the provider gave a definite answer,
// such as a DNS lookup failure, a refused connection, or a timeout.
type Error struct {
	Backend string
	Op      string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Backend, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// RequestError is a definite rejection from the provider.
// For HTTP providers, StatusCode is the HTTP status and Body is the raw response body.
// For DNS servers, StatusCode is the response code and Body is its name.
type RequestError struct {
	Backend    string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: request failed with status %d: %s", e.Backend, e.StatusCode, e.Body)
}

// recordName is the fully qualified name of a record without the final dot.
func recordName(zone domain.FQDN, name string) string {
	return zone.Join(name).DNSNameASCII()
}
