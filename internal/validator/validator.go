// Package validator normalizes and bounds-checks the fields of update requests.
package validator

import (
	"fmt"
	"net/netip"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/favonia/ddnsp/internal/response"
)

// Default limits.
const (
	DefaultHostnameMaxLength = 63
	DefaultUsernameMaxLength = 32
	DefaultPasswordMinLength = 8
	DefaultPasswordMaxLength = 128
)

// Limits are the length bounds applied to the fields of a request.
type Limits struct {
	HostnameMaxLength int
	UsernameMaxLength int
	PasswordMinLength int
	PasswordMaxLength int
}

// DefaultLimits returns the default limits.
func DefaultLimits() Limits {
	return Limits{
		HostnameMaxLength: DefaultHostnameMaxLength,
		UsernameMaxLength: DefaultUsernameMaxLength,
		PasswordMinLength: DefaultPasswordMinLength,
		PasswordMaxLength: DefaultPasswordMaxLength,
	}
}

// Check reports inconsistent limits.
func (l Limits) Check() error {
	switch {
	case l.HostnameMaxLength < 1:
		return fmt.Errorf("the maximum length of host names (%d) should be positive", l.HostnameMaxLength)
	case l.UsernameMaxLength < 1:
		return fmt.Errorf("the maximum length of usernames (%d) should be positive", l.UsernameMaxLength)
	case l.PasswordMinLength < 1:
		return fmt.Errorf("the minimum length of passwords (%d) should be positive", l.PasswordMinLength)
	case l.PasswordMaxLength < l.PasswordMinLength:
		return fmt.Errorf("the maximum length of passwords (%d) is less than the minimum length (%d)",
			l.PasswordMaxLength, l.PasswordMinLength)
	default:
		return nil
	}
}

// Request holds the raw fields of an update request.
type Request struct {
	Username string
	Password string
	Hostname string
	IP       string
}

// Validated holds the normalized fields of a request that passed all checks.
type Validated struct {
	Username string
	Password string
	Hostname string
	IP       netip.Addr
}

// labelRegex is ASCII-only; lowercasing happens after the match.
var labelRegex = regexp.MustCompile(`^[0-9A-Za-z][-_0-9A-Za-z]*$`)

func isLabel(s string, maxLength int) bool {
	return len(s) >= 1 && len(s) <= maxLength && labelRegex.MatchString(s)
}

// NormalizeHostname keeps the first label of a host name, trimmed and lowercased.
func NormalizeHostname(hostname string) string {
	first, _, _ := strings.Cut(hostname, ".")
	return strings.ToLower(strings.TrimSpace(first))
}

// Validate checks the host name, the username, the password, and then the address.
// The first failing check decides the code; [response.OK] means all checks passed.
func Validate(req Request, limits Limits) (Validated, response.Code) {
	first, _, _ := strings.Cut(req.Hostname, ".")
	if !isLabel(strings.TrimSpace(first), limits.HostnameMaxLength) {
		return Validated{}, response.NoHost
	}
	hostname := NormalizeHostname(req.Hostname)

	// Usernames keep their case.
	username := strings.TrimSpace(req.Username)
	if !isLabel(username, limits.UsernameMaxLength) {
		return Validated{}, response.BadAuth
	}

	if n := utf8.RuneCountInString(req.Password); n < limits.PasswordMinLength || n > limits.PasswordMaxLength {
		return Validated{}, response.BadAuth
	}

	ip, err := netip.ParseAddr(strings.TrimSpace(req.IP))
	if err != nil || !ip.Is4() {
		return Validated{}, response.BadAgent
	}

	return Validated{
		Username: username,
		Password: req.Password,
		Hostname: hostname,
		IP:       ip,
	}, response.OK
}
