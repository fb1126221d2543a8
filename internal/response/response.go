// Package response defines the status tokens sent back to DynDNS2 clients.
package response

import "net/netip"

// Code is the outcome of an update request.
type Code int

const (
	// OK is used by intermediate steps to signal that nothing went wrong yet.
	// It is never sent to clients.
	OK Code = iota

	// Good means the address was published.
	Good

	// NoChange means the address was already published.
	NoChange

	// BadAuth means the credentials are malformed or do not match the host.
	BadAuth

	// NoHost means the host name is malformed.
	NoHost

	// BadAgent means the reported address is malformed.
	BadAgent

	// DNSErr means the DNS provider or the host store failed.
	DNSErr
)

// String gives the token of the code without the address.
func (c Code) String() string {
	switch c {
	case Good:
		return "good"
	case NoChange:
		return "nochg"
	case BadAuth:
		return "badauth"
	case NoHost:
		return "nohost"
	case BadAgent:
		return "badagent"
	case DNSErr:
		return "dnserr"
	default:
		return "ok"
	}
}

// Response is the answer to one update request.
type Response struct {
	Code Code
	IP   netip.Addr // only meaningful for Good and NoChange
}

// New wraps a code that does not carry an address.
func New(code Code) Response {
	return Response{Code: code, IP: netip.Addr{}}
}

// NewWithIP wraps a code together with the published address.
func NewWithIP(code Code, ip netip.Addr) Response {
	return Response{Code: code, IP: ip}
}

// String gives the exact line sent to clients, without the final newline.
func (r Response) String() string {
	switch r.Code {
	case Good, NoChange:
		return r.Code.String() + " " + r.IP.String()
	default:
		return r.Code.String()
	}
}
