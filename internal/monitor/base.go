// Package monitor pings external uptime monitors.
package monitor

import (
	"context"

	"github.com/favonia/ddnsp/internal/pp"
)

// maxReadLength bounds how much of a response body is read.
const maxReadLength int64 = 102400

//go:generate mockgen -destination=../mocks/mock_monitor.go -package=mocks . BasicMonitor,Monitor

// BasicMonitor only reports whether the server is healthy.
type BasicMonitor interface {
	// Describe calls yield with the service name and its (redacted) parameters.
	Describe(yield func(service, params string) bool)

	// Ping reports success or failure, depending on msg.OK.
	Ping(ctx context.Context, ppfmt pp.PP, msg Message) bool
}

// Monitor additionally tracks the lifetime of the process.
type Monitor interface {
	BasicMonitor

	// Start announces that the server is starting.
	Start(ctx context.Context, ppfmt pp.PP, message string) bool

	// Exit reports the exit status of the process.
	Exit(ctx context.Context, ppfmt pp.PP, code int, message string) bool
}
