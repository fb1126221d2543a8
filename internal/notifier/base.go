// Package notifier tells the owner of the server about registrations and address changes.
package notifier

import (
	"context"

	"github.com/favonia/ddnsp/internal/pp"
)

//go:generate mockgen -destination=../mocks/mock_notifier.go -package=mocks . Notifier

// Notifier delivers messages to people, as opposed to monitors, which are read by machines.
type Notifier interface {
	// Describe calls yield with each service name and its redacted parameters until yield returns false.
	Describe(yield func(service, params string) bool)

	// Send delivers msg, skipping empty messages. It reports whether every service accepted it.
	Send(ctx context.Context, ppfmt pp.PP, msg Message) bool
}
