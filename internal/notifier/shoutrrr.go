package notifier

import (
	"context"
	"time"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/router"
	"github.com/containrrr/shoutrrr/pkg/types"

	"github.com/favonia/ddnsp/internal/pp"
)

// Shoutrrr sends notifications through the services supported by shoutrrr.
type Shoutrrr struct {
	// The router
	Router *router.ServiceRouter

	// The services
	ServiceNames []string
}

var _ Notifier = (*Shoutrrr)(nil)

// ShoutrrrDefaultTimeout is the default timeout for sending one message.
const ShoutrrrDefaultTimeout = 10 * time.Second

// NewShoutrrr creates a new shoutrrr notifier.
func NewShoutrrr(ppfmt pp.PP, rawURLs []string) (*Shoutrrr, bool) {
	r, err := shoutrrr.CreateSender(rawURLs...)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Could not create shoutrrr client: %v", err)
		return nil, false
	}

	r.Timeout = ShoutrrrDefaultTimeout

	serviceNames := make([]string, 0, len(rawURLs))
	for _, u := range rawURLs {
		s, _, _ := r.ExtractServiceName(u)
		serviceNames = append(serviceNames, s)
	}

	return &Shoutrrr{Router: r, ServiceNames: serviceNames}, true
}

// Describe calls yield with the service names.
func (s *Shoutrrr) Describe(yield func(service, params string) bool) {
	for _, n := range s.ServiceNames {
		if !yield(n, "(URL redacted)") {
			return
		}
	}
}

// Send sends the message to all the services.
func (s *Shoutrrr) Send(_ context.Context, ppfmt pp.PP, msg Message) bool {
	if msg.IsEmpty() {
		return true
	}

	errs := s.Router.Send(msg.Format(), &types.Params{})
	allOk := true
	for _, err := range errs {
		if err != nil {
			ppfmt.Noticef(pp.EmojiError, "Failed to send some shoutrrr message: %v", err)
			allOk = false
		}
	}
	if allOk {
		ppfmt.Infof(pp.EmojiNotification, "Sent shoutrrr message")
	}
	return allOk
}
