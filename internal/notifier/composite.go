package notifier

import (
	"context"

	"github.com/favonia/ddnsp/internal/pp"
)

type notifiers []Notifier

var _ Notifier = notifiers{}

// NewComposed groups notifiers into one.
func NewComposed(ns ...Notifier) Notifier {
	list := make(notifiers, 0, len(ns))
	for _, n := range ns {
		if n == nil {
			continue
		}
		if group, composed := n.(notifiers); composed {
			list = append(list, group...)
		} else {
			list = append(list, n)
		}
	}
	return list
}

// IsEmpty tells whether n sends nothing.
func IsEmpty(n Notifier) bool {
	list, composed := n.(notifiers)
	return n == nil || (composed && len(list) == 0)
}

// Describe calls [Notifier.Describe] for each notifier in the group.
func (ns notifiers) Describe(yield func(service, params string) bool) {
	for _, n := range ns {
		stopped := false
		n.Describe(func(service, params string) bool {
			if !yield(service, params) {
				stopped = true
				return false
			}
			return true
		})
		if stopped {
			return
		}
	}
}

// Send calls [Notifier.Send] for each notifier in the group.
func (ns notifiers) Send(ctx context.Context, ppfmt pp.PP, msg Message) bool {
	ok := true
	for _, n := range ns {
		ok = n.Send(ctx, ppfmt, msg) && ok
	}
	return ok
}
