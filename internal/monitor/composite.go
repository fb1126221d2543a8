package monitor

import (
	"context"

	"github.com/favonia/ddnsp/internal/pp"
)

type monitors []BasicMonitor

var _ Monitor = monitors{}

// NewComposed groups monitors into one. Basic monitors skip [Monitor.Start] and [Monitor.Exit].
func NewComposed(mons ...BasicMonitor) Monitor {
	ms := make(monitors, 0, len(mons))
	for _, m := range mons {
		if m == nil {
			continue
		}
		if list, composed := m.(monitors); composed {
			ms = append(ms, list...)
		} else {
			ms = append(ms, m)
		}
	}
	return ms
}

// IsEmpty tells whether m is a group without members.
func IsEmpty(m Monitor) bool {
	ms, composed := m.(monitors)
	return m == nil || (composed && len(ms) == 0)
}

// Describe calls [BasicMonitor.Describe] for each monitor in the group.
func (ms monitors) Describe(yield func(service, params string) bool) {
	for _, m := range ms {
		stopped := false
		m.Describe(func(service, params string) bool {
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

// Ping calls [BasicMonitor.Ping] for each monitor in the group.
func (ms monitors) Ping(ctx context.Context, ppfmt pp.PP, msg Message) bool {
	ok := true
	for _, m := range ms {
		ok = m.Ping(ctx, ppfmt, msg) && ok
	}
	return ok
}

// Start calls [Monitor.Start] for each full monitor in the group.
func (ms monitors) Start(ctx context.Context, ppfmt pp.PP, message string) bool {
	ok := true
	for _, m := range ms {
		if em, extended := m.(Monitor); extended {
			ok = em.Start(ctx, ppfmt, message) && ok
		}
	}
	return ok
}

// Exit calls [Monitor.Exit] for each full monitor in the group.
func (ms monitors) Exit(ctx context.Context, ppfmt pp.PP, code int, message string) bool {
	ok := true
	for _, m := range ms {
		if em, extended := m.(Monitor); extended {
			ok = em.Exit(ctx, ppfmt, code, message) && ok
		}
	}
	return ok
}
