package monitor

import (
	"context"
	"time"

	"github.com/favonia/ddnsp/internal/cron"
	"github.com/favonia/ddnsp/internal/pp"
)

// Heartbeat pings m with the result of status at every tick of s until ctx is done.
// A nil schedule disables it.
func Heartbeat(ctx context.Context, ppfmt pp.PP, m BasicMonitor, s cron.Schedule, status func() Message) {
	if s == nil {
		return
	}

	for ctx.Err() == nil {
		now := time.Now()
		next := cron.Next(s, now)
		if next.IsZero() {
			return
		}
		cron.PrintCountdown(ppfmt, "Sending the next heartbeat", now, next)

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		m.Ping(ctx, ppfmt, status())
	}
}
