// Package signal implements the handling of signals.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/favonia/ddnsp/internal/pp"
)

// Handle encapsulates a channel for masked signals.
type Handle struct {
	channel chan os.Signal
}

// Signals contains the signals to mask and catch.
//
//nolint:gochecknoglobals
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// Setup masks signals in [Signals] and return the handle.
func Setup() Handle {
	chanSignal := make(chan os.Signal, len(Signals))
	signal.Notify(chanSignal, Signals...)

	return Handle{channel: chanSignal}
}

// TearDown undoes what Setup does.
func (h Handle) TearDown() {
	signal.Stop(h.channel)
}

// Wait blocks until a signal in [Signals] arrives or ctx is done.
// It returns true when it was woken up by a signal.
func (h Handle) Wait(ctx context.Context, ppfmt pp.PP) bool {
	select {
	case sig := <-h.channel:
		ppfmt.Noticef(pp.EmojiSignal, "Caught signal: %v", sig)
		return true
	case <-ctx.Done():
		return false
	}
}
