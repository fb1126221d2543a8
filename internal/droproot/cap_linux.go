//go:build linux && !nocapdrop

package droproot

import (
	"kernel.org/pub/linux/libs/security/libcap/cap"

	"github.com/favonia/ddnsp/internal/pp"
)

// raise tries to make val effective for the next system call.
// Whatever it gains is cleared by [dropCapabilities].
func raise(val cap.Value) {
	c, err := cap.GetPID(0)
	if err == nil && c.SetFlag(cap.Effective, true, val) == nil {
		_ = c.SetProc()
	}
}

func raiseSetUID() { raise(cap.SETUID) }
func raiseSetGID() { raise(cap.SETGID) }

// dropCapabilities clears all capabilities and warns about those that remain.
func dropCapabilities(ppfmt pp.PP) bool {
	_ = cap.NewSet().SetProc()

	left := cap.GetProc()
	switch diff, err := left.Cf(cap.NewSet()); {
	case err != nil:
		ppfmt.Noticef(pp.EmojiImpossible, "Failed to check Linux capabilities: %v", err)
	case diff != 0:
		ppfmt.Noticef(pp.EmojiWarning, "Some Linux capabilities could not be dropped: %v", left)
	}

	return true
}
