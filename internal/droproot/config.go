package droproot

import (
	"syscall"

	"github.com/favonia/ddnsp/internal/config"
	"github.com/favonia/ddnsp/internal/pp"
)

// fallbackID is used when the server was started with root as both its effective and real ID.
const fallbackID = 1000

// defaultID returns the first non-root ID, or [fallbackID].
func defaultID(ids ...int) int {
	for _, id := range ids {
		if id != 0 {
			return id
		}
	}
	return fallbackID
}

// readIDs reads PUID and PGID. The defaults are the IDs the server was started with,
// preferring the effective ones.
func readIDs(ppfmt pp.PP) (int, int, bool) {
	uid := defaultID(syscall.Geteuid(), syscall.Getuid())
	gid := defaultID(syscall.Getegid(), syscall.Getgid())

	if !config.ReadLinuxID(ppfmt, "PUID", &uid) || !config.ReadLinuxID(ppfmt, "PGID", &gid) {
		return 0, 0, false
	}

	return uid, gid, true
}
