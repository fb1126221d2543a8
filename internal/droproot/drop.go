//go:build linux

// Package droproot drops root privileges once the listening socket is bound.
package droproot

import (
	"syscall"

	"github.com/favonia/ddnsp/internal/pp"
)

// DropPrivileges switches to PUID and PGID and then clears all Linux capabilities.
// Sockets bound earlier stay usable. Failed system calls are reported but not fatal;
// only invalid PUID or PGID values make it return false.
func DropPrivileges(ppfmt pp.PP) bool {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiPrivileges, "Dropping privileges . . .")
		ppfmt = ppfmt.Indent()
	}

	uid, gid, ok := readIDs(ppfmt)
	if !ok {
		return false
	}

	// Groups go first: once the user ID changes, SETGID is gone.
	// Setgroups and Setresgid are called directly because cap.SetGroups
	// gives up when SETGID cannot be raised, even where the plain calls work.
	raiseSetGID()
	_ = syscall.Setgroups([]int{})
	_ = syscall.Setresgid(gid, gid, gid)

	raiseSetUID()
	_ = syscall.Setresuid(uid, uid, uid)

	checkIDs(ppfmt, uid, gid)
	return dropCapabilities(ppfmt)
}
