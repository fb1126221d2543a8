//go:build linux

package droproot

import (
	"slices"
	"syscall"

	"github.com/favonia/ddnsp/internal/pp"
)

// strayGroups lists the effective and supplementary group IDs other than gid.
func strayGroups(gid int) ([]int, error) {
	groups, err := syscall.Getgroups()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	stray := slices.DeleteFunc(append(groups, syscall.Getegid()), func(g int) bool { return g == gid })
	slices.Sort(stray)
	return slices.Compact(stray), nil
}

// checkIDs reports what the system calls in [DropPrivileges] could not change.
func checkIDs(ppfmt pp.PP, uid, gid int) {
	if euid := syscall.Geteuid(); euid != uid {
		ppfmt.Noticef(pp.EmojiUserWarning, "The server still runs as user %d instead of %d", euid, uid)
	}

	switch stray, err := strayGroups(gid); {
	case err != nil:
		ppfmt.Noticef(pp.EmojiImpossible, "Failed to get supplementary group IDs: %v", err)
	case len(stray) > 0:
		ppfmt.Noticef(pp.EmojiUserWarning, "The server still belongs to groups %v besides %d", stray, gid)
	}
}
