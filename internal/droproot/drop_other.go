//go:build !linux

// Package droproot drops root privileges once the listening socket is bound.
package droproot

import (
	"github.com/favonia/ddnsp/internal/pp"
)

// DropPrivileges only reads PUID and PGID; switching users is supported on Linux.
func DropPrivileges(ppfmt pp.PP) bool {
	if _, _, ok := readIDs(ppfmt); !ok {
		return false
	}

	ppfmt.Infof(pp.EmojiDisabled, "Dropping privileges is only supported on Linux")
	return true
}
