// Package file reads secrets and data files through a replaceable file system.
package file

import (
	"bytes"

	"github.com/spf13/afero"

	"github.com/favonia/ddnsp/internal/pp"
)

// FS is the file system used by all file operations in this program.
var FS = afero.NewOsFs() //nolint:gochecknoglobals

// ReadString reads the file at path and trims the surrounding spaces.
// Files that every user can read get a one-time hint, since they usually hold credentials.
func ReadString(ppfmt pp.PP, path string) (string, bool) {
	info, err := FS.Stat(path)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to read %q: %v", path, err)
		return "", false
	}
	if info.IsDir() {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to read %q: it is a directory", path)
		return "", false
	}

	body, err := afero.ReadFile(FS, path)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to read %q: %v", path, err)
		return "", false
	}

	if info.Mode().Perm()&0o004 != 0 {
		ppfmt.NoticeOncef(pp.MessageLooseSecretFile, pp.EmojiHint,
			"%q is readable by every user; consider restricting it with chmod 600", path)
	}

	return string(bytes.TrimSpace(body)), true
}
