//go:build linux && nocapdrop

package droproot

import (
	"github.com/favonia/ddnsp/internal/pp"
)

func raiseSetUID() {}
func raiseSetGID() {}

func dropCapabilities(ppfmt pp.PP) bool {
	ppfmt.Infof(pp.EmojiDisabled, "This build does not drop Linux capabilities")
	return true
}
