package cron

import (
	"fmt"
	"strings"
	"time"
)

// DescribeLocation names the time zone together with its current UTC offset.
func DescribeLocation(loc *time.Location) string {
	_, offset := time.Now().In(loc).Zone()

	sign := "+"
	if offset < 0 {
		sign = "−"
		offset = -offset
	}

	hours, rest := offset/3600, offset%3600
	minutes, seconds := rest/60, rest%60

	var b strings.Builder
	fmt.Fprintf(&b, "UTC%s%02d", sign, hours)
	switch {
	case seconds != 0:
		fmt.Fprintf(&b, ":%02d:%02d", minutes, seconds)
	case minutes != 0:
		fmt.Fprintf(&b, ":%02d", minutes)
	}

	return fmt.Sprintf("%s (currently %s)", loc.String(), b.String())
}
