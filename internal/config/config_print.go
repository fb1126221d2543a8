package config

import (
	"fmt"
	"time"

	"github.com/favonia/ddnsp/internal/cron"
	"github.com/favonia/ddnsp/internal/monitor"
	"github.com/favonia/ddnsp/internal/notifier"
	"github.com/favonia/ddnsp/internal/pp"
)

const itemTitleWidth = 24

func describeOptional(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// Print prints the Config on the screen.
func (c *Config) Print(ppfmt pp.PP) {
	if !ppfmt.IsShowing(pp.Info) {
		return
	}

	ppfmt.Infof(pp.EmojiEnvVars, "Current settings:")
	ppfmt = ppfmt.Indent()
	inner := ppfmt.Indent()

	section := func(title string) { ppfmt.Infof(pp.EmojiConfig, title) }
	item := func(title string, format string, values ...any) {
		inner.Infof(pp.EmojiBullet, "%-*s %s", itemTitleWidth, title, fmt.Sprintf(format, values...))
	}

	section("Server:")
	item("Listening address:", "%s", c.Listen)
	item("TLS?", "%t", c.TLSCertFile != "" && c.TLSKeyFile != "")
	item("Metrics?", "%t", c.Metrics)

	section("Host store:")
	item("Kind:", "%s", c.Store)
	item("Location:", "%s", c.Database)

	section("DNS records:")
	item("Backend:", "%s", c.Backend)
	item("Domain:", "%s", c.Domain.Describe())
	item("Subdomain:", "%s", describeOptional(c.Subdomain))
	item("TTL:", "%s", c.TTL.Describe())
	item("Update timeout:", "%v", c.UpdateTimeout)

	section("Requests:")
	item("Host name length:", "at most %d", c.Limits.HostnameMaxLength)
	item("Username length:", "at most %d", c.Limits.UsernameMaxLength)
	item("Password length:", "%d to %d", c.Limits.PasswordMinLength, c.Limits.PasswordMaxLength)

	section("Password hashing (Argon2id):")
	item("Time cost:", "%d", c.Argon2.Time)
	item("Memory cost:", "%d KiB", c.Argon2.Memory)
	item("Parallelism:", "%d", c.Argon2.Parallelism)
	item("Hash and salt lengths:", "%d and %d bytes", c.Argon2.HashLength, c.Argon2.SaltLength)

	if len(c.Monitors) > 0 {
		section("Monitors:")
		monitor.NewComposed(c.Monitors...).Describe(func(service, params string) bool {
			item(service+":", "%s", params)
			return true
		})
		item("Timezone:", "%s", cron.DescribeLocation(time.Local))
		item("Heartbeat:", "%s", cron.DescribeSchedule(c.HeartbeatCron))
	}

	if len(c.Notifiers) > 0 {
		section("Notifiers (via shoutrrr):")
		notifier.NewComposed(c.Notifiers...).Describe(func(service, params string) bool {
			item(service+":", "%s", params)
			return true
		})
	}
}
