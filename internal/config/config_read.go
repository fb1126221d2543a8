package config

import (
	"strings"

	"github.com/favonia/ddnsp/internal/pp"
	"github.com/favonia/ddnsp/internal/store"
)

// ReadEnv calls the relevant readers to read all relevant environment variables except
// - timezone (TZ)
// - privileges-related ones (PGID and PUID)
// - output-related ones (QUIET and EMOJI)
// One should subsequently call [Config.Normalize] to restore invariants across fields.
func (c *Config) ReadEnv(ppfmt pp.PP) bool {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiEnvVars, "Reading settings . . .")
		ppfmt = ppfmt.Indent()
	}

	storeKind := string(c.Store)
	if !ReadString(ppfmt, "LISTEN", &c.Listen) ||
		!ReadString(ppfmt, "TLS_CERT_FILE", &c.TLSCertFile) ||
		!ReadString(ppfmt, "TLS_KEY_FILE", &c.TLSKeyFile) ||
		!ReadBool(ppfmt, "METRICS", &c.Metrics) ||
		!ReadString(ppfmt, "STORE", &storeKind) ||
		!ReadString(ppfmt, "DATABASE", &c.Database) ||
		!ReadString(ppfmt, "DNS_BACKEND", &c.Backend) ||
		!ReadDomain(ppfmt, "DNS_DOMAIN", &c.Domain) ||
		!ReadSubdomain(ppfmt, "DNS_SUBDOMAIN", &c.Subdomain) ||
		!ReadTTL(ppfmt, "DNS_TTL", &c.TTL) ||
		!ReadNonnegDuration(ppfmt, "UPDATE_TIMEOUT", &c.UpdateTimeout) ||
		!ReadPositiveInt(ppfmt, "HOSTNAME_MAX_LENGTH", &c.Limits.HostnameMaxLength) ||
		!ReadPositiveInt(ppfmt, "USERNAME_MAX_LENGTH", &c.Limits.UsernameMaxLength) ||
		!ReadPositiveInt(ppfmt, "PASSWORD_MIN_LENGTH", &c.Limits.PasswordMinLength) ||
		!ReadPositiveInt(ppfmt, "PASSWORD_MAX_LENGTH", &c.Limits.PasswordMaxLength) ||
		!ReadUint32(ppfmt, "ARGON2_TIME_COST", &c.Argon2.Time) ||
		!ReadUint32(ppfmt, "ARGON2_MEMORY_COST", &c.Argon2.Memory) ||
		!ReadUint8(ppfmt, "ARGON2_PARALLELISM", &c.Argon2.Parallelism) ||
		!ReadUint32(ppfmt, "ARGON2_HASH_LEN", &c.Argon2.HashLength) ||
		!ReadUint32(ppfmt, "ARGON2_SALT_LEN", &c.Argon2.SaltLength) ||
		!ReadAndAppendHealthchecksURL(ppfmt, "HEALTHCHECKS", &c.Monitors) ||
		!ReadAndAppendUptimeKumaURL(ppfmt, "UPTIMEKUMA", &c.Monitors) ||
		!ReadCron(ppfmt, "HEARTBEAT_CRON", &c.HeartbeatCron) ||
		!ReadAndAppendShoutrrrURLs(ppfmt, "SHOUTRRR", &c.Notifiers) {
		return false
	}
	c.Store = store.Kind(strings.ToLower(storeKind))

	c.Backend = strings.ToLower(c.Backend)
	if c.Backend != "" && !ReadNamespace(ppfmt, c.Backend, &c.Settings) {
		return false
	}

	return true
}

// Normalize checks the invariants across fields.
// When any error is reported, the original configuration remain unchanged.
func (c *Config) Normalize(ppfmt pp.PP) bool {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiEnvVars, "Checking settings . . .")
		ppfmt = ppfmt.Indent()
	}

	if c.Backend == "" {
		ppfmt.Noticef(pp.EmojiUserError, "DNS_BACKEND is not set")
		return false
	}

	if c.Domain == "" {
		ppfmt.Noticef(pp.EmojiUserError, "DNS_DOMAIN is not set")
		return false
	}

	switch c.Store {
	case store.KindSQLite, store.KindJSON:
	default:
		ppfmt.Noticef(pp.EmojiUserError, "STORE (%q) should be %q or %q", c.Store, store.KindSQLite, store.KindJSON)
		return false
	}

	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		ppfmt.Noticef(pp.EmojiUserError, "TLS_CERT_FILE and TLS_KEY_FILE should be set together")
		return false
	}

	if c.UpdateTimeout == 0 {
		ppfmt.Noticef(pp.EmojiUserError, "UPDATE_TIMEOUT=0 would make every update fail")
		return false
	}

	if err := c.Limits.Check(); err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "The length limits are inconsistent: %v", err)
		return false
	}

	if err := c.Argon2.Check(); err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "The Argon2 parameters are invalid: %v", err)
		return false
	}

	if c.HeartbeatCron != nil && len(c.Monitors) == 0 {
		ppfmt.Infof(pp.EmojiMute, "HEARTBEAT_CRON is ignored because neither HEALTHCHECKS nor UPTIMEKUMA is set")
		c.HeartbeatCron = nil
	}

	return true
}
