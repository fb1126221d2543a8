// Package config reads and parses configurations.
package config

import (
	"time"

	"github.com/favonia/ddnsp/internal/backend"
	"github.com/favonia/ddnsp/internal/cron"
	"github.com/favonia/ddnsp/internal/domain"
	"github.com/favonia/ddnsp/internal/hasher"
	"github.com/favonia/ddnsp/internal/monitor"
	"github.com/favonia/ddnsp/internal/notifier"
	"github.com/favonia/ddnsp/internal/server"
	"github.com/favonia/ddnsp/internal/store"
	"github.com/favonia/ddnsp/internal/updater"
	"github.com/favonia/ddnsp/internal/validator"
)

// Config holds the configuration of the server.
type Config struct {
	Listen        string
	TLSCertFile   string
	TLSKeyFile    string
	Metrics       bool
	Store         store.Kind
	Database      string
	Backend       string
	Settings      backend.Settings
	Domain        domain.FQDN
	Subdomain     string
	TTL           backend.TTL
	UpdateTimeout time.Duration
	Limits        validator.Limits
	Argon2        hasher.Params
	Monitors      []monitor.BasicMonitor
	HeartbeatCron cron.Schedule
	Notifiers     []notifier.Notifier
}

// DefaultDatabase is the default path of the host store.
const DefaultDatabase = "ddnsp.db"

// Default gives the default configuration.
func Default() *Config {
	return &Config{
		Listen:        server.DefaultListen,
		TLSCertFile:   "",
		TLSKeyFile:    "",
		Metrics:       true,
		Store:         store.KindSQLite,
		Database:      DefaultDatabase,
		Backend:       "",
		Settings:      backend.NewSettings("", nil),
		Domain:        "",
		Subdomain:     "",
		TTL:           backend.TTLDefault,
		UpdateTimeout: updater.DefaultUpdateTimeout,
		Limits:        validator.DefaultLimits(),
		Argon2:        hasher.DefaultParams(),
		Monitors:      nil,
		HeartbeatCron: cron.MustNew("@every 5m"),
		Notifiers:     nil,
	}
}

// ServerOptions returns the options of the HTTP front end, without metrics.
func (c *Config) ServerOptions() server.Options {
	return server.Options{
		Listen:   c.Listen,
		CertFile: c.TLSCertFile,
		KeyFile:  c.TLSKeyFile,
		Metrics:  nil,
	}
}

// UpdaterOptions returns the options of the updater, without metrics.
func (c *Config) UpdaterOptions() updater.Options {
	return updater.Options{
		Zone:          c.Domain,
		Subdomain:     c.Subdomain,
		TTL:           c.TTL,
		Limits:        c.Limits,
		UpdateTimeout: c.UpdateTimeout,
		Metrics:       nil,
		Notifier:      notifier.NewComposed(c.Notifiers...),
		Now:           nil,
	}
}
