package config

import (
	"github.com/favonia/ddnsp/internal/monitor"
	"github.com/favonia/ddnsp/internal/pp"
)

// ReadAndAppendHealthchecksURL reads the Healthchecks ping URL.
func ReadAndAppendHealthchecksURL(ppfmt pp.PP, key string, field *[]monitor.BasicMonitor) bool {
	val := Getenv(key)
	if val == "" {
		return true
	}

	h, ok := monitor.NewHealthchecks(ppfmt, val)
	if !ok {
		return false
	}

	*field = append(*field, h)
	return true
}

// ReadAndAppendUptimeKumaURL reads the Uptime Kuma push URL.
func ReadAndAppendUptimeKumaURL(ppfmt pp.PP, key string, field *[]monitor.BasicMonitor) bool {
	val := Getenv(key)
	if val == "" {
		return true
	}

	k, ok := monitor.NewUptimeKuma(ppfmt, val)
	if !ok {
		return false
	}

	*field = append(*field, k)
	return true
}
