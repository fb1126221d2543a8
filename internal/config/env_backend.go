package config

import (
	"os"
	"strings"

	"github.com/favonia/ddnsp/internal/backend"
	"github.com/favonia/ddnsp/internal/pp"
)

// NamespacePrefix returns the prefix of the environment variables configuring the backend id.
func NamespacePrefix(id string) string {
	return "DNS_" + strings.ToUpper(id) + "_"
}

// ReadNamespace collects the environment variables of the backend id, with the prefix removed.
func ReadNamespace(ppfmt pp.PP, id string, field *backend.Settings) bool {
	prefix := NamespacePrefix(id)

	values := map[string]string{}
	for _, kv := range os.Environ() {
		key, val, found := strings.Cut(kv, "=")
		if !found || !strings.HasPrefix(key, prefix) {
			continue
		}
		if val = strings.TrimSpace(val); val != "" {
			values[strings.TrimPrefix(key, prefix)] = val
		}
	}

	if len(values) == 0 {
		ppfmt.Infof(pp.EmojiBullet, "No variables found under %s*", prefix)
	}

	*field = backend.NewSettings(prefix, values)
	return true
}
