// Package store persists the binding between host names, credentials, and addresses.
package store

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"time"

	"github.com/spf13/afero"

	"github.com/favonia/ddnsp/internal/pp"
)

//go:generate mockgen -destination=../mocks/mock_store.go -package=mocks . Store

// HostRecord is the persisted state of one registered host.
type HostRecord struct {
	Hostname     string     `json:"hostname"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"password"`
	IP           netip.Addr `json:"ip"`
	CreatedAt    time.Time  `json:"created"`
	ChangedAt    time.Time  `json:"changed"`
}

var (
	// ErrExists means a record with the same host name already exists.
	ErrExists = errors.New("host already registered")

	// ErrNotFound means no record has the host name.
	ErrNotFound = errors.New("host not registered")
)

// Store keeps one [HostRecord] per host name. Implementations are safe for concurrent use.
type Store interface {
	// Get returns the record of the host. The boolean is false when there is none.
	Get(ctx context.Context, hostname string) (HostRecord, bool, error)

	// Create adds a new record, or fails with [ErrExists].
	Create(ctx context.Context, record HostRecord) error

	// UpdateIP sets the address and the change time of an existing record.
	UpdateIP(ctx context.Context, hostname string, ip netip.Addr, changedAt time.Time) error

	// Touch sets only the change time of an existing record.
	Touch(ctx context.Context, hostname string, changedAt time.Time) error

	// UpdatePasswordHash replaces the password hash of an existing record.
	UpdatePasswordHash(ctx context.Context, hostname string, hash string) error

	// Close releases the resources.
	Close() error
}

// Kind is the name of a storage implementation.
type Kind string

const (
	// KindSQLite stores records in an SQLite database.
	KindSQLite Kind = "sqlite"

	// KindJSON stores records in a JSON file.
	KindJSON Kind = "json"
)

// Open opens the store of the given kind at path, creating it when missing.
func Open(ctx context.Context, ppfmt pp.PP, kind Kind, path string) (Store, bool) {
	var (
		s   Store
		err error
	)

	switch kind {
	case KindSQLite:
		s, err = OpenSQLite(ctx, path)
	case KindJSON:
		s, err = OpenJSON(afero.NewOsFs(), path)
	default:
		ppfmt.Noticef(pp.EmojiUserError, "Unknown storage %q; valid ones are %q and %q", kind, KindSQLite, KindJSON)
		return nil, false
	}

	if err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to open the %s store at %q: %v", kind, path, err)
		return nil, false
	}

	ppfmt.Infof(pp.EmojiDatabase, "Opened the %s store at %q", kind, path)
	return s, true
}

func notFound(hostname string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, hostname)
}
