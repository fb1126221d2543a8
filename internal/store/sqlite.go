package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/netip"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const schema = `
CREATE TABLE IF NOT EXISTS host (
	hostname TEXT PRIMARY KEY NOT NULL,
	username TEXT NOT NULL,
	password TEXT NOT NULL,
	ip       TEXT NOT NULL,
	created  TEXT NOT NULL,
	changed  TEXT NOT NULL
)`

// SQLite stores records in the table "host" of an SQLite database.
type SQLite struct {
	db *sql.DB
}

var _ Store = SQLite{} //nolint:exhaustruct

// OpenSQLite opens (or creates) the database at path and makes sure the table exists.
func OpenSQLite(ctx context.Context, path string) (SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return SQLite{}, fmt.Errorf("opening %s: %w", path, err)
	}

	// SQLite allows only one writer at a time.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return SQLite{}, fmt.Errorf("creating the table: %w", err)
	}

	return SQLite{db: db}, nil
}

func formatTime(t time.Time) string { return t.UTC().Format(time.RFC3339Nano) }

// Get returns the record of the host.
func (s SQLite) Get(ctx context.Context, hostname string) (HostRecord, bool, error) {
	var (
		r                HostRecord
		ip               string
		created, changed string
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT hostname, username, password, ip, created, changed FROM host WHERE hostname = ?`,
		hostname,
	).Scan(&r.Hostname, &r.Username, &r.PasswordHash, &ip, &created, &changed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return HostRecord{}, false, nil
	case err != nil:
		return HostRecord{}, false, fmt.Errorf("reading host %q: %w", hostname, err)
	}

	if r.IP, err = netip.ParseAddr(ip); err != nil {
		return HostRecord{}, false, fmt.Errorf("parsing the address of host %q: %w", hostname, err)
	}
	if r.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return HostRecord{}, false, fmt.Errorf("parsing the creation time of host %q: %w", hostname, err)
	}
	if r.ChangedAt, err = time.Parse(time.RFC3339Nano, changed); err != nil {
		return HostRecord{}, false, fmt.Errorf("parsing the change time of host %q: %w", hostname, err)
	}

	return r, true, nil
}

// Create adds a new record.
func (s SQLite) Create(ctx context.Context, r HostRecord) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO host (hostname, username, password, ip, created, changed) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(hostname) DO NOTHING`,
		r.Hostname, r.Username, r.PasswordHash, r.IP.String(), formatTime(r.CreatedAt), formatTime(r.ChangedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting host %q: %w", r.Hostname, err)
	}

	n, err := res.RowsAffected()
	switch {
	case err != nil:
		return fmt.Errorf("inserting host %q: %w", r.Hostname, err)
	case n == 0:
		return fmt.Errorf("%w: %q", ErrExists, r.Hostname)
	default:
		return nil
	}
}

func (s SQLite) update(ctx context.Context, hostname string, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating host %q: %w", hostname, err)
	}

	n, err := res.RowsAffected()
	switch {
	case err != nil:
		return fmt.Errorf("updating host %q: %w", hostname, err)
	case n == 0:
		return notFound(hostname)
	default:
		return nil
	}
}

// UpdateIP sets the address and the change time.
func (s SQLite) UpdateIP(ctx context.Context, hostname string, ip netip.Addr, changedAt time.Time) error {
	return s.update(ctx, hostname,
		`UPDATE host SET ip = ?, changed = ? WHERE hostname = ?`,
		ip.String(), formatTime(changedAt), hostname)
}

// Touch sets the change time.
func (s SQLite) Touch(ctx context.Context, hostname string, changedAt time.Time) error {
	return s.update(ctx, hostname,
		`UPDATE host SET changed = ? WHERE hostname = ?`,
		formatTime(changedAt), hostname)
}

// UpdatePasswordHash replaces the password hash.
func (s SQLite) UpdatePasswordHash(ctx context.Context, hostname string, hash string) error {
	return s.update(ctx, hostname,
		`UPDATE host SET password = ? WHERE hostname = ?`,
		hash, hostname)
}

// Close closes the database.
func (s SQLite) Close() error {
	return s.db.Close()
}
