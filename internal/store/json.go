package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/netip"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
)

// jsonFile is the on-disk envelope of the JSON store.
type jsonFile struct {
	Hosts []HostRecord `json:"hosts"`
}

// JSON keeps all records in memory and rewrites the whole file atomically after each change.
type JSON struct {
	mu    sync.Mutex
	fs    afero.Fs
	path  string
	hosts map[string]HostRecord
}

var _ Store = (*JSON)(nil)

// OpenJSON loads the JSON store at path, or creates an empty one.
func OpenJSON(fsys afero.Fs, path string) (*JSON, error) {
	s := &JSON{
		mu:    sync.Mutex{},
		fs:    fsys,
		path:  path,
		hosts: map[string]HostRecord{},
	}

	raw, err := afero.ReadFile(fsys, path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := s.persistLocked(); err != nil {
			return nil, err
		}
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var data jsonFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for _, r := range data.Hosts {
		if _, dup := s.hosts[r.Hostname]; dup {
			return nil, fmt.Errorf("parsing %s: %w: %q", path, ErrExists, r.Hostname)
		}
		s.hosts[r.Hostname] = r
	}

	return s, nil
}

// persistLocked writes a snapshot to a temporary file and renames it over the store.
func (s *JSON) persistLocked() error {
	hosts := make([]HostRecord, 0, len(s.hosts))
	for _, r := range s.hosts {
		hosts = append(hosts, r)
	}
	slices.SortFunc(hosts, func(a, b HostRecord) int { return strings.Compare(a.Hostname, b.Hostname) })

	raw, err := json.MarshalIndent(jsonFile{Hosts: hosts}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling store: %w", err)
	}

	tmp, err := afero.TempFile(s.fs, filepath.Dir(s.path), "ddnsp-*.json.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := s.fs.Rename(tmpName, s.path); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("renaming temp file to %s: %w", s.path, err)
	}

	return nil
}

// mutate applies f to the record and persists; the change is rolled back if persisting fails.
func (s *JSON) mutate(hostname string, f func(*HostRecord)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.hosts[hostname]
	if !ok {
		return notFound(hostname)
	}

	updated := old
	f(&updated)
	s.hosts[hostname] = updated

	if err := s.persistLocked(); err != nil {
		s.hosts[hostname] = old
		return err
	}
	return nil
}

// Get returns the record of the host.
func (s *JSON) Get(_ context.Context, hostname string) (HostRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.hosts[hostname]
	return r, ok, nil
}

// Create adds a new record.
func (s *JSON) Create(_ context.Context, record HostRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.hosts[record.Hostname]; ok {
		return fmt.Errorf("%w: %q", ErrExists, record.Hostname)
	}

	s.hosts[record.Hostname] = record
	if err := s.persistLocked(); err != nil {
		delete(s.hosts, record.Hostname)
		return err
	}
	return nil
}

// UpdateIP sets the address and the change time.
func (s *JSON) UpdateIP(_ context.Context, hostname string, ip netip.Addr, changedAt time.Time) error {
	return s.mutate(hostname, func(r *HostRecord) {
		r.IP = ip
		r.ChangedAt = changedAt
	})
}

// Touch sets the change time.
func (s *JSON) Touch(_ context.Context, hostname string, changedAt time.Time) error {
	return s.mutate(hostname, func(r *HostRecord) { r.ChangedAt = changedAt })
}

// UpdatePasswordHash replaces the password hash.
func (s *JSON) UpdatePasswordHash(_ context.Context, hostname string, hash string) error {
	return s.mutate(hostname, func(r *HostRecord) { r.PasswordHash = hash })
}

// Close does nothing; every change is already on disk.
func (s *JSON) Close() error { return nil }
