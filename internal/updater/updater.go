// Package updater decides the answer to each DynDNS2 update request
// and keeps the host store and the DNS provider in step.
package updater

import (
	"context"
	"errors"
	"net/netip"
	"time"

	"github.com/favonia/ddnsp/internal/backend"
	"github.com/favonia/ddnsp/internal/domain"
	"github.com/favonia/ddnsp/internal/hasher"
	"github.com/favonia/ddnsp/internal/metrics"
	"github.com/favonia/ddnsp/internal/notifier"
	"github.com/favonia/ddnsp/internal/pp"
	"github.com/favonia/ddnsp/internal/response"
	"github.com/favonia/ddnsp/internal/store"
	"github.com/favonia/ddnsp/internal/validator"
)

// DefaultUpdateTimeout bounds one call to the DNS backend.
const DefaultUpdateTimeout = 30 * time.Second

// Options are the settings of an [Updater] besides its collaborators.
type Options struct {
	Zone          domain.FQDN
	Subdomain     string
	TTL           backend.TTL
	Limits        validator.Limits
	UpdateTimeout time.Duration
	Metrics       *metrics.Metrics  // may be nil
	Notifier      notifier.Notifier // may be nil
	Now           func() time.Time // defaults to time.Now
}

// Updater serves update requests. It is safe for concurrent use.
type Updater struct {
	store   store.Store
	hasher  hasher.Hasher
	backend backend.Backend
	opts    Options
	locks   *keyedLock
}

// New creates an updater publishing addresses through b.
func New(s store.Store, h hasher.Hasher, b backend.Backend, opts Options) *Updater {
	if opts.UpdateTimeout <= 0 {
		opts.UpdateTimeout = DefaultUpdateTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Updater{store: s, hasher: h, backend: b, opts: opts, locks: newKeyedLock()}
}

// Update answers one request. Requests for the same host name are serialized.
func (u *Updater) Update(ctx context.Context, ppfmt pp.PP, req validator.Request) response.Response {
	resp := u.update(ctx, ppfmt, req)
	u.opts.Metrics.ObserveUpdate(resp.Code)
	return resp
}

func (u *Updater) update(ctx context.Context, ppfmt pp.PP, req validator.Request) response.Response {
	v, code := validator.Validate(req, u.opts.Limits)
	if code != response.OK {
		ppfmt.Infof(pp.EmojiDenied, "Rejected a request for %q: %s", req.Hostname, code)
		return response.New(code)
	}

	// Once the backend may have been called, the store must record the outcome
	// even if the client has gone away.
	ctx = context.WithoutCancel(ctx)

	unlock := u.locks.lock(v.Hostname)
	defer unlock()

	record, found, err := u.store.Get(ctx, v.Hostname)
	if err != nil {
		u.storeFailed(ppfmt, "look up", v.Hostname, err)
		return response.New(response.DNSErr)
	}

	if !found {
		return u.register(ctx, ppfmt, v)
	}

	if ok, code := u.authenticate(ppfmt, record, v); !ok {
		return response.New(code)
	}
	u.rehash(ctx, ppfmt, record, v.Password)

	now := u.opts.Now()

	if record.IP == v.IP {
		if err := u.store.Touch(ctx, v.Hostname, now); err != nil {
			u.storeFailed(ppfmt, "touch", v.Hostname, err)
			return response.New(response.DNSErr)
		}
		ppfmt.Infof(pp.EmojiAlreadyDone, "The address of %s is already %s", v.Hostname, v.IP)
		return response.NewWithIP(response.NoChange, v.IP)
	}

	if !u.publish(ctx, ppfmt, v.Hostname, v.IP) {
		return response.New(response.DNSErr)
	}

	if err := u.store.UpdateIP(ctx, v.Hostname, v.IP, now); err != nil {
		u.storeFailed(ppfmt, "save the new address of", v.Hostname, err)
		return response.New(response.DNSErr)
	}

	ppfmt.Noticef(pp.EmojiUpdateRecord, "Changed the address of %s from %s to %s", v.Hostname, record.IP, v.IP)
	u.notify(ctx, ppfmt, notifier.NewMessagef("Changed the address of %s from %s to %s.", v.Hostname, record.IP, v.IP))
	return response.NewWithIP(response.Good, v.IP)
}

// register publishes the address of a new host and only then stores it.
func (u *Updater) register(ctx context.Context, ppfmt pp.PP, v validator.Validated) response.Response {
	hash, err := u.hasher.Hash(v.Password)
	if err != nil {
		ppfmt.Noticef(pp.EmojiImpossible, "Failed to hash the password for %s: %v", v.Hostname, err)
		return response.New(response.DNSErr)
	}

	if !u.publish(ctx, ppfmt, v.Hostname, v.IP) {
		return response.New(response.DNSErr)
	}

	now := u.opts.Now()
	err = u.store.Create(ctx, store.HostRecord{
		Hostname:     v.Hostname,
		Username:     v.Username,
		PasswordHash: hash,
		IP:           v.IP,
		CreatedAt:    now,
		ChangedAt:    now,
	})
	switch {
	case errors.Is(err, store.ErrExists):
		ppfmt.Noticef(pp.EmojiWarning, "%s was registered by another request at the same time", v.Hostname)
		return response.New(response.DNSErr)
	case err != nil:
		u.storeFailed(ppfmt, "register", v.Hostname, err)
		return response.New(response.DNSErr)
	}

	ppfmt.Noticef(pp.EmojiCreateRecord, "Registered %s for user %q with address %s", v.Hostname, v.Username, v.IP)
	u.notify(ctx, ppfmt, notifier.NewMessagef("Registered %s with address %s.", v.Hostname, v.IP))
	return response.NewWithIP(response.Good, v.IP)
}

func (u *Updater) authenticate(ppfmt pp.PP, record store.HostRecord, v validator.Validated) (bool, response.Code) {
	if record.Username != v.Username {
		ppfmt.Noticef(pp.EmojiDenied, "Rejected a request for %s: user %q does not own it", v.Hostname, v.Username)
		return false, response.BadAuth
	}

	ok, err := u.hasher.Verify(record.PasswordHash, v.Password)
	switch {
	case err != nil:
		ppfmt.Noticef(pp.EmojiError, "Failed to check the password for %s: %v", v.Hostname, err)
		return false, response.DNSErr
	case !ok:
		ppfmt.Noticef(pp.EmojiDenied, "Rejected a request for %s: wrong password", v.Hostname)
		return false, response.BadAuth
	}

	return true, response.OK
}

// rehash upgrades a hash made with outdated parameters. Failures only get logged.
func (u *Updater) rehash(ctx context.Context, ppfmt pp.PP, record store.HostRecord, password string) {
	if !u.hasher.NeedsRehash(record.PasswordHash) {
		return
	}

	hash, err := u.hasher.Hash(password)
	if err == nil {
		err = u.store.UpdatePasswordHash(ctx, record.Hostname, hash)
	}
	if err != nil {
		ppfmt.Noticef(pp.EmojiWarning, "Failed to upgrade the password hash of %s: %v", record.Hostname, err)
		ppfmt.NoticeOncef(pp.MessageRehashFailures, pp.EmojiHint,
			"The old hash still works; the upgrade will be retried on the next successful request")
		return
	}

	ppfmt.Infof(pp.EmojiRehash, "Upgraded the password hash of %s", record.Hostname)
}

// publish calls the backend, bounded by the update timeout.
func (u *Updater) publish(ctx context.Context, ppfmt pp.PP, hostname string, ip netip.Addr) bool {
	ctx, cancel := context.WithTimeout(ctx, u.opts.UpdateTimeout)
	defer cancel()

	name := domain.RecordName(hostname, u.opts.Subdomain)
	id := u.backend.ID()

	start := time.Now()
	err := u.backend.UpdateIP(ctx, ppfmt, u.opts.Zone, name, ip, u.opts.TTL)
	elapsed := time.Since(start)

	var requestErr *backend.RequestError
	switch {
	case err == nil:
		u.opts.Metrics.ObserveBackend(id, metrics.OutcomeSuccess, elapsed)
		return true

	case errors.As(err, &requestErr):
		u.opts.Metrics.ObserveBackend(id, metrics.OutcomeRejected, elapsed)
		ppfmt.Noticef(pp.EmojiError, "The DNS backend %s refused to update %s: %v", id, u.opts.Zone.Join(name).Describe(), err)

	case errors.Is(err, context.DeadlineExceeded):
		u.opts.Metrics.ObserveBackend(id, metrics.OutcomeFailed, elapsed)
		ppfmt.Noticef(pp.EmojiError, "Timed out updating %s through the DNS backend %s", u.opts.Zone.Join(name).Describe(), id)
		ppfmt.NoticeOncef(pp.MessageUpdateTimeouts, pp.EmojiHint,
			"If your DNS provider is slow, consider increasing UPDATE_TIMEOUT (currently %v)", u.opts.UpdateTimeout)

	default:
		u.opts.Metrics.ObserveBackend(id, metrics.OutcomeFailed, elapsed)
		ppfmt.Noticef(pp.EmojiError, "Failed to update %s through the DNS backend %s: %v", u.opts.Zone.Join(name).Describe(), id, err)
	}

	return false
}

// notify runs after the store has committed; its failures do not change the answer.
func (u *Updater) notify(ctx context.Context, ppfmt pp.PP, msg notifier.Message) {
	if notifier.IsEmpty(u.opts.Notifier) {
		return
	}
	u.opts.Notifier.Send(ctx, ppfmt, msg)
}

func (u *Updater) storeFailed(ppfmt pp.PP, action, hostname string, err error) {
	ppfmt.Noticef(pp.EmojiError, "Failed to %s %s in the host store: %v", action, hostname, err)
	ppfmt.NoticeOncef(pp.MessageStoreFailures, pp.EmojiHint,
		"Clients receive %q while the host store fails and will retry later", response.DNSErr.String())
}
