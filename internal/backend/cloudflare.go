package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/cloudflare/cloudflare-go"
	"github.com/patrickmn/go-cache"

	"github.com/favonia/ddnsp/internal/domain"
	"github.com/favonia/ddnsp/internal/ipnet"
	"github.com/favonia/ddnsp/internal/pp"
)

const (
	// CloudflareDefaultTimeout bounds each call to the Cloudflare API.
	CloudflareDefaultTimeout = 10 * time.Second
	// CloudflareDefaultCacheExpiration is how long a zone ID stays cached.
	CloudflareDefaultCacheExpiration = 6 * time.Hour

	// cloudflareTTLAuto asks Cloudflare to pick the TTL.
	cloudflareTTLAuto = 1
)

// ErrZoneNotFound means the account has no usable zone with the name.
var ErrZoneNotFound = errors.New("zone not found")

// Cloudflare keeps the records in a Cloudflare zone.
type Cloudflare struct {
	id      string
	api     *cloudflare.API
	proxied bool
	comment string
	zones   *cache.Cache // zone names to zone IDs
}

var _ Backend = (*Cloudflare)(nil)

// NewCloudflareClient creates a Cloudflare backend. An empty baseURL keeps the default API endpoint.
func NewCloudflareClient(id, token, baseURL string, timeout, cacheExpiration time.Duration,
	proxied bool, comment string,
) (*Cloudflare, error) {
	api, err := cloudflare.NewWithAPIToken(token,
		cloudflare.HTTPClient(&http.Client{Timeout: timeout}), //nolint:exhaustruct
		cloudflare.UsingRetryPolicy(0, 0, 0),
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	// set the base URL (mostly for testing)
	if baseURL != "" {
		api.BaseURL = baseURL
	}

	return &Cloudflare{
		id:      id,
		api:     api,
		proxied: proxied,
		comment: comment,
		zones:   cache.New(cacheExpiration, 2*cacheExpiration),
	}, nil
}

// NewCloudflare reads the settings TOKEN, BASE_URL, PROXIED, COMMENT, TIMEOUT, and CACHE_EXPIRATION.
func NewCloudflare(ppfmt pp.PP, id string, s Settings) (Backend, bool) {
	token, ok := s.Secret(ppfmt, "TOKEN")
	if !ok || !s.required(ppfmt, "TOKEN", token) {
		return nil, false
	}

	proxied, ok := s.Bool(ppfmt, "PROXIED", false)
	if !ok {
		return nil, false
	}

	timeout, ok := s.Duration(ppfmt, "TIMEOUT", CloudflareDefaultTimeout)
	if !ok {
		return nil, false
	}

	cacheExpiration, ok := s.Duration(ppfmt, "CACHE_EXPIRATION", CloudflareDefaultCacheExpiration)
	if !ok {
		return nil, false
	}

	c, err := NewCloudflareClient(id, token, s.String("BASE_URL", ""), timeout, cacheExpiration,
		proxied, s.String("COMMENT", ""))
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to prepare the Cloudflare authentication: %v", err)
		return nil, false
	}
	return c, true
}

// ID returns the registered identifier.
func (c *Cloudflare) ID() string { return c.id }

func hintTokenPermission(ppfmt pp.PP, err error) {
	var authentication *cloudflare.AuthenticationError
	var authorization *cloudflare.AuthorizationError
	if errors.As(err, &authentication) || errors.As(err, &authorization) {
		ppfmt.NoticeOncef(pp.MessageTokenPermission, pp.EmojiHint,
			"Double check your API token. "+
				`Make sure you granted the "Edit" permission of "Zone - DNS"`)
	}
}

// wrapCloudflareError turns the typed HTTP errors of cloudflare-go into a [RequestError].
// The library keeps the status code private, so it is recovered from the error type.
// A generic rejection is reported as 400.
func (c *Cloudflare) wrapCloudflareError(op string, err error) error {
	var (
		authorization  *cloudflare.AuthorizationError
		authentication *cloudflare.AuthenticationError
		notFound       *cloudflare.NotFoundError
		ratelimit      *cloudflare.RatelimitError
		request        *cloudflare.RequestError
	)

	var status int
	var messages []string
	switch {
	case errors.As(err, &authorization):
		status, messages = http.StatusUnauthorized, authorization.ErrorMessages()
	case errors.As(err, &authentication):
		status, messages = http.StatusForbidden, authentication.ErrorMessages()
	case errors.As(err, &notFound):
		status, messages = http.StatusNotFound, notFound.ErrorMessages()
	case errors.As(err, &ratelimit):
		status, messages = http.StatusTooManyRequests, ratelimit.ErrorMessages()
	case errors.As(err, &request):
		status, messages = http.StatusBadRequest, request.ErrorMessages()
	default:
		return &Error{Backend: c.id, Op: op, Err: err}
	}

	return &RequestError{Backend: c.id, StatusCode: status, Body: op + ": " + strings.Join(messages, "; ")}
}

// zoneID finds the ID of the zone, using the cache when possible.
func (c *Cloudflare) zoneID(ctx context.Context, ppfmt pp.PP, zone domain.FQDN) (string, error) {
	name := zone.DNSNameASCII()
	if id, found := c.zones.Get(name); found {
		return id.(string), nil //nolint:forcetypeassert
	}

	res, err := c.api.ListZonesContext(ctx, cloudflare.WithZoneFilters(name, "", ""))
	if err != nil {
		hintTokenPermission(ppfmt, err)
		return "", c.wrapCloudflareError("listing zones named "+name, err)
	}

	ids := make([]string, 0, len(res.Result))
	for _, z := range res.Result {
		switch z.Status {
		case "active":
			ids = append(ids, z.ID)
		case "deleted":
			ppfmt.Infof(pp.EmojiWarning, "DNS zone %s is %q in your Cloudflare account and thus skipped", name, z.Status)
		default:
			ppfmt.Noticef(pp.EmojiWarning,
				"DNS zone %s is %q in your Cloudflare account; updates might not take effect", name, z.Status)
			ids = append(ids, z.ID)
		}
	}

	switch len(ids) {
	case 0:
		return "", &Error{Backend: c.id, Op: "finding the zone " + name, Err: ErrZoneNotFound}
	case 1:
		c.zones.SetDefault(name, ids[0])
		return ids[0], nil
	default:
		return "", &Error{
			Backend: c.id,
			Op:      "finding the zone " + name,
			Err:     fmt.Errorf("found %d zones with the same name", len(ids)),
		}
	}
}

// UpdateIP keeps one record holding ip and deletes the others.
// When no record holds ip yet, the new record is created before the stale ones are deleted.
func (c *Cloudflare) UpdateIP(ctx context.Context, ppfmt pp.PP,
	zone domain.FQDN, name string, ip netip.Addr, ttl TTL,
) error {
	ip = ip.Unmap()
	recordType := ipnet.FromAddr(ip).RecordType()
	if recordType == "" {
		return &Error{Backend: c.id, Op: "choosing the record type", Err: fmt.Errorf("invalid address %v", ip)}
	}

	zoneID, err := c.zoneID(ctx, ppfmt, zone)
	if err != nil {
		return err
	}
	rc := cloudflare.ZoneIdentifier(zoneID)
	fqdn := recordName(zone, name)
	describe := zone.Join(name).Describe()

	records, _, err := c.api.ListDNSRecords(ctx, rc, cloudflare.ListDNSRecordsParams{ //nolint:exhaustruct
		Type: recordType,
		Name: fqdn,
	})
	if err != nil {
		// The zone might have been deleted and recreated under a new ID.
		c.zones.Delete(zone.DNSNameASCII())
		hintTokenPermission(ppfmt, err)
		return c.wrapCloudflareError("listing "+recordType+" records of "+fqdn, err)
	}

	kept := false
	stale := make([]cloudflare.DNSRecord, 0, len(records))
	for _, r := range records {
		if current, err := netip.ParseAddr(r.Content); !kept && err == nil && current.Unmap() == ip {
			kept = true
			continue
		}
		stale = append(stale, r)
	}

	if !kept {
		cfTTL := ttl.Int()
		if ttl == TTLDefault {
			cfTTL = cloudflareTTLAuto
		}
		proxied := c.proxied

		if _, err := c.api.CreateDNSRecord(ctx, rc, cloudflare.CreateDNSRecordParams{ //nolint:exhaustruct
			Type:    recordType,
			Name:    fqdn,
			Content: ip.String(),
			TTL:     cfTTL,
			Proxied: &proxied,
			Comment: c.comment,
		}); err != nil {
			return c.wrapCloudflareError("creating a "+recordType+" record of "+fqdn, err)
		}
		ppfmt.Infof(pp.EmojiCreateRecord, "Added a new %s record of %s pointing to %s", recordType, describe, ip.String())
	}

	for _, r := range stale {
		if err := c.api.DeleteDNSRecord(ctx, rc, r.ID); err != nil {
			return c.wrapCloudflareError("deleting the "+recordType+" record "+r.ID+" of "+fqdn, err)
		}
		ppfmt.Infof(pp.EmojiDeleteRecord, "Deleted a stale %s record of %s (ID: %s)", recordType, describe, r.ID)
	}

	return nil
}
