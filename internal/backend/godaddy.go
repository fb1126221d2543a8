package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/favonia/ddnsp/internal/domain"
	"github.com/favonia/ddnsp/internal/ipnet"
	"github.com/favonia/ddnsp/internal/pp"
)

const (
	// GoDaddyDefaultHost is the production API endpoint.
	GoDaddyDefaultHost = "https://api.godaddy.com"
	// GoDaddyDefaultPath is the prefix of the domain API.
	GoDaddyDefaultPath = "/v1/domains"
	// GoDaddyDefaultTimeout bounds each HTTP attempt.
	GoDaddyDefaultTimeout = 10 * time.Second

	// maxResponseSize bounds how much of a response body is read.
	maxResponseSize = 1 << 20
)

// GoDaddyRecord is one entry of the JSON array sent to the GoDaddy API.
type GoDaddyRecord struct {
	Data string `json:"data"`
	TTL  int    `json:"ttl,omitempty"`
}

// GoDaddy talks to the GoDaddy domains REST API.
type GoDaddy struct {
	id        string
	baseURL   string
	key       string
	secret    string
	shopperID string
	client    *retryablehttp.Client

	headerOnce sync.Once
	header     http.Header
}

var _ Backend = (*GoDaddy)(nil)

// joinURL concatenates host and path with exactly one slash between them.
func joinURL(host, path string) string {
	if !strings.Contains(host, "://") {
		host = "https://" + host
	}
	host = strings.TrimRight(host, "/")
	path = strings.Trim(path, "/")
	if path == "" {
		return host
	}
	return host + "/" + path
}

// NewGoDaddyClient creates a GoDaddy backend. A zero timeout means no timeout.
func NewGoDaddyClient(id, baseURL, key, secret, shopperID string, timeout time.Duration) *GoDaddy {
	c := retryablehttp.NewClient()
	c.Logger = nil
	c.RetryMax = 0
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler
	c.HTTPClient.Timeout = timeout

	return &GoDaddy{
		id:         id,
		baseURL:    strings.TrimRight(baseURL, "/"),
		key:        key,
		secret:     secret,
		shopperID:  shopperID,
		client:     c,
		headerOnce: sync.Once{},
		header:     nil,
	}
}

// NewGoDaddy reads the settings KEY, SECRET, SHOPPER_ID, HOST, PATH, and TIMEOUT.
func NewGoDaddy(ppfmt pp.PP, id string, s Settings) (Backend, bool) {
	key, ok := s.Secret(ppfmt, "KEY")
	if !ok || !s.required(ppfmt, "KEY", key) {
		return nil, false
	}

	secret, ok := s.Secret(ppfmt, "SECRET")
	if !ok || !s.required(ppfmt, "SECRET", secret) {
		return nil, false
	}

	timeout, ok := s.Duration(ppfmt, "TIMEOUT", GoDaddyDefaultTimeout)
	if !ok {
		return nil, false
	}

	baseURL := joinURL(s.String("HOST", GoDaddyDefaultHost), s.String("PATH", GoDaddyDefaultPath))
	if u, err := url.Parse(baseURL); err != nil || u.Host == "" {
		ppfmt.Noticef(pp.EmojiUserError, "%s and %s do not form a valid URL: %q",
			s.Name("HOST"), s.Name("PATH"), baseURL)
		return nil, false
	}

	return NewGoDaddyClient(id, baseURL, key, secret, s.String("SHOPPER_ID", ""), timeout), true
}

// ID returns the registered identifier.
func (g *GoDaddy) ID() string { return g.id }

// BaseURL returns the URL under which all domains are addressed.
func (g *GoDaddy) BaseURL() string { return g.baseURL }

// headers are computed once and copied into every request.
func (g *GoDaddy) headers() http.Header {
	g.headerOnce.Do(func() {
		h := http.Header{}
		h.Set("Authorization", fmt.Sprintf("sso-key %s:%s", g.key, g.secret))
		if g.shopperID != "" {
			h.Set("X-Shopper-Id", g.shopperID)
		}
		h.Set("Accept", "application/json")
		h.Set("Content-Type", "application/json")
		g.header = h
	})
	return g.header
}

func (g *GoDaddy) recordsURL(zone domain.FQDN, recordType, name string) string {
	return fmt.Sprintf("%s/%s/records/%s/%s",
		g.baseURL, url.PathEscape(zone.DNSNameASCII()), recordType, url.PathEscape(name))
}

// request sends one request without retrying. A successful empty body gives nil;
// any other successful body is decoded as JSON.
func (g *GoDaddy) request(ctx context.Context, method, endpoint string, payload any) (any, error) {
	var body any
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, &Error{Backend: g.id, Op: "encoding the request", Err: err}
		}
		body = raw
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, &Error{Backend: g.id, Op: "preparing " + method + " " + endpoint, Err: err}
	}
	for k, vs := range g.headers() {
		req.Header[k] = append([]string(nil), vs...)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &Error{Backend: g.id, Op: method + " " + endpoint, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &Error{Backend: g.id, Op: "reading the response of " + method + " " + endpoint, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &RequestError{Backend: g.id, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil //nolint:nilnil
	}

	var result any
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &Error{Backend: g.id, Op: "decoding the response of " + method + " " + endpoint, Err: err}
	}
	return result, nil
}

// GetRecords lists the records of one name and type.
func (g *GoDaddy) GetRecords(ctx context.Context, zone domain.FQDN, recordType, name string) (any, error) {
	return g.request(ctx, http.MethodGet, g.recordsURL(zone, recordType, name), nil)
}

// ReplaceRecords replaces all the records of one name and type.
func (g *GoDaddy) ReplaceRecords(ctx context.Context, zone domain.FQDN, recordType, name string,
	records []GoDaddyRecord,
) (any, error) {
	return g.request(ctx, http.MethodPut, g.recordsURL(zone, recordType, name), records)
}

// UpdateIP replaces the records with exactly one record holding ip.
func (g *GoDaddy) UpdateIP(ctx context.Context, ppfmt pp.PP,
	zone domain.FQDN, name string, ip netip.Addr, ttl TTL,
) error {
	ip = ip.Unmap()
	recordType := ipnet.FromAddr(ip).RecordType()
	if recordType == "" {
		return &Error{Backend: g.id, Op: "choosing the record type", Err: fmt.Errorf("invalid address %v", ip)}
	}

	if _, err := g.ReplaceRecords(ctx, zone, recordType, name,
		[]GoDaddyRecord{{Data: ip.String(), TTL: ttl.Int()}},
	); err != nil {
		return err
	}

	ppfmt.Infof(pp.EmojiUpdateRecord, "Set the %s record of %s to %s",
		recordType, zone.Join(name).Describe(), ip.String())
	return nil
}
