package backend_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/cloudflare/cloudflare-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/favonia/ddnsp/internal/backend"
	"github.com/favonia/ddnsp/internal/domain"
	"github.com/favonia/ddnsp/internal/mocks"
	"github.com/favonia/ddnsp/internal/pp"
)

const (
	mockToken      = "token123"
	mockAuthString = "Bearer " + mockToken
	mockZoneID     = "0123456789abcdef0123456789abcdef"
)

func mockResultInfo(total int) cloudflare.ResultInfo {
	return cloudflare.ResultInfo{ //nolint:exhaustruct
		Page:       1,
		PerPage:    100,
		TotalPages: 1,
		Count:      total,
		Total:      total,
	}
}

func mockResponse() cloudflare.Response {
	return cloudflare.Response{
		Success:  true,
		Errors:   []cloudflare.ResponseInfo{},
		Messages: []cloudflare.ResponseInfo{},
	}
}

// fakeCloudflare serves one zone and remembers the calls made to it.
type fakeCloudflare struct {
	t *testing.T

	mu          sync.Mutex
	zoneStatus  string // empty means the zone does not exist
	zoneLists   int
	records     map[string]cloudflare.DNSRecord
	nextID      int
	events      []string
	failListing bool
}

func newFakeCloudflare(t *testing.T, records ...cloudflare.DNSRecord) (*fakeCloudflare, string) {
	t.Helper()

	f := &fakeCloudflare{
		t:           t,
		mu:          sync.Mutex{},
		zoneStatus:  "active",
		zoneLists:   0,
		records:     map[string]cloudflare.DNSRecord{},
		nextID:      0,
		events:      nil,
		failListing: false,
	}
	for _, r := range records {
		f.records[r.ID] = r
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /zones", f.handleZones)
	mux.HandleFunc("GET /zones/{zone}/dns_records", f.handleList)
	mux.HandleFunc("POST /zones/{zone}/dns_records", f.handleCreate)
	mux.HandleFunc("DELETE /zones/{zone}/dns_records/{id}", f.handleDelete)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	return f, ts.URL
}

func (f *fakeCloudflare) check(w http.ResponseWriter, r *http.Request) bool {
	if !assert.Equal(f.t, []string{mockAuthString}, r.Header["Authorization"]) {
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}
	if zone := r.PathValue("zone"); zone != "" && !assert.Equal(f.t, mockZoneID, zone) {
		w.WriteHeader(http.StatusNotFound)
		return false
	}
	return true
}

func (f *fakeCloudflare) reply(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	assert.NoError(f.t, json.NewEncoder(w).Encode(v))
}

func (f *fakeCloudflare) handleZones(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.check(w, r) {
		return
	}

	f.zoneLists++
	zones := []cloudflare.Zone{}
	if f.zoneStatus != "" && r.URL.Query().Get("name") == "example.org" {
		zones = append(zones, cloudflare.Zone{ID: mockZoneID, Name: "example.org", Status: f.zoneStatus}) //nolint:exhaustruct
	}
	f.reply(w, cloudflare.ZonesResponse{Result: zones, ResultInfo: mockResultInfo(len(zones)), Response: mockResponse()})
}

func (f *fakeCloudflare) handleList(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.check(w, r) {
		return
	}

	if f.failListing {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"success":false,"errors":[{"code":1003,"message":"Invalid zone"}],"messages":[],"result":null}`)
		return
	}

	typ, name := r.URL.Query().Get("type"), r.URL.Query().Get("name")
	rs := []cloudflare.DNSRecord{}
	for _, rec := range f.records {
		if rec.Type == typ && rec.Name == name {
			rs = append(rs, rec)
		}
	}
	f.reply(w, cloudflare.DNSListResponse{Result: rs, ResultInfo: mockResultInfo(len(rs)), Response: mockResponse()})
}

func (f *fakeCloudflare) handleCreate(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.check(w, r) {
		return
	}

	var body struct {
		Type    string `json:"type"`
		Name    string `json:"name"`
		Content string `json:"content"`
		TTL     int    `json:"ttl"`
		Proxied *bool  `json:"proxied"`
		Comment string `json:"comment"`
	}
	if !assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&body)) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.nextID++
	rec := cloudflare.DNSRecord{ //nolint:exhaustruct
		ID:      fmt.Sprintf("new%d", f.nextID),
		Type:    body.Type,
		Name:    body.Name,
		Content: body.Content,
		TTL:     body.TTL,
		Proxied: body.Proxied,
		Comment: body.Comment,
	}
	f.records[rec.ID] = rec
	f.events = append(f.events, "create "+rec.Content)
	f.reply(w, cloudflare.DNSRecordResponse{Result: rec, Response: mockResponse()}) //nolint:exhaustruct
}

func (f *fakeCloudflare) handleDelete(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.check(w, r) {
		return
	}

	id := r.PathValue("id")
	rec, ok := f.records[id]
	if !assert.True(f.t, ok, "deleting unknown record %s", id) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	delete(f.records, id)
	f.events = append(f.events, "delete "+rec.Content)
	f.reply(w, cloudflare.DNSRecordResponse{Result: cloudflare.DNSRecord{ID: id}, Response: mockResponse()}) //nolint:exhaustruct
}

func (f *fakeCloudflare) setZoneStatus(status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.zoneStatus = status
}

func (f *fakeCloudflare) setFailListing(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failListing = fail
}

func (f *fakeCloudflare) history() ([]string, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.events, f.zoneLists
}

func (f *fakeCloudflare) contents() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	m := map[string]string{}
	for id, rec := range f.records {
		m[id] = rec.Content
	}
	return m
}

func mockRecord(id, typ, name, content string) cloudflare.DNSRecord {
	return cloudflare.DNSRecord{ID: id, Type: typ, Name: name, Content: content} //nolint:exhaustruct
}

func newCloudflare(t *testing.T, baseURL string) *backend.Cloudflare {
	t.Helper()

	c, err := backend.NewCloudflareClient("cloudflare", mockToken, baseURL, time.Second, time.Hour, false, "ddnsp")
	require.NoError(t, err)
	return c
}

func TestCloudflareUpdateIP(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		records        []cloudflare.DNSRecord
		ip             string
		expectedEvents []string
		expected       map[string]string
		prepareMockPP  func(*mocks.MockPP)
	}{
		"create": {
			nil, "1.2.3.4",
			[]string{"create 1.2.3.4"},
			map[string]string{"new1": "1.2.3.4"},
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiCreateRecord, "Added a new %s record of %s pointing to %s",
					"A", "myhost.example.org", "1.2.3.4")
			},
		},
		"already-there": {
			[]cloudflare.DNSRecord{mockRecord("r1", "A", "myhost.example.org", "1.2.3.4")},
			"1.2.3.4",
			nil,
			map[string]string{"r1": "1.2.3.4"},
			nil,
		},
		"other-names-untouched": {
			[]cloudflare.DNSRecord{
				mockRecord("r1", "A", "other.example.org", "9.9.9.9"),
				mockRecord("r2", "AAAA", "myhost.example.org", "2001:db8::1"),
			},
			"1.2.3.4",
			[]string{"create 1.2.3.4"},
			map[string]string{"r1": "9.9.9.9", "r2": "2001:db8::1", "new1": "1.2.3.4"},
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiCreateRecord, "Added a new %s record of %s pointing to %s",
					"A", "myhost.example.org", "1.2.3.4")
			},
		},
		"replace": {
			[]cloudflare.DNSRecord{mockRecord("r1", "A", "myhost.example.org", "5.6.7.8")},
			"1.2.3.4",
			[]string{"create 1.2.3.4", "delete 5.6.7.8"},
			map[string]string{"new1": "1.2.3.4"},
			func(m *mocks.MockPP) {
				gomock.InOrder(
					m.EXPECT().Infof(pp.EmojiCreateRecord, "Added a new %s record of %s pointing to %s",
						"A", "myhost.example.org", "1.2.3.4"),
					m.EXPECT().Infof(pp.EmojiDeleteRecord, "Deleted a stale %s record of %s (ID: %s)",
						"A", "myhost.example.org", "r1"),
				)
			},
		},
		"keep-one": {
			[]cloudflare.DNSRecord{
				mockRecord("r1", "A", "myhost.example.org", "1.2.3.4"),
				mockRecord("r2", "A", "myhost.example.org", "5.6.7.8"),
			},
			"1.2.3.4",
			[]string{"delete 5.6.7.8"},
			map[string]string{"r1": "1.2.3.4"},
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiDeleteRecord, "Deleted a stale %s record of %s (ID: %s)",
					"A", "myhost.example.org", "r2")
			},
		},
		"ipv6": {
			[]cloudflare.DNSRecord{mockRecord("r1", "AAAA", "myhost.example.org", "2001:0db8:0000::1")},
			"2001:db8::1",
			nil,
			map[string]string{"r1": "2001:0db8:0000::1"},
			nil,
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}

			f, url := newFakeCloudflare(t, tc.records...)
			c := newCloudflare(t, url)
			require.Equal(t, "cloudflare", c.ID())

			err := c.UpdateIP(context.Background(), mockPP, domain.FQDN("example.org"), "myhost", mustIP(tc.ip), 0)
			require.NoError(t, err)
			events, _ := f.history()
			require.Equal(t, tc.expectedEvents, events)
			require.Equal(t, tc.expected, f.contents())
		})
	}
}

func TestCloudflareCreateFields(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockPP.EXPECT().Infof(pp.EmojiCreateRecord, gomock.Any(), gomock.Any()).Times(2)

	f, url := newFakeCloudflare(t)
	c, err := backend.NewCloudflareClient("cloudflare", mockToken, url, time.Second, time.Hour, true, "managed by ddnsp")
	require.NoError(t, err)

	require.NoError(t, c.UpdateIP(context.Background(), mockPP, domain.FQDN("example.org"), "a", mustIP("1.2.3.4"), 0))
	require.NoError(t, c.UpdateIP(context.Background(), mockPP, domain.FQDN("example.org"), "b", mustIP("1.2.3.4"), 600))

	f.mu.Lock()
	records := f.records
	f.mu.Unlock()
	require.Len(t, records, 2)
	for _, rec := range records {
		require.NotNil(t, rec.Proxied)
		require.True(t, *rec.Proxied)
		require.Equal(t, "managed by ddnsp", rec.Comment)
		switch rec.Name {
		case "a.example.org":
			require.Equal(t, 1, rec.TTL)
		case "b.example.org":
			require.Equal(t, 600, rec.TTL)
		default:
			t.Errorf("unexpected record %s", rec.Name)
		}
	}

	// The zone ID is cached.
	_, zoneLists := f.history()
	require.Equal(t, 1, zoneLists)
}

func TestCloudflareZoneNotFound(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)

	f, url := newFakeCloudflare(t)
	f.setZoneStatus("")
	c := newCloudflare(t, url)

	err := c.UpdateIP(context.Background(), mockPP, domain.FQDN("example.org"), "myhost", mustIP("1.2.3.4"), 0)
	require.ErrorIs(t, err, backend.ErrZoneNotFound)
	var backendErr *backend.Error
	require.ErrorAs(t, err, &backendErr)
}

func TestCloudflareZoneStatus(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	gomock.InOrder(
		mockPP.EXPECT().Noticef(pp.EmojiWarning,
			"DNS zone %s is %q in your Cloudflare account; updates might not take effect", "example.org", "pending"),
		mockPP.EXPECT().Infof(pp.EmojiCreateRecord, "Added a new %s record of %s pointing to %s",
			"A", "myhost.example.org", "1.2.3.4"),
	)

	f, url := newFakeCloudflare(t)
	f.setZoneStatus("pending")
	c := newCloudflare(t, url)

	err := c.UpdateIP(context.Background(), mockPP, domain.FQDN("example.org"), "myhost", mustIP("1.2.3.4"), 0)
	require.NoError(t, err)
}

func TestCloudflareListFailure(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)

	f, url := newFakeCloudflare(t)
	f.setFailListing(true)
	c := newCloudflare(t, url)

	err := c.UpdateIP(context.Background(), mockPP, domain.FQDN("example.org"), "myhost", mustIP("1.2.3.4"), 0)
	var requestErr *backend.RequestError
	require.ErrorAs(t, err, &requestErr)
	require.Equal(t, http.StatusBadRequest, requestErr.StatusCode)
	require.Contains(t, requestErr.Body, "Invalid zone")
	events, _ := f.history()
	require.Empty(t, events)

	// The cached zone ID is dropped after a failure.
	f.setFailListing(false)
	mockPP.EXPECT().Infof(pp.EmojiCreateRecord, "Added a new %s record of %s pointing to %s",
		"A", "myhost.example.org", "1.2.3.4")
	require.NoError(t, c.UpdateIP(context.Background(), mockPP, domain.FQDN("example.org"), "myhost", mustIP("1.2.3.4"), 0))
	_, zoneLists := f.history()
	require.Equal(t, 2, zoneLists)
}

func TestCloudflareRejected(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		status  int
		body    string
		hinted  bool
		message string
	}{
		"401": {
			http.StatusUnauthorized,
			`{"success":false,"errors":[{"code":10000,"message":"Authentication error"}],"messages":[],"result":null}`,
			true, "Authentication error",
		},
		"403": {
			http.StatusForbidden,
			`{"success":false,"errors":[{"code":9109,"message":"Invalid access token"}],"messages":[],"result":null}`,
			true, "Invalid access token",
		},
		"404": {
			http.StatusNotFound,
			`{"success":false,"errors":[{"code":7003,"message":"Could not route to /zones"}],"messages":[],"result":null}`,
			false, "Could not route",
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.hinted {
				mockPP.EXPECT().NoticeOncef(pp.MessageTokenPermission, pp.EmojiHint, gomock.Any())
			}

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				fmt.Fprint(w, tc.body)
			}))
			t.Cleanup(ts.Close)
			c := newCloudflare(t, ts.URL)

			err := c.UpdateIP(context.Background(), mockPP, domain.FQDN("example.org"), "myhost", mustIP("1.2.3.4"), 0)
			var requestErr *backend.RequestError
			require.ErrorAs(t, err, &requestErr)
			require.Equal(t, "cloudflare", requestErr.Backend)
			require.Equal(t, tc.status, requestErr.StatusCode)
			require.Contains(t, requestErr.Body, "listing zones named example.org")
			require.Contains(t, requestErr.Body, tc.message)
		})
	}
}

func TestNewCloudflareInvalid(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		values        map[string]string
		prepareMockPP func(*mocks.MockPP)
	}{
		"no-token": {
			map[string]string{},
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiUserError, "%s is required but empty", "DNS_CLOUDFLARE_TOKEN")
			},
		},
		"proxied": {
			map[string]string{"TOKEN": mockToken, "PROXIED": "sometimes"},
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiUserError, "%s (%q) is not a boolean: %v",
					"DNS_CLOUDFLARE_PROXIED", "sometimes", gomock.Any())
			},
		},
		"cache": {
			map[string]string{"TOKEN": mockToken, "CACHE_EXPIRATION": "-1h"},
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiUserError, "%s (%v) is negative", "DNS_CLOUDFLARE_CACHE_EXPIRATION", -time.Hour)
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			tc.prepareMockPP(mockPP)

			b, ok := backend.NewCloudflare(mockPP, "cloudflare", backend.NewSettings("DNS_CLOUDFLARE_", tc.values))
			require.False(t, ok)
			require.Nil(t, b)
		})
	}
}

func TestNewCloudflare(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)

	b, ok := backend.NewCloudflare(mockPP, "cloudflare", backend.NewSettings("DNS_CLOUDFLARE_", map[string]string{
		"TOKEN":   mockToken,
		"PROXIED": "true",
		"TIMEOUT": "5s",
	}))
	require.True(t, ok)
	require.Equal(t, "cloudflare", b.ID())
}
