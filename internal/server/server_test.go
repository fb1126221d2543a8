package server_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/favonia/ddnsp/internal/metrics"
	"github.com/favonia/ddnsp/internal/mocks"
	"github.com/favonia/ddnsp/internal/pp"
	"github.com/favonia/ddnsp/internal/response"
	"github.com/favonia/ddnsp/internal/server"
	"github.com/favonia/ddnsp/internal/validator"
)

const remoteAddr = "198.51.100.7:43210"

func serve(t *testing.T, s *server.Server, r *http.Request) (int, string, string) {
	t.Helper()
	r.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, r)

	body, err := io.ReadAll(w.Result().Body)
	require.NoError(t, err)
	return w.Code, w.Header().Get("Content-Type"), string(body)
}

func TestWelcome(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)

	s := server.New(mocks.NewMockPP(mockCtrl), mocks.NewMockUpdater(mockCtrl), server.Options{}) //nolint:exhaustruct
	code, contentType, body := serve(t, s, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "text/plain; charset=utf-8", contentType)
	require.Equal(t, server.Welcome+"\n", body)

	code, _, _ = serve(t, s, httptest.NewRequest(http.MethodGet, "/elsewhere", nil))
	require.Equal(t, http.StatusNotFound, code)
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	ip := netip.MustParseAddr("192.0.2.2")

	for name, tc := range map[string]struct {
		method        string
		path          string
		basicAuth     bool
		body          string
		expectedReq   validator.Request
		resp          response.Response
		expectedBody  string
		prepareMockPP func(*mocks.MockPP)
	}{
		"basic-auth": {
			http.MethodGet, "/update?hostname=myhost&myip=192.0.2.2", true, "",
			validator.Request{Username: "alice", Password: "correct horse", Hostname: "myhost", IP: "192.0.2.2"},
			response.NewWithIP(response.Good, ip), "good 192.0.2.2\n",
			nil,
		},
		"legacy-path": {
			http.MethodGet, "/nic/update?hostname=myhost&myip=192.0.2.2", true, "",
			validator.Request{Username: "alice", Password: "correct horse", Hostname: "myhost", IP: "192.0.2.2"},
			response.NewWithIP(response.NoChange, ip), "nochg 192.0.2.2\n",
			nil,
		},
		"peer-address": {
			http.MethodGet, "/update?hostname=myhost", true, "",
			validator.Request{Username: "alice", Password: "correct horse", Hostname: "myhost", IP: "198.51.100.7"},
			response.NewWithIP(response.Good, netip.MustParseAddr("198.51.100.7")), "good 198.51.100.7\n",
			nil,
		},
		"query-credentials": {
			http.MethodGet, "/update?hostname=myhost&myip=192.0.2.2&username=alice&password=" + url.QueryEscape("correct horse"), false, "",
			validator.Request{Username: "alice", Password: "correct horse", Hostname: "myhost", IP: "192.0.2.2"},
			response.New(response.BadAuth), "badauth\n",
			func(m *mocks.MockPP) {
				m.EXPECT().NoticeOncef(pp.MessageCredentialsInQuery, pp.EmojiUserWarning,
					"A client sent its credentials as query parameters; prefer HTTP basic authentication")
			},
		},
		"no-credentials": {
			http.MethodGet, "/update?hostname=myhost", false, "",
			validator.Request{Username: "", Password: "", Hostname: "myhost", IP: "198.51.100.7"},
			response.New(response.BadAuth), "badauth\n",
			nil,
		},
		"post-form": {
			http.MethodPost, "/update", true, "hostname=myhost&myip=192.0.2.2",
			validator.Request{Username: "alice", Password: "correct horse", Hostname: "myhost", IP: "192.0.2.2"},
			response.New(response.DNSErr), "dnserr\n",
			nil,
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			mockUpdater := mocks.NewMockUpdater(mockCtrl)

			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}
			mockPP.EXPECT().Infof(pp.EmojiRequest, "Received a request for %q from %s", tc.expectedReq.Hostname, remoteAddr)
			mockUpdater.EXPECT().Update(gomock.Any(), gomock.Any(), tc.expectedReq).Return(tc.resp)

			var body io.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			}
			r := httptest.NewRequest(tc.method, tc.path, body)
			if tc.body != "" {
				r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			}
			if tc.basicAuth {
				r.SetBasicAuth("alice", "correct horse")
			}

			s := server.New(mockPP, mockUpdater, server.Options{}) //nolint:exhaustruct
			code, contentType, respBody := serve(t, s, r)
			require.Equal(t, http.StatusOK, code)
			require.Equal(t, "text/plain; charset=utf-8", contentType)
			require.Equal(t, tc.expectedBody, respBody)
		})
	}
}

// Messages logged by the updater are printed only after the response is decided.
func TestUpdateQueuesMessages(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockUpdater := mocks.NewMockUpdater(mockCtrl)

	flushed := false
	mockUpdater.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ppfmt pp.PP, _ validator.Request) response.Response {
			ppfmt.Noticef(pp.EmojiError, "inside")
			require.False(t, flushed)
			return response.New(response.DNSErr)
		})
	gomock.InOrder(
		mockPP.EXPECT().Infof(pp.EmojiRequest, "Received a request for %q from %s", "myhost", remoteAddr),
		mockPP.EXPECT().Noticef(pp.EmojiError, "inside").Do(func(pp.Emoji, string, ...any) { flushed = true }),
	)

	s := server.New(mockPP, mockUpdater, server.Options{}) //nolint:exhaustruct
	_, _, body := serve(t, s, httptest.NewRequest(http.MethodGet, "/update?hostname=myhost", nil))
	require.Equal(t, "dnserr\n", body)
	require.True(t, flushed)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)

	m := metrics.New()
	m.ObserveUpdate(response.Good)

	s := server.New(mocks.NewMockPP(mockCtrl), mocks.NewMockUpdater(mockCtrl), server.Options{Metrics: m}) //nolint:exhaustruct
	code, _, body := serve(t, s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, `ddnsp_updates_total{result="good"} 1`)

	s = server.New(mocks.NewMockPP(mockCtrl), mocks.NewMockUpdater(mockCtrl), server.Options{}) //nolint:exhaustruct
	code, _, _ = serve(t, s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusNotFound, code)
}

func TestListenServeShutdown(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockPP.EXPECT().Noticef(pp.EmojiInternet, "Listening on %s://%s", "http", gomock.Any())
	mockPP.EXPECT().NoticeOncef(pp.MessagePlainHTTP, pp.EmojiHint,
		"Passwords travel in cleartext over plain HTTP; set TLS_CERT_FILE and TLS_KEY_FILE or put a TLS proxy in front")

	s := server.New(mockPP, mocks.NewMockUpdater(mockCtrl), server.Options{Listen: "127.0.0.1:0"}) //nolint:exhaustruct
	require.Nil(t, s.Addr())
	require.False(t, s.TLS())
	require.True(t, s.Listen())
	require.NotNil(t, s.Addr())

	done := make(chan error)
	go func() { done <- s.Serve() }()

	resp, err := http.Get("http://" + s.Addr().String() + "/") //nolint:noctx
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, server.Welcome+"\n", string(body))

	require.NoError(t, s.Shutdown(context.Background()))
	require.NoError(t, <-done)
}

func TestListenFailure(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockPP.EXPECT().Noticef(pp.EmojiError, "Failed to listen on %s: %v", "127.0.0.1:99999", gomock.Any())

	s := server.New(mockPP, mocks.NewMockUpdater(mockCtrl), server.Options{Listen: "127.0.0.1:99999"}) //nolint:exhaustruct
	require.False(t, s.Listen())
	require.Error(t, s.Serve())
}
