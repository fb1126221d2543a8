package backend_test

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/favonia/ddnsp/internal/backend"
)

func mustIP(ip string) netip.Addr {
	return netip.MustParseAddr(ip)
}

func TestTTLDescribe(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		ttl      backend.TTL
		expected string
	}{
		"default": {backend.TTLDefault, "0 (provider default)"},
		"600":     {600, "600"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, tc.ttl.Describe())
		})
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	var err error = &backend.Error{Backend: "godaddy", Op: "PUT https://api.godaddy.com/v1/domains", Err: cause}
	require.EqualError(t, err, "godaddy: PUT https://api.godaddy.com/v1/domains: connection refused")
	require.ErrorIs(t, err, cause)

	err = &backend.RequestError{Backend: "godaddy", StatusCode: 422, Body: `{"code":"INVALID_BODY"}`}
	require.EqualError(t, err, `godaddy: request failed with status 422: {"code":"INVALID_BODY"}`)

	var requestErr *backend.RequestError
	require.ErrorAs(t, err, &requestErr)
	require.Equal(t, 422, requestErr.StatusCode)
}
