package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/favonia/ddnsp/internal/backend"
	"github.com/favonia/ddnsp/internal/config"
	"github.com/favonia/ddnsp/internal/mocks"
	"github.com/favonia/ddnsp/internal/pp"
)

func TestNamespacePrefix(t *testing.T) {
	t.Parallel()
	require.Equal(t, "DNS_GODADDY_", config.NamespacePrefix("godaddy"))
}

//nolint:paralleltest // environment vars are global
func TestReadNamespace(t *testing.T) {
	const id = "test5d2c9a"
	store(t, "DNS_TEST5D2C9A_KEY", " abc ")
	store(t, "DNS_TEST5D2C9A_SHOPPER_ID", "12345")
	store(t, "DNS_TEST5D2C9A_EMPTY", " ")
	store(t, "DNS_TEST5D2C9AB_KEY", "other")

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)

	var s backend.Settings
	require.True(t, config.ReadNamespace(mockPP, id, &s))
	require.Equal(t, backend.NewSettings("DNS_TEST5D2C9A_", map[string]string{
		"KEY":        "abc",
		"SHOPPER_ID": "12345",
	}), s)
}

//nolint:paralleltest // environment vars are global
func TestReadNamespaceEmpty(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockPP.EXPECT().Infof(pp.EmojiBullet, "No variables found under %s*", "DNS_NOTHING5D2C9A_")

	var s backend.Settings
	require.True(t, config.ReadNamespace(mockPP, "nothing5d2c9a", &s))
	require.Equal(t, "DNS_NOTHING5D2C9A_", s.Prefix)
	require.Empty(t, s.Values)
}
