package validator_test

import (
	"net/netip"
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"

	"github.com/favonia/ddnsp/internal/response"
	"github.com/favonia/ddnsp/internal/validator"
)

func validRequest() validator.Request {
	return validator.Request{
		Username: "alice",
		Password: "correct horse",
		Hostname: "myhost",
		IP:       "1.2.3.4",
	}
}

//nolint:funlen
func TestValidate(t *testing.T) {
	t.Parallel()

	limits := validator.DefaultLimits()
	for name, tc := range map[string]struct {
		modify   func(*validator.Request)
		code     response.Code
		hostname string
		username string
	}{
		"ok":                    {func(*validator.Request) {}, response.OK, "myhost", "alice"},
		"hostname/uppercase":    {func(r *validator.Request) { r.Hostname = "MyHost" }, response.OK, "myhost", "alice"},
		"hostname/fqdn":         {func(r *validator.Request) { r.Hostname = "myhost.example.org" }, response.OK, "myhost", "alice"},
		"hostname/spaces":       {func(r *validator.Request) { r.Hostname = "  myhost \t" }, response.OK, "myhost", "alice"},
		"hostname/underscore":   {func(r *validator.Request) { r.Hostname = "my_host-2" }, response.OK, "my_host-2", "alice"},
		"hostname/digit":        {func(r *validator.Request) { r.Hostname = "0host" }, response.OK, "0host", "alice"},
		"hostname/empty":        {func(r *validator.Request) { r.Hostname = "" }, response.NoHost, "", ""},
		"hostname/leading-dot":  {func(r *validator.Request) { r.Hostname = ".myhost" }, response.NoHost, "", ""},
		"hostname/leading-dash": {func(r *validator.Request) { r.Hostname = "-myhost" }, response.NoHost, "", ""},
		"hostname/inner-space":  {func(r *validator.Request) { r.Hostname = "BAD HOST!" }, response.NoHost, "", ""},
		"hostname/kelvin":       {func(r *validator.Request) { r.Hostname = "\u212Aelvin" }, response.NoHost, "", ""},
		"hostname/too-long": {
			func(r *validator.Request) { r.Hostname = strings.Repeat("a", 64) }, response.NoHost, "", "",
		},
		"hostname/max-length": {
			func(r *validator.Request) { r.Hostname = strings.Repeat("a", 63) },
			response.OK, strings.Repeat("a", 63), "alice",
		},
		"username/case-kept":  {func(r *validator.Request) { r.Username = " Alice " }, response.OK, "myhost", "Alice"},
		"username/empty":      {func(r *validator.Request) { r.Username = "" }, response.BadAuth, "", ""},
		"username/symbol":     {func(r *validator.Request) { r.Username = "alice@home" }, response.BadAuth, "", ""},
		"username/too-long":   {func(r *validator.Request) { r.Username = strings.Repeat("u", 33) }, response.BadAuth, "", ""},
		"password/too-short":  {func(r *validator.Request) { r.Password = "1234567" }, response.BadAuth, "", ""},
		"password/too-long":   {func(r *validator.Request) { r.Password = strings.Repeat("p", 129) }, response.BadAuth, "", ""},
		"password/characters": {func(r *validator.Request) { r.Password = "密码密码密码密码" }, response.OK, "myhost", "alice"},
		"ip/empty":            {func(r *validator.Request) { r.IP = "" }, response.BadAgent, "", ""},
		"ip/octet":            {func(r *validator.Request) { r.IP = "1.2.3.256" }, response.BadAgent, "", ""},
		"ip/three-octets":     {func(r *validator.Request) { r.IP = "1.2.3" }, response.BadAgent, "", ""},
		"ip/ipv6":             {func(r *validator.Request) { r.IP = "2001:db8::1" }, response.BadAgent, "", ""},
		"ip/4in6":             {func(r *validator.Request) { r.IP = "::ffff:1.2.3.4" }, response.BadAgent, "", ""},
		"ip/garbage":          {func(r *validator.Request) { r.IP = "hello" }, response.BadAgent, "", ""},
		"order/nohost-first": {
			func(r *validator.Request) { *r = validator.Request{Hostname: "!", Username: "!", Password: "", IP: ""} },
			response.NoHost, "", "",
		},
		"order/username-before-ip": {
			func(r *validator.Request) { r.Username = "!"; r.IP = "" }, response.BadAuth, "", "",
		},
		"order/password-before-ip": {
			func(r *validator.Request) { r.Password = ""; r.IP = "" }, response.BadAuth, "", "",
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			req := validRequest()
			tc.modify(&req)

			validated, code := validator.Validate(req, limits)
			require.Equal(t, tc.code, code)
			if code == response.OK {
				require.Equal(t, tc.hostname, validated.Hostname)
				require.Equal(t, tc.username, validated.Username)
				require.Equal(t, req.Password, validated.Password)
				require.True(t, validated.IP.Is4())
			} else {
				require.Equal(t, validator.Validated{}, validated)
			}
		})
	}
}

func TestValidateTotal(t *testing.T) {
	t.Parallel()

	limits := validator.DefaultLimits()
	allowed := map[response.Code]bool{
		response.OK: true, response.NoHost: true, response.BadAuth: true, response.BadAgent: true,
	}

	require.NoError(t, quick.Check(
		func(username, password, hostname, ip string) bool {
			validated, code := validator.Validate(validator.Request{
				Username: username, Password: password, Hostname: hostname, IP: ip,
			}, limits)
			if !allowed[code] {
				return false
			}
			if code == response.OK {
				return validated.Hostname != "" && validated.Username != "" && validated.IP.Is4()
			}
			return true
		},
		nil,
	))
}

func TestValidateIP(t *testing.T) {
	t.Parallel()

	validated, code := validator.Validate(validRequest(), validator.DefaultLimits())
	require.Equal(t, response.OK, code)
	require.Equal(t, netip.MustParseAddr("1.2.3.4"), validated.IP)
}

func TestLimitsCheck(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		limits    validator.Limits
		errString string
	}{
		"default": {validator.DefaultLimits(), ""},
		"hostname": {
			validator.Limits{HostnameMaxLength: 0, UsernameMaxLength: 1, PasswordMinLength: 1, PasswordMaxLength: 1},
			"the maximum length of host names (0) should be positive",
		},
		"username": {
			validator.Limits{HostnameMaxLength: 1, UsernameMaxLength: -1, PasswordMinLength: 1, PasswordMaxLength: 1},
			"the maximum length of usernames (-1) should be positive",
		},
		"password-min": {
			validator.Limits{HostnameMaxLength: 1, UsernameMaxLength: 1, PasswordMinLength: 0, PasswordMaxLength: 1},
			"the minimum length of passwords (0) should be positive",
		},
		"password-range": {
			validator.Limits{HostnameMaxLength: 1, UsernameMaxLength: 1, PasswordMinLength: 10, PasswordMaxLength: 8},
			"the maximum length of passwords (8) is less than the minimum length (10)",
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := tc.limits.Check()
			if tc.errString == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tc.errString)
			}
		})
	}
}

func TestNormalizeHostname(t *testing.T) {
	t.Parallel()

	require.Equal(t, "myhost", validator.NormalizeHostname(" MyHost.example.org"))
	require.Equal(t, "", validator.NormalizeHostname(".example.org"))
}
