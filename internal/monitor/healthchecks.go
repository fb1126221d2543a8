package monitor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/favonia/ddnsp/internal/pp"
)

// Healthchecks is the monitor at https://healthchecks.io or a self-hosted instance.
type Healthchecks struct {
	// The ping URL. It contains the secret check UUID and is never printed.
	BaseURL *url.URL

	// Timeout for each attempt.
	Timeout time.Duration

	// Retries after the first attempt.
	MaxRetries int
}

const (
	HealthchecksDefaultTimeout    = 10 * time.Second
	HealthchecksDefaultMaxRetries = 3
)

// NewHealthchecks creates a new Healthchecks monitor.
// See https://healthchecks.io/docs/http_api/ for the endpoints.
func NewHealthchecks(ppfmt pp.PP, rawURL string) (Healthchecks, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to parse the Healthchecks URL (redacted)")
		return Healthchecks{}, false //nolint:exhaustruct
	}

	if !(u.IsAbs() && u.Opaque == "" && u.Host != "") {
		ppfmt.Noticef(pp.EmojiUserError, `The Healthchecks URL (redacted) does not look like a valid URL`)
		ppfmt.Noticef(pp.EmojiUserError, `A valid example is "https://hc-ping.com/01234567-0123-0123-0123-0123456789abc"`)
		return Healthchecks{}, false //nolint:exhaustruct
	}

	switch u.Scheme {
	case "http":
		ppfmt.Noticef(pp.EmojiUserWarning, "The Healthchecks URL (redacted) uses HTTP; please consider using HTTPS")
	case "https":
	default:
		ppfmt.Noticef(pp.EmojiUserError, `The Healthchecks URL (redacted) does not look like a valid URL`)
		return Healthchecks{}, false //nolint:exhaustruct
	}

	return Healthchecks{
		BaseURL:    u,
		Timeout:    HealthchecksDefaultTimeout,
		MaxRetries: HealthchecksDefaultMaxRetries,
	}, true
}

// Describe calls yield with the service name.
func (h Healthchecks) Describe(yield func(service, params string) bool) {
	yield("Healthchecks", "(URL redacted)")
}

func endpointName(endpoint string) string {
	if endpoint == "" {
		return "default"
	}
	return endpoint
}

func (h Healthchecks) ping(ctx context.Context, ppfmt pp.PP, endpoint string, message string) bool {
	ctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	u := h.BaseURL
	if endpoint != "" {
		u = u.JoinPath(endpoint)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(message))
	if err != nil {
		ppfmt.Noticef(pp.EmojiImpossible, "Failed to prepare HTTP(S) request to the %q endpoint of Healthchecks: %v",
			endpointName(endpoint), err)
		return false
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	c := retryablehttp.NewClient()
	c.Logger = nil
	c.RetryMax = h.MaxRetries

	resp, err := c.Do(req)
	if err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to send HTTP(S) request to the %q endpoint of Healthchecks: %v",
			endpointName(endpoint), err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxReadLength))
		ppfmt.Noticef(pp.EmojiError, "Failed to ping the %q endpoint of Healthchecks; got response code: %d %s",
			endpointName(endpoint), resp.StatusCode, strings.TrimSpace(string(body)))
		return false
	}

	ppfmt.Infof(pp.EmojiPing, "Pinged the %q endpoint of Healthchecks", endpointName(endpoint))
	return true
}

// Ping pings the default endpoint when msg.OK holds and the "/fail" endpoint otherwise.
func (h Healthchecks) Ping(ctx context.Context, ppfmt pp.PP, msg Message) bool {
	if msg.OK {
		return h.ping(ctx, ppfmt, "", msg.Format())
	}
	return h.ping(ctx, ppfmt, "/fail", msg.Format())
}

// Start pings the "/start" endpoint.
func (h Healthchecks) Start(ctx context.Context, ppfmt pp.PP, message string) bool {
	return h.ping(ctx, ppfmt, "/start", message)
}

// Exit pings the endpoint named after the exit code.
func (h Healthchecks) Exit(ctx context.Context, ppfmt pp.PP, code int, message string) bool {
	if code < 0 || code > 255 {
		ppfmt.Noticef(pp.EmojiImpossible, "Exit code (%d) not within the range 0-255", code)
		return false
	}
	return h.ping(ctx, ppfmt, fmt.Sprintf("/%d", code), message)
}
