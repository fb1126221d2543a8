package monitor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/favonia/ddnsp/internal/pp"
)

// UptimeKuma is a push monitor of Uptime Kuma.
type UptimeKuma struct {
	// The push URL. It contains the push token and is never printed.
	BaseURL *url.URL

	// Timeout for each ping.
	Timeout time.Duration
}

const UptimeKumaDefaultTimeout = 10 * time.Second

// NewUptimeKuma creates a new Uptime Kuma monitor from its push URL.
// The query parameters generated by Uptime Kuma are dropped and set again at each ping.
func NewUptimeKuma(ppfmt pp.PP, rawURL string) (UptimeKuma, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to parse the Uptime Kuma URL (redacted)")
		return UptimeKuma{}, false //nolint:exhaustruct
	}

	if !(u.IsAbs() && u.Opaque == "" && u.Host != "") {
		ppfmt.Noticef(pp.EmojiUserError, `The Uptime Kuma URL (redacted) does not look like a valid URL`)
		return UptimeKuma{}, false //nolint:exhaustruct
	}

	switch u.Scheme {
	case "http":
		ppfmt.Noticef(pp.EmojiUserWarning, "The Uptime Kuma URL (redacted) uses HTTP; please consider using HTTPS")
	case "https":
	default:
		ppfmt.Noticef(pp.EmojiUserError, `The Uptime Kuma URL (redacted) does not look like a valid URL`)
		return UptimeKuma{}, false //nolint:exhaustruct
	}

	for k, vs := range u.Query() {
		switch k {
		case "status":
			if len(vs) != 1 || vs[0] != "up" {
				ppfmt.Noticef(pp.EmojiUserWarning, `The Uptime Kuma URL (redacted) contains an unexpected query %s=... and it will be ignored`, k)
			}
		case "msg", "ping":
		default:
			ppfmt.Noticef(pp.EmojiUserWarning, `The Uptime Kuma URL (redacted) contains an unexpected query %s=... and it will be ignored`, k)
		}
	}
	u.RawQuery = ""

	return UptimeKuma{BaseURL: u, Timeout: UptimeKumaDefaultTimeout}, true
}

// Describe calls yield with the service name.
func (k UptimeKuma) Describe(yield func(service, params string) bool) {
	yield("Uptime Kuma", "(URL redacted)")
}

// UptimeKumaRequest is the query of a push.
type UptimeKumaRequest struct {
	Status string `url:"status"`
	Msg    string `url:"msg"`
	Ping   string `url:"ping"`
}

// UptimeKumaResponse is the JSON body answering a push.
type UptimeKumaResponse struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg"`
}

func (k UptimeKuma) ping(ctx context.Context, ppfmt pp.PP, param UptimeKumaRequest) bool {
	ctx, cancel := context.WithTimeout(ctx, k.Timeout)
	defer cancel()

	q, err := query.Values(param)
	if err != nil {
		ppfmt.Noticef(pp.EmojiImpossible, "Failed to encode the query for Uptime Kuma: %v", err)
		return false
	}
	u := *k.BaseURL
	u.RawQuery = q.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		ppfmt.Noticef(pp.EmojiImpossible, "Failed to prepare HTTP(S) request to Uptime Kuma: %v", err)
		return false
	}

	c := retryablehttp.NewClient()
	c.Logger = nil

	resp, err := c.Do(req)
	if err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to send HTTP(S) request to Uptime Kuma: %v", err)
		return false
	}
	defer resp.Body.Close()

	var parsed UptimeKumaResponse
	if err = json.NewDecoder(io.LimitReader(resp.Body, maxReadLength)).Decode(&parsed); err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to parse the response from Uptime Kuma: %v", err)
		return false
	}
	if !parsed.OK {
		ppfmt.Noticef(pp.EmojiError, "Failed to ping Uptime Kuma: %q", parsed.Msg)
		return false
	}

	ppfmt.Infof(pp.EmojiPing, "Pinged Uptime Kuma")
	return true
}

// Ping pushes "up" when msg.OK holds and "down" otherwise.
func (k UptimeKuma) Ping(ctx context.Context, ppfmt pp.PP, msg Message) bool {
	if msg.OK {
		return k.ping(ctx, ppfmt, UptimeKumaRequest{Status: "up", Msg: "OK", Ping: ""})
	}
	text := msg.Format()
	if text == "" {
		text = "Failing"
	}
	return k.ping(ctx, ppfmt, UptimeKumaRequest{Status: "down", Msg: text, Ping: ""})
}
