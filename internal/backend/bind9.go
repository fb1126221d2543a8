package backend

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"time"

	"github.com/miekg/dns"

	"github.com/favonia/ddnsp/internal/domain"
	"github.com/favonia/ddnsp/internal/ipnet"
	"github.com/favonia/ddnsp/internal/pp"
)

const (
	// Bind9DefaultPort is the port of the DNS server.
	Bind9DefaultPort = "53"
	// Bind9DefaultNet is the transport of the dynamic updates.
	Bind9DefaultNet = "udp"
	// Bind9DefaultTSIGAlgorithm signs the updates when a TSIG key is set.
	Bind9DefaultTSIGAlgorithm = dns.HmacSHA256
	// Bind9DefaultTimeout bounds each exchange with the server.
	Bind9DefaultTimeout = 10 * time.Second
	// Bind9DefaultTTL is used when the update asks for the default TTL.
	Bind9DefaultTTL = 300

	// tsigFudge is the allowed clock skew in seconds.
	tsigFudge = 300
)

// Bind9 sends RFC 2136 dynamic updates to an authoritative server such as BIND 9.
type Bind9 struct {
	id         string
	server     string
	client     *dns.Client
	tsigName   string // fully qualified; empty when updates are unsigned
	tsigAlg    string
	defaultTTL uint32
}

var _ Backend = (*Bind9)(nil)

// NewBind9Client creates a BIND 9 backend. An empty tsigName sends unsigned updates.
func NewBind9Client(id, server, network, tsigName, tsigSecret, tsigAlg string,
	timeout time.Duration, defaultTTL uint32,
) *Bind9 {
	client := &dns.Client{ //nolint:exhaustruct
		Net:     network,
		Timeout: timeout,
	}

	if tsigName != "" {
		tsigName = dns.Fqdn(tsigName)
		client.TsigSecret = map[string]string{tsigName: tsigSecret}
	}

	return &Bind9{
		id:         id,
		server:     server,
		client:     client,
		tsigName:   tsigName,
		tsigAlg:    dns.Fqdn(tsigAlg),
		defaultTTL: defaultTTL,
	}
}

// NewBind9 reads the settings SERVER, NET, TSIG_NAME, TSIG_SECRET, TSIG_ALGORITHM, TIMEOUT, and DEFAULT_TTL.
func NewBind9(ppfmt pp.PP, id string, s Settings) (Backend, bool) {
	server := s.String("SERVER", "")
	if !s.required(ppfmt, "SERVER", server) {
		return nil, false
	}
	if _, _, err := net.SplitHostPort(server); err != nil {
		server = net.JoinHostPort(server, Bind9DefaultPort)
	}

	network := s.String("NET", Bind9DefaultNet)
	switch network {
	case "udp", "tcp":
	default:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) should be either %q or %q", s.Name("NET"), network, "udp", "tcp")
		return nil, false
	}

	tsigName := s.String("TSIG_NAME", "")
	tsigSecret, ok := s.Secret(ppfmt, "TSIG_SECRET")
	if !ok {
		return nil, false
	}
	switch {
	case tsigName != "" && tsigSecret == "":
		ppfmt.Noticef(pp.EmojiUserError, "%s is set but %s is empty", s.Name("TSIG_NAME"), s.Name("TSIG_SECRET"))
		return nil, false
	case tsigName == "" && tsigSecret != "":
		ppfmt.Noticef(pp.EmojiUserError, "%s is set but %s is empty", s.Name("TSIG_SECRET"), s.Name("TSIG_NAME"))
		return nil, false
	case tsigName == "":
		ppfmt.Noticef(pp.EmojiUserWarning, "Dynamic updates to %s will not be signed; set %s and %s to use TSIG",
			server, s.Name("TSIG_NAME"), s.Name("TSIG_SECRET"))
	}

	tsigAlg := dns.Fqdn(s.String("TSIG_ALGORITHM", Bind9DefaultTSIGAlgorithm))
	switch tsigAlg {
	case dns.HmacSHA1, dns.HmacSHA224, dns.HmacSHA256, dns.HmacSHA384, dns.HmacSHA512:
	default:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a supported TSIG algorithm", s.Name("TSIG_ALGORITHM"), tsigAlg)
		return nil, false
	}

	timeout, ok := s.Duration(ppfmt, "TIMEOUT", Bind9DefaultTimeout)
	if !ok {
		return nil, false
	}

	defaultTTL, ok := s.NonnegInt(ppfmt, "DEFAULT_TTL", Bind9DefaultTTL)
	if !ok {
		return nil, false
	}

	return NewBind9Client(id, server, network, tsigName, tsigSecret, tsigAlg, timeout, uint32(defaultTTL)), true //nolint:gosec
}

// ID returns the registered identifier.
func (b *Bind9) ID() string { return b.id }

// Server returns the address of the DNS server.
func (b *Bind9) Server() string { return b.server }

// newRR builds the A or AAAA record for ip.
func newRR(fqdn string, ip netip.Addr, ttl uint32) (dns.RR, bool) {
	header := dns.RR_Header{Name: fqdn, Rrtype: 0, Class: dns.ClassINET, Ttl: ttl, Rdlength: 0}
	switch ipnet.FromAddr(ip) {
	case ipnet.IP4:
		header.Rrtype = dns.TypeA
		return &dns.A{Hdr: header, A: ip.AsSlice()}, true
	case ipnet.IP6:
		header.Rrtype = dns.TypeAAAA
		return &dns.AAAA{Hdr: header, AAAA: ip.AsSlice()}, true
	default:
		return nil, false
	}
}

// UpdateIP sends one UPDATE message that removes the whole RRset of the type and adds the new record.
func (b *Bind9) UpdateIP(ctx context.Context, ppfmt pp.PP,
	zone domain.FQDN, name string, ip netip.Addr, ttl TTL,
) error {
	ip = ip.Unmap()

	rrTTL := b.defaultTTL
	if ttl != TTLDefault {
		rrTTL = uint32(ttl.Int()) //nolint:gosec
	}

	fqdn := dns.Fqdn(recordName(zone, name))
	rr, ok := newRR(fqdn, ip, rrTTL)
	if !ok {
		return &Error{Backend: b.id, Op: "choosing the record type", Err: fmt.Errorf("invalid address %v", ip)}
	}

	m := new(dns.Msg)
	m.SetUpdate(dns.Fqdn(zone.DNSNameASCII()))
	m.RemoveRRset([]dns.RR{rr})
	m.Insert([]dns.RR{rr})
	if b.tsigName != "" {
		m.SetTsig(b.tsigName, b.tsigAlg, tsigFudge, time.Now().Unix())
	}

	resp, _, err := b.client.ExchangeContext(ctx, m, b.server)
	if err != nil {
		return &Error{Backend: b.id, Op: "sending the update to " + b.server, Err: err}
	}

	if resp.Rcode != dns.RcodeSuccess {
		return &RequestError{Backend: b.id, StatusCode: resp.Rcode, Body: dns.RcodeToString[resp.Rcode]}
	}

	ppfmt.Infof(pp.EmojiUpdateRecord, "Set the %s record of %s to %s",
		ipnet.FromAddr(ip).RecordType(), zone.Join(name).Describe(), ip.String())
	return nil
}
