// Package server exposes the updater over the DynDNS2 HTTP protocol.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/favonia/ddnsp/internal/metrics"
	"github.com/favonia/ddnsp/internal/pp"
	"github.com/favonia/ddnsp/internal/response"
	"github.com/favonia/ddnsp/internal/validator"
)

//go:generate mockgen -destination=../mocks/mock_updater.go -package=mocks . Updater

// Updater answers one update request.
type Updater interface {
	Update(ctx context.Context, ppfmt pp.PP, req validator.Request) response.Response
}

const (
	DefaultListen            = ":8000"
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultShutdownTimeout   = 5 * time.Second

	// Welcome is the body of the root page.
	Welcome = "Welcome to ddnsp - Personal Self-Hosted Dynamic DNS"
)

// Options configure a [Server].
type Options struct {
	Listen   string
	CertFile string // TLS is used when both CertFile and KeyFile are set
	KeyFile  string
	Metrics  *metrics.Metrics // nil disables /metrics
}

// Server is the HTTP front end.
type Server struct {
	ppfmt    pp.PP
	updater  Updater
	opts     Options
	server   *http.Server
	listener net.Listener
}

// New creates a server. Call [Server.Listen] and then [Server.Serve] to start it.
func New(ppfmt pp.PP, u Updater, opts Options) *Server {
	if opts.Listen == "" {
		opts.Listen = DefaultListen
	}
	s := &Server{ppfmt: ppfmt, updater: u, opts: opts, server: nil, listener: nil}
	s.server = &http.Server{ //nolint:exhaustruct
		Handler:           s.Handler(),
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
	}
	return s
}

// TLS tells whether the server speaks HTTPS.
func (s *Server) TLS() bool {
	return s.opts.CertFile != "" && s.opts.KeyFile != ""
}

// Handler routes the requests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handleWelcome)
	for _, path := range [...]string{"/update", "/nic/update"} {
		mux.HandleFunc("GET "+path, s.handleUpdate)
		mux.HandleFunc("POST "+path, s.handleUpdate)
	}
	if s.opts.Metrics != nil {
		mux.Handle("GET /metrics", s.opts.Metrics.Handler())
	}

	return mux
}

// Listen binds the listening socket. It should be called before dropping privileges.
func (s *Server) Listen() bool {
	l, err := net.Listen("tcp", s.opts.Listen)
	if err != nil {
		s.ppfmt.Noticef(pp.EmojiError, "Failed to listen on %s: %v", s.opts.Listen, err)
		return false
	}
	s.listener = l

	scheme := "http"
	if s.TLS() {
		scheme = "https"
	}
	s.ppfmt.Noticef(pp.EmojiInternet, "Listening on %s://%s", scheme, l.Addr())
	if !s.TLS() {
		s.ppfmt.NoticeOncef(pp.MessagePlainHTTP, pp.EmojiHint,
			"Passwords travel in cleartext over plain HTTP; set TLS_CERT_FILE and TLS_KEY_FILE or put a TLS proxy in front")
	}
	return true
}

// Addr returns the bound address, or nil before [Server.Listen].
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve blocks until the server is shut down. A graceful shutdown is not an error.
func (s *Server) Serve() error {
	if s.listener == nil {
		return errors.New("server is not listening")
	}

	var err error
	if s.TLS() {
		err = s.server.ServeTLS(s.listener, s.opts.CertFile, s.opts.KeyFile)
	} else {
		err = s.server.Serve(s.listener)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("serving on %s: %w", s.opts.Listen, err)
}

// Shutdown stops accepting requests and waits for the pending ones.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func writeText(w http.ResponseWriter, line string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, line+"\n")
}

func handleWelcome(w http.ResponseWriter, _ *http.Request) {
	writeText(w, Welcome)
}

// remoteHost strips the port from a peer address.
func remoteHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ppfmt := pp.NewQueued(s.ppfmt)
	defer ppfmt.Flush()

	username, password, ok := r.BasicAuth()
	if !ok {
		username, password = r.FormValue("username"), r.FormValue("password")
		if username != "" || password != "" {
			ppfmt.NoticeOncef(pp.MessageCredentialsInQuery, pp.EmojiUserWarning,
				"A client sent its credentials as query parameters; prefer HTTP basic authentication")
		}
	}

	ip := r.FormValue("myip")
	if ip == "" {
		ip = remoteHost(r.RemoteAddr)
	}

	hostname := r.FormValue("hostname")
	ppfmt.Infof(pp.EmojiRequest, "Received a request for %q from %s", hostname, r.RemoteAddr)

	resp := s.updater.Update(r.Context(), ppfmt, validator.Request{
		Username: username,
		Password: password,
		Hostname: hostname,
		IP:       ip,
	})
	writeText(w, resp.String())
}
