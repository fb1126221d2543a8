// Package main is the entry point of the ddnsp update server.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/favonia/ddnsp/internal/backend"
	"github.com/favonia/ddnsp/internal/config"
	"github.com/favonia/ddnsp/internal/droproot"
	"github.com/favonia/ddnsp/internal/hasher"
	"github.com/favonia/ddnsp/internal/metrics"
	"github.com/favonia/ddnsp/internal/monitor"
	"github.com/favonia/ddnsp/internal/pp"
	"github.com/favonia/ddnsp/internal/server"
	"github.com/favonia/ddnsp/internal/signal"
	"github.com/favonia/ddnsp/internal/store"
	"github.com/favonia/ddnsp/internal/updater"
)

// Version is the version of the server that will be shown in the output.
// This is to be overwritten by the linker argument -X main.Version=version.
var Version string //nolint:gochecknoglobals

func formatName() string {
	if Version == "" {
		return "ddnsp"
	}
	return fmt.Sprintf("ddnsp (%s)", Version)
}

func initConfig(ppfmt pp.PP) (*config.Config, bool) {
	c := config.Default()

	if !c.ReadEnv(ppfmt) || !c.Normalize(ppfmt) {
		return c, false
	}

	c.Print(ppfmt)
	return c, true
}

// initServer builds everything behind the HTTP front end. The returned store should be closed.
func initServer(ctx context.Context, ppfmt pp.PP, c *config.Config, r *backend.Registry) (
	*server.Server, store.Store, bool,
) {
	b, err := r.Resolve(ppfmt, c.Backend, c.Settings)
	switch {
	case errors.Is(err, backend.ErrBackendNotFound):
		ppfmt.Noticef(pp.EmojiUserError, "DNS_BACKEND (%q) is not one of %s", c.Backend, pp.EnglishAlternatives(r.IDs()))
		return nil, nil, false
	case err != nil:
		ppfmt.Noticef(pp.EmojiUserError, "Failed to set up the DNS backend %s: %v", c.Backend, err)
		return nil, nil, false
	}

	s, ok := store.Open(ctx, ppfmt, c.Store, c.Database)
	if !ok {
		return nil, nil, false
	}

	var m *metrics.Metrics
	if c.Metrics {
		m = metrics.New()
	}

	uopts := c.UpdaterOptions()
	uopts.Metrics = m
	u := updater.New(s, hasher.NewArgon2(c.Argon2), b, uopts)

	sopts := c.ServerOptions()
	sopts.Metrics = m
	return server.New(ppfmt, u, sopts), s, true
}

func closeStore(ppfmt pp.PP, s store.Store) {
	if err := s.Close(); err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to close the host store: %v", err)
	}
}

func bye(ctx context.Context, ppfmt pp.PP, mon monitor.Monitor, code int, message string) int {
	mon.Exit(ctx, ppfmt, code, message)
	ppfmt.Noticef(pp.EmojiBye, "Bye!")
	return code
}

// serve runs the server until a signal arrives or the server fails.
func serve(ctx context.Context, ppfmt pp.PP, sig signal.Handle, srv *server.Server,
	mon monitor.Monitor, c *config.Config,
) (int, string) {
	serveCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g errgroup.Group
	g.Go(func() error {
		defer cancel()
		return srv.Serve()
	})
	g.Go(func() error {
		monitor.Heartbeat(serveCtx, ppfmt, mon, c.HeartbeatCron, func() monitor.Message {
			return monitor.NewMessagef(true, "Serving on %s", srv.Addr())
		})
		return nil
	})

	mon.Ping(ctx, ppfmt, monitor.NewMessagef(true, "Serving on %s", srv.Addr()))

	if sig.Wait(serveCtx, ppfmt) {
		if err := srv.Shutdown(ctx); err != nil {
			ppfmt.Noticef(pp.EmojiError, "Failed to shut down the server gracefully: %v", err)
		}
	}

	// Serve returns after the shutdown, which in turn stops the heartbeat
	if err := g.Wait(); err != nil {
		ppfmt.Noticef(pp.EmojiError, "The server stopped unexpectedly: %v", err)
		return 1, "Server errors"
	}
	return 0, "Terminated"
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ppfmt, ok := config.SetupPP(os.Stdout)
	if !ok {
		return 1
	}
	if !ppfmt.IsShowing(pp.Info) {
		ppfmt.Noticef(pp.EmojiMute, "Quiet mode enabled")
	}

	// Show the name and the version of the server
	ppfmt.Noticef(pp.EmojiStar, formatName())

	// Catch signals SIGINT and SIGTERM
	sig := signal.Setup()
	defer sig.TearDown()

	ctx := context.Background()

	// Read the config
	c, configOk := initConfig(ppfmt)
	mon := monitor.NewComposed(c.Monitors...)
	// Ping the monitors regardless of whether initConfig succeeded
	mon.Start(ctx, ppfmt, formatName())
	if !configOk {
		return bye(ctx, ppfmt, mon, 1, "Config errors")
	}

	srv, s, ok := initServer(ctx, ppfmt, c, backend.DefaultRegistry())
	if !ok {
		return bye(ctx, ppfmt, mon, 1, "Setup errors")
	}

	// Bind the socket while the privileges are still there
	code, message := 1, "Failed to listen"
	switch {
	case !srv.Listen():
	case !droproot.DropPrivileges(ppfmt):
		message = "Failed to drop privileges"
	default:
		code, message = serve(ctx, ppfmt, sig, srv, mon, c)
	}

	closeStore(ppfmt, s)
	return bye(ctx, ppfmt, mon, code, message)
}
