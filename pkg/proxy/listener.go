// Package proxy wires the codec, registry, connection state, pipeline,
// and handler packages into a running man-in-the-middle proxy: accepting
// client sockets, bootstrapping each session, and shutting everything
// down cleanly on signal.
package proxy

import (
	"context"
	"net"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/zegevlier/mc-proxy-v2/pkg/config"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/plugin"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/resolve"
)

// acceptRateLimit and acceptBurst bound how fast the listener accepts new
// connections, a defensive measure against connection floods.
const (
	acceptRateLimit = 50 // connections/sec
	acceptBurst     = 100
)

// Listener accepts Minecraft 1.16.5 clients on a configured address and
// spawns a session for each.
type Listener struct {
	cfg      *config.Config
	log      *zap.Logger
	plugins  *plugin.Registry
	resolver *resolve.Resolver
	logDir   string

	ln net.Listener
}

// New constructs a Listener. dnsServer is the upstream resolver used for
// SRV lookups; logDir is where per-connection packet logs
// are written.
func New(cfg *config.Config, log *zap.Logger, plugins *plugin.Registry, dnsServer, logDir string) *Listener {
	return &Listener{
		cfg:      cfg,
		log:      log,
		plugins:  plugins,
		resolver: resolve.New(dnsServer),
		logDir:   logDir,
	}
}

// Run binds the listen address and accepts connections until ctx is
// cancelled. Each accepted connection is handled in its own goroutine.
func (l *Listener) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", l.cfg.ListenAddress)
	if err != nil {
		return err
	}
	l.ln = ln
	l.log.Info("listening", zap.String("address", l.cfg.ListenAddress))

	limiter := rate.NewLimiter(rate.Limit(acceptRateLimit), acceptBurst)

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			l.log.Error("accept failed", zap.Error(err))
			return err
		}

		if err := limiter.Wait(ctx); err != nil {
			_ = conn.Close()
			continue
		}

		s := &session{
			cfg:      l.cfg,
			log:      l.log,
			plugins:  l.plugins,
			resolver: l.resolver,
			logDir:   l.logDir,
		}
		go s.handle(ctx, conn)
	}
}

// Shutdown closes the listening socket, causing Run to return.
func (l *Listener) Shutdown() error {
	if l.ln == nil {
		return nil
	}
	return l.ln.Close()
}
