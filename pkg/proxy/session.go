package proxy

import (
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"net"
	"strings"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zegevlier/mc-proxy-v2/pkg/config"
	"github.com/zegevlier/mc-proxy-v2/pkg/proto/codec"
	"github.com/zegevlier/mc-proxy-v2/pkg/proto/packet"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/connlog"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/connstate"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/plugin"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/queue"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/resolve"
)

const upstreamPort = 25565

const connectionIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newConnectionID generates a 30-character alphanumeric id.
func newConnectionID() (string, error) {
	buf := make([]byte, 30)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = connectionIDAlphabet[int(b)%len(connectionIDAlphabet)]
	}
	return string(buf), nil
}

// session owns one accepted client connection for its entire lifetime:
// bootstrap, the four I/O tasks, and the two pipelines.
type session struct {
	cfg      *config.Config
	log      *zap.Logger
	plugins  *plugin.Registry
	resolver *resolve.Resolver
	logDir   string
}

// handle runs the full bootstrap-then-serve sequence for one accepted
// client socket. It always closes clientConn before returning.
func (s *session) handle(ctx context.Context, clientConn net.Conn) {
	defer clientConn.Close()

	connectionID, err := newConnectionID()
	if err != nil {
		s.log.Error("failed to generate connection id", zap.Error(err))
		return
	}
	log := s.log.With(zap.String("connectionID", connectionID))

	clientToProxy := bytes.NewBuffer(nil)
	readBuf := make([]byte, 4096)
	n, err := clientConn.Read(readBuf)
	if err != nil {
		log.Debug("failed to read initial handshake", zap.Error(err))
		return
	}
	clientToProxy.Write(readBuf[:n])

	frame, ok, err := codec.ReadFrame(clientToProxy, 0)
	if err != nil || !ok {
		log.Debug("failed to decode initial handshake frame", zap.Error(err))
		return
	}
	if frame.PacketID != 0 {
		log.Debug("first packet was not a handshake", zap.Int32("packetID", frame.PacketID))
		return
	}

	hs := &packet.HandshakePacket{}
	if err := hs.Decode(bytes.NewBuffer(frame.Payload)); err != nil {
		log.Debug("failed to decode handshake payload", zap.Error(err))
		return
	}

	stripped := strings.TrimSuffix(hs.ServerAddress, s.cfg.DomainSuffix)
	if stripped == hs.ServerAddress {
		log.Debug("server address does not carry the configured suffix", zap.String("serverAddress", hs.ServerAddress))
		return
	}

	resolvedHost := s.resolver.Host(stripped)

	upstreamAddr := fmt.Sprintf("%s:%d", resolvedHost, upstreamPort)
	serverConn, err := net.DialTimeout("tcp", upstreamAddr, 5*time.Second)
	if err != nil {
		log.Debug("failed to connect upstream", zap.String("upstream", upstreamAddr), zap.Error(err))
		return
	}
	defer serverConn.Close()

	log.Info("session established", zap.String("upstream", upstreamAddr))

	rewritten := &packet.HandshakePacket{
		ProtocolVersion: hs.ProtocolVersion,
		ServerAddress:   resolvedHost,
		ServerPort:      upstreamPort,
		NextState:       hs.NextState,
	}
	var rewrittenPayload bytes.Buffer
	_ = rewritten.Encode(&rewrittenPayload)
	rewrittenFrame := codec.WriteFrame(0, rewrittenPayload.Bytes(), 0)

	toServerQueue := queue.New()
	toClientQueue := queue.New()
	clientToProxyQueue := queue.New()
	serverToProxyQueue := queue.New()

	toServerQueue.Push(rewrittenFrame)
	if clientToProxy.Len() > 0 {
		// Bytes the client sent immediately after the handshake (e.g. a
		// coalesced LoginStart) must still transit the serverbound
		// pipeline, not go straight to the server unparsed.
		clientToProxyQueue.Push(append([]byte(nil), clientToProxy.Bytes()...))
	}

	connLog, err := connlog.Open(s.logDir, connectionID)
	if err != nil {
		log.Warn("failed to open per-connection packet log", zap.Error(err))
	} else {
		defer connLog.Close()
	}

	state := connstate.New(s.cfg.PlayerAuthToken, s.cfg.PlayerUUID, resolvedHost, clientAddrHost(clientConn), connectionID)
	state.SetState(hs.NextState)
	ciphers := &connstate.Ciphers{}

	isClosed := atomic.NewBool(false)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return receive(clientConn, clientToProxyQueue, isClosed, log.Named("receiver.client"))
	})
	g.Go(func() error {
		return receive(serverConn, serverToProxyQueue, isClosed, log.Named("receiver.server"))
	})
	g.Go(func() error {
		return send(ctx, serverConn, toServerQueue, isClosed, log.Named("sender.server"))
	})
	g.Go(func() error {
		return send(ctx, clientConn, toClientQueue, isClosed, log.Named("sender.client"))
	})

	sbPipeline := &pipeline{
		direction: packet.Serverbound,
		in:        clientToProxyQueue,
		toServer:  toServerQueue,
		toClient:  toClientQueue,
		state:     state,
		ciphers:   ciphers,
		plugins:   s.plugins,
		cfg:       s.cfg,
		connLog:   connLog,
		log:       log.Named("pipeline.serverbound"),
	}
	cbPipeline := &pipeline{
		direction: packet.Clientbound,
		in:        serverToProxyQueue,
		toServer:  toServerQueue,
		toClient:  toClientQueue,
		state:     state,
		ciphers:   ciphers,
		plugins:   s.plugins,
		cfg:       s.cfg,
		connLog:   connLog,
		log:       log.Named("pipeline.clientbound"),
	}

	g.Go(func() error {
		sbPipeline.run(ctx, isClosed.Load)
		return nil
	})
	g.Go(func() error {
		cbPipeline.run(ctx, isClosed.Load)
		return nil
	})

	_ = g.Wait()
	log.Info("session ended")
}

func clientAddrHost(conn net.Conn) string {
	host, _, err := net.SplitHostPort(conn.RemoteAddr().String())
	if err != nil {
		return conn.RemoteAddr().String()
	}
	return host
}
