// Package grpcplugin dials a single out-of-process plugin over gRPC and
// adapts it to plugin.EventHandler, so remote plugins are just another
// entry in the registry.
package grpcplugin

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/zegevlier/mc-proxy-v2/pkg/proto/packet"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/plugin"
)

// callTimeout bounds how long a single OnClientSendMessage round trip may
// take before the registry moves on as if the plugin had no opinion,
// applied per call since gRPC has no channel-wide deadline of its own.
const callTimeout = 50 * time.Millisecond

// Client implements plugin.EventHandler by forwarding chat messages to a
// remote plugin server and translating its response back into the local
// plugin.Response shape.
type Client struct {
	log    *zap.Logger
	conn   *grpc.ClientConn
	client PluginClient
}

// Dial connects to a remote plugin at target (e.g. "localhost:50051").
// A failed dial is not fatal: it degrades to an always-silent plugin
// rather than aborting startup, so one misconfigured plugin can't take
// the whole proxy down.
func Dial(target string, log *zap.Logger) *Client {
	conn, err := grpc.Dial(target, grpc.WithInsecure(), grpc.WithBlock(), grpc.WithTimeout(5*time.Second))
	if err != nil {
		log.Warn("failed to connect to plugin server, disabling it", zap.String("target", target), zap.Error(err))
		return &Client{log: log}
	}
	return &Client{log: log, conn: conn, client: NewPluginClient(conn)}
}

func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// OnMessage satisfies plugin.EventHandler. It returns nil (meaning "no
// opinion, ask the next plugin") whenever the client is unconnected, the
// call errors or times out, or the remote plugin explicitly asks to pass
// ("next": true in the RPC response).
func (c *Client) OnMessage(ctx context.Context, msg *packet.ChatMessageServerboundPacket) *plugin.Response {
	if c.client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := c.client.OnClientSendMessage(ctx, &ClientSendMessage{Message: msg.Message})
	if err != nil {
		c.log.Debug("plugin call failed", zap.Error(err))
		return nil
	}
	if resp.GetNext() {
		return nil
	}

	emissions := make([]packet.Emission, 0, len(resp.GetPackets()))
	for _, p := range resp.GetPackets() {
		dir := packet.Serverbound
		if p.GetDirection() == Direction_CLIENTBOUND {
			dir = packet.Clientbound
		}
		emissions = append(emissions, packet.Emission{
			Packet:    &packet.RawPacket{ID: p.GetPid(), Payload: p.GetData()},
			Direction: dir,
		})
	}

	return &plugin.Response{
		SendOriginal: resp.GetOriginal(),
		Packets:      emissions,
	}
}
