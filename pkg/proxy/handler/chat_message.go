package handler

import (
	"context"

	"github.com/zegevlier/mc-proxy-v2/pkg/config"
	"github.com/zegevlier/mc-proxy-v2/pkg/proto/packet"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/connstate"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/plugin"
)

func init() {
	registerEdit(packet.ChatMessageServerbound, editChatMessage)
}

func editChatMessage(ctx context.Context, p packet.Packet, state *connstate.Snapshot, plugins *plugin.Registry, cfg *config.Config) ([]packet.Emission, error) {
	chat := p.(*packet.ChatMessageServerboundPacket)

	snapshot := plugins.Snapshot()
	resp := plugin.Dispatch(ctx, snapshot, chat)
	if resp == nil {
		resp = &plugin.Response{SendOriginal: true}
	}

	emissions := make([]packet.Emission, 0, len(resp.Packets)+1)
	if resp.SendOriginal {
		emissions = append(emissions, packet.Emission{Packet: chat, Direction: packet.Serverbound})
	}
	emissions = append(emissions, resp.Packets...)
	return emissions, nil
}
