package handler

import (
	"context"

	"github.com/zegevlier/mc-proxy-v2/pkg/config"
	"github.com/zegevlier/mc-proxy-v2/pkg/proto/packet"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/connstate"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/plugin"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/wsauth"
)

const authFailedReason = `{"text":"Failed to authenticate"}`

func init() {
	registerEdit(packet.LoginStart, editLoginStart)
}

func editLoginStart(ctx context.Context, p packet.Packet, state *connstate.Snapshot, plugins *plugin.Registry, cfg *config.Config) ([]packet.Emission, error) {
	if !cfg.WSEnabled {
		return nil, nil
	}

	ls := p.(*packet.LoginStartPacket)
	client := wsauth.New(cfg.WSURL, cfg.WSSecret)

	result, err := client.Authenticate(ctx, ls.Username, state.ServerIP, state.UserIP)
	if err != nil {
		return disconnectEmission(authFailedReason), nil
	}

	state.AccessToken = result.AccessToken
	state.PlayerUUID = result.UUID
	return nil, nil
}

func disconnectEmission(reason string) []packet.Emission {
	return []packet.Emission{{
		Packet:    &packet.DisconnectPacket{Reason: reason},
		Direction: packet.Clientbound,
	}}
}
