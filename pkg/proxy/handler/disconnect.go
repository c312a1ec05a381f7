package handler

import (
	"github.com/zegevlier/mc-proxy-v2/pkg/proto/packet"
	"github.com/zegevlier/mc-proxy-v2/pkg/proto/state"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/connstate"
)

func init() {
	registerUpdateState(packet.Disconnect, func(p packet.Packet, s *connstate.ConnState) {
		s.SetState(state.Handshaking)
	})
}
