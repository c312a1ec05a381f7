package handler

import (
	"github.com/zegevlier/mc-proxy-v2/pkg/proto/packet"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/connstate"
)

func init() {
	registerUpdateState(packet.Handshake, func(p packet.Packet, s *connstate.ConnState) {
		hs := p.(*packet.HandshakePacket)
		s.SetState(hs.NextState)
	})
}
