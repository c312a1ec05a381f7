package handler

import (
	"github.com/zegevlier/mc-proxy-v2/pkg/proto/packet"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/connstate"
)

func init() {
	registerUpdateState(packet.SetCompression, func(p packet.Packet, s *connstate.ConnState) {
		sc := p.(*packet.SetCompressionPacket)
		s.SetCompressionThreshold(sc.Threshold)
	})
}
