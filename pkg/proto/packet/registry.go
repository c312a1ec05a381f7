package packet

import (
	"github.com/zegevlier/mc-proxy-v2/pkg/proto/state"
)

type registryKey struct {
	Direction Direction
	State     state.State
	ID        int32
}

// idByKind is total: every recognized Kind has exactly one wire id.
var idByKind = map[Kind]int32{
	Handshake:              0x00,
	StatusRequest:          0x00,
	StatusPing:             0x01,
	StatusResponse:         0x00,
	StatusPong:             0x01,
	LoginStart:             0x00,
	EncryptionResponse:     0x01,
	PluginResponse:         0x02,
	Disconnect:             0x00,
	EncryptionRequest:      0x01,
	LoginSuccess:           0x02,
	SetCompression:         0x03,
	PluginRequest:          0x04,
	ChatMessageServerbound: 0x03,
}

// kindByKey is partial: only the (direction, state, id) triples below
// resolve to something other than Unparsable.
var kindByKey = map[registryKey]Kind{
	{Serverbound, state.Handshaking, 0x00}: Handshake,
	{Serverbound, state.Status, 0x00}:       StatusRequest,
	{Serverbound, state.Status, 0x01}:       StatusPing,
	{Clientbound, state.Status, 0x00}:       StatusResponse,
	{Clientbound, state.Status, 0x01}:       StatusPong,
	{Serverbound, state.Login, 0x00}:        LoginStart,
	{Serverbound, state.Login, 0x01}:        EncryptionResponse,
	{Serverbound, state.Login, 0x02}:        PluginResponse,
	{Clientbound, state.Login, 0x00}:        Disconnect,
	{Clientbound, state.Login, 0x01}:        EncryptionRequest,
	{Clientbound, state.Login, 0x02}:        LoginSuccess,
	{Clientbound, state.Login, 0x03}:        SetCompression,
	{Clientbound, state.Login, 0x04}:        PluginRequest,
	{Serverbound, state.Play, 0x03}:         ChatMessageServerbound,
}

// IDOf returns the wire id for a recognized Kind. Unparsable has no id and
// returns ok=false; its frames are always forwarded as raw bytes instead.
func IDOf(kind Kind) (int32, bool) {
	id, ok := idByKind[kind]
	return id, ok
}

// KindOf resolves a wire (direction, state, id) triple to a symbolic Kind,
// or Unparsable if the combination is not in the registry.
func KindOf(direction Direction, st state.State, id int32) Kind {
	if kind, ok := kindByKey[registryKey{direction, st, id}]; ok {
		return kind
	}
	return Unparsable
}

// New returns a freshly zero-valued typed packet for kind, ready to have
// Decode called on it. Returns nil for Unparsable or any kind without a
// concrete Go type (PluginRequest/PluginResponse are the two cases handled
// above as raw-passthrough payloads that still have constructors).
func New(kind Kind) Packet {
	switch kind {
	case Handshake:
		return &HandshakePacket{}
	case StatusRequest:
		return &StatusRequestPacket{}
	case StatusResponse:
		return &StatusResponsePacket{}
	case StatusPing:
		return &StatusPingPacket{}
	case StatusPong:
		return &StatusPongPacket{}
	case LoginStart:
		return &LoginStartPacket{}
	case EncryptionRequest:
		return &EncryptionRequestPacket{}
	case EncryptionResponse:
		return &EncryptionResponsePacket{}
	case LoginSuccess:
		return &LoginSuccessPacket{}
	case SetCompression:
		return &SetCompressionPacket{}
	case PluginRequest:
		return &PluginRequestPacket{}
	case PluginResponse:
		return &PluginResponsePacket{}
	case Disconnect:
		return &DisconnectPacket{}
	case ChatMessageServerbound:
		return &ChatMessageServerboundPacket{}
	default:
		return nil
	}
}
