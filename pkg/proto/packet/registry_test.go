package packet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zegevlier/mc-proxy-v2/pkg/proto/packet"
	"github.com/zegevlier/mc-proxy-v2/pkg/proto/state"
)

func TestKindOfKnownCombinations(t *testing.T) {
	cases := []struct {
		dir   packet.Direction
		state state.State
		id    int32
		kind  packet.Kind
	}{
		{packet.Serverbound, state.Handshaking, 0x00, packet.Handshake},
		{packet.Clientbound, state.Login, 0x01, packet.EncryptionRequest},
		{packet.Serverbound, state.Play, 0x03, packet.ChatMessageServerbound},
		{packet.Clientbound, state.Status, 0x01, packet.StatusPong},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, packet.KindOf(tc.dir, tc.state, tc.id))
	}
}

func TestKindOfUnmappedIsUnparsable(t *testing.T) {
	// JoinGame, 0x24, Clientbound Play -- not in the core's registry.
	assert.Equal(t, packet.Unparsable, packet.KindOf(packet.Clientbound, state.Play, 0x24))
}

func TestNewAndEncodeDecodeRoundTrip(t *testing.T) {
	hs := &packet.HandshakePacket{
		ProtocolVersion: 754,
		ServerAddress:   "localhost",
		ServerPort:      25565,
		NextState:       state.Login,
	}
	var buf bytes.Buffer
	require.NoError(t, hs.Encode(&buf))

	decoded := packet.New(packet.Handshake).(*packet.HandshakePacket)
	require.NoError(t, decoded.Decode(&buf))
	assert.Equal(t, hs, decoded)
}

func TestIDOfTotalOverRecognizedKinds(t *testing.T) {
	for _, k := range []packet.Kind{
		packet.Handshake, packet.StatusRequest, packet.StatusPing, packet.StatusResponse,
		packet.StatusPong, packet.LoginStart, packet.EncryptionResponse, packet.PluginResponse,
		packet.Disconnect, packet.EncryptionRequest, packet.LoginSuccess, packet.SetCompression,
		packet.PluginRequest, packet.ChatMessageServerbound,
	} {
		_, ok := packet.IDOf(k)
		assert.True(t, ok, "%s should have a wire id", k)
	}
	_, ok := packet.IDOf(packet.Unparsable)
	assert.False(t, ok)
}
