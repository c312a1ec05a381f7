package handler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zegevlier/mc-proxy-v2/pkg/config"
	"github.com/zegevlier/mc-proxy-v2/pkg/proto/packet"
	"github.com/zegevlier/mc-proxy-v2/pkg/proto/state"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/connstate"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/handler"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/plugin"
)

func TestHandshakeSetsNextState(t *testing.T) {
	cs := connstate.New("", "", "", "", "conn")
	handler.RunUpdateState(&packet.HandshakePacket{NextState: state.Login}, cs)
	assert.Equal(t, state.Login, cs.State())
}

func TestDisconnectAndStatusPongReturnToHandshaking(t *testing.T) {
	cs := connstate.New("", "", "", "", "conn")
	cs.SetState(state.Login)
	handler.RunUpdateState(&packet.DisconnectPacket{}, cs)
	assert.Equal(t, state.Handshaking, cs.State())

	cs.SetState(state.Status)
	handler.RunUpdateState(&packet.StatusPongPacket{}, cs)
	assert.Equal(t, state.Handshaking, cs.State())
}

func TestLoginSuccessMovesToPlay(t *testing.T) {
	cs := connstate.New("", "", "", "", "conn")
	handler.RunUpdateState(&packet.LoginSuccessPacket{}, cs)
	assert.Equal(t, state.Play, cs.State())
}

func TestSetCompressionUpdatesThreshold(t *testing.T) {
	cs := connstate.New("", "", "", "", "conn")
	handler.RunUpdateState(&packet.SetCompressionPacket{Threshold: 256}, cs)
	assert.EqualValues(t, 256, cs.CompressionThreshold())
}

func TestLoginStartSkipsAuthWhenWSDisabled(t *testing.T) {
	cs := connstate.New("token", "uuid", "server", "1.2.3.4", "conn").Snapshot()
	cfg := &config.Config{WSEnabled: false}
	emissions, err := handler.RunEdit(context.Background(), &packet.LoginStartPacket{Username: "Steve"}, &cs, plugin.NewRegistry(), cfg)
	require.NoError(t, err)
	assert.Nil(t, emissions)
}

func TestChatMessagePassesThroughWithNoPlugins(t *testing.T) {
	cs := connstate.New("", "", "", "", "conn").Snapshot()
	registry := plugin.NewRegistry()
	chat := &packet.ChatMessageServerboundPacket{Message: "hi"}
	emissions, err := handler.RunEdit(context.Background(), chat, &cs, registry, &config.Config{})
	require.NoError(t, err)
	require.Len(t, emissions, 1)
	assert.Same(t, chat, emissions[0].Packet)
	assert.Equal(t, packet.Serverbound, emissions[0].Direction)
}

type suppressingPlugin struct{}

func (suppressingPlugin) OnMessage(ctx context.Context, msg *packet.ChatMessageServerboundPacket) *plugin.Response {
	return &plugin.Response{
		SendOriginal: false,
		Packets: []packet.Emission{{
			Packet:    &packet.ChatMessageServerboundPacket{Message: "hi"},
			Direction: packet.Serverbound,
		}},
	}
}

func TestChatMessagePluginSuppressesOriginal(t *testing.T) {
	cs := connstate.New("", "", "", "", "conn").Snapshot()
	registry := plugin.NewRegistry(suppressingPlugin{})
	chat := &packet.ChatMessageServerboundPacket{Message: "foo"}
	emissions, err := handler.RunEdit(context.Background(), chat, &cs, registry, &config.Config{})
	require.NoError(t, err)
	require.Len(t, emissions, 1)
	assert.Equal(t, "hi", emissions[0].Packet.(*packet.ChatMessageServerboundPacket).Message)
}
