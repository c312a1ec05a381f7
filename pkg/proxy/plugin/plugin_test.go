package plugin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zegevlier/mc-proxy-v2/pkg/proto/packet"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/plugin"
)

type fakePlugin struct {
	called  bool
	respond *plugin.Response
}

func (f *fakePlugin) OnMessage(ctx context.Context, msg *packet.ChatMessageServerboundPacket) *plugin.Response {
	f.called = true
	return f.respond
}

func TestDispatchShortCircuitsOnFirstResponse(t *testing.T) {
	first := &fakePlugin{respond: &plugin.Response{SendOriginal: false}}
	second := &fakePlugin{respond: &plugin.Response{SendOriginal: true}}

	resp := plugin.Dispatch(context.Background(), []plugin.EventHandler{first, second}, &packet.ChatMessageServerboundPacket{Message: "foo"})

	assert.NotNil(t, resp)
	assert.False(t, resp.SendOriginal)
	assert.True(t, first.called)
	assert.False(t, second.called, "plugin k+1 must not be consulted once plugin k responds")
}

func TestDispatchReturnsNilWhenNoPluginResponds(t *testing.T) {
	a := &fakePlugin{respond: nil}
	b := &fakePlugin{respond: nil}
	resp := plugin.Dispatch(context.Background(), []plugin.EventHandler{a, b}, &packet.ChatMessageServerboundPacket{Message: "foo"})
	assert.Nil(t, resp)
	assert.True(t, a.called)
	assert.True(t, b.called)
}

func TestRegistrySnapshotIsIndependentOfReplace(t *testing.T) {
	r := plugin.NewRegistry(&fakePlugin{})
	snap := r.Snapshot()
	assert.Len(t, snap, 1)
	r.Replace([]plugin.EventHandler{&fakePlugin{}, &fakePlugin{}})
	assert.Len(t, snap, 1, "previously taken snapshot must not observe later Replace calls")
	assert.Len(t, r.Snapshot(), 2)
}
