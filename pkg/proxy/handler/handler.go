// Package handler supplies the per-kind behavior the pipeline dispatches
// to: state transitions, credential interception, and the
// post-send cipher activation. Each kind registers zero or more of three
// hooks against its Kind via init(), keeping the dispatch table open to
// new packet kinds instead of growing a closed type switch.
package handler

import (
	"context"

	"github.com/zegevlier/mc-proxy-v2/pkg/config"
	"github.com/zegevlier/mc-proxy-v2/pkg/proto/packet"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/connstate"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/plugin"
)

// UpdateStateFunc runs synchronously before any editing, given the
// decoded packet and direct access to the live connection state.
type UpdateStateFunc func(p packet.Packet, state *connstate.ConnState)

// EditFunc runs only for kinds that declare themselves editable. It
// receives a snapshot the handler may mutate freely (applied back by the
// caller) plus the plugin registry and static config, and returns nil to
// mean "forward the original packet unchanged" or a (possibly empty)
// emission list to replace it.
type EditFunc func(ctx context.Context, p packet.Packet, state *connstate.Snapshot, plugins *plugin.Registry, cfg *config.Config) ([]packet.Emission, error)

// PostSendFunc runs synchronously after a handled frame's emissions have
// been enqueued, used for cipher activation side effects.
type PostSendFunc func(p packet.Packet, ciphers *connstate.Ciphers, state *connstate.ConnState)

var (
	updateStateHooks = map[packet.Kind]UpdateStateFunc{}
	editHooks        = map[packet.Kind]EditFunc{}
	postSendHooks    = map[packet.Kind]PostSendFunc{}
)

func registerUpdateState(k packet.Kind, f UpdateStateFunc) { updateStateHooks[k] = f }
func registerEdit(k packet.Kind, f EditFunc)                { editHooks[k] = f }
func registerPostSend(k packet.Kind, f PostSendFunc)         { postSendHooks[k] = f }

// IsEditable reports whether kind has an edit hook, i.e. whether the
// pipeline must await it asynchronously rather than just running
// UpdateState inline.
func IsEditable(k packet.Kind) bool {
	_, ok := editHooks[k]
	return ok
}

// RunUpdateState invokes kind's update_state hook if one is registered.
func RunUpdateState(p packet.Packet, state *connstate.ConnState) {
	if f, ok := updateStateHooks[p.Kind()]; ok {
		f(p, state)
	}
}

// RunEdit invokes kind's edit hook if one is registered. Returns
// (nil, nil) for kinds with no edit hook, meaning "forward unchanged".
func RunEdit(ctx context.Context, p packet.Packet, state *connstate.Snapshot, plugins *plugin.Registry, cfg *config.Config) ([]packet.Emission, error) {
	f, ok := editHooks[p.Kind()]
	if !ok {
		return nil, nil
	}
	return f(ctx, p, state, plugins, cfg)
}

// RunPostSend invokes kind's post_send hook if one is registered.
func RunPostSend(p packet.Packet, ciphers *connstate.Ciphers, state *connstate.ConnState) {
	if f, ok := postSendHooks[p.Kind()]; ok {
		f(p, ciphers, state)
	}
}
