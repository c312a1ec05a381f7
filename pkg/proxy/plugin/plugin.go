// Package plugin defines the single proxy extension point: a chat-message
// interceptor that may suppress, replace, or augment the packets forwarded
// for a chat message.
package plugin

import (
	"context"
	"sync"

	"github.com/zegevlier/mc-proxy-v2/pkg/proto/packet"
)

// Response is what a plugin returns when it wants to act on a message: the
// suppress/keep decision for the original packet, plus zero or more
// synthesized packets tagged with the direction they should travel.
type Response struct {
	SendOriginal bool
	Packets      []packet.Emission
}

// EventHandler is implemented by both local (in-process) and remote
// (e.g. gRPC) plugins. OnMessage returns nil to mean "no opinion, ask the
// next plugin" -- the short-circuit contract that lets any plugin veto or
// replace a message without the rest needing to know about it.
type EventHandler interface {
	OnMessage(ctx context.Context, msg *packet.ChatMessageServerboundPacket) *Response
}

// Registry is the ordered, evaluation-short-circuiting plugin list for one
// proxy instance. It is safe for concurrent use; callers that need to
// invoke plugins across a suspension point should call Snapshot first and
// dispatch against the snapshot, to avoid holding the lock across it.
type Registry struct {
	mu       sync.Mutex
	handlers []EventHandler
}

func NewRegistry(handlers ...EventHandler) *Registry {
	return &Registry{handlers: handlers}
}

// Snapshot returns a shallow copy of the current plugin list, safe to
// range over and dispatch against without the registry's lock held.
func (r *Registry) Snapshot() []EventHandler {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventHandler, len(r.handlers))
	copy(out, r.handlers)
	return out
}

// Replace swaps in a (possibly mutated, e.g. by stateful plugins) copy of
// the plugin list after an editing call completes.
func (r *Registry) Replace(handlers []EventHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = handlers
}

// Dispatch evaluates handlers in order, stopping at (and returning) the
// first non-nil Response. Returns nil if every handler passes.
func Dispatch(ctx context.Context, handlers []EventHandler, msg *packet.ChatMessageServerboundPacket) *Response {
	for _, h := range handlers {
		if resp := h.OnMessage(ctx, msg); resp != nil {
			return resp
		}
	}
	return nil
}
