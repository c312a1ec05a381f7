package proxy

import (
	"bytes"
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/zegevlier/mc-proxy-v2/pkg/config"
	"github.com/zegevlier/mc-proxy-v2/pkg/proto/codec"
	"github.com/zegevlier/mc-proxy-v2/pkg/proto/packet"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/connlog"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/connstate"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/handler"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/plugin"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/queue"
)

// pollTimeout is how long a pipeline's queue pop waits before re-checking
// the shared shutdown flag.
const pollTimeout = 100 * time.Millisecond

// pipeline is one direction's decode/dispatch/encode loop for a single
// connection.
type pipeline struct {
	direction packet.Direction
	in        *queue.ByteQueue
	toServer  *queue.ByteQueue
	toClient  *queue.ByteQueue

	state    *connstate.ConnState
	ciphers  *connstate.Ciphers
	plugins  *plugin.Registry
	cfg      *config.Config
	connLog  *connlog.Logger
	log      *zap.Logger

	decodeBuf bytes.Buffer
}

// run executes the pipeline's main loop until ctx is cancelled or isClosed
// reports true.
func (p *pipeline) run(ctx context.Context, isClosed func() bool) {
	for {
		if ctx.Err() != nil || isClosed() {
			return
		}

		batch, ok := p.in.Pop(pollTimeout)
		if !ok {
			continue
		}

		if p.direction == packet.Clientbound {
			batch = p.ciphers.DecryptClientbound(batch)
		}
		p.decodeBuf.Write(batch)

		for {
			threshold := p.state.CompressionThreshold()
			before := append([]byte(nil), p.decodeBuf.Bytes()...)

			frame, ok, err := codec.ReadFrame(&p.decodeBuf, threshold)
			if err != nil && ok {
				p.log.Debug("dropping frame with malformed header", zap.Error(err))
				continue
			}
			if err != nil {
				p.log.Debug("dropping remainder of batch after decompression failure", zap.Error(err))
				p.decodeBuf.Reset()
				break
			}
			if !ok {
				break
			}

			consumed := len(before) - p.decodeBuf.Len()
			original := before[:consumed]

			p.dispatch(ctx, frame, original)
		}
	}
}

// dispatch resolves, decodes, and handles one frame, then forwards the
// resulting emission(s).
func (p *pipeline) dispatch(ctx context.Context, frame codec.Frame, originalFramed []byte) {
	st := p.state.State()
	kind := packet.KindOf(p.direction, st, frame.PacketID)

	if kind == packet.Unparsable {
		p.forward(packet.Emission{
			Packet:    &packet.RawPacket{ID: frame.PacketID, Payload: frame.Payload},
			Direction: p.direction,
		}, originalFramed, true)
		return
	}

	typed := packet.New(kind)
	if err := typed.Decode(bytes.NewBuffer(frame.Payload)); err != nil {
		p.log.Debug("dropping unparsable frame", zap.Stringer("kind", kind), zap.Error(err))
		return
	}

	if p.connLog != nil && p.cfg.LogsKind(kind.String()) {
		_ = p.connLog.LogPacket(typed)
	}

	handler.RunUpdateState(typed, p.state)

	var emissions []packet.Emission
	if handler.IsEditable(kind) {
		snapshot := p.state.Snapshot()
		result, err := handler.RunEdit(ctx, typed, &snapshot, p.plugins, p.cfg)
		if err != nil {
			// The frame is dropped; the connection itself is not closed here.
			p.log.Error("edit hook failed, dropping frame", zap.Stringer("kind", kind), zap.Error(err))
			return
		}
		p.state.Apply(snapshot)
		if result == nil {
			emissions = []packet.Emission{{Packet: typed, Direction: p.direction}}
		} else {
			emissions = result
		}
	} else {
		emissions = []packet.Emission{{Packet: typed, Direction: p.direction}}
	}

	isOriginalPassthrough := len(emissions) == 1 && emissions[0].Packet == typed && emissions[0].Direction == p.direction
	for _, e := range emissions {
		p.forward(e, originalFramed, isOriginalPassthrough)
	}

	handler.RunPostSend(typed, p.ciphers, p.state)
}

// forward re-frames (or reuses the original framed bytes for an untouched
// pass-through), encrypts if applicable, and enqueues onto the direction's
// output queue.
func (p *pipeline) forward(e packet.Emission, originalFramed []byte, passthrough bool) {
	var wire []byte
	if passthrough {
		wire = originalFramed
	} else {
		var payload bytes.Buffer
		if err := e.Packet.Encode(&payload); err != nil {
			p.log.Debug("dropping emission that failed to encode", zap.Error(err))
			return
		}
		id := frameID(e.Packet)
		wire = codec.WriteFrame(id, payload.Bytes(), p.state.CompressionThreshold())
	}

	if e.Direction == packet.Serverbound {
		p.toServer.Push(p.ciphers.EncryptServerbound(wire))
		return
	}
	p.toClient.Push(wire)
}

// frameID resolves the wire id for a packet being (re-)encoded: either
// its registry id, or the explicit id carried by a RawPacket.
func frameID(p packet.Packet) int32 {
	if raw, ok := p.(*packet.RawPacket); ok {
		return raw.ID
	}
	id, _ := packet.IDOf(p.Kind())
	return id
}
