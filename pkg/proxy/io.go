package proxy

import (
	"context"
	"net"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/queue"
)

// receiveBufSize is the chunk size read from the socket per iteration;
// batches are handed whole to the pipeline, which owns re-framing them.
const receiveBufSize = 4096

// receive is one of the two per-connection reader tasks: it reads raw
// bytes off conn and pushes them to out, setting isClosed on EOF or any
// read error -- an ordinary disconnect, not something to log as an error.
func receive(conn net.Conn, out *queue.ByteQueue, isClosed *atomic.Bool, log *zap.Logger) error {
	buf := make([]byte, receiveBufSize)
	for {
		if isClosed.Load() {
			return nil
		}
		n, err := conn.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			out.Push(chunk)
		}
		if err != nil {
			log.Debug("receiver stopping", zap.Error(err))
			isClosed.Store(true)
			return nil
		}
	}
}

// send is one of the two per-connection writer tasks: it drains in and
// writes each batch to conn, polling isClosed via the queue's timeout.
func send(ctx context.Context, conn net.Conn, in *queue.ByteQueue, isClosed *atomic.Bool, log *zap.Logger) error {
	for {
		if ctx.Err() != nil || isClosed.Load() {
			return nil
		}
		batch, ok := in.Pop(pollTimeout)
		if !ok {
			continue
		}
		if _, err := conn.Write(batch); err != nil {
			log.Debug("sender stopping", zap.Error(err))
			isClosed.Store(true)
			return nil
		}
	}
}
