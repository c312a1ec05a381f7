// Package queue implements the four per-connection FIFO byte queues that
// carry raw socket bytes between the receiver/sender/pipeline tasks.
// Each queue is an unbounded FIFO; Pop blocks up to a timeout so callers
// can poll a shutdown flag on expiry rather than hanging forever.
package queue

import (
	"sync"
	"time"

	"github.com/gammazero/deque"
)

// ByteQueue is a lock-free-for-readers-of-the-result, strictly FIFO queue
// of byte slices, backed by github.com/gammazero/deque. Concurrent
// Push/Pop are safe.
type ByteQueue struct {
	mu     sync.Mutex
	buf    deque.Deque
	notify chan struct{}
}

// New returns an empty ByteQueue ready for use.
func New() *ByteQueue {
	return &ByteQueue{notify: make(chan struct{}, 1)}
}

// Push appends b to the back of the queue.
func (q *ByteQueue) Push(b []byte) {
	q.mu.Lock()
	q.buf.PushBack(b)
	q.mu.Unlock()
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Pop removes and returns the front of the queue, blocking up to timeout
// if it is currently empty. ok is false if timeout elapsed with nothing
// pushed.
func (q *ByteQueue) Pop(timeout time.Duration) (b []byte, ok bool) {
	for {
		q.mu.Lock()
		if q.buf.Len() > 0 {
			v := q.buf.PopFront()
			q.mu.Unlock()
			return v.([]byte), true
		}
		q.mu.Unlock()

		timer := time.NewTimer(timeout)
		select {
		case <-q.notify:
			timer.Stop()
			// Loop back around: something was pushed (maybe by another
			// goroutine that already drained it), re-check under lock.
		case <-timer.C:
			return nil, false
		}
	}
}

// Len reports the number of pending byte batches, mostly useful for tests.
func (q *ByteQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Len()
}
