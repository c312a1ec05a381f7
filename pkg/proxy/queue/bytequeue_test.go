package queue_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/queue"
)

func TestByteQueueFIFOOrder(t *testing.T) {
	q := queue.New()
	q.Push([]byte("a"))
	q.Push([]byte("b"))
	q.Push([]byte("c"))

	for _, want := range []string{"a", "b", "c"} {
		got, ok := q.Pop(time.Second)
		require.True(t, ok)
		assert.Equal(t, want, string(got))
	}
}

func TestByteQueuePopTimesOutWhenEmpty(t *testing.T) {
	q := queue.New()
	_, ok := q.Pop(10 * time.Millisecond)
	assert.False(t, ok)
}

func TestByteQueueConcurrentPushPop(t *testing.T) {
	q := queue.New()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			q.Push([]byte{byte(i)})
		}
		close(done)
	}()

	received := 0
	for received < 100 {
		if _, ok := q.Pop(time.Second); ok {
			received++
		}
	}
	<-done
	assert.Equal(t, 100, received)
}
