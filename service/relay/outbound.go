package relay

import (
	"sync"

	"github.com/pkg/errors"
)

// Frame is one outbound websocket message: the gorilla message type plus
// the payload bytes. The relay never looks inside Data except for the
// Voyager offline-reply path.
type Frame struct {
	MsgType int
	Data    []byte
}

var ErrQueueClosed = errors.New("outbound queue closed")

// Outbound is the per-connection hand-off point between the router and the
// connection's writer goroutine: multi-producer, single-consumer, FIFO,
// unbounded. Unbounded is deliberate — a stalled peer must never block the
// router or other peers' delivery.
//
// Identity matters: the registry compares handles by pointer, never by
// content, so a stale handle from a replaced Horizon is distinguishable
// from its replacement.
type Outbound struct {
	mu     sync.Mutex
	buf    []Frame
	wake   chan struct{}
	closed bool
}

func NewOutbound() *Outbound {
	return &Outbound{wake: make(chan struct{}, 1)}
}

// Push enqueues a frame. It fails only after Close; a failed push means the
// owning connection is gone and the handle should be pruned.
func (q *Outbound) Push(f Frame) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	q.buf = append(q.buf, f)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return nil
}

// Pop blocks until a frame is available or the queue is closed.
// Single consumer only (the connection's writer goroutine).
func (q *Outbound) Pop() (Frame, bool) {
	for {
		q.mu.Lock()
		if q.closed {
			q.mu.Unlock()
			return Frame{}, false
		}
		if len(q.buf) > 0 {
			f := q.buf[0]
			q.buf = q.buf[1:]
			q.mu.Unlock()
			return f, true
		}
		q.mu.Unlock()
		<-q.wake
	}
}

// Close marks the queue dead and wakes the consumer. Idempotent. Frames
// still buffered are dropped; delivery is best-effort by contract.
func (q *Outbound) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Len reports the number of buffered frames. Used by tests.
func (q *Outbound) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf)
}
