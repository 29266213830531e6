// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cycle

import (
	"errors"
	"math/bits"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// ErrFeedClosed is returned when offering to a closed Feed.
var ErrFeedClosed = errors.New("cycle: feed closed")

// Feed streams values observed by one goroutine into a detector running
// on another. Transport is a bounded lock-free SPSC queue from lfq:
// exactly one goroutine may Offer, Send and Close, and exactly one may
// pull from the Producer.
type Feed[V any] struct {
	q      lfq.SPSC[V]
	closed atomix.Uint32
	slot   V
}

// NewFeed creates a Feed holding up to capacity pending values, rounded
// up to a power of two. It panics if capacity is not positive.
func NewFeed[V any](capacity int) *Feed[V] {
	if capacity <= 0 {
		panic("cycle: feed capacity must be positive")
	}
	f := &Feed[V]{}
	f.q.Init(1 << bits.Len(uint(capacity-1)))
	return f
}

// Offer enqueues v without blocking.
// It returns iox.ErrWouldBlock when the queue is full and ErrFeedClosed
// after Close.
func (f *Feed[V]) Offer(v V) error {
	if f.closed.Load() != 0 {
		return ErrFeedClosed
	}
	f.slot = v
	return f.q.Enqueue(&f.slot)
}

// Send enqueues v, backing off with iox.Backoff while the queue is full.
func (f *Feed[V]) Send(v V) error {
	var bo iox.Backoff
	for {
		err := f.Offer(v)
		if !iox.IsWouldBlock(err) {
			return err
		}
		bo.Wait()
	}
}

// Close ends the sequence. Values already enqueued are still delivered.
func (f *Feed[V]) Close() {
	f.closed.Add(1)
}

// Producer returns the consuming side of the feed.
// It waits past iox.ErrWouldBlock with adaptive backoff and reports
// exhaustion once the feed is closed and drained.
func (f *Feed[V]) Producer() Producer[V] {
	return func() (V, bool) {
		var bo iox.Backoff
		for {
			v, err := f.q.Dequeue()
			if err == nil {
				return v, true
			}
			if f.closed.Load() != 0 {
				// Values enqueued before Close.
				if v, err = f.q.Dequeue(); err == nil {
					return v, true
				}
				var zero V
				return zero, false
			}
			bo.Wait()
		}
	}
}
