// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cycle

import (
	"errors"
	"io"

	"code.hybscloud.com/kont"
)

// visitHandler implements kont.Handler for the Yield effect.
// It passes each value to visit and short-circuits the run once visit
// returns false.
// Value type: passed to the evaluation loop on the stack, avoiding heap allocation.
type visitHandler[V comparable] struct {
	visit   func(V) bool
	stats   *Stats
	stopped *bool
}

// Dispatch implements kont.Handler via type assertion on Yield.
func (h visitHandler[V]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	y, ok := op.(Yield[V])
	if !ok {
		panic("cycle: unhandled effect in visitHandler")
	}
	h.stats.Yielded++
	if !h.visit(y.Value) {
		*h.stopped = true
		return kont.Resumed(exhausted()), false
	}
	return resumed, true
}

// Run drives the cursor to its end, calling visit for every value.
// Returning false from visit stops the run, which then behaves as after
// Stop. Run returns nil on exhaustion or stop, and the *CycleDetected
// when recurrence is proven.
//
// On a fresh cursor the detector runs under a single effect handler
// without suspending; a started cursor continues through Next.
func (c *Cursor[V]) Run(visit func(V) bool) error {
	if c.state != cursorFresh {
		for v, err := range c.All() {
			if err != nil {
				return err
			}
			if !visit(v) {
				c.Stop()
				return nil
			}
		}
		return nil
	}
	c.state = cursorRunning
	c.log.Debug("detection started")
	var stopped bool
	h := visitHandler[V]{visit: visit, stats: &c.stats, stopped: &stopped}
	result := kont.Handle(c.body(), h)
	if stopped {
		c.Stop()
		return nil
	}
	if err := c.complete(result); !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
