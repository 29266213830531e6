// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cycle

import (
	"code.hybscloud.com/kont"
)

// brentState tracks the walker index, the anchor it is compared to, and
// the current block: lam steps taken since the anchor moved, out of power.
type brentState[V any] struct {
	i      int
	anchor V
	at     int
	power  int
	lam    int
}

// Brent detects recurrence by comparing a single walker against an anchor
// that jumps to the walker whenever the block length reaches the next
// power of two. When they match the block length is the exact period.
//
// It accepts the same inputs as Floyd. With (f, start) it reports exact
// Period and First, computing First with a second pass from the origin;
// with producers both are Unknown and the second producer carries the
// anchor, advanced to the walker at every jump. Every walker value is
// yielded except the one matching the anchor.
func Brent[V comparable](in Input[V], opts ...Option) (*Cursor[V], error) {
	return newCursor(AlgorithmBrent, in, opts, func(r run[V]) kont.Eff[outcome] {
		ws := r.walks(1)
		walker := ws[0]
		var anchor Producer[V]
		if len(ws) > 1 {
			anchor = ws[1]
		}
		return loop(brentState[V]{i: -1}, func(s brentState[V]) kont.Eff[kont.Either[brentState[V], outcome]] {
			v, ok := walker()
			if !ok {
				return finish[brentState[V]](exhausted())
			}
			s.i++
			if s.i == 0 {
				s.anchor, s.power = v, 1
				if anchor != nil {
					s.anchor, _ = anchor()
				}
				return yieldNext(v, s)
			}
			s.lam++
			if r.equal(s.anchor, v) {
				return finish[brentState[V]](r.brent(s.lam, s.i))
			}
			if s.lam == s.power {
				s.anchor = v
				if anchor != nil {
					s.anchor = jump(anchor, s.i-s.at, v)
				}
				s.at, s.power, s.lam = s.i, 2*s.power, 0
			}
			return yieldNext(v, s)
		})
	})
}

// jump advances p by n values and returns the last one, or fallback if p
// ends first.
func jump[V any](p Producer[V], n int, fallback V) V {
	v := fallback
	for range n {
		next, ok := p()
		if !ok {
			return fallback
		}
		v = next
	}
	return v
}

// brent turns a match after a block of period steps, observed at index,
// into the run's outcome.
func (r run[V]) brent(period, index int) outcome {
	if !r.restartable() {
		return detected(Unknown, Unknown, index)
	}
	return detected(Known(period), Known(r.tail(period)), index)
}
