// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cycle

import (
	"code.hybscloud.com/kont"
)

// floydState is the position of the tortoise.
// draining is set once the hare ran off the end of the sequence.
type floydState struct {
	i        int
	draining bool
}

// Floyd detects recurrence with a tortoise stepping once and a hare
// stepping twice per round; the walks meet only inside a cycle.
//
// It consumes (f, start), from which it builds both walks, or two
// independently constructed producers of the same sequence. Every
// tortoise value is yielded. With (f, start) the meeting point is
// followed up to report exact Period and First; with producers both are
// Unknown.
func Floyd[V comparable](in Input[V], opts ...Option) (*Cursor[V], error) {
	return newCursor(AlgorithmFloyd, in, opts, func(r run[V]) kont.Eff[outcome] {
		ws := r.walks(2)
		tortoise, hare := ws[0], ws[1]
		return loop(floydState{i: -1}, func(s floydState) kont.Eff[kont.Either[floydState, outcome]] {
			if s.i < 0 {
				v, ok := tortoise()
				if !ok {
					return finish[floydState](exhausted())
				}
				hare()
				return yieldNext(v, floydState{i: 0})
			}
			var hv V
			ok := !s.draining
			if ok {
				if _, ok = hare(); ok {
					hv, ok = hare()
				}
			}
			tv, more := tortoise()
			if !more {
				return finish[floydState](exhausted())
			}
			s.i++
			if !ok {
				s.draining = true
				return yieldNext(tv, s)
			}
			if r.equal(tv, hv) {
				return yieldThen(tv, finish[floydState](r.floyd(tv, 2*s.i)))
			}
			return yieldNext(tv, s)
		})
	})
}

// floyd turns a tortoise/hare meeting on value meet, observed by the
// hare at index, into the run's outcome.
func (r run[V]) floyd(meet V, index int) outcome {
	if !r.restartable() {
		return detected(Unknown, Unknown, index)
	}
	a, b := r.in.Start, meet
	first := 0
	for !r.equal(a, b) {
		a, b = r.apply(a), r.apply(b)
		first++
	}
	period := 1
	for b = r.apply(a); !r.equal(a, b); b = r.apply(b) {
		period++
	}
	return detected(Known(period), Known(first), index)
}
