// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cycle

import (
	"math/bits"

	"code.hybscloud.com/kont"
)

// checkpoint is the last value seen at a 1-based position whose
// trailing-zero count equals the checkpoint's slot.
type checkpoint[V any] struct {
	pos   int
	value V
}

// Gosper detects recurrence in one forward pass without restarting.
//
// Slot e of its table holds the most recent value at a 1-based position
// n with e trailing zero bits, so the table never exceeds ⌊log₂ n⌋+1
// slots. Each new value is compared with every slot; the first match is
// exactly one period away from its checkpoint. Gosper consumes one
// producer or (f, start), reports the exact Period, and never First.
//
// The value that matches a checkpoint is not yielded.
func Gosper[V comparable](in Input[V], opts ...Option) (*Cursor[V], error) {
	return newCursor(AlgorithmGosper, in, opts, func(r run[V]) kont.Eff[outcome] {
		w := r.walks(1)[0]
		table := make([]checkpoint[V], 0, bits.UintSize)
		return loop(1, func(n int) kont.Eff[kont.Either[int, outcome]] {
			v, ok := w()
			if !ok {
				return finish[int](exhausted())
			}
			for _, cp := range table {
				if r.equal(cp.value, v) {
					return finish[int](detected(Known(n-cp.pos), Unknown, n-1))
				}
			}
			cp := checkpoint[V]{pos: n, value: v}
			if e := bits.TrailingZeros(uint(n)); e < len(table) {
				table[e] = cp
			} else {
				table = append(table, cp)
			}
			return yieldNext(v, n+1)
		})
	})
}
