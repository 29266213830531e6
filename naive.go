// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cycle

import (
	"code.hybscloud.com/kont"
)

// Naive detects recurrence by remembering the index of every value seen.
// It consumes one producer or (f, start) and always reports exact Period
// and First. Memory grows with the number of distinct values.
//
// The value that repeats an earlier one is not yielded.
func Naive[V comparable](in Input[V], opts ...Option) (*Cursor[V], error) {
	return newCursor(AlgorithmNaive, in, opts, func(r run[V]) kont.Eff[outcome] {
		w := r.walks(1)[0]
		seen := make(map[V]int, r.cfg.sizeHint)
		return loop(0, func(i int) kont.Eff[kont.Either[int, outcome]] {
			v, ok := w()
			if !ok {
				return finish[int](exhausted())
			}
			r.stats.Compared++
			if j, ok := seen[v]; ok {
				return finish[int](detected(Known(i-j), Known(j), i))
			}
			seen[v] = i
			return yieldNext(v, i+1)
		})
	})
}
