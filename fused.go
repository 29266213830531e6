// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cycle

import (
	"code.hybscloud.com/kont"
)

// yieldThen yields v and then continues with next.
// Fuses Perform(Yield[V]{Value: v}) + Then.
func yieldThen[V, B any](v V, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Yield[V]{Value: v}), next)
}

// yieldNext yields v and continues the loop with state s.
// Fuses yieldThen + Pure(Left(s)).
func yieldNext[V, S any](v V, s S) kont.Eff[kont.Either[S, outcome]] {
	return yieldThen(v, kont.Pure(kont.Left[S, outcome](s)))
}

// finish ends the loop with o.
// Fuses Pure(Right(o)).
func finish[S any](o outcome) kont.Eff[kont.Either[S, outcome]] {
	return kont.Pure(kont.Right[S](o))
}
