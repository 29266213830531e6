// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cycle

import (
	"code.hybscloud.com/kont"
)

// Yield is the effect operation a detector performs for every value it
// passes through. Perform(Yield[V]{Value: v}) suspends the detector until
// the consumer asks for the next value.
type Yield[V any] struct {
	kont.Phantom[struct{}]
	Value V
}

// resumed is the pre-boxed resumption value for Yield,
// avoiding a per-step heap escape of struct{}{}.
var resumed kont.Resumed = struct{}{}
