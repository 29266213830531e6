// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cycle

import "strconv"

// Length is an optional non-negative count.
// The zero value is Unknown, which is distinct from Known(0).
type Length struct {
	n     int
	known bool
}

// Unknown is the Length of a quantity the detector could not compute.
var Unknown Length

// Known returns a computed Length of n.
func Known(n int) Length {
	return Length{n: n, known: true}
}

// Get returns the count and whether it was computed.
func (l Length) Get() (int, bool) {
	return l.n, l.known
}

// IsKnown reports whether the count was computed.
func (l Length) IsKnown() bool {
	return l.known
}

// String returns the decimal count, or "unknown".
func (l Length) String() string {
	if !l.known {
		return "unknown"
	}
	return strconv.Itoa(l.n)
}
