// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cycle_test

import (
	"code.hybscloud.com/cycle"
)

// lookup returns the transition of a successor table.
// Keys without an entry have no successor.
func lookup(next map[int]int) cycle.Transition[int] {
	return func(v int) (int, bool) {
		n, ok := next[v]
		return n, ok
	}
}

// terminating is 1→2→…→9 with no successor for 9.
func terminating() cycle.Transition[int] {
	return lookup(map[int]int{1: 2, 2: 3, 3: 4, 4: 5, 5: 6, 6: 7, 7: 8, 8: 9})
}

// looping is 1→2→…→9→4: tail 3, period 6.
func looping() cycle.Transition[int] {
	return lookup(map[int]int{1: 2, 2: 3, 3: 4, 4: 5, 5: 6, 6: 7, 7: 8, 8: 9, 9: 4})
}

// rho returns a producer over 0, 1, …, prefix-1 followed by
// prefix, …, prefix+period-1 repeated forever.
func rho(prefix, period int) cycle.Producer[int] {
	i := 0
	return func() (int, bool) {
		v := i
		if i >= prefix {
			v = prefix + (i-prefix)%period
		}
		i++
		return v, true
	}
}

// rhoTransition is the transition function of rho(prefix, period).
func rhoTransition(prefix, period int) cycle.Transition[int] {
	return func(v int) (int, bool) {
		if v+1 < prefix+period {
			return v + 1, true
		}
		return prefix, true
	}
}

// producerInput returns an Input with as many fresh producers from mk as
// alg consumes.
func producerInput(alg cycle.Algorithm, mk func() cycle.Producer[int]) cycle.Input[int] {
	ps := make([]cycle.Producer[int], alg.Producers())
	for i := range ps {
		ps[i] = mk()
	}
	return cycle.FromProducers(ps...)
}

// counting wraps p and counts the values pulled through it.
func counting(p cycle.Producer[int], n *int) cycle.Producer[int] {
	return func() (int, bool) {
		v, ok := p()
		if ok {
			*n++
		}
		return v, ok
	}
}

// prefix returns the first n values of start, f(start), …
func prefix(f cycle.Transition[int], start, n int) []int {
	out := make([]int, 0, n)
	p := cycle.Iterate(f, start)
	for range n {
		v, ok := p()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// truth walks start, f(start), … with full history and returns the
// sequence up to its first repeat, the tail length and period, and
// whether it repeats at all.
func truth(f cycle.Transition[int], start int) (seq []int, first, period int, cyclic bool) {
	index := make(map[int]int)
	v := start
	for {
		if j, ok := index[v]; ok {
			return seq, j, len(seq) - j, true
		}
		index[v] = len(seq)
		seq = append(seq, v)
		next, ok := f(v)
		if !ok {
			return seq, 0, 0, false
		}
		v = next
	}
}

// ints returns lo, lo+1, …, hi.
func ints(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, v)
	}
	return out
}
