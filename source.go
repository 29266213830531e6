// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cycle

import (
	"fmt"
	"iter"
)

// Transition is a deterministic state-transition function.
// It returns (next, true) for a successor, or (_, false) when the
// sequence ends at v. The false result is the "no successor" sentinel:
// no value of V carries a reserved meaning.
type Transition[V any] func(v V) (V, bool)

// Producer returns the next value of a sequence, or (_, false) once the
// sequence is exhausted. A Producer is single-pass and keeps returning
// false after exhaustion.
type Producer[V any] func() (V, bool)

// Iterate returns a Producer over start, f(start), f(f(start)), …
// The walk ends when f reports no successor. Each call returns an
// independent walk from start.
func Iterate[V any](f Transition[V], start V) Producer[V] {
	cur, ok, started := start, true, false
	return func() (V, bool) {
		if !ok {
			var zero V
			return zero, false
		}
		if !started {
			started = true
			return cur, true
		}
		next, more := f(cur)
		if !more {
			ok = false
			var zero V
			return zero, false
		}
		cur = next
		return cur, true
	}
}

// Values returns a finite Producer over a copy of vs.
func Values[V any](vs ...V) Producer[V] {
	buf := append([]V(nil), vs...)
	i := 0
	return func() (V, bool) {
		if i >= len(buf) {
			var zero V
			return zero, false
		}
		v := buf[i]
		i++
		return v, true
	}
}

// Pull adapts a range-over-func iterator into a Producer.
// The returned stop function must be called once the Producer is no
// longer needed, as with iter.Pull.
func Pull[V any](seq iter.Seq[V]) (Producer[V], func()) {
	next, stop := iter.Pull(seq)
	return Producer[V](next), stop
}

// mode tags the two mutually exclusive input forms.
type mode uint8

const (
	modeFunction mode = iota + 1
	modeProducers
)

func (m mode) String() string {
	switch m {
	case modeFunction:
		return "function"
	case modeProducers:
		return "producers"
	default:
		return "invalid"
	}
}

// Input selects the sequence a detector walks: either a Transition
// with its Start value, or raw Producers. Setting both is a usage error.
//
// Use FromFunction or FromProducers to build an Input.
type Input[V comparable] struct {
	Transition Transition[V]
	Start      V
	Producers  []Producer[V]
}

// FromFunction returns an Input walking start, f(start), …
// Detectors built from it can restart the walk and so report exact
// period and tail length where the algorithm allows.
func FromFunction[V comparable](f Transition[V], start V) Input[V] {
	return Input[V]{Transition: f, Start: start}
}

// FromProducers returns an Input over independently constructed
// producers of the same logical sequence.
func FromProducers[V comparable](ps ...Producer[V]) Input[V] {
	return Input[V]{Producers: ps}
}

// mode validates in against the number of producers an algorithm needs.
func (in Input[V]) mode(alg Algorithm) (mode, error) {
	hasFunc := in.Transition != nil
	hasProducers := len(in.Producers) > 0
	switch {
	case hasFunc && hasProducers:
		return 0, fmt.Errorf("%w: %s got a transition function and %d producers", ErrConflictingInput, alg, len(in.Producers))
	case hasFunc:
		return modeFunction, nil
	case !hasProducers:
		return 0, fmt.Errorf("%w: %s", ErrNoInput, alg)
	}
	if want := alg.Producers(); len(in.Producers) != want {
		return 0, fmt.Errorf("%w: %s needs %d, got %d", ErrProducerCount, alg, want, len(in.Producers))
	}
	for i, p := range in.Producers {
		if p == nil {
			return 0, fmt.Errorf("%w: %s producer %d", ErrNilProducer, alg, i)
		}
	}
	return modeProducers, nil
}

// walks returns the n walks a detector consumes: fresh Iterate walks in
// function mode, the caller's producers otherwise.
func (in Input[V]) walks(m mode, n int) []Producer[V] {
	if m == modeProducers {
		return in.Producers
	}
	ws := make([]Producer[V], n)
	for i := range ws {
		ws[i] = Iterate(in.Transition, in.Start)
	}
	return ws
}
