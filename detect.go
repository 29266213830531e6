// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cycle

import (
	"fmt"
	"log/slog"

	"code.hybscloud.com/kont"
)

// Algorithm selects a detector.
type Algorithm uint8

// Detectors, in the order of the memory they retain.
const (
	// AlgorithmNaive keeps the full history. Exact, O(n) memory.
	AlgorithmNaive Algorithm = iota + 1
	// AlgorithmFloyd walks a tortoise and a hare. O(1) memory.
	AlgorithmFloyd
	// AlgorithmBrent compares against an anchor moved at power-of-two steps. O(1) memory.
	AlgorithmBrent
	// AlgorithmGosper keeps a checkpoint table. Period only, O(log n) memory.
	AlgorithmGosper
)

// Algorithms lists every Algorithm.
var Algorithms = []Algorithm{AlgorithmNaive, AlgorithmFloyd, AlgorithmBrent, AlgorithmGosper}

func (a Algorithm) String() string {
	switch a {
	case AlgorithmNaive:
		return "naive"
	case AlgorithmFloyd:
		return "floyd"
	case AlgorithmBrent:
		return "brent"
	case AlgorithmGosper:
		return "gosper"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// Producers returns the number of producers the algorithm consumes in
// producer mode.
func (a Algorithm) Producers() int {
	switch a {
	case AlgorithmFloyd, AlgorithmBrent:
		return 2
	default:
		return 1
	}
}

// Detect runs the detector selected by alg.
// It returns ErrUnknownAlgorithm for an Algorithm outside Algorithms.
func Detect[V comparable](alg Algorithm, in Input[V], opts ...Option) (*Cursor[V], error) {
	switch alg {
	case AlgorithmNaive:
		return Naive(in, opts...)
	case AlgorithmFloyd:
		return Floyd(in, opts...)
	case AlgorithmBrent:
		return Brent(in, opts...)
	case AlgorithmGosper:
		return Gosper(in, opts...)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
}

// run is the per-run context handed to a detector body.
// It owns the walks and counts every pull and comparison into stats.
type run[V comparable] struct {
	in    Input[V]
	mode  mode
	cfg   config
	stats *Stats
}

// restartable reports whether the sequence can be walked again from
// its origin, which is what exact period and tail length need.
func (r run[V]) restartable() bool {
	return r.mode == modeFunction
}

// walks returns counted walks over the sequence: n fresh walks from
// (f, start), or every producer of the input.
func (r run[V]) walks(n int) []Producer[V] {
	ws := r.in.walks(r.mode, n)
	counted := make([]Producer[V], len(ws))
	for i, w := range ws {
		counted[i] = func() (V, bool) {
			v, ok := w()
			if ok {
				r.stats.Pulled++
			}
			return v, ok
		}
	}
	return counted
}

// apply steps v once through the transition function.
// Only called on values of a proven cycle or its tail, which always
// have a successor.
func (r run[V]) apply(v V) V {
	r.stats.Pulled++
	next, _ := r.in.Transition(v)
	return next
}

// advance steps v n times through the transition function.
func (r run[V]) advance(v V, n int) V {
	for range n {
		v = r.apply(v)
	}
	return v
}

// equal compares two sequence values.
func (r run[V]) equal(a, b V) bool {
	r.stats.Compared++
	return a == b
}

// tail returns the index of the first element of the cycle, given the
// cycle's period: one pointer starts at the origin, the other period
// steps ahead, and both step until they meet.
func (r run[V]) tail(period int) int {
	a := r.in.Start
	b := r.advance(a, period)
	mu := 0
	for !r.equal(a, b) {
		a, b = r.apply(a), r.apply(b)
		mu++
	}
	return mu
}

// newCursor validates in for alg and returns a cursor whose body is
// built lazily on the first pull.
func newCursor[V comparable](alg Algorithm, in Input[V], opts []Option, body func(r run[V]) kont.Eff[outcome]) (*Cursor[V], error) {
	m, err := in.mode(alg)
	if err != nil {
		return nil, err
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	serial := nextSerial()
	c := &Cursor[V]{
		alg:    alg,
		serial: serial,
		log: cfg.logger.With(
			slog.String("algorithm", alg.String()),
			slog.Uint64("serial", uint64(serial)),
			slog.String("mode", m.String()),
		),
	}
	r := run[V]{in: in, mode: m, cfg: cfg, stats: &c.stats}
	c.body = func() kont.Eff[outcome] { return body(r) }
	return c, nil
}
