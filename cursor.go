// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cycle

import (
	"errors"
	"io"
	"iter"
	"log/slog"

	"code.hybscloud.com/kont"
)

// Stats counts the work of a run.
type Stats struct {
	// Yielded is the number of values returned to the consumer.
	Yielded int
	// Pulled is the number of values read from producers or produced by
	// the transition function, across every walk of the run.
	Pulled int
	// Compared is the number of equality checks between sequence values.
	Compared int
}

type cursorState uint8

const (
	cursorFresh cursorState = iota
	cursorRunning
	cursorDone
)

// Cursor is the lazy, single-pass stream of values a detector passes
// through. It is not safe for concurrent use.
//
// Each Next steps the detector to its next Yield suspension. The stream
// ends with io.EOF when the sequence is exhausted, or with a
// *CycleDetected once recurrence is proven. The terminal error repeats
// on every later call.
type Cursor[V comparable] struct {
	alg    Algorithm
	serial Serial
	log    *slog.Logger
	body   func() kont.Eff[outcome]
	susp   *kont.Suspension[outcome]
	state  cursorState
	err    error
	stats  Stats
}

// Algorithm returns the detector driving the cursor.
func (c *Cursor[V]) Algorithm() Algorithm {
	return c.alg
}

// Serial returns the serial number assigned to this run.
func (c *Cursor[V]) Serial() Serial {
	return c.serial
}

// Stats returns the work done so far.
func (c *Cursor[V]) Stats() Stats {
	return c.stats
}

// Next returns the next value of the stream.
// It returns io.EOF once the sequence is exhausted and a *CycleDetected
// once recurrence is proven.
func (c *Cursor[V]) Next() (V, error) {
	var zero V
	var result outcome
	switch c.state {
	case cursorDone:
		return zero, c.err
	case cursorFresh:
		c.state = cursorRunning
		c.log.Debug("detection started")
		result, c.susp = kont.StepExpr(kont.Reify(c.body()))
	default:
		result, c.susp = c.susp.Resume(resumed)
	}
	if c.susp == nil {
		return zero, c.complete(result)
	}
	y, ok := c.susp.Op().(Yield[V])
	if !ok {
		panic("cycle: unhandled effect in Cursor")
	}
	c.stats.Yielded++
	return y.Value, nil
}

// Stop abandons the run. Later calls to Next return io.EOF.
// Stopping a cursor at any point is valid.
func (c *Cursor[V]) Stop() {
	if c.susp != nil {
		c.susp.Discard()
		c.susp = nil
	}
	if c.state != cursorDone {
		c.state = cursorDone
		c.err = io.EOF
		c.log.Debug("detection stopped", slog.Int("yielded", c.stats.Yielded))
	}
}

// All returns an iterator over the remaining values.
// The iterator yields (v, nil) per value. If the run proves recurrence
// it yields a final (zero, *CycleDetected); exhaustion ends it silently.
// Breaking out of the loop leaves the cursor where it stopped.
func (c *Cursor[V]) All() iter.Seq2[V, error] {
	return func(yield func(V, error) bool) {
		for {
			v, err := c.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(v, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Collect drains c. It returns the values passed through and a nil error
// on exhaustion, or the values before recurrence and the *CycleDetected.
func Collect[V comparable](c *Cursor[V]) ([]V, error) {
	var out []V
	for v, err := range c.All() {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

// complete records the terminal outcome of the run.
func (c *Cursor[V]) complete(result outcome) error {
	c.state = cursorDone
	if cd, ok := result.GetLeft(); ok {
		cd.Algorithm = c.alg
		cd.Serial = c.serial
		c.err = &cd
		c.log.Debug("cycle detected",
			slog.String("period", cd.Period.String()),
			slog.String("first", cd.First.String()),
			slog.Int("index", cd.Index),
			slog.Int("yielded", c.stats.Yielded),
		)
		return c.err
	}
	c.err = io.EOF
	c.log.Debug("sequence exhausted", slog.Int("yielded", c.stats.Yielded))
	return c.err
}
