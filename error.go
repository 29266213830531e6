// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cycle

import (
	"errors"
	"fmt"

	"code.hybscloud.com/kont"
)

// Usage errors. Detectors return them before any value is pulled.
var (
	// ErrNoInput is returned when neither a transition function nor producers are given.
	ErrNoInput = errors.New("cycle: no transition function or producers")

	// ErrConflictingInput is returned when both a transition function and producers are given.
	ErrConflictingInput = errors.New("cycle: transition function and producers are mutually exclusive")

	// ErrProducerCount is returned when the number of producers does not match the algorithm.
	ErrProducerCount = errors.New("cycle: wrong number of producers")

	// ErrNilProducer is returned when one of the producers is nil.
	ErrNilProducer = errors.New("cycle: nil producer")

	// ErrUnknownAlgorithm is returned by Detect for an Algorithm outside the known set.
	ErrUnknownAlgorithm = errors.New("cycle: unknown algorithm")
)

// CycleDetected is the terminal error of a run that proved recurrence.
//
// Period and First are Unknown when the algorithm and input mode cannot
// compute them exactly; see the package documentation for the table.
type CycleDetected struct {
	// Period is the minimal p > 0 with x[i+p] == x[i] for all i >= First.
	Period Length
	// First is the tail length: the index of the first element of the cycle.
	First Length
	// Index is the position of the element whose observation proved recurrence.
	Index int
	// Algorithm is the detector that raised the error.
	Algorithm Algorithm
	// Serial identifies the run.
	Serial Serial
}

// Error implements error.
func (e *CycleDetected) Error() string {
	return fmt.Sprintf("cycle: %s detected recurrence at index %d (period %s, first %s)",
		e.Algorithm, e.Index, e.Period, e.First)
}

// AsCycle reports whether err is a *CycleDetected and returns it.
func AsCycle(err error) (*CycleDetected, bool) {
	var cd *CycleDetected
	if errors.As(err, &cd) {
		return cd, true
	}
	return nil, false
}

// outcome is the result of a detector computation.
// Left carries the recurrence proof, Right marks natural exhaustion.
type outcome = kont.Either[CycleDetected, struct{}]

// detected builds the Left outcome of a run that proved recurrence at index.
func detected(period, first Length, index int) outcome {
	return kont.Left[CycleDetected, struct{}](CycleDetected{Period: period, First: first, Index: index})
}

// exhausted is the Right outcome of a run over a finite sequence.
func exhausted() outcome {
	return kont.Right[CycleDetected](struct{}{})
}
