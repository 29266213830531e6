// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cycle detects whether a sequence eventually repeats, and if so
// reports its period and, where the algorithm allows, its tail length.
//
// Detectors are effectful computations on [code.hybscloud.com/kont] that
// perform one [Yield] per value they pass through. A [Cursor] steps the
// computation one suspension at a time, so a detector is a lazy stream.
//
// # Inputs
//
//   - Function mode: [FromFunction] with a [Transition] and a start value.
//     The sequence is start, f(start), …; f reports no successor with a
//     false second result, ending the sequence normally.
//   - Producer mode: [FromProducers] with independently constructed
//     [Producer] values of the same sequence. Naive and Gosper take one,
//     Floyd and Brent take two.
//
// Malformed inputs are rejected with a usage error ([ErrNoInput],
// [ErrConflictingInput], [ErrProducerCount], [ErrNilProducer]) before any
// value is pulled.
//
// # Detectors
//
//	Detector  Mode        Period   First    Memory
//	Naive     either      known    known    O(n)
//	Floyd     function    known    known    O(1)
//	Floyd     producers   unknown  unknown  O(1)
//	Brent     function    known    known    O(1)
//	Brent     producers   unknown  unknown  O(1)
//	Gosper    either      known    unknown  O(log n)
//
// [Length] keeps Unknown distinct from Known(0).
//
// # Consuming
//
// [Cursor.Next] returns each value, then io.EOF when the sequence is
// exhausted or a [*CycleDetected] once recurrence is proven. [Cursor.All]
// ranges over the values, [Collect] drains a cursor, and [Cursor.Run]
// drives a fresh cursor under a single effect handler.
//
// # Online feeds
//
// [Feed] carries values from one goroutine to a detector on another over a
// bounded lock-free SPSC queue ([code.hybscloud.com/lfq]); it is non-blocking
// on the offering side ([code.hybscloud.com/iox.ErrWouldBlock]).
//
// # Example
//
//	next := map[int]int{1: 2, 2: 3, 3: 4, 4: 5, 5: 6, 6: 7, 7: 8, 8: 9, 9: 4}
//	f := func(v int) (int, bool) { n, ok := next[v]; return n, ok }
//	c, _ := cycle.Brent(cycle.FromFunction(f, 1))
//	_, err := cycle.Collect(c)
//	if cd, ok := cycle.AsCycle(err); ok {
//		fmt.Println(cd.Period, cd.First) // 6 3
//	}
package cycle
