// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hetero provides statically typed heterogeneous containers in Go:
// fixed-arity tuples, tagged unions, and the sequence algebra that drives
// both.
//
// # Design Philosophy
//
// Every tuple algorithm is a permutation followed by a gather. Sorting a
// tuple by the size of its slot types, reversing it, or concatenating two
// of them first computes an index sequence from the shape alone, then
// moves the values in one pass. The shape computation lives in package
// seq and never looks at values.
//
//   - Shapes are sequences: [seq.Types] and [seq.Indices] are ordinary
//     sequences with the full algorithm suite
//   - F-bounded sequence kinds: a new kind implements four primitives and
//     gets every derived algorithm by conformance
//   - Shape errors are compile errors where Go can express them (a T3 has
//     no Take4) and generation errors in hetgen where it cannot
//
// # Packages
//
//   - seq: the sequence algebra over [seq.Seq] kinds ([seq.List], [seq.Vec])
//     and type descriptors ([seq.Type])
//   - tuple: [tuple.T0] through [tuple.T6] and their algorithms
//   - variant: [variant.Of1] through [variant.Of6], tagged unions with
//     destroy-before-construct assignment
//   - cmd/hetgen: generates the arity families and shape specializations
//
// # Consuming Operations
//
// Go passes values by copy. Where an operation should consume its input,
// pass [Move] of it: the operation receives the values and the source is
// left zero.
//
//	x := tuple.Of2("a", "b")
//	y := hetero.Move(&x).Reverse() // y == ("b", "a"), x == ("", "")
//
// # Concurrency
//
// Tuples and variants are plain values with no internal synchronization.
// Sharing one between goroutines that mutate it requires external locking.
package hetero
