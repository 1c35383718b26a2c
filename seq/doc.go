// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package seq is a closed algebra over ordered, fixed-length sequences.
//
// A sequence kind implements the F-bounded [Seq] interface with four
// primitives (Head, Tail, IsEmpty, InsertFront) and a zero value that is the
// empty sequence. Every other operation is derived from those primitives
// and [Fold], so a new kind gets the whole suite by conformance:
//
//   - Construction: [Of], [ListOf], [Iota], [Replicate]
//   - Structure: [InsertBack], [Concat], [Reverse], [Take], [Drop], [SplitAt]
//   - Traversal: [Fold], [Map], [Zip], [ZipAll], [Filter], [Collect]
//   - Queries: [Len], [At], [IndexOf], [IsMember], [AllOf], [AnyOf],
//     [NoneOf], [CountIf], [Largest]
//   - Ordering: [InsertSorted], [InsertionSortBy], [SortIndices], [MakeSet]
//
// Two kinds ship with the package: [List], a persistent cons list, and
// [Vec], a copy-on-write slice that also provides the [Backer] fast path.
//
// Sequences are shapes. [Types] holds [Type] descriptors of Go types and
// [Indices] holds positions; the tuple and variant packages, and the hetgen
// generator, compute permutations over them before gathering values.
//
// Misuse that depends only on the shape (taking more elements than exist,
// indexing out of range) panics with a "seq:" message. Such errors are
// programming errors, not conditions to handle.
package seq
