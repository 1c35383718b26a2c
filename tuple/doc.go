// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tuple provides fixed-arity heterogeneous tuples.
//
// [T0] through [T6] hold one exported field per slot (V0, V1, ...). The
// arity family is generated by hetgen; see tuple_gen.go.
//
// # Construction
//
//   - The zero value: every slot zero
//   - [Of3] and friends: one argument per slot
//   - [Transform3] and friends: convert every slot independently
//
// Applied to [hetero.Move], any of these consumes its source: the source
// tuple is left zero in every slot.
//
// # Access
//
//   - By index: the field t.V1, or [GetAt] through the [Tuple] view
//   - By type: [Get], which requires the type to appear exactly once
//
// # Algorithms
//
// Every algorithm computes an index permutation with package seq and then
// gathers the slots it names with [Gather3] and friends:
//
//   - Reverse, DropHead, DropTail, TakeK, DropK, SplitAtK (methods)
//   - [Prepend3], [Append3], [Concat12] and friends (functions); the
//     Concat family includes the empty tuple on either side ([Concat03])
//   - [Replicate3]: copies of one slot, over seq.Replicate
//   - [SortByType]: the permutation sorting slots by their types
//   - [Select]: a checked view through an arbitrary permutation
//   - [Join]: the concatenation of any number of tuples as one view
//   - [ForEach], [Foldl], [Apply3]: traversal
//
// Methods and functions exist only for valid shapes. T0 has no DropHead,
// and T3 has no Take4, so shape errors are compile errors.
//
// # Comparison
//
// [Equal3], [Compare3] and [Less3] compare tuples of one arity slot by slot,
// lexicographically. Compare3 and Less3 need ordered slot types; for
// others, such as bool or nested tuples, [Compare3Func] takes one
// comparison function per slot. [NotEqual], [LessOrEqual], [Greater] and
// [GreaterOrEqual] derive the other operators from either form.
package tuple

//go:generate go run ../cmd/hetgen family tuple --max-arity 6 -o tuple_gen.go
