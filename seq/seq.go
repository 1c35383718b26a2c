// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Seq is the F-bounded interface of a sequence kind.
// S is the concrete sequence type and E its element type.
//
// A sequence kind supplies four primitives and, in exchange, receives every
// algorithm of this package. The zero value of S must be the empty sequence.
// Implementations are immutable: InsertFront and Tail return new sequences
// and never modify the receiver.
type Seq[S Seq[S, E], E any] interface {
	// Head returns the first element. Panics on an empty sequence.
	Head() E
	// Tail returns the sequence without its first element.
	// Panics on an empty sequence.
	Tail() S
	// IsEmpty reports whether the sequence has no elements.
	IsEmpty() bool
	// InsertFront returns a sequence with items prepended in order:
	// items[0] becomes the new head.
	InsertFront(items ...E) S
}

// Backer is an optional fast path for [InsertBack].
// Sequence kinds with cheap appends implement it; others get the
// derived recursive form.
type Backer[S any, E any] interface {
	InsertBack(items ...E) S
}

// Fold is the structural left fold: op(op(op(init, e0), e1), ...).
// An empty sequence returns init unchanged.
func Fold[S Seq[S, E], E, A any](s S, init A, op func(A, E) A) A {
	acc := init
	for !s.IsEmpty() {
		acc = op(acc, s.Head())
		s = s.Tail()
	}
	return acc
}

// Len returns the number of elements in s.
func Len[S Seq[S, E], E any](s S) int {
	return Fold(s, 0, func(n int, _ E) int { return n + 1 })
}

// At returns the element at position i. Panics if i is out of range.
func At[S Seq[S, E], E any](s S, i int) E {
	if i < 0 {
		panic("seq: negative index")
	}
	for ; i > 0; i-- {
		if s.IsEmpty() {
			panic("seq: index out of range")
		}
		s = s.Tail()
	}
	if s.IsEmpty() {
		panic("seq: index out of range")
	}
	return s.Head()
}

// InsertBack returns s with items appended in order.
func InsertBack[S Seq[S, E], E any](s S, items ...E) S {
	if b, ok := any(s).(Backer[S, E]); ok {
		return b.InsertBack(items...)
	}
	if s.IsEmpty() {
		return s.InsertFront(items...)
	}
	return InsertBack(s.Tail(), items...).InsertFront(s.Head())
}

// Concat returns the elements of a followed by the elements of b.
func Concat[S Seq[S, E], E any](a, b S) S {
	return Fold(b, a, func(acc S, e E) S { return InsertBack(acc, e) })
}

// Reverse returns s in reverse order.
// Left fold of InsertFront onto the empty sequence.
func Reverse[S Seq[S, E], E any](s S) S {
	var empty S
	return Fold(s, empty, func(acc S, e E) S { return acc.InsertFront(e) })
}

// Map applies f to every element, preserving order.
// The result kind D is named explicitly: Map[List[string]](xs, f).
func Map[D Seq[D, F], S Seq[S, E], E, F any](s S, f func(E) F) D {
	var empty D
	return Reverse(Fold(s, empty, func(acc D, e E) D { return acc.InsertFront(f(e)) }))
}

// Zip combines a and b pairwise by position.
// The result is as long as the shorter input.
func Zip[D Seq[D, G], S Seq[S, E], T Seq[T, F], E, F, G any](a S, b T, f func(E, F) G) D {
	var out D
	for !a.IsEmpty() && !b.IsEmpty() {
		out = out.InsertFront(f(a.Head(), b.Head()))
		a, b = a.Tail(), b.Tail()
	}
	return Reverse(out)
}

// ZipAll combines any number of sequences of the same kind position by
// position. f receives one element from every input, in input order.
// The result is as long as the shortest input; with no inputs it is empty.
func ZipAll[D Seq[D, G], S Seq[S, E], E, G any](f func([]E) G, seqs ...S) D {
	var out D
	if len(seqs) == 0 {
		return out
	}
	cur := append([]S(nil), seqs...)
	for {
		row := make([]E, len(cur))
		for i, s := range cur {
			if s.IsEmpty() {
				return Reverse(out)
			}
			row[i] = s.Head()
			cur[i] = s.Tail()
		}
		out = out.InsertFront(f(row))
	}
}

// Filter keeps the elements satisfying keep, preserving order.
func Filter[S Seq[S, E], E any](s S, keep func(E) bool) S {
	var empty S
	return Reverse(Fold(s, empty, func(acc S, e E) S {
		if keep(e) {
			return acc.InsertFront(e)
		}
		return acc
	}))
}

// Take returns the first n elements of s.
// Panics if n is negative or exceeds the length of s.
func Take[S Seq[S, E], E any](n int, s S) S {
	prefix, _ := SplitAt(n, s)
	return prefix
}

// Drop returns s without its first n elements.
// Panics if n is negative or exceeds the length of s.
func Drop[S Seq[S, E], E any](n int, s S) S {
	if n < 0 {
		panic("seq: negative count")
	}
	for ; n > 0; n-- {
		if s.IsEmpty() {
			panic("seq: drop beyond sequence length")
		}
		s = s.Tail()
	}
	return s
}

// SplitAt returns the first n elements and the rest.
// Panics if n is negative or exceeds the length of s.
func SplitAt[S Seq[S, E], E any](n int, s S) (S, S) {
	if n < 0 {
		panic("seq: negative count")
	}
	var rev S
	for ; n > 0; n-- {
		if s.IsEmpty() {
			panic("seq: split beyond sequence length")
		}
		rev = rev.InsertFront(s.Head())
		s = s.Tail()
	}
	return Reverse(rev), s
}

// AllOf reports whether every element satisfies pred. True for empty s.
func AllOf[S Seq[S, E], E any](s S, pred func(E) bool) bool {
	return Fold(s, true, func(ok bool, e E) bool { return ok && pred(e) })
}

// AnyOf reports whether some element satisfies pred. False for empty s.
func AnyOf[S Seq[S, E], E any](s S, pred func(E) bool) bool {
	return Fold(s, false, func(ok bool, e E) bool { return ok || pred(e) })
}

// NoneOf reports whether no element satisfies pred.
func NoneOf[S Seq[S, E], E any](s S, pred func(E) bool) bool {
	return !AnyOf(s, pred)
}

// CountIf returns the number of elements satisfying pred.
func CountIf[S Seq[S, E], E any](s S, pred func(E) bool) int {
	return Fold(s, 0, func(n int, e E) int {
		if pred(e) {
			return n + 1
		}
		return n
	})
}

// Largest returns the element with the greatest key.
// On ties the earlier element wins. Panics on an empty sequence.
func Largest[S Seq[S, E], E any](s S, key func(E) uintptr) E {
	if s.IsEmpty() {
		panic("seq: largest of empty sequence")
	}
	return Fold(s.Tail(), s.Head(), func(best, e E) E {
		if key(best) >= key(e) {
			return best
		}
		return e
	})
}

// Collect copies the elements of s into a new slice.
func Collect[S Seq[S, E], E any](s S) []E {
	return Fold(s, []E(nil), func(out []E, e E) []E { return append(out, e) })
}
