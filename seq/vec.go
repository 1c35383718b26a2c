// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"fmt"
	"strings"
)

// Vec is a slice-backed sequence with copy-on-write updates.
// Tail is a reslice; InsertFront and InsertBack copy.
// The zero value is the empty sequence.
type Vec[E any] struct {
	xs []E
}

// Indices is the index sequence: positions used to drive gathers.
type Indices = Vec[int]

// Of returns a Vec holding xs in order. xs is copied.
func Of[E any](xs ...E) Vec[E] {
	if len(xs) == 0 {
		return Vec[E]{}
	}
	return Vec[E]{xs: append([]E(nil), xs...)}
}

// Head returns the first element. Panics on an empty sequence.
func (v Vec[E]) Head() E {
	if len(v.xs) == 0 {
		panic("seq: head of empty sequence")
	}
	return v.xs[0]
}

// Tail returns v without its first element. Panics on an empty sequence.
func (v Vec[E]) Tail() Vec[E] {
	if len(v.xs) == 0 {
		panic("seq: tail of empty sequence")
	}
	return Vec[E]{xs: v.xs[1:len(v.xs):len(v.xs)]}
}

// IsEmpty reports whether v has no elements.
func (v Vec[E]) IsEmpty() bool {
	return len(v.xs) == 0
}

// InsertFront returns v with items prepended in order.
func (v Vec[E]) InsertFront(items ...E) Vec[E] {
	out := make([]E, 0, len(items)+len(v.xs))
	out = append(out, items...)
	return Vec[E]{xs: append(out, v.xs...)}
}

// InsertBack returns v with items appended in order.
func (v Vec[E]) InsertBack(items ...E) Vec[E] {
	out := make([]E, 0, len(v.xs)+len(items))
	out = append(out, v.xs...)
	return Vec[E]{xs: append(out, items...)}
}

// Len returns the number of elements in O(1).
func (v Vec[E]) Len() int {
	return len(v.xs)
}

// At returns the element at position i. Panics if i is out of range.
func (v Vec[E]) At(i int) E {
	if i < 0 || i >= len(v.xs) {
		panic(fmt.Sprintf("seq: index %d out of range [0,%d)", i, len(v.xs)))
	}
	return v.xs[i]
}

// All iterates over the positions and elements of v.
func (v Vec[E]) All(yield func(int, E) bool) {
	for i, x := range v.xs {
		if !yield(i, x) {
			return
		}
	}
}

// String formats v as [e0 e1 ...].
func (v Vec[E]) String() string {
	return format(v)
}

func format[S Seq[S, E], E any](s S) string {
	var b strings.Builder
	b.WriteByte('[')
	Fold(s, 0, func(i int, e E) int {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, e)
		return i + 1
	})
	b.WriteByte(']')
	return b.String()
}

// Iota returns the index sequence [0 1 ... n-1].
func Iota(n int) Indices {
	if n < 0 {
		panic("seq: negative count")
	}
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	return Indices{xs: xs}
}

// Replicate returns the index sequence holding n copies of value.
func Replicate(value, n int) Indices {
	if n < 0 {
		panic("seq: negative count")
	}
	xs := make([]int, n)
	for i := range xs {
		xs[i] = value
	}
	return Indices{xs: xs}
}
