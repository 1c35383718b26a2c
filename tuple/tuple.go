// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tuple

import (
	"fmt"
	"strings"

	"code.hybscloud.com/hetero/seq"
)

// Tuple is the positional view shared by every arity.
// Len and Types depend only on the tuple's type; At reads slot i.
type Tuple interface {
	Len() int
	At(i int) any
	Types() seq.Types
}

// slot reads slot i of src as a T.
// A nil slot yields the zero T, which covers interface-typed slots.
func slot[T any](src Tuple, i int) T {
	v := src.At(i)
	if v == nil {
		var zero T
		return zero
	}
	x, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("tuple: slot %d holds %T, not %s", i, v, seq.TypeOf[T]()))
	}
	return x
}

func checkPerm(perm seq.Indices, n int) {
	if perm.Len() != n {
		panic(fmt.Sprintf("tuple: permutation of length %d gathered into arity %d", perm.Len(), n))
	}
}

func outOfRange(i, n int) string {
	return fmt.Sprintf("tuple: index %d out of range [0,%d)", i, n)
}

// GetAt returns slot i of t as a T.
// Panics if i is out of range or slot i does not hold a T.
func GetAt[T any](t Tuple, i int) T {
	return slot[T](t, i)
}

// Get returns the slot of type T.
// Panics unless T appears exactly once in the shape of t.
func Get[T any](t Tuple) T {
	want := seq.TypeOf[T]()
	types := t.Types()
	if n := seq.CountIf(types, func(x seq.Type) bool { return x == want }); n != 1 {
		panic(fmt.Sprintf("tuple: type %s appears %d times in %s", want, n, types))
	}
	return slot[T](t, seq.IndexOf(types, want))
}

// ForEach calls f once per slot, left to right.
func ForEach(t Tuple, f func(i int, v any)) {
	seq.Fold(seq.Iota(t.Len()), struct{}{}, func(_ struct{}, i int) struct{} {
		f(i, t.At(i))
		return struct{}{}
	})
}

// Foldl folds the slots of t from the left: op(op(init, v0), v1)...
// The empty tuple returns init.
func Foldl[R any](t Tuple, init R, op func(R, any) R) R {
	return seq.Fold(seq.Iota(t.Len()), init, func(acc R, i int) R {
		return op(acc, t.At(i))
	})
}

// Format renders t as (e0, e1, ..., en).
func Format(t Tuple) string {
	var b strings.Builder
	b.WriteByte('(')
	ForEach(t, func(i int, v any) {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	})
	b.WriteByte(')')
	return b.String()
}

// SortByType returns the permutation that stably sorts the slots of t by
// their types. Gathering through it yields the type-sorted tuple:
//
//	t := Of3[int32, byte, float64](2, '1', 3.0)
//	s := Gather3[byte, int32, float64](t, SortByType(t, seq.SmallerThan))
func SortByType(t Tuple, less func(a, b seq.Type) bool) seq.Indices {
	return seq.SortIndices(t.Types(), less)
}

// Join returns the concatenation of ts as one Tuple view.
// More than two tuples are joined pairwise from the left.
func Join(ts ...Tuple) Tuple {
	if len(ts) == 0 {
		return T0{}
	}
	out := ts[0]
	for _, t := range ts[1:] {
		out = joined{a: out, b: t}
	}
	return out
}

type joined struct {
	a, b Tuple
}

func (j joined) Len() int { return j.a.Len() + j.b.Len() }

func (j joined) At(i int) any {
	if n := j.a.Len(); i >= n {
		return j.b.At(i - n)
	}
	return j.a.At(i)
}

func (j joined) Types() seq.Types { return seq.Concat(j.a.Types(), j.b.Types()) }

func (j joined) String() string { return Format(j) }

// Select returns the view of t through perm: slot i of the result is slot
// perm[i] of t. Positions may repeat or appear in any order.
// Panics if a position is out of range.
func Select(t Tuple, perm seq.Indices) Tuple {
	n := t.Len()
	for _, p := range perm.All {
		if p < 0 || p >= n {
			panic(outOfRange(p, n))
		}
	}
	return selected{src: t, perm: perm}
}

type selected struct {
	src  Tuple
	perm seq.Indices
}

func (s selected) Len() int { return s.perm.Len() }

func (s selected) At(i int) any { return s.src.At(s.perm.At(i)) }

func (s selected) Types() seq.Types {
	types := s.src.Types()
	return seq.Map[seq.Types](s.perm, func(i int) seq.Type { return types.At(i) })
}

func (s selected) String() string { return Format(s) }
