// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq_test

import (
	"slices"
	"strconv"
	"testing"

	"code.hybscloud.com/hetero/seq"
)

func ints(s seq.Indices) []int { return seq.Collect(s) }

func wantInts(t *testing.T, got seq.Indices, want ...int) {
	t.Helper()
	if !slices.Equal(ints(got), want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPrimitivesVec(t *testing.T) {
	s := seq.Of(1, 2, 3)
	if s.IsEmpty() {
		t.Fatal("expected non-empty")
	}
	if s.Head() != 1 {
		t.Fatalf("head: got %d, want 1", s.Head())
	}
	wantInts(t, s.Tail(), 2, 3)
	wantInts(t, s.InsertFront(-1, 0), -1, 0, 1, 2, 3)
	// InsertFront never modifies the receiver
	wantInts(t, s, 1, 2, 3)

	var empty seq.Indices
	if !empty.IsEmpty() {
		t.Fatal("zero Vec must be empty")
	}
}

func TestPrimitivesList(t *testing.T) {
	l := seq.ListOf("a", "b")
	if got := l.Head(); got != "a" {
		t.Fatalf("head: got %q, want %q", got, "a")
	}
	if got := l.Tail().Head(); got != "b" {
		t.Fatalf("second: got %q, want %q", got, "b")
	}
	if !l.Tail().Tail().IsEmpty() {
		t.Fatal("expected empty after two tails")
	}
	if got := l.String(); got != "[a b]" {
		t.Fatalf("string: got %q", got)
	}
}

func TestHeadOfEmptyPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic")
		}
	}()
	var l seq.List[int]
	_ = l.Head()
}

func TestFold(t *testing.T) {
	sum := seq.Fold(seq.Of(1, 2, 3, 4), 0, func(a, e int) int { return a + e })
	if sum != 10 {
		t.Fatalf("got %d, want 10", sum)
	}
	// left fold: ((init - 1) - 2)
	diff := seq.Fold(seq.ListOf(1, 2), 0, func(a, e int) int { return a - e })
	if diff != -3 {
		t.Fatalf("got %d, want -3", diff)
	}
	if got := seq.Fold(seq.Indices{}, 42, func(a, e int) int { return a + e }); got != 42 {
		t.Fatalf("empty fold: got %d, want 42", got)
	}
}

func TestLenAndAt(t *testing.T) {
	l := seq.ListOf(10, 20, 30)
	if n := seq.Len(l); n != 3 {
		t.Fatalf("len: got %d, want 3", n)
	}
	if got := seq.At(l, 2); got != 30 {
		t.Fatalf("at: got %d, want 30", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range At")
		}
	}()
	seq.At(l, 3)
}

func TestInsertBack(t *testing.T) {
	// List takes the derived path, Vec the Backer fast path.
	l := seq.InsertBack(seq.ListOf(1, 2), 3, 4)
	if got := seq.Collect(l); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Fatalf("list: got %v", got)
	}
	wantInts(t, seq.InsertBack(seq.Of(1, 2), 3, 4), 1, 2, 3, 4)
	wantInts(t, seq.InsertBack(seq.Indices{}, 7), 7)
}

func TestConcat(t *testing.T) {
	wantInts(t, seq.Concat(seq.Of(1, 2), seq.Of(3, 4)), 1, 2, 3, 4)
	wantInts(t, seq.Concat(seq.Of(1, 2), seq.Indices{}), 1, 2)
	wantInts(t, seq.Concat(seq.Indices{}, seq.Of(5)), 5)
}

func TestReverse(t *testing.T) {
	wantInts(t, seq.Reverse(seq.Iota(4)), 3, 2, 1, 0)
	r := seq.Reverse(seq.ListOf("x", "y", "z"))
	if got := r.String(); got != "[z y x]" {
		t.Fatalf("got %s", got)
	}
	wantInts(t, seq.Reverse(seq.Indices{}))
}

func TestMap(t *testing.T) {
	out := seq.Map[seq.List[string]](seq.Of(1, 2, 3), strconv.Itoa)
	if got := out.String(); got != "[1 2 3]" {
		t.Fatalf("got %s", got)
	}
	doubled := seq.Map[seq.Indices](seq.ListOf(1, 2, 3), func(x int) int { return 2 * x })
	wantInts(t, doubled, 2, 4, 6)
}

func TestZip(t *testing.T) {
	sum := seq.Zip[seq.Indices](seq.Of(1, 2, 3), seq.ListOf(10, 20, 30), func(a, b int) int { return a + b })
	wantInts(t, sum, 11, 22, 33)

	// the shorter input decides the length
	short := seq.Zip[seq.Indices](seq.Of(1, 2, 3), seq.Of(10), func(a, b int) int { return a * b })
	wantInts(t, short, 10)
}

func TestZipAll(t *testing.T) {
	rows := seq.ZipAll[seq.Vec[string]](func(xs []int) string {
		return strconv.Itoa(xs[0]) + strconv.Itoa(xs[1]) + strconv.Itoa(xs[2])
	}, seq.Of(1, 2), seq.Of(3, 4), seq.Of(5, 6))
	if got := rows.String(); got != "[135 246]" {
		t.Fatalf("got %s", got)
	}

	truncated := seq.ZipAll[seq.Indices](func(xs []int) int { return len(xs) }, seq.Of(1, 2), seq.Of(3), seq.Of(5, 6))
	wantInts(t, truncated, 3)

	none := seq.ZipAll[seq.Indices, seq.Indices](func(xs []int) int { return 0 })
	if !none.IsEmpty() {
		t.Fatal("zip of nothing must be empty")
	}
}

func TestFilter(t *testing.T) {
	even := seq.Filter(seq.Iota(7), func(x int) bool { return x%2 == 0 })
	wantInts(t, even, 0, 2, 4, 6)
	wantInts(t, seq.Filter(seq.Of(1, 3), func(x int) bool { return x > 5 }))
}

func TestTakeDropSplit(t *testing.T) {
	s := seq.Of(4, 5, 6, 7)
	wantInts(t, seq.Take(3, s), 4, 5, 6)
	wantInts(t, seq.Take(0, s))
	wantInts(t, seq.Drop(0, s), 4, 5, 6, 7)
	wantInts(t, seq.Drop(3, s), 7)

	first, second := seq.SplitAt(1, seq.Of(1, 2, 3))
	wantInts(t, first, 1)
	wantInts(t, second, 2, 3)

	first, second = seq.SplitAt(0, seq.Of(1))
	wantInts(t, first)
	wantInts(t, second, 1)
}

func TestTakeBeyondLengthPanics(t *testing.T) {
	for name, f := range map[string]func(){
		"take":  func() { seq.Take(3, seq.Of(1, 2)) },
		"drop":  func() { seq.Drop(3, seq.ListOf(1, 2)) },
		"split": func() { seq.SplitAt(-1, seq.Of(1)) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			f()
		})
	}
}

func TestIotaAndReplicate(t *testing.T) {
	wantInts(t, seq.Iota(0))
	wantInts(t, seq.Iota(4), 0, 1, 2, 3)
	wantInts(t, seq.Replicate(10, 0))
	wantInts(t, seq.Replicate(10, 2), 10, 10)
}

func TestPredicates(t *testing.T) {
	s := seq.Of(2, 4, 5)
	even := func(x int) bool { return x%2 == 0 }
	if seq.AllOf(s, even) {
		t.Fatal("AllOf: 5 is odd")
	}
	if !seq.AnyOf(s, even) {
		t.Fatal("AnyOf: 2 is even")
	}
	if seq.NoneOf(s, even) {
		t.Fatal("NoneOf: 2 is even")
	}
	if n := seq.CountIf(s, even); n != 2 {
		t.Fatalf("CountIf: got %d, want 2", n)
	}
	var empty seq.Indices
	if !seq.AllOf(empty, even) || seq.AnyOf(empty, even) || !seq.NoneOf(empty, even) {
		t.Fatal("empty sequence predicates")
	}
}

func TestMembership(t *testing.T) {
	s := seq.ListOf("a", "b", "a")
	if i := seq.IndexOf(s, "a"); i != 0 {
		t.Fatalf("IndexOf a: got %d, want 0", i)
	}
	if i := seq.IndexOf(s, "b"); i != 1 {
		t.Fatalf("IndexOf b: got %d, want 1", i)
	}
	if i := seq.IndexOf(s, "z"); i != -1 {
		t.Fatalf("IndexOf z: got %d, want -1", i)
	}
	if seq.IsMember(seq.List[string]{}, "a") {
		t.Fatal("empty list has no members")
	}
}

func TestMakeSet(t *testing.T) {
	wantInts(t, seq.MakeSet(seq.Indices{}))
	wantInts(t, seq.MakeSet(seq.Of(1, 2, 3, 2, 1)), 3, 2, 1)

	types := seq.MakeSet(seq.Of(seq.TypeOf[int](), seq.TypeOf[float64](), seq.TypeOf[int]()))
	if got := types.String(); got != "[float64 int]" {
		t.Fatalf("got %s", got)
	}
}

func TestInsertSorted(t *testing.T) {
	less := func(a, b int) bool { return a < b }
	wantInts(t, seq.InsertSorted(seq.Indices{}, 3, less), 3)
	wantInts(t, seq.InsertSorted(seq.Of(1, 5), 3, less), 1, 3, 5)
}

func TestInsertionSortByTypeSize(t *testing.T) {
	types := seq.Of(seq.TypeOf[int64](), seq.TypeOf[int16](), seq.TypeOf[int8](), seq.TypeOf[float64]())
	sorted := seq.InsertionSortBy(types, seq.SmallerThan)
	// stable: int64 stays ahead of float64
	if got := sorted.String(); got != "[int8 int16 int64 float64]" {
		t.Fatalf("got %s", got)
	}
	if got := seq.InsertionSortBy(seq.Types{}, seq.SmallerThan); !got.IsEmpty() {
		t.Fatal("sorting empty must be empty")
	}
}

func TestSortIndices(t *testing.T) {
	// (double, char, int) by size ascending is (char, int, double)
	types := seq.Of(seq.TypeOf[float64](), seq.TypeOf[int8](), seq.TypeOf[int32]())
	wantInts(t, seq.SortIndices(types, seq.SmallerThan), 1, 2, 0)
}

func TestLargest(t *testing.T) {
	types := seq.Of(seq.TypeOf[int8](), seq.TypeOf[uint32](), seq.TypeOf[complex128]())
	if got := seq.Largest(types, seq.TypeSize); got != seq.TypeOf[complex128]() {
		t.Fatalf("got %s", got)
	}
	// ties keep the earlier element
	tie := seq.Of(seq.TypeOf[int64](), seq.TypeOf[float64]())
	if got := seq.Largest(tie, seq.TypeSize); got != seq.TypeOf[int64]() {
		t.Fatalf("got %s", got)
	}
}

func TestTypeDescriptors(t *testing.T) {
	if seq.TypeOf[int]() != seq.TypeOf[int]() {
		t.Fatal("same type must give equal descriptors")
	}
	if seq.TypeOf[int]() == seq.TypeOf[int64]() {
		t.Fatal("distinct types must differ")
	}
	if got := seq.TypeOf[error]().Name(); got != "error" {
		t.Fatalf("interface name: got %q", got)
	}
	if got := seq.TypeOf[[]string]().Name(); got != "[]string" {
		t.Fatalf("slice name: got %q", got)
	}
	if got := seq.TypeOf[int16]().Size(); got != 2 {
		t.Fatalf("int16 size: got %d", got)
	}
	d := seq.Describe("pkg.T", 24, 8)
	if d != seq.Describe("pkg.T", 24, 8) {
		t.Fatal("described descriptors compare by name")
	}
	if d.Size() != 24 || d.Align() != 8 {
		t.Fatalf("describe: got %d/%d", d.Size(), d.Align())
	}
	if !(seq.Type{}).IsZero() || d.IsZero() {
		t.Fatal("IsZero")
	}
}

func TestVecAll(t *testing.T) {
	var got []int
	for i, x := range seq.Of(5, 6, 7).All {
		got = append(got, i*10+x)
	}
	if !slices.Equal(got, []int{5, 16, 27}) {
		t.Fatalf("got %v", got)
	}
}
