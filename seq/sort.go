// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// InsertSorted inserts x into the sorted sequence s.
// x goes before the first element e with less(x, e); equal elements
// therefore keep their relative order.
func InsertSorted[S Seq[S, E], E any](s S, x E, less func(a, b E) bool) S {
	if s.IsEmpty() || less(x, s.Head()) {
		return s.InsertFront(x)
	}
	return InsertSorted(s.Tail(), x, less).InsertFront(s.Head())
}

// InsertionSortBy sorts s with a stable insertion sort.
// less(a, b) reports whether a strictly precedes b.
// O(n²) comparisons in the worst case.
func InsertionSortBy[S Seq[S, E], E any](s S, less func(a, b E) bool) S {
	var sorted S
	return Fold(s, sorted, func(acc S, e E) S { return InsertSorted(acc, e, less) })
}

// SortIndices returns the permutation that stably sorts s by less.
// The comparator is redirected from the positions to the elements stored
// at them: sorting (float64, int8, int32) by size yields [1 2 0].
func SortIndices[S Seq[S, E], E any](s S, less func(a, b E) bool) Indices {
	elems := Collect(s)
	return InsertionSortBy(Iota(len(elems)), func(i, j int) bool {
		return less(elems[i], elems[j])
	})
}
