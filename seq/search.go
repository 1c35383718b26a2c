// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// IndexOfFunc returns the position of the first element e with eq(e, x),
// or -1 if there is none.
func IndexOfFunc[S Seq[S, E], E any](s S, x E, eq func(a, b E) bool) int {
	for i := 0; !s.IsEmpty(); i++ {
		if eq(s.Head(), x) {
			return i
		}
		s = s.Tail()
	}
	return -1
}

// IndexOf returns the position of the first occurrence of x, or -1.
func IndexOf[S Seq[S, E], E comparable](s S, x E) int {
	return IndexOfFunc(s, x, equal[E])
}

// IsMemberFunc reports whether some element e satisfies eq(e, x).
func IsMemberFunc[S Seq[S, E], E any](s S, x E, eq func(a, b E) bool) bool {
	return IndexOfFunc(s, x, eq) >= 0
}

// IsMember reports whether x occurs in s.
func IsMember[S Seq[S, E], E comparable](s S, x E) bool {
	return IndexOf(s, x) >= 0
}

// MakeSetFunc removes duplicates under eq. An element is dropped when it
// reoccurs later in the sequence, so the last occurrence keeps its place:
// [1 2 3 2 1] becomes [3 2 1].
func MakeSetFunc[S Seq[S, E], E any](s S, eq func(a, b E) bool) S {
	if s.IsEmpty() {
		return s
	}
	h, rest := s.Head(), MakeSetFunc(s.Tail(), eq)
	if IsMemberFunc(s.Tail(), h, eq) {
		return rest
	}
	return rest.InsertFront(h)
}

// MakeSet removes duplicates keeping the last occurrence of each element.
func MakeSet[S Seq[S, E], E comparable](s S) S {
	return MakeSetFunc(s, equal[E])
}

func equal[E comparable](a, b E) bool { return a == b }
