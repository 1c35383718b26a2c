// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// List is a persistent singly linked sequence.
// Tails share structure with the list they came from, so Tail and
// InsertFront are O(1) in the length of the list.
// The zero value is the empty list.
type List[E any] struct {
	head *cell[E]
}

type cell[E any] struct {
	value E
	next  *cell[E]
}

// ListOf returns a list holding xs in order.
func ListOf[E any](xs ...E) List[E] {
	return List[E]{}.InsertFront(xs...)
}

// Head returns the first element. Panics on an empty list.
func (l List[E]) Head() E {
	if l.head == nil {
		panic("seq: head of empty sequence")
	}
	return l.head.value
}

// Tail returns the list without its first element. Panics on an empty list.
func (l List[E]) Tail() List[E] {
	if l.head == nil {
		panic("seq: tail of empty sequence")
	}
	return List[E]{head: l.head.next}
}

// IsEmpty reports whether l has no elements.
func (l List[E]) IsEmpty() bool {
	return l.head == nil
}

// InsertFront returns l with items prepended in order.
func (l List[E]) InsertFront(items ...E) List[E] {
	h := l.head
	for i := len(items) - 1; i >= 0; i-- {
		h = &cell[E]{value: items[i], next: h}
	}
	return List[E]{head: h}
}

// String formats l as [e0 e1 ...].
func (l List[E]) String() string {
	return format(l)
}
