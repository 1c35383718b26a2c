// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"errors"
	"fmt"

	"code.hybscloud.com/hetero/seq"
)

// ErrEmptyVariant is returned when the value of an empty variant is read.
var ErrEmptyVariant = errors.New("variant: empty variant")

// Variant is the read-only view shared by every arity.
type Variant interface {
	// Index returns 0 when empty, or i when alternative i (from 1) is active.
	Index() int
	IsEmpty() bool
	// Alternatives returns the alternative types in declaration order.
	Alternatives() seq.Types
	// Value returns the active value, or ErrEmptyVariant.
	Value() (any, error)
}

// Mutable is a variant that can be assigned and destroyed.
// It is implemented by pointers to the arity family (*Of1 ... *Of6).
type Mutable interface {
	Variant
	Destroy()
	storage() *core
	choices() []alternative
}

// Destroyer is implemented by alternative types with a destructor.
// Destroy runs when the value stops being the live alternative: when a
// different alternative replaces it or when the variant is destroyed.
// Assigning a value of the active alternative does not run it.
// A zero value the variant holds by default construction, or after its
// value was moved out by [AssignMove], owns nothing and is not destroyed.
type Destroyer interface {
	Destroy()
}

// Converter is implemented by *T for alternative types T that can be
// built from values of other types during [Assign].
// ConvertFrom sets the receiver from x and reports whether it could.
type Converter interface {
	ConvertFrom(x any) bool
}

// core is the storage shared by the arity family: one box for the live
// alternative and a discriminator. The zero value is alternative 1 holding
// its zero value, which makes the zero variant default-constructed.
type core struct {
	box   any // nil reads as the zero value of the active alternative
	alt   uint8
	empty bool
}

// Index returns 0 when empty, or the active alternative counted from 1.
func (c core) Index() int {
	if c.empty {
		return 0
	}
	return int(c.alt) + 1
}

// IsEmpty reports whether no alternative is active.
func (c core) IsEmpty() bool { return c.empty }

// Destroy destroys the active alternative and leaves the variant empty.
func (c *core) Destroy() { c.destroy() }

func (c *core) storage() *core { return c }

// assign makes x the value of alternative i.
// The active alternative is updated in place; any other is destroyed
// before x is stored.
func (c *core) assign(i int, x any) {
	if !c.empty && int(c.alt) == i {
		c.box = x
		return
	}
	c.destroy()
	c.box, c.alt, c.empty = x, uint8(i), false
}

// destroy clears the storage before running the destructor, so a
// panicking destructor leaves the variant empty.
func (c *core) destroy() {
	if c.empty {
		return
	}
	old := c.box
	c.box, c.alt, c.empty = nil, 0, true
	if d, ok := old.(Destroyer); ok {
		d.Destroy()
	}
}

// alternative is the construct logic of one alternative type.
type alternative struct {
	holds   func(x any) bool
	convert func(x any) (any, bool)
}

func choice[T any]() alternative {
	return alternative{
		holds: func(x any) bool {
			if x == nil {
				// a nil interface value fits any interface alternative
				var zero T
				return any(zero) == nil
			}
			_, ok := x.(T)
			return ok
		},
		convert: func(x any) (any, bool) {
			var t T
			c, ok := any(&t).(Converter)
			if !ok || !c.ConvertFrom(x) {
				return nil, false
			}
			return t, true
		},
	}
}

// load reads a box as T. A nil box is the zero T.
func load[T any](box any) T {
	if box == nil {
		var zero T
		return zero
	}
	return box.(T)
}

func indexOf[T any](v Variant) int {
	return seq.IndexOf(v.Alternatives(), seq.TypeOf[T]())
}

// Is reports whether the active alternative is T.
func Is[T any](v Variant) bool {
	if v.IsEmpty() {
		return false
	}
	return v.Index() == indexOf[T](v)+1
}

// Get returns the active value as a T.
// Returns ErrEmptyVariant if v is empty. Panics if the active alternative
// is not T: check with [Is] or use a Visit function.
func Get[T any](v Variant) (T, error) {
	if v.IsEmpty() {
		var zero T
		return zero, ErrEmptyVariant
	}
	if !Is[T](v) {
		panic(fmt.Sprintf("variant: active alternative is %s, not %s",
			v.Alternatives().At(v.Index()-1), seq.TypeOf[T]()))
	}
	x, _ := v.Value()
	return load[T](x), nil
}

// MustGet is like [Get] but panics if v is empty.
func MustGet[T any](v Variant) T {
	x, err := Get[T](v)
	if err != nil {
		panic(err)
	}
	return x
}

// Set makes x the value of v. T must be one of the alternatives of v.
// If T is already active, the value is replaced in place and no destructor
// runs; otherwise the active alternative is destroyed first.
func Set[T any](v Mutable, x T) {
	i := indexOf[T](v)
	if i < 0 {
		panic(fmt.Sprintf("variant: %s is not an alternative of %s", seq.TypeOf[T](), v.Alternatives()))
	}
	v.storage().assign(i, x)
}

// Make returns a variant of type V holding x.
//
//	v := variant.Make[variant.Of2[int, string]]("abc")
func Make[V any, P interface {
	*V
	Mutable
}, T any](x T) V {
	var v V
	Set[T](P(&v), x)
	return v
}

// Assign copies the value of src into dst. The alternative sets may differ.
//
// An empty src empties dst. Otherwise the value goes to the alternative of
// dst with the same type, else to the first alternative that can hold it
// (an interface alternative), else to the first alternative T whose *T is a
// [Converter] accepting it. Conversion destroys the active value of dst
// before constructing the new one; if no conversion accepts the value, dst
// is left empty and Assign panics.
func Assign(dst Mutable, src Variant) {
	if src.IsEmpty() {
		dst.Destroy()
		return
	}
	x, _ := src.Value()
	c := dst.storage()
	from := src.Alternatives().At(src.Index() - 1)
	if i := seq.IndexOf(dst.Alternatives(), from); i >= 0 {
		c.assign(i, x)
		return
	}
	alts := dst.choices()
	for i, a := range alts {
		if a.holds(x) {
			c.assign(i, x)
			return
		}
	}
	c.destroy()
	for i, a := range alts {
		if y, ok := a.convert(x); ok {
			c.assign(i, y)
			return
		}
	}
	panic(fmt.Sprintf("variant: %s is not assignable to any alternative of %s", from, dst.Alternatives()))
}

// AssignMove is [Assign] that consumes src: src keeps its active
// alternative but is left holding that alternative's zero value.
func AssignMove(dst, src Mutable) {
	if dst.storage() == src.storage() {
		return
	}
	Assign(dst, src)
	if s := src.storage(); !s.empty {
		s.box = nil
	}
}

// Storage is the layout a single shared buffer for the alternatives needs.
type Storage struct {
	Size  uintptr // the size of the largest alternative
	Align uintptr // the strictest alignment among the alternatives
}

// Layout returns the storage layout of the alternatives of v.
func Layout(v Variant) Storage { return LayoutOf(v.Alternatives()) }

// LayoutOf returns the storage layout of a list of alternatives.
func LayoutOf(alts seq.Types) Storage {
	if alts.IsEmpty() {
		return Storage{Align: 1}
	}
	return Storage{
		Size:  seq.Largest(alts, seq.TypeSize).Size(),
		Align: seq.Largest(alts, seq.TypeAlign).Align(),
	}
}

func format(v Variant) string {
	x, err := v.Value()
	if err != nil {
		return "<empty>"
	}
	return fmt.Sprint(x)
}
