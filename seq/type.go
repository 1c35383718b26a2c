// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"fmt"
	"unsafe"
)

// Type describes the shape of one Go type: its name, size and alignment.
// Two descriptors are == exactly when they describe the same type.
//
// Descriptors from [TypeOf] are keyed by the type itself. Descriptors from
// [Describe] are keyed by name; they come from source analysis, where the
// name is the identity.
type Type struct {
	key   any
	name  string
	size  uintptr
	align uintptr
}

// Types is the type sequence: the shape of a tuple or the alternatives of
// a variant.
type Types = Vec[Type]

// TypeOf returns the descriptor of T.
func TypeOf[T any]() Type {
	var zero T
	return Type{
		key:   (*T)(nil),
		name:  typeName[T](),
		size:  unsafe.Sizeof(zero),
		align: unsafe.Alignof(zero),
	}
}

// Describe returns a descriptor for a type known only by name, size and
// alignment.
func Describe(name string, size, align uintptr) Type {
	return Type{key: name, name: name, size: size, align: align}
}

// typeName formats T through a pointer so that interface types print their
// own name instead of <nil>.
func typeName[T any]() string {
	s := fmt.Sprintf("%T", (*T)(nil))
	return s[1:]
}

// Name returns the Go spelling of the type.
func (t Type) Name() string { return t.name }

// Size returns the size in bytes of a value of the type.
func (t Type) Size() uintptr { return t.size }

// Align returns the alignment in bytes of a value of the type.
func (t Type) Align() uintptr { return t.align }

// IsZero reports whether t is the zero descriptor.
func (t Type) IsZero() bool { return t.key == nil }

func (t Type) String() string { return t.name }

// SmallerThan orders types by size.
func SmallerThan(a, b Type) bool { return a.size < b.size }

// LessAligned orders types by alignment.
func LessAligned(a, b Type) bool { return a.align < b.align }

// LessByName orders types by name.
func LessByName(a, b Type) bool { return a.name < b.name }

// TypeSize is the size key for [Largest].
func TypeSize(t Type) uintptr { return t.size }

// TypeAlign is the alignment key for [Largest].
func TypeAlign(t Type) uintptr { return t.align }
