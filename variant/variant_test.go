// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"code.hybscloud.com/hetero/seq"
	"code.hybscloud.com/hetero/variant"
)

// tracked records its destruction in a shared log.
type tracked struct {
	name string
	log  *[]string
}

func (t tracked) Destroy() { *t.log = append(*t.log, t.name) }

// X is built from a string during conversion.
type X struct{ value string }

func (x *X) ConvertFrom(v any) bool {
	s, ok := v.(string)
	if ok {
		x.value = s
	}
	return ok
}

type label string

func (l label) String() string { return "label:" + string(l) }

func TestDefaultConstruction(t *testing.T) {
	var v variant.Of2[int, string]
	if v.IsEmpty() {
		t.Fatal("zero variant is empty")
	}
	if v.Index() != 1 || !variant.Is[int](v) {
		t.Fatalf("index: got %d, want 1", v.Index())
	}
	if got := variant.MustGet[int](v); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestMakeAndGet(t *testing.T) {
	v := variant.Make[variant.Of2[int, float64]](2.0)
	if !variant.Is[float64](v) || variant.Is[int](v) {
		t.Fatalf("active: got %d", v.Index())
	}
	got, err := variant.Get[float64](v)
	if err != nil || got != 2.0 {
		t.Fatalf("got %v, %v", got, err)
	}
}

func TestSetDifferentAlternative(t *testing.T) {
	v := variant.Make[variant.Of2[int, string]]("str")
	variant.Set(&v, 100)
	if !variant.Is[int](v) || variant.MustGet[int](v) != 100 {
		t.Fatalf("got %v", v)
	}
	variant.Set(&v, "c-string")
	if variant.MustGet[string](v) != "c-string" {
		t.Fatalf("got %v", v)
	}
}

func TestSetNotAnAlternative(t *testing.T) {
	var v variant.Of2[int, string]
	defer func() {
		r := recover()
		if r == nil || !strings.Contains(fmt.Sprint(r), "not an alternative") {
			t.Fatalf("recover: %v", r)
		}
	}()
	variant.Set(&v, 1.5)
}

func TestGetWrongAlternative(t *testing.T) {
	v := variant.Make[variant.Of2[int, string]]("str")
	defer func() {
		r := recover()
		if r == nil || !strings.Contains(fmt.Sprint(r), "active alternative is string") {
			t.Fatalf("recover: %v", r)
		}
	}()
	variant.Get[int](v)
}

func TestSameAlternativeInPlace(t *testing.T) {
	var log []string
	var v variant.Of2[tracked, int]
	variant.Set(&v, tracked{"a", &log})
	variant.Set(&v, tracked{"b", &log})
	if len(log) != 0 {
		t.Fatalf("destructor ran on same-type update: %v", log)
	}
	if got := variant.MustGet[tracked](v).name; got != "b" {
		t.Fatalf("got %q, want b", got)
	}
	variant.Set(&v, 1)
	if !slices.Equal(log, []string{"b"}) {
		t.Fatalf("log: got %v, want [b]", log)
	}
}

func TestDestroy(t *testing.T) {
	var log []string
	v := variant.Make[variant.Of2[int, tracked]](tracked{"x", &log})
	v.Destroy()
	if !v.IsEmpty() || v.Index() != 0 {
		t.Fatalf("not empty after Destroy: %d", v.Index())
	}
	if !slices.Equal(log, []string{"x"}) {
		t.Fatalf("log: got %v", log)
	}
	v.Destroy()
	if len(log) != 1 {
		t.Fatalf("destroyed twice: %v", log)
	}
	if variant.Is[int](v) || variant.Is[tracked](v) {
		t.Fatal("empty variant reports an active alternative")
	}
}

// zeroSafe is a Destroyer whose zero value can be destroyed.
type zeroSafe struct{ id int }

var zeroSafeLog []int

func (z zeroSafe) Destroy() { zeroSafeLog = append(zeroSafeLog, z.id) }

func TestZeroValueDestroy(t *testing.T) {
	zeroSafeLog = nil

	// held by default construction: owns nothing
	var v variant.Of2[zeroSafe, int]
	variant.Set(&v, 1)
	if len(zeroSafeLog) != 0 {
		t.Fatalf("default zero value destroyed: %v", zeroSafeLog)
	}

	// set explicitly: destroyed even though it equals zero
	variant.Set(&v, zeroSafe{})
	variant.Set(&v, 2)
	if !slices.Equal(zeroSafeLog, []int{0}) {
		t.Fatalf("log: got %v, want [0]", zeroSafeLog)
	}

	// left behind by AssignMove: owns nothing
	src := variant.Make[variant.Of2[zeroSafe, int]](zeroSafe{5})
	var dst variant.Of2[zeroSafe, int]
	variant.AssignMove(&dst, &src)
	src.Destroy()
	if !slices.Equal(zeroSafeLog, []int{0}) {
		t.Fatalf("moved-from zero value destroyed: %v", zeroSafeLog)
	}
	dst.Destroy()
	if !slices.Equal(zeroSafeLog, []int{0, 5}) {
		t.Fatalf("log: got %v, want [0 5]", zeroSafeLog)
	}
}

func TestEmptyVariant(t *testing.T) {
	v := variant.Make[variant.Of2[int, string]]("abc")
	v.Destroy()
	if _, err := variant.Get[string](v); !errors.Is(err, variant.ErrEmptyVariant) {
		t.Fatalf("Get: got %v", err)
	}
	if _, err := v.Value(); !errors.Is(err, variant.ErrEmptyVariant) {
		t.Fatalf("Value: got %v", err)
	}
	if got := v.String(); got != "<empty>" {
		t.Fatalf("String: got %q", got)
	}

	w := v
	if !w.IsEmpty() {
		t.Fatal("copy of empty variant is not empty")
	}
	u := variant.Make[variant.Of2[int, string]](5)
	variant.Assign(&u, v)
	if !u.IsEmpty() {
		t.Fatal("Assign from empty did not empty the destination")
	}
	if _, err := variant.Get[int](u); !errors.Is(err, variant.ErrEmptyVariant) {
		t.Fatalf("Get after Assign: got %v", err)
	}
}

func TestMustGetEmptyPanics(t *testing.T) {
	var v variant.Of1[int]
	v.Destroy()
	defer func() {
		if r := recover(); r != variant.ErrEmptyVariant {
			t.Fatalf("recover: %v", r)
		}
	}()
	variant.MustGet[int](v)
}

func TestCopyIsIndependent(t *testing.T) {
	src := variant.Make[variant.Of2[int, string]]("str")
	dst := src
	variant.Set(&dst, 3)
	if variant.MustGet[string](src) != "str" || variant.MustGet[int](dst) != 3 {
		t.Fatalf("src %v, dst %v", src, dst)
	}
}

func TestAssignAcrossSets(t *testing.T) {
	rhs := variant.Make[variant.Of2[int, float64]](10)
	lhs := variant.Make[variant.Of3[float64, int, float32]](0.0)
	variant.Assign(&lhs, rhs)
	if !variant.Is[int](lhs) || variant.MustGet[int](lhs) != 10 {
		t.Fatalf("got %v (index %d)", lhs, lhs.Index())
	}
}

func TestAssignInterfaceAlternative(t *testing.T) {
	src := variant.Make[variant.Of1[label]](label("a"))
	var dst variant.Of2[int, fmt.Stringer]
	variant.Assign(&dst, src)
	s := variant.MustGet[fmt.Stringer](dst)
	if s.String() != "label:a" {
		t.Fatalf("got %q", s.String())
	}
}

func TestAssignNilInterface(t *testing.T) {
	var src variant.Of2[error, string]

	dst := variant.Make[variant.Of2[int, any]](7)
	variant.Assign(&dst, src)
	if !variant.Is[any](dst) || variant.MustGet[any](dst) != nil {
		t.Fatalf("got %v (index %d)", dst, dst.Index())
	}

	str := variant.Make[variant.Of2[int, fmt.Stringer]](7)
	variant.Assign(&str, src)
	if !variant.Is[fmt.Stringer](str) || variant.MustGet[fmt.Stringer](str) != nil {
		t.Fatalf("got %v (index %d)", str, str.Index())
	}

	// a nil value has no concrete alternative to go to
	concrete := variant.Make[variant.Of2[int, []byte]](7)
	defer func() {
		if r := recover(); r == nil || !concrete.IsEmpty() {
			t.Fatalf("recover: %v, index %d", r, concrete.Index())
		}
	}()
	variant.Assign(&concrete, src)
}

func TestAssignConversion(t *testing.T) {
	src := variant.Make[variant.Of2[int, string]]("abc")
	dst := variant.Make[variant.Of3[float64, int, X]](123.42)
	variant.Assign(&dst, src)
	if !variant.Is[X](dst) || variant.MustGet[X](dst).value != "abc" {
		t.Fatalf("got %v", dst)
	}
	if variant.MustGet[string](src) != "abc" {
		t.Fatalf("source changed: %v", src)
	}
}

func TestAssignNoConversion(t *testing.T) {
	src := variant.Make[variant.Of1[[]byte]]([]byte("x"))
	dst := variant.Make[variant.Of2[int, X]](7)
	defer func() {
		r := recover()
		if r == nil || !strings.Contains(fmt.Sprint(r), "not assignable") {
			t.Fatalf("recover: %v", r)
		}
		if !dst.IsEmpty() {
			t.Fatal("failed conversion left a value behind")
		}
	}()
	variant.Assign(&dst, src)
}

// badConvert panics while it is being constructed.
type badConvert struct{}

func (*badConvert) ConvertFrom(any) bool { panic("convert failed") }

func TestPanickingConversionLeavesEmpty(t *testing.T) {
	var log []string
	dst := variant.Make[variant.Of2[tracked, badConvert]](tracked{"old", &log})
	src := variant.Make[variant.Of1[string]]("abc")
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		variant.Assign(&dst, src)
	}()
	if !dst.IsEmpty() {
		t.Fatalf("got index %d, want empty", dst.Index())
	}
	if !slices.Equal(log, []string{"old"}) {
		t.Fatalf("log: got %v, want [old]", log)
	}
	dst.Destroy()
	if len(log) != 1 {
		t.Fatalf("destroyed twice: %v", log)
	}
}

func TestPanickingDestructorLeavesEmpty(t *testing.T) {
	v := variant.Make[variant.Of2[int, tracked]](tracked{name: "nil log"})
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		variant.Set(&v, 1)
	}()
	if !v.IsEmpty() {
		t.Fatalf("got index %d, want empty", v.Index())
	}
}

func TestAssignMove(t *testing.T) {
	rhs := variant.Make[variant.Of2[int, string]]("abc")
	lhs := variant.Make[variant.Of2[float64, string]](0.0)
	variant.AssignMove(&lhs, &rhs)
	if variant.MustGet[string](lhs) != "abc" {
		t.Fatalf("lhs: got %v", lhs)
	}
	if !variant.Is[string](rhs) || variant.MustGet[string](rhs) != "" {
		t.Fatalf("rhs: got %v", rhs)
	}
}

func TestAssignMoveConversion(t *testing.T) {
	rhs := variant.Make[variant.Of2[int, string]]("abc")
	lhs := variant.Make[variant.Of3[float64, int, X]](123.42)
	variant.AssignMove(&lhs, &rhs)
	if variant.MustGet[X](lhs).value != "abc" {
		t.Fatalf("lhs: got %v", lhs)
	}
	if !variant.Is[string](rhs) || variant.MustGet[string](rhs) != "" {
		t.Fatalf("rhs: got %v", rhs)
	}
}

func TestAssignMoveSelf(t *testing.T) {
	v := variant.Make[variant.Of2[int, string]]("abc")
	variant.AssignMove(&v, &v)
	if variant.MustGet[string](v) != "abc" {
		t.Fatalf("got %v", v)
	}
}

func TestVisit(t *testing.T) {
	v := variant.Make[variant.Of3[int, string, float64]]("abc")
	n, err := variant.Visit3(v,
		func(int) int { return 0 },
		func(s string) int { return len(s) },
		func(float64) int { return 2 },
	)
	if err != nil || n != 3 {
		t.Fatalf("got %d, %v", n, err)
	}

	w := variant.Make[variant.Of2[int, float32]](10)
	f, err := variant.Visit2(w,
		func(i int) float64 { return float64(i) },
		func(x float32) float64 { return float64(x) },
	)
	if err != nil || f != 10.0 {
		t.Fatalf("got %v, %v", f, err)
	}

	w.Destroy()
	if _, err := variant.Visit2(w,
		func(int) bool { return true },
		func(float32) bool { return true },
	); !errors.Is(err, variant.ErrEmptyVariant) {
		t.Fatalf("empty: got %v", err)
	}
}

func TestDuplicateAlternativesVisitByIndex(t *testing.T) {
	var v variant.Of2[int, int]
	got, err := variant.Visit2(v,
		func(int) string { return "first" },
		func(int) string { return "second" },
	)
	if err != nil || got != "first" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestAlternatives(t *testing.T) {
	var v variant.Of3[int, string, float64]
	want := seq.Of(seq.TypeOf[int](), seq.TypeOf[string](), seq.TypeOf[float64]())
	if got := v.Alternatives(); !slices.Equal(seq.Collect(got), seq.Collect(want)) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name string
		v    variant.Variant
		want variant.Storage
	}{
		{"int8 [3]int32", variant.Of2[int8, [3]int32]{}, variant.Storage{Size: 12, Align: 4}},
		{"byte int16 [5]byte", variant.Of3[byte, int16, [5]byte]{}, variant.Storage{Size: 5, Align: 2}},
		{"struct{}", variant.Of1[struct{}]{}, variant.Storage{Size: 0, Align: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := variant.Layout(tt.v); got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	v := variant.Make[variant.Of2[int, string]]("abc")
	if got := v.String(); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if got := fmt.Sprint(variant.Of2[int, string]{}); got != "0" {
		t.Fatalf("zero: got %q", got)
	}
}
