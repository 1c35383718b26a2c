// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"testing"

	"code.hybscloud.com/hetero/variant"
)

var sinkInt int

func BenchmarkVisit3(b *testing.B) {
	v := variant.Make[v3](7)
	b.ReportAllocs()
	for b.Loop() {
		sinkInt, _ = variant.Visit3(v,
			func(n int) int { return n },
			func(s string) int { return len(s) },
			func(float64) int { return 0 },
		)
	}
}

func BenchmarkSetSameAlternative(b *testing.B) {
	v := variant.Make[v3]("abc")
	b.ReportAllocs()
	for b.Loop() {
		variant.Set(&v, "abc")
	}
}

func BenchmarkSetAlternate(b *testing.B) {
	var v v3
	b.ReportAllocs()
	for i := 0; b.Loop(); i++ {
		if i&1 == 0 {
			variant.Set(&v, "abc")
		} else {
			variant.Set(&v, 1.5)
		}
	}
}

func TestAllocsIsIndex(t *testing.T) {
	v := variant.Make[v3]("abc")
	allocs := testing.AllocsPerRun(100, func() {
		sinkInt = v.Index()
	})
	if allocs != 0 {
		t.Fatalf("Index allocates: %v", allocs)
	}
}
