// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"fmt"
	"strings"

	"code.hybscloud.com/hetero/seq"
	"code.hybscloud.com/hetero/tuple"
)

// Summary describes the plan one line per shape and one indented line
// per specialization. The output depends only on the plan.
//
//	tuple Record (int32, byte, float64)
//		select RecordSwapped [2 1 0] (float64, byte, int32)
//		sort RecordBySize [1 0 2] (byte, int32, float64)
//	variant Value <int | string> size 16 align 8
//		from Other [1 0]
func (p *Plan) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "package %s\n", p.Package)
	for _, imp := range p.Imports {
		fmt.Fprintf(&b, "import %s\n", imp)
	}
	for _, t := range p.Tuples {
		fmt.Fprintf(&b, "tuple %s %s\n", t.Name, paren(t.Types))
		for _, g := range t.Selects {
			fmt.Fprintf(&b, "\tselect %s %v %s\n", g.Name, g.Perm, paren(g.Types))
		}
		if g := t.Sorted; g != nil {
			fmt.Fprintf(&b, "\tsort %s %v %s\n", g.Name, g.Perm, paren(g.Types))
		}
		for _, g := range t.Getters {
			fmt.Fprintf(&b, "\tget %s %s at %d\n", g.Func, g.Type, g.Index)
		}
		for _, z := range t.Zips {
			pairs := seq.Map[seq.Vec[string]](z.Pairs, func(p tuple.T2[seq.Type, seq.Type]) string {
				return p.String()
			})
			fmt.Fprintf(&b, "\tzip %s (%s)\n", z.With, strings.Join(seq.Collect(pairs), ", "))
		}
	}
	for _, v := range p.Variants {
		fmt.Fprintf(&b, "variant %s <%s> size %d align %d", v.Name, join(v.Alternatives, " | "), v.Storage.Size, v.Storage.Align)
		if v.Duplicates {
			b.WriteString(" duplicates")
		}
		b.WriteByte('\n')
		for _, c := range v.Conversions {
			fmt.Fprintf(&b, "\tfrom %s %v\n", c.From, c.Targets)
		}
	}
	return b.String()
}
