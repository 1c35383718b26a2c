// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"fmt"
	"strings"
	"text/template"

	"code.hybscloud.com/hetero/seq"
)

// Kind names an arity family.
type Kind string

const (
	KindTuple   Kind = "tuple"
	KindVariant Kind = "variant"
)

// Kinds lists the families Family can render.
var Kinds = seq.Of(KindTuple, KindVariant)

var (
	inputParams  = seq.Of("A", "B", "C", "D", "E", "F")
	outputParams = seq.Of("K", "L", "M", "N", "O", "P")
	funcLetters  = seq.Of("a", "b", "c", "d", "e", "f")
)

// names is a list of type parameter names.
type names = seq.Vec[string]

type familyData struct {
	Kind    Kind
	Package string
	Max     int
	Arities []arityData
	Pairs   []pairData
}

type arityData struct {
	N   int
	Ps  names
	Max int
}

type pairData struct {
	A, B, N int
	Ps      names
}

// Family renders the arity family of kind up to maxArity as formatted Go
// source for package pkg. Tuples start at arity 0 and variants at 1.
func Family(kind Kind, maxArity int, pkg string) ([]byte, error) {
	if !seq.IsMember(Kinds, kind) {
		return nil, fmt.Errorf("unknown family %q: must be one of %v", kind, Kinds)
	}
	if maxArity < 1 || maxArity > MaxArity {
		return nil, fmt.Errorf("%w: max arity %d not in [1,%d]", ErrArityOverflow, maxArity, MaxArity)
	}
	if pkg == "" {
		pkg = string(kind)
	}
	data := familyData{Kind: kind, Package: pkg, Max: maxArity}
	first := 0
	if kind == KindVariant {
		first = 1
	}
	for n := first; n <= maxArity; n++ {
		data.Arities = append(data.Arities, arityData{N: n, Ps: seq.Take(n, inputParams), Max: maxArity})
	}
	for a := 0; a <= maxArity; a++ {
		for b := 0; a+b <= maxArity; b++ {
			data.Pairs = append(data.Pairs, pairData{A: a, B: b, N: a + b, Ps: seq.Take(a+b, inputParams)})
		}
	}

	var buf strings.Builder
	if err := familyTemplate.ExecuteTemplate(&buf, string(kind), data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	return formatSource(string(kind)+"_gen.go", []byte(buf.String()))
}

var familyFuncs = template.FuncMap{
	"list": func(ps names) []string { return seq.Collect(ps) },
	"upto": func(n int) []int { return seq.Collect(seq.Iota(max(n, 0))) },
	"add":  func(a, b int) int { return a + b },
	"sub":  func(a, b int) int { return a - b },
	"take": func(k int, ps names) names { return seq.Take(k, ps) },
	"drop": func(k int, ps names) names { return seq.Drop(k, ps) },
	"rev":  func(ps names) names { return seq.Reverse(ps) },
	"cons": func(x string, ps names) names { return ps.InsertFront(x) },
	"snoc": func(ps names, x string) names { return ps.InsertBack(x) },
	"cat":  func(a, b names) names { return seq.Concat(a, b) },
	"outs": func(n int) names { return seq.Take(n, outputParams) },
	"repl": func(x string, n int) names {
		return seq.Map[names](seq.Iota(n), func(int) string { return x })
	},
	"lower": funcLetters.At,
	"commas": commasOf,
	"args":   func(n int) string { return commasOf(seq.Take(n, funcLetters)) },
	"choices": func(ps names) names {
		return seq.Map[names](ps, func(p string) string { return "choice[" + p + "]()" })
	},
	"plural": func(n int, word string) string {
		if n == 1 {
			return word
		}
		return word + "s"
	},
	"T":      tupleName,
	"decl":   typeParams,
	"gather": gatherCall,
	"params": func(ps names) string {
		return commasOf(seq.Zip[names](funcLetters, ps, func(a, p string) string { return a + " " + p }))
	},
	"inits": func(n int) string {
		return commasOf(seq.Map[names](seq.Iota(n), func(i int) string {
			return fmt.Sprintf("V%d: %s", i, funcLetters.At(i))
		}))
	},
	"slots": func(v string, n int) string {
		return commasOf(seq.Map[names](seq.Iota(n), func(i int) string { return fmt.Sprintf("%s.V%d", v, i) }))
	},
	"eqs": func(n int) string {
		return strings.Join(seq.Collect(seq.Map[names](seq.Iota(n), func(i int) string {
			return fmt.Sprintf("x.V%d == y.V%d", i, i)
		})), " && ")
	},
	"typeofs": func(ps names) string {
		return commasOf(seq.Map[names](ps, func(p string) string { return "seq.TypeOf[" + p + "]()" }))
	},
	"mappers": func(ps, outs names) string {
		heads := seq.Zip[names](funcLetters, ps, func(a, p string) string { return "f" + a + " func(" + p + ") " })
		return commasOf(seq.Zip[names](heads, outs, func(h, o string) string { return h + o }))
	},
	"comparers": func(ps names) string {
		return commasOf(seq.Zip[names](funcLetters, ps, func(a, p string) string {
			return "c" + a + " func(" + p + ", " + p + ") int"
		}))
	},
	"visitors": func(ps names) string {
		return commasOf(seq.Zip[names](funcLetters, ps, func(a, p string) string { return "f" + a + " func(" + p + ") R" }))
	},
	"variant": func(ps names) string { return fmt.Sprintf("Of%d[%s]", ps.Len(), commasOf(ps)) },
}

func commasOf(ps names) string { return strings.Join(seq.Collect(ps), ", ") }

// tupleName renders "T0" or "T3[A, B, C]".
func tupleName(ps names) string {
	if ps.IsEmpty() {
		return "T0"
	}
	return fmt.Sprintf("T%d[%s]", ps.Len(), commasOf(ps))
}

// typeParams renders a type parameter list, or nothing for no parameters.
func typeParams(ps names, constraint string) string {
	if ps.IsEmpty() {
		return ""
	}
	return fmt.Sprintf("[%s %s]", commasOf(ps), constraint)
}

// gatherCall renders the gather of the tuple shape ps from src through perm.
func gatherCall(ps names, src, perm string) string {
	if ps.IsEmpty() {
		return fmt.Sprintf("Gather0(%s, %s)", src, perm)
	}
	return fmt.Sprintf("Gather%d[%s](%s, %s)", ps.Len(), commasOf(ps), src, perm)
}

var familyTemplate = template.Must(template.New("family").Funcs(familyFuncs).Parse(tupleFamilySrc + variantFamilySrc))

const tupleFamilySrc = `
{{- define "tuple" -}}
// Code generated by hetgen family tuple --max-arity {{.Max}}. DO NOT EDIT.

package {{.Package}}

import (
	"cmp"

	"code.hybscloud.com/hetero/seq"
)
{{range .Arities}}{{template "tupleArity" .}}{{end}}
{{- range .Pairs}}
// Concat{{.A}}{{.B}} returns the slots of x followed by the slots of y.
func Concat{{.A}}{{.B}}{{decl .Ps "any"}}(x {{T (take .A .Ps)}}, y {{T (drop .A .Ps)}}) {{T .Ps}} {
	return {{gather .Ps "Join(x, y)" (printf "seq.Iota(%d)" .N)}}
}
{{end}}
{{- end}}

{{- define "tupleArity"}}{{$n := .N}}{{$ps := .Ps}}{{$T := T .Ps}}
{{- if eq $n 0}}
// T0 is the empty tuple.
type T0 struct{}

// Of0 returns the empty tuple.
func Of0() T0 {
	return T0{}
}
{{else}}
// T{{$n}} is a tuple of {{$n}} {{plural $n "value"}}.
type T{{$n}}{{decl $ps "any"}} struct {
{{- range $i, $p := list $ps}}
	V{{$i}} {{$p}}
{{- end}}
}

// Of{{$n}} returns the tuple ({{args $n}}).
func Of{{$n}}{{decl $ps "any"}}({{params $ps}}) {{$T}} {
	return {{$T}}{ {{- inits $n -}} }
}
{{end}}
// Len returns {{$n}}.
func (t {{$T}}) Len() int { return {{$n}} }

// At returns slot i. Panics if i is out of range.
func (t {{$T}}) At(i int) any {
{{- if $n}}
	switch i {
{{- range upto $n}}
	case {{.}}:
		return t.V{{.}}
{{- end}}
	}
{{- end}}
	panic(outOfRange(i, {{$n}}))
}
{{if eq $n 0}}
// Types returns the empty shape.
func (t T0) Types() seq.Types { return seq.Types{} }
{{else}}
// Types returns the shape ({{commas $ps}}).
func (t {{$T}}) Types() seq.Types {
	return seq.Of({{typeofs $ps}})
}
{{end}}
func (t {{$T}}) String() string { return Format(t) }
{{if eq $n 0}}
// Gather0 builds the empty tuple. perm must be empty.
func Gather0(src Tuple, perm seq.Indices) T0 {
	checkPerm(perm, 0)
	return T0{}
}
{{else}}
// Gather{{$n}} builds a T{{$n}} from the slots of src named by perm.
func Gather{{$n}}{{decl $ps "any"}}(src Tuple, perm seq.Indices) {{$T}} {
	checkPerm(perm, {{$n}})
	return {{$T}}{
{{- range $i, $p := list $ps}}
		V{{$i}}: slot[{{$p}}](src, perm.At({{$i}})),
{{- end}}
	}
}
{{end}}
// Reverse returns the slots in reverse order.
func (t {{$T}}) Reverse() {{T (rev $ps)}} {
	return {{gather (rev $ps) "t" (printf "seq.Reverse(seq.Iota(%d))" $n)}}
}
{{if $n}}
// DropHead returns the tuple without its first slot.
func (t {{$T}}) DropHead() {{T (drop 1 $ps)}} {
	return {{gather (drop 1 $ps) "t" (printf "seq.Drop(1, seq.Iota(%d))" $n)}}
}

// DropTail returns the tuple without its last slot.
func (t {{$T}}) DropTail() {{T (take (sub $n 1) $ps)}} {
	return {{gather (take (sub $n 1) $ps) "t" (printf "seq.Take(%d, seq.Iota(%d))" (sub $n 1) $n)}}
}
{{end}}
{{- range $k := upto (add $n 1)}}
// Take{{$k}} returns the first {{$k}} slots.
func (t {{$T}}) Take{{$k}}() {{T (take $k $ps)}} {
	return {{gather (take $k $ps) "t" (printf "seq.Take(%d, seq.Iota(%d))" $k $n)}}
}
{{end}}
{{- range $k := upto (add $n 1)}}
// Drop{{$k}} returns the slots after the first {{$k}}.
func (t {{$T}}) Drop{{$k}}() {{T (drop $k $ps)}} {
	return {{gather (drop $k $ps) "t" (printf "seq.Drop(%d, seq.Iota(%d))" $k $n)}}
}
{{end}}
{{- range $k := upto (add $n 1)}}
// SplitAt{{$k}} returns Take{{$k}} and Drop{{$k}}.
func (t {{$T}}) SplitAt{{$k}}() ({{T (take $k $ps)}}, {{T (drop $k $ps)}}) {
	return t.Take{{$k}}(), t.Drop{{$k}}()
}
{{end}}
{{- if lt $n .Max}}
// Prepend{{$n}} returns the tuple with x inserted before the first slot.
func Prepend{{$n}}{{decl (cons "X" $ps) "any"}}(t {{$T}}, x X) {{T (cons "X" $ps)}} {
	return {{gather (cons "X" $ps) "Join(Of1(x), t)" (printf "seq.Iota(%d)" (add $n 1))}}
}

// Append{{$n}} returns the tuple with x inserted after the last slot.
func Append{{$n}}{{decl (snoc $ps "X") "any"}}(t {{$T}}, x X) {{T (snoc $ps "X")}} {
	return {{gather (snoc $ps "X") "Join(t, Of1(x))" (printf "seq.Iota(%d)" (add $n 1))}}
}
{{end}}
// Apply{{$n}} calls f with the slots of t as arguments.
func Apply{{$n}}{{decl (snoc $ps "R") "any"}}(t {{$T}}, f func({{commas $ps}}) R) R {
	return f({{slots "t" $n}})
}
{{if $n}}
// Transform{{$n}} converts every slot independently.
func Transform{{$n}}{{decl (cat $ps (outs $n)) "any"}}(t {{$T}}, {{mappers $ps (outs $n)}}) {{T (outs $n)}} {
	return {{T (outs $n)}}{
{{- range upto $n}}
		V{{.}}: f{{lower .}}(t.V{{.}}),
{{- end}}
	}
}

// Replicate{{$n}} returns {{$n}} copies of slot i of src.
func Replicate{{$n}}[X any](src Tuple, i int) {{T (repl "X" $n)}} {
	return {{gather (repl "X" $n) "src" (printf "seq.Replicate(i, %d)" $n)}}
}
{{end}}
{{- if eq $n 0}}
// Equal0 reports true: empty tuples are equal.
func Equal0(x, y T0) bool { return true }

// Compare0 returns 0.
func Compare0(x, y T0) int { return 0 }

// Less0 reports false.
func Less0(x, y T0) bool { return false }
{{else}}
// Equal{{$n}} reports whether x and y are equal slot by slot.
func Equal{{$n}}{{decl $ps "comparable"}}(x, y {{$T}}) bool {
	return {{eqs $n}}
}

// Compare{{$n}} compares x and y lexicographically, slot 0 first.
func Compare{{$n}}{{decl $ps "cmp.Ordered"}}(x, y {{$T}}) int {
{{- range upto (sub $n 1)}}
	if c := cmp.Compare(x.V{{.}}, y.V{{.}}); c != 0 {
		return c
	}
{{- end}}
	return cmp.Compare(x.V{{sub $n 1}}, y.V{{sub $n 1}})
}

// Less{{$n}} reports whether x sorts before y.
func Less{{$n}}{{decl $ps "cmp.Ordered"}}(x, y {{$T}}) bool {
	return Compare{{$n}}(x, y) < 0
}

// Compare{{$n}}Func is Compare{{$n}} with one comparison function per slot,
// for slot types that are not ordered.
func Compare{{$n}}Func{{decl $ps "any"}}(x, y {{$T}}, {{comparers $ps}}) int {
{{- range upto (sub $n 1)}}
	if c := c{{lower .}}(x.V{{.}}, y.V{{.}}); c != 0 {
		return c
	}
{{- end}}
	return c{{lower (sub $n 1)}}(x.V{{sub $n 1}}, y.V{{sub $n 1}})
}
{{end}}
{{- end}}
`

const variantFamilySrc = `
{{- define "variant" -}}
// Code generated by hetgen family variant --max-arity {{.Max}}. DO NOT EDIT.

package {{.Package}}

import "code.hybscloud.com/hetero/seq"
{{range .Arities}}{{$n := .N}}{{$ps := .Ps}}{{$V := variant .Ps}}
// Of{{$n}} is a tagged union of {{$n}} {{plural $n "alternative"}}.
// The zero value holds the zero value of A.
type Of{{$n}}{{decl $ps "any"}} struct {
	core
}

// Alternatives returns ({{commas $ps}}).
func (v {{$V}}) Alternatives() seq.Types {
	return seq.Of({{typeofs $ps}})
}

func (v {{$V}}) choices() []alternative {
	return []alternative{ {{- commas (choices $ps) -}} }
}

// Value returns the active value, or ErrEmptyVariant.
func (v {{$V}}) Value() (any, error) {
	switch v.Index() {
{{- range $i, $p := list $ps}}
	case {{add $i 1}}:
		return load[{{$p}}](v.box), nil
{{- end}}
	}
	return nil, ErrEmptyVariant
}

func (v {{$V}}) String() string { return format(v) }

// Visit{{$n}} calls the function for the active alternative with its value.
// Returns ErrEmptyVariant if v is empty.
func Visit{{$n}}{{decl (snoc $ps "R") "any"}}(v {{$V}}, {{visitors $ps}}) (R, error) {
	switch v.Index() {
{{- range $i, $p := list $ps}}
	case {{add $i 1}}:
		return f{{lower $i}}(load[{{$p}}](v.box)), nil
{{- end}}
	}
	var zero R
	return zero, ErrEmptyVariant
}
{{end}}
{{- end}}
`
