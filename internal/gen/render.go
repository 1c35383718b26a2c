// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"fmt"
	"strings"
	"text/template"

	"code.hybscloud.com/hetero/seq"
	"code.hybscloud.com/hetero/tuple"
)

// Render emits the Go file specializing the shapes of p. The file
// declares one alias per shape and one function per specialization,
// each a gather through a permutation computed by [NewPlan].
func Render(p *Plan) ([]byte, error) {
	var buf strings.Builder
	if err := shapesTemplate.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	return formatSource(p.Package+"_shapes.go", []byte(buf.String()))
}

var shapesFuncs = template.FuncMap{
	"tupleType":   tupleType,
	"variantType": variantType,
	"gatherOf": func(g Gather) string {
		perm := "seq.Indices{}"
		if !g.Perm.IsEmpty() {
			perm = "seq.Of(" + ints(g.Perm) + ")"
		}
		return fmt.Sprintf("tuple.Gather%d%s(t, %s)", g.Types.Len(), typeArgs(g.Types), perm)
	},
	"paren": paren,
	"ints":  ints,
	"alts":  func(ts seq.Types) string { return join(ts, " | ") },
	"zipType": func(z Zip) string {
		return tupleOf(seq.Map[seq.Vec[string]](z.Pairs, pairType))
	},
	"zipValue": func(z Zip) string {
		vals := seq.Map[seq.Vec[string]](seq.Iota(z.Pairs.Len()), func(i int) string {
			return fmt.Sprintf("tuple.Of2(x.V%d, y.V%d)", i, i)
		})
		return fmt.Sprintf("tuple.Of%d(%s)", vals.Len(), commasOf(vals))
	},
}

func typeArgs(ts seq.Types) string {
	if ts.IsEmpty() {
		return ""
	}
	return "[" + join(ts, ", ") + "]"
}

func tupleType(ts seq.Types) string {
	return fmt.Sprintf("tuple.T%d%s", ts.Len(), typeArgs(ts))
}

func tupleOf(elems seq.Vec[string]) string {
	if elems.IsEmpty() {
		return "tuple.T0"
	}
	return fmt.Sprintf("tuple.T%d[%s]", elems.Len(), commasOf(elems))
}

func pairType(p tuple.T2[seq.Type, seq.Type]) string {
	return tupleType(seq.Of(p.V0, p.V1))
}

func variantType(ts seq.Types) string {
	return fmt.Sprintf("variant.Of%d%s", ts.Len(), typeArgs(ts))
}

func ints(xs seq.Indices) string {
	return commasOf(seq.Map[seq.Vec[string]](xs, func(i int) string { return fmt.Sprint(i) }))
}

var shapesTemplate = template.Must(template.New("shapes").Funcs(shapesFuncs).Parse(shapesSrc))

const shapesSrc = `// Code generated by hetgen shapes. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	{{printf "%q" .}}
{{- end}}

	"code.hybscloud.com/hetero/seq"
	"code.hybscloud.com/hetero/tuple"
	"code.hybscloud.com/hetero/variant"
)
{{range .Tuples}}{{$name := .Name}}
// {{.Name}} is the tuple {{paren .Types}}.
type {{.Name}} = {{tupleType .Types}}
{{range .Selects}}
// {{.Name}} returns slots [{{ints .Perm}}] of t.
func {{.Name}}(t {{$name}}) {{tupleType .Types}} {
	return {{gatherOf .}}
}
{{end}}
{{- with .Sorted}}
// {{.Name}} returns the slots of t in stable type order.
func {{.Name}}(t {{$name}}) {{tupleType .Types}} {
	return {{gatherOf .}}
}
{{end}}
{{- range .Getters}}
// {{.Func}} returns the {{.Type}} slot of t.
func {{.Func}}(t {{$name}}) {{.Type}} {
	return t.V{{.Index}}
}
{{end}}
{{- range .Zips}}
// {{$name}}Zip{{.With}} pairs the slots of x and y up to the shorter of the two.
func {{$name}}Zip{{.With}}(x {{$name}}, y {{.With}}) {{zipType .}} {
	return {{zipValue .}}
}
{{end}}
{{- end}}
{{- range .Variants}}{{$name := .Name}}
// {{.Name}} is the variant <{{alts .Alternatives}}>.
// Its alternatives need {{.Storage.Size}} bytes aligned to {{.Storage.Align}}.
type {{.Name}} = {{variantType .Alternatives}}
{{range .Conversions}}
// {{$name}}From{{.From}} converts v into a {{$name}}.
func {{$name}}From{{.From}}(v {{.From}}) {{$name}} {
	var w {{$name}}
	variant.Assign(&w, v)
	return w
}
{{end}}
{{- end}}
`
