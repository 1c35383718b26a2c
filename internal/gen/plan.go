// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"code.hybscloud.com/hetero/seq"
	"code.hybscloud.com/hetero/tuple"
	"code.hybscloud.com/hetero/variant"
)

// MaxArity is the largest arity of the tuple and variant families.
const MaxArity = 6

// Options configure planning.
type Options struct {
	// Arch sizes the resolved types. Defaults to amd64.
	Arch   string
	Logger zerolog.Logger
}

// Plan is a manifest with every permutation computed and every shape
// contract checked. Rendering a plan cannot fail on shape grounds.
type Plan struct {
	Package  string
	Imports  []string
	Tuples   []*TuplePlan
	Variants []*VariantPlan
}

// TuplePlan is the specialization of one tuple shape.
type TuplePlan struct {
	Name    string
	Types   seq.Types
	Selects []Gather
	Sorted  *Gather // nil unless sortByType is set
	Getters []Getter
	Zips    []Zip
}

// Gather is a permutation of the slots of a tuple and the shape it yields.
type Gather struct {
	Name  string
	Perm  seq.Indices
	Types seq.Types
}

// Getter reads the single slot of a given type.
type Getter struct {
	Func  string
	Type  seq.Type
	Index int
}

// Zip pairs the slots of a tuple with those of another shape.
// The pairing stops at the shorter of the two.
type Zip struct {
	With  string
	Pairs seq.Vec[tuple.T2[seq.Type, seq.Type]]
}

// VariantPlan is the specialization of one variant shape.
type VariantPlan struct {
	Name         string
	Alternatives seq.Types
	Storage      variant.Storage
	Conversions  []Conversion
	Duplicates   bool
}

// Conversion maps each alternative of variant From to the alternative
// of the target that receives its values.
type Conversion struct {
	From    string
	Targets seq.Indices
}

type planner struct {
	r        *Resolver
	log      zerolog.Logger
	tuples   map[string]*TuplePlan
	variants map[string]*VariantPlan
}

// NewPlan resolves the types of m and checks every shape.
// Shape violations are returned as a [*ShapeError].
func NewPlan(m *Manifest, opts Options) (*Plan, error) {
	if opts.Arch == "" {
		opts.Arch = "amd64"
	}
	r, err := NewResolver(opts.Arch, m.Imports, m.Types)
	if err != nil {
		return nil, err
	}
	p := &planner{
		r:        r,
		log:      opts.Logger,
		tuples:   make(map[string]*TuplePlan),
		variants: make(map[string]*VariantPlan),
	}
	plan := &Plan{Package: m.Package, Imports: m.Imports}

	// Shapes may refer to shapes declared later: resolve all types first.
	for _, s := range m.Tuples {
		tp, err := p.tupleTypes(s)
		if err != nil {
			return nil, err
		}
		p.tuples[s.Name] = tp
		plan.Tuples = append(plan.Tuples, tp)
	}
	for _, s := range m.Variants {
		vp, err := p.variantTypes(s)
		if err != nil {
			return nil, err
		}
		p.variants[s.Name] = vp
		plan.Variants = append(plan.Variants, vp)
	}

	for i, s := range m.Tuples {
		if err := p.tuple(plan.Tuples[i], s); err != nil {
			return nil, err
		}
	}
	for i, s := range m.Variants {
		if err := p.variant(plan.Variants[i], s); err != nil {
			return nil, err
		}
	}
	return plan, nil
}

func (p *planner) resolveShape(shape string, exprs []string) (seq.Types, error) {
	if len(exprs) > MaxArity {
		return seq.Types{}, shapeErr(shape, "", ErrArityOverflow, "%d types, at most %d", len(exprs), MaxArity)
	}
	ts, err := p.r.ResolveAll(exprs)
	if err != nil {
		return seq.Types{}, &ShapeError{Shape: shape, Err: ErrUnknownType, Detail: err.Error()}
	}
	return ts, nil
}

func (p *planner) tupleTypes(s TupleShape) (*TuplePlan, error) {
	ts, err := p.resolveShape("tuple "+s.Name, s.Types)
	if err != nil {
		return nil, err
	}
	return &TuplePlan{Name: s.Name, Types: ts}, nil
}

func (p *planner) variantTypes(s VariantShape) (*VariantPlan, error) {
	alts, err := p.resolveShape("variant "+s.Name, s.Alternatives)
	if err != nil {
		return nil, err
	}
	return &VariantPlan{Name: s.Name, Alternatives: alts, Storage: variant.LayoutOf(alts)}, nil
}

func (p *planner) tuple(tp *TuplePlan, s TupleShape) error {
	shape := "tuple " + s.Name
	n := tp.Types.Len()

	for _, sel := range s.Select {
		op := "select " + sel.Name
		perm := seq.Of(sel.Perm...)
		if perm.Len() > MaxArity {
			return shapeErr(shape, op, ErrArityOverflow, "%d indices, at most %d", perm.Len(), MaxArity)
		}
		inRange := func(i int) bool { return i >= 0 && i < n }
		if !seq.AllOf(perm, inRange) {
			bad := seq.Filter(perm, func(i int) bool { return !inRange(i) })
			return shapeErr(shape, op, ErrIndexOutOfRange, "%v not in [0,%d)", bad, n)
		}
		tp.Selects = append(tp.Selects, gather(s.Name+sel.Name, tp.Types, perm))
	}

	if s.SortByType != "" {
		less := map[string]func(a, b seq.Type) bool{
			"size":  seq.SmallerThan,
			"align": seq.LessAligned,
			"name":  seq.LessByName,
		}[s.SortByType]
		g := gather(s.Name+"By"+exported(s.SortByType), tp.Types, seq.SortIndices(tp.Types, less))
		tp.Sorted = &g
	}

	funcs := make(map[string]string)
	for _, expr := range s.Get {
		op := "get " + expr
		t, err := p.r.Resolve(expr)
		if err != nil {
			return &ShapeError{Shape: shape, Op: op, Err: ErrUnknownType, Detail: err.Error()}
		}
		same := func(x seq.Type) bool { return p.r.Identical(x, t) }
		switch c := seq.CountIf(tp.Types, same); {
		case c == 0:
			return shapeErr(shape, op, ErrMissingType, "in %s", paren(tp.Types))
		case c > 1:
			return shapeErr(shape, op, ErrAmbiguousType, "%d times in %s", c, paren(tp.Types))
		}
		name := s.Name + identFor(t.Name())
		if prev, ok := funcs[name]; ok {
			return shapeErr(shape, op, ErrAmbiguousType, "getter %s already reads %s", name, prev)
		}
		funcs[name] = t.Name()
		tp.Getters = append(tp.Getters, Getter{Func: name, Type: t, Index: seq.IndexOfFunc(tp.Types, t, p.r.Identical)})
	}

	for _, with := range s.Zip {
		other, ok := p.tuples[with]
		if !ok {
			return shapeErr(shape, "zip "+with, ErrUnknownShape, "no tuple named %s", with)
		}
		pairs := seq.Zip[seq.Vec[tuple.T2[seq.Type, seq.Type]]](tp.Types, other.Types, tuple.Of2[seq.Type, seq.Type])
		if m := other.Types.Len(); m != n {
			p.log.Warn().Str("tuple", s.Name).Str("with", with).
				Int("len", n).Int("other", m).
				Msgf("zip truncates to %d pairs", pairs.Len())
		}
		tp.Zips = append(tp.Zips, Zip{With: with, Pairs: pairs})
	}
	p.log.Debug().Str("tuple", s.Name).Int("arity", n).Msg("planned")
	return nil
}

func (p *planner) variant(vp *VariantPlan, s VariantShape) error {
	shape := "variant " + s.Name
	alts := vp.Alternatives
	if set := seq.MakeSetFunc(alts, p.r.Identical); set.Len() != alts.Len() {
		vp.Duplicates = true
		p.log.Warn().Str("variant", s.Name).Stringer("alternatives", alts).
			Msg("duplicate alternatives: Is, Get and Set resolve to the first")
	}
	for _, from := range s.ConvertFrom {
		op := "convertFrom " + from
		src, ok := p.variants[from]
		if !ok {
			return shapeErr(shape, op, ErrUnknownShape, "no variant named %s", from)
		}
		var targets seq.Indices
		for _, t := range src.Alternatives.All {
			i := p.target(alts, t)
			if i < 0 {
				return shapeErr(shape, op, ErrNotAssignable, "%s into %s", t, paren(alts))
			}
			targets = seq.InsertBack(targets, i)
		}
		vp.Conversions = append(vp.Conversions, Conversion{From: from, Targets: targets})
	}
	p.log.Debug().Str("variant", s.Name).Int("arity", alts.Len()).
		Uint64("size", uint64(vp.Storage.Size)).Uint64("align", uint64(vp.Storage.Align)).
		Msg("planned")
	return nil
}

// target mirrors variant.Assign: the identical type, then an interface
// alternative holding it, then a declared conversion.
func (p *planner) target(alts seq.Types, t seq.Type) int {
	if i := seq.IndexOfFunc(alts, t, p.r.Identical); i >= 0 {
		return i
	}
	for i, a := range alts.All {
		if p.r.Holds(a, t) {
			return i
		}
	}
	for i, a := range alts.All {
		if p.r.Converts(a, t) {
			return i
		}
	}
	return -1
}

func gather(name string, ts seq.Types, perm seq.Indices) Gather {
	return Gather{
		Name:  name,
		Perm:  perm,
		Types: seq.Map[seq.Types](perm, func(i int) seq.Type { return ts.At(i) }),
	}
}

// paren renders a shape as "(a, b, c)".
func paren(ts seq.Types) string {
	return "(" + join(ts, ", ") + ")"
}

func join(ts seq.Types, sep string) string {
	return strings.Join(seq.Collect(seq.Map[seq.Vec[string]](ts, seq.Type.Name)), sep)
}

func exported(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// identFor derives an identifier fragment from a type expression:
// "float64" gives "Float64", "[]byte" gives "SliceByte" and
// "time.Duration" gives "TimeDuration".
func identFor(expr string) string {
	r := strings.NewReplacer("[]", " slice ", "*", " ptr ", "map[", " map ", "chan ", " chan ")
	var b strings.Builder
	for _, w := range strings.FieldsFunc(r.Replace(expr), func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsDigit(c)
	}) {
		b.WriteString(exported(w))
	}
	return b.String()
}
