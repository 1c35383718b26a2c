// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"fmt"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"code.hybscloud.com/hetero/seq"
)

// Resolver turns the type expressions of a manifest into [seq.Type]
// descriptors sized for one target architecture.
//
// Expressions are evaluated with go/types against the universe and the
// manifest imports. Names declared in the manifest take precedence and
// are the only way to describe types defined next to the generated file.
type Resolver struct {
	fset  *token.FileSet
	scope *types.Package
	sizes types.Sizes
	decls map[string]TypeDecl
	cache map[string]resolved
}

type resolved struct {
	desc seq.Type
	typ  types.Type // nil for declared types
}

// NewResolver returns a resolver for arch (e.g. "amd64"). Imports are
// loaded with go/packages so their exported types can be named.
func NewResolver(arch string, imports []string, decls []TypeDecl) (*Resolver, error) {
	sizes := types.SizesFor("gc", arch)
	if sizes == nil {
		return nil, fmt.Errorf("unsupported architecture %q", arch)
	}
	r := &Resolver{
		fset:  token.NewFileSet(),
		scope: types.NewPackage("hetgen/shapes", "shapes"),
		sizes: sizes,
		decls: make(map[string]TypeDecl, len(decls)),
		cache: make(map[string]resolved),
	}
	for _, d := range decls {
		r.decls[d.Name] = d
	}
	if len(imports) > 0 {
		if err := r.load(imports); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Resolver) load(paths []string) error {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedTypes, Fset: r.fset}
	pkgs, err := packages.Load(cfg, paths...)
	if err != nil {
		return fmt.Errorf("loading imports: %w", err)
	}
	for _, p := range pkgs {
		if len(p.Errors) > 0 {
			return fmt.Errorf("loading %s: %v", p.PkgPath, p.Errors[0])
		}
		pn := types.NewPkgName(token.NoPos, r.scope, p.Types.Name(), p.Types)
		if alt := r.scope.Scope().Insert(pn); alt != nil {
			return fmt.Errorf("import %s: name %s already used by %s", p.PkgPath, pn.Name(), alt.(*types.PkgName).Imported().Path())
		}
	}
	return nil
}

// Resolve returns the descriptor of the type expression expr.
// Unresolvable expressions are reported with ErrUnknownType.
func (r *Resolver) Resolve(expr string) (seq.Type, error) {
	res, err := r.lookup(expr)
	return res.desc, err
}

func (r *Resolver) lookup(expr string) (resolved, error) {
	expr = strings.TrimSpace(expr)
	if res, ok := r.cache[expr]; ok {
		return res, nil
	}
	var res resolved
	if d, ok := r.decls[expr]; ok {
		res.desc = seq.Describe(d.Name, uintptr(d.Size), uintptr(d.Align))
	} else {
		tv, err := types.Eval(r.fset, r.scope, token.NoPos, expr)
		if err != nil {
			return resolved{}, fmt.Errorf("%w %q: %v", ErrUnknownType, expr, err)
		}
		if !tv.IsType() {
			return resolved{}, fmt.Errorf("%w %q: not a type", ErrUnknownType, expr)
		}
		name := types.TypeString(tv.Type, func(p *types.Package) string { return p.Name() })
		res.desc = seq.Describe(name, uintptr(r.sizes.Sizeof(tv.Type)), uintptr(r.sizes.Alignof(tv.Type)))
		res.typ = tv.Type
	}
	r.cache[expr] = res
	r.cache[res.desc.Name()] = res
	return res, nil
}

// ResolveAll resolves a list of type expressions into a shape.
func (r *Resolver) ResolveAll(exprs []string) (seq.Types, error) {
	var ts seq.Types
	for _, e := range exprs {
		t, err := r.Resolve(e)
		if err != nil {
			return seq.Types{}, err
		}
		ts = seq.InsertBack(ts, t)
	}
	return ts, nil
}

func (r *Resolver) goType(t seq.Type) types.Type { return r.cache[t.Name()].typ }

// Identical reports whether a and b denote the same type.
func (r *Resolver) Identical(a, b seq.Type) bool {
	if a.Name() == b.Name() {
		return true
	}
	x, y := r.goType(a), r.goType(b)
	return x != nil && y != nil && types.Identical(x, y)
}

// Holds reports whether an interface type dst can hold values of src.
func (r *Resolver) Holds(dst, src seq.Type) bool {
	x, y := r.goType(src), r.goType(dst)
	return x != nil && y != nil && types.IsInterface(y) && types.AssignableTo(x, y)
}

// Converts reports whether the manifest declares that dst converts from src.
func (r *Resolver) Converts(dst, src seq.Type) bool {
	d, ok := r.decls[dst.Name()]
	if !ok {
		return false
	}
	for _, e := range d.ConvertsFrom {
		from, err := r.Resolve(e)
		if err == nil && r.Identical(from, src) {
			return true
		}
	}
	return false
}
