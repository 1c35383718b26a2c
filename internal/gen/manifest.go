// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"code.hybscloud.com/hetero/seq"
)

// Manifest lists the tuple and variant shapes of one generated file.
type Manifest struct {
	// Package is the package clause of the generated file.
	Package string `yaml:"package"`

	// Imports are package paths whose types the shapes reference
	// (e.g. "time" for time.Duration).
	Imports []string `yaml:"imports,omitempty"`

	// Types declares named types the generator cannot resolve itself.
	Types []TypeDecl `yaml:"types,omitempty"`

	Tuples   []TupleShape   `yaml:"tuples,omitempty"`
	Variants []VariantShape `yaml:"variants,omitempty"`
}

// TypeDecl describes a type declared outside the resolvable packages,
// usually one defined next to the generated file.
type TypeDecl struct {
	Name  string `yaml:"name"`
	Size  uint64 `yaml:"size"`
	Align uint64 `yaml:"align"`

	// ConvertsFrom lists the types the pointer's ConvertFrom accepts.
	ConvertsFrom []string `yaml:"convertsFrom,omitempty"`
}

// TupleShape is a tuple type and the algorithms to specialize for it.
type TupleShape struct {
	Name  string   `yaml:"name"`
	Types []string `yaml:"types"`

	Select     []Selection `yaml:"select,omitempty"`
	SortByType string      `yaml:"sortByType,omitempty"` // size, align or name
	Get        []string    `yaml:"get,omitempty"`
	Zip        []string    `yaml:"zip,omitempty"` // other tuple shapes
}

// Selection is a named permutation of slot indices.
type Selection struct {
	Name string `yaml:"name"`
	Perm []int  `yaml:"perm"`
}

// VariantShape is a variant type and the variants it converts from.
type VariantShape struct {
	Name         string   `yaml:"name"`
	Alternatives []string `yaml:"alternatives"`
	ConvertFrom  []string `yaml:"convertFrom,omitempty"`
}

// Sort keys accepted by sortByType.
var sortKeys = seq.Of("size", "align", "name")

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return ParseManifest(bytes.NewReader(data))
}

// ParseManifest decodes and validates a manifest. Unknown fields are
// rejected.
func ParseManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("failed to parse YAML: empty manifest")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if !token.IsIdentifier(m.Package) {
		return fmt.Errorf("package %q is not an identifier", m.Package)
	}
	names := make(map[string]string)
	declare := func(kind, name string) error {
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			return fmt.Errorf("%s name %q must be an exported identifier", kind, name)
		}
		if prev, ok := names[name]; ok {
			return fmt.Errorf("%s %s: name already used by a %s", kind, name, prev)
		}
		names[name] = kind
		return nil
	}
	for i, d := range m.Types {
		if d.Name == "" {
			return fmt.Errorf("types[%d]: name is required", i)
		}
		if d.Align == 0 || d.Align&(d.Align-1) != 0 {
			return fmt.Errorf("type %s: align %d is not a power of two", d.Name, d.Align)
		}
	}
	for _, t := range m.Tuples {
		if err := declare("tuple", t.Name); err != nil {
			return err
		}
		if t.SortByType != "" && !seq.IsMember(sortKeys, t.SortByType) {
			return fmt.Errorf("tuple %s: sortByType %q must be one of %v", t.Name, t.SortByType, sortKeys)
		}
		for _, s := range t.Select {
			if !token.IsIdentifier(s.Name) {
				return fmt.Errorf("tuple %s: select name %q is not an identifier", t.Name, s.Name)
			}
		}
	}
	for _, v := range m.Variants {
		if err := declare("variant", v.Name); err != nil {
			return err
		}
		if len(v.Alternatives) == 0 {
			return fmt.Errorf("variant %s: alternatives list is required and must be non-empty", v.Name)
		}
	}
	return nil
}
