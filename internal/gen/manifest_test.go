// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	m, err := LoadManifest(filepath.Join("testdata", "shapes.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "shapes", m.Package)
	require.Len(t, m.Types, 1)
	assert.Equal(t, "Label", m.Types[0].Name)
	assert.Equal(t, []string{"string"}, m.Types[0].ConvertsFrom)

	require.Len(t, m.Tuples, 2)
	rec := m.Tuples[0]
	assert.Equal(t, []string{"int32", "byte", "float64"}, rec.Types)
	assert.Equal(t, []Selection{{Name: "Swapped", Perm: []int{2, 1, 0}}, {Name: "Firsts", Perm: []int{0, 0}}}, rec.Select)
	assert.Equal(t, "size", rec.SortByType)

	require.Len(t, m.Variants, 5)
	assert.Equal(t, []string{"Small"}, m.Variants[0].ConvertFrom)
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseManifestRejectsUnknownFields(t *testing.T) {
	_, err := ParseManifest(strings.NewReader(`
package: shapes
tuples:
  - name: Record
    typez: [int]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
	assert.Contains(t, err.Error(), "typez")
}

func TestParseManifestEmpty(t *testing.T) {
	_, err := ParseManifest(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty manifest")
}

func TestParseManifestValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "package not an identifier",
			yaml: "package: my-shapes\n",
			want: `package "my-shapes" is not an identifier`,
		},
		{
			name: "unexported shape",
			yaml: "package: p\ntuples:\n  - name: record\n    types: [int]\n",
			want: "must be an exported identifier",
		},
		{
			name: "duplicate shape name",
			yaml: "package: p\ntuples:\n  - name: R\n    types: [int]\nvariants:\n  - name: R\n    alternatives: [int]\n",
			want: "name already used by a tuple",
		},
		{
			name: "bad sort key",
			yaml: "package: p\ntuples:\n  - name: R\n    types: [int]\n    sortByType: weight\n",
			want: `sortByType "weight" must be one of [size align name]`,
		},
		{
			name: "variant without alternatives",
			yaml: "package: p\nvariants:\n  - name: V\n",
			want: "alternatives list is required",
		},
		{
			name: "alignment not a power of two",
			yaml: "package: p\ntypes:\n  - name: Odd\n    size: 3\n    align: 3\n",
			want: "align 3 is not a power of two",
		},
		{
			name: "select name not an identifier",
			yaml: "package: p\ntuples:\n  - name: R\n    types: [int]\n    select:\n      - name: a-b\n        perm: [0]\n",
			want: `select name "a-b"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid manifest")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
