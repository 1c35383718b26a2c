// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	p := loadPlan(t, nil)
	src, err := Render(p)
	require.NoError(t, err)
	out := string(src)

	assert.Equal(t, []string{
		"Boxed", "BoxedFromValue", "Flags", "Named", "NamedFromText",
		"Record", "RecordBySize", "RecordByte", "RecordFirsts", "RecordFloat64",
		"RecordSwapped", "RecordZipFlags", "Small", "Text", "Value", "ValueFromSmall",
	}, declNames(t, "shapes_shapes.go", src))

	assert.Contains(t, out, "// Code generated by hetgen shapes. DO NOT EDIT.")
	assert.Contains(t, out, "type Record = tuple.T3[int32, byte, float64]")
	assert.Contains(t, out, "return tuple.Gather3[float64, byte, int32](t, seq.Of(2, 1, 0))")
	assert.Contains(t, out, "return tuple.Gather3[byte, int32, float64](t, seq.Of(1, 0, 2))")
	assert.Contains(t, out, "func RecordFloat64(t Record) float64 {")
	assert.Contains(t, out, "func RecordZipFlags(x Record, y Flags) tuple.T2[tuple.T2[int32, string], tuple.T2[byte, bool]] {")
	assert.Contains(t, out, "return tuple.Of2(tuple.Of2(x.V0, y.V0), tuple.Of2(x.V1, y.V1))")
	assert.Contains(t, out, "type Named = variant.Of2[error, Label]")
	assert.Contains(t, out, "variant.Assign(&w, v)")
}

func TestRenderPrunesImports(t *testing.T) {
	p, err := parsePlan(t, "package: p\ntuples:\n  - name: R\n    types: [int]\n")
	require.NoError(t, err)
	src, err := Render(p)
	require.NoError(t, err)
	assert.Contains(t, string(src), `"code.hybscloud.com/hetero/tuple"`)
	assert.NotContains(t, string(src), `"code.hybscloud.com/hetero/variant"`)
	assert.NotContains(t, string(src), `"code.hybscloud.com/hetero/seq"`)
}

func TestRenderEmptySelection(t *testing.T) {
	p, err := parsePlan(t, "package: p\ntuples:\n  - name: R\n    types: [int]\n    select:\n      - name: None\n        perm: []\n")
	require.NoError(t, err)
	src, err := Render(p)
	require.NoError(t, err)
	assert.Contains(t, string(src), "return tuple.Gather0(t, seq.Indices{})")
}
