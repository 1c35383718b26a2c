// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUniverse(t *testing.T) {
	r, err := NewResolver("amd64", nil, nil)
	require.NoError(t, err)

	tests := []struct {
		expr        string
		name        string
		size, align uintptr
	}{
		{"int32", "int32", 4, 4},
		{"byte", "byte", 1, 1},
		{"string", "string", 16, 8},
		{"[]byte", "[]byte", 24, 8},
		{"[3]int16", "[3]int16", 6, 2},
		{"map[string]int", "map[string]int", 8, 8},
		{"struct{ a int8; b int64 }", "struct{a int8; b int64}", 16, 8},
		{"error", "error", 16, 8},
		{" bool ", "bool", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := r.Resolve(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.name, got.Name())
			assert.Equal(t, tt.size, got.Size())
			assert.Equal(t, tt.align, got.Align())
		})
	}
}

func TestResolveArchSizes(t *testing.T) {
	r, err := NewResolver("386", nil, nil)
	require.NoError(t, err)
	got, err := r.Resolve("int")
	require.NoError(t, err)
	assert.Equal(t, uintptr(4), got.Size())

	_, err = NewResolver("z80", nil, nil)
	assert.ErrorContains(t, err, `unsupported architecture "z80"`)
}

func TestResolveDeclared(t *testing.T) {
	r, err := NewResolver("amd64", nil, []TypeDecl{{Name: "Point", Size: 16, Align: 8}})
	require.NoError(t, err)
	got, err := r.Resolve("Point")
	require.NoError(t, err)
	assert.Equal(t, "Point", got.Name())
	assert.Equal(t, uintptr(16), got.Size())
}

func TestResolveUnknown(t *testing.T) {
	r, err := NewResolver("amd64", nil, nil)
	require.NoError(t, err)
	for _, expr := range []string{"Point", "time.Duration", "1 + 2", "[]"} {
		_, err := r.Resolve(expr)
		assert.ErrorIs(t, err, ErrUnknownType, expr)
	}
}

func TestResolveImports(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	r, err := NewResolver("amd64", []string{"time"}, nil)
	require.NoError(t, err)
	got, err := r.Resolve("time.Duration")
	require.NoError(t, err)
	assert.Equal(t, "time.Duration", got.Name())
	assert.Equal(t, uintptr(8), got.Size())
}

func TestResolverRelations(t *testing.T) {
	r, err := NewResolver("amd64", nil, []TypeDecl{{Name: "Label", Size: 16, Align: 8, ConvertsFrom: []string{"string"}}})
	require.NoError(t, err)
	byteT, _ := r.Resolve("byte")
	uint8T, _ := r.Resolve("uint8")
	str, _ := r.Resolve("string")
	anyT, _ := r.Resolve("any")
	errT, _ := r.Resolve("error")
	label, _ := r.Resolve("Label")

	assert.True(t, r.Identical(byteT, uint8T))
	assert.False(t, r.Identical(byteT, str))

	assert.True(t, r.Holds(anyT, str))
	assert.False(t, r.Holds(errT, str))
	assert.False(t, r.Holds(str, str), "only interfaces hold other types")

	assert.True(t, r.Converts(label, str))
	assert.False(t, r.Converts(label, byteT))
	assert.False(t, r.Converts(str, label))
}
