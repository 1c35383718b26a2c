// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package gen is the code generator behind hetgen.
//
// It renders the tuple and variant arity families ([Family]) and, from a
// YAML [Manifest], specializations for concrete shapes: named
// permutations, type-sorted orders, typed getters, zips and cross-variant
// conversions. [NewPlan] computes every permutation with package seq and
// rejects ill-shaped requests with a [*ShapeError] before anything is
// written, so the checks the runtime packages make with panics happen
// at generation time instead. [Render] turns a plan into a Go file.
package gen
