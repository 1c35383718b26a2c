// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package variant provides tagged unions over a fixed list of alternative
// types.
//
// [Of1] through [Of6] hold exactly one live alternative or nothing. The zero
// value holds the zero value of the first alternative. A variant becomes
// empty only through Destroy, or when a conversion in [Assign] fails.
//
//	var v variant.Of3[int, string, float64]
//	variant.Set(&v, "abc")
//	s, err := variant.Get[string](v) // "abc", nil
//	n, err := variant.Visit3(v,
//		func(int) int { return 0 },
//		func(s string) int { return len(s) },
//		func(float64) int { return 2 },
//	) // 3, nil
//
// Alternatives whose values need cleanup implement [Destroyer]. The
// destructor of the live value runs exactly when it stops being live: on
// Destroy, and before a different alternative is stored. Storing a value of
// the active alternative replaces it in place.
//
// [Assign] copies between variants with different alternative sets: the
// same type first, then an interface alternative that holds the value,
// then an alternative whose pointer implements [Converter].
//
// Reading an empty variant returns [ErrEmptyVariant]. Asking for a type
// that is not active, or storing a type that is not an alternative, panics.
package variant

//go:generate go run ../cmd/hetgen family variant --max-arity 6 -o variant_gen.go
