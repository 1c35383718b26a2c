// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tuple

// The arity family provides EqualN, CompareN and LessN. The remaining
// relational operators derive from them. Tuples of different arity have
// different types and cannot be passed together.

// NotEqual reports !eq(x, y).
func NotEqual[T any](eq func(x, y T) bool, x, y T) bool {
	return !eq(x, y)
}

// LessOrEqual reports compare(x, y) <= 0.
func LessOrEqual[T any](compare func(x, y T) int, x, y T) bool {
	return compare(x, y) <= 0
}

// Greater reports compare(x, y) > 0.
func Greater[T any](compare func(x, y T) int, x, y T) bool {
	return compare(x, y) > 0
}

// GreaterOrEqual reports compare(x, y) >= 0.
func GreaterOrEqual[T any](compare func(x, y T) int, x, y T) bool {
	return compare(x, y) >= 0
}
