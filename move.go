// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

// Move returns *p and resets *p to the zero value of T.
//
// Passing Move(&x) instead of x is the consuming form of any operation:
// the result owns the values and x is left in its zero state.
func Move[T any](p *T) T {
	v := *p
	var zero T
	*p = zero
	return v
}
