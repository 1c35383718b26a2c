// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"errors"
	"fmt"
)

// Shape contract violations. A [*ShapeError] wraps exactly one of them.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrAmbiguousType   = errors.New("type appears more than once")
	ErrMissingType     = errors.New("type does not appear")
	ErrNotAssignable   = errors.New("not assignable to any alternative")
	ErrArityOverflow   = errors.New("arity exceeds the generated families")
	ErrUnknownType     = errors.New("unknown type")
	ErrUnknownShape    = errors.New("unknown shape")
)

// ShapeError reports a shape that the runtime packages would reject,
// found before any code is generated.
type ShapeError struct {
	Shape  string // the manifest shape, e.g. "tuple Record"
	Op     string // the operation, e.g. "select Swapped"
	Detail string
	Err    error
}

func (e *ShapeError) Error() string {
	msg := e.Shape
	if e.Op != "" {
		msg += ": " + e.Op
	}
	msg += ": " + e.Err.Error()
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *ShapeError) Unwrap() error { return e.Err }

func shapeErr(shape, op string, err error, format string, args ...any) *ShapeError {
	return &ShapeError{Shape: shape, Op: op, Detail: fmt.Sprintf(format, args...), Err: err}
}
