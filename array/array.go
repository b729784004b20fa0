// Copyright 2025 The narray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides the public API of the narray library: a minimal
// multidimensional numeric array over a flat, contiguous, exclusively owned
// buffer, with shape-aware indexing, element-wise arithmetic, reductions,
// elementary linear algebra and stacking.
//
// Arrays come in two element kinds selected by the type parameter:
// int64 (whole numbers, truncating division) and float64 (fractional
// numbers, exact division).
//
// Example:
//
//	a, _ := array.FromSlice([]int64{4, 7, 2, 6}, array.Shape{2, 2})
//	det, _ := a.Det()          // 10
//	inv, _ := a.Inv()          // [[0.6 -0.7] [-0.2 0.4]], always float64
//	x, _ := a.Solve(array.FromValues[int64](1, 0))
package array

import (
	"github.com/narray-ml/narray/internal/array"
)

// Type aliases for the public API.

// DType is a constraint for supported array element kinds: int64 or float64.
type DType = array.DType

// DataType represents the runtime element kind of an array.
type DataType = array.DataType

// Element kind constants.
const (
	Int64   DataType = array.Int64
	Float64 DataType = array.Float64
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} describes a 3D array with dimensions 2×3×4.
type Shape = array.Shape

// Array is a generic multidimensional array with element type T.
//
// Operations never mutate their operands except single-element assignment
// (Set, SetItem) and the mutating Reshape; everything else returns a fresh
// Array over its own buffer.
type Array[T DType] = array.Array[T]

// Sentinel errors, matched with errors.Is.
var (
	ErrShape              = array.ErrShape
	ErrIndex              = array.ErrIndex
	ErrValue              = array.ErrValue
	ErrEmptyArray         = array.ErrEmptyArray
	ErrSingularMatrix     = array.ErrSingularMatrix
	ErrAxis               = array.ErrAxis
	ErrDivisionByZero     = array.ErrDivisionByZero
	ErrUnsupportedOperand = array.ErrUnsupportedOperand
)

// Creation functions

// Zeros creates an array filled with zeros.
//
// Example:
//
//	a := array.Zeros[float64](array.Shape{2, 3})
func Zeros[T DType](shape Shape) *Array[T] {
	return array.Zeros[T](shape)
}

// Ones creates an array filled with ones.
func Ones[T DType](shape Shape) *Array[T] {
	return array.Ones[T](shape)
}

// Full creates an array filled with a specific value.
func Full[T DType](shape Shape, value T) *Array[T] {
	return array.Full(shape, value)
}

// Empty creates an array of the given shape holding the kind's
// default value (0) in every element.
func Empty[T DType](shape Shape) *Array[T] {
	return array.Empty[T](shape)
}

// Eye creates an n×n identity matrix.
func Eye[T DType](n int) *Array[T] {
	return array.Eye[T](n)
}

// FromSlice creates an array from a Go slice. The slice is copied into the
// array's own buffer and the shape is validated against the element count.
//
// Example:
//
//	a, err := array.FromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*Array[T], error) {
	return array.FromSlice(data, shape)
}

// FromValues creates a rank-1 array holding the given elements.
func FromValues[T DType](values ...T) *Array[T] {
	return array.FromValues(values...)
}

// New wraps a RawArray in a typed Array facade.
// Returns ErrUnsupportedOperand if the buffer's kind does not match T.
func New[T DType](raw *RawArray) (*Array[T], error) {
	return array.New[T](raw)
}

// NewRaw creates a new raw array with the given shape and element kind.
//
// This is a low-level function. Most users should use creation functions
// like Zeros, Ones or FromSlice instead.
func NewRaw(shape Shape, dtype DataType) (*RawArray, error) {
	return array.NewRaw(shape, dtype)
}

// Stacking functions

// Concat concatenates arrays along axis 0 (row-wise) or axis 1 (column-wise).
//
// Example:
//
//	a := array.Ones[float64](array.Shape{2, 3})
//	b := array.Zeros[float64](array.Shape{2, 3})
//	c, _ := array.Concat([]*array.Array[float64]{a, b}, 0) // Shape: [4, 3]
func Concat[T DType](arrays []*Array[T], axis int) (*Array[T], error) {
	return array.Concat(arrays, axis)
}

// VStack stacks arrays row-wise (axis 0).
func VStack[T DType](arrays ...*Array[T]) (*Array[T], error) {
	return array.VStack(arrays...)
}

// HStack stacks arrays column-wise (axis 1).
func HStack[T DType](arrays ...*Array[T]) (*Array[T], error) {
	return array.HStack(arrays...)
}

// Math-function mapping

// Apply maps a scalar function over every element, always producing a
// float64-kind array of the same shape.
func Apply[T DType](a *Array[T], f func(float64) float64) *Array[float64] {
	return array.Apply(a, f)
}

// Sin maps math.Sin over every element.
func Sin[T DType](a *Array[T]) *Array[float64] { return array.Sin(a) }

// Cos maps math.Cos over every element.
func Cos[T DType](a *Array[T]) *Array[float64] { return array.Cos(a) }

// Tan maps math.Tan over every element.
func Tan[T DType](a *Array[T]) *Array[float64] { return array.Tan(a) }

// Asin maps math.Asin over every element.
func Asin[T DType](a *Array[T]) *Array[float64] { return array.Asin(a) }

// Acos maps math.Acos over every element.
func Acos[T DType](a *Array[T]) *Array[float64] { return array.Acos(a) }

// Atan maps math.Atan over every element.
func Atan[T DType](a *Array[T]) *Array[float64] { return array.Atan(a) }

// Ceil maps math.Ceil over every element.
func Ceil[T DType](a *Array[T]) *Array[float64] { return array.Ceil(a) }

// Floor maps math.Floor over every element.
func Floor[T DType](a *Array[T]) *Array[float64] { return array.Floor(a) }

// Log maps the natural logarithm over every element.
func Log[T DType](a *Array[T]) *Array[float64] { return array.Log(a) }

// Log10 maps the base-10 logarithm over every element.
func Log10[T DType](a *Array[T]) *Array[float64] { return array.Log10(a) }

// Log2 maps the base-2 logarithm over every element.
func Log2[T DType](a *Array[T]) *Array[float64] { return array.Log2(a) }

// Sqrt maps math.Sqrt over every element.
func Sqrt[T DType](a *Array[T]) *Array[float64] { return array.Sqrt(a) }

// Exp maps math.Exp over every element.
func Exp[T DType](a *Array[T]) *Array[float64] { return array.Exp(a) }
