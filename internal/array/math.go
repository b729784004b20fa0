package array

import "math"

// Apply maps a scalar function over every element, always producing a
// Float64-kind array of the same shape regardless of the input kind.
//
// Domain violations (log of a non-positive value, sqrt of a negative)
// surface as the math package's NaN/Inf results and are not remapped.
func Apply[T DType](a *Array[T], f func(float64) float64) *Array[float64] {
	out := Zeros[float64](a.Shape())
	ad, od := a.Data(), out.Data()
	for i := range ad {
		od[i] = f(float64(ad[i]))
	}
	return out
}

// Sin maps math.Sin over every element.
func Sin[T DType](a *Array[T]) *Array[float64] { return Apply(a, math.Sin) }

// Cos maps math.Cos over every element.
func Cos[T DType](a *Array[T]) *Array[float64] { return Apply(a, math.Cos) }

// Tan maps math.Tan over every element.
func Tan[T DType](a *Array[T]) *Array[float64] { return Apply(a, math.Tan) }

// Asin maps math.Asin over every element.
func Asin[T DType](a *Array[T]) *Array[float64] { return Apply(a, math.Asin) }

// Acos maps math.Acos over every element.
func Acos[T DType](a *Array[T]) *Array[float64] { return Apply(a, math.Acos) }

// Atan maps math.Atan over every element.
func Atan[T DType](a *Array[T]) *Array[float64] { return Apply(a, math.Atan) }

// Ceil maps math.Ceil over every element.
func Ceil[T DType](a *Array[T]) *Array[float64] { return Apply(a, math.Ceil) }

// Floor maps math.Floor over every element.
func Floor[T DType](a *Array[T]) *Array[float64] { return Apply(a, math.Floor) }

// Log maps the natural logarithm over every element.
func Log[T DType](a *Array[T]) *Array[float64] { return Apply(a, math.Log) }

// Log10 maps the base-10 logarithm over every element.
func Log10[T DType](a *Array[T]) *Array[float64] { return Apply(a, math.Log10) }

// Log2 maps the base-2 logarithm over every element.
func Log2[T DType](a *Array[T]) *Array[float64] { return Apply(a, math.Log2) }

// Sqrt maps math.Sqrt over every element.
func Sqrt[T DType](a *Array[T]) *Array[float64] { return Apply(a, math.Sqrt) }

// Exp maps math.Exp over every element.
func Exp[T DType](a *Array[T]) *Array[float64] { return Apply(a, math.Exp) }
