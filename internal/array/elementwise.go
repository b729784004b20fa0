package array

import "fmt"

// binaryOp allocates a result with the left operand's shape and combines
// the two buffers element by element. Operands must have equal size; shapes
// need not match beyond that, since there is no broadcasting.
func binaryOp[T DType](op string, a, b *Array[T], f func(x, y T) T) (*Array[T], error) {
	if a.NumElements() != b.NumElements() {
		return nil, fmt.Errorf("%s: %w: size %d vs %d", op, ErrShape, a.NumElements(), b.NumElements())
	}

	out := Zeros[T](a.Shape())
	ad, bd, od := a.Data(), b.Data(), out.Data()
	for i := range ad {
		od[i] = f(ad[i], bd[i])
	}
	return out, nil
}

// scalarOp combines every element with a scalar, preserving shape and kind.
func scalarOp[T DType](a *Array[T], f func(x T) T) *Array[T] {
	out := Zeros[T](a.Shape())
	ad, od := a.Data(), out.Data()
	for i := range ad {
		od[i] = f(ad[i])
	}
	return out
}

// Add returns the element-wise sum a + other.
func (a *Array[T]) Add(other *Array[T]) (*Array[T], error) {
	return binaryOp("add", a, other, func(x, y T) T { return x + y })
}

// Sub returns the element-wise difference a - other.
func (a *Array[T]) Sub(other *Array[T]) (*Array[T], error) {
	return binaryOp("sub", a, other, func(x, y T) T { return x - y })
}

// Mul returns the element-wise product a * other.
func (a *Array[T]) Mul(other *Array[T]) (*Array[T], error) {
	return binaryOp("mul", a, other, func(x, y T) T { return x * y })
}

// Div returns the element-wise quotient a / other.
//
// Wherever the divisor element is 0 the result element is 0 — a saturating
// policy applied to both element kinds, in contrast to DivScalar which fails.
// Integer division truncates; float division is exact.
func (a *Array[T]) Div(other *Array[T]) (*Array[T], error) {
	return binaryOp("div", a, other, func(x, y T) T {
		if y == 0 {
			return 0
		}
		return x / y
	})
}

// Minimum returns the element-wise minimum of a and other.
func (a *Array[T]) Minimum(other *Array[T]) (*Array[T], error) {
	return binaryOp("minimum", a, other, func(x, y T) T {
		if y < x {
			return y
		}
		return x
	})
}

// Maximum returns the element-wise maximum of a and other.
func (a *Array[T]) Maximum(other *Array[T]) (*Array[T], error) {
	return binaryOp("maximum", a, other, func(x, y T) T {
		if y > x {
			return y
		}
		return x
	})
}

// AddScalar returns a new array with v added to every element.
func (a *Array[T]) AddScalar(v T) *Array[T] {
	return scalarOp(a, func(x T) T { return x + v })
}

// SubScalar returns a new array with v subtracted from every element.
func (a *Array[T]) SubScalar(v T) *Array[T] {
	return scalarOp(a, func(x T) T { return x - v })
}

// MulScalar returns a new array with every element multiplied by v.
func (a *Array[T]) MulScalar(v T) *Array[T] {
	return scalarOp(a, func(x T) T { return x * v })
}

// DivScalar returns a new array with every element divided by v.
// Division by zero fails with ErrDivisionByZero for both element kinds.
func (a *Array[T]) DivScalar(v T) (*Array[T], error) {
	if v == 0 {
		return nil, fmt.Errorf("div: %w", ErrDivisionByZero)
	}
	return scalarOp(a, func(x T) T { return x / v }), nil
}

// Neg returns the element-wise additive inverse.
func (a *Array[T]) Neg() *Array[T] {
	return scalarOp(a, func(x T) T { return -x })
}
