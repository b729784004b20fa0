package array

import "fmt"

// Dot computes the dot product of two arrays.
//
// For two rank-1 arrays of equal size the result is a scalar-shaped array
// (Shape{}) holding the inner product. For two rank-2 arrays with matching
// inner dimensions (m×n · n×p) the result is the m×p matrix product.
// Any other rank combination, including exactly one rank-2 operand,
// fails with ErrShape.
func (a *Array[T]) Dot(other *Array[T]) (*Array[T], error) {
	aShape, bShape := a.Shape(), other.Shape()

	if len(aShape) == 1 && len(bShape) == 1 {
		if aShape[0] != bShape[0] {
			return nil, fmt.Errorf("dot: %w: vector sizes %d and %d", ErrShape, aShape[0], bShape[0])
		}

		out := Zeros[T](Shape{})
		ad, bd := a.Data(), other.Data()
		var sum T
		for i := range ad {
			sum += ad[i] * bd[i]
		}
		out.Data()[0] = sum
		return out, nil
	}

	if len(aShape) != 2 || len(bShape) != 2 {
		return nil, fmt.Errorf("dot: %w: requires two rank-1 or two rank-2 arrays, got rank %d and %d",
			ErrShape, len(aShape), len(bShape))
	}

	m, n := aShape[0], aShape[1]
	nAlt, p := bShape[0], bShape[1]
	if n != nAlt {
		return nil, fmt.Errorf("dot: %w: [%d,%d] @ [%d,%d]", ErrShape, m, n, nAlt, p)
	}

	out := Zeros[T](Shape{m, p})
	ad, bd, od := a.Data(), other.Data(), out.Data()

	// Naive O(n³) triple loop, as in the matmul kernels this follows.
	for i := 0; i < m; i++ {
		for j := 0; j < p; j++ {
			var sum T
			for k := 0; k < n; k++ {
				sum += ad[i*n+k] * bd[k*p+j]
			}
			od[i*p+j] = sum
		}
	}
	return out, nil
}

// squareFloat validates that the array is a square rank-2 matrix and returns
// a float64 working copy of its buffer plus the dimension.
func (a *Array[T]) squareFloat(op string) ([]float64, int, error) {
	shape := a.Shape()
	if len(shape) != 2 {
		return nil, 0, fmt.Errorf("%s: %w: requires a rank-2 array, got rank %d", op, ErrShape, len(shape))
	}
	if shape[0] != shape[1] {
		return nil, 0, fmt.Errorf("%s: %w: requires a square matrix, got %dx%d", op, ErrShape, shape[0], shape[1])
	}

	n := shape[0]
	m := make([]float64, n*n)
	for i, v := range a.Data() {
		m[i] = float64(v)
	}
	return m, n, nil
}

// Det computes the determinant of a square rank-2 array.
//
// Sizes 1-3 use the closed forms; larger matrices use Gaussian elimination
// with row-swap partial pivoting, accumulating the signed product of pivots.
func (a *Array[T]) Det() (float64, error) {
	m, n, err := a.squareFloat("det")
	if err != nil {
		return 0, err
	}

	switch n {
	case 0:
		return 1, nil // Empty product
	case 1:
		return m[0], nil
	case 2:
		return m[0]*m[3] - m[1]*m[2], nil
	case 3:
		// Cofactor expansion along the first row.
		return m[0]*(m[4]*m[8]-m[5]*m[7]) -
			m[1]*(m[3]*m[8]-m[5]*m[6]) +
			m[2]*(m[3]*m[7]-m[4]*m[6]), nil
	}

	det := 1.0
	for col := 0; col < n; col++ {
		// Zero pivot: swap in the first row below with a non-zero entry,
		// flipping the sign; no such row means the matrix is singular.
		if m[col*n+col] == 0 {
			swapped := false
			for row := col + 1; row < n; row++ {
				if m[row*n+col] != 0 {
					swapRows(m, n, col, row)
					det = -det
					swapped = true
					break
				}
			}
			if !swapped {
				return 0, nil
			}
		}

		pivot := m[col*n+col]
		for row := col + 1; row < n; row++ {
			factor := m[row*n+col] / pivot
			for k := col; k < n; k++ {
				m[row*n+k] -= factor * m[col*n+k]
			}
		}
		det *= pivot
	}
	return det, nil
}

// Inv computes the inverse of a square rank-2 array via Gauss-Jordan
// elimination on the augmented [A | I] system. The result is always
// Float64-kind regardless of the input kind.
//
// Fails with ErrSingularMatrix when a zero pivot has no non-zero row
// below it to swap in.
func (a *Array[T]) Inv() (*Array[float64], error) {
	m, n, err := a.squareFloat("inv")
	if err != nil {
		return nil, err
	}

	// Augmented n×2n system [A | I].
	width := 2 * n
	aug := make([]float64, n*width)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			aug[i*width+j] = m[i*n+j]
		}
		aug[i*width+n+i] = 1
	}

	for col := 0; col < n; col++ {
		if aug[col*width+col] == 0 {
			swapped := false
			for row := col + 1; row < n; row++ {
				if aug[row*width+col] != 0 {
					swapRows(aug, width, col, row)
					swapped = true
					break
				}
			}
			if !swapped {
				return nil, fmt.Errorf("inv: %w", ErrSingularMatrix)
			}
		}

		// Normalize the pivot row.
		pivot := aug[col*width+col]
		for k := 0; k < width; k++ {
			aug[col*width+k] /= pivot
		}

		// Eliminate the pivot column from every other row.
		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			factor := aug[row*width+col]
			if factor == 0 {
				continue
			}
			for k := 0; k < width; k++ {
				aug[row*width+k] -= factor * aug[col*width+k]
			}
		}
	}

	out := Zeros[float64](Shape{n, n})
	od := out.Data()
	for i := 0; i < n; i++ {
		copy(od[i*n:(i+1)*n], aug[i*width+n:i*width+width])
	}
	return out, nil
}

// Solve solves the linear system a·x = b for x.
//
// The receiver must be square (n×n). b may be a rank-1 array of length n
// (treated as an n×1 column, with a rank-1 result) or a rank-2 n×k array.
// Computed as Inv(a) · b — an explicit simplicity-over-robustness choice;
// there is no LU decomposition or pivot scaling beyond the inverse's own.
func (a *Array[T]) Solve(b *Array[T]) (*Array[float64], error) {
	shape := a.Shape()
	if len(shape) != 2 || shape[0] != shape[1] {
		return nil, fmt.Errorf("solve: %w: coefficient matrix must be square rank-2, got %v", ErrShape, shape)
	}
	n := shape[0]

	bShape := b.Shape()
	var cols int
	switch {
	case len(bShape) == 1 && bShape[0] == n:
		cols = 1
	case len(bShape) == 2 && bShape[0] == n:
		cols = bShape[1]
	default:
		return nil, fmt.Errorf("solve: %w: right-hand side %v incompatible with %dx%d system", ErrShape, bShape, n, n)
	}

	inv, err := a.Inv()
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	rhs := Zeros[float64](Shape{n, cols})
	rd := rhs.Data()
	for i, v := range b.Data() {
		rd[i] = float64(v)
	}

	x, err := inv.Dot(rhs)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	if len(bShape) == 1 {
		if err := x.Reshape(Shape{n}); err != nil {
			return nil, fmt.Errorf("solve: %w", err)
		}
	}
	return x, nil
}

// swapRows exchanges rows i and j of a flat row-major matrix of the
// given width.
func swapRows(m []float64, width, i, j int) {
	for k := 0; k < width; k++ {
		m[i*width+k], m[j*width+k] = m[j*width+k], m[i*width+k]
	}
}
