package array

import "fmt"

// Concat concatenates arrays along axis 0 (row-wise) or axis 1 (column-wise).
//
// Axis 0 requires every input to match the first's trailing dimensions (all
// dims except dim 0); the result's first dimension is the sum of the inputs'.
// Axis 1 requires rank >= 2 and equal dimensions everywhere except dim 1; row
// i of the result is the concatenation of row i of each input in order.
// Any other axis fails with ErrAxis.
func Concat[T DType](arrays []*Array[T], axis int) (*Array[T], error) {
	if len(arrays) == 0 {
		return nil, fmt.Errorf("concat: %w: at least one array required", ErrValue)
	}

	switch axis {
	case 0:
		return concatAxis0(arrays)
	case 1:
		return concatAxis1(arrays)
	default:
		return nil, fmt.Errorf("concat: %w: axis %d (only 0 and 1 supported)", ErrAxis, axis)
	}
}

// VStack stacks arrays row-wise (axis 0).
func VStack[T DType](arrays ...*Array[T]) (*Array[T], error) {
	return Concat(arrays, 0)
}

// HStack stacks arrays column-wise (axis 1).
func HStack[T DType](arrays ...*Array[T]) (*Array[T], error) {
	return Concat(arrays, 1)
}

func concatAxis0[T DType](arrays []*Array[T]) (*Array[T], error) {
	first := arrays[0].Shape()
	rows := 0
	for i, a := range arrays {
		shape := a.Shape()
		if len(shape) != len(first) {
			return nil, fmt.Errorf("concat: %w: array %d has rank %d, expected %d", ErrShape, i, len(shape), len(first))
		}
		if len(shape) == 0 {
			return nil, fmt.Errorf("concat: %w: cannot concatenate rank-0 arrays", ErrShape)
		}
		for d := 1; d < len(shape); d++ {
			if shape[d] != first[d] {
				return nil, fmt.Errorf("concat: %w: array %d dimension %d is %d, expected %d",
					ErrShape, i, d, shape[d], first[d])
			}
		}
		rows += shape[0]
	}

	outShape := first.Clone()
	outShape[0] = rows
	out := Zeros[T](outShape)

	// Row-major axis-0 concatenation is a contiguous buffer append.
	od := out.Data()
	offset := 0
	for _, a := range arrays {
		offset += copy(od[offset:], a.Data())
	}
	return out, nil
}

func concatAxis1[T DType](arrays []*Array[T]) (*Array[T], error) {
	first := arrays[0].Shape()
	if len(first) < 2 {
		return nil, fmt.Errorf("concat: %w: axis 1 requires rank >= 2, got rank %d", ErrShape, len(first))
	}

	cols := 0
	for i, a := range arrays {
		shape := a.Shape()
		if len(shape) != len(first) {
			return nil, fmt.Errorf("concat: %w: array %d has rank %d, expected %d", ErrShape, i, len(shape), len(first))
		}
		for d := 0; d < len(shape); d++ {
			if d == 1 {
				continue
			}
			if shape[d] != first[d] {
				return nil, fmt.Errorf("concat: %w: array %d dimension %d is %d, expected %d",
					ErrShape, i, d, shape[d], first[d])
			}
		}
		cols += shape[1]
	}

	outShape := first.Clone()
	outShape[1] = cols
	out := Zeros[T](outShape)
	od := out.Data()
	outStrides := outShape.ComputeStrides()

	// Interleave row by row: every element keeps its coordinates except
	// along dim 1, which is shifted by the columns already written.
	offset := 0
	for _, a := range arrays {
		data := a.Data()
		shape := a.Shape()
		strides := shape.ComputeStrides()

		for i := range data {
			outIdx := 0
			temp := i
			for d := 0; d < len(shape); d++ {
				coord := temp / strides[d]
				temp %= strides[d]

				if d == 1 {
					coord += offset
				}
				outIdx += coord * outStrides[d]
			}
			od[outIdx] = data[i]
		}

		offset += shape[1]
	}
	return out, nil
}

// Flip returns a new array of identical shape with element order reversed
// along the given axis. Fails with ErrAxis when axis is outside [0, rank).
func (a *Array[T]) Flip(axis int) (*Array[T], error) {
	shape := a.Shape()
	if axis < 0 || axis >= len(shape) {
		return nil, fmt.Errorf("flip: %w: axis %d for rank %d", ErrAxis, axis, len(shape))
	}

	out := Zeros[T](shape)
	ad, od := a.Data(), out.Data()
	strides := shape.ComputeStrides()
	dim := shape[axis]

	for i := range ad {
		outIdx := 0
		temp := i
		for d := 0; d < len(shape); d++ {
			coord := temp / strides[d]
			temp %= strides[d]

			if d == axis {
				coord = dim - 1 - coord
			}
			outIdx += coord * strides[d]
		}
		od[outIdx] = ad[i]
	}
	return out, nil
}

// Reverse returns a new array of identical shape with the entire flattened
// element order reversed.
func (a *Array[T]) Reverse() *Array[T] {
	out := Zeros[T](a.Shape())
	ad, od := a.Data(), out.Data()
	n := len(ad)
	for i := range ad {
		od[n-1-i] = ad[i]
	}
	return out
}

// Fliplr flips along axis 1. Requires rank >= 2.
func (a *Array[T]) Fliplr() (*Array[T], error) {
	if a.Rank() < 2 {
		return nil, fmt.Errorf("fliplr: %w: requires rank >= 2, got rank %d", ErrShape, a.Rank())
	}
	return a.Flip(1)
}

// Flipud flips along axis 0. Requires rank >= 2.
func (a *Array[T]) Flipud() (*Array[T], error) {
	if a.Rank() < 2 {
		return nil, fmt.Errorf("flipud: %w: requires rank >= 2, got rank %d", ErrShape, a.Rank())
	}
	return a.Flip(0)
}

// Transpose returns the transpose of a rank-2 array as a new buffer.
// Fails with ErrShape for any other rank.
func (a *Array[T]) Transpose() (*Array[T], error) {
	shape := a.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("transpose: %w: requires a rank-2 array, got rank %d", ErrShape, len(shape))
	}

	rows, cols := shape[0], shape[1]
	out := Zeros[T](Shape{cols, rows})
	ad, od := a.Data(), out.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			od[j*rows+i] = ad[i*cols+j]
		}
	}
	return out, nil
}

// Narrow returns a copy of the sub-array spanning [start, start+length)
// along the given dimension, with all other dimensions intact.
func (a *Array[T]) Narrow(dim, start, length int) (*Array[T], error) {
	shape := a.Shape()
	if dim < 0 || dim >= len(shape) {
		return nil, fmt.Errorf("narrow: %w: dimension %d for rank %d", ErrAxis, dim, len(shape))
	}
	if start < 0 || length < 0 || start+length > shape[dim] {
		return nil, fmt.Errorf("narrow: %w: range [%d, %d) for dimension of size %d",
			ErrIndex, start, start+length, shape[dim])
	}

	outShape := shape.Clone()
	outShape[dim] = length
	out := Zeros[T](outShape)
	ad, od := a.Data(), out.Data()
	strides := shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()

	for i := range od {
		inIdx := 0
		temp := i
		for d := 0; d < len(outShape); d++ {
			coord := temp / outStrides[d]
			temp %= outStrides[d]

			if d == dim {
				coord += start
			}
			inIdx += coord * strides[d]
		}
		od[i] = ad[inIdx]
	}
	return out, nil
}

// MaskedSelect returns a rank-1 array of the elements whose corresponding
// mask element is non-zero. The mask must have the same size as the array.
func (a *Array[T]) MaskedSelect(mask *Array[T]) (*Array[T], error) {
	if a.NumElements() != mask.NumElements() {
		return nil, fmt.Errorf("maskedselect: %w: size %d vs mask size %d",
			ErrShape, a.NumElements(), mask.NumElements())
	}

	ad, md := a.Data(), mask.Data()
	count := 0
	for _, v := range md {
		if v != 0 {
			count++
		}
	}

	out := Zeros[T](Shape{count})
	od := out.Data()
	j := 0
	for i, v := range md {
		if v != 0 {
			od[j] = ad[i]
			j++
		}
	}
	return out, nil
}
