package array

import "fmt"

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (no negative dimensions).
// A dimension of size 0 is legal and yields an empty array.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// FlatIndex converts a multi-index into a flat row-major offset.
// The index count must equal the rank and every component must lie
// in [0, dim) for its dimension.
func (s Shape) FlatIndex(indices ...int) (int, error) {
	if len(indices) != len(s) {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrIndex, len(s), len(indices))
	}

	offset := 0
	strides := s.ComputeStrides()
	for i, idx := range indices {
		if idx < 0 || idx >= s[i] {
			return 0, fmt.Errorf("%w: index %d out of bounds for dimension %d (size %d)", ErrIndex, idx, i, s[i])
		}
		offset += idx * strides[i]
	}
	return offset, nil
}

// MultiIndex converts a flat row-major offset into per-dimension coordinates.
// The inverse of FlatIndex; flat must lie in [0, NumElements).
func (s Shape) MultiIndex(flat int) []int {
	coords := make([]int, len(s))
	strides := s.ComputeStrides()
	for d := 0; d < len(s); d++ {
		coords[d] = flat / strides[d]
		flat %= strides[d]
	}
	return coords
}
