package array

import (
	"fmt"
	"unsafe"
)

// RawArray is the low-level array representation: a flat, contiguous,
// homogeneous element buffer plus shape metadata and a runtime kind tag.
//
// Every RawArray exclusively owns its buffer. There is no reference counting
// and no implicit sharing: Clone performs a deep copy, and no two arrays ever
// alias the same memory after construction.
type RawArray struct {
	data   []byte   // Flat element buffer, row-major
	shape  Shape    // Array dimensions
	stride []int    // Memory strides (row-major)
	dtype  DataType // Runtime element-kind information
}

// NewRaw creates a new RawArray with the given shape and kind.
// The buffer is allocated zero-initialized.
func NewRaw(shape Shape, dtype DataType) (*RawArray, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	numElements := shape.NumElements()
	byteSize := numElements * dtype.Size()

	return &RawArray{
		data:   make([]byte, byteSize),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// Shape returns the array's shape.
func (r *RawArray) Shape() Shape {
	return r.shape
}

// Strides returns the array's memory strides.
func (r *RawArray) Strides() []int {
	return r.stride
}

// DType returns the array's element kind.
func (r *RawArray) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements.
func (r *RawArray) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total buffer size in bytes.
func (r *RawArray) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// AsInt64 interprets the buffer as []int64.
// Panics if the array's kind is not Int64.
func (r *RawArray) AsInt64() []int64 {
	if r.dtype != Int64 {
		panic(fmt.Sprintf("array kind is %s, not int64", r.dtype))
	}
	if len(r.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsFloat64 interprets the buffer as []float64.
// Panics if the array's kind is not Float64.
func (r *RawArray) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("array kind is %s, not float64", r.dtype))
	}
	if len(r.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// Clone creates a deep copy of the RawArray. The buffer is copied in full;
// the clone and the original never share memory.
func (r *RawArray) Clone() *RawArray {
	data := make([]byte, len(r.data))
	copy(data, r.data)
	return &RawArray{
		data:   data,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
	}
}

// setShape replaces the shape metadata in place. The caller must have
// verified that the element count is unchanged; the buffer is untouched.
func (r *RawArray) setShape(shape Shape) {
	r.shape = shape.Clone()
	r.stride = shape.ComputeStrides()
}
