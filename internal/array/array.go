package array

import "fmt"

// Array is a generic multidimensional array with element type T.
//
// An Array composes a RawArray (the owned flat buffer plus shape metadata)
// and exposes every operation of the library. Operations never mutate their
// operands except single-element assignment (Set, SetItem) and the mutating
// Reshape; everything else allocates and returns a fresh Array.
//
// Example:
//
//	a, _ := array.FromSlice([]int64{4, 7, 2, 6}, array.Shape{2, 2})
//	det, _ := a.Det() // 10
type Array[T DType] struct {
	raw *RawArray
}

// New wraps a RawArray in a typed Array facade.
// Returns ErrUnsupportedOperand if the buffer's kind does not match T.
func New[T DType](raw *RawArray) (*Array[T], error) {
	var dummy T
	if dtype := inferDataType(dummy); raw.DType() != dtype {
		return nil, fmt.Errorf("%w: raw buffer is %s, facade is %s", ErrUnsupportedOperand, raw.DType(), dtype)
	}
	return &Array[T]{raw: raw}, nil
}

// wrap builds a typed facade over a raw buffer whose kind is known to match.
func wrap[T DType](raw *RawArray) *Array[T] {
	return &Array[T]{raw: raw}
}

// FromSlice creates an array from a Go slice.
// The slice is copied into the array's own buffer and the shape is
// validated against the element count.
func FromSlice[T DType](data []T, shape Shape) (*Array[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShape, shape, shape.NumElements(), len(data))
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}

	a := wrap[T](raw)
	copy(a.Data(), data)
	return a, nil
}

// FromValues creates a rank-1 array holding the given elements.
func FromValues[T DType](values ...T) *Array[T] {
	a, err := FromSlice(values, Shape{len(values)})
	if err != nil {
		panic(err) // Shape{len(values)} always matches
	}
	return a
}

// Shape returns the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.raw.Shape()
}

// DType returns the array's element kind.
func (a *Array[T]) DType() DataType {
	return a.raw.DType()
}

// NumElements returns the total number of elements.
func (a *Array[T]) NumElements() int {
	return a.raw.NumElements()
}

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int {
	return len(a.raw.Shape())
}

// Raw returns the underlying RawArray.
// Used for low-level access; most callers should use the typed API.
func (a *Array[T]) Raw() *RawArray {
	return a.raw
}

// Data returns a typed slice view of the array's buffer.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the array.
func (a *Array[T]) Data() []T {
	var dummy T
	switch any(dummy).(type) {
	case int64:
		return any(a.raw.AsInt64()).([]T)
	case float64:
		return any(a.raw.AsFloat64()).([]T)
	default:
		panic("unsupported type")
	}
}

// At returns the element at the given multi-index.
func (a *Array[T]) At(indices ...int) (T, error) {
	offset, err := a.Shape().FlatIndex(indices...)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.Data()[offset], nil
}

// Set assigns the element at the given multi-index.
// This is in-place mutation; shape and size are unchanged.
func (a *Array[T]) Set(value T, indices ...int) error {
	offset, err := a.Shape().FlatIndex(indices...)
	if err != nil {
		return err
	}
	a.Data()[offset] = value
	return nil
}

// Item returns the element at the given flat offset.
func (a *Array[T]) Item(i int) (T, error) {
	if i < 0 || i >= a.NumElements() {
		var zero T
		return zero, fmt.Errorf("%w: flat index %d out of bounds for size %d", ErrIndex, i, a.NumElements())
	}
	return a.Data()[i], nil
}

// SetItem assigns the element at the given flat offset.
// This is in-place mutation; shape and size are unchanged.
func (a *Array[T]) SetItem(i int, value T) error {
	if i < 0 || i >= a.NumElements() {
		return fmt.Errorf("%w: flat index %d out of bounds for size %d", ErrIndex, i, a.NumElements())
	}
	a.Data()[i] = value
	return nil
}

// Reshape replaces the shape metadata in place. The buffer order is
// unchanged (C-order reinterpretation); the element count must match.
//
// This is the only shape-mutating operation; see WithShape for the
// pure variant.
func (a *Array[T]) Reshape(shape Shape) error {
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("reshape: %w", err)
	}
	if shape.NumElements() != a.NumElements() {
		return fmt.Errorf("reshape: %w: cannot reshape size %d into %v", ErrShape, a.NumElements(), shape)
	}
	a.raw.setShape(shape)
	return nil
}

// WithShape returns a new array holding a copy of the buffer under the
// given shape. The receiver is untouched.
func (a *Array[T]) WithShape(shape Shape) (*Array[T], error) {
	out := a.Clone()
	if err := out.Reshape(shape); err != nil {
		return nil, err
	}
	return out, nil
}

// Clone creates a deep copy of the array.
func (a *Array[T]) Clone() *Array[T] {
	return wrap[T](a.raw.Clone())
}

// Equal reports whether two arrays have the same shape and elements.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if !a.Shape().Equal(other.Shape()) {
		return false
	}
	ad, bd := a.Data(), other.Data()
	for i := range ad {
		if ad[i] != bd[i] {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the array.
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array[%s]%v", a.raw.DType(), a.raw.Shape())
}
