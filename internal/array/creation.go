package array

// Zeros creates an array filled with zeros.
//
// Example:
//
//	a := array.Zeros[float64](array.Shape{3, 4})
func Zeros[T DType](shape Shape) *Array[T] {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		panic(err) // Negative dimension is a programmer error here
	}

	// Buffer is already zero-initialized by make()
	return wrap[T](raw)
}

// Empty creates an uninitialized-equivalent array of the given shape.
// Elements hold the kind's default value (0).
func Empty[T DType](shape Shape) *Array[T] {
	return Zeros[T](shape)
}

// Ones creates an array filled with ones.
//
// Example:
//
//	a := array.Ones[int64](array.Shape{2, 3})
func Ones[T DType](shape Shape) *Array[T] {
	return Full[T](shape, 1)
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	a := array.Full[float64](array.Shape{3, 3}, 3.14)
func Full[T DType](shape Shape, value T) *Array[T] {
	a := Zeros[T](shape)
	data := a.Data()
	for i := range data {
		data[i] = value
	}
	return a
}

// Eye creates an n×n identity matrix.
//
// Example:
//
//	a := array.Eye[float64](3) // 3x3 identity matrix
func Eye[T DType](n int) *Array[T] {
	a := Zeros[T](Shape{n, n})
	data := a.Data()
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
	return a
}
