// Package array provides the core multidimensional array type and operations
// for the narray library: a dense, row-major, exclusively owned numeric buffer
// with shape-aware indexing, element-wise arithmetic, reductions, elementary
// linear algebra and stacking.
package array

// DType is a constraint for supported array element kinds.
// It uses Go generics to ensure compile-time kind safety.
type DType interface {
	~int64 | ~float64
}

// DataType represents runtime element-kind information for arrays.
type DataType int

// Supported element kinds. Int64 stores whole numbers with truncating
// division; Float64 stores fractional numbers with exact division.
const (
	Int64 DataType = iota
	Float64
)

// Size returns the byte size of one element of the kind.
func (dt DataType) Size() int {
	switch dt {
	case Int64, Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the element kind.
func (dt DataType) String() string {
	switch dt {
	case Int64:
		return "int64"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case int64:
		return Int64
	case float64:
		return Float64
	default:
		panic("unsupported type")
	}
}
