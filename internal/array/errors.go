package array

import "errors"

// Sentinel errors for the array package. Operations return these (usually
// wrapped with fmt.Errorf("op: %w", ...) for context) and callers match them
// with errors.Is. Panics are reserved for programmer errors such as reading
// an int64 view of a float64 buffer.
var (
	// ErrShape indicates a rank, dimension or size mismatch
	// (reshape, transpose, dot, concatenate, solve).
	ErrShape = errors.New("array: shape mismatch")

	// ErrIndex indicates an index count or bounds violation in indexed access.
	ErrIndex = errors.New("array: index out of range")

	// ErrValue indicates a domain violation not covered by a more
	// specific sentinel, such as concatenating an empty collection.
	ErrValue = errors.New("array: invalid value")

	// ErrEmptyArray is returned by reductions that are undefined
	// on a size-0 array (min, max, mean, median).
	ErrEmptyArray = errors.New("array: empty array")

	// ErrSingularMatrix is returned when Gauss-Jordan elimination
	// encounters a zero pivot with no row below to swap in.
	ErrSingularMatrix = errors.New("array: singular matrix")

	// ErrAxis indicates an axis outside the supported range
	// (flip outside [0, rank), concatenate axis other than 0 or 1).
	ErrAxis = errors.New("array: unsupported axis")

	// ErrDivisionByZero is returned for scalar division by zero.
	// Array-array division instead substitutes 0 per element.
	ErrDivisionByZero = errors.New("array: division by zero")

	// ErrUnsupportedOperand indicates an element-kind mismatch between
	// a raw buffer and the typed facade wrapping it.
	ErrUnsupportedOperand = errors.New("array: unsupported operand kind")
)
