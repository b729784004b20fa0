package array

import (
	"fmt"
	"math"
	"sort"
)

// Sum returns the sum of all elements (0 for an empty array).
func (a *Array[T]) Sum() T {
	var sum T
	for _, v := range a.Data() {
		sum += v
	}
	return sum
}

// Prod returns the product of all elements (1 for an empty array).
func (a *Array[T]) Prod() T {
	var prod T = 1
	for _, v := range a.Data() {
		prod *= v
	}
	return prod
}

// Min returns the smallest element.
// Fails with ErrEmptyArray when the array has size 0.
func (a *Array[T]) Min() (T, error) {
	data := a.Data()
	if len(data) == 0 {
		var zero T
		return zero, fmt.Errorf("min: %w", ErrEmptyArray)
	}

	min := data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
	}
	return min, nil
}

// Max returns the largest element.
// Fails with ErrEmptyArray when the array has size 0.
func (a *Array[T]) Max() (T, error) {
	data := a.Data()
	if len(data) == 0 {
		var zero T
		return zero, fmt.Errorf("max: %w", ErrEmptyArray)
	}

	max := data[0]
	for _, v := range data[1:] {
		if v > max {
			max = v
		}
	}
	return max, nil
}

// Mean returns the arithmetic mean of all elements.
// Fails with ErrEmptyArray when the array has size 0.
func (a *Array[T]) Mean() (float64, error) {
	data := a.Data()
	if len(data) == 0 {
		return 0, fmt.Errorf("mean: %w", ErrEmptyArray)
	}

	sum := 0.0
	for _, v := range data {
		sum += float64(v)
	}
	return sum / float64(len(data)), nil
}

// Variance returns the population variance (divisor = size, not size-1).
// Fails with ErrEmptyArray when the array has size 0.
func (a *Array[T]) Variance() (float64, error) {
	mean, err := a.Mean()
	if err != nil {
		return 0, fmt.Errorf("variance: %w", ErrEmptyArray)
	}

	data := a.Data()
	sum := 0.0
	for _, v := range data {
		d := float64(v) - mean
		sum += d * d
	}
	return sum / float64(len(data)), nil
}

// Std returns the population standard deviation.
// Fails with ErrEmptyArray when the array has size 0.
func (a *Array[T]) Std() (float64, error) {
	variance, err := a.Variance()
	if err != nil {
		return 0, fmt.Errorf("std: %w", ErrEmptyArray)
	}
	return math.Sqrt(variance), nil
}

// Median returns the median of all elements, computed over a sorted copy of
// the buffer. An even size averages the two central elements.
// Fails with ErrEmptyArray when the array has size 0.
func (a *Array[T]) Median() (float64, error) {
	data := a.Data()
	if len(data) == 0 {
		return 0, fmt.Errorf("median: %w", ErrEmptyArray)
	}

	sorted := make([]float64, len(data))
	for i, v := range data {
		sorted[i] = float64(v)
	}
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}
	return sorted[mid], nil
}

// All reports whether every element is non-zero.
func (a *Array[T]) All() bool {
	for _, v := range a.Data() {
		if v == 0 {
			return false
		}
	}
	return true
}

// Any reports whether at least one element is non-zero.
func (a *Array[T]) Any() bool {
	for _, v := range a.Data() {
		if v != 0 {
			return true
		}
	}
	return false
}
