package array

import (
	"errors"
	"math"
	"testing"
)

func TestSumProd(t *testing.T) {
	a, _ := FromSlice([]int64{1, 2, 3, 4}, Shape{2, 2})
	if got := a.Sum(); got != 10 {
		t.Errorf("Sum() = %d, want 10", got)
	}
	if got := a.Prod(); got != 24 {
		t.Errorf("Prod() = %d, want 24", got)
	}

	// Identities on the empty array.
	empty := Zeros[int64](Shape{0})
	if got := empty.Sum(); got != 0 {
		t.Errorf("empty Sum() = %d, want 0", got)
	}
	if got := empty.Prod(); got != 1 {
		t.Errorf("empty Prod() = %d, want 1", got)
	}
}

func TestMinMax(t *testing.T) {
	a, _ := FromSlice([]float64{3, -1, 7, 2}, Shape{4})

	min, err := a.Min()
	if err != nil {
		t.Fatalf("Min failed: %v", err)
	}
	if min != -1 {
		t.Errorf("Min() = %v, want -1", min)
	}

	max, err := a.Max()
	if err != nil {
		t.Fatalf("Max failed: %v", err)
	}
	if max != 7 {
		t.Errorf("Max() = %v, want 7", max)
	}
}

func TestMinMaxEmpty(t *testing.T) {
	empty := Zeros[float64](Shape{0})

	if _, err := empty.Min(); !errors.Is(err, ErrEmptyArray) {
		t.Errorf("empty Min() error = %v, want ErrEmptyArray", err)
	}
	if _, err := empty.Max(); !errors.Is(err, ErrEmptyArray) {
		t.Errorf("empty Max() error = %v, want ErrEmptyArray", err)
	}
	if _, err := empty.Mean(); !errors.Is(err, ErrEmptyArray) {
		t.Errorf("empty Mean() error = %v, want ErrEmptyArray", err)
	}
	if _, err := empty.Variance(); !errors.Is(err, ErrEmptyArray) {
		t.Errorf("empty Variance() error = %v, want ErrEmptyArray", err)
	}
	if _, err := empty.Std(); !errors.Is(err, ErrEmptyArray) {
		t.Errorf("empty Std() error = %v, want ErrEmptyArray", err)
	}
	if _, err := empty.Median(); !errors.Is(err, ErrEmptyArray) {
		t.Errorf("empty Median() error = %v, want ErrEmptyArray", err)
	}
}

func TestMeanVarStd(t *testing.T) {
	a, _ := FromSlice([]int64{1, 2, 3, 4}, Shape{4})

	mean, err := a.Mean()
	if err != nil {
		t.Fatalf("Mean failed: %v", err)
	}
	if mean != 2.5 {
		t.Errorf("Mean() = %v, want 2.5", mean)
	}

	// Population variance: divisor = size, not size-1.
	variance, err := a.Variance()
	if err != nil {
		t.Fatalf("Variance failed: %v", err)
	}
	if variance != 1.25 {
		t.Errorf("Variance() = %v, want 1.25", variance)
	}

	std, err := a.Std()
	if err != nil {
		t.Fatalf("Std failed: %v", err)
	}
	if math.Abs(std-1.1180339887498949) > 1e-12 {
		t.Errorf("Std() = %v, want ~1.1180", std)
	}
}

func TestMedian(t *testing.T) {
	odd, _ := FromSlice([]float64{5, 1, 3}, Shape{3})
	m, err := odd.Median()
	if err != nil {
		t.Fatalf("Median failed: %v", err)
	}
	if m != 3 {
		t.Errorf("odd Median() = %v, want 3", m)
	}

	even, _ := FromSlice([]int64{4, 1, 3, 2}, Shape{4})
	m, err = even.Median()
	if err != nil {
		t.Fatalf("Median failed: %v", err)
	}
	if m != 2.5 {
		t.Errorf("even Median() = %v, want 2.5", m)
	}

	// Median sorts a copy; the operand is untouched.
	assertElements(t, even, []int64{4, 1, 3, 2}, "operand after Median")
}

func TestAllAny(t *testing.T) {
	tests := []struct {
		data []int64
		all  bool
		any  bool
	}{
		{[]int64{1, 2, 3}, true, true},
		{[]int64{1, 0, 3}, false, true},
		{[]int64{0, 0, 0}, false, false},
		{[]int64{}, true, false},
	}

	for _, tt := range tests {
		a, err := FromSlice(tt.data, Shape{len(tt.data)})
		if err != nil {
			t.Fatalf("FromSlice(%v) failed: %v", tt.data, err)
		}
		if got := a.All(); got != tt.all {
			t.Errorf("All(%v) = %v, want %v", tt.data, got, tt.all)
		}
		if got := a.Any(); got != tt.any {
			t.Errorf("Any(%v) = %v, want %v", tt.data, got, tt.any)
		}
	}
}
