package array

import (
	"errors"
	"testing"
)

func TestAddSubMul(t *testing.T) {
	a, _ := FromSlice([]int64{1, 2, 3, 4}, Shape{2, 2})
	b, _ := FromSlice([]int64{10, 20, 30, 40}, Shape{2, 2})

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	assertElements(t, sum, []int64{11, 22, 33, 44}, "Add")

	diff, err := b.Sub(a)
	if err != nil {
		t.Fatalf("Sub failed: %v", err)
	}
	assertElements(t, diff, []int64{9, 18, 27, 36}, "Sub")

	prod, err := a.Mul(b)
	if err != nil {
		t.Fatalf("Mul failed: %v", err)
	}
	assertElements(t, prod, []int64{10, 40, 90, 160}, "Mul")
}

// Binary operands need equal size, not equal shape; the result takes
// the left operand's shape.
func TestBinarySizeNotShape(t *testing.T) {
	a, _ := FromSlice([]int64{1, 2, 3, 4}, Shape{2, 2})
	b, _ := FromSlice([]int64{1, 1, 1, 1}, Shape{4})

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add with same size, different shape failed: %v", err)
	}
	assertShape(t, sum, Shape{2, 2}, "Add result")
	assertElements(t, sum, []int64{2, 3, 4, 5}, "Add")
}

func TestBinarySizeMismatch(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	b, _ := FromSlice([]float64{1, 2}, Shape{2})

	for name, op := range map[string]func(*Array[float64]) (*Array[float64], error){
		"Add":     a.Add,
		"Sub":     a.Sub,
		"Mul":     a.Mul,
		"Div":     a.Div,
		"Minimum": a.Minimum,
		"Maximum": a.Maximum,
	} {
		if _, err := op(b); !errors.Is(err, ErrShape) {
			t.Errorf("%s size mismatch error = %v, want ErrShape", name, err)
		}
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	a, _ := FromSlice([]float64{1.5, -2, 3.25, 0}, Shape{4})
	b, _ := FromSlice([]float64{0.5, 7, -1.75, 2}, Shape{4})

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	back, err := sum.Sub(b)
	if err != nil {
		t.Fatalf("Sub failed: %v", err)
	}
	if !back.Equal(a) {
		t.Errorf("(A + B) - B = %v, want %v", back.Data(), a.Data())
	}
}

func TestDivInteger(t *testing.T) {
	a, _ := FromSlice([]int64{7, 8, 9, 5}, Shape{4})
	b, _ := FromSlice([]int64{2, 0, 3, -2}, Shape{4})

	q, err := a.Div(b)
	if err != nil {
		t.Fatalf("Div failed: %v", err)
	}
	// Truncating division; zero divisor saturates to 0.
	assertElements(t, q, []int64{3, 0, 3, -2}, "Div")
}

func TestDivFloat(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	b, _ := FromSlice([]float64{4, 0, 2}, Shape{3})

	q, err := a.Div(b)
	if err != nil {
		t.Fatalf("Div failed: %v", err)
	}
	// The zero-divisor policy applies to both kinds.
	assertElements(t, q, []float64{0.25, 0, 1.5}, "Div")
}

func TestScalarOps(t *testing.T) {
	a, _ := FromSlice([]int64{1, 2, 3}, Shape{3})

	assertElements(t, a.AddScalar(10), []int64{11, 12, 13}, "AddScalar")
	assertElements(t, a.SubScalar(1), []int64{0, 1, 2}, "SubScalar")
	assertElements(t, a.MulScalar(3), []int64{3, 6, 9}, "MulScalar")

	q, err := a.DivScalar(2)
	if err != nil {
		t.Fatalf("DivScalar failed: %v", err)
	}
	assertElements(t, q, []int64{0, 1, 1}, "DivScalar")

	// Operands are never mutated.
	assertElements(t, a, []int64{1, 2, 3}, "operand after scalar ops")
}

func TestDivScalarByZero(t *testing.T) {
	a := Ones[float64](Shape{2})
	if _, err := a.DivScalar(0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("DivScalar(0) error = %v, want ErrDivisionByZero", err)
	}

	b := Ones[int64](Shape{2})
	if _, err := b.DivScalar(0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("int DivScalar(0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestMinimumMaximum(t *testing.T) {
	a, _ := FromSlice([]float64{1, 5, 3, -2}, Shape{4})
	b, _ := FromSlice([]float64{2, 4, 3, -7}, Shape{4})

	lo, err := a.Minimum(b)
	if err != nil {
		t.Fatalf("Minimum failed: %v", err)
	}
	assertElements(t, lo, []float64{1, 4, 3, -7}, "Minimum")

	hi, err := a.Maximum(b)
	if err != nil {
		t.Fatalf("Maximum failed: %v", err)
	}
	assertElements(t, hi, []float64{2, 5, 3, -2}, "Maximum")
}

func TestNeg(t *testing.T) {
	a, _ := FromSlice([]float64{1, -2, 0}, Shape{3})
	assertElements(t, a.Neg(), []float64{-1, 2, 0}, "Neg")
	assertElements(t, a, []float64{1, -2, 0}, "operand after Neg")
}
