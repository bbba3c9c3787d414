package utils

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestLEThan(t *testing.T) {
	a := mat.NewVecDense(3, []float64{1, 2, 3})
	b := mat.NewVecDense(3, []float64{1, 2, 4})

	if !LEThan(a, b) {
		t.Fatal("expected a <= b componentwise")
	}
	if LEThan(b, a) {
		t.Fatal("did not expect b <= a")
	}
}

func TestAddVecDoesNotMutateInputs(t *testing.T) {
	a := mat.NewVecDense(2, []float64{1, 2})
	b := mat.NewVecDense(2, []float64{10, 20})

	sum := AddVec(a, b)

	if sum.AtVec(0) != 11 || sum.AtVec(1) != 22 {
		t.Fatalf("unexpected sum: %v", sum)
	}
	if a.AtVec(0) != 1 || b.AtVec(0) != 10 {
		t.Fatal("AddVec should not mutate its operands")
	}
}
