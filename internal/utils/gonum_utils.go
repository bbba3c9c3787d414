package utils

import "gonum.org/v1/gonum/mat"

func AddVec(a, b *mat.VecDense) *mat.VecDense {
	if a.Len() != b.Len() {
		panic("Two vectors should have the same length.")
	}

	ret := mat.NewVecDense(a.Len(), nil)
	ret.AddVec(a, b)

	return ret
}

func LEThan(a, b *mat.VecDense) bool {
	if a.Len() != b.Len() {
		panic("Two vectors should have the same length.")
	}

	for i := 0; i < a.Len(); i += 1 {
		if a.AtVec(i) > b.AtVec(i) {
			return false
		}
	}

	return true
}
