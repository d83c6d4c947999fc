package mls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasisSize(t *testing.T) {
	// Multiset combination count C(D+d, d) against known closed forms
	expected := map[[2]int]int{
		{1, 0}: 1, {1, 1}: 2, {1, 2}: 3, {1, 3}: 4,
		{2, 0}: 1, {2, 1}: 3, {2, 2}: 6, {2, 3}: 10,
		{3, 0}: 1, {3, 1}: 4, {3, 2}: 10, {3, 3}: 20,
	}
	for dims, K := range expected {
		assert.Equalf(t, K, BasisSize(dims[0], dims[1]), "D=%d, d=%d", dims[0], dims[1])
		pb := NewPolynomialBasis(dims[0], dims[1])
		assert.Equal(t, K, pb.Size())
	}
}

func TestBasisEvaluation(t *testing.T) {
	{ // Degree 2 in 2D: [1, x, y, x², xy, y²]
		pb := NewPolynomialBasis(2, 2)
		out := make([]float64, pb.Size())
		pb.Evaluate(Point{2, 3}, out)
		assert.Equal(t, []float64{1, 2, 3, 4, 6, 9}, out)
	}
	{ // Degree 1 in 3D: [1, x, y, z]
		pb := NewPolynomialBasis(3, 1)
		out := make([]float64, pb.Size())
		pb.Evaluate(Point{-1, 0.5, 4}, out)
		assert.Equal(t, []float64{1, -1, 0.5, 4}, out)
	}
	{ // Index 0 is the constant-1 term at any point, any degree
		for dim := 1; dim <= 3; dim++ {
			for degree := 0; degree <= 3; degree++ {
				pb := NewPolynomialBasis(dim, degree)
				out := make([]float64, pb.Size())
				p := make(Point, dim)
				for k := range p {
					p[k] = float64(k) - 0.3
				}
				pb.Evaluate(p, out)
				assert.Equal(t, 1., out[0])
			}
		}
	}
	{ // Basis at the origin is the unit vector on the constant term
		pb := NewPolynomialBasis(2, 2)
		out := make([]float64, pb.Size())
		pb.Evaluate(Point{0, 0}, out)
		assert.Equal(t, []float64{1, 0, 0, 0, 0, 0}, out)
	}
}
