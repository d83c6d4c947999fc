package mls

import (
	"fmt"

	"github.com/notargets/gomls/utils"
)

// BasisSize returns the number of monomials of total degree <= degree in dim
// variables, the multiset combination count C(dim+degree, degree)
func BasisSize(dim, degree int) (K int) {
	K = 1
	for i := 1; i <= degree; i++ {
		K = K * (dim + i) / i
	}
	return
}

// PolynomialBasis evaluates the full monomial basis of a given total degree
// at D-dimensional points. Ordering is graded lexicographic, so index 0 is
// always the constant-1 term - the property the coefficient contraction
// relies on when it reads only row 0 of the inverted moment matrix.
type PolynomialBasis struct {
	Dim, Degree int
	exponents   [][]int
}

func NewPolynomialBasis(dim, degree int) (pb *PolynomialBasis) {
	if dim < 1 || degree < 0 {
		err := fmt.Errorf("invalid basis request: dimension %d, degree %d", dim, degree)
		panic(err)
	}
	pb = &PolynomialBasis{
		Dim:       dim,
		Degree:    degree,
		exponents: monomialExponents(dim, degree),
	}
	return
}

func (pb *PolynomialBasis) Size() int { return len(pb.exponents) }

// Evaluate writes the basis vector of p into out, which must have length Size()
func (pb *PolynomialBasis) Evaluate(p Point, out []float64) {
	if len(p) != pb.Dim || len(out) != len(pb.exponents) {
		err := fmt.Errorf("basis evaluation size mismatch: point dim %d (want %d), out len %d (want %d)",
			len(p), pb.Dim, len(out), len(pb.exponents))
		panic(err)
	}
	for m, exp := range pb.exponents {
		val := 1.
		for k, e := range exp {
			if e != 0 {
				val *= utils.POW(p[k], e)
			}
		}
		out[m] = val
	}
}

func monomialExponents(dim, degree int) (exps [][]int) {
	exps = append(exps, make([]int, dim)) // constant term first
	for t := 1; t <= degree; t++ {
		exps = append(exps, compositions(dim, t)...)
	}
	return
}

func compositions(dim, total int) (out [][]int) {
	if dim == 1 {
		out = [][]int{{total}}
		return
	}
	for first := total; first >= 0; first-- {
		for _, rest := range compositions(dim-1, total-first) {
			e := make([]int, 0, dim)
			e = append(e, first)
			e = append(e, rest...)
			out = append(out, e)
		}
	}
	return
}
