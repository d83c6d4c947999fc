package utils

import (
	"gonum.org/v1/gonum/mat"
)

// ConditionNumber is the ratio of the largest to smallest singular value.
// Returns 1e16 when the matrix is numerically singular.
func (m Matrix) ConditionNumber() float64 {
	var svd mat.SVD
	if !svd.Factorize(m.M, mat.SVDThin) {
		return 1e16
	}

	values := svd.Values(nil)
	if len(values) == 0 {
		return 1e16
	}

	// Singular values are in descending order
	minVal := values[len(values)-1]
	maxVal := values[0]

	if minVal < 1e-16 {
		return 1e16
	}

	return maxVal / minVal
}

// SingularValues returns the extremal singular values (useful for debugging)
func (m Matrix) SingularValues() (min, max float64) {
	var svd mat.SVD
	if !svd.Factorize(m.M, mat.SVDThin) {
		return 0, 1e16
	}

	values := svd.Values(nil)
	if len(values) == 0 {
		return 0, 1e16
	}

	return values[len(values)-1], values[0]
}
