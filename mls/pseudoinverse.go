package mls

import (
	"fmt"
	"math"

	"github.com/notargets/gomls/utils"
	"gonum.org/v1/gonum/mat"
)

// SymmetricPseudoInverse overwrites every matrix of the batch with its
// Moore-Penrose pseudo-inverse. The matrices must be symmetric, which lets
// the inverse come from a single symmetric eigendecomposition per matrix:
// A = Q.Lambda.Qt  =>  A+ = Q.Lambda+.Qt, where Lambda+ reciprocates the
// eigenvalues and zeroes those below the rank tolerance. Rank-deficient
// input inverts without failure, which is what makes degenerate neighbor
// geometries a quality issue downstream rather than a hard error.
func SymmetricPseudoInverse(ex utils.ExecSpace, batch []utils.Matrix) {
	ex.For1D(len(batch), func(i int) {
		symmetricPInv(batch[i])
	})
}

func symmetricPInv(A utils.Matrix) {
	var (
		n, nc = A.Dims()
		eig   mat.EigenSym
	)
	if n != nc {
		err := fmt.Errorf("pseudo-inverse requires square matrices, have %d x %d", n, nc)
		panic(err)
	}
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, A.At(i, j))
		}
	}
	if ok := eig.Factorize(sym, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	var (
		lambda = eig.Values(nil)
		Q      = mat.NewDense(n, n, nil)
	)
	eig.VectorsTo(Q)

	var maxAbs float64
	for _, val := range lambda {
		if a := math.Abs(val); a > maxAbs {
			maxAbs = a
		}
	}
	// Relative rank tolerance, scaled by matrix size
	tol := float64(n) * machEps * maxAbs
	for m, val := range lambda {
		if math.Abs(val) <= tol {
			lambda[m] = 0
		} else {
			lambda[m] = 1. / val
		}
	}

	var (
		data = A.RawMatrix().Data
		qd   = Q.RawMatrix().Data
	)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var tmp float64
			for m := 0; m < n; m++ {
				tmp += qd[i*n+m] * lambda[m] * qd[j*n+m]
			}
			data[i*n+j] = tmp
		}
	}
}
