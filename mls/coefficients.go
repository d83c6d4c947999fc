package mls

import (
	"fmt"
	"math"

	"github.com/notargets/gomls/utils"
)

var machEps = math.Nextafter(1, 2) - 1

// The farthest neighbor of each target is pushed strictly inside the kernel
// support, where every CRBF vanishes exactly
const radiusInflation = 1.1

// Coefficients computes, for every target point, the linear combination
// weights over its fixed-size source neighborhood that evaluate a locally
// weighted polynomial fit at the target:
//
//	value(i) ~ Sum_j C(i,j) * field(source(i,j))
//
// The result row vector realizes p(0).[Pt.Phi.P]^-1.Pt.Phi per target, where
// P is the Vandermonde matrix of the neighborhood in the target's local
// frame and Phi the diagonal of CRBF weights. Re-centering on the target
// means p(0) = [1 0 ... 0], so only row 0 of the inverted moment matrix
// participates.
//
// Every stage is one data-parallel dispatch on ex; stages run in sequence
// and each allocates its own output sized up front. Structural contract
// violations (dimension or count mismatches) panic at entry; there are no
// data-dependent failure paths past that point.
func Coefficients(ex utils.ExecSpace, src PointTable, tgt TargetPoints,
	degree int, rbf CRBF) (C utils.Matrix) {
	var (
		T = src.NumTargets
		N = src.NumNeighbors
	)
	if tgt.Dim() != src.Dim {
		err := fmt.Errorf("source and target points must have the same dimension: %d != %d",
			src.Dim, tgt.Dim())
		panic(err)
	}
	if tgt.Len() != T {
		err := fmt.Errorf("there must be a set of neighbors for each target: %d targets, %d neighborhoods",
			tgt.Len(), T)
		panic(err)
	}
	if rbf == nil {
		panic("no weight kernel supplied")
	}
	pb := NewPolynomialBasis(src.Dim, degree)

	local := localFrame(ex, src, tgt)
	radii := supportRadii(ex, local)
	phi := kernelWeights(ex, local, radii, rbf)
	P := vandermonde(ex, local, pb)
	A := momentMatrices(ex, P, phi, pb.Size())
	SymmetricPseudoInverse(ex, A)
	C = contractCoefficients(ex, A, P, phi, T, N)
	return
}

// localFrame translates every neighbor into its target's frame, so the
// downstream basis is always evaluated about the origin
func localFrame(ex utils.ExecSpace, src PointTable, tgt TargetPoints) (local PointTable) {
	local = NewPointTable(src.NumTargets, src.NumNeighbors, src.Dim)
	ex.For2D(src.NumTargets, src.NumNeighbors, func(i, j int) {
		var (
			s = src.Point(i, j)
			t = tgt.Point(i)
			l = local.Point(i, j)
		)
		for k := range l {
			l[k] = s[k] - t[k]
		}
	})
	return
}

// supportRadii finds each target's farthest neighbor distance, floored at
// machine epsilon for fully degenerate neighborhoods, then inflated
func supportRadii(ex utils.ExecSpace, local PointTable) (radii utils.Vector) {
	radii = utils.NewVector(local.NumTargets)
	rd := radii.RawVector().Data
	ex.For1D(local.NumTargets, func(i int) {
		radius := machEps
		for j := 0; j < local.NumNeighbors; j++ {
			if norm := local.Point(i, j).Norm(); norm > radius {
				radius = norm
			}
		}
		rd[i] = radiusInflation * radius
	})
	return
}

func kernelWeights(ex utils.ExecSpace, local PointTable, radii utils.Vector,
	rbf CRBF) (phi utils.Matrix) {
	var (
		T = local.NumTargets
		N = local.NumNeighbors
	)
	phi = utils.NewMatrix(T, N)
	var (
		pd = phi.RawMatrix().Data
		rd = radii.RawVector().Data
	)
	ex.For2D(T, N, func(i, j int) {
		pd[i*N+j] = rbf.Evaluate(local.Point(i, j).Norm() / rd[i])
	})
	return
}

// vandermonde builds the per-target Vandermonde matrix: row j is the basis
// vector of neighbor j in the local frame
func vandermonde(ex utils.ExecSpace, local PointTable, pb *PolynomialBasis) (P []utils.Matrix) {
	var (
		T = local.NumTargets
		N = local.NumNeighbors
		K = pb.Size()
	)
	P = make([]utils.Matrix, T)
	for i := range P {
		P[i] = utils.NewMatrix(N, K)
	}
	ex.For2D(T, N, func(i, j int) {
		row := P[i].RawMatrix().Data[j*K : (j+1)*K]
		pb.Evaluate(local.Point(i, j), row)
	})
	return
}

// momentMatrices assembles A = Pt.Phi.P per target, the weighted Gram matrix
// of the Vandermonde rows. Symmetric by construction; possibly singular for
// degenerate neighborhoods, which the pseudo-inverse stage absorbs.
func momentMatrices(ex utils.ExecSpace, P []utils.Matrix, phi utils.Matrix,
	K int) (A []utils.Matrix) {
	var (
		T, N = phi.Dims()
		pd   = phi.RawMatrix().Data
	)
	A = make([]utils.Matrix, T)
	for i := range A {
		A[i] = utils.NewMatrix(K, K)
	}
	ex.For3D(T, K, K, func(i, p, q int) {
		var (
			vd  = P[i].RawMatrix().Data
			tmp float64
		)
		for j := 0; j < N; j++ {
			tmp += vd[j*K+p] * vd[j*K+q] * pd[i*N+j]
		}
		A[i].RawMatrix().Data[p*K+q] = tmp
	})
	return
}

// contractCoefficients folds the inverted moment matrix, basis values and
// weights into the final per-neighbor scalars. Only row 0 of each inverse is
// read, since the basis at the local-frame origin is the unit vector on the
// constant term.
func contractCoefficients(ex utils.ExecSpace, Ainv, P []utils.Matrix,
	phi utils.Matrix, T, N int) (C utils.Matrix) {
	C = utils.NewMatrix(T, N)
	var (
		cd = C.RawMatrix().Data
		pd = phi.RawMatrix().Data
	)
	ex.For2D(T, N, func(i, j int) {
		var (
			_, K = Ainv[i].Dims()
			ad   = Ainv[i].RawMatrix().Data
			vd   = P[i].RawMatrix().Data
			tmp  float64
		)
		for k := 0; k < K; k++ {
			tmp += ad[k] * vd[j*K+k] * pd[i*N+j]
		}
		cd[i*N+j] = tmp
	})
	return
}

// MomentConditioning reports the condition number of every target's moment
// matrix before inversion. A near-singular entry flags a neighborhood whose
// geometry cannot support the requested polynomial degree (colinear points,
// or fewer neighbors than basis terms). Diagnostic only - Coefficients
// itself never checks conditioning and relies on the pseudo-inverse's rank
// tolerance instead.
func MomentConditioning(ex utils.ExecSpace, src PointTable, tgt TargetPoints,
	degree int, rbf CRBF) (cond utils.Vector) {
	var (
		pb    = NewPolynomialBasis(src.Dim, degree)
		local = localFrame(ex, src, tgt)
		radii = supportRadii(ex, local)
		phi   = kernelWeights(ex, local, radii, rbf)
		P     = vandermonde(ex, local, pb)
		A     = momentMatrices(ex, P, phi, pb.Size())
	)
	cond = utils.NewVector(src.NumTargets)
	cd := cond.RawVector().Data
	ex.For1D(src.NumTargets, func(i int) {
		cd[i] = A[i].ConditionNumber()
	})
	return
}
