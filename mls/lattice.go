package mls

import (
	"fmt"

	"github.com/notargets/gomls/utils"
)

// Lattice builds a structured test problem on the unit cube: source points
// on an m^dim vertex lattice, targets at the (m-1)^dim cell centers, and
// each target's neighborhood the 2^dim corners of its cell. The
// neighborhoods come from direct lattice indexing, so the case exercises
// the coefficient pipeline without any neighbor search.
func Lattice(dim, m int) (src PointTable, neighborIDs [][]int, tgt PointCloud) {
	if dim < 1 || m < 2 {
		err := fmt.Errorf("lattice needs dimension >= 1 and at least 2 vertices per side, have %d, %d", dim, m)
		panic(err)
	}
	var (
		cells = m - 1
		T     = utils.IPOW(cells, dim)
		N     = 1 << dim
		h     = 1. / float64(cells)
	)
	src = NewPointTable(T, N, dim)
	tgt = NewPointCloud(T, dim)
	neighborIDs = make([][]int, T)

	cell := make([]int, dim)
	for i := 0; i < T; i++ {
		// Decode the flat cell index into a per-axis multi-index
		rem := i
		for k := 0; k < dim; k++ {
			cell[k] = rem % cells
			rem /= cells
		}
		t := tgt.Point(i)
		for k := 0; k < dim; k++ {
			t[k] = (float64(cell[k]) + 0.5) * h
		}
		neighborIDs[i] = make([]int, N)
		for j := 0; j < N; j++ {
			var (
				s  = src.Point(i, j)
				id = 0
			)
			for k := dim - 1; k >= 0; k-- {
				corner := cell[k] + (j>>k)&1
				s[k] = float64(corner) * h
				id = id*m + corner
			}
			neighborIDs[i][j] = id
		}
	}
	return
}

// NumLatticeSources is the global source point count of a Lattice(dim, m) case
func NumLatticeSources(dim, m int) int {
	return utils.IPOW(m, dim)
}
