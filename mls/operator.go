package mls

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/notargets/gomls/utils"
)

// TransferOperator scatters the per-neighbor coefficient matrix into the
// global (numTargets x numSources) interpolation operator. neighborIDs maps
// each (target, neighbor slot) to its global source point id - the same
// table the neighbor-finding process produced alongside the source
// neighborhood coordinates. Applying the operator to a sampled field vector
// is then a single sparse mat-vec on the caller's side.
func TransferOperator(C utils.Matrix, neighborIDs [][]int, numSources int) (Op *sparse.CSR) {
	var (
		T, N = C.Dims()
	)
	if len(neighborIDs) != T {
		err := fmt.Errorf("neighbor id table has %d rows for %d targets", len(neighborIDs), T)
		panic(err)
	}
	DOK := sparse.NewDOK(T, numSources)
	for i := 0; i < T; i++ {
		if len(neighborIDs[i]) != N {
			err := fmt.Errorf("neighbor id row %d has %d entries for %d neighbor slots",
				i, len(neighborIDs[i]), N)
			panic(err)
		}
		for j := 0; j < N; j++ {
			id := neighborIDs[i][j]
			if id < 0 || id >= numSources {
				err := fmt.Errorf("source id out of bounds: id = %d, max_bounds = %d", id, numSources-1)
				panic(err)
			}
			// Duplicate ids within a row accumulate
			DOK.Set(i, id, DOK.At(i, id)+C.At(i, j))
		}
	}
	Op = DOK.ToCSR()
	return
}
