package utils

import (
	"runtime"
	"sync"
)

type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree partitions
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketDimension(bn int) (kMax int) {
	if bn == -1 {
		kMax = pm.MaxIndex
		return
	}
	var (
		k1, k2 = pm.GetBucketRange(bn)
	)
	kMax = k2 - k1
	return
}

func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	// This routine splits one dimension into c.ParallelDegree pieces, with a maximum imbalance of one item
	var (
		Npart            = pm.MaxIndex / (pm.ParallelDegree)
		startAdd, endAdd int
		remainder        int
	)
	remainder = pm.MaxIndex % pm.ParallelDegree
	if remainder != 0 { // spread the remainder over the first chunks evenly
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}

// ExecSpace dispatches pure per-index work functions over 1, 2 or 3
// dimensional index ranges. The leading extent is split across NP worker
// goroutines using a PartitionMap, so each worker owns a contiguous block of
// the leading index and there is no shared mutable state between workers.
type ExecSpace struct {
	NP int // Parallel degree
}

func NewExecSpace(NP int) ExecSpace {
	if NP <= 0 {
		NP = runtime.NumCPU()
	}
	return ExecSpace{NP: NP}
}

func (ex ExecSpace) For1D(n int, f func(i int)) {
	ex.run(n, func(iMin, iMax int) {
		for i := iMin; i < iMax; i++ {
			f(i)
		}
	})
}

func (ex ExecSpace) For2D(n0, n1 int, f func(i, j int)) {
	ex.run(n0, func(iMin, iMax int) {
		for i := iMin; i < iMax; i++ {
			for j := 0; j < n1; j++ {
				f(i, j)
			}
		}
	})
}

func (ex ExecSpace) For3D(n0, n1, n2 int, f func(i, j, k int)) {
	ex.run(n0, func(iMin, iMax int) {
		for i := iMin; i < iMax; i++ {
			for j := 0; j < n1; j++ {
				for k := 0; k < n2; k++ {
					f(i, j, k)
				}
			}
		}
	})
}

func (ex ExecSpace) run(n int, block func(iMin, iMax int)) {
	var (
		NP = ex.NP
	)
	if NP > n {
		NP = n
	}
	if NP <= 1 {
		block(0, n)
		return
	}
	var (
		pm = NewPartitionMap(NP, n)
		wg = sync.WaitGroup{}
	)
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			iMin, iMax := pm.GetBucketRange(np)
			block(iMin, iMax)
			wg.Done()
		}(np)
	}
	wg.Wait()
}
