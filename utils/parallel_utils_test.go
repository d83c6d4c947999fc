package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	getHisto := func(K, Np int) (histo map[int]int) {
		pm := NewPartitionMap(Np, K)
		histo = make(map[int]int)
		for np := 0; np < pm.ParallelDegree; np++ {
			maxK := pm.GetBucketDimension(np)
			histo[maxK]++
		}
		return
	}
	getTotal := func(histo map[int]int) (total int) {
		for key, count := range histo {
			total += key * count
		}
		return
	}
	assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
	assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
	assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
	assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
	assert.Equal(t, 287, getTotal(getHisto(287, 32)))
	for n := 64; n < 10000; n++ {
		var (
			keys   [2]float64
			keyNum int
		)
		histo := getHisto(n, 32)
		for key := range histo {
			keys[keyNum] = float64(key)
			keyNum++
		}
		if keyNum == 2 {
			assert.Equal(t, 1., math.Abs(keys[0]-keys[1])) // Maximum imbalance of 1
		}
		assert.Equal(t, n, getTotal(histo))
	}
}

func TestExecSpace(t *testing.T) {
	{ // Every index visited exactly once, any parallel degree
		for _, NP := range []int{1, 2, 3, 7, 32} {
			ex := ExecSpace{NP: NP}
			visits := make([]int, 100)
			ex.For1D(len(visits), func(i int) {
				visits[i]++
			})
			for i, count := range visits {
				assert.Equalf(t, 1, count, "index %d, NP %d", i, NP)
			}
		}
	}
	{ // 2D and 3D dispatch agree with the serial result
		var (
			serial   = ExecSpace{NP: 1}
			parallel = ExecSpace{NP: 4}
			n0, n1   = 13, 7
		)
		A := make([]float64, n0*n1)
		B := make([]float64, n0*n1)
		body := func(out []float64) func(i, j int) {
			return func(i, j int) {
				out[i*n1+j] = float64(i*i + 3*j)
			}
		}
		serial.For2D(n0, n1, body(A))
		parallel.For2D(n0, n1, body(B))
		assert.Equal(t, A, B)

		n2 := 5
		C := make([]float64, n0*n1*n2)
		D := make([]float64, n0*n1*n2)
		body3 := func(out []float64) func(i, j, k int) {
			return func(i, j, k int) {
				out[(i*n1+j)*n2+k] = float64(i - j + 2*k)
			}
		}
		serial.For3D(n0, n1, n2, body3(C))
		parallel.For3D(n0, n1, n2, body3(D))
		assert.Equal(t, C, D)
	}
	{ // More workers than work items degrades gracefully
		ex := ExecSpace{NP: 16}
		visits := make([]int, 3)
		ex.For1D(len(visits), func(i int) {
			visits[i]++
		})
		assert.Equal(t, []int{1, 1, 1}, visits)
	}
}
