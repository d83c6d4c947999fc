package mls

import (
	"fmt"
	"math"
)

// Point is a D-dimensional coordinate.
type Point []float64

// Norm is the Euclidean distance of the point from the origin
func (p Point) Norm() (r float64) {
	for _, val := range p {
		r += val * val
	}
	r = math.Sqrt(r)
	return
}

// TargetPoints provides indexed read access to the target point sequence.
// A dense PointCloud satisfies it, as does any generated sequence - the
// pipeline never requires targets to be materialized as an array.
type TargetPoints interface {
	Len() int
	Dim() int
	Point(i int) Point
}

// PointTable is a dense rectangular table of points, one row of NumNeighbors
// points per target. It stores both the input source neighborhoods and the
// derived local-frame coordinates.
type PointTable struct {
	NumTargets, NumNeighbors, Dim int
	data                          []float64
}

func NewPointTable(numTargets, numNeighbors, dim int) (pt PointTable) {
	if numTargets < 1 || numNeighbors < 1 || dim < 1 {
		err := fmt.Errorf("invalid point table dimensions: %d x %d points of dimension %d",
			numTargets, numNeighbors, dim)
		panic(err)
	}
	pt = PointTable{
		NumTargets:   numTargets,
		NumNeighbors: numNeighbors,
		Dim:          dim,
		data:         make([]float64, numTargets*numNeighbors*dim),
	}
	return
}

// Point returns a mutable view of the (i,j) entry
func (pt PointTable) Point(i, j int) Point {
	base := (i*pt.NumNeighbors + j) * pt.Dim
	return pt.data[base : base+pt.Dim]
}

func (pt PointTable) Set(i, j int, p Point) {
	copy(pt.Point(i, j), p)
}

// PointCloud is a dense length-N sequence of points satisfying TargetPoints
type PointCloud struct {
	dim  int
	data []float64
}

func NewPointCloud(n, dim int) (pc PointCloud) {
	if n < 1 || dim < 1 {
		err := fmt.Errorf("invalid point cloud dimensions: %d points of dimension %d", n, dim)
		panic(err)
	}
	pc = PointCloud{
		dim:  dim,
		data: make([]float64, n*dim),
	}
	return
}

func (pc PointCloud) Len() int { return len(pc.data) / pc.dim }
func (pc PointCloud) Dim() int { return pc.dim }

func (pc PointCloud) Point(i int) Point {
	return pc.data[i*pc.dim : (i+1)*pc.dim]
}

func (pc PointCloud) Set(i int, p Point) {
	copy(pc.Point(i), p)
}
