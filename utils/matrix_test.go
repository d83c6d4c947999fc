package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		mNr, mNc := M.Dims()
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, aNc, mNr)
		assert.Equal(t, aNr, mNc)
		assert.Equal(t, A.RawMatrix().Data, []float64{1, 4, 2, 5, 3, 6})
	}
	// Mul
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		A := M.Mul(M.Transpose())
		assert.Equal(t, A, NewMatrix(2, 2, []float64{
			14, 32,
			32, 77,
		}))
	}
	// Row, Col and sums
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, M.Row(1).RawVector().Data, []float64{4, 5, 6})
		assert.Equal(t, M.Col(2).RawVector().Data, []float64{3, 6})
		assert.Equal(t, M.SumRows().RawVector().Data, []float64{6, 15})
		assert.Equal(t, M.SumCols().RawVector().Data, []float64{5, 7, 9})
		assert.Equal(t, 6., M.Max())
		assert.Equal(t, 1., M.Min())
	}
	// Copy is independent of the receiver
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		A := M.Copy()
		A.Set(0, 0, 100)
		assert.Equal(t, 1., M.At(0, 0))
	}
}

func TestConditionNumber(t *testing.T) {
	{ // Identity is perfectly conditioned
		I := NewMatrix(3, 3, []float64{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		})
		assert.InDelta(t, 1., I.ConditionNumber(), 1.e-12)
	}
	{ // Diagonal scaling sets the condition number directly
		D := NewMatrix(2, 2, []float64{
			10, 0,
			0, 0.1,
		})
		assert.InDelta(t, 100., D.ConditionNumber(), 1.e-08)
		min, max := D.SingularValues()
		assert.InDelta(t, 0.1, min, 1.e-12)
		assert.InDelta(t, 10., max, 1.e-12)
	}
	{ // Singular matrix reports the sentinel
		S := NewMatrix(2, 2, []float64{
			1, 1,
			1, 1,
		})
		assert.Equal(t, 1.e16, S.ConditionNumber())
	}
}
