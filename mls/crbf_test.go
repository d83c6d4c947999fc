package mls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allKernels = []string{"Wendland0", "Wendland2", "Wendland4", "Wendland6", "Wu2", "Wu4", "Uniform"}

func TestCRBFProperties(t *testing.T) {
	for _, name := range allKernels {
		rbf, err := NewCRBF(name)
		assert.NoError(t, err)
		// Zero at and beyond the support boundary
		assert.Equalf(t, 0., rbf.Evaluate(1), "%s at r=1", name)
		assert.Equalf(t, 0., rbf.Evaluate(1.5), "%s beyond support", name)
		// Non-negative and monotonically non-increasing inside support
		prev := rbf.Evaluate(0)
		assert.Truef(t, prev > 0, "%s at origin", name)
		for r := 0.01; r < 1; r += 0.01 {
			val := rbf.Evaluate(r)
			assert.Truef(t, val >= 0, "%s negative at r=%v", name, r)
			assert.Truef(t, val <= prev, "%s increasing at r=%v", name, r)
			prev = val
		}
	}
}

func TestCRBFValues(t *testing.T) {
	assert.Equal(t, 1., Wendland0{}.Evaluate(0))
	assert.Equal(t, 1., Wendland2{}.Evaluate(0))
	assert.Equal(t, 3., Wendland4{}.Evaluate(0))
	assert.Equal(t, 1., Wendland6{}.Evaluate(0))
	assert.Equal(t, 4., Wu2{}.Evaluate(0))
	assert.Equal(t, 36., Wu4{}.Evaluate(0))
	assert.InDelta(t, 0.0625*3, Wendland2{}.Evaluate(0.5), 1.e-12) // (1/2)^4 * 3

	_, err := NewCRBF("nosuchkernel")
	assert.Error(t, err)

	// Default selection
	rbf, err := NewCRBF("")
	assert.NoError(t, err)
	assert.IsType(t, Wendland2{}, rbf)
}
