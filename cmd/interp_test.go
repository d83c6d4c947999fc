package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"
	"github.com/notargets/gomls/InputParameters"
)

func TestRunInterp(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
Dimension: 2
PolynomialDegree: 1
Kernel: Wendland2
LatticeSize: 9
ParallelDegree: 2
ReportConditioning: true
`)
	var input InputParameters.InterpParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Dimension, 2)
	assert.Equal(t, input.Kernel, "Wendland2")
	assert.Equal(t, input.LatticeSize, 9)
	assert.Equal(t, input.ReportConditioning, true)
	input.Print()
	RunInterp(&ModelInterp{}, &input)
}
