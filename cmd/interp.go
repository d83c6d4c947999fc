/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/notargets/gomls/InputParameters"
	"github.com/notargets/gomls/mls"
	"github.com/notargets/gomls/utils"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

// InterpCmd represents the interp command
var InterpCmd = &cobra.Command{
	Use:   "interp",
	Short: "Structured lattice interpolation coefficient run",
	Long: `
Builds a structured lattice point cloud in the unit cube, computes the Moving
Least Squares interpolation coefficients for every cell-center target from
its cell-corner neighborhood, and reports reproduction error and timing,

gomls interp`,
	Run: func(cmd *cobra.Command, args []string) {
		mi := &ModelInterp{}
		ip := processInterpInput(cmd, mi)
		if mi.Profile {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		RunInterp(mi, ip)
	},
}

type ModelInterp struct {
	ParamFile string
	Profile   bool
}

func processInterpInput(cmd *cobra.Command, mi *ModelInterp) (ip *InputParameters.InterpParameters) {
	var (
		err error
	)
	mi.ParamFile, _ = cmd.Flags().GetString("paramFile")
	mi.Profile, _ = cmd.Flags().GetBool("profile")
	ip = &InputParameters.InterpParameters{}
	ip.Dimension, _ = cmd.Flags().GetInt("dimension")
	ip.PolynomialDegree, _ = cmd.Flags().GetInt("degree")
	ip.Kernel, _ = cmd.Flags().GetString("kernel")
	ip.LatticeSize, _ = cmd.Flags().GetInt("size")
	ip.ParallelDegree, _ = cmd.Flags().GetInt("nthreads")
	ip.ReportConditioning, _ = cmd.Flags().GetBool("conditioning")
	if len(mi.ParamFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(mi.ParamFile); err != nil {
			fmt.Printf("Unable to read parameter file: %s\n", err)
			exampleFile := `
########################################
Title: "Lattice interpolation"
Dimension: 3
PolynomialDegree: 1
Kernel: Wendland2
LatticeSize: 64
ParallelDegree: 0
ReportConditioning: false
########################################
`
			fmt.Printf("Example File:%s\n", exampleFile)
			os.Exit(1)
		}
		if err = ip.Parse(data); err != nil {
			panic(err)
		}
	}
	ip.Print()
	return
}

func init() {
	rootCmd.AddCommand(InterpCmd)
	InterpCmd.Flags().StringP("paramFile", "F", "", "YAML file for run parameters like:\n\t- Dimension\n\t- PolynomialDegree\n\t- Kernel")
	InterpCmd.Flags().IntP("dimension", "d", 2, "spatial dimension of the lattice")
	InterpCmd.Flags().IntP("degree", "n", 1, "polynomial degree of the local fit")
	InterpCmd.Flags().IntP("size", "s", 64, "lattice vertices per side")
	InterpCmd.Flags().StringP("kernel", "k", "Wendland2", "weight kernel: Wendland0/2/4/6, Wu2/4 or Uniform")
	InterpCmd.Flags().Int("nthreads", 0, "parallel degree, 0 = one worker per CPU")
	InterpCmd.Flags().Bool("conditioning", false, "report moment matrix condition numbers")
	InterpCmd.Flags().Bool("profile", false, "write a CPU profile of the coefficient pipeline")
}

func RunInterp(mi *ModelInterp, ip *InputParameters.InterpParameters) {
	var (
		ex       = utils.NewExecSpace(ip.ParallelDegree)
		rbf, err = mls.NewCRBF(ip.Kernel)
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	src, neighborIDs, tgt := mls.Lattice(ip.Dimension, ip.LatticeSize)
	fmt.Printf("%d targets, %d neighbors each, basis size %d\n",
		src.NumTargets, src.NumNeighbors, mls.BasisSize(ip.Dimension, ip.PolynomialDegree))

	start := time.Now()
	C := mls.Coefficients(ex, src, tgt, ip.PolynomialDegree, rbf)
	fmt.Printf("coefficients computed in %v\n", time.Since(start))

	// Reproduction check: the caller-side dot product against a linear field
	// sampled at the source points must recover the field at each target
	fmt.Printf("max linear reproduction error = %8.2e\n", latticeReproductionError(C, src, tgt))

	numSources := mls.NumLatticeSources(ip.Dimension, ip.LatticeSize)
	Op := mls.TransferOperator(C, neighborIDs, numSources)
	r, c := Op.Dims()
	fmt.Printf("transfer operator: %d x %d, %d nonzeros\n", r, c, Op.NNZ())

	if ip.ReportConditioning {
		cond := mls.MomentConditioning(ex, src, tgt, ip.PolynomialDegree, rbf)
		fmt.Printf("moment matrix condition number: min %8.2e, max %8.2e\n",
			cond.Min(), cond.Max())
	}
}

func latticeReproductionError(C utils.Matrix, src mls.PointTable, tgt mls.TargetPoints) (maxErr float64) {
	var (
		T, N  = C.Dims()
		field = func(p mls.Point) (val float64) {
			val = 1
			for k, x := range p {
				val += float64(k+1) * x
			}
			return
		}
	)
	for i := 0; i < T; i++ {
		var interpolated float64
		for j := 0; j < N; j++ {
			interpolated += C.At(i, j) * field(src.Point(i, j))
		}
		if err := math.Abs(interpolated - field(tgt.Point(i))); err > maxErr {
			maxErr = err
		}
	}
	return
}
