package mls

import (
	"fmt"
	"strings"

	"github.com/notargets/gomls/utils"
)

// CRBF is a compactly supported radial basis function: non-negative,
// monotonically non-increasing on [0,1] and exactly zero for r >= 1.
type CRBF interface {
	Evaluate(r float64) (weight float64)
}

// NewCRBF selects a weight kernel by name
func NewCRBF(name string) (rbf CRBF, err error) {
	switch strings.ToLower(name) {
	case "wendland0":
		rbf = Wendland0{}
	case "wendland2", "":
		rbf = Wendland2{}
	case "wendland4":
		rbf = Wendland4{}
	case "wendland6":
		rbf = Wendland6{}
	case "wu2":
		rbf = Wu2{}
	case "wu4":
		rbf = Wu4{}
	case "uniform":
		rbf = Uniform{}
	default:
		err = fmt.Errorf("unknown weight kernel: %s", name)
	}
	return
}

type Wendland0 struct{}

func (Wendland0) Evaluate(r float64) float64 {
	if r >= 1 {
		return 0
	}
	return utils.POW(1-r, 2)
}

type Wendland2 struct{}

func (Wendland2) Evaluate(r float64) float64 {
	if r >= 1 {
		return 0
	}
	return utils.POW(1-r, 4) * (4*r + 1)
}

type Wendland4 struct{}

func (Wendland4) Evaluate(r float64) float64 {
	if r >= 1 {
		return 0
	}
	return utils.POW(1-r, 6) * (35*r*r + 18*r + 3)
}

type Wendland6 struct{}

func (Wendland6) Evaluate(r float64) float64 {
	if r >= 1 {
		return 0
	}
	return utils.POW(1-r, 8) * (32*r*r*r + 25*r*r + 8*r + 1)
}

type Wu2 struct{}

func (Wu2) Evaluate(r float64) float64 {
	if r >= 1 {
		return 0
	}
	return utils.POW(1-r, 4) * (3*r*r*r + 12*r*r + 16*r + 4)
}

type Wu4 struct{}

func (Wu4) Evaluate(r float64) float64 {
	if r >= 1 {
		return 0
	}
	r2 := r * r
	return utils.POW(1-r, 6) * (5*r2*r2 + 30*r2*r + 72*r2 + 82*r + 36)
}

// Uniform weights every in-support neighbor equally. With it the moving
// least squares fit reduces to an unweighted least squares fit, which makes
// closed-form verification cases easy to construct.
type Uniform struct{}

func (Uniform) Evaluate(r float64) float64 {
	if r >= 1 {
		return 0
	}
	return 1
}
