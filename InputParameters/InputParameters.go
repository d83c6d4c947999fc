package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InterpParameters struct {
	Title              string `yaml:"Title"`
	Dimension          int    `yaml:"Dimension"`
	PolynomialDegree   int    `yaml:"PolynomialDegree"`
	Kernel             string `yaml:"Kernel"` // Wendland0/2/4/6, Wu2/4 or Uniform
	LatticeSize        int    `yaml:"LatticeSize"`
	ParallelDegree     int    `yaml:"ParallelDegree"` // 0 means one worker per CPU
	ReportConditioning bool   `yaml:"ReportConditioning"`
}

func (ip *InterpParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InterpParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t\t= Dimension\n", ip.Dimension)
	fmt.Printf("[%d]\t\t\t\t= Polynomial Degree\n", ip.PolynomialDegree)
	fmt.Printf("[%s]\t\t= Weight Kernel\n", ip.Kernel)
	fmt.Printf("[%d]\t\t\t\t= Lattice Size\n", ip.LatticeSize)
	fmt.Printf("[%d]\t\t\t\t= Parallel Degree\n", ip.ParallelDegree)
}
