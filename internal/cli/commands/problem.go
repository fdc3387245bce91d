package commands

import (
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// ErrProblem is returned for unreadable or malformed problem files.
var ErrProblem = errors.New("invalid problem file")

// Problem is the on-disk form of an EMD instance. JSON files decode too,
// since JSON is a subset of YAML.
//
//	source: [0.5, 0.5]
//	target: [0.5, 0.5]
//	costs:
//	  - [0, 1]
//	  - [1, 0]
//	iterations: 10000   # optional
type Problem struct {
	Source     []float64   `yaml:"source"`
	Target     []float64   `yaml:"target"`
	Costs      [][]float64 `yaml:"costs"`
	Iterations int         `yaml:"iterations,omitempty"`
}

// LoadProblem reads and decodes a problem file.
func LoadProblem(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProblem, err)
	}
	var p Problem
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrProblem, path, err)
	}

	return &p, nil
}

// Matrices converts the problem into gonum values. Empty distributions
// become empty vectors; costs must be rectangular.
func (p *Problem) Matrices() (*mat.VecDense, *mat.VecDense, *mat.Dense, error) {
	rows := len(p.Costs)
	cols := 0
	if rows > 0 {
		cols = len(p.Costs[0])
	}
	data := make([]float64, 0, rows*cols)
	for i, row := range p.Costs {
		if len(row) != cols || cols == 0 {
			return nil, nil, nil, fmt.Errorf("%w: costs row %d has %d entries, want %d", ErrProblem, i, len(row), cols)
		}
		data = append(data, row...)
	}

	costs := &mat.Dense{}
	if rows > 0 {
		costs = mat.NewDense(rows, cols, data)
	}

	return vector(p.Source), vector(p.Target), costs, nil
}

func vector(xs []float64) *mat.VecDense {
	if len(xs) == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(len(xs), append([]float64(nil), xs...))
}
