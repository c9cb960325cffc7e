package enhance

import "fmt"

// Step is one named transform of a Pipeline.
type Step struct {
	Name  string
	Apply func(*Grid) (*Grid, error)
	// Side steps are observed but their output is not fed to the next step.
	Side bool
}

// Pipeline runs steps in order, each one on the output of the previous.
type Pipeline []Step

// Observer sees the output of every step. Returning an error stops the run.
type Observer func(step string, g *Grid) error

func BinaryStep(s Sentinels) Step {
	return Step{Name: "binary", Apply: func(g *Grid) (*Grid, error) {
		return ToBinary(g, s), nil
	}}
}

func NoiseStep(n *NoiseInjector, percentage float64) Step {
	return Step{Name: "noisy", Apply: func(g *Grid) (*Grid, error) {
		return n.Inject(g, percentage), nil
	}}
}

func MeanStep(size int) Step {
	return Step{Name: "mean", Apply: func(g *Grid) (*Grid, error) {
		return MeanFilter(g, size)
	}}
}

func MedianStep(size int) Step {
	return Step{Name: "median", Apply: func(g *Grid) (*Grid, error) {
		return MedianFilter(g, size)
	}}
}

func EqualizeStep() Step {
	return Step{Name: "equalized", Apply: func(g *Grid) (*Grid, error) {
		return Equalize(g), nil
	}}
}

// Run applies the pipeline to g. observe may be nil.
func (p Pipeline) Run(g *Grid, observe Observer) (*Grid, error) {
	cur := g
	for i, step := range p {
		out, err := step.Apply(cur)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Name, err)
		}
		if observe != nil {
			if err := observe(step.Name, out); err != nil {
				return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Name, err)
			}
		}
		if !step.Side {
			cur = out
		}
	}
	return cur, nil
}
