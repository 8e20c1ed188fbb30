package generator

import (
	"fspgen/internal/flowshop"
	"fspgen/internal/rng"
)

// Taillard draws every duration independently and uniformly from [LB, UB],
// as in Taillard's 1993 benchmarks.
type Taillard struct {
	shape
}

func newTaillard(cfg Config) (Generator, error) {
	return &Taillard{shape: shapeOf(cfg)}, nil
}

func (g *Taillard) Strategy() Strategy { return StrategyTaillard }

func (g *Taillard) Generate(s *rng.Sampler) *flowshop.Instance {
	inst := g.alloc()
	for m := 0; m < g.machines; m++ {
		for j := 0; j < g.jobs; j++ {
			inst.Set(m, j, s.UniformInt(g.bounds.LB, g.bounds.UB))
		}
	}
	return inst
}

// Gaussian draws every duration from a normal distribution whose ±3σ
// roughly spans [LB, UB]. Tails are left to the corrector.
type Gaussian struct {
	shape
}

func newGaussian(cfg Config) (Generator, error) {
	return &Gaussian{shape: shapeOf(cfg)}, nil
}

func (g *Gaussian) Strategy() Strategy { return StrategyGaussian }

// Params returns the integer mean and sigma used for sampling.
func (g *Gaussian) Params() (mean, sigma int) {
	w := g.bounds.Width()
	return w/2 + g.bounds.LB, w / 6
}

func (g *Gaussian) Generate(s *rng.Sampler) *flowshop.Instance {
	mean, sigma := g.Params()
	inst := g.alloc()
	for m := 0; m < g.machines; m++ {
		for j := 0; j < g.jobs; j++ {
			inst.Set(m, j, roundHalfAway(s.Normal(float64(mean), float64(sigma))))
		}
	}
	return inst
}
