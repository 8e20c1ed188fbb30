package generator

import (
	"fmt"
	"sort"

	"fspgen/internal/flowshop"
	"fspgen/internal/rng"
)

// Strategy - ключ стратегии генерации длительностей.
type Strategy string

const (
	StrategyTaillard          Strategy = "taillard"
	StrategyGaussian          Strategy = "gaussian"
	StrategyJobCorrelated     Strategy = "job-correlated"
	StrategyMachineCorrelated Strategy = "machine-correlated"
	StrategyMixedCorrelated   Strategy = "mixed-correlated"
)

var strategies = map[Strategy]func(Config) (Generator, error){
	StrategyTaillard:          newTaillard,
	StrategyGaussian:          newGaussian,
	StrategyJobCorrelated:     newJobCorrelated,
	StrategyMachineCorrelated: newMachineCorrelated,
	StrategyMixedCorrelated:   newMixedCorrelated,
}

// Strategies returns the registered strategy keys in sorted order.
func Strategies() []Strategy {
	out := make([]Strategy, 0, len(strategies))
	for k := range strategies {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func ParseStrategy(s string) (Strategy, error) {
	st := Strategy(s)
	if _, ok := strategies[st]; !ok {
		return "", fmt.Errorf("%w %q; available: %v", ErrUnknownStrategy, s, Strategies())
	}
	return st, nil
}

// Generator fills a machines×jobs matrix from a sampler. The result is not
// corrected: correlated windows and Gaussian tails may leave [LB, UB].
type Generator interface {
	Strategy() Strategy
	Generate(s *rng.Sampler) *flowshop.Instance
}

// New validates cfg and returns the generator for cfg.Strategy.
func New(cfg Config) (Generator, error) {
	ctor, ok := strategies[cfg.Strategy]
	if !ok {
		return nil, fmt.Errorf("%w %q; available: %v", ErrUnknownStrategy, cfg.Strategy, Strategies())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return ctor(cfg)
}

// shape is the part of Config every strategy needs.
type shape struct {
	jobs     int
	machines int
	bounds   Bounds
}

func shapeOf(cfg Config) shape {
	return shape{jobs: cfg.Jobs, machines: cfg.Machines, bounds: cfg.Bounds()}
}

func (sh shape) alloc() *flowshop.Instance {
	return flowshop.Zero(sh.jobs, sh.machines)
}
