// Package bench builds one benchmark instance: it seeds the sampler, runs
// the selected generator, corrects the durations and computes the bounds.
package bench

import (
	"fmt"

	"fspgen/internal/bound"
	"fspgen/internal/flowshop"
	"fspgen/internal/generator"
	"fspgen/internal/rng"
)

// Case - всё, что определяет экземпляр: конфигурация и сид.
type Case struct {
	Config generator.Config
	Seed   int64
}

type Result struct {
	Case     Case
	Instance *flowshop.Instance
	Bounds   bound.Report
	Stats    DurationStats
}

// Build runs the full pipeline. Identical cases give identical results.
// Either everything succeeds or no instance is returned.
func Build(c Case) (Result, error) {
	gen, err := generator.New(c.Config)
	if err != nil {
		return Result{}, fmt.Errorf("case %s %dx%d: %w", c.Config.Strategy, c.Config.Jobs, c.Config.Machines, err)
	}

	s, err := rng.New(c.Seed)
	if err != nil {
		return Result{}, fmt.Errorf("case %s %dx%d: %w", c.Config.Strategy, c.Config.Jobs, c.Config.Machines, err)
	}
	// Close seeds (e.g. consecutive timestamps) give nearly the same first
	// draw, so it is thrown away.
	s.Uniform01()

	inst := gen.Generate(s)
	generator.Correct(inst, c.Config.Bounds())

	return Result{
		Case:     c,
		Instance: inst,
		Bounds:   bound.Compute(inst),
		Stats:    Summarize(inst),
	}, nil
}
