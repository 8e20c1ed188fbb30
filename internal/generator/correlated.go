package generator

import (
	"fspgen/internal/flowshop"
	"fspgen/internal/rng"
)

// Window is a latent sampling interval [Mean-HalfWidth, Mean+HalfWidth].
type Window struct {
	Mean      int
	HalfWidth int
}

func (w Window) Low() int  { return w.Mean - w.HalfWidth }
func (w Window) High() int { return w.Mean + w.HalfWidth }

// effectiveWidth is the length of the sub-interval of [LB, UB] window means fall in.
func (c Correlation) effectiveWidth(b Bounds) int {
	return roundHalfAway(c.Alpha * float64(b.Width()))
}

// drawWindows picks one start point, then n means, then n half-widths.
// The draw order matters for reproducibility.
func (c Correlation) drawWindows(s *rng.Sampler, b Bounds, n int) []Window {
	eff := c.effectiveWidth(b)
	start := s.UniformInt(b.LB, b.UB-eff)

	windows := make([]Window, n)
	for i := range windows {
		windows[i].Mean = s.UniformInt(start, start+eff)
	}
	for i := range windows {
		windows[i].HalfWidth = s.UniformInt(c.HalfWidthLB, c.HalfWidthUB)
	}
	return windows
}

// JobCorrelated gives every job its own window; all machines sample a job's
// durations from it, so durations correlate across machines.
type JobCorrelated struct {
	shape
	corr Correlation
}

func newJobCorrelated(cfg Config) (Generator, error) {
	c := cfg.Correlation()
	if err := c.validate(cfg.Bounds()); err != nil {
		return nil, err
	}
	return &JobCorrelated{shape: shapeOf(cfg), corr: c}, nil
}

func (g *JobCorrelated) Strategy() Strategy { return StrategyJobCorrelated }

func (g *JobCorrelated) Generate(s *rng.Sampler) *flowshop.Instance {
	inst, _ := g.Sample(s)
	return inst
}

// Sample generates an instance and also returns the per-job windows.
func (g *JobCorrelated) Sample(s *rng.Sampler) (*flowshop.Instance, []Window) {
	windows := g.corr.drawWindows(s, g.bounds, g.jobs)
	inst := g.alloc()
	for m := 0; m < g.machines; m++ {
		for j := 0; j < g.jobs; j++ {
			inst.Set(m, j, s.UniformInt(windows[j].Low(), windows[j].High()))
		}
	}
	return inst, windows
}

// MachineCorrelated gives every machine its own window; all jobs on a
// machine sample from it, so durations correlate across jobs.
type MachineCorrelated struct {
	shape
	corr Correlation
}

func newMachineCorrelated(cfg Config) (Generator, error) {
	c := cfg.Correlation()
	if err := c.validate(cfg.Bounds()); err != nil {
		return nil, err
	}
	return &MachineCorrelated{shape: shapeOf(cfg), corr: c}, nil
}

func (g *MachineCorrelated) Strategy() Strategy { return StrategyMachineCorrelated }

func (g *MachineCorrelated) Generate(s *rng.Sampler) *flowshop.Instance {
	inst, _ := g.Sample(s)
	return inst
}

// Sample generates an instance and also returns the per-machine windows.
func (g *MachineCorrelated) Sample(s *rng.Sampler) (*flowshop.Instance, []Window) {
	windows := g.corr.drawWindows(s, g.bounds, g.machines)
	inst := g.alloc()
	for m := 0; m < g.machines; m++ {
		for j := 0; j < g.jobs; j++ {
			inst.Set(m, j, s.UniformInt(windows[m].Low(), windows[m].High()))
		}
	}
	return inst, windows
}

// MixedCorrelated uses per-machine windows and places each job at the same
// relative rank inside every machine's window, plus uniform noise.
type MixedCorrelated struct {
	shape
	corr  Correlation
	noise int
}

func newMixedCorrelated(cfg Config) (Generator, error) {
	c := cfg.Correlation()
	if err := c.validate(cfg.Bounds()); err != nil {
		return nil, err
	}
	if err := cfg.validateNoise(); err != nil {
		return nil, err
	}
	return &MixedCorrelated{shape: shapeOf(cfg), corr: c, noise: cfg.Noise}, nil
}

func (g *MixedCorrelated) Strategy() Strategy { return StrategyMixedCorrelated }

func (g *MixedCorrelated) Generate(s *rng.Sampler) *flowshop.Instance {
	inst, _, _ := g.Sample(s)
	return inst
}

// Sample generates an instance and returns the per-machine windows and the
// per-job ranks in [0, 1): 0 is the bottom of a window, ~1 the top.
func (g *MixedCorrelated) Sample(s *rng.Sampler) (*flowshop.Instance, []Window, []float64) {
	windows := g.corr.drawWindows(s, g.bounds, g.machines)

	ranks := make([]float64, g.jobs)
	for j := range ranks {
		ranks[j] = s.Uniform01()
	}

	inst := g.alloc()
	for m := 0; m < g.machines; m++ {
		low := windows[m].Low()
		width := windows[m].High() - low
		for j := 0; j < g.jobs; j++ {
			base := roundHalfAway(ranks[j]*float64(width)) + low
			// one draw per cell even when noise is 0
			inst.Set(m, j, base+s.UniformInt(-g.noise, g.noise))
		}
	}
	return inst, windows, ranks
}
