package generator_test

import (
	"errors"
	"math"
	"testing"

	"fspgen/internal/flowshop"
	"fspgen/internal/generator"
	"fspgen/internal/rng"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func config(st generator.Strategy, jobs, machines int) generator.Config {
	cfg := generator.DefaultConfig()
	cfg.Strategy = st
	cfg.Jobs = jobs
	cfg.Machines = machines
	return cfg
}

// warmSampler mirrors the pipeline: seed, then drop the first draw.
func warmSampler(t require.TestingT, seed int64) *rng.Sampler {
	s, err := rng.New(seed)
	require.NoError(t, err)
	s.Uniform01()
	return s
}

func TestGoldenInstances(t *testing.T) {
	// 4 jobs, 3 machines, seed 42, default parameters; mixed uses durationNoise=2.
	cases := []struct {
		strategy generator.Strategy
		noise    int
		want     [][]int
	}{
		{generator.StrategyTaillard, 0, [][]int{{52, 73, 27, 38}, {20, 97, 51, 53}, {26, 11, 81, 90}}},
		{generator.StrategyGaussian, 0, [][]int{{78, 53, 38, 28}, {99, 70, 42, 45}, {25, 45, 38, 41}}},
		{generator.StrategyJobCorrelated, 0, [][]int{{59, 42, 48, 36}, {60, 38, 43, 35}, {59, 42, 45, 38}}},
		{generator.StrategyMachineCorrelated, 0, [][]int{{63, 62, 62, 64}, {44, 39, 37, 37}, {43, 44, 42, 47}}},
		{generator.StrategyMixedCorrelated, 2, [][]int{{65, 63, 61, 63}, {38, 37, 34, 45}, {45, 46, 44, 45}}},
	}

	for _, tc := range cases {
		t.Run(string(tc.strategy), func(t *testing.T) {
			cfg := config(tc.strategy, 4, 3)
			cfg.Noise = tc.noise

			g, err := generator.New(cfg)
			require.NoError(t, err)
			require.Equal(t, tc.strategy, g.Strategy())

			inst := g.Generate(warmSampler(t, 42))
			require.Equal(t, tc.want, inst.Durations)
		})
	}
}

func TestTaillardFirstDraws(t *testing.T) {
	g, err := generator.New(config(generator.StrategyTaillard, 3, 1))
	require.NoError(t, err)

	// seed 1 after the warm-up draw: u = 0.1315..., 0.7556..., 0.4586...
	inst := g.Generate(warmSampler(t, 1))
	require.Equal(t, [][]int{{14, 75, 46}}, inst.Durations)
}

func TestGaussianParams(t *testing.T) {
	g, err := generator.New(config(generator.StrategyGaussian, 1, 1))
	require.NoError(t, err)

	mean, sigma := g.(*generator.Gaussian).Params()
	require.Equal(t, 50, mean)
	require.Equal(t, 16, sigma)

	cfg := config(generator.StrategyGaussian, 1, 1)
	cfg.DurationLB, cfg.DurationUB = 10, 14
	g, err = generator.New(cfg)
	require.NoError(t, err)
	mean, sigma = g.(*generator.Gaussian).Params()
	require.Equal(t, 12, mean)
	require.Equal(t, 0, sigma)
	for _, row := range g.Generate(warmSampler(t, 9)).Durations {
		for _, v := range row {
			require.Equal(t, 12, v)
		}
	}
}

func TestJobCorrelatedWindows(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := config(generator.StrategyJobCorrelated,
			rapid.IntRange(1, 40).Draw(t, "jobs"),
			rapid.IntRange(1, 20).Draw(t, "machines"))
		cfg.HalfWidthLB = rapid.IntRange(1, 10).Draw(t, "hwlb")
		cfg.HalfWidthUB = cfg.HalfWidthLB + rapid.IntRange(0, 10).Draw(t, "hwextra")
		cfg.Alpha = rapid.Float64Range(0, 1).Draw(t, "alpha")

		g, err := generator.New(cfg)
		require.NoError(t, err)

		inst, windows := g.(*generator.JobCorrelated).Sample(warmSampler(t, rapid.Int64Range(1, 1<<30).Draw(t, "seed")))
		require.Len(t, windows, cfg.Jobs)
		for j, w := range windows {
			require.GreaterOrEqual(t, w.HalfWidth, cfg.HalfWidthLB)
			require.LessOrEqual(t, w.HalfWidth, cfg.HalfWidthUB)
			for m := 0; m < cfg.Machines; m++ {
				v := inst.At(m, j)
				require.GreaterOrEqual(t, v, w.Low(), "machine %d job %d", m, j)
				require.LessOrEqual(t, v, w.High(), "machine %d job %d", m, j)
			}
		}
	})
}

func TestMachineCorrelatedWindows(t *testing.T) {
	g, err := generator.New(config(generator.StrategyMachineCorrelated, 30, 6))
	require.NoError(t, err)

	inst, windows := g.(*generator.MachineCorrelated).Sample(warmSampler(t, 5))
	require.Len(t, windows, 6)
	for m, w := range windows {
		for _, v := range inst.Durations[m] {
			require.GreaterOrEqual(t, v, w.Low())
			require.LessOrEqual(t, v, w.High())
		}
	}
}

func TestMixedCorrelatedRanksWithoutNoise(t *testing.T) {
	g, err := generator.New(config(generator.StrategyMixedCorrelated, 25, 4))
	require.NoError(t, err)

	inst, windows, ranks := g.(*generator.MixedCorrelated).Sample(warmSampler(t, 11))
	require.Len(t, ranks, 25)

	// Without noise a higher rank never yields a shorter duration on any machine.
	for m, w := range windows {
		for a := 0; a < inst.Jobs; a++ {
			require.GreaterOrEqual(t, inst.At(m, a), w.Low())
			require.LessOrEqual(t, inst.At(m, a), w.High())
			for b := 0; b < inst.Jobs; b++ {
				if ranks[a] < ranks[b] {
					require.LessOrEqual(t, inst.At(m, a), inst.At(m, b))
				}
			}
		}
	}
}

func TestRangeAfterCorrection(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := config(
			rapid.SampledFrom(generator.Strategies()).Draw(t, "strategy"),
			rapid.IntRange(1, 30).Draw(t, "jobs"),
			rapid.IntRange(1, 15).Draw(t, "machines"))
		cfg.DurationLB = rapid.IntRange(1, 50).Draw(t, "lb")
		cfg.DurationUB = cfg.DurationLB + rapid.IntRange(0, 100).Draw(t, "width")
		cfg.HalfWidthUB = rapid.IntRange(1, 20).Draw(t, "hwub")
		cfg.Alpha = rapid.Float64Range(0, 1).Draw(t, "alpha")
		cfg.Noise = rapid.IntRange(0, 10).Draw(t, "noise")

		g, err := generator.New(cfg)
		require.NoError(t, err)

		inst := g.Generate(warmSampler(t, rapid.Int64Range(1, 1<<30).Draw(t, "seed")))
		generator.Correct(inst, cfg.Bounds())
		require.NoError(t, inst.Validate())
		for _, row := range inst.Durations {
			for _, v := range row {
				require.GreaterOrEqual(t, v, cfg.DurationLB)
				require.LessOrEqual(t, v, cfg.DurationUB)
			}
		}
	})
}

func TestDeterminism(t *testing.T) {
	for _, st := range generator.Strategies() {
		cfg := config(st, 50, 10)
		cfg.Noise = 3
		g, err := generator.New(cfg)
		require.NoError(t, err)

		a := g.Generate(warmSampler(t, 777))
		b := g.Generate(warmSampler(t, 777))
		require.Equal(t, a.Durations, b.Durations, "strategy %s", st)
	}
}

func TestCorrect(t *testing.T) {
	inst, err := flowshop.NewInstance([][]int{{0, 5, 10}, {3, 11, 7}})
	require.NoError(t, err)

	generator.Correct(inst, generator.Bounds{LB: 3, UB: 9})
	require.Equal(t, [][]int{{3, 5, 9}, {3, 9, 7}}, inst.Durations)
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*generator.Config)
		want   error
	}{
		{"zero jobs", func(c *generator.Config) { c.Jobs = 0 }, generator.ErrDimensionOutOfRange},
		{"too many jobs", func(c *generator.Config) { c.Jobs = generator.MaxJobs + 1 }, generator.ErrDimensionOutOfRange},
		{"zero machines", func(c *generator.Config) { c.Machines = 0 }, generator.ErrDimensionOutOfRange},
		{"too many machines", func(c *generator.Config) { c.Machines = generator.MaxMachines + 1 }, generator.ErrDimensionOutOfRange},
		{"inverted bounds", func(c *generator.Config) { c.DurationLB, c.DurationUB = 10, 5 }, generator.ErrInvalidConfig},
		{"non-positive lb", func(c *generator.Config) { c.DurationLB = 0 }, generator.ErrInvalidConfig},
		{"zero half-width", func(c *generator.Config) { c.HalfWidthLB = 0 }, generator.ErrInvalidConfig},
		{"misordered half-widths", func(c *generator.Config) { c.HalfWidthLB, c.HalfWidthUB = 6, 5 }, generator.ErrInvalidConfig},
		{"negative alpha", func(c *generator.Config) { c.Alpha = -0.1 }, generator.ErrInvalidConfig},
		{"alpha too wide", func(c *generator.Config) { c.Alpha = 1.2 }, generator.ErrInvalidConfig},
		{"negative noise", func(c *generator.Config) { c.Noise = -1 }, generator.ErrInvalidConfig},
		{"noise near max int", func(c *generator.Config) { c.Noise = math.MaxInt - 1 }, generator.ErrInvalidConfig},
		{"noise above cap", func(c *generator.Config) { c.Noise = generator.MaxDuration + 1 }, generator.ErrInvalidConfig},
		{"half-width above cap", func(c *generator.Config) { c.HalfWidthUB = generator.MaxDuration + 1 }, generator.ErrInvalidConfig},
		{"half-width near max int", func(c *generator.Config) { c.HalfWidthLB, c.HalfWidthUB = 1, math.MaxInt }, generator.ErrInvalidConfig},
		{"durationUB above cap", func(c *generator.Config) { c.DurationUB = generator.MaxDuration + 1 }, generator.ErrInvalidConfig},
		{"unknown strategy", func(c *generator.Config) { c.Strategy = "random" }, generator.ErrUnknownStrategy},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config(generator.StrategyMixedCorrelated, 20, 5)
			tc.mutate(&cfg)
			_, err := generator.New(cfg)
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestStrategyParametersOnlyCheckedWhenUsed(t *testing.T) {
	cfg := config(generator.StrategyTaillard, 5, 5)
	cfg.Alpha = -1
	cfg.Noise = -1
	_, err := generator.New(cfg)
	require.NoError(t, err)

	cfg.Strategy = generator.StrategyJobCorrelated
	cfg.Alpha = 0.5
	_, err = generator.New(cfg)
	require.NoError(t, err)
}

func TestFullAlphaAccepted(t *testing.T) {
	cfg := config(generator.StrategyJobCorrelated, 5, 5)
	cfg.Alpha = 1
	_, err := generator.New(cfg)
	require.NoError(t, err)

	cfg.DurationLB, cfg.DurationUB = 7, 7
	cfg.Alpha = 3
	_, err = generator.New(cfg)
	require.NoError(t, err)
}

// At the caps every raw value stays within [LB-2*cap, UB+2*cap] and
// correction brings it back into range.
func TestExtremeParametersAtCap(t *testing.T) {
	cfg := config(generator.StrategyMixedCorrelated, 40, 8)
	cfg.DurationUB = generator.MaxDuration
	cfg.HalfWidthLB, cfg.HalfWidthUB = generator.MaxDuration, generator.MaxDuration
	cfg.Noise = generator.MaxDuration
	cfg.Alpha = 1

	g, err := generator.New(cfg)
	require.NoError(t, err)

	inst := g.Generate(warmSampler(t, 4242))
	for _, row := range inst.Durations {
		for _, v := range row {
			require.GreaterOrEqual(t, v, cfg.DurationLB-2*generator.MaxDuration)
			require.LessOrEqual(t, v, cfg.DurationUB+2*generator.MaxDuration)
		}
	}
	generator.Correct(inst, cfg.Bounds())
	require.NoError(t, inst.Validate())
	for _, row := range inst.Durations {
		for _, v := range row {
			require.GreaterOrEqual(t, v, cfg.DurationLB)
			require.LessOrEqual(t, v, cfg.DurationUB)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	for _, st := range generator.Strategies() {
		got, err := generator.ParseStrategy(string(st))
		require.NoError(t, err)
		require.Equal(t, st, got)
	}
	_, err := generator.ParseStrategy("Taillard")
	require.True(t, errors.Is(err, generator.ErrUnknownStrategy))
	require.Len(t, generator.Strategies(), 5)
}
