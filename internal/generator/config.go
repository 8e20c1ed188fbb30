package generator

import (
	"fmt"
	"math"
)

// Hard caps on instance dimensions.
const (
	MaxJobs     = 500
	MaxMachines = 100
)

// MaxDuration caps durationUB, the distribution half-widths and the noise
// amplitude, so every window and noise range fits UniformInt's arithmetic.
const MaxDuration = 1_000_000

// Bounds is the closed interval [LB, UB] every corrected duration lies in.
type Bounds struct {
	LB int
	UB int
}

func (b Bounds) Width() int { return b.UB - b.LB }

// Clamp moves v into [LB, UB].
func (b Bounds) Clamp(v int) int {
	if v < b.LB {
		return b.LB
	}
	if v > b.UB {
		return b.UB
	}
	return v
}

// Config - параметры генерации экземпляра.
// HalfWidth*, Alpha используются коррелированными стратегиями, Noise - только mixed-correlated.
type Config struct {
	Strategy Strategy

	Jobs     int
	Machines int

	DurationLB int
	DurationUB int

	HalfWidthLB int
	HalfWidthUB int
	Alpha       float64

	Noise int
}

func DefaultConfig() Config {
	return Config{
		Strategy: StrategyTaillard,

		DurationLB: 1,
		DurationUB: 99,

		HalfWidthLB: 1,
		HalfWidthUB: 5,
		Alpha:       0.5,

		Noise: 0,
	}
}

func (c Config) Bounds() Bounds {
	return Bounds{LB: c.DurationLB, UB: c.DurationUB}
}

func (c Config) Correlation() Correlation {
	return Correlation{HalfWidthLB: c.HalfWidthLB, HalfWidthUB: c.HalfWidthUB, Alpha: c.Alpha}
}

// Validate checks dimensions and duration bounds. Strategy parameters are
// checked by New, since only the selected strategy reads them.
func (c Config) Validate() error {
	if c.Jobs <= 0 || c.Jobs > MaxJobs {
		return fmt.Errorf("%w: jobs must be in [1,%d] (got %d)", ErrDimensionOutOfRange, MaxJobs, c.Jobs)
	}
	if c.Machines <= 0 || c.Machines > MaxMachines {
		return fmt.Errorf("%w: machines must be in [1,%d] (got %d)", ErrDimensionOutOfRange, MaxMachines, c.Machines)
	}
	if c.DurationLB < 1 {
		return fmt.Errorf("%w: durationLB must be >= 1 (got %d)", ErrInvalidConfig, c.DurationLB)
	}
	if c.DurationLB > c.DurationUB {
		return fmt.Errorf("%w: durationLB %d > durationUB %d", ErrInvalidConfig, c.DurationLB, c.DurationUB)
	}
	if c.DurationUB > MaxDuration {
		return fmt.Errorf("%w: durationUB must be <= %d (got %d)", ErrInvalidConfig, MaxDuration, c.DurationUB)
	}
	return nil
}

// Correlation parametrises the latent windows of the correlated strategies.
type Correlation struct {
	HalfWidthLB int
	HalfWidthUB int
	// Alpha scales the sub-interval the window means are drawn from.
	Alpha float64
}

func (c Correlation) validate(b Bounds) error {
	if c.HalfWidthLB <= 0 || c.HalfWidthUB <= 0 || c.HalfWidthLB > c.HalfWidthUB {
		return fmt.Errorf("%w: distribution half-widths must be positive and ordered (got [%d,%d])",
			ErrInvalidConfig, c.HalfWidthLB, c.HalfWidthUB)
	}
	if c.HalfWidthUB > MaxDuration {
		return fmt.Errorf("%w: distribution half-width must be <= %d (got %d)", ErrInvalidConfig, MaxDuration, c.HalfWidthUB)
	}
	if math.IsNaN(c.Alpha) || math.IsInf(c.Alpha, 0) || c.Alpha < 0 {
		return fmt.Errorf("%w: alpha must be a finite value >= 0 (got %v)", ErrInvalidConfig, c.Alpha)
	}
	// startPoint is drawn from [LB, UB-effectiveWidth], which must not be empty.
	if c.Alpha*float64(b.Width()) >= float64(b.Width())+0.5 {
		return fmt.Errorf("%w: alpha %v widens the mean interval beyond durationUB-durationLB=%d",
			ErrInvalidConfig, c.Alpha, b.Width())
	}
	return nil
}

func (c Config) validateNoise() error {
	if c.Noise < 0 {
		return fmt.Errorf("%w: durationNoise must be >= 0 (got %d)", ErrInvalidConfig, c.Noise)
	}
	if c.Noise > MaxDuration {
		return fmt.Errorf("%w: durationNoise must be <= %d (got %d)", ErrInvalidConfig, MaxDuration, c.Noise)
	}
	return nil
}
