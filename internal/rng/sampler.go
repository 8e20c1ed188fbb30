package rng

import (
	"fmt"
	"math"
)

// Source produces uniform deviates in [0, 1).
type Source interface {
	Uniform01() float64
}

// Sampler derives integer and normal deviates from a Source.
// The normal sampler produces values in pairs, so consecutive Normal calls
// are coupled: call order is part of the reproducibility contract.
// A Sampler is not safe for concurrent use; give every run its own.
type Sampler struct {
	src Source

	spare    float64
	hasSpare bool
}

func NewSampler(src Source) (*Sampler, error) {
	if src == nil {
		return nil, fmt.Errorf("rng: source is nil")
	}
	return &Sampler{src: src}, nil
}

// New returns a Sampler driven by a Lehmer source seeded with seed.
func New(seed int64) (*Sampler, error) {
	l, err := NewLehmer(seed)
	if err != nil {
		return nil, err
	}
	return &Sampler{src: l}, nil
}

// SetSeed reseeds a Lehmer-backed sampler and drops any cached normal deviate.
func (s *Sampler) SetSeed(seed int64) error {
	l, ok := s.src.(*Lehmer)
	if !ok {
		return fmt.Errorf("rng: source %T cannot be reseeded", s.src)
	}
	if err := l.SetSeed(seed); err != nil {
		return err
	}
	s.spare, s.hasSpare = 0, false
	return nil
}

func (s *Sampler) Uniform01() float64 {
	return s.src.Uniform01()
}

// UniformInt returns an integer in [low, high], both inclusive, using one draw.
// Callers validate their bounds; low > high is a programming error.
func (s *Sampler) UniformInt(low, high int) int {
	if low > high {
		panic(fmt.Sprintf("rng: UniformInt low %d > high %d", low, high))
	}
	u := s.src.Uniform01()
	return low + int(math.Floor(u*float64(high-low+1)))
}

// Normal returns a deviate from N(mean, stdDev²) using the polar Box–Muller method.
// One accepted pair (v1, v2) yields two deviates: v2*fac is returned at once,
// v1*fac is kept and scaled by the arguments of the following call.
func (s *Sampler) Normal(mean, stdDev float64) float64 {
	if s.hasSpare {
		s.hasSpare = false
		return s.spare*stdDev + mean
	}

	var v1, v2, r float64
	for {
		v1 = 2.0*s.src.Uniform01() - 1.0
		v2 = 2.0*s.src.Uniform01() - 1.0
		r = v1*v1 + v2*v2
		if r < 1.0 && r > 0 {
			break
		}
	}
	fac := math.Sqrt(-2.0 * math.Log(r) / r)
	s.spare = v1 * fac
	s.hasSpare = true
	return v2*fac*stdDev + mean
}
