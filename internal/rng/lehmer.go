package rng

import (
	"errors"
	"fmt"
)

// ErrInvalidSeed is returned when a seed is not strictly positive.
var ErrInvalidSeed = errors.New("rng: seed must be in [1, 2147483646]")

// Park–Miller "minimal standard" constants, Schrage factorisation of m = a*q + r.
const (
	lehmerM int64 = 2147483647
	lehmerA int64 = 16807
	lehmerQ int64 = 127773
	lehmerR int64 = 2836
)

// MaxSeed is the largest valid seed. Seeds outside [1, MaxSeed] either fix
// the state at 0 or leave Uniform01 outside [0, 1).
const MaxSeed = lehmerM - 1

// Lehmer - мультипликативный конгруэнтный генератор из статьи Тайярда (1993).
// Последовательность полностью определяется начальным сидом.
type Lehmer struct {
	seed int64
}

func NewLehmer(seed int64) (*Lehmer, error) {
	l := &Lehmer{}
	if err := l.SetSeed(seed); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Lehmer) SetSeed(seed int64) error {
	if seed <= 0 || seed > MaxSeed {
		return fmt.Errorf("%w (got %d)", ErrInvalidSeed, seed)
	}
	l.seed = seed
	return nil
}

// Seed returns the current generator state.
func (l *Lehmer) Seed() int64 { return l.seed }

// Uniform01 advances the state and returns a value in [0, 1).
func (l *Lehmer) Uniform01() float64 {
	k := l.seed / lehmerQ
	l.seed = lehmerA*(l.seed%lehmerQ) - k*lehmerR
	if l.seed < 0 {
		l.seed += lehmerM
	}
	return float64(l.seed) / float64(lehmerM)
}
