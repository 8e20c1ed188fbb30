// Package config loads generation options from a YAML file or from
// key=value tokens. Keys use the generator's historical option names.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"fspgen/internal/generator"
)

var (
	ErrBadOption     = errors.New("config: malformed option")
	ErrUnknownOption = errors.New("config: unknown option")
)

// Option keys.
const (
	KeyStrategy    = "strategy"
	KeyJobs        = "jobs"
	KeyMachines    = "machines"
	KeySeed        = "seed"
	KeyDurationLB  = "durationLB"
	KeyDurationUB  = "durationUB"
	KeyHalfWidthLB = "distHalfWidthLB"
	KeyHalfWidthUB = "distHalfWidthUB"
	KeyAlpha       = "alpha"
	KeyNoise       = "durationNoise"
)

// File mirrors a YAML option file. Absent keys keep the defaults.
type File struct {
	Strategy    *string  `yaml:"strategy,omitempty"`
	Jobs        *int     `yaml:"jobs,omitempty"`
	Machines    *int     `yaml:"machines,omitempty"`
	Seed        *int64   `yaml:"seed,omitempty"`
	DurationLB  *int     `yaml:"durationLB,omitempty"`
	DurationUB  *int     `yaml:"durationUB,omitempty"`
	HalfWidthLB *int     `yaml:"distHalfWidthLB,omitempty"`
	HalfWidthUB *int     `yaml:"distHalfWidthUB,omitempty"`
	Alpha       *float64 `yaml:"alpha,omitempty"`
	Noise       *int     `yaml:"durationNoise,omitempty"`
}

func Load(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read %s: %w", path, err)
	}
	if err := Parse(data, &f); err != nil {
		return f, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML into f and rejects keys it does not know.
func Parse(data []byte, f *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Apply overlays the values present in f onto cfg and seed.
func (f File) Apply(cfg *generator.Config, seed *int64) {
	if f.Strategy != nil {
		cfg.Strategy = generator.Strategy(*f.Strategy)
	}
	setInt(&cfg.Jobs, f.Jobs)
	setInt(&cfg.Machines, f.Machines)
	if f.Seed != nil {
		*seed = *f.Seed
	}
	setInt(&cfg.DurationLB, f.DurationLB)
	setInt(&cfg.DurationUB, f.DurationUB)
	setInt(&cfg.HalfWidthLB, f.HalfWidthLB)
	setInt(&cfg.HalfWidthUB, f.HalfWidthUB)
	if f.Alpha != nil {
		cfg.Alpha = *f.Alpha
	}
	setInt(&cfg.Noise, f.Noise)
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// ParseOptions reads key=value tokens (a leading dash on the key is allowed,
// as in "-alpha=0.3") into a File. Later tokens override earlier ones.
func ParseOptions(tokens []string) (File, error) {
	var f File
	for _, tok := range tokens {
		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			return f, fmt.Errorf("%w %q: want key=value", ErrBadOption, tok)
		}
		key = strings.TrimLeft(strings.TrimSpace(key), "-")
		value = strings.TrimSpace(value)
		if err := f.set(key, value); err != nil {
			return f, err
		}
	}
	return f, nil
}

func (f *File) set(key, value string) error {
	switch key {
	case KeyStrategy:
		f.Strategy = &value
		return nil
	case KeyJobs:
		return parseInt(key, value, &f.Jobs)
	case KeyMachines:
		return parseInt(key, value, &f.Machines)
	case KeySeed:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w %s=%q: %v", ErrBadOption, key, value, err)
		}
		f.Seed = &v
		return nil
	case KeyDurationLB:
		return parseInt(key, value, &f.DurationLB)
	case KeyDurationUB:
		return parseInt(key, value, &f.DurationUB)
	case KeyHalfWidthLB:
		return parseInt(key, value, &f.HalfWidthLB)
	case KeyHalfWidthUB:
		return parseInt(key, value, &f.HalfWidthUB)
	case KeyAlpha:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w %s=%q: %v", ErrBadOption, key, value, err)
		}
		f.Alpha = &v
		return nil
	case KeyNoise:
		return parseInt(key, value, &f.Noise)
	default:
		return fmt.Errorf("%w %q", ErrUnknownOption, key)
	}
}

func parseInt(key, value string, dst **int) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w %s=%q: %v", ErrBadOption, key, value, err)
	}
	*dst = &v
	return nil
}
