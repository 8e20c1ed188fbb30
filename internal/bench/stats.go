package bench

import (
	"math"

	"fspgen/internal/flowshop"
)

type IntStats struct {
	N    int
	Min  int
	Max  int
	Mean float64
	Std  float64
}

func CalcIntStats(values []int) IntStats {
	s := IntStats{N: len(values)}
	if s.N == 0 {
		return s
	}

	lo, hi := values[0], values[0]
	sum := 0.0
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
		sum += float64(v)
	}
	mean := sum / float64(s.N)

	variance := 0.0
	if s.N >= 2 {
		for _, v := range values {
			d := float64(v) - mean
			variance += d * d
		}
		variance /= float64(s.N - 1)
	}

	s.Min = lo
	s.Max = hi
	s.Mean = mean
	s.Std = math.Sqrt(variance)
	return s
}

// DurationStats describes a generated matrix.
// JobSpread is the mean over jobs of the std across machines, MachineSpread
// the mean over machines of the std across jobs. Job-correlated instances
// have a small JobSpread, machine-correlated ones a small MachineSpread.
type DurationStats struct {
	All           IntStats
	JobSpread     float64
	MachineSpread float64
}

func Summarize(inst *flowshop.Instance) DurationStats {
	all := make([]int, 0, inst.Jobs*inst.Machines)
	machineStd := 0.0
	for m := 0; m < inst.Machines; m++ {
		all = append(all, inst.Durations[m]...)
		machineStd += CalcIntStats(inst.Durations[m]).Std
	}

	jobStd := 0.0
	col := make([]int, inst.Machines)
	for j := 0; j < inst.Jobs; j++ {
		for m := 0; m < inst.Machines; m++ {
			col[m] = inst.At(m, j)
		}
		jobStd += CalcIntStats(col).Std
	}

	return DurationStats{
		All:           CalcIntStats(all),
		JobSpread:     jobStd / float64(inst.Jobs),
		MachineSpread: machineStd / float64(inst.Machines),
	}
}
