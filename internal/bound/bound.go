// Package bound computes analytic lower bounds on the optimal makespan of a
// permutation flow-shop instance. Both bounds are pure functions of the
// duration matrix and assume at least one machine and one job.
package bound

import (
	"math"

	"fspgen/internal/flowshop"
)

// Report holds both bounds and the tighter of the two.
type Report struct {
	Taillard      int64
	Proportionate int64
	Best          int64
}

func Compute(inst *flowshop.Instance) Report {
	r := Report{
		Taillard:      Taillard(inst),
		Proportionate: Proportionate(inst),
	}
	r.Best = max(r.Taillard, r.Proportionate)
	return r
}

// Taillard returns the machine-based bound from Taillard (1993),
// "Benchmarks for basic scheduling problems":
//
//	max( max_i (B_i + T_i + A_i), max_j Σ_i p_ij )
//
// B_i is the least head of any job before machine i, A_i the least tail
// after it, T_i the total load of machine i.
func Taillard(inst *flowshop.Instance) int64 {
	n, m := inst.Jobs, inst.Machines

	// head[j] = Σ_{k<i} p_kj, tail[j] = Σ_{k>i} p_kj, updated as i advances.
	head := make([]int64, n)
	tail := make([]int64, n)
	for j := 0; j < n; j++ {
		tail[j] = inst.JobTotal(j)
	}

	var best int64
	for i := 0; i < m; i++ {
		b, a := int64(math.MaxInt64), int64(math.MaxInt64)
		for j := 0; j < n; j++ {
			tail[j] -= int64(inst.At(i, j))
			b = min(b, head[j])
			a = min(a, tail[j])
		}
		best = max(best, b+a+inst.MachineTotal(i))
		for j := 0; j < n; j++ {
			head[j] += int64(inst.At(i, j))
		}
	}

	for j := 0; j < n; j++ {
		best = max(best, inst.JobTotal(j))
	}
	return best
}

// Proportionate returns the job-based bound obtained by reducing the
// instance to a proportionate flow shop: the longest job ω runs in full,
// every other job contributes at least min(p_first, p_last).
func Proportionate(inst *flowshop.Instance) int64 {
	first, last := 0, inst.Machines-1

	var sumMin int64
	minOps := make([]int64, inst.Jobs)
	for j := range minOps {
		minOps[j] = int64(min(inst.At(first, j), inst.At(last, j)))
		sumMin += minOps[j]
	}

	omega, longest := LongestJob(inst)
	return sumMin - minOps[omega] + longest
}

// LongestJob returns the first job with the largest total duration.
func LongestJob(inst *flowshop.Instance) (job int, total int64) {
	job, total = 0, inst.JobTotal(0)
	for j := 1; j < inst.Jobs; j++ {
		if d := inst.JobTotal(j); d > total {
			job, total = j, d
		}
	}
	return job, total
}
