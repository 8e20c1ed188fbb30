package flowshop

import "fmt"

// Evaluator computes the makespan of a given job order. Generation itself
// never schedules; the makespan of any order is an upper bound on the
// optimum, which is how the lower bounds in package bound are checked for
// admissibility. The completion buffer is reused between calls.
type Evaluator struct {
	inst              *Instance
	machineCompletion []int
}

func NewEvaluator(inst *Instance) (*Evaluator, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{inst: inst, machineCompletion: make([]int, inst.Machines)}, nil
}

func (e *Evaluator) Makespan(perm []int) (int, error) {
	if e == nil || e.inst == nil {
		return 0, fmt.Errorf("nil evaluator")
	}
	if err := ValidatePermutation(perm, e.inst.Jobs); err != nil {
		return 0, err
	}

	for m := range e.machineCompletion {
		e.machineCompletion[m] = 0
	}

	for _, job := range perm {
		e.machineCompletion[0] += e.inst.At(0, job)
		for m := 1; m < e.inst.Machines; m++ {
			left := e.machineCompletion[m-1]
			up := e.machineCompletion[m]
			if left > up {
				e.machineCompletion[m] = left + e.inst.At(m, job)
			} else {
				e.machineCompletion[m] = up + e.inst.At(m, job)
			}
		}
	}
	return e.machineCompletion[e.inst.Machines-1], nil
}

func (e *Evaluator) MustMakespan(perm []int) int {
	ms, err := e.Makespan(perm)
	if err != nil {
		panic(err)
	}
	return ms
}

// Identity returns the order 0..n-1.
func Identity(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}
