package flowshop

import (
	"errors"
	"fmt"
)

// Instance - матрица длительностей операций, индексируется сначала станком, затем работой.
type Instance struct {
	Jobs     int
	Machines int
	// Durations[m][j] is the processing time of job j on machine m.
	Durations [][]int
}

// Zero allocates a machines×jobs instance with all durations set to 0.
func Zero(jobs, machines int) *Instance {
	d := make([][]int, machines)
	cells := make([]int, jobs*machines)
	for m := range d {
		d[m] = cells[m*jobs : (m+1)*jobs : (m+1)*jobs]
	}
	return &Instance{Jobs: jobs, Machines: machines, Durations: d}
}

func NewInstance(durations [][]int) (*Instance, error) {
	inst := &Instance{Machines: len(durations), Durations: durations}
	if len(durations) > 0 {
		inst.Jobs = len(durations[0])
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

func (inst *Instance) Validate() error {
	if inst == nil {
		return errors.New("instance is nil")
	}
	if inst.Jobs <= 0 {
		return fmt.Errorf("jobs must be > 0 (got %d)", inst.Jobs)
	}
	if inst.Machines <= 0 {
		return fmt.Errorf("machines must be > 0 (got %d)", inst.Machines)
	}
	if len(inst.Durations) != inst.Machines {
		return fmt.Errorf("durations must have %d machine rows (got %d)", inst.Machines, len(inst.Durations))
	}
	for m, row := range inst.Durations {
		if len(row) != inst.Jobs {
			return fmt.Errorf("durations[%d] must have %d jobs (got %d)", m, inst.Jobs, len(row))
		}
		for j, v := range row {
			if v < 0 {
				return fmt.Errorf("durations[%d][%d] must be >= 0 (got %d)", m, j, v)
			}
		}
	}
	return nil
}

func (inst *Instance) At(machine, job int) int {
	return inst.Durations[machine][job]
}

func (inst *Instance) Set(machine, job, v int) {
	inst.Durations[machine][job] = v
}

// JobTotal is the sum of job's durations over all machines.
func (inst *Instance) JobTotal(job int) int64 {
	var sum int64
	for m := 0; m < inst.Machines; m++ {
		sum += int64(inst.Durations[m][job])
	}
	return sum
}

// MachineTotal is the busy time of machine over all jobs.
func (inst *Instance) MachineTotal(machine int) int64 {
	var sum int64
	for _, v := range inst.Durations[machine] {
		sum += int64(v)
	}
	return sum
}

// Clone returns a deep copy.
func (inst *Instance) Clone() *Instance {
	c := Zero(inst.Jobs, inst.Machines)
	for m := range inst.Durations {
		copy(c.Durations[m], inst.Durations[m])
	}
	return c
}
