// Package report renders a built instance: the classic text layout, a CSV
// matrix file, or a YAML document.
package report

import (
	"bufio"
	"fmt"
	"io"

	"fspgen/internal/bench"
)

// WriteText writes the instance in the classic layout: a "jobs machines"
// header, then one line per job of (machine, duration) pairs, then the bounds
// and the seed. withStats appends the duration statistics.
func WriteText(w io.Writer, res bench.Result, withStats bool) error {
	bw := bufio.NewWriter(w)
	inst := res.Instance

	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "%3d %3d\n\n", inst.Jobs, inst.Machines)
	for j := 0; j < inst.Jobs; j++ {
		for m := 0; m < inst.Machines; m++ {
			fmt.Fprintf(bw, "%3d %3d ", m, inst.At(m, j))
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw)

	fmt.Fprintf(bw, "Taillard LB      : %d\n", res.Bounds.Taillard)
	fmt.Fprintf(bw, "Proportionate LB : %d\n", res.Bounds.Proportionate)
	fmt.Fprintf(bw, "Lower bound: %d\n", res.Bounds.Best)

	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Random seed: %d\n", res.Case.Seed)

	if withStats {
		s := res.Stats
		fmt.Fprintln(bw)
		fmt.Fprintf(bw, "Durations        : min=%d max=%d mean=%.2f std=%.2f\n", s.All.Min, s.All.Max, s.All.Mean, s.All.Std)
		fmt.Fprintf(bw, "Job spread       : %.2f\n", s.JobSpread)
		fmt.Fprintf(bw, "Machine spread   : %.2f\n", s.MachineSpread)
	}

	return bw.Flush()
}
