package generator

import "fspgen/internal/flowshop"

// Correct clamps every duration of inst into b, in place.
// Gaussian tails and correlated windows near the interval ends are the
// usual sources of out-of-range values.
func Correct(inst *flowshop.Instance, b Bounds) {
	for m := range inst.Durations {
		row := inst.Durations[m]
		for j, v := range row {
			row[j] = b.Clamp(v)
		}
	}
}
