package generator

import "math"

// roundHalfAway rounds to the nearest integer, ties away from zero.
// Every rounding step in generation goes through here; changing the rule
// changes generated instances.
func roundHalfAway(x float64) int {
	return int(math.Round(x))
}
