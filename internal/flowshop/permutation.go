package flowshop

import "fmt"

// ValidatePermutation checks that perm is an ordering of jobs 0..n-1.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("permutation length must be %d (got %d)", n, len(perm))
	}
	seen := make([]bool, n)
	for pos, job := range perm {
		if job < 0 || job >= n {
			return fmt.Errorf("perm[%d]=%d is not a job in [0,%d)", pos, job, n)
		}
		if seen[job] {
			return fmt.Errorf("job %d appears twice in permutation", job)
		}
		seen[job] = true
	}
	return nil
}
