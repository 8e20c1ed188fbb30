package generator

import "errors"

// Sentinel errors; callers match them with errors.Is. Returned values wrap
// them with the offending parameters.
var (
	// ErrInvalidConfig covers malformed duration bounds and correlation parameters.
	ErrInvalidConfig = errors.New("generator: invalid configuration")

	// ErrDimensionOutOfRange is returned for job or machine counts outside (0, cap].
	ErrDimensionOutOfRange = errors.New("generator: dimension out of range")

	// ErrUnknownStrategy is returned for a strategy key that is not registered.
	ErrUnknownStrategy = errors.New("generator: unknown strategy")
)
