package sparkline

import "errors"

var (
	// ErrInvalidLines is returned when the row count is not a positive integer.
	ErrInvalidLines = errors.New("number of lines must be positive")

	// ErrNoData is returned when no sample is present and the range
	// cannot be inferred from explicit bounds.
	ErrNoData = errors.New("insufficient data to infer range")

	// ErrInvalidRange is returned when the lower bound exceeds the upper bound.
	ErrInvalidRange = errors.New("minimum exceeds maximum")

	// ErrBadRule is returned for emphasis rules that do not match
	// color:comparator:threshold.
	ErrBadRule = errors.New("invalid emphasis rule")

	// ErrAssembly signals columns of different heights reaching row assembly.
	// It indicates a bug, never bad input.
	ErrAssembly = errors.New("inconsistent column heights")
)
