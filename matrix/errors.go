package matrix

import "errors"

// Sentinel errors for the matrix package. Callers should compare with
// errors.Is rather than string matching.
var (
	// ErrInvalidDimensions indicates a requested size was non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index fell outside [0, size).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates two inputs expected to agree in size did
	// not. No function in this package currently returns it.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
