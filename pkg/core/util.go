package core

import (
	"errors"
	"math"
)

// Epsilon is the tolerance used for all near-zero comparisons
const Epsilon = 1e-10

var (
	// ErrInvalidArgument is wrapped by every constructor that rejects its input
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrZeroVector is returned when a vector of zero length would be created or normalized
	ErrZeroVector = errors.New("zero vector")
)

// IsZero reports whether x is within Epsilon of zero
func IsZero(x float64) bool {
	return math.Abs(x) < Epsilon
}

// AlignZero snaps values within Epsilon of zero to exactly zero
func AlignZero(x float64) float64 {
	if IsZero(x) {
		return 0
	}
	return x
}

// SameSign reports whether a and b are both strictly positive or both strictly negative
func SameSign(a, b float64) bool {
	return a*b > 0
}
