package scalar

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Equals reports whether a and b differ by at most tolerance.
// The difference is taken as max-min in 64-bit unsigned arithmetic, so it
// cannot underflow for unsigned types or overflow at the signed extremes.
// A negative tolerance never matches.
func Equals[T constraints.Integer](a, b, tolerance T) bool {
	if tolerance < 0 {
		return false
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return uint64(hi)-uint64(lo) <= uint64(tolerance)
}

// FloatEquals reports whether a and b differ by at most the machine epsilon
// of T.
func FloatEquals[T constraints.Float](a, b T) bool {
	return FloatEqualsTolerance(a, b, Epsilon[T]())
}

// FloatEqualsTolerance reports whether a and b differ by at most tolerance.
func FloatEqualsTolerance[T constraints.Float](a, b, tolerance T) bool {
	return T(math.Abs(float64(a-b))) <= tolerance
}

// Epsilon returns the difference between 1 and the next representable value
// of T.
func Epsilon[T constraints.Float]() T {
	if isFloat32[T]() {
		return T(math.Nextafter32(1, 2) - 1)
	}
	return T(math.Nextafter(1, 2) - 1)
}

func isFloat32[T constraints.Float]() bool {
	var v T
	return unsafe.Sizeof(v) == 4
}

// Delta returns the forward distance from b to a on a counter that wraps at
// the maximum value of T.
func Delta[T constraints.Unsigned](a, b T) T {
	if a < b {
		return (^T(0) - b) + a + 1
	}
	return a - b
}
