package scalar

import "golang.org/x/exp/constraints"

// Sign returns -1 if v is negative, 1 if positive and 0 otherwise.
func Sign[T Number](v T) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

// Distance returns the absolute difference between a and b.
// The larger value is always the minuend, so unsigned types never wrap.
func Distance[T Number](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Reverse mirrors v about the midpoint of [min, max].
func Reverse[T Number](v, min, max T) T {
	return (min + max) - v
}

// Midpoint returns the value halfway between a and b, in either order.
// It is computed as lo + (hi-lo)/2 so that (a+b) is never formed.
func Midpoint[T Number](a, b T) T {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + (hi-lo)/2
}

// Clamp limits v to [min, max].
func Clamp[T Number](v, min, max T) T {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01[T Number](v T) T {
	return Clamp(v, 0, 1)
}

// Clamp11 limits v to [-1, 1].
func Clamp11[T Signed](v T) T {
	return Clamp(v, -1, 1)
}

// Normalize maps v from [inMin, inMax] onto [outMin, outMax].
// inMin must differ from inMax.
func Normalize[T Number](v, inMin, inMax, outMin, outMax T) T {
	return ((v-inMin)*(outMax-outMin))/(inMax-inMin) + outMin
}

// Normalize01 maps v from [min, max] onto [0, 1].
func Normalize01[T Number](v, min, max T) T {
	return Normalize(v, min, max, 0, 1)
}

// Denormalize01 maps v from [0, 1] onto [min, max].
func Denormalize01[T Number](v, min, max T) T {
	return Normalize(v, 0, 1, min, max)
}

// Normalize11 maps v from [min, max] onto [-1, 1].
func Normalize11[T Signed](v, min, max T) T {
	return Normalize(v, min, max, -1, 1)
}

// Denormalize11 maps v from [-1, 1] onto [min, max].
func Denormalize11[T Signed](v, min, max T) T {
	return Normalize(v, -1, 1, min, max)
}

// Lerp interpolates between min and max by fraction in floating point and
// converts the result back to T. Fraction is not clamped; use Clamp01 on it
// first if extrapolation is unwanted.
func Lerp[T Number, F constraints.Float](min, max T, fraction F) T {
	return T(F(min)*(1-fraction) + F(max)*fraction)
}
