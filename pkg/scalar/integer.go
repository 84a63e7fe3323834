package scalar

import "golang.org/x/exp/constraints"

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo[T constraints.Unsigned](v T) bool {
	return v > 0 && v&(v-1) == 0
}

// NumericLength returns the number of decimal digits in v, ignoring sign.
// Zero has length 1.
func NumericLength[T constraints.Integer](v T) int {
	return NumericLengthBase(v, 10)
}

// NumericLengthBase returns the number of digits v needs in the given base,
// ignoring sign. It panics if base is less than 2.
func NumericLengthBase[T constraints.Integer](v, base T) int {
	if base < 2 {
		panic("scalar: NumericLengthBase called with base < 2")
	}
	n := 1
	// Truncating division moves negative values toward zero as well.
	for v /= base; v != 0; v /= base {
		n++
	}
	return n
}

// IsPrime reports whether v is prime by trial division with odd divisors up
// to the square root of v.
func IsPrime[T constraints.Unsigned](v T) bool {
	if v < 2 {
		return false
	}
	if v%2 == 0 {
		return v == 2
	}
	for d := T(3); d <= v/d; d += 2 {
		if v%d == 0 {
			return false
		}
	}
	return true
}

// IsPerfect reports whether v equals the sum of its proper divisors.
//
// Only even values are searched; odd values always report false. Every even
// v has divisors 1 and 2, so the sum starts at 3 and adds each divisor in
// [3, v/2].
func IsPerfect[T constraints.Unsigned](v T) bool {
	if v == 0 || v%2 != 0 {
		return false
	}
	sum := T(3)
	half := v / 2
	for d := T(3); d <= half; d++ {
		if v%d != 0 {
			continue
		}
		if d > v-sum {
			return false
		}
		sum += d
	}
	return sum == v
}
