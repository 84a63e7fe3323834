package scalar

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// FloatNumericLength estimates how many digits v needs when written out in
// decimal, ignoring sign and the decimal point: the integer digits (a lone
// "0" when the integer part is zero) plus the fractional digits.
//
// Digits are counted on the shortest decimal form that round-trips to v, so
// 0.015 has length 4 even though 0.015 is not exactly representable. This
// departs from the estimator that multiplies by 10 until no fraction is
// left, which overcounts whenever a product rounds away from the decimal
// value the caller wrote. NaN and infinities have length 0.
func FloatNumericLength[T constraints.Float](v T) int {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	bits := 64
	if isFloat32[T]() {
		bits = 32
	}
	n := 0
	for _, c := range strconv.FormatFloat(f, 'f', -1, bits) {
		if c >= '0' && c <= '9' {
			n++
		}
	}
	return n
}
