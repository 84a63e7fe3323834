// Package scalar provides generic numeric helpers shared by the vecmath
// packages: sign and tolerance comparison, range remapping, clamping,
// interpolation and a handful of integer predicates.
package scalar

import "golang.org/x/exp/constraints"

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Signed is any type that can represent negative values.
type Signed interface {
	constraints.Signed | constraints.Float
}
