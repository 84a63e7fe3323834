package math3d

import (
	"math"

	"github.com/taigrr/vecmath/pkg/scalar"
)

// Quaternion is a quaternion with imaginary part (X, Y, Z) and real part W.
// The zero value is Invalid.
type Quaternion[T scalar.Signed] struct {
	X, Y, Z, W T
}

// Q creates a new Quaternion from its imaginary and real parts.
func Q[T scalar.Signed](x, y, z, w T) Quaternion[T] {
	return Quaternion[T]{x, y, z, w}
}

// Invalid returns (0, 0, 0, 0).
func Invalid[T scalar.Signed]() Quaternion[T] {
	return Quaternion[T]{}
}

// Identity returns (0, 0, 0, 1).
func Identity[T scalar.Signed]() Quaternion[T] {
	return Quaternion[T]{0, 0, 0, 1}
}

// Valid reports whether q differs from Invalid.
func (q Quaternion[T]) Valid() bool {
	return q != Invalid[T]()
}

// Equal reports exact component-wise equality.
func (q Quaternion[T]) Equal(r Quaternion[T]) bool {
	return q.X == r.X && q.Y == r.Y && q.Z == r.Z && q.W == r.W
}

// Add returns the component-wise sum q + r.
func (q Quaternion[T]) Add(r Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.X + r.X, q.Y + r.Y, q.Z + r.Z, q.W + r.W}
}

// Sub returns the component-wise difference q - r.
func (q Quaternion[T]) Sub(r Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.X - r.X, q.Y - r.Y, q.Z - r.Z, q.W - r.W}
}

// Mul returns the Hamilton product q * r. It is not commutative.
func (q Quaternion[T]) Mul(r Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Div returns q * r.Inverse().
func (q Quaternion[T]) Div(r Quaternion[T]) Quaternion[T] {
	return q.Mul(r.Inverse())
}

// AddAssign sets q to q + r and returns q.
func (q *Quaternion[T]) AddAssign(r Quaternion[T]) *Quaternion[T] {
	*q = q.Add(r)
	return q
}

// SubAssign sets q to q - r and returns q.
func (q *Quaternion[T]) SubAssign(r Quaternion[T]) *Quaternion[T] {
	*q = q.Sub(r)
	return q
}

// MulAssign sets q to q * r and returns q.
func (q *Quaternion[T]) MulAssign(r Quaternion[T]) *Quaternion[T] {
	*q = q.Mul(r)
	return q
}

// DivAssign sets q to q * r.Inverse() and returns q.
func (q *Quaternion[T]) DivAssign(r Quaternion[T]) *Quaternion[T] {
	*q = q.Div(r)
	return q
}

// Scale multiplies every component, including W, by s.
func (q Quaternion[T]) Scale(s T) Quaternion[T] {
	return Quaternion[T]{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// SquareMagnitude returns the sum of the squares of all four components.
func (q Quaternion[T]) SquareMagnitude() T {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Magnitude returns the square root of SquareMagnitude, truncated for
// integer T.
func (q Quaternion[T]) Magnitude() T {
	return T(math.Sqrt(float64(q.SquareMagnitude())))
}

// Conjugate negates the imaginary part.
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns the conjugate scaled by 1/SquareMagnitude.
// The caller must not invert a zero quaternion.
func (q Quaternion[T]) Inverse() Quaternion[T] {
	return q.Conjugate().Scale(1 / q.SquareMagnitude())
}

// Normalized returns q divided by its magnitude, or q unchanged when the
// magnitude is zero.
func (q Quaternion[T]) Normalized() Quaternion[T] {
	m := q.Magnitude()
	if m == 0 {
		return q
	}
	return Quaternion[T]{q.X / m, q.Y / m, q.Z / m, q.W / m}
}
