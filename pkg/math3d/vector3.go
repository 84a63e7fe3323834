// Package math3d provides generic vector and quaternion value types.
//
// All types are plain comparable structs. Operations return new values;
// only the *Assign methods mutate their receiver.
package math3d

import (
	"math"

	"github.com/taigrr/vecmath/pkg/scalar"
)

// Vector3 is a 3D vector over a signed numeric type.
type Vector3[T scalar.Signed] struct {
	X, Y, Z T
}

// V3 creates a new Vector3.
func V3[T scalar.Signed](x, y, z T) Vector3[T] {
	return Vector3[T]{x, y, z}
}

// FromVector2 creates a Vector3 from v with Z set to 0.
func FromVector2[T scalar.Signed](v Vector2[T]) Vector3[T] {
	return Vector3[T]{v.X, v.Y, 0}
}

// ToVector2 returns the X and Y components, dropping Z.
func (a Vector3[T]) ToVector2() Vector2[T] {
	return Vector2[T]{a.X, a.Y}
}

// Zero3 returns the zero vector.
func Zero3[T scalar.Signed]() Vector3[T] {
	return Vector3[T]{}
}

// One3 returns (1, 1, 1).
func One3[T scalar.Signed]() Vector3[T] {
	return Vector3[T]{1, 1, 1}
}

// Left3 returns (-1, 0, 0).
func Left3[T scalar.Signed]() Vector3[T] {
	return Vector3[T]{-1, 0, 0}
}

// Right3 returns (1, 0, 0).
func Right3[T scalar.Signed]() Vector3[T] {
	return Vector3[T]{1, 0, 0}
}

// Up3 returns (0, 1, 0).
func Up3[T scalar.Signed]() Vector3[T] {
	return Vector3[T]{0, 1, 0}
}

// Down3 returns (0, -1, 0).
func Down3[T scalar.Signed]() Vector3[T] {
	return Vector3[T]{0, -1, 0}
}

// Forward3 returns (0, 0, 1), so that Right3 × Up3 == Forward3.
func Forward3[T scalar.Signed]() Vector3[T] {
	return Vector3[T]{0, 0, 1}
}

// Back3 returns (0, 0, -1).
func Back3[T scalar.Signed]() Vector3[T] {
	return Vector3[T]{0, 0, -1}
}

// DotProduct3 returns a · b.
func DotProduct3[T scalar.Signed](a, b Vector3[T]) T {
	return a.Dot(b)
}

// CrossProduct3 returns the right-handed cross product a × b.
func CrossProduct3[T scalar.Signed](a, b Vector3[T]) Vector3[T] {
	return a.Cross(b)
}

// Distance3 returns the square root of the magnitude of a - b.
//
// Note this is not the Euclidean distance between a and b, which is
// a.Sub(b).Magnitude().
func Distance3[T scalar.Signed](a, b Vector3[T]) T {
	return T(math.Sqrt(float64(a.Sub(b).Magnitude())))
}

// Add returns the vector sum a + b.
func (a Vector3[T]) Add(b Vector3[T]) Vector3[T] {
	return Vector3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vector3[T]) Sub(b Vector3[T]) Vector3[T] {
	return Vector3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vector3[T]) Mul(b Vector3[T]) Vector3[T] {
	return Vector3[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Div returns the component-wise quotient a / b.
func (a Vector3[T]) Div(b Vector3[T]) Vector3[T] {
	return Vector3[T]{a.X / b.X, a.Y / b.Y, a.Z / b.Z}
}

// AddScalar adds s to every component.
func (a Vector3[T]) AddScalar(s T) Vector3[T] {
	return Vector3[T]{a.X + s, a.Y + s, a.Z + s}
}

// SubScalar subtracts s from every component.
func (a Vector3[T]) SubScalar(s T) Vector3[T] {
	return Vector3[T]{a.X - s, a.Y - s, a.Z - s}
}

// Scale returns the scalar product a * s.
func (a Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{a.X * s, a.Y * s, a.Z * s}
}

// DivScalar returns the scalar division a / s.
func (a Vector3[T]) DivScalar(s T) Vector3[T] {
	return Vector3[T]{a.X / s, a.Y / s, a.Z / s}
}

// Pos returns a unchanged.
func (a Vector3[T]) Pos() Vector3[T] {
	return a
}

// Neg returns the negated vector.
func (a Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{-a.X, -a.Y, -a.Z}
}

// Equal reports exact component-wise equality.
func (a Vector3[T]) Equal(b Vector3[T]) bool {
	return a.X == b.X && a.Y == b.Y && a.Z == b.Z
}

// AddAssign sets a to a + b and returns a.
func (a *Vector3[T]) AddAssign(b Vector3[T]) *Vector3[T] {
	a.X += b.X
	a.Y += b.Y
	a.Z += b.Z
	return a
}

// SubAssign sets a to a - b and returns a.
func (a *Vector3[T]) SubAssign(b Vector3[T]) *Vector3[T] {
	a.X -= b.X
	a.Y -= b.Y
	a.Z -= b.Z
	return a
}

// MulAssign sets a to a * b component-wise and returns a.
func (a *Vector3[T]) MulAssign(b Vector3[T]) *Vector3[T] {
	a.X *= b.X
	a.Y *= b.Y
	a.Z *= b.Z
	return a
}

// DivAssign sets a to a / b component-wise and returns a.
func (a *Vector3[T]) DivAssign(b Vector3[T]) *Vector3[T] {
	a.X /= b.X
	a.Y /= b.Y
	a.Z /= b.Z
	return a
}

// AddScalarAssign adds s to every component of a and returns a.
func (a *Vector3[T]) AddScalarAssign(s T) *Vector3[T] {
	a.X += s
	a.Y += s
	a.Z += s
	return a
}

// SubScalarAssign subtracts s from every component of a and returns a.
func (a *Vector3[T]) SubScalarAssign(s T) *Vector3[T] {
	a.X -= s
	a.Y -= s
	a.Z -= s
	return a
}

// ScaleAssign multiplies every component of a by s and returns a.
func (a *Vector3[T]) ScaleAssign(s T) *Vector3[T] {
	a.X *= s
	a.Y *= s
	a.Z *= s
	return a
}

// DivScalarAssign divides every component of a by s and returns a.
func (a *Vector3[T]) DivScalarAssign(s T) *Vector3[T] {
	a.X /= s
	a.Y /= s
	a.Z /= s
	return a
}

// Dot returns the dot product a · b.
func (a Vector3[T]) Dot(b Vector3[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vector3[T]) Cross(b Vector3[T]) Vector3[T] {
	return Vector3[T]{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// SquareMagnitude returns the squared length (faster, no sqrt).
func (a Vector3[T]) SquareMagnitude() T {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Magnitude returns the length of the vector, truncated for integer T.
func (a Vector3[T]) Magnitude() T {
	return T(math.Sqrt(float64(a.SquareMagnitude())))
}

// Normalized returns the unit vector in the same direction, or a unchanged
// when its magnitude is zero.
func (a Vector3[T]) Normalized() Vector3[T] {
	m := a.Magnitude()
	if m == 0 {
		return a
	}
	return a.DivScalar(m)
}

// Lerp returns the component-wise linear interpolation between a and b by t.
func (a Vector3[T]) Lerp(b Vector3[T], t float64) Vector3[T] {
	return Vector3[T]{
		scalar.Lerp(a.X, b.X, t),
		scalar.Lerp(a.Y, b.Y, t),
		scalar.Lerp(a.Z, b.Z, t),
	}
}

// Min returns the component-wise minimum.
func (a Vector3[T]) Min(b Vector3[T]) Vector3[T] {
	return Vector3[T]{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)}
}

// Max returns the component-wise maximum.
func (a Vector3[T]) Max(b Vector3[T]) Vector3[T] {
	return Vector3[T]{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)}
}
