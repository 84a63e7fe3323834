package math3d

import (
	"math"

	"github.com/taigrr/vecmath/pkg/scalar"
)

// Vector2 is a 2D vector over a signed numeric type.
type Vector2[T scalar.Signed] struct {
	X, Y T
}

// V2 creates a new Vector2.
func V2[T scalar.Signed](x, y T) Vector2[T] {
	return Vector2[T]{x, y}
}

// Zero2 returns (0, 0).
func Zero2[T scalar.Signed]() Vector2[T] {
	return Vector2[T]{}
}

// One2 returns (1, 1).
func One2[T scalar.Signed]() Vector2[T] {
	return Vector2[T]{1, 1}
}

// Left2 returns (-1, 0).
func Left2[T scalar.Signed]() Vector2[T] {
	return Vector2[T]{-1, 0}
}

// Right2 returns (1, 0).
func Right2[T scalar.Signed]() Vector2[T] {
	return Vector2[T]{1, 0}
}

// Up2 returns (0, 1).
func Up2[T scalar.Signed]() Vector2[T] {
	return Vector2[T]{0, 1}
}

// Down2 returns (0, -1).
func Down2[T scalar.Signed]() Vector2[T] {
	return Vector2[T]{0, -1}
}

// DotProduct2 returns a · b.
func DotProduct2[T scalar.Signed](a, b Vector2[T]) T {
	return a.Dot(b)
}

// CrossProduct2 returns the scalar 2D cross product a.X*b.Y - a.Y*b.X.
func CrossProduct2[T scalar.Signed](a, b Vector2[T]) T {
	return a.Cross(b)
}

// Distance2 returns the square root of the magnitude of a - b.
//
// Note this is not the Euclidean distance between a and b, which is
// a.Sub(b).Magnitude().
func Distance2[T scalar.Signed](a, b Vector2[T]) T {
	return T(math.Sqrt(float64(a.Sub(b).Magnitude())))
}

// PerpendicularCW returns v rotated 90° clockwise: (y, -x).
func PerpendicularCW[T scalar.Signed](v Vector2[T]) Vector2[T] {
	return Vector2[T]{v.Y, -v.X}
}

// PerpendicularCCW returns v rotated 90° counter-clockwise: (-y, x).
func PerpendicularCCW[T scalar.Signed](v Vector2[T]) Vector2[T] {
	return Vector2[T]{-v.Y, v.X}
}

// Add returns the vector sum a + b.
func (a Vector2[T]) Add(b Vector2[T]) Vector2[T] {
	return Vector2[T]{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vector2[T]) Sub(b Vector2[T]) Vector2[T] {
	return Vector2[T]{a.X - b.X, a.Y - b.Y}
}

// Mul returns the component-wise product a * b.
func (a Vector2[T]) Mul(b Vector2[T]) Vector2[T] {
	return Vector2[T]{a.X * b.X, a.Y * b.Y}
}

// Div returns the component-wise quotient a / b.
func (a Vector2[T]) Div(b Vector2[T]) Vector2[T] {
	return Vector2[T]{a.X / b.X, a.Y / b.Y}
}

// AddScalar adds s to every component.
func (a Vector2[T]) AddScalar(s T) Vector2[T] {
	return Vector2[T]{a.X + s, a.Y + s}
}

// SubScalar subtracts s from every component.
func (a Vector2[T]) SubScalar(s T) Vector2[T] {
	return Vector2[T]{a.X - s, a.Y - s}
}

// Scale returns the scalar product a * s.
func (a Vector2[T]) Scale(s T) Vector2[T] {
	return Vector2[T]{a.X * s, a.Y * s}
}

// DivScalar returns the scalar division a / s.
func (a Vector2[T]) DivScalar(s T) Vector2[T] {
	return Vector2[T]{a.X / s, a.Y / s}
}

// Pos returns a unchanged (unary plus).
func (a Vector2[T]) Pos() Vector2[T] {
	return a
}

// Neg returns the negated vector.
func (a Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{-a.X, -a.Y}
}

// Equal reports exact component-wise equality.
func (a Vector2[T]) Equal(b Vector2[T]) bool {
	return a.X == b.X && a.Y == b.Y
}

// AddAssign sets a to a + b and returns a.
func (a *Vector2[T]) AddAssign(b Vector2[T]) *Vector2[T] {
	a.X += b.X
	a.Y += b.Y
	return a
}

// SubAssign sets a to a - b and returns a.
func (a *Vector2[T]) SubAssign(b Vector2[T]) *Vector2[T] {
	a.X -= b.X
	a.Y -= b.Y
	return a
}

// MulAssign sets a to a * b component-wise and returns a.
func (a *Vector2[T]) MulAssign(b Vector2[T]) *Vector2[T] {
	a.X *= b.X
	a.Y *= b.Y
	return a
}

// DivAssign sets a to a / b component-wise and returns a.
func (a *Vector2[T]) DivAssign(b Vector2[T]) *Vector2[T] {
	a.X /= b.X
	a.Y /= b.Y
	return a
}

// AddScalarAssign adds s to every component of a and returns a.
func (a *Vector2[T]) AddScalarAssign(s T) *Vector2[T] {
	a.X += s
	a.Y += s
	return a
}

// SubScalarAssign subtracts s from every component of a and returns a.
func (a *Vector2[T]) SubScalarAssign(s T) *Vector2[T] {
	a.X -= s
	a.Y -= s
	return a
}

// ScaleAssign multiplies every component of a by s and returns a.
func (a *Vector2[T]) ScaleAssign(s T) *Vector2[T] {
	a.X *= s
	a.Y *= s
	return a
}

// DivScalarAssign divides every component of a by s and returns a.
func (a *Vector2[T]) DivScalarAssign(s T) *Vector2[T] {
	a.X /= s
	a.Y /= s
	return a
}

// Dot returns the dot product a · b.
func (a Vector2[T]) Dot(b Vector2[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the scalar cross product a × b.
func (a Vector2[T]) Cross(b Vector2[T]) T {
	return a.X*b.Y - a.Y*b.X
}

// SquareMagnitude returns the squared length (no sqrt).
func (a Vector2[T]) SquareMagnitude() T {
	return a.X*a.X + a.Y*a.Y
}

// Magnitude returns the length of the vector. For integer T the result is
// truncated.
func (a Vector2[T]) Magnitude() T {
	return T(math.Sqrt(float64(a.SquareMagnitude())))
}

// Normalized returns the vector divided by its magnitude, or a unchanged when
// the magnitude is zero.
func (a Vector2[T]) Normalized() Vector2[T] {
	m := a.Magnitude()
	if m == 0 {
		return a
	}
	return a.DivScalar(m)
}
