package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVector2ZeroValue(t *testing.T) {
	var v Vector2[float64]
	require.Equal(t, 0.0, v.X)
	require.Equal(t, 0.0, v.Y)
	require.Equal(t, Zero2[float64](), v)
}

func TestVector2Constants(t *testing.T) {
	require.Equal(t, One2[int](), Zero2[int]().Add(One2[int]()))
	require.Equal(t, V2(-1, 0), Left2[int]())
	require.Equal(t, V2(1, 0), Right2[int]())
	require.Equal(t, V2(0, 1), Up2[int]())
	require.Equal(t, V2(0, -1), Down2[int]())
	require.Equal(t, Left2[float32](), Right2[float32]().Neg())
	require.Equal(t, Down2[float32](), Up2[float32]().Neg())
}

func TestVector2Arithmetic(t *testing.T) {
	a := V2(6.0, -4.0)
	b := V2(2.0, 8.0)

	tests := []struct {
		name string
		got  Vector2[float64]
		want Vector2[float64]
	}{
		{"add", a.Add(b), V2(8.0, 4.0)},
		{"sub", a.Sub(b), V2(4.0, -12.0)},
		{"mul", a.Mul(b), V2(12.0, -32.0)},
		{"div", a.Div(b), V2(3.0, -0.5)},
		{"add scalar", a.AddScalar(1), V2(7.0, -3.0)},
		{"sub scalar", a.SubScalar(1), V2(5.0, -5.0)},
		{"scale", a.Scale(0.5), V2(3.0, -2.0)},
		{"div scalar", a.DivScalar(2), V2(3.0, -2.0)},
		{"pos", a.Pos(), a},
		{"neg", a.Neg(), V2(-6.0, 4.0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.got)
		})
	}
}

func TestVector2Assign(t *testing.T) {
	v := V2(1, 2)
	v.AddAssign(V2(1, 1)).ScaleAssign(3)
	require.Equal(t, V2(6, 9), v)

	v.SubAssign(V2(2, 3))
	require.Equal(t, V2(4, 6), v)

	v.MulAssign(V2(2, -1))
	require.Equal(t, V2(8, -6), v)

	v.DivAssign(V2(4, 3))
	require.Equal(t, V2(2, -2), v)

	v.AddScalarAssign(5).SubScalarAssign(1).DivScalarAssign(2)
	require.Equal(t, V2(3, 1), v)

	other := V2(7, 7)
	other.AddAssign(v)
	require.Equal(t, V2(3, 1), v, "argument must not change")
}

func TestVector2Equality(t *testing.T) {
	require.True(t, V2(1.0, 2.0).Equal(V2(1.0, 2.0)))
	require.False(t, V2(1.0, 2.0).Equal(V2(1.0, 2.0000001)))
	require.True(t, V2(1.0, 2.0) == V2(1.0, 2.0))
	require.True(t, V2(1.0, 2.0) != V2(2.0, 1.0))
}

func TestVector2Products(t *testing.T) {
	require.Equal(t, 1, CrossProduct2(Right2[int](), Up2[int]()))
	require.Equal(t, -1, CrossProduct2(Up2[int](), Right2[int]()))
	require.Equal(t, 0, DotProduct2(Right2[int](), Up2[int]()))
	require.Equal(t, 11, DotProduct2(V2(1, 2), V2(3, 4)))
	require.Equal(t, -2, V2(1, 2).Cross(V2(3, 4)))
}

func TestVector2Perpendicular(t *testing.T) {
	v := V2(3, 5)
	require.Equal(t, V2(5, -3), PerpendicularCW(v))
	require.Equal(t, V2(-5, 3), PerpendicularCCW(v))
	require.Equal(t, Down2[int](), PerpendicularCW(Right2[int]()))
	require.Equal(t, Up2[int](), PerpendicularCCW(Right2[int]()))
	require.Equal(t, 0, v.Dot(PerpendicularCW(v)))
	require.Equal(t, v.Neg(), PerpendicularCW(PerpendicularCW(v)))
}

func TestVector2Magnitude(t *testing.T) {
	v := V2(3.0, 4.0)
	require.Equal(t, 25.0, v.SquareMagnitude())
	require.Equal(t, 5.0, v.Magnitude())
	require.Equal(t, 2, V2(2, 2).Magnitude(), "integer magnitude truncates")
}

func TestVector2Normalized(t *testing.T) {
	n := V2(3.0, 4.0).Normalized()
	require.InDelta(t, 0.6, n.X, 1e-12)
	require.InDelta(t, 0.8, n.Y, 1e-12)
	require.InDelta(t, 1.0, n.Magnitude(), 1e-12)

	require.Equal(t, Zero2[float64](), Zero2[float64]().Normalized())
	require.Equal(t, Zero2[int](), Zero2[int]().Normalized())
}

func TestVector2DistanceIsRootOfMagnitude(t *testing.T) {
	a := V2(1.0, 1.0)
	b := V2(17.0, 1.0)
	require.Equal(t, 16.0, a.Sub(b).Magnitude())
	require.Equal(t, 4.0, Distance2(a, b))
	require.Equal(t, math.Sqrt(5), Distance2(V2(0.0, 0.0), V2(3.0, 4.0)))
}
