package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireQuatInDelta(t *testing.T, want, got Quaternion[float64], delta float64) {
	t.Helper()
	require.InDelta(t, want.X, got.X, delta, "X")
	require.InDelta(t, want.Y, got.Y, delta, "Y")
	require.InDelta(t, want.Z, got.Z, delta, "Z")
	require.InDelta(t, want.W, got.W, delta, "W")
}

func TestQuaternionValidity(t *testing.T) {
	var zero Quaternion[float64]
	require.False(t, zero.Valid())
	require.False(t, Invalid[float64]().Valid())
	require.True(t, Identity[float64]().Valid())
	require.True(t, Q(0.0, 0.0, 1e-300, 0.0).Valid())
	require.True(t, Identity[int]().Valid())
}

func TestQuaternionStorageOrder(t *testing.T) {
	q := Q(1, 2, 3, 4)
	require.Equal(t, 1, q.X)
	require.Equal(t, 2, q.Y)
	require.Equal(t, 3, q.Z)
	require.Equal(t, 4, q.W)
	require.Equal(t, Q(0, 0, 0, 1), Identity[int]())
}

func TestQuaternionHamiltonProduct(t *testing.T) {
	i := Q(1, 0, 0, 0)
	j := Q(0, 1, 0, 0)
	k := Q(0, 0, 1, 0)
	minusOne := Q(0, 0, 0, -1)

	tests := []struct {
		name string
		got  Quaternion[int]
		want Quaternion[int]
	}{
		{"identity squared", Identity[int]().Mul(Identity[int]()), Identity[int]()},
		{"i squared", i.Mul(i), minusOne},
		{"j squared", j.Mul(j), minusOne},
		{"k squared", k.Mul(k), minusOne},
		{"ij", i.Mul(j), k},
		{"ji", j.Mul(i), k.Scale(-1)},
		{"jk", j.Mul(k), i},
		{"ki", k.Mul(i), j},
		{"ijk", i.Mul(j).Mul(k), minusOne},
		{"general", Q(1, 2, 3, 4).Mul(Q(5, 6, 7, 8)), Q(24, 48, 48, -6)},
		{"general reversed", Q(5, 6, 7, 8).Mul(Q(1, 2, 3, 4)), Q(32, 32, 56, -6)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.got)
		})
	}

	q := Q(0.3, -0.2, 0.5, 0.9)
	require.Equal(t, q, Identity[float64]().Mul(q))
	require.Equal(t, q, q.Mul(Identity[float64]()))
}

func TestQuaternionAddSubScale(t *testing.T) {
	a := Q(1, 2, 3, 4)
	b := Q(4, 3, 2, 1)
	require.Equal(t, Q(5, 5, 5, 5), a.Add(b))
	require.Equal(t, Q(-3, -1, 1, 3), a.Sub(b))
	require.Equal(t, Q(2, 4, 6, 8), a.Scale(2))
}

func TestQuaternionAssign(t *testing.T) {
	a := Q(1, 2, 3, 4)
	b := Q(5, 6, 7, 8)

	got := a
	got.MulAssign(b)
	require.Equal(t, a.Mul(b), got, "in-place product must match Mul")

	got = a
	got.AddAssign(b).SubAssign(b)
	require.Equal(t, a, got)

	f := Q(0.1, 0.2, 0.3, 0.9)
	g := Q(-0.4, 0.0, 0.2, 0.7)
	div := f
	div.DivAssign(g)
	requireQuatInDelta(t, f.Div(g), div, 1e-12)
}

func TestQuaternionConjugate(t *testing.T) {
	q := Q(1.0, -2.0, 3.0, 4.0)
	require.Equal(t, Q(-1.0, 2.0, -3.0, 4.0), q.Conjugate())
	require.Equal(t, q, q.Conjugate().Conjugate())

	p := q.Mul(q.Conjugate())
	require.Equal(t, Q(0.0, 0.0, 0.0, q.SquareMagnitude()), p)
}

func TestQuaternionMagnitude(t *testing.T) {
	q := Q(1.0, 2.0, 2.0, 4.0)
	require.Equal(t, 25.0, q.SquareMagnitude())
	require.Equal(t, 5.0, q.Magnitude())
	require.Equal(t, 1.0, Identity[float64]().Magnitude())
}

func TestQuaternionInverse(t *testing.T) {
	quats := []Quaternion[float64]{
		Identity[float64](),
		Q(1.0, 2.0, 3.0, 4.0),
		Q(-0.5, 0.25, 0.0, 0.1),
		Q(0.0, 0.0, 7.0, 0.0),
		Q(1e-3, -2e-3, 5e-4, 1e-3),
	}

	for _, q := range quats {
		requireQuatInDelta(t, Identity[float64](), q.Inverse().Mul(q), 1e-9)
		requireQuatInDelta(t, Identity[float64](), q.Mul(q.Inverse()), 1e-9)
		requireQuatInDelta(t, Identity[float64](), q.Div(q), 1e-9)
	}

	unit := Q(0.0, math.Sqrt2/2, 0.0, math.Sqrt2/2)
	requireQuatInDelta(t, unit.Conjugate(), unit.Inverse(), 1e-12)
}

func TestQuaternionNonCommutative(t *testing.T) {
	a := Q(0.1, 0.7, -0.3, 0.5)
	b := Q(-0.6, 0.2, 0.4, 0.1)
	require.NotEqual(t, a.Mul(b), b.Mul(a))
	requireQuatInDelta(t, a, a.Mul(b).Div(b), 1e-12)
}

func TestQuaternionNormalized(t *testing.T) {
	n := Q(1.0, 2.0, 2.0, 4.0).Normalized()
	requireQuatInDelta(t, Q(0.2, 0.4, 0.4, 0.8), n, 1e-12)
	require.InDelta(t, 1.0, n.Magnitude(), 1e-12)

	require.Equal(t, Invalid[float64](), Invalid[float64]().Normalized())
	require.Equal(t, Invalid[int](), Invalid[int]().Normalized())
	require.Equal(t, Identity[float64](), Identity[float64]().Normalized())
}
