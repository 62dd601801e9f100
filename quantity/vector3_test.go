// SPDX-License-Identifier: MIT
package quantity_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvlquant/matrix"
	"github.com/katalvlaran/lvlquant/quantity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// approxVec compares any two vectors component-wise within tol.
func approxVec(tol float64) cmp.Option {
	return cmp.Comparer(func(a, b quantity.Vectorial) bool {
		ax, ay, az := a.Components()
		bx, by, bz := b.Components()
		return math.Abs(ax-bx) <= tol && math.Abs(ay-by) <= tol && math.Abs(az-bz) <= tol
	})
}

func requireVec(t *testing.T, want, got quantity.Vectorial) {
	t.Helper()
	if diff := cmp.Diff(want, got, approxVec(1e-9)); diff != "" {
		t.Fatalf("vector mismatch (-want +got):\n%s", diff)
	}
}

// samples is a fixed, deterministic set of non-degenerate vectors.
var samples = []length3{
	vec(1, 0, 0), vec(0, 1, 0), vec(0, 0, 1),
	vec(3, 4, 0), vec(-1.5, 2, 7), vec(1e3, -2e-3, 0.5), vec(-4, -5, -6),
}

func TestVector3Construction(t *testing.T) {
	t.Parallel()

	v := quantity.NewVector3Prefixed(1, 2, 3, metre, quantity.Kilo)
	x, y, z := v.Components()
	require.Equal(t, [3]float64{1000, 2000, 3000}, [3]float64{x, y, z})

	x, y, z = v.InUnitPrefixed(metre, quantity.Kilo)
	assert.InEpsilon(t, 1.0, x, tol)
	assert.InEpsilon(t, 2.0, y, tol)
	assert.InEpsilon(t, 3.0, z, tol)

	x, _, _ = v.InUnit(metre)
	require.Equal(t, 1000.0, x)

	require.Equal(t, v, quantity.Vector3Of(m(1000), m(2000), m(3000)))
	require.Equal(t, v, quantity.Vector3FromCanonical[dLength](1000, 2000, 3000))
	require.Equal(t, "length", v.Dimension())
}

// TestVector3Scenarios covers the cross-product and 3-4-5 scenarios.
func TestVector3Scenarios(t *testing.T) {
	t.Parallel()

	c := vec(1, 0, 0).Cross(vec(0, 1, 0))
	require.Equal(t, quantity.Vector3FromCanonical[quantity.Opaque](0, 0, 1), c)

	v := vec(3, 4, 0)
	require.Equal(t, m(5), v.Magnitude())
	require.Equal(t, 25.0, v.SquaredMagnitude().Magnitude())
	assert.InDelta(t, 1.0, v.Normalize().Magnitude().Magnitude(), 1e-15)
	requireVec(t, vec(0.6, 0.8, 0), v.Normalize())
}

func TestVector3AlgebraLaws(t *testing.T) {
	t.Parallel()

	for _, a := range samples {
		for _, b := range samples {
			// dot(a, b) == dot(b, a)
			require.Equal(t, a.Dot(b), b.Dot(a))
			// cross(a, b) == -cross(b, a)
			require.Equal(t, a.Cross(b), b.Cross(a).Neg())
			// cross(a, b) is orthogonal to a and b
			ab := a.Cross(b)
			scale := a.Magnitude().Magnitude() * b.Magnitude().Magnitude()
			assert.InDelta(t, 0, quantity.Dot(ab, a).Magnitude(), 1e-12*scale*a.Magnitude().Magnitude())
			assert.InDelta(t, 0, quantity.Dot(ab, b).Magnitude(), 1e-12*scale*b.Magnitude().Magnitude())
		}
		// |normalize(v)| ≈ 1
		assert.InDelta(t, 1.0, a.Normalize().Magnitude().Magnitude(), 1e-12)
	}
}

// TestVector3NormalizeZero asserts the IEEE result for the zero vector.
func TestVector3NormalizeZero(t *testing.T) {
	t.Parallel()

	n := vec(0, 0, 0).Normalize()
	require.True(t, n.IsNaN())
	require.False(t, n.IsFinite())
	require.True(t, n.X.IsNaN() && n.Y.IsNaN() && n.Z.IsNaN())
}

func TestVector3ComponentWise(t *testing.T) {
	t.Parallel()

	a, b := vec(1, 2, 3), vec(4, 5, 6)
	require.Equal(t, vec(5, 7, 9), a.Add(b))
	require.Equal(t, vec(3, 3, 3), b.Sub(a))
	require.Equal(t, vec(0, 1, 0), b.Mod(a))
	require.Equal(t, vec(-1, -2, -3), a.Neg())
	require.Equal(t, vec(1, 2, 3), a.Neg().Abs())
	require.Equal(t, vec(2, 4, 6), a.Scale(2))
	require.Equal(t, vec(2, 4, 6), a.MulScalar(2))
	require.Equal(t, vec(0.5, 1, 1.5), a.DivScalar(2))
	require.Equal(t, 32.0, a.Dot(b).Magnitude())
	require.True(t, a.Equal(vec(1, 2, 3)))
	require.True(t, a.ApproxEqual(vec(1, 2, 3+1e-14), tol))
	require.False(t, a.ApproxEqual(vec(1, 2, 3.1), tol))
	require.True(t, vec(0, 0, 0).IsZero())
	require.True(t, vec(0, math.Inf(1), 0).IsInfinite())
}

// TestVector3ByScalarQuantity covers the generic vector × scalar fallback.
func TestVector3ByScalarQuantity(t *testing.T) {
	t.Parallel()

	v := vec(2, 4, 6)
	two := quantity.New(2, second)
	requireVec(t, quantity.Vector3FromCanonical[quantity.Opaque](4, 8, 12), v.Mul(two))
	requireVec(t, quantity.Vector3FromCanonical[quantity.Opaque](1, 2, 3), v.Div(two))
	requireVec(t, v.Mul(two), two.MulVector(v))
}

func TestVector3Transform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    matrix.Affine
		in   length3
		want length3
	}{
		{"identity", matrix.Identity(), vec(1, 2, 3), vec(1, 2, 3)},
		{"translation is canonical", matrix.Translation(1000, 0, 0), vec(1, 2, 3), vec(1001, 2, 3)},
		{"rotation z", matrix.RotationZ(math.Pi / 2), vec(1, 0, 0), vec(0, 1, 0)},
		{"scale then translate", matrix.Scaling(2, 2, 2).Mul(matrix.Translation(0, 0, 1)), vec(1, 1, 1), vec(2, 2, 3)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			requireVec(t, tc.want, tc.in.Transform(tc.a))
		})
	}

	// Directions ignore translation.
	requireVec(t, vec(1, 0, 0), vec(1, 0, 0).TransformDirection(matrix.Translation(5, 5, 5)))

	// A prefixed vector is transformed in canonical units.
	km := quantity.NewVector3Prefixed(1, 0, 0, metre, quantity.Kilo)
	requireVec(t, vec(1001, 0, 0), km.Transform(matrix.Translation(1, 0, 0)))
}

func TestVector3String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "(1, 2.5, -3) m", vec(1, 2.5, -3).String())
	require.Equal(t, "(0, 0, 1)", vec(1, 0, 0).Cross(vec(0, 1, 0)).String())
}
