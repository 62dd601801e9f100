// SPDX-License-Identifier: MIT
// Package quantity: the generic 3-component vector quantity.
//
// Purpose:
//   - Vector3[D] composes three Quantity[D] components and adds the genuinely
//     vector-level operations: dot, cross, magnitude, normalize, transform.
//   - Each component independently satisfies the canonical-magnitude
//     invariant; there is no cross-component invariant.
//
// Determinism & Policy:
//   - Dot and Cross square the dimension; the generic result is Unhandled /
//     Unhandled3. Named results (Length·Length -> Area) live in package si.
//   - Normalize of the zero vector yields NaN components (0/0). This is the
//     IEEE-754 result and is not special-cased.
//   - Transform reads the translation row as canonical units of D.
//
// AI-Hints:
//   - Prefer SquaredMagnitude for comparisons; it skips the square root.

package quantity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlquant/matrix"
)

// Vector3 is a 3-component vector quantity of dimension D.
type Vector3[D Dimension] struct {
	X, Y, Z Quantity[D]
}

// Unhandled3 is the vector quantity of an unnamed dimension.
type Unhandled3 = Vector3[Opaque]

// Vector3Of assembles a vector from three quantities.
func Vector3Of[D Dimension](x, y, z Quantity[D]) Vector3[D] {
	return Vector3[D]{X: x, Y: y, Z: z}
}

// Vector3FromCanonical assembles a vector from canonical magnitudes.
func Vector3FromCanonical[D Dimension](x, y, z float64) Vector3[D] {
	return Vector3[D]{X: Quantity[D]{x}, Y: Quantity[D]{y}, Z: Quantity[D]{z}}
}

// NewVector3 converts three raw values expressed in unit.
func NewVector3[D Dimension](x, y, z float64, unit Unit[D]) Vector3[D] {
	return NewVector3Prefixed(x, y, z, unit, Identity)
}

// NewVector3Prefixed converts three raw values expressed in prefix·unit.
func NewVector3Prefixed[D Dimension](x, y, z float64, unit Unit[D], prefix Prefix) Vector3[D] {
	return Vector3[D]{
		X: NewPrefixed(x, unit, prefix),
		Y: NewPrefixed(y, unit, prefix),
		Z: NewPrefixed(z, unit, prefix),
	}
}

// Components returns the canonical magnitudes. Implements Vectorial.
func (v Vector3[D]) Components() (x, y, z float64) {
	return v.X.magnitude, v.Y.magnitude, v.Z.magnitude
}

// InUnit reports the components in unit.
func (v Vector3[D]) InUnit(unit Unit[D]) (x, y, z float64) {
	return v.X.InUnit(unit), v.Y.InUnit(unit), v.Z.InUnit(unit)
}

// InUnitPrefixed reports the components in prefix·unit.
func (v Vector3[D]) InUnitPrefixed(unit Unit[D], prefix Prefix) (x, y, z float64) {
	return v.X.InUnitPrefixed(unit, prefix), v.Y.InUnitPrefixed(unit, prefix), v.Z.InUnitPrefixed(unit, prefix)
}

// Dimension returns the dimension name of v.
func (v Vector3[D]) Dimension() string { return dimensionOf[D]().DimensionName() }

// ---------- Vector algebra ----------

// SquaredMagnitude returns v·v.
func (v Vector3[D]) SquaredMagnitude() Unhandled { return v.Dot(v) }

// Magnitude returns √(v·v) in D.
func (v Vector3[D]) Magnitude() Quantity[D] {
	return Quantity[D]{magnitude: math.Sqrt(v.SquaredMagnitude().magnitude)}
}

// Dot returns v·o. The dimension is D², reported as Unhandled.
func (v Vector3[D]) Dot(o Vector3[D]) Unhandled { return Dot(v, o) }

// Cross returns v×o. The dimension is D², reported as Unhandled3.
func (v Vector3[D]) Cross(o Vector3[D]) Unhandled3 { return Cross(v, o) }

// Normalize returns v / |v|, a vector of canonical length 1 in D.
// The zero vector yields NaN components.
func (v Vector3[D]) Normalize() Vector3[D] {
	return v.DivScalar(v.Magnitude().Scalar())
}

// Transform applies the affine transform m in row-vector convention:
//
//	x' = x·m[0][0] + y·m[1][0] + z·m[2][0] + m[3][0]
//
// and likewise for y' and z'. The translation row m[3][0..2] is read as
// canonical units of D.
func (v Vector3[D]) Transform(m matrix.Affine) Vector3[D] {
	x, y, z := m.Apply(v.X.magnitude, v.Y.magnitude, v.Z.magnitude)

	return Vector3FromCanonical[D](x, y, z)
}

// TransformDirection applies only the linear 3×3 block of m (no translation).
func (v Vector3[D]) TransformDirection(m matrix.Affine) Vector3[D] {
	x, y, z := m.ApplyLinear(v.X.magnitude, v.Y.magnitude, v.Z.magnitude)

	return Vector3FromCanonical[D](x, y, z)
}

// ---------- Component-wise arithmetic ----------

// Add returns v + o.
func (v Vector3[D]) Add(o Vector3[D]) Vector3[D] {
	return Vector3[D]{X: v.X.Add(o.X), Y: v.Y.Add(o.Y), Z: v.Z.Add(o.Z)}
}

// Sub returns v − o.
func (v Vector3[D]) Sub(o Vector3[D]) Vector3[D] {
	return Vector3[D]{X: v.X.Sub(o.X), Y: v.Y.Sub(o.Y), Z: v.Z.Sub(o.Z)}
}

// Mod returns the component-wise truncated remainder of v / o.
func (v Vector3[D]) Mod(o Vector3[D]) Vector3[D] {
	return Vector3[D]{X: v.X.Mod(o.X), Y: v.Y.Mod(o.Y), Z: v.Z.Mod(o.Z)}
}

// Neg returns −v.
func (v Vector3[D]) Neg() Vector3[D] {
	return Vector3[D]{X: v.X.Neg(), Y: v.Y.Neg(), Z: v.Z.Neg()}
}

// Scale returns v · k.
func (v Vector3[D]) Scale(k float64) Vector3[D] {
	return Vector3[D]{X: v.X.Scale(k), Y: v.Y.Scale(k), Z: v.Z.Scale(k)}
}

// MulScalar returns v · s.
func (v Vector3[D]) MulScalar(s Scalar) Vector3[D] { return v.Scale(float64(s)) }

// DivScalar returns v / s.
func (v Vector3[D]) DivScalar(s Scalar) Vector3[D] {
	return Vector3[D]{X: v.X.DivScalar(s), Y: v.Y.DivScalar(s), Z: v.Z.DivScalar(s)}
}

// Mul returns v · s for a scalar quantity s of any dimension, as Unhandled3.
func (v Vector3[D]) Mul(s Measure) Unhandled3 { return ScaleVector(v, s) }

// Div returns v / s for a scalar quantity s of any dimension, as Unhandled3.
func (v Vector3[D]) Div(s Measure) Unhandled3 { return DivideVector(v, s) }

// Abs returns the component-wise absolute value.
func (v Vector3[D]) Abs() Vector3[D] {
	return Vector3[D]{X: v.X.Abs(), Y: v.Y.Abs(), Z: v.Z.Abs()}
}

// ---------- Classification & equality ----------

// IsNaN reports whether any component is NaN.
func (v Vector3[D]) IsNaN() bool { return v.X.IsNaN() || v.Y.IsNaN() || v.Z.IsNaN() }

// IsFinite reports whether every component is finite.
func (v Vector3[D]) IsFinite() bool { return v.X.IsFinite() && v.Y.IsFinite() && v.Z.IsFinite() }

// IsInfinite reports whether any component is ±Inf.
func (v Vector3[D]) IsInfinite() bool {
	return v.X.IsInfinite() || v.Y.IsInfinite() || v.Z.IsInfinite()
}

// IsZero reports whether every component is ±0.
func (v Vector3[D]) IsZero() bool { return v.X.IsZero() && v.Y.IsZero() && v.Z.IsZero() }

// Equal reports component-wise IEEE equality.
func (v Vector3[D]) Equal(o Vector3[D]) bool { return v == o }

// ApproxEqual reports whether every component agrees within tol.
func (v Vector3[D]) ApproxEqual(o Vector3[D], tol float64) bool {
	return v.X.ApproxEqual(o.X, tol) && v.Y.ApproxEqual(o.Y, tol) && v.Z.ApproxEqual(o.Z, tol)
}

// String renders "(x, y, z) sym" in canonical units.
func (v Vector3[D]) String() string {
	s := fmt.Sprintf("(%s, %s, %s)", v.X.Scalar(), v.Y.Scalar(), v.Z.Scalar())
	if sym := dimensionOf[D]().CanonicalSymbol(); sym != "" {
		s += " " + sym
	}

	return s
}
