// SPDX-License-Identifier: MIT
// Package quantity: the generic scalar quantity.
//
// Purpose:
//   - Quantity[D] is the single template behind every named scalar quantity
//     (Length, Time, Velocity, ...). A named quantity is an alias of this type
//     for one dimension tag.
//   - The magnitude is always canonical: constructors normalize immediately
//     through ToCanonical and accessors read back through ToUnit.
//
// Determinism & Policy:
//   - Value type, immutable, safe for concurrent use.
//   - Identity is the canonical magnitude: quantities built from different
//     units that denote the same amount are ==.
//   - Same-dimension arithmetic stays in D; products and quotients without a
//     named result degrade to Unhandled (see contract.go).
//
// AI-Hints:
//   - Use Ratio for same-dimension division: the dimension cancels to Scalar.
//   - Use the typed functions in package si for named compositions
//     (Length / Time -> Velocity); use Mul/Div for everything else.

package quantity

// Quantity is a scalar physical quantity of dimension D.
type Quantity[D Dimension] struct {
	magnitude float64 // canonical units of D
}

// Unhandled is the quantity of an unnamed dimension.
type Unhandled = Quantity[Opaque]

// FromCanonical returns the quantity whose canonical magnitude is m.
// It is the fast path used by arithmetic and by callers that already hold
// canonical values.
func FromCanonical[D Dimension](m float64) Quantity[D] {
	return Quantity[D]{magnitude: m}
}

// New returns value expressed in unit as a canonical quantity.
func New[D Dimension](value float64, unit Unit[D]) Quantity[D] {
	return Quantity[D]{magnitude: ToCanonical(value, unit, Identity)}
}

// NewPrefixed returns value expressed in prefix·unit as a canonical quantity.
func NewPrefixed[D Dimension](value float64, unit Unit[D], prefix Prefix) Quantity[D] {
	return Quantity[D]{magnitude: ToCanonical(value, unit, prefix)}
}

// NewScalar is New for a Scalar value.
func NewScalar[D Dimension](value Scalar, unit Unit[D]) Quantity[D] {
	return New(float64(value), unit)
}

// NewScalarPrefixed is NewPrefixed for a Scalar value.
func NewScalarPrefixed[D Dimension](value Scalar, unit Unit[D], prefix Prefix) Quantity[D] {
	return NewPrefixed(float64(value), unit, prefix)
}

// ---------- Accessors ----------

// Magnitude returns the canonical magnitude. Implements Measure.
func (q Quantity[D]) Magnitude() float64 { return q.magnitude }

// Scalar returns the canonical magnitude as a Scalar.
func (q Quantity[D]) Scalar() Scalar { return Scalar(q.magnitude) }

// InUnit reports q in unit.
func (q Quantity[D]) InUnit(unit Unit[D]) float64 {
	return ToUnit(q.magnitude, unit, Identity)
}

// InUnitPrefixed reports q in prefix·unit.
func (q Quantity[D]) InUnitPrefixed(unit Unit[D], prefix Prefix) float64 {
	return ToUnit(q.magnitude, unit, prefix)
}

// Dimension returns the dimension name of q.
func (q Quantity[D]) Dimension() string { return dimensionOf[D]().DimensionName() }

// ---------- Same-dimension arithmetic ----------

// Add returns q + o.
func (q Quantity[D]) Add(o Quantity[D]) Quantity[D] {
	return Quantity[D]{magnitude: q.magnitude + o.magnitude}
}

// Sub returns q − o.
func (q Quantity[D]) Sub(o Quantity[D]) Quantity[D] {
	return Quantity[D]{magnitude: q.magnitude - o.magnitude}
}

// Mod returns the truncated remainder of q / o, in D.
func (q Quantity[D]) Mod(o Quantity[D]) Quantity[D] {
	return Quantity[D]{magnitude: float64(q.Scalar().Mod(o.Scalar()))}
}

// Neg returns −q.
func (q Quantity[D]) Neg() Quantity[D] { return Quantity[D]{magnitude: -q.magnitude} }

// Ratio returns q / o. Dividing two quantities of one dimension cancels it.
func (q Quantity[D]) Ratio(o Quantity[D]) Scalar {
	return Scalar(q.magnitude / o.magnitude)
}

// Scale returns q · k.
func (q Quantity[D]) Scale(k float64) Quantity[D] {
	return Quantity[D]{magnitude: q.magnitude * k}
}

// MulScalar returns q · s.
func (q Quantity[D]) MulScalar(s Scalar) Quantity[D] { return q.Scale(float64(s)) }

// DivScalar returns q / s.
func (q Quantity[D]) DivScalar(s Scalar) Quantity[D] {
	return Quantity[D]{magnitude: q.magnitude / float64(s)}
}

// ---------- Cross-dimension arithmetic (generic fallback) ----------

// Mul returns q · o as an Unhandled quantity. Use the typed functions of
// package si, or MultiplyInto, when the product has a name.
func (q Quantity[D]) Mul(o Measure) Unhandled { return Multiply(q, o) }

// Div returns q / o as an Unhandled quantity.
func (q Quantity[D]) Div(o Measure) Unhandled { return Divide(q, o) }

// Square returns q · q as an Unhandled quantity.
func (q Quantity[D]) Square() Unhandled {
	return Unhandled{magnitude: q.magnitude * q.magnitude}
}

// MulVector returns q · v component-wise as an Unhandled3.
func (q Quantity[D]) MulVector(v Vectorial) Unhandled3 { return ScaleVector(v, q) }

// ---------- Classification & rounding (delegated to Scalar) ----------

// Abs returns |q|.
func (q Quantity[D]) Abs() Quantity[D] { return q.with(q.Scalar().Abs()) }

// Floor returns the canonical magnitude rounded down.
func (q Quantity[D]) Floor() Quantity[D] { return q.with(q.Scalar().Floor()) }

// Ceiling returns the canonical magnitude rounded up.
func (q Quantity[D]) Ceiling() Quantity[D] { return q.with(q.Scalar().Ceiling()) }

// Round returns the canonical magnitude rounded half to even.
func (q Quantity[D]) Round() Quantity[D] { return q.with(q.Scalar().Round()) }

// IsNaN reports whether the magnitude is NaN.
func (q Quantity[D]) IsNaN() bool { return q.Scalar().IsNaN() }

// IsZero reports whether the magnitude is ±0.
func (q Quantity[D]) IsZero() bool { return q.Scalar().IsZero() }

// IsPositive reports whether the magnitude is > 0.
func (q Quantity[D]) IsPositive() bool { return q.Scalar().IsPositive() }

// IsNegative reports whether the magnitude is < 0.
func (q Quantity[D]) IsNegative() bool { return q.Scalar().IsNegative() }

// IsFinite reports whether the magnitude is neither NaN nor ±Inf.
func (q Quantity[D]) IsFinite() bool { return q.Scalar().IsFinite() }

// IsInfinite reports whether the magnitude is ±Inf.
func (q Quantity[D]) IsInfinite() bool { return q.Scalar().IsInfinite() }

// IsPositiveInfinity reports whether the magnitude is +Inf.
func (q Quantity[D]) IsPositiveInfinity() bool { return q.Scalar().IsPositiveInfinity() }

// IsNegativeInfinity reports whether the magnitude is −Inf.
func (q Quantity[D]) IsNegativeInfinity() bool { return q.Scalar().IsNegativeInfinity() }

// ---------- Ordering & equality (canonical magnitude) ----------

// Less reports q < o.
func (q Quantity[D]) Less(o Quantity[D]) bool { return q.magnitude < o.magnitude }

// Greater reports q > o.
func (q Quantity[D]) Greater(o Quantity[D]) bool { return q.magnitude > o.magnitude }

// LessOrEqual reports q ≤ o.
func (q Quantity[D]) LessOrEqual(o Quantity[D]) bool { return q.magnitude <= o.magnitude }

// GreaterOrEqual reports q ≥ o.
func (q Quantity[D]) GreaterOrEqual(o Quantity[D]) bool { return q.magnitude >= o.magnitude }

// Equal reports q == o (IEEE equality on the canonical magnitude).
func (q Quantity[D]) Equal(o Quantity[D]) bool { return q.magnitude == o.magnitude }

// Compare returns -1, 0 or +1; see Scalar.Compare for NaN ordering.
func (q Quantity[D]) Compare(o Quantity[D]) int { return q.Scalar().Compare(o.Scalar()) }

// ApproxEqual reports whether q and o agree within tol (absolute or relative).
func (q Quantity[D]) ApproxEqual(o Quantity[D], tol float64) bool {
	return approxEqual(q.magnitude, o.magnitude, tol)
}

// Min returns the smaller of q and o (q when they compare equal).
func (q Quantity[D]) Min(o Quantity[D]) Quantity[D] {
	if o.magnitude < q.magnitude {
		return o
	}

	return q
}

// Max returns the larger of q and o (q when they compare equal).
func (q Quantity[D]) Max(o Quantity[D]) Quantity[D] {
	if o.magnitude > q.magnitude {
		return o
	}

	return q
}

func (q Quantity[D]) with(s Scalar) Quantity[D] { return Quantity[D]{magnitude: float64(s)} }
