// SPDX-License-Identifier: MIT
// Package quantity: the dimensionless Scalar kernel.
//
// Purpose:
//   - Provide the arithmetic primitive reused by every quantity.
//   - Keep IEEE-754 double semantics exactly: NaN propagates, comparisons
//     against NaN are false, division by zero yields ±Inf or NaN.
//
// Conversions to and from float64 are explicit (ScalarOf / Float64); there
// are no implicit numeric conversions.

package quantity

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// Scalar is a dimensionless double-precision value.
// Equality is IEEE equality (NaN != NaN); ordering is numeric.
type Scalar float64

// ScalarOf wraps a float64.
func ScalarOf(v float64) Scalar { return Scalar(v) }

// Float64 unwraps the value.
func (s Scalar) Float64() float64 { return float64(s) }

// Magnitude implements Measure, so scalars take part in the generic contract.
func (s Scalar) Magnitude() float64 { return float64(s) }

// ---------- Arithmetic ----------

// Add returns s + o.
func (s Scalar) Add(o Scalar) Scalar { return s + o }

// Sub returns s − o.
func (s Scalar) Sub(o Scalar) Scalar { return s - o }

// Mul returns s · o.
func (s Scalar) Mul(o Scalar) Scalar { return s * o }

// Div returns s / o. Division by zero follows IEEE-754 (±Inf or NaN).
func (s Scalar) Div(o Scalar) Scalar { return s / o }

// Mod returns the truncated remainder of s / o with the sign of s (math.Mod).
func (s Scalar) Mod(o Scalar) Scalar { return Scalar(math.Mod(float64(s), float64(o))) }

// Neg returns −s.
func (s Scalar) Neg() Scalar { return -s }

// Abs returns |s|.
func (s Scalar) Abs() Scalar { return Scalar(math.Abs(float64(s))) }

// Floor returns the greatest integer value ≤ s.
func (s Scalar) Floor() Scalar { return Scalar(math.Floor(float64(s))) }

// Ceiling returns the least integer value ≥ s.
func (s Scalar) Ceiling() Scalar { return Scalar(math.Ceil(float64(s))) }

// Round returns the nearest integer, rounding half to even.
func (s Scalar) Round() Scalar { return Scalar(math.RoundToEven(float64(s))) }

// Sqrt returns √s (NaN for negative s).
func (s Scalar) Sqrt() Scalar { return Scalar(math.Sqrt(float64(s))) }

// Square returns s².
func (s Scalar) Square() Scalar { return s * s }

// Pow returns s^x.
func (s Scalar) Pow(x Scalar) Scalar { return Scalar(math.Pow(float64(s), float64(x))) }

// ---------- Classification ----------

// IsNaN reports whether s is NaN.
func (s Scalar) IsNaN() bool { return math.IsNaN(float64(s)) }

// IsZero reports whether s is +0 or −0.
func (s Scalar) IsZero() bool { return s == 0 }

// IsPositive reports s > 0. Zero and NaN are not positive.
func (s Scalar) IsPositive() bool { return s > 0 }

// IsNegative reports s < 0. Zero and NaN are not negative.
func (s Scalar) IsNegative() bool { return s < 0 }

// IsFinite reports whether s is neither NaN nor ±Inf.
func (s Scalar) IsFinite() bool { return !math.IsNaN(float64(s)) && !math.IsInf(float64(s), 0) }

// IsInfinite reports whether s is ±Inf.
func (s Scalar) IsInfinite() bool { return math.IsInf(float64(s), 0) }

// IsPositiveInfinity reports whether s is +Inf.
func (s Scalar) IsPositiveInfinity() bool { return math.IsInf(float64(s), 1) }

// IsNegativeInfinity reports whether s is −Inf.
func (s Scalar) IsNegativeInfinity() bool { return math.IsInf(float64(s), -1) }

// ---------- Ordering ----------

// Less reports s < o.
func (s Scalar) Less(o Scalar) bool { return s < o }

// Greater reports s > o.
func (s Scalar) Greater(o Scalar) bool { return s > o }

// LessOrEqual reports s ≤ o.
func (s Scalar) LessOrEqual(o Scalar) bool { return s <= o }

// GreaterOrEqual reports s ≥ o.
func (s Scalar) GreaterOrEqual(o Scalar) bool { return s >= o }

// Equal reports s == o under IEEE rules.
func (s Scalar) Equal(o Scalar) bool { return s == o }

// Compare returns -1, 0 or +1. NaN sorts before every other value and
// equal to NaN, which makes Compare a total order usable with slices.SortFunc.
func (s Scalar) Compare(o Scalar) int {
	sn, on := s.IsNaN(), o.IsNaN()
	switch {
	case sn && on:
		return 0
	case sn:
		return -1
	case on:
		return 1
	case s < o:
		return -1
	case s > o:
		return 1
	default:
		return 0
	}
}

// ApproxEqual reports whether s and o agree within tol, absolute or relative.
// A negative tol is treated as |tol|; NaN never compares equal.
func (s Scalar) ApproxEqual(o Scalar, tol float64) bool {
	return approxEqual(float64(s), float64(o), tol)
}

// String formats s with the shortest representation that round-trips.
func (s Scalar) String() string {
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}

// approxEqual is the single tolerance policy shared by scalars, quantities
// and vectors.
func approxEqual(a, b, tol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsNaN(tol) {
		return false
	}
	tol = math.Abs(tol)

	return scalar.EqualWithinAbsOrRel(a, b, tol, tol)
}
