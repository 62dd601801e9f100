// SPDX-License-Identifier: MIT
// Package quantity: the unit conversion law.
//
// Every canonical magnitude in this package is established here, and every
// value reported in a unit is read back here. No other code multiplies by a
// unit scale.
//
// Unbiased law (exponent k):
//
//	canonical = prefix^k * raw * scale^k
//	raw       = canonical / (prefix^k * scale^k)
//
// Biased law (offset != 0, k is always 1):
//
//	canonical = (prefix * raw + offset) * scale
//	raw       = (canonical / scale - offset) / prefix
//
// Determinism & Policy:
//   - Pure functions; NaN and ±Inf propagate under IEEE-754 rules.
//   - A zero-value Unit or Prefix is a precondition violation and panics.

package quantity

import "math"

// ToCanonical converts raw, expressed in prefix·unit, to the canonical
// magnitude of D.
func ToCanonical[D Dimension](raw float64, u Unit[D], p Prefix) float64 {
	checkConversion(u, p)
	if u.Biased() {
		return (p.factor*raw + u.offset) * u.scale
	}

	return powk(p.factor, u.exponent) * raw * powk(u.scale, u.exponent)
}

// ToUnit converts a canonical magnitude of D to a raw value in prefix·unit.
// It is the inverse of ToCanonical up to floating-point rounding.
func ToUnit[D Dimension](canonical float64, u Unit[D], p Prefix) float64 {
	checkConversion(u, p)
	if u.Biased() {
		return (canonical/u.scale - u.offset) / p.factor
	}

	return canonical / (powk(p.factor, u.exponent) * powk(u.scale, u.exponent))
}

// checkConversion rejects zero-value descriptors, the only way to obtain a
// unit or prefix that skipped its constructor.
func checkConversion[D Dimension](u Unit[D], p Prefix) {
	if u.scale == 0 {
		panic(panicZeroUnit)
	}
	if p.factor == 0 {
		panic(panicZeroPrefix)
	}
}

// powk raises x to a small positive integer power; the common exponents
// avoid math.Pow so that k=1 is bit-exact.
func powk(x float64, k int) float64 {
	switch k {
	case 1:
		return x
	case 2:
		return x * x
	case 3:
		return x * x * x
	default:
		return math.Pow(x, float64(k))
	}
}
