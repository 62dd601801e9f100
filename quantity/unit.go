// SPDX-License-Identifier: MIT
// Package quantity: unit descriptors.
//
// Purpose:
//   - Describe one unit of one dimension by its ratio to the canonical unit
//     (scale), an optional additive bias (offset) and a dimension exponent.
//   - Enforce the unit invariants once, at construction, so conversions never
//     re-check them.
//
// AI-Hints:
//   - Declare units as package-level variables; they are immutable values.
//   - Use WithExponent(2) / WithExponent(3) for area/volume units derived from
//     a length unit, so that prefixes are raised to the same power (km² = 1e6 m²).
//   - Use WithOffset only for biased scales such as Celsius or Fahrenheit.

package quantity

import (
	"fmt"
	"math"
)

// Unit is a named unit of dimension D.
//
// Canonical magnitudes relate to raw values through the conversion law in
// conversion.go. The zero value is invalid and panics when used in a
// conversion.
type Unit[D Dimension] struct {
	name       string
	symbol     string
	scale      float64 // ratio to the canonical unit, > 0
	offset     float64 // additive bias applied before scaling (biased units only)
	exponent   int     // power applied to scale and prefix, >= 1
	prefixable bool    // whether metric prefixes may be attached to the symbol
}

// UnitOption configures NewUnit.
// Constructors panic on nonsensical values (programmer error).
type UnitOption func(*unitOptions)

type unitOptions struct {
	offset     float64
	exponent   int
	prefixable bool
}

// WithOffset sets the additive bias of a biased unit (e.g. 273.15 for Celsius).
func WithOffset(offset float64) UnitOption {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		panic(panicOffsetInvalid)
	}

	return func(o *unitOptions) { o.offset = offset }
}

// WithExponent sets the dimension exponent k (2 for area-like units, 3 for
// volume-like units built from a length unit).
func WithExponent(k int) UnitOption {
	if k < 1 {
		panic(panicExponentInvalid)
	}

	return func(o *unitOptions) { o.exponent = k }
}

// WithoutPrefixes marks a unit whose symbol never takes a metric prefix
// (hour, degree Celsius, mile, ...). It only affects symbol resolution in
// a Registry; explicit prefixed construction stays possible.
func WithoutPrefixes() UnitOption {
	return func(o *unitOptions) { o.prefixable = false }
}

// NewUnit returns the unit of D named name with the given symbol and scale.
// It panics when scale is not finite and positive, or when a biased unit is
// given an exponent other than 1.
func NewUnit[D Dimension](name, symbol string, scale float64, opts ...UnitOption) Unit[D] {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		panic(panicScaleInvalid)
	}
	o := unitOptions{exponent: 1, prefixable: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.offset != 0 && o.exponent != 1 {
		panic(panicBiasedExponent)
	}

	return Unit[D]{
		name:       name,
		symbol:     symbol,
		scale:      scale,
		offset:     o.offset,
		exponent:   o.exponent,
		prefixable: o.prefixable,
	}
}

// CanonicalUnit returns the unit in which magnitudes of D are stored
// (scale 1, no offset, exponent 1). Its symbol is D's canonical symbol.
func CanonicalUnit[D Dimension]() Unit[D] {
	d := dimensionOf[D]()

	return NewUnit[D](d.DimensionName(), d.CanonicalSymbol(), 1, WithoutPrefixes())
}

// Name returns the unit name, e.g. "metre".
func (u Unit[D]) Name() string { return u.name }

// Symbol returns the unit symbol, e.g. "m".
func (u Unit[D]) Symbol() string { return u.symbol }

// Scale returns the ratio of one unit to the canonical unit.
func (u Unit[D]) Scale() float64 { return u.scale }

// Offset returns the additive bias (0 for unbiased units).
func (u Unit[D]) Offset() float64 { return u.offset }

// Exponent returns the dimension exponent.
func (u Unit[D]) Exponent() int { return u.exponent }

// Biased reports whether the unit converts through the offset law.
func (u Unit[D]) Biased() bool { return u.offset != 0 }

// Prefixable reports whether a Registry accepts metric prefixes on the symbol.
func (u Unit[D]) Prefixable() bool { return u.prefixable }

// Dimension returns the dimension name of the unit.
func (u Unit[D]) Dimension() string { return dimensionOf[D]().DimensionName() }

// String renders "name (symbol)".
func (u Unit[D]) String() string {
	return fmt.Sprintf("%s (%s)", u.name, u.symbol)
}
