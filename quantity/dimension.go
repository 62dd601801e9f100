// SPDX-License-Identifier: MIT

package quantity

// Dimension is the constraint satisfied by dimension tags.
//
// A tag is a zero-size struct that names one physical dimension and the
// symbol of its canonical unit. Tags never carry data; they only make
// Quantity[Length] and Quantity[Time] distinct types so that mixing them is
// rejected by the compiler.
//
//	type DimLength struct{}
//
//	func (DimLength) DimensionName() string   { return "length" }
//	func (DimLength) CanonicalSymbol() string { return "m" }
type Dimension interface {
	// DimensionName returns a stable lower-case identifier, e.g. "length".
	DimensionName() string

	// CanonicalSymbol returns the symbol of the unit in which magnitudes
	// of this dimension are stored, e.g. "m".
	CanonicalSymbol() string
}

// Opaque is the dimension of Unhandled quantities: a product or quotient
// whose dimension has no dedicated name. It is a first-class dimension, so
// Unhandled values support the full Quantity arithmetic.
type Opaque struct{}

// DimensionName implements Dimension.
func (Opaque) DimensionName() string { return "unhandled" }

// CanonicalSymbol implements Dimension. Opaque magnitudes have no symbol.
func (Opaque) CanonicalSymbol() string { return "" }

// dimensionOf returns the tag value for D.
func dimensionOf[D Dimension]() D {
	var d D
	return d
}
