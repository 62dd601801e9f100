// Package quantity is the dimensional-analysis kernel of lvlquant: scalar and
// 3-component vector values that carry their physical dimension in the type.
//
// 🚀 What is a Quantity?
//
//	Quantity[D] stores one float64 in the canonical unit of dimension D.
//	D is a zero-size tag (see Dimension), so Quantity[Length] and
//	Quantity[Time] are different types and adding them does not compile.
//
// ✨ Key features:
//   - Units with scale, additive offset (Celsius, Fahrenheit) and exponent
//     (km² = 1e6 m²), plus the metric prefix catalog from femto to giga
//   - Scalar: a float64 wrapper with total IEEE-754 semantics
//   - Vector3[D]: dot, cross, normalize, affine transform (matrix.Affine)
//   - Generic Multiply/Divide/Dot/Cross with *Into factories for named results
//   - Registry: symbol lookup ("km", "um"), text parsing ("1.5 km")
//
// ⚙️ Usage:
//
//	metre := quantity.NewUnit[si.DimLength]("metre", "m", 1)
//	d := quantity.NewPrefixed(1.5, metre, quantity.Kilo)
//	d.InUnit(metre) // 1500
//
// Errors:
//
//	Registry and Definition report bad input through ErrUnknownUnit,
//	ErrDuplicateUnit, ErrInvalidUnit and ErrSyntax (match with errors.Is).
//	Broken unit invariants and nil operands panic. NaN and ±Inf propagate.
//
// Named quantities (Length, Velocity, ...) and their compositions live in
// package si.
package quantity
