// Package si names the physical quantities of the International System of
// Units on top of the generic quantity kernel.
//
// The si package provides:
//
//   - Dimension tags (DimLength, DimTime, ...) and aliases for the scalar,
//     vector and unit types of each dimension (Length, Length3, LengthUnit).
//   - Unit catalogs per dimension, SI and common customary units.
//   - Statically checked compositions: VelocityFrom(Length, Time) Velocity,
//     ForceFrom(Mass, Acceleration) Force, TorqueFrom(Length3, Force3), ...
//   - Named accessors: InKilometres, InCelsius, InRadiansPerSecond, ...
//   - Registries per dimension and Registries() for run-time lookup by name.
//
// Quick example:
//
//	d := quantity.New(100, si.Metre)
//	t := quantity.New(9.58, si.Second)
//	v := si.VelocityFrom(d, t)
//	fmt.Println(si.InKilometresPerHour(v)) // ≈ 37.58
//
// Products without a name here (Temperature · Temperature) still compile and
// yield quantity.Unhandled.
package si
