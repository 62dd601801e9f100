// SPDX-License-Identifier: MIT
// Package si: statically typed compositions between named quantities.
//
// Purpose:
//   - Wire the products and quotients that have a name (Length / Time is
//     Velocity, Mass · Acceleration is Force, ...) so that the compiler checks
//     both operand dimensions and the result dimension.
//   - Everything else stays available through the kernel's generic contract
//     (q.Mul, q.Div, quantity.Multiply) and yields quantity.Unhandled.
//
// All functions route through the quantity *Into factories; canonical
// magnitudes multiply into canonical magnitudes, so no unit conversion
// happens here.

package si

import "github.com/katalvlaran/lvlquant/quantity"

// ---------- Kinematics ----------

// VelocityFrom returns distance / duration.
func VelocityFrom(distance Length, duration Time) Velocity {
	return quantity.DivideInto(distance, duration, quantity.FromCanonical[DimVelocity])
}

// DistanceFrom returns speed · duration.
func DistanceFrom(speed Velocity, duration Time) Length {
	return quantity.MultiplyInto(speed, duration, quantity.FromCanonical[DimLength])
}

// DurationFrom returns distance / speed.
func DurationFrom(distance Length, speed Velocity) Time {
	return quantity.DivideInto(distance, speed, quantity.FromCanonical[DimTime])
}

// AccelerationFrom returns Δvelocity / duration.
func AccelerationFrom(dv Velocity, duration Time) Acceleration {
	return quantity.DivideInto(dv, duration, quantity.FromCanonical[DimAcceleration])
}

// VelocityChange returns acceleration · duration.
func VelocityChange(a Acceleration, duration Time) Velocity {
	return quantity.MultiplyInto(a, duration, quantity.FromCanonical[DimVelocity])
}

// AngularVelocityFrom returns angle / duration.
func AngularVelocityFrom(angle Angle, duration Time) AngularVelocity {
	return quantity.DivideInto(angle, duration, quantity.FromCanonical[DimAngularVelocity])
}

// FrequencyOf returns 1 / period.
func FrequencyOf(period Time) Frequency {
	return quantity.DivideInto(quantity.ScalarOf(1), period, quantity.FromCanonical[DimFrequency])
}

// PeriodOf returns 1 / frequency.
func PeriodOf(f Frequency) Time {
	return quantity.DivideInto(quantity.ScalarOf(1), f, quantity.FromCanonical[DimTime])
}

// ---------- Geometry ----------

// AreaFrom returns a · b.
func AreaFrom(a, b Length) Area {
	return quantity.MultiplyInto(a, b, quantity.FromCanonical[DimArea])
}

// VolumeFrom returns base · height.
func VolumeFrom(base Area, height Length) Volume {
	return quantity.MultiplyInto(base, height, quantity.FromCanonical[DimVolume])
}

// LengthFrom returns area / length, e.g. the side of a rectangle.
func LengthFrom(area Area, side Length) Length {
	return quantity.DivideInto(area, side, quantity.FromCanonical[DimLength])
}

// ---------- Dynamics ----------

// ForceFrom returns mass · acceleration.
func ForceFrom(m Mass, a Acceleration) Force {
	return quantity.MultiplyInto(m, a, quantity.FromCanonical[DimForce])
}

// AccelerationOf returns force / mass.
func AccelerationOf(f Force, m Mass) Acceleration {
	return quantity.DivideInto(f, m, quantity.FromCanonical[DimAcceleration])
}

// MomentumFrom returns mass · velocity.
func MomentumFrom(m Mass, v Velocity) Momentum {
	return quantity.MultiplyInto(m, v, quantity.FromCanonical[DimMomentum])
}

// EnergyFrom returns the work of a force along a straight distance.
func EnergyFrom(f Force, distance Length) Energy {
	return quantity.MultiplyInto(f, distance, quantity.FromCanonical[DimEnergy])
}

// KineticEnergy returns m·v²/2.
func KineticEnergy(m Mass, v Velocity) Energy {
	return quantity.MultiplyInto(m, v.Square(), quantity.FromCanonical[DimEnergy]).Scale(0.5)
}

// PowerFrom returns energy / duration.
func PowerFrom(e Energy, duration Time) Power {
	return quantity.DivideInto(e, duration, quantity.FromCanonical[DimPower])
}

// EnergyOver returns power · duration.
func EnergyOver(p Power, duration Time) Energy {
	return quantity.MultiplyInto(p, duration, quantity.FromCanonical[DimEnergy])
}

// PressureFrom returns force / area.
func PressureFrom(f Force, a Area) Pressure {
	return quantity.DivideInto(f, a, quantity.FromCanonical[DimPressure])
}

// DensityFrom returns mass / volume.
func DensityFrom(m Mass, v Volume) Density {
	return quantity.DivideInto(m, v, quantity.FromCanonical[DimDensity])
}

// MassFrom returns density · volume.
func MassFrom(rho Density, v Volume) Mass {
	return quantity.MultiplyInto(rho, v, quantity.FromCanonical[DimMass])
}

// ---------- Vector compositions ----------

// Velocity3From returns displacement / duration.
func Velocity3From(displacement Length3, duration Time) Velocity3 {
	return quantity.DivideVectorInto(displacement, duration, quantity.Vector3FromCanonical[DimVelocity])
}

// Displacement3From returns velocity · duration.
func Displacement3From(v Velocity3, duration Time) Length3 {
	return quantity.ScaleVectorInto(v, duration, quantity.Vector3FromCanonical[DimLength])
}

// Acceleration3From returns Δvelocity / duration.
func Acceleration3From(dv Velocity3, duration Time) Acceleration3 {
	return quantity.DivideVectorInto(dv, duration, quantity.Vector3FromCanonical[DimAcceleration])
}

// Force3From returns mass · acceleration.
func Force3From(m Mass, a Acceleration3) Force3 {
	return quantity.ScaleVectorInto(a, m, quantity.Vector3FromCanonical[DimForce])
}

// Momentum3From returns mass · velocity.
func Momentum3From(m Mass, v Velocity3) Momentum3 {
	return quantity.ScaleVectorInto(v, m, quantity.Vector3FromCanonical[DimMomentum])
}

// TorqueFrom returns the lever arm crossed with the force, r × F.
func TorqueFrom(r Length3, f Force3) Torque3 {
	return quantity.CrossInto(r, f, quantity.Vector3FromCanonical[DimTorque])
}

// WorkFrom returns the work F · d of a constant force along a displacement.
func WorkFrom(f Force3, d Length3) Energy {
	return quantity.DotInto(f, d, quantity.FromCanonical[DimEnergy])
}

// PowerOf returns the instantaneous power F · v.
func PowerOf(f Force3, v Velocity3) Power {
	return quantity.DotInto(f, v, quantity.FromCanonical[DimPower])
}

// AreaFromDot returns a · b as an area (projected length product).
func AreaFromDot(a, b Length3) Area {
	return quantity.DotInto(a, b, quantity.FromCanonical[DimArea])
}

// AreaFromCross returns the vector area a × b of the parallelogram spanned
// by a and b; its magnitude is the parallelogram's area.
func AreaFromCross(a, b Length3) Area3 {
	return quantity.CrossInto(a, b, quantity.Vector3FromCanonical[DimArea])
}
