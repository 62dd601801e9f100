// SPDX-License-Identifier: MIT
// Package si: dimension tags and named quantity aliases.
//
// Purpose:
//   - Declare one zero-size tag per physical dimension together with the
//     symbol of its canonical (SI) unit.
//   - Give every tag readable names: Length is quantity.Quantity[DimLength],
//     Length3 its vector form, LengthUnit its unit descriptor.
//
// AI-Hints:
//   - Aliases, not defined types: a Length is a quantity.Quantity and keeps
//     the whole kernel method set (Add, InUnit, Format, ...).
//   - Add a dimension by declaring a tag with both methods and the aliases.

package si

import "github.com/katalvlaran/lvlquant/quantity"

// Dimension names, also used as keys of Registries.
const (
	NameLength          = "length"
	NameArea            = "area"
	NameVolume          = "volume"
	NameTime            = "time"
	NameMass            = "mass"
	NameVelocity        = "velocity"
	NameAcceleration    = "acceleration"
	NameForce           = "force"
	NameEnergy          = "energy"
	NamePower           = "power"
	NamePressure        = "pressure"
	NameDensity         = "density"
	NameMomentum        = "momentum"
	NameTorque          = "torque"
	NameTemperature     = "temperature"
	NameAngle           = "angle"
	NameAngularVelocity = "angular-velocity"
	NameFrequency       = "frequency"
)

// DimLength tags lengths and distances, canonical in metres.
type DimLength struct{}

// DimensionName returns NameLength.
func (DimLength) DimensionName() string { return NameLength }

// CanonicalSymbol returns the symbol of the canonical unit.
func (DimLength) CanonicalSymbol() string { return "m" }

// DimArea tags surface areas, canonical in square metres.
type DimArea struct{}

// DimensionName returns NameArea.
func (DimArea) DimensionName() string { return NameArea }

// CanonicalSymbol returns the symbol of the canonical unit.
func (DimArea) CanonicalSymbol() string { return "m²" }

// DimVolume tags volumes, canonical in cubic metres.
type DimVolume struct{}

// DimensionName returns NameVolume.
func (DimVolume) DimensionName() string { return NameVolume }

// CanonicalSymbol returns the symbol of the canonical unit.
func (DimVolume) CanonicalSymbol() string { return "m³" }

// DimTime tags durations, canonical in seconds.
type DimTime struct{}

// DimensionName returns NameTime.
func (DimTime) DimensionName() string { return NameTime }

// CanonicalSymbol returns the symbol of the canonical unit.
func (DimTime) CanonicalSymbol() string { return "s" }

// DimMass is canonical in kilograms, the SI base unit.
type DimMass struct{}

// DimensionName returns NameMass.
func (DimMass) DimensionName() string { return NameMass }

// CanonicalSymbol returns the symbol of the canonical unit.
func (DimMass) CanonicalSymbol() string { return "kg" }

// DimVelocity tags speeds and velocities, canonical in metres per second.
type DimVelocity struct{}

// DimensionName returns NameVelocity.
func (DimVelocity) DimensionName() string { return NameVelocity }

// CanonicalSymbol returns the symbol of the canonical unit.
func (DimVelocity) CanonicalSymbol() string { return "m/s" }

// DimAcceleration tags accelerations, canonical in metres per second squared.
type DimAcceleration struct{}

// DimensionName returns NameAcceleration.
func (DimAcceleration) DimensionName() string { return NameAcceleration }

// CanonicalSymbol returns the symbol of the canonical unit.
func (DimAcceleration) CanonicalSymbol() string { return "m/s²" }

// DimForce tags forces, canonical in newtons.
type DimForce struct{}

// DimensionName returns NameForce.
func (DimForce) DimensionName() string { return NameForce }

// CanonicalSymbol returns the symbol of the canonical unit.
func (DimForce) CanonicalSymbol() string { return "N" }

// DimEnergy tags energy and work, canonical in joules.
type DimEnergy struct{}

// DimensionName returns NameEnergy.
func (DimEnergy) DimensionName() string { return NameEnergy }

// CanonicalSymbol returns the symbol of the canonical unit.
func (DimEnergy) CanonicalSymbol() string { return "J" }

// DimPower tags power, canonical in watts.
type DimPower struct{}

// DimensionName returns NamePower.
func (DimPower) DimensionName() string { return NamePower }

// CanonicalSymbol returns the symbol of the canonical unit.
func (DimPower) CanonicalSymbol() string { return "W" }

// DimPressure tags pressure and stress, canonical in pascals.
type DimPressure struct{}

// DimensionName returns NamePressure.
func (DimPressure) DimensionName() string { return NamePressure }

// CanonicalSymbol returns the symbol of the canonical unit.
func (DimPressure) CanonicalSymbol() string { return "Pa" }

// DimDensity tags mass densities, canonical in kilograms per cubic metre.
type DimDensity struct{}

// DimensionName returns NameDensity.
func (DimDensity) DimensionName() string { return NameDensity }

// CanonicalSymbol returns the symbol of the canonical unit.
func (DimDensity) CanonicalSymbol() string { return "kg/m³" }

// DimMomentum tags linear momentum, canonical in kilogram metres per second.
type DimMomentum struct{}

// DimensionName returns NameMomentum.
func (DimMomentum) DimensionName() string { return NameMomentum }

// CanonicalSymbol returns the symbol of the canonical unit.
func (DimMomentum) CanonicalSymbol() string { return "kg·m/s" }

// DimTorque tags moments of force, canonical in newton metres.
type DimTorque struct{}

// DimensionName returns NameTorque.
func (DimTorque) DimensionName() string { return NameTorque }

// CanonicalSymbol returns the symbol of the canonical unit.
func (DimTorque) CanonicalSymbol() string { return "N·m" }

// DimTemperature is thermodynamic temperature, canonical in kelvin.
type DimTemperature struct{}

// DimensionName returns NameTemperature.
func (DimTemperature) DimensionName() string { return NameTemperature }

// CanonicalSymbol returns the symbol of the canonical unit.
func (DimTemperature) CanonicalSymbol() string { return "K" }

// DimAngle tags plane angles, canonical in radians.
type DimAngle struct{}

// DimensionName returns NameAngle.
func (DimAngle) DimensionName() string { return NameAngle }

// CanonicalSymbol returns the symbol of the canonical unit.
func (DimAngle) CanonicalSymbol() string { return "rad" }

// DimAngularVelocity tags rotation rates, canonical in radians per second.
type DimAngularVelocity struct{}

// DimensionName returns NameAngularVelocity.
func (DimAngularVelocity) DimensionName() string { return NameAngularVelocity }

// CanonicalSymbol returns the symbol of the canonical unit.
func (DimAngularVelocity) CanonicalSymbol() string { return "rad/s" }

// DimFrequency tags frequencies, canonical in hertz.
type DimFrequency struct{}

// DimensionName returns NameFrequency.
func (DimFrequency) DimensionName() string { return NameFrequency }

// CanonicalSymbol returns the symbol of the canonical unit.
func (DimFrequency) CanonicalSymbol() string { return "Hz" }

// Scalar quantities.
type (
	Length          = quantity.Quantity[DimLength]
	Area            = quantity.Quantity[DimArea]
	Volume          = quantity.Quantity[DimVolume]
	Time            = quantity.Quantity[DimTime]
	Mass            = quantity.Quantity[DimMass]
	Velocity        = quantity.Quantity[DimVelocity]
	Acceleration    = quantity.Quantity[DimAcceleration]
	Force           = quantity.Quantity[DimForce]
	Energy          = quantity.Quantity[DimEnergy]
	Power           = quantity.Quantity[DimPower]
	Pressure        = quantity.Quantity[DimPressure]
	Density         = quantity.Quantity[DimDensity]
	Momentum        = quantity.Quantity[DimMomentum]
	Torque          = quantity.Quantity[DimTorque]
	Temperature     = quantity.Quantity[DimTemperature]
	Angle           = quantity.Quantity[DimAngle]
	AngularVelocity = quantity.Quantity[DimAngularVelocity]
	Frequency       = quantity.Quantity[DimFrequency]
)

// Vector quantities.
type (
	Length3          = quantity.Vector3[DimLength]
	Area3            = quantity.Vector3[DimArea]
	Velocity3        = quantity.Vector3[DimVelocity]
	Acceleration3    = quantity.Vector3[DimAcceleration]
	Force3           = quantity.Vector3[DimForce]
	Momentum3        = quantity.Vector3[DimMomentum]
	Torque3          = quantity.Vector3[DimTorque]
	AngularVelocity3 = quantity.Vector3[DimAngularVelocity]
)

// Unit descriptors.
type (
	LengthUnit          = quantity.Unit[DimLength]
	AreaUnit            = quantity.Unit[DimArea]
	VolumeUnit          = quantity.Unit[DimVolume]
	TimeUnit            = quantity.Unit[DimTime]
	MassUnit            = quantity.Unit[DimMass]
	VelocityUnit        = quantity.Unit[DimVelocity]
	AccelerationUnit    = quantity.Unit[DimAcceleration]
	ForceUnit           = quantity.Unit[DimForce]
	EnergyUnit          = quantity.Unit[DimEnergy]
	PowerUnit           = quantity.Unit[DimPower]
	PressureUnit        = quantity.Unit[DimPressure]
	DensityUnit         = quantity.Unit[DimDensity]
	MomentumUnit        = quantity.Unit[DimMomentum]
	TorqueUnit          = quantity.Unit[DimTorque]
	TemperatureUnit     = quantity.Unit[DimTemperature]
	AngleUnit           = quantity.Unit[DimAngle]
	AngularVelocityUnit = quantity.Unit[DimAngularVelocity]
	FrequencyUnit       = quantity.Unit[DimFrequency]
)
