// SPDX-License-Identifier: MIT
// Package si: per-dimension unit registries.
//
// Every constructor returns a fresh registry, so callers may extend it
// (Register, Define, catalog.Apply) without affecting other callers.

package si

import (
	"sort"

	"github.com/katalvlaran/lvlquant/quantity"
)

// LengthUnits returns a fresh registry of the length units.
func LengthUnits() *quantity.Registry[DimLength] {
	return quantity.MustRegistry(Metre, Inch, Foot, Yard, Mile, NauticalMile, AstronomicalUnit, LightYear)
}

// AreaUnits returns a fresh registry of the area units.
func AreaUnits() *quantity.Registry[DimArea] {
	return quantity.MustRegistry(SquareMetre, SquareInch, SquareFoot, SquareMile, Hectare, Acre)
}

// VolumeUnits returns a fresh registry of the volume units.
func VolumeUnits() *quantity.Registry[DimVolume] {
	return quantity.MustRegistry(CubicMetre, CubicFoot, Litre, USGallon)
}

// TimeUnits returns a fresh registry of the time units.
func TimeUnits() *quantity.Registry[DimTime] {
	return quantity.MustRegistry(Second, Minute, Hour, Day, Week)
}

// MassUnits returns a fresh registry of the mass units.
func MassUnits() *quantity.Registry[DimMass] {
	return quantity.MustRegistry(Kilogram, Gram, Tonne, Pound, Ounce)
}

// VelocityUnits returns a fresh registry of the velocity units.
func VelocityUnits() *quantity.Registry[DimVelocity] {
	return quantity.MustRegistry(MetrePerSecond, KilometrePerHour, MilePerHour, FootPerSecond, Knot)
}

// AccelerationUnits returns a fresh registry of the acceleration units.
func AccelerationUnits() *quantity.Registry[DimAcceleration] {
	return quantity.MustRegistry(MetrePerSecondSquared, FootPerSecondSquared, StandardGravity)
}

// ForceUnits returns a fresh registry of the force units.
func ForceUnits() *quantity.Registry[DimForce] {
	return quantity.MustRegistry(Newton, Dyne, KilogramForce, PoundForce)
}

// EnergyUnits returns a fresh registry of the energy units.
func EnergyUnits() *quantity.Registry[DimEnergy] {
	return quantity.MustRegistry(Joule, WattHour, Calorie, Electronvolt, BTU)
}

// PowerUnits returns a fresh registry of the power units.
func PowerUnits() *quantity.Registry[DimPower] {
	return quantity.MustRegistry(Watt, Horsepower)
}

// PressureUnits returns a fresh registry of the pressure units.
func PressureUnits() *quantity.Registry[DimPressure] {
	return quantity.MustRegistry(Pascal, Bar, Atmosphere, PoundPerSquareInch, MillimetreOfMercury)
}

// DensityUnits returns a fresh registry of the density units.
func DensityUnits() *quantity.Registry[DimDensity] {
	return quantity.MustRegistry(KilogramPerCubicMetre, GramPerCubicCentimetre, GramPerLitre, PoundPerCubicFoot)
}

// MomentumUnits returns a fresh registry of the momentum units.
func MomentumUnits() *quantity.Registry[DimMomentum] {
	return quantity.MustRegistry(KilogramMetrePerSecond, NewtonSecond)
}

// TorqueUnits returns a fresh registry of the torque units.
func TorqueUnits() *quantity.Registry[DimTorque] {
	return quantity.MustRegistry(NewtonMetre, PoundFoot)
}

// TemperatureUnits returns a fresh registry of the temperature units.
func TemperatureUnits() *quantity.Registry[DimTemperature] {
	return quantity.MustRegistry(Kelvin, Celsius, Fahrenheit, Rankine)
}

// AngleUnits returns a fresh registry of the angle units.
func AngleUnits() *quantity.Registry[DimAngle] {
	return quantity.MustRegistry(Radian, Degree, Gradian, Revolution)
}

// AngularVelocityUnits returns a fresh registry of the angular velocity units.
func AngularVelocityUnits() *quantity.Registry[DimAngularVelocity] {
	return quantity.MustRegistry(RadianPerSecond, DegreePerSecond, RevolutionPerMinute)
}

// FrequencyUnits returns a fresh registry of the frequency units.
func FrequencyUnits() *quantity.Registry[DimFrequency] {
	return quantity.MustRegistry(Hertz, CyclePerMinute)
}

// Registries returns a fresh registry for every dimension of the package,
// keyed by dimension name. Tools that choose the dimension at run time
// (command-line converters, catalog loaders) work through this map.
func Registries() map[string]quantity.Converter {
	convs := []quantity.Converter{
		LengthUnits(), AreaUnits(), VolumeUnits(), TimeUnits(), MassUnits(),
		VelocityUnits(), AccelerationUnits(), ForceUnits(), EnergyUnits(),
		PowerUnits(), PressureUnits(), DensityUnits(), MomentumUnits(),
		TorqueUnits(), TemperatureUnits(), AngleUnits(), AngularVelocityUnits(),
		FrequencyUnits(),
	}
	out := make(map[string]quantity.Converter, len(convs))
	for _, c := range convs {
		out[c.Dimension()] = c
	}

	return out
}

// DimensionNames returns the keys of Registries in ascending order.
func DimensionNames() []string {
	regs := Registries()
	names := make([]string, 0, len(regs))
	for name := range regs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
