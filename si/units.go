// SPDX-License-Identifier: MIT
// Package si: unit catalogs.
//
// Every unit below is an immutable package-level value, built once at
// package initialization and never mutated. Scales are exact where the unit
// is defined exactly (international foot, pound, standard atmosphere, ...).
//
// Prefix policy: SI-coherent units accept metric prefixes (km, mg, kPa);
// customary units and units whose symbol already contains a prefix (kg, km/h)
// do not.

package si

import (
	"math"

	"github.com/katalvlaran/lvlquant/quantity"
)

var noPrefix = quantity.WithoutPrefixes()

// Length.
var (
	Metre            = quantity.NewUnit[DimLength]("metre", "m", 1)
	Inch             = quantity.NewUnit[DimLength]("inch", "in", 0.0254, noPrefix)
	Foot             = quantity.NewUnit[DimLength]("foot", "ft", 0.3048, noPrefix)
	Yard             = quantity.NewUnit[DimLength]("yard", "yd", 0.9144, noPrefix)
	Mile             = quantity.NewUnit[DimLength]("mile", "mi", 1609.344, noPrefix)
	NauticalMile     = quantity.NewUnit[DimLength]("nautical mile", "nmi", 1852, noPrefix)
	AstronomicalUnit = quantity.NewUnit[DimLength]("astronomical unit", "au", 149597870700, noPrefix)
	LightYear        = quantity.NewUnit[DimLength]("light-year", "ly", 9460730472580800, noPrefix)
)

// Area. Length-derived units carry exponent 2 so that prefixes square (km²).
var (
	SquareMetre = quantity.NewUnit[DimArea]("square metre", "m²", 1, quantity.WithExponent(2))
	SquareInch  = quantity.NewUnit[DimArea]("square inch", "in²", 0.0254, quantity.WithExponent(2), noPrefix)
	SquareFoot  = quantity.NewUnit[DimArea]("square foot", "ft²", 0.3048, quantity.WithExponent(2), noPrefix)
	SquareMile  = quantity.NewUnit[DimArea]("square mile", "mi²", 1609.344, quantity.WithExponent(2), noPrefix)
	Hectare     = quantity.NewUnit[DimArea]("hectare", "ha", 1e4, noPrefix)
	Acre        = quantity.NewUnit[DimArea]("acre", "ac", 4046.8564224, noPrefix)
)

// Volume.
var (
	CubicMetre = quantity.NewUnit[DimVolume]("cubic metre", "m³", 1, quantity.WithExponent(3))
	CubicFoot  = quantity.NewUnit[DimVolume]("cubic foot", "ft³", 0.3048, quantity.WithExponent(3), noPrefix)
	Litre      = quantity.NewUnit[DimVolume]("litre", "L", 1e-3)
	USGallon   = quantity.NewUnit[DimVolume]("US gallon", "gal", 3.785411784e-3, noPrefix)
)

// Time.
var (
	Second = quantity.NewUnit[DimTime]("second", "s", 1)
	Minute = quantity.NewUnit[DimTime]("minute", "min", 60, noPrefix)
	Hour   = quantity.NewUnit[DimTime]("hour", "h", 3600, noPrefix)
	Day    = quantity.NewUnit[DimTime]("day", "d", 86400, noPrefix)
	Week   = quantity.NewUnit[DimTime]("week", "wk", 604800, noPrefix)
)

// Mass. The canonical unit is the kilogram; prefixes attach to the gram.
var (
	Kilogram = quantity.NewUnit[DimMass]("kilogram", "kg", 1, noPrefix)
	Gram     = quantity.NewUnit[DimMass]("gram", "g", 1e-3)
	Tonne    = quantity.NewUnit[DimMass]("tonne", "t", 1e3, noPrefix)
	Pound    = quantity.NewUnit[DimMass]("pound", "lb", 0.45359237, noPrefix)
	Ounce    = quantity.NewUnit[DimMass]("ounce", "oz", 0.028349523125, noPrefix)
)

// Velocity.
var (
	MetrePerSecond   = quantity.NewUnit[DimVelocity]("metre per second", "m/s", 1)
	KilometrePerHour = quantity.NewUnit[DimVelocity]("kilometre per hour", "km/h", 1/3.6, noPrefix)
	MilePerHour      = quantity.NewUnit[DimVelocity]("mile per hour", "mph", 0.44704, noPrefix)
	FootPerSecond    = quantity.NewUnit[DimVelocity]("foot per second", "ft/s", 0.3048, noPrefix)
	Knot             = quantity.NewUnit[DimVelocity]("knot", "kn", 1852.0/3600.0, noPrefix)
)

// Acceleration.
var (
	MetrePerSecondSquared = quantity.NewUnit[DimAcceleration]("metre per second squared", "m/s²", 1)
	FootPerSecondSquared  = quantity.NewUnit[DimAcceleration]("foot per second squared", "ft/s²", 0.3048, noPrefix)
	StandardGravity       = quantity.NewUnit[DimAcceleration]("standard gravity", "gn", 9.80665, noPrefix)
)

// Force.
var (
	Newton        = quantity.NewUnit[DimForce]("newton", "N", 1)
	Dyne          = quantity.NewUnit[DimForce]("dyne", "dyn", 1e-5, noPrefix)
	KilogramForce = quantity.NewUnit[DimForce]("kilogram-force", "kgf", 9.80665, noPrefix)
	PoundForce    = quantity.NewUnit[DimForce]("pound-force", "lbf", 4.4482216152605, noPrefix)
)

// Energy.
var (
	Joule        = quantity.NewUnit[DimEnergy]("joule", "J", 1)
	WattHour     = quantity.NewUnit[DimEnergy]("watt-hour", "Wh", 3600)
	Calorie      = quantity.NewUnit[DimEnergy]("calorie", "cal", 4.184)
	Electronvolt = quantity.NewUnit[DimEnergy]("electronvolt", "eV", 1.602176634e-19)
	BTU          = quantity.NewUnit[DimEnergy]("British thermal unit", "BTU", 1055.05585262, noPrefix)
)

// Power.
var (
	Watt       = quantity.NewUnit[DimPower]("watt", "W", 1)
	Horsepower = quantity.NewUnit[DimPower]("horsepower", "hp", 745.69987158227022, noPrefix)
)

// Pressure.
var (
	Pascal              = quantity.NewUnit[DimPressure]("pascal", "Pa", 1)
	Bar                 = quantity.NewUnit[DimPressure]("bar", "bar", 1e5)
	Atmosphere          = quantity.NewUnit[DimPressure]("standard atmosphere", "atm", 101325, noPrefix)
	PoundPerSquareInch  = quantity.NewUnit[DimPressure]("pound per square inch", "psi", 6894.757293168361, noPrefix)
	MillimetreOfMercury = quantity.NewUnit[DimPressure]("millimetre of mercury", "mmHg", 133.322387415, noPrefix)
)

// Density.
var (
	KilogramPerCubicMetre  = quantity.NewUnit[DimDensity]("kilogram per cubic metre", "kg/m³", 1, noPrefix)
	GramPerCubicCentimetre = quantity.NewUnit[DimDensity]("gram per cubic centimetre", "g/cm³", 1e3, noPrefix)
	GramPerLitre           = quantity.NewUnit[DimDensity]("gram per litre", "g/L", 1, noPrefix)
	PoundPerCubicFoot      = quantity.NewUnit[DimDensity]("pound per cubic foot", "lb/ft³", 0.45359237/(0.3048*0.3048*0.3048), noPrefix)
)

// Momentum.
var (
	KilogramMetrePerSecond = quantity.NewUnit[DimMomentum]("kilogram metre per second", "kg·m/s", 1, noPrefix)
	NewtonSecond           = quantity.NewUnit[DimMomentum]("newton second", "N·s", 1, noPrefix)
)

// Torque.
var (
	NewtonMetre = quantity.NewUnit[DimTorque]("newton metre", "N·m", 1, noPrefix)
	PoundFoot   = quantity.NewUnit[DimTorque]("pound-foot", "lbf·ft", 4.4482216152605*0.3048, noPrefix)
)

// Temperature. Celsius and Fahrenheit are biased units.
var (
	Kelvin     = quantity.NewUnit[DimTemperature]("kelvin", "K", 1)
	Celsius    = quantity.NewUnit[DimTemperature]("degree Celsius", "°C", 1, quantity.WithOffset(273.15), noPrefix)
	Fahrenheit = quantity.NewUnit[DimTemperature]("degree Fahrenheit", "°F", 5.0/9.0, quantity.WithOffset(459.67), noPrefix)
	Rankine    = quantity.NewUnit[DimTemperature]("degree Rankine", "°R", 5.0/9.0, noPrefix)
)

// Angle.
var (
	Radian     = quantity.NewUnit[DimAngle]("radian", "rad", 1)
	Degree     = quantity.NewUnit[DimAngle]("degree", "°", math.Pi/180, noPrefix)
	Gradian    = quantity.NewUnit[DimAngle]("gradian", "grad", math.Pi/200, noPrefix)
	Revolution = quantity.NewUnit[DimAngle]("revolution", "rev", 2*math.Pi, noPrefix)
)

// Angular velocity.
var (
	RadianPerSecond     = quantity.NewUnit[DimAngularVelocity]("radian per second", "rad/s", 1, noPrefix)
	DegreePerSecond     = quantity.NewUnit[DimAngularVelocity]("degree per second", "°/s", math.Pi/180, noPrefix)
	RevolutionPerMinute = quantity.NewUnit[DimAngularVelocity]("revolution per minute", "rpm", 2*math.Pi/60, noPrefix)
)

// Frequency.
var (
	Hertz          = quantity.NewUnit[DimFrequency]("hertz", "Hz", 1)
	CyclePerMinute = quantity.NewUnit[DimFrequency]("cycle per minute", "cpm", 1.0/60.0, noPrefix)
)
