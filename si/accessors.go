// SPDX-License-Identifier: MIT
// Package si: named unit accessors.
//
// Each accessor is a thin read through quantity.Quantity.InUnitPrefixed with
// a fixed unit and prefix, so InKilometres(d) is exactly
// d.InUnitPrefixed(Metre, quantity.Kilo).

package si

import "github.com/katalvlaran/lvlquant/quantity"

// Length.

// InMetres returns l in metres.
func InMetres(l Length) float64 { return l.InUnit(Metre) }

// InKilometres returns l in kilometres.
func InKilometres(l Length) float64 { return l.InUnitPrefixed(Metre, quantity.Kilo) }

// InCentimetres returns l in centimetres.
func InCentimetres(l Length) float64 { return l.InUnitPrefixed(Metre, quantity.Centi) }

// InMillimetres returns l in millimetres.
func InMillimetres(l Length) float64 { return l.InUnitPrefixed(Metre, quantity.Milli) }

// InInches returns l in inches.
func InInches(l Length) float64 { return l.InUnit(Inch) }

// InFeet returns l in feet.
func InFeet(l Length) float64 { return l.InUnit(Foot) }

// InMiles returns l in miles.
func InMiles(l Length) float64 { return l.InUnit(Mile) }

// Area.

// InSquareMetres returns a in square metres.
func InSquareMetres(a Area) float64 { return a.InUnit(SquareMetre) }

// InSquareKilometres returns a in square kilometres.
func InSquareKilometres(a Area) float64 { return a.InUnitPrefixed(SquareMetre, quantity.Kilo) }

// InHectares returns a in hectares.
func InHectares(a Area) float64 { return a.InUnit(Hectare) }

// Volume.

// InCubicMetres returns v in cubic metres.
func InCubicMetres(v Volume) float64 { return v.InUnit(CubicMetre) }

// InLitres returns v in litres.
func InLitres(v Volume) float64 { return v.InUnit(Litre) }

// InMillilitres returns v in millilitres.
func InMillilitres(v Volume) float64 { return v.InUnitPrefixed(Litre, quantity.Milli) }

// Time.

// InSeconds returns t in seconds.
func InSeconds(t Time) float64 { return t.InUnit(Second) }

// InMilliseconds returns t in milliseconds.
func InMilliseconds(t Time) float64 { return t.InUnitPrefixed(Second, quantity.Milli) }

// InMinutes returns t in minutes.
func InMinutes(t Time) float64 { return t.InUnit(Minute) }

// InHours returns t in hours.
func InHours(t Time) float64 { return t.InUnit(Hour) }

// Mass.

// InKilograms returns m in kilograms.
func InKilograms(m Mass) float64 { return m.InUnit(Kilogram) }

// InGrams returns m in grams.
func InGrams(m Mass) float64 { return m.InUnit(Gram) }

// InTonnes returns m in tonnes.
func InTonnes(m Mass) float64 { return m.InUnit(Tonne) }

// InPounds returns m in pounds.
func InPounds(m Mass) float64 { return m.InUnit(Pound) }

// Velocity.

// InMetresPerSecond returns v in metres per second.
func InMetresPerSecond(v Velocity) float64 { return v.InUnit(MetrePerSecond) }

// InKilometresPerHour returns v in kilometres per hour.
func InKilometresPerHour(v Velocity) float64 { return v.InUnit(KilometrePerHour) }

// InMilesPerHour returns v in miles per hour.
func InMilesPerHour(v Velocity) float64 { return v.InUnit(MilePerHour) }

// InKnots returns v in knots.
func InKnots(v Velocity) float64 { return v.InUnit(Knot) }

// Acceleration.

// InMetresPerSecondSquared returns a in metres per second squared.
func InMetresPerSecondSquared(a Acceleration) float64 { return a.InUnit(MetrePerSecondSquared) }

// InStandardGravities returns a in standard gravities.
func InStandardGravities(a Acceleration) float64 { return a.InUnit(StandardGravity) }

// Force.

// InNewtons returns f in newtons.
func InNewtons(f Force) float64 { return f.InUnit(Newton) }

// InKilonewtons returns f in kilonewtons.
func InKilonewtons(f Force) float64 { return f.InUnitPrefixed(Newton, quantity.Kilo) }

// Energy.

// InJoules returns e in joules.
func InJoules(e Energy) float64 { return e.InUnit(Joule) }

// InKilojoules returns e in kilojoules.
func InKilojoules(e Energy) float64 { return e.InUnitPrefixed(Joule, quantity.Kilo) }

// InKilowattHours returns e in kilowatt hours.
func InKilowattHours(e Energy) float64 { return e.InUnitPrefixed(WattHour, quantity.Kilo) }

// InKilocalories returns e in kilocalories.
func InKilocalories(e Energy) float64 { return e.InUnitPrefixed(Calorie, quantity.Kilo) }

// Power.

// InWatts returns p in watts.
func InWatts(p Power) float64 { return p.InUnit(Watt) }

// InKilowatts returns p in kilowatts.
func InKilowatts(p Power) float64 { return p.InUnitPrefixed(Watt, quantity.Kilo) }

// InHorsepower returns p in horsepower.
func InHorsepower(p Power) float64 { return p.InUnit(Horsepower) }

// Pressure.

// InPascals returns p in pascals.
func InPascals(p Pressure) float64 { return p.InUnit(Pascal) }

// InKilopascals returns p in kilopascals.
func InKilopascals(p Pressure) float64 { return p.InUnitPrefixed(Pascal, quantity.Kilo) }

// InBars returns p in bars.
func InBars(p Pressure) float64 { return p.InUnit(Bar) }

// InAtmospheres returns p in atmospheres.
func InAtmospheres(p Pressure) float64 { return p.InUnit(Atmosphere) }

// InPoundsPerSquareInch returns p in pounds per square inch.
func InPoundsPerSquareInch(p Pressure) float64 { return p.InUnit(PoundPerSquareInch) }

// Density.

// InKilogramsPerCubicMetre returns d in kilograms per cubic metre.
func InKilogramsPerCubicMetre(d Density) float64 { return d.InUnit(KilogramPerCubicMetre) }

// InGramsPerCubicCentimetre returns d in grams per cubic centimetre.
func InGramsPerCubicCentimetre(d Density) float64 { return d.InUnit(GramPerCubicCentimetre) }

// Momentum.

// InKilogramMetresPerSecond returns p in kilogram metres per second.
func InKilogramMetresPerSecond(p Momentum) float64 { return p.InUnit(KilogramMetrePerSecond) }

// Torque.

// InNewtonMetres returns t in newton metres.
func InNewtonMetres(t Torque) float64 { return t.InUnit(NewtonMetre) }

// Temperature.

// InKelvin returns t in kelvin.
func InKelvin(t Temperature) float64 { return t.InUnit(Kelvin) }

// InCelsius returns t in celsius.
func InCelsius(t Temperature) float64 { return t.InUnit(Celsius) }

// InFahrenheit returns t in fahrenheit.
func InFahrenheit(t Temperature) float64 { return t.InUnit(Fahrenheit) }

// Angle.

// InRadians returns a in radians.
func InRadians(a Angle) float64 { return a.InUnit(Radian) }

// InDegrees returns a in degrees.
func InDegrees(a Angle) float64 { return a.InUnit(Degree) }

// InRevolutions returns a in revolutions.
func InRevolutions(a Angle) float64 { return a.InUnit(Revolution) }

// Angular velocity.

// InRadiansPerSecond returns w in radians per second.
func InRadiansPerSecond(w AngularVelocity) float64 { return w.InUnit(RadianPerSecond) }

// InDegreesPerSecond returns w in degrees per second.
func InDegreesPerSecond(w AngularVelocity) float64 { return w.InUnit(DegreePerSecond) }

// InRevolutionsPerMinute returns w in revolutions per minute.
func InRevolutionsPerMinute(w AngularVelocity) float64 { return w.InUnit(RevolutionPerMinute) }

// Frequency.

// InHertz returns f in hertz.
func InHertz(f Frequency) float64 { return f.InUnit(Hertz) }

// InKilohertz returns f in kilohertz.
func InKilohertz(f Frequency) float64 { return f.InUnitPrefixed(Hertz, quantity.Kilo) }
