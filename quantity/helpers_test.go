// SPDX-License-Identifier: MIT
// Package quantity_test contains test helpers
//
// Purpose:
//   • Declare small dimension tags and unit catalogs local to the tests, so
//     kernel behavior is verified independently of package si.

package quantity_test

import "github.com/katalvlaran/lvlquant/quantity"

const tol = 1e-12

type dLength struct{}

func (dLength) DimensionName() string   { return "length" }
func (dLength) CanonicalSymbol() string { return "m" }

type dArea struct{}

func (dArea) DimensionName() string   { return "area" }
func (dArea) CanonicalSymbol() string { return "m²" }

type dVolume struct{}

func (dVolume) DimensionName() string   { return "volume" }
func (dVolume) CanonicalSymbol() string { return "m³" }

type dTime struct{}

func (dTime) DimensionName() string   { return "time" }
func (dTime) CanonicalSymbol() string { return "s" }

type dVelocity struct{}

func (dVelocity) DimensionName() string   { return "velocity" }
func (dVelocity) CanonicalSymbol() string { return "m/s" }

type dTemperature struct{}

func (dTemperature) DimensionName() string   { return "temperature" }
func (dTemperature) CanonicalSymbol() string { return "K" }

var (
	metre = quantity.NewUnit[dLength]("metre", "m", 1)
	foot  = quantity.NewUnit[dLength]("foot", "ft", 0.3048, quantity.WithoutPrefixes())
	mile  = quantity.NewUnit[dLength]("mile", "mi", 1609.344, quantity.WithoutPrefixes())

	squareMetre = quantity.NewUnit[dArea]("square metre", "m²", 1, quantity.WithExponent(2))
	squareFoot  = quantity.NewUnit[dArea]("square foot", "ft²", 0.3048, quantity.WithExponent(2))
	cubicMetre  = quantity.NewUnit[dVolume]("cubic metre", "m³", 1, quantity.WithExponent(3))
	litre       = quantity.NewUnit[dVolume]("litre", "L", 1e-3)

	second = quantity.NewUnit[dTime]("second", "s", 1)
	hour   = quantity.NewUnit[dTime]("hour", "h", 3600, quantity.WithoutPrefixes())

	metrePerSecond   = quantity.NewUnit[dVelocity]("metre per second", "m/s", 1)
	kilometrePerHour = quantity.NewUnit[dVelocity]("kilometre per hour", "km/h", 1/3.6, quantity.WithoutPrefixes())

	kelvin     = quantity.NewUnit[dTemperature]("kelvin", "K", 1)
	celsius    = quantity.NewUnit[dTemperature]("degree Celsius", "°C", 1, quantity.WithOffset(273.15), quantity.WithoutPrefixes())
	fahrenheit = quantity.NewUnit[dTemperature]("degree Fahrenheit", "°F", 5.0/9.0, quantity.WithOffset(459.67), quantity.WithoutPrefixes())
)

type (
	length      = quantity.Quantity[dLength]
	length3     = quantity.Vector3[dLength]
	temperature = quantity.Quantity[dTemperature]
)

func m(v float64) length { return quantity.New(v, metre) }

func vec(x, y, z float64) length3 { return quantity.NewVector3(x, y, z, metre) }
