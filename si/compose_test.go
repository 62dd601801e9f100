// SPDX-License-Identifier: MIT
package si_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlquant/quantity"
	"github.com/katalvlaran/lvlquant/si"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func metres(v float64) si.Length  { return quantity.New(v, si.Metre) }
func seconds(v float64) si.Time   { return quantity.New(v, si.Second) }
func kilograms(v float64) si.Mass { return quantity.New(v, si.Kilogram) }

// TestCompositionIdentities checks Length/Time == Velocity,
// Velocity/Time == Acceleration and Length·Length == Area.
func TestCompositionIdentities(t *testing.T) {
	t.Parallel()

	for _, d := range []float64{0, 1, 100, -3.5, 1e6} {
		for _, dt := range []float64{0.5, 10, 3600} {
			require.Equal(t, quantity.New(d/dt, si.MetrePerSecond), si.VelocityFrom(metres(d), seconds(dt)))

			v := quantity.New(d, si.MetrePerSecond)
			require.Equal(t, quantity.New(d/dt, si.MetrePerSecondSquared), si.AccelerationFrom(v, seconds(dt)))

			require.Equal(t, quantity.New(d*dt, si.SquareMetre), si.AreaFrom(metres(d), metres(dt)))
		}
	}
}

func TestCompositionScenarios(t *testing.T) {
	t.Parallel()

	// Velocity from 100 m in 10 s.
	require.Equal(t, quantity.New(10, si.MetrePerSecond), si.VelocityFrom(metres(100), seconds(10)))

	// 2 m · 1 m is 2 m².
	require.Equal(t, quantity.New(2, si.SquareMetre), si.AreaFrom(metres(2), metres(1)))

	// Temperature · Temperature has no name and degrades to Unhandled.
	k := quantity.New(300, si.Kelvin)
	var u quantity.Unhandled = k.Mul(k)
	require.Equal(t, "unhandled", u.Dimension())
	require.Equal(t, 90000.0, u.Magnitude())

	// Same-dimension division cancels to a Scalar.
	require.Equal(t, quantity.ScalarOf(4), metres(8).Ratio(metres(2)))
}

func TestCompositionsMixedUnits(t *testing.T) {
	t.Parallel()

	// 36 km in 30 min is 72 km/h.
	v := si.VelocityFrom(quantity.NewPrefixed(36, si.Metre, quantity.Kilo), quantity.New(30, si.Minute))
	assert.InEpsilon(t, 72.0, si.InKilometresPerHour(v), tol)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"distance", si.InKilometres(si.DistanceFrom(quantity.New(90, si.KilometrePerHour), quantity.New(2, si.Hour))), 180},
		{"duration", si.InMinutes(si.DurationFrom(metres(1500), quantity.New(5, si.MetrePerSecond))), 5},
		{"velocity change", si.InMetresPerSecond(si.VelocityChange(quantity.New(1, si.StandardGravity), seconds(2))), 19.6133},
		{"force", si.InNewtons(si.ForceFrom(kilograms(2), quantity.New(3, si.MetrePerSecondSquared))), 6},
		{"acceleration of", si.InMetresPerSecondSquared(si.AccelerationOf(quantity.New(10, si.Newton), kilograms(4))), 2.5},
		{"momentum", si.InKilogramMetresPerSecond(si.MomentumFrom(quantity.New(500, si.Gram), quantity.New(4, si.MetrePerSecond))), 2},
		{"work", si.InKilojoules(si.EnergyFrom(quantity.NewPrefixed(2, si.Newton, quantity.Kilo), metres(3))), 6},
		{"kinetic energy", si.InJoules(si.KineticEnergy(kilograms(2), quantity.New(3, si.MetrePerSecond))), 9},
		{"power", si.InKilowatts(si.PowerFrom(quantity.New(1, si.WattHour).Scale(1000), quantity.New(1, si.Hour))), 1},
		{"energy over", si.InKilowattHours(si.EnergyOver(quantity.NewPrefixed(2, si.Watt, quantity.Kilo), quantity.New(3, si.Hour))), 6},
		{"pressure", si.InKilopascals(si.PressureFrom(quantity.New(500, si.Newton), quantity.New(0.25, si.SquareMetre))), 2},
		{"density", si.InGramsPerCubicCentimetre(si.DensityFrom(kilograms(1), quantity.New(1, si.Litre))), 1},
		{"mass", si.InKilograms(si.MassFrom(quantity.New(1000, si.KilogramPerCubicMetre), quantity.New(2, si.CubicMetre))), 2000},
		{"volume", si.InLitres(si.VolumeFrom(quantity.New(1, si.SquareMetre), quantity.NewPrefixed(1, si.Metre, quantity.Centi))), 10},
		{"length", si.InMetres(si.LengthFrom(quantity.New(12, si.SquareMetre), metres(4))), 3},
		{"angular velocity", si.InRevolutionsPerMinute(si.AngularVelocityFrom(quantity.New(1, si.Revolution), seconds(1))), 60},
		{"frequency", si.InHertz(si.FrequencyOf(quantity.NewPrefixed(20, si.Second, quantity.Milli))), 50},
		{"period", si.InMilliseconds(si.PeriodOf(quantity.NewPrefixed(1, si.Hertz, quantity.Kilo))), 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.InEpsilon(t, tc.want, tc.got, 1e-9)
		})
	}
}

func TestVectorCompositions(t *testing.T) {
	t.Parallel()

	d := quantity.NewVector3(3, 6, 9, si.Metre)
	dt := seconds(3)

	v := si.Velocity3From(d, dt)
	require.Equal(t, quantity.NewVector3(1, 2, 3, si.MetrePerSecond), v)
	require.Equal(t, d, si.Displacement3From(v, dt))

	a := si.Acceleration3From(v, quantity.New(0.5, si.Second))
	require.Equal(t, quantity.NewVector3(2, 4, 6, si.MetrePerSecondSquared), a)

	f := si.Force3From(kilograms(2), a)
	require.Equal(t, quantity.NewVector3(4, 8, 12, si.Newton), f)
	require.Equal(t, quantity.NewVector3(2, 4, 6, si.KilogramMetrePerSecond), si.Momentum3From(kilograms(2), v))

	// Work and power are dot products.
	require.Equal(t, quantity.New(4*3+8*6+12*9, si.Joule), si.WorkFrom(f, d))
	require.Equal(t, quantity.New(4*1+8*2+12*3, si.Watt), si.PowerOf(f, v))
}

// TestTorqueAndArea checks the cross-product compositions against the
// right-hand rule.
func TestTorqueAndArea(t *testing.T) {
	t.Parallel()

	r := quantity.NewVector3(2, 0, 0, si.Metre)
	f := quantity.NewVector3(0, 5, 0, si.Newton)
	tau := si.TorqueFrom(r, f)
	require.Equal(t, quantity.NewVector3(0, 0, 10, si.NewtonMetre), tau)
	require.Equal(t, "(0, 0, 10) N·m", tau.String())

	a := quantity.NewVector3(3, 0, 0, si.Metre)
	b := quantity.NewVector3(1, 4, 0, si.Metre)
	require.Equal(t, quantity.New(12, si.SquareMetre), si.AreaFromCross(a, b).Magnitude())
	require.Equal(t, quantity.New(3, si.SquareMetre), si.AreaFromDot(a, b))

	// Parallel vectors span no area.
	require.True(t, si.AreaFromCross(a, a.Scale(2)).IsZero())
}

func TestCompositionEdgeCases(t *testing.T) {
	t.Parallel()

	require.True(t, si.VelocityFrom(metres(1), seconds(0)).IsPositiveInfinity())
	require.True(t, si.VelocityFrom(metres(0), seconds(0)).IsNaN())
	require.True(t, si.FrequencyOf(seconds(0)).IsInfinite())
	require.True(t, si.KineticEnergy(kilograms(1), quantity.New(math.Inf(-1), si.MetrePerSecond)).IsPositiveInfinity())
}
