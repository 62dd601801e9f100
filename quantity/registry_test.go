// SPDX-License-Identifier: MIT
package quantity_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/katalvlaran/lvlquant/quantity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lengthRegistry(t testing.TB) *quantity.Registry[dLength] {
	t.Helper()
	r, err := quantity.NewRegistry(metre, foot, mile)
	require.NoError(t, err)

	return r
}

func TestRegistryLookup(t *testing.T) {
	t.Parallel()
	r := lengthRegistry(t)

	tests := []struct {
		symbol string
		unit   quantity.Unit[dLength]
		prefix quantity.Prefix
	}{
		{"m", metre, quantity.Identity},
		{"metre", metre, quantity.Identity},
		{"ft", foot, quantity.Identity},
		{"km", metre, quantity.Kilo},
		{"dam", metre, quantity.Deca},
		{"dm", metre, quantity.Deci},
		{"mm", metre, quantity.Milli},
		{"µm", metre, quantity.Micro},
		{"um", metre, quantity.Micro},
		{"\u03bcm", metre, quantity.Micro},
		{"nm", metre, quantity.Nano},
		{"Gm", metre, quantity.Giga},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.symbol, func(t *testing.T) {
			u, p, err := r.Lookup(tc.symbol)
			require.NoError(t, err)
			require.Equal(t, tc.unit, u)
			require.Equal(t, tc.prefix, p)
		})
	}
}

func TestRegistryLookupUnknown(t *testing.T) {
	t.Parallel()
	r := lengthRegistry(t)

	for _, sym := range []string{"", "k", "parsec", "kft", "kmi", "xm", "M"} {
		_, _, err := r.Lookup(sym)
		require.ErrorIs(t, err, quantity.ErrUnknownUnit, "symbol %q", sym)
	}
}

func TestRegistryRegister(t *testing.T) {
	t.Parallel()

	r, err := quantity.NewRegistry[dLength]()
	require.NoError(t, err)
	require.Equal(t, 0, r.Len())
	require.Equal(t, "length", r.Dimension())

	require.NoError(t, r.Register(metre))
	require.ErrorIs(t, r.Register(metre), quantity.ErrDuplicateUnit)
	require.ErrorIs(t, r.Register(quantity.NewUnit[dLength]("metre", "mtr", 1)), quantity.ErrDuplicateUnit)
	require.ErrorIs(t, r.Register(quantity.Unit[dLength]{}), quantity.ErrInvalidUnit)

	_, err = quantity.NewRegistry(metre, metre)
	require.ErrorIs(t, err, quantity.ErrDuplicateUnit)
	require.Panics(t, func() { quantity.MustRegistry(metre, metre) })
}

func TestRegistryDefine(t *testing.T) {
	t.Parallel()
	r := lengthRegistry(t)

	require.NoError(t, r.Define(quantity.Definition{Name: "inch", Symbol: "in", Scale: 0.0254}))
	got, err := r.Convert(12, "in", "ft")
	require.NoError(t, err)
	assert.InEpsilon(t, 1.0, got, tol)

	tests := []struct {
		name string
		def  quantity.Definition
	}{
		{"empty name", quantity.Definition{Symbol: "x", Scale: 1}},
		{"empty symbol", quantity.Definition{Name: "x", Scale: 1}},
		{"zero scale", quantity.Definition{Name: "x", Symbol: "x"}},
		{"negative scale", quantity.Definition{Name: "x", Symbol: "x", Scale: -1}},
		{"negative exponent", quantity.Definition{Name: "x", Symbol: "x", Scale: 1, Exponent: -1}},
		{"biased square", quantity.Definition{Name: "x", Symbol: "x", Scale: 1, Offset: 1, Exponent: 2}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, r.Define(tc.def), quantity.ErrInvalidUnit)
		})
	}
	require.ErrorIs(t, r.Define(quantity.Definition{Name: "foot again", Symbol: "ft", Scale: 1}), quantity.ErrDuplicateUnit)
}

func TestUnitFromDefinition(t *testing.T) {
	t.Parallel()

	u, err := quantity.UnitFromDefinition[dArea](quantity.Definition{
		Name: "square foot", Symbol: "ft²", Scale: 0.3048, Exponent: 2,
	})
	require.NoError(t, err)
	require.Equal(t, 2, u.Exponent())
	require.False(t, u.Prefixable())

	u, err = quantity.UnitFromDefinition[dArea](quantity.Definition{
		Name: "are", Symbol: "a", Scale: 100, Prefixable: true,
	})
	require.NoError(t, err)
	require.Equal(t, 1, u.Exponent())
	require.True(t, u.Prefixable())
}

func TestRegistryParse(t *testing.T) {
	t.Parallel()
	r := lengthRegistry(t)

	tests := []struct {
		in   string
		want float64
	}{
		{"1 m", 1},
		{"1.5 km", 1500},
		{"1.5km", 1500},
		{"  -2 ft ", -0.6096},
		{"2e3 mm", 2},
		{"2E-3km", 2},
		{"+3 metre", 3},
		{"1 mi", 1609.344},
		{"250\u03bcm", 2.5e-4},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			q, err := r.Parse(tc.in)
			require.NoError(t, err)
			assert.InEpsilon(t, tc.want, q.Magnitude(), tol)
		})
	}
}

func TestRegistryParseErrors(t *testing.T) {
	t.Parallel()
	r := lengthRegistry(t)

	tests := []struct {
		in  string
		err error
	}{
		{"", quantity.ErrSyntax},
		{"12", quantity.ErrSyntax},
		{"m", quantity.ErrSyntax},
		{"1.2.3 m", quantity.ErrSyntax},
		{"abc m", quantity.ErrSyntax},
		{"3 parsec", quantity.ErrUnknownUnit},
		{"3em", quantity.ErrUnknownUnit},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			_, err := r.Parse(tc.in)
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.err), "got %v", err)
		})
	}
}

func TestRegistryConvert(t *testing.T) {
	t.Parallel()
	r := lengthRegistry(t)

	got, err := r.Convert(1, "mi", "ft")
	require.NoError(t, err)
	assert.InEpsilon(t, 5280.0, got, tol)

	got, err = r.Convert(2500, "mm", "km")
	require.NoError(t, err)
	assert.InEpsilon(t, 0.0025, got, tol)

	_, err = r.Convert(1, "m", "parsec")
	require.ErrorIs(t, err, quantity.ErrUnknownUnit)
	_, err = r.Convert(1, "parsec", "m")
	require.ErrorIs(t, err, quantity.ErrUnknownUnit)

	temps, err := quantity.NewRegistry(kelvin, celsius, fahrenheit)
	require.NoError(t, err)
	got, err = temps.Convert(100, "°C", "°F")
	require.NoError(t, err)
	assert.InDelta(t, 212.0, got, 1e-9)
}

func TestRegistryListing(t *testing.T) {
	t.Parallel()
	r := lengthRegistry(t)

	require.Equal(t, []string{"ft", "m", "mi"}, r.Symbols())
	units := r.Units()
	require.Len(t, units, 3)
	require.Equal(t, foot, units[0])
	require.Equal(t, 3, r.Len())
}

// TestRegistryConcurrentReads exercises the read lock under the race detector.
func TestRegistryConcurrentReads(t *testing.T) {
	t.Parallel()
	r := lengthRegistry(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _, _ = r.Lookup("km")
				_ = r.Symbols()
			}
		}()
	}
	require.NoError(t, r.Define(quantity.Definition{Name: "yard", Symbol: "yd", Scale: 0.9144}))
	wg.Wait()
	require.Equal(t, 4, r.Len())
}

func TestUnitDefinitionRoundTrip(t *testing.T) {
	t.Parallel()

	for _, u := range []quantity.Unit[dTemperature]{kelvin, celsius, fahrenheit} {
		back, err := quantity.UnitFromDefinition[dTemperature](u.Definition())
		require.NoError(t, err)
		require.Equal(t, u, back)
	}
	back, err := quantity.UnitFromDefinition[dArea](squareFoot.Definition())
	require.NoError(t, err)
	require.Equal(t, squareFoot, back)

	defs := lengthRegistry(t).Definitions()
	require.Len(t, defs, 3)
	require.Equal(t, quantity.Definition{Name: "foot", Symbol: "ft", Scale: 0.3048, Exponent: 1}, defs[0])
}
