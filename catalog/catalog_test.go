// SPDX-License-Identifier: MIT
package catalog_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlquant/catalog"
	"github.com/katalvlaran/lvlquant/quantity"
	"github.com/katalvlaran/lvlquant/si"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
dimensions:
  length:
    - {name: furlong, symbol: fur, scale: 201.168}
    - name: chain
      symbol: ch
      scale: 20.1168
  temperature:
    - name: degree Réaumur
      symbol: °Ré
      scale: 1.25
      offset: 218.52
  area:
    - {name: are, symbol: a, scale: 100, prefixable: true}
`

func mustLoad(t *testing.T, doc string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load(strings.NewReader(doc))
	require.NoError(t, err)

	return c
}

func TestLoad(t *testing.T) {
	t.Parallel()

	c := mustLoad(t, sample)
	require.Equal(t, []string{"area", "length", "temperature"}, c.Dimensions())
	require.Equal(t, 4, c.Len())
	require.Equal(t, []quantity.Definition{
		{Name: "furlong", Symbol: "fur", Scale: 201.168},
		{Name: "chain", Symbol: "ch", Scale: 20.1168},
	}, c.Definitions("length"))
	require.Empty(t, c.Definitions("mass"))
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{"empty document", "", catalog.ErrEmpty},
		{"no units", "dimensions: {}\n", catalog.ErrEmpty},
		{"empty dimension", "dimensions:\n  length: []\n", catalog.ErrEmpty},
		{"syntax", "dimensions: [\n", catalog.ErrMalformed},
		{"unknown top-level field", "units: {}\n", catalog.ErrMalformed},
		{"unknown entry field", "dimensions:\n  length:\n    - {name: x, symbol: x, scale: 1, factor: 2}\n", catalog.ErrMalformed},
		{"wrong type", "dimensions:\n  length:\n    - {name: x, symbol: x, scale: big}\n", catalog.ErrMalformed},
		{"blank dimension", "dimensions:\n  \" \":\n    - {name: x, symbol: x, scale: 1}\n", catalog.ErrMalformed},
		{"missing scale", "dimensions:\n  length:\n    - {name: x, symbol: x}\n", quantity.ErrInvalidUnit},
		{"missing symbol", "dimensions:\n  length:\n    - {name: x, scale: 1}\n", quantity.ErrInvalidUnit},
		{"negative scale", "dimensions:\n  length:\n    - {name: x, symbol: x, scale: -2}\n", quantity.ErrInvalidUnit},
		{"biased area", "dimensions:\n  area:\n    - {name: x, symbol: x, scale: 1, offset: 1, exponent: 2}\n", quantity.ErrInvalidUnit},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.Load(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "units.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	c, err := catalog.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 4, c.Len())

	_, err = catalog.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestApply(t *testing.T) {
	t.Parallel()

	regs := si.Registries()
	require.NoError(t, catalog.Apply(mustLoad(t, sample), regs))

	tests := []struct {
		dim, from, to string
		in, want      float64
	}{
		{si.NameLength, "fur", "ch", 1, 10},
		{si.NameLength, "fur", "m", 8, 1609.344},
		{si.NameTemperature, "°Ré", "°C", 80, 100},
		{si.NameArea, "ha", "a", 1, 100},
		{si.NameArea, "ha", "ha", 1, 1},
	}
	for _, tc := range tests {
		got, err := regs[tc.dim].Convert(tc.in, tc.from, tc.to)
		require.NoError(t, err, tc.from)
		assert.InEpsilon(t, tc.want, got, 1e-9, tc.from)
	}

	// Prefixes attach only where the entry allows them.
	_, err := regs[si.NameLength].Convert(1, "kfur", "m")
	require.ErrorIs(t, err, quantity.ErrUnknownUnit)
}

func TestApplyErrors(t *testing.T) {
	t.Parallel()

	err := catalog.Apply(mustLoad(t, "dimensions:\n  luminosity:\n    - {name: candela, symbol: cd, scale: 1}\n"), si.Registries())
	require.ErrorIs(t, err, catalog.ErrUnknownDimension)

	err = catalog.Apply(mustLoad(t, "dimensions:\n  length:\n    - {name: meter, symbol: m, scale: 1}\n"), si.Registries())
	require.ErrorIs(t, err, quantity.ErrDuplicateUnit)

	// A catalog applied twice collides with itself.
	regs := si.Registries()
	c := mustLoad(t, sample)
	require.NoError(t, catalog.Apply(c, regs))
	require.ErrorIs(t, catalog.Apply(c, regs), quantity.ErrDuplicateUnit)
}

func TestApplyTo(t *testing.T) {
	t.Parallel()

	temps := si.TemperatureUnits()
	require.NoError(t, catalog.ApplyTo(mustLoad(t, sample), temps))
	require.Equal(t, 5, temps.Len())

	q, err := temps.Parse("0 °Ré")
	require.NoError(t, err)
	assert.InDelta(t, 273.15, si.InKelvin(q), 1e-9)

	// Dimensions absent from the catalog are a no-op.
	mass := si.MassUnits()
	require.NoError(t, catalog.ApplyTo(mustLoad(t, sample), mass))
	require.Equal(t, 5, mass.Len())
}

// TestEncodeRoundTrip dumps built-in registries and loads them back.
func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	c := catalog.FromConverters(si.LengthUnits(), si.TemperatureUnits(), si.EnergyUnits(), si.AreaUnits())
	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf))

	back, err := catalog.Load(&buf)
	require.NoError(t, err)
	require.Equal(t, c, back)

	// The dump is a faithful definition of the units.
	regs := map[string]quantity.Converter{si.NameArea: quantity.MustRegistry[si.DimArea]()}
	require.NoError(t, catalog.ApplyTo(back, regs[si.NameArea]))
	got, err := regs[si.NameArea].Convert(1, "km²", "ha")
	require.NoError(t, err)
	assert.InEpsilon(t, 100.0, got, 1e-12)
}
