// SPDX-License-Identifier: MIT
// Package quantity: textual rendering of quantities.
//
// Defaults:
//   - String renders the canonical magnitude and the canonical symbol.
//   - Format renders in a chosen unit with shortest round-trip digits unless
//     WithPrecision is given.

package quantity

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultPrecision selects the shortest representation that round-trips.
const DefaultPrecision = -1

// DefaultVerb is the strconv format verb used when none is configured.
const DefaultVerb byte = 'g'

// FormatOption configures Format. Constructors panic on nonsensical values.
type FormatOption func(*formatOptions)

type formatOptions struct {
	precision int  // digits after the point for 'f'/'e'; significant digits for 'g'
	verb      byte // 'e', 'f' or 'g'
	symbol    bool // append the unit symbol
}

func defaultFormatOptions() formatOptions {
	return formatOptions{precision: DefaultPrecision, verb: DefaultVerb, symbol: true}
}

// WithPrecision fixes the number of digits. With the default 'g' verb the
// value is first rounded half away from zero to n decimal places and then
// printed as a fixed-point number.
func WithPrecision(n int) FormatOption {
	if n < 0 || n > 17 {
		panic(panicPrecision)
	}

	return func(o *formatOptions) { o.precision = n }
}

// WithVerb selects the strconv verb: 'e', 'f' or 'g'.
func WithVerb(verb byte) FormatOption {
	if verb != 'e' && verb != 'f' && verb != 'g' {
		panic(panicVerb)
	}

	return func(o *formatOptions) { o.verb = verb }
}

// WithoutSymbol omits the unit symbol.
func WithoutSymbol() FormatOption {
	return func(o *formatOptions) { o.symbol = false }
}

// String renders q in canonical units, e.g. "12.5 m".
func (q Quantity[D]) String() string {
	return render(q.magnitude, dimensionOf[D]().CanonicalSymbol(), defaultFormatOptions())
}

// Format renders q in unit.
func (q Quantity[D]) Format(unit Unit[D], opts ...FormatOption) string {
	return q.FormatPrefixed(unit, Identity, opts...)
}

// FormatPrefixed renders q in prefix·unit, e.g. "1.5 km".
func (q Quantity[D]) FormatPrefixed(unit Unit[D], prefix Prefix, opts ...FormatOption) string {
	o := defaultFormatOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return render(q.InUnitPrefixed(unit, prefix), prefix.symbol+unit.symbol, o)
}

// FormatValue renders a raw value followed by symbol with the same options
// as Format. Tools that convert through a Converter use it to print results.
func FormatValue(v float64, symbol string, opts ...FormatOption) string {
	o := defaultFormatOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return render(v, symbol, o)
}

func render(v float64, symbol string, o formatOptions) string {
	var b strings.Builder
	verb := o.verb
	if o.precision != DefaultPrecision && verb == 'g' {
		v = scalar.Round(v, o.precision)
		verb = 'f'
	}
	b.WriteString(strconv.FormatFloat(v, verb, o.precision, 64))
	if o.symbol && symbol != "" {
		b.WriteByte(' ')
		b.WriteString(symbol)
	}

	return b.String()
}
