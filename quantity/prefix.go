// SPDX-License-Identifier: MIT

package quantity

import "math"

// Prefix is a named multiplicative factor applied to a unit (kilo, milli, ...).
// Invariant: factor is finite and > 0. The zero value is not a valid prefix;
// use Identity for "no prefix".
type Prefix struct {
	name   string  // e.g. "kilo"
	symbol string  // e.g. "k"
	factor float64 // e.g. 1e3
}

// NewPrefix builds a custom prefix. It panics when factor is not finite or
// not strictly positive, since a prefix catalog is static program data.
func NewPrefix(name, symbol string, factor float64) Prefix {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		panic(panicPrefixInvalid)
	}

	return Prefix{name: name, symbol: symbol, factor: factor}
}

// Metric prefix catalog. Initialized once at package load and never mutated.
var (
	Femto    = NewPrefix("femto", "f", 1e-15)
	Pico     = NewPrefix("pico", "p", 1e-12)
	Nano     = NewPrefix("nano", "n", 1e-9)
	Micro    = NewPrefix("micro", "µ", 1e-6)
	Milli    = NewPrefix("milli", "m", 1e-3)
	Centi    = NewPrefix("centi", "c", 1e-2)
	Deci     = NewPrefix("deci", "d", 1e-1)
	Identity = NewPrefix("", "", 1)
	Deca     = NewPrefix("deca", "da", 1e1)
	Hecto    = NewPrefix("hecto", "h", 1e2)
	Kilo     = NewPrefix("kilo", "k", 1e3)
	Mega     = NewPrefix("mega", "M", 1e6)
	Giga     = NewPrefix("giga", "G", 1e9)
)

// prefixes lists the catalog ordered by symbol length (longest first) so that
// symbol resolution tries "da" before "d".
var prefixes = []Prefix{Deca, Femto, Pico, Nano, Micro, Milli, Centi, Deci, Hecto, Kilo, Mega, Giga}

// Prefixes returns a copy of the metric prefix catalog, without Identity.
func Prefixes() []Prefix {
	out := make([]Prefix, len(prefixes))
	copy(out, prefixes)

	return out
}

// Name returns the prefix name ("" for Identity).
func (p Prefix) Name() string { return p.name }

// Symbol returns the prefix symbol ("" for Identity).
func (p Prefix) Symbol() string { return p.symbol }

// Factor returns the multiplier.
func (p Prefix) Factor() float64 { return p.factor }

// String returns the prefix name, or "identity" for the neutral prefix.
func (p Prefix) String() string {
	if p.name == "" {
		return "identity"
	}

	return p.name
}
