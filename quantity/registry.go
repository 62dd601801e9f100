// SPDX-License-Identifier: MIT
// Package quantity: unit registries, symbol resolution and parsing.
//
// Purpose:
//   - Map unit symbols and names of one dimension to Unit values.
//   - Resolve prefixed symbols ("km" = kilo·metre) for prefixable units.
//   - Parse "<number> <symbol>" text into canonical quantities.
//
// Determinism & Policy:
//   - Exact symbol match wins over name match, which wins over prefix
//     decomposition; prefixes are tried longest symbol first ("da" before "d").
//   - "u" is accepted as an ASCII spelling of the micro prefix.
//   - Registration reports duplicates and invalid definitions as errors
//     (registries are typically filled from user data); lookups are
//     read-locked so concurrent reads are safe.

package quantity

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

// Operation tags for error wrapping.
const (
	opRegister = "Registry.Register"
	opDefine   = "Registry.Define"
	opLookup   = "Registry.Lookup"
	opParse    = "Registry.Parse"
	opConvert  = "Registry.Convert"
)

// Alternative spellings of the micro prefix: ASCII and the Greek letter mu
// (U+03BC), which most keyboards produce instead of the micro sign (U+00B5).
const (
	asciiMicro = "u"
	greekMicro = "\u03bc"
)

// Definition is the plain-data form of a unit, used when units come from
// configuration rather than from code. Exponent 0 means 1.
type Definition struct {
	Name       string
	Symbol     string
	Scale      float64
	Offset     float64
	Exponent   int
	Prefixable bool
}

// Validate checks d against the unit invariants and returns ErrInvalidUnit
// (wrapped with the offending field) on violation.
func (d Definition) Validate() error {
	switch {
	case strings.TrimSpace(d.Name) == "":
		return quantityErrorf("name", ErrInvalidUnit)
	case strings.TrimSpace(d.Symbol) == "":
		return quantityErrorf("symbol", ErrInvalidUnit)
	case math.IsNaN(d.Scale) || math.IsInf(d.Scale, 0) || d.Scale <= 0:
		return quantityErrorf("scale", ErrInvalidUnit)
	case math.IsNaN(d.Offset) || math.IsInf(d.Offset, 0):
		return quantityErrorf("offset", ErrInvalidUnit)
	case d.Exponent < 0:
		return quantityErrorf("exponent", ErrInvalidUnit)
	case d.Offset != 0 && d.Exponent > 1:
		return quantityErrorf("exponent", ErrInvalidUnit)
	}

	return nil
}

// UnitFromDefinition builds a unit of D from d, or returns ErrInvalidUnit.
func UnitFromDefinition[D Dimension](d Definition) (Unit[D], error) {
	if err := d.Validate(); err != nil {
		return Unit[D]{}, err
	}
	opts := make([]UnitOption, 0, 3)
	if d.Offset != 0 {
		opts = append(opts, WithOffset(d.Offset))
	}
	if d.Exponent > 1 {
		opts = append(opts, WithExponent(d.Exponent))
	}
	if !d.Prefixable {
		opts = append(opts, WithoutPrefixes())
	}

	return NewUnit[D](d.Name, d.Symbol, d.Scale, opts...), nil
}

// Definition returns u as plain data. UnitFromDefinition(u.Definition())
// rebuilds an identical unit.
func (u Unit[D]) Definition() Definition {
	return Definition{
		Name:       u.name,
		Symbol:     u.symbol,
		Scale:      u.scale,
		Offset:     u.offset,
		Exponent:   u.exponent,
		Prefixable: u.prefixable,
	}
}

// Converter is the dimension-erased view of a Registry, used by tools that
// pick the dimension at run time.
type Converter interface {
	// Dimension returns the dimension name served by the converter.
	Dimension() string
	// Define registers a unit from plain data.
	Define(d Definition) error
	// Convert re-expresses value from one unit symbol into another.
	Convert(value float64, from, to string) (float64, error)
	// Symbols lists registered unit symbols in ascending order.
	Symbols() []string
	// Definitions lists registered units as plain data, sorted by symbol.
	Definitions() []Definition
}

// Registry indexes the units of one dimension.
type Registry[D Dimension] struct {
	mu       sync.RWMutex
	bySymbol map[string]Unit[D]
	byName   map[string]Unit[D]
}

var _ Converter = (*Registry[Opaque])(nil)

// NewRegistry returns a registry holding units. It fails on the first
// duplicate or invalid unit.
func NewRegistry[D Dimension](units ...Unit[D]) (*Registry[D], error) {
	r := &Registry[D]{
		bySymbol: make(map[string]Unit[D], len(units)),
		byName:   make(map[string]Unit[D], len(units)),
	}
	for _, u := range units {
		if err := r.Register(u); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// MustRegistry is NewRegistry for static unit catalogs; it panics on error.
func MustRegistry[D Dimension](units ...Unit[D]) *Registry[D] {
	r, err := NewRegistry(units...)
	if err != nil {
		panic(err)
	}

	return r
}

// Register adds u. Symbols and names must be unique within the registry.
func (r *Registry[D]) Register(u Unit[D]) error {
	if u.scale == 0 || u.symbol == "" || u.name == "" {
		return quantityErrorf(opRegister, ErrInvalidUnit)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bySymbol[u.symbol]; ok {
		return quantityErrorf(opRegister+" "+strconv.Quote(u.symbol), ErrDuplicateUnit)
	}
	if _, ok := r.byName[u.name]; ok {
		return quantityErrorf(opRegister+" "+strconv.Quote(u.name), ErrDuplicateUnit)
	}
	r.bySymbol[u.symbol] = u
	r.byName[u.name] = u

	return nil
}

// Define validates d and registers the resulting unit. Implements Converter.
func (r *Registry[D]) Define(d Definition) error {
	u, err := UnitFromDefinition[D](d)
	if err != nil {
		return quantityErrorf(opDefine, err)
	}

	return r.Register(u)
}

// Lookup resolves a symbol, a unit name, or a metric-prefixed symbol.
func (r *Registry[D]) Lookup(symbol string) (Unit[D], Prefix, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.bySymbol[symbol]; ok {
		return u, Identity, nil
	}
	if u, ok := r.byName[symbol]; ok {
		return u, Identity, nil
	}
	for _, p := range prefixes {
		for _, ps := range prefixSpellings(p) {
			rest, found := strings.CutPrefix(symbol, ps)
			if !found || rest == "" {
				continue
			}
			if u, ok := r.bySymbol[rest]; ok && u.prefixable {
				return u, p, nil
			}
		}
	}

	return Unit[D]{}, Prefix{}, quantityErrorf(opLookup+" "+strconv.Quote(symbol), ErrUnknownUnit)
}

// Parse reads "<number> <symbol>" (the space is optional) into a quantity.
func (r *Registry[D]) Parse(s string) (Quantity[D], error) {
	num, sym, err := splitQuantity(s)
	if err != nil {
		return Quantity[D]{}, quantityErrorf(opParse, err)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Quantity[D]{}, quantityErrorf(opParse+" "+strconv.Quote(s), ErrSyntax)
	}
	u, p, err := r.Lookup(sym)
	if err != nil {
		return Quantity[D]{}, quantityErrorf(opParse, err)
	}

	return NewPrefixed(v, u, p), nil
}

// Convert re-expresses value from the unit symbol from into the symbol to.
func (r *Registry[D]) Convert(value float64, from, to string) (float64, error) {
	fu, fp, err := r.Lookup(from)
	if err != nil {
		return 0, quantityErrorf(opConvert, err)
	}
	tu, tp, err := r.Lookup(to)
	if err != nil {
		return 0, quantityErrorf(opConvert, err)
	}

	return NewPrefixed(value, fu, fp).InUnitPrefixed(tu, tp), nil
}

// Units returns the registered units sorted by symbol.
func (r *Registry[D]) Units() []Unit[D] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Unit[D], 0, len(r.bySymbol))
	for _, u := range r.bySymbol {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].symbol < out[j].symbol })

	return out
}

// Symbols returns the registered symbols in ascending order.
func (r *Registry[D]) Symbols() []string {
	units := r.Units()
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = u.symbol
	}

	return out
}

// Definitions returns the registered units as plain data, sorted by symbol.
func (r *Registry[D]) Definitions() []Definition {
	units := r.Units()
	out := make([]Definition, len(units))
	for i, u := range units {
		out[i] = u.Definition()
	}

	return out
}

// Len returns the number of registered units.
func (r *Registry[D]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.bySymbol)
}

// Dimension returns the dimension name of the registry.
func (r *Registry[D]) Dimension() string { return dimensionOf[D]().DimensionName() }

func prefixSpellings(p Prefix) []string {
	if p.symbol == Micro.symbol {
		return []string{p.symbol, greekMicro, asciiMicro}
	}

	return []string{p.symbol}
}

// splitQuantity separates the leading number from the trailing symbol.
func splitQuantity(s string) (num, sym string, err error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexFunc(s, unicode.IsSpace); i > 0 {
		num, sym = s[:i], strings.TrimSpace(s[i:])
	} else {
		end := numberEnd(s)
		num, sym = s[:end], s[end:]
	}
	if num == "" || sym == "" {
		return "", "", ErrSyntax
	}

	return num, sym, nil
}

// numberEnd returns the byte length of the decimal literal at the start of s.
// An exponent marker counts only when a digit (optionally signed) follows.
func numberEnd(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
		i++
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
