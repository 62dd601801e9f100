// SPDX-License-Identifier: MIT
// Package catalog: YAML unit catalogs.
//
// Document shape:
//
//	dimensions:
//	  length:
//	    - {name: furlong, symbol: fur, scale: 201.168}
//	  temperature:
//	    - name: degree Réaumur
//	      symbol: °Ré
//	      scale: 1.25
//	      offset: 218.52
//
// Determinism & Policy:
//   - Unknown fields are rejected (decoder KnownFields), so a typo never
//     silently defines a unit with a default scale.
//   - Every entry is validated at Load against the unit invariants; errors
//     name the dimension and the entry index.
//   - Apply visits dimensions in ascending name order and entries in
//     document order, and stops at the first failure.

package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlquant/quantity"
	"gopkg.in/yaml.v3"
)

// Operation tags for error wrapping.
const (
	opLoad   = "catalog.Load"
	opApply  = "catalog.Apply"
	opEncode = "catalog.Encode"
)

// Entry is one unit definition as written in a catalog document.
// Exponent 0 means 1.
type Entry struct {
	Name       string  `yaml:"name"`
	Symbol     string  `yaml:"symbol"`
	Scale      float64 `yaml:"scale"`
	Offset     float64 `yaml:"offset,omitempty"`
	Exponent   int     `yaml:"exponent,omitempty"`
	Prefixable bool    `yaml:"prefixable,omitempty"`
}

// Definition converts e to the kernel's plain unit data.
func (e Entry) Definition() quantity.Definition {
	return quantity.Definition{
		Name:       e.Name,
		Symbol:     e.Symbol,
		Scale:      e.Scale,
		Offset:     e.Offset,
		Exponent:   e.Exponent,
		Prefixable: e.Prefixable,
	}
}

// EntryOf converts kernel unit data to a catalog entry.
func EntryOf(d quantity.Definition) Entry {
	e := Entry(d)
	if e.Exponent == 1 {
		e.Exponent = 0
	}

	return e
}

// Catalog is a set of unit definitions grouped by dimension name.
type Catalog struct {
	Units map[string][]Entry `yaml:"dimensions"`
}

// Load decodes and validates a catalog document.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, catalogErrorf(opLoad, ErrEmpty)
		}
		return nil, fmt.Errorf("%s: %w: %v", opLoad, ErrMalformed, err)
	}
	if err := c.Validate(); err != nil {
		return nil, catalogErrorf(opLoad, err)
	}

	return &c, nil
}

// LoadFile opens path and loads it as a catalog.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, catalogErrorf(opLoad, err)
	}
	defer f.Close()

	return Load(f)
}

// Validate checks every entry against the unit invariants.
func (c *Catalog) Validate() error {
	n := 0
	for _, dim := range c.Dimensions() {
		if strings.TrimSpace(dim) == "" {
			return fmt.Errorf("%w: empty dimension name", ErrMalformed)
		}
		for i, e := range c.Units[dim] {
			if err := e.Definition().Validate(); err != nil {
				return fmt.Errorf("%s[%d]: %w", dim, i, err)
			}
			n++
		}
	}
	if n == 0 {
		return ErrEmpty
	}

	return nil
}

// Dimensions returns the dimension names of c in ascending order.
func (c *Catalog) Dimensions() []string {
	out := make([]string, 0, len(c.Units))
	for dim := range c.Units {
		out = append(out, dim)
	}
	sort.Strings(out)

	return out
}

// Definitions returns the units declared for dim, in document order.
func (c *Catalog) Definitions(dim string) []quantity.Definition {
	entries := c.Units[dim]
	out := make([]quantity.Definition, len(entries))
	for i, e := range entries {
		out[i] = e.Definition()
	}

	return out
}

// Len returns the number of units in c.
func (c *Catalog) Len() int {
	n := 0
	for _, entries := range c.Units {
		n += len(entries)
	}

	return n
}

// Apply registers the units of c into the converter of the same dimension.
// A dimension missing from convs yields ErrUnknownDimension; registry errors
// (duplicate symbol, invalid unit) are returned wrapped.
func Apply(c *Catalog, convs map[string]quantity.Converter) error {
	for _, dim := range c.Dimensions() {
		conv, ok := convs[dim]
		if !ok {
			return catalogErrorf(opApply+" "+dim, ErrUnknownDimension)
		}
		for _, d := range c.Definitions(dim) {
			if err := conv.Define(d); err != nil {
				return catalogErrorf(opApply+" "+dim, err)
			}
		}
	}

	return nil
}

// ApplyTo registers the units c declares for conv's dimension and ignores
// the rest of the catalog.
func ApplyTo(c *Catalog, conv quantity.Converter) error {
	return Apply(&Catalog{Units: map[string][]Entry{
		conv.Dimension(): c.Units[conv.Dimension()],
	}}, map[string]quantity.Converter{conv.Dimension(): conv})
}

// FromConverters builds a catalog that lists every unit of convs.
func FromConverters(convs ...quantity.Converter) *Catalog {
	c := &Catalog{Units: make(map[string][]Entry, len(convs))}
	for _, conv := range convs {
		defs := conv.Definitions()
		entries := make([]Entry, len(defs))
		for i, d := range defs {
			entries[i] = EntryOf(d)
		}
		c.Units[conv.Dimension()] = entries
	}

	return c
}

// Encode writes c as a YAML document that Load accepts.
func (c *Catalog) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return catalogErrorf(opEncode, err)
	}
	if err := enc.Close(); err != nil {
		return catalogErrorf(opEncode, err)
	}

	return nil
}
