// SPDX-License-Identifier: MIT
// Package quantity: sentinel error set and panic messages.
//
// Two failure classes exist and they never mix:
//   - Recoverable input errors (parsing text, registering units from data)
//     return one of the sentinels below, wrapped with quantityErrorf so that
//     callers can match them via errors.Is.
//   - Invariant violations (non-positive unit scale, zero prefix factor,
//     nil factory passed to the generic contract) are programmer errors and
//     panic with one of the stable panic* messages.
//
// NaN and ±Inf are values, not errors: arithmetic propagates them.

package quantity

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownUnit is returned when a symbol or name is not registered.
	ErrUnknownUnit = errors.New("quantity: unknown unit")

	// ErrDuplicateUnit is returned when a unit symbol or name is already taken.
	ErrDuplicateUnit = errors.New("quantity: duplicate unit")

	// ErrInvalidUnit is returned when a unit definition breaks the unit invariants
	// (scale finite and > 0, offset finite, exponent >= 1, biased units linear).
	ErrInvalidUnit = errors.New("quantity: invalid unit definition")

	// ErrSyntax is returned when a textual quantity cannot be split into
	// a number and a unit symbol.
	ErrSyntax = errors.New("quantity: invalid syntax")
)

// Panic messages (no magic strings at the call sites).
const (
	panicScaleInvalid    = "quantity: NewUnit: scale must be finite and > 0"
	panicOffsetInvalid   = "quantity: WithOffset: offset must be finite"
	panicExponentInvalid = "quantity: WithExponent: exponent must be >= 1"
	panicBiasedExponent  = "quantity: NewUnit: biased unit must have exponent 1"
	panicPrefixInvalid   = "quantity: NewPrefix: factor must be finite and > 0"
	panicZeroUnit        = "quantity: conversion through zero-value Unit"
	panicZeroPrefix      = "quantity: conversion through zero-value Prefix"
	panicNilFactory      = "quantity: nil factory"
	panicNilOperand      = "quantity: nil operand"
	panicPrecision       = "quantity: WithPrecision: precision must be in [0, 17]"
	panicVerb            = "quantity: WithVerb: verb must be one of 'e', 'f', 'g'"
)

// quantityErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func quantityErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
