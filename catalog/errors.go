// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is returned when the document is not a valid catalog
	// (YAML syntax error, unknown field, wrong type).
	ErrMalformed = errors.New("catalog: malformed document")

	// ErrEmpty is returned when the document holds no unit at all.
	ErrEmpty = errors.New("catalog: no units defined")

	// ErrUnknownDimension is returned by Apply for a dimension that has no
	// registry.
	ErrUnknownDimension = errors.New("catalog: unknown dimension")
)

// catalogErrorf wraps err with an operation tag, preserving it for errors.Is.
func catalogErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
