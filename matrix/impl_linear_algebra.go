// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used to compose and
// invert transforms: Mul, Transpose and Inverse. All kernels validate their
// inputs first and return sentinels wrapped with an operation tag.
//
// Determinism:
//   - Fixed loop orders; Dense operands take a flat-slice fast path, any other
//     Matrix goes through At/Set with identical arithmetic.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m itself when it is *Dense, otherwise a Dense copy read through At.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Mul returns the matrix product a × b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(r*n*c). Zero entries of a are skipped.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// i→k→j keeps both row-major operands streaming.
	var av float64
	for i := 0; i < aRows; i++ {
		rowA, rowR := i*aCols, i*bCols
		for k := 0; k < aCols; k++ {
			av = da.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB := k * bCols
			for j := 0; j < bCols; j++ {
				res.data[rowR+j] += av * db.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new Dense. The input is never mutated.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := src.r, src.c
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < rows; i++ {
		base := i * cols
		for j := 0; j < cols; j++ {
			res.data[j*rows+i] = src.data[base+j]
		}
	}

	return res, nil
}

// Inverse returns A⁻¹ by Gauss–Jordan elimination with partial pivoting.
//
// Pivot choice is the first row holding the largest |value| in the column,
// so identical inputs always give identical outputs. Rotations (which have
// zero leading entries) invert without error.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular.
// Complexity: O(n^3) time, O(n^2) space.
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := src.r
	work := src.Clone().(*Dense)
	inv, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	for col := 0; col < n; col++ {
		// Partial pivoting: largest magnitude at or below the diagonal.
		pivotRow, best := col, math.Abs(work.data[col*n+col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(work.data[r*n+col]); v > best {
				pivotRow, best = r, v
			}
		}
		if best == 0 || math.IsNaN(best) {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		if pivotRow != col {
			swapRows(work, pivotRow, col)
			swapRows(inv, pivotRow, col)
		}

		// Normalize the pivot row.
		p := work.data[col*n+col]
		for j := 0; j < n; j++ {
			work.data[col*n+j] /= p
			inv.data[col*n+j] /= p
		}

		// Eliminate the column from every other row.
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := work.data[r*n+col]
			if f == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				work.data[r*n+j] -= f * work.data[col*n+j]
				inv.data[r*n+j] -= f * inv.data[col*n+j]
			}
		}
	}

	return inv, nil
}

// swapRows exchanges rows a and b of a square Dense in place.
func swapRows(m *Dense, a, b int) {
	ra, rb := m.data[a*m.c:(a+1)*m.c], m.data[b*m.c:(b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}
