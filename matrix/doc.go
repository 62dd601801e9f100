// Package matrix offers the small dense linear-algebra layer behind vector
// quantity transforms.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Mul, Transpose and Inverse kernels with strict shape validation.
//   - Affine, a fixed 4×4 value type in row-vector convention used by
//     quantity.Vector3.Transform (translation lives in the fourth row).
//
// Affine is a value and never fails on well-formed input; Dense is the
// general container and reports shape problems through sentinel errors.
package matrix
