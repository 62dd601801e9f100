// SPDX-License-Identifier: MIT
// Package matrix: Affine, the fixed 4×4 transform consumed by vector quantities.
//
// Convention (row vectors, as in most graphics and CAD toolkits):
//
//	[x' y' z' 1] = [x y z 1] · A
//
// so the 3×3 block A[0..2][0..2] is the linear part and the fourth row
// A[3][0..2] is the translation. The fourth column is (0, 0, 0, 1) for every
// transform built by this file.
//
// AI-Hints:
//   - Compose with Mul: a.Mul(b) applies a first, then b.
//   - Use Dense/AffineFromMatrix to move between Affine and the general kernels.

package matrix

import (
	"math"
)

const (
	opAffine = "AffineFromMatrix"

	// panicAffineKernel reports a kernel failure on two 4×4 operands, which
	// only a broken kernel can produce.
	panicAffineKernel = "matrix: 4×4 kernel returned an error"
)

// Affine is a 4×4 transform matrix stored by value.
type Affine [4][4]float64

// Identity returns the neutral transform.
func Identity() Affine {
	return Affine{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation returns the transform that adds (x, y, z).
func Translation(x, y, z float64) Affine {
	a := Identity()
	a[3][0], a[3][1], a[3][2] = x, y, z

	return a
}

// Scaling returns the transform that multiplies each axis independently.
func Scaling(x, y, z float64) Affine {
	a := Identity()
	a[0][0], a[1][1], a[2][2] = x, y, z

	return a
}

// RotationX returns a right-handed rotation by rad radians about the X axis.
func RotationX(rad float64) Affine {
	s, c := math.Sincos(rad)
	a := Identity()
	a[1][1], a[1][2] = c, s
	a[2][1], a[2][2] = -s, c

	return a
}

// RotationY returns a right-handed rotation by rad radians about the Y axis.
func RotationY(rad float64) Affine {
	s, c := math.Sincos(rad)
	a := Identity()
	a[0][0], a[0][2] = c, -s
	a[2][0], a[2][2] = s, c

	return a
}

// RotationZ returns a right-handed rotation by rad radians about the Z axis.
func RotationZ(rad float64) Affine {
	s, c := math.Sincos(rad)
	a := Identity()
	a[0][0], a[0][1] = c, s
	a[1][0], a[1][1] = -s, c

	return a
}

// Apply transforms the point (x, y, z): linear block plus translation row.
func (a Affine) Apply(x, y, z float64) (float64, float64, float64) {
	return x*a[0][0] + y*a[1][0] + z*a[2][0] + a[3][0],
		x*a[0][1] + y*a[1][1] + z*a[2][1] + a[3][1],
		x*a[0][2] + y*a[1][2] + z*a[2][2] + a[3][2]
}

// ApplyLinear transforms the direction (x, y, z): linear block only.
func (a Affine) ApplyLinear(x, y, z float64) (float64, float64, float64) {
	return x*a[0][0] + y*a[1][0] + z*a[2][0],
		x*a[0][1] + y*a[1][1] + z*a[2][1],
		x*a[0][2] + y*a[1][2] + z*a[2][2]
}

// Mul returns a·b: the transform that applies a first, then b.
func (a Affine) Mul(b Affine) Affine {
	return mustAffine(Mul(a.Dense(), b.Dense()))
}

// Transpose returns aᵀ.
func (a Affine) Transpose() Affine {
	return mustAffine(Transpose(a.Dense()))
}

// Inverse returns a⁻¹, or ErrSingular when the linear block is degenerate.
func (a Affine) Inverse() (Affine, error) {
	inv, err := Inverse(a.Dense())
	if err != nil {
		return Affine{}, err
	}

	return AffineFromMatrix(inv)
}

// Translation returns the translation row.
func (a Affine) Translation() (x, y, z float64) { return a[3][0], a[3][1], a[3][2] }

// Dense copies a into a new 4×4 Dense.
func (a Affine) Dense() *Dense {
	d := &Dense{r: 4, c: 4, data: make([]float64, 16)}
	for i := 0; i < 4; i++ {
		copy(d.data[i*4:(i+1)*4], a[i][:])
	}

	return d
}

// AffineFromMatrix copies a 4×4 Matrix into an Affine.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AffineFromMatrix(m Matrix) (Affine, error) {
	if err := ValidateNotNil(m); err != nil {
		return Affine{}, matrixErrorf(opAffine, err)
	}
	if err := ValidateShape(m, 4, 4); err != nil {
		return Affine{}, matrixErrorf(opAffine, err)
	}
	src, err := toDense(m)
	if err != nil {
		return Affine{}, matrixErrorf(opAffine, err)
	}
	var a Affine
	for i := 0; i < 4; i++ {
		copy(a[i][:], src.data[i*4:(i+1)*4])
	}

	return a, nil
}

// mustAffine converts the result of a kernel run on 4×4 operands.
func mustAffine(m Matrix, err error) Affine {
	if err != nil {
		panic(panicAffineKernel + ": " + err.Error())
	}
	a, err := AffineFromMatrix(m)
	if err != nil {
		panic(panicAffineKernel + ": " + err.Error())
	}

	return a
}
