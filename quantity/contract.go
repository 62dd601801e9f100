// SPDX-License-Identifier: MIT
// Package quantity: the generic multiplicative, divisible, dot and cross contract.
//
// Purpose:
//   - Give the quantity graph algebraic closure without one hand-written
//     function per pair of named types. Any Measure multiplies or divides
//     any other Measure; any Vectorial dots or crosses any other Vectorial.
//   - Without a factory the result is Unhandled / Unhandled3.
//   - The *Into variants take a factory so a caller that knows the result
//     type materializes it directly:
//
//	v := quantity.DivideInto(d, t, quantity.FromCanonical[si.DimVelocity])
//
// Policy:
//   - A nil operand or a nil factory is a programming error and panics.
//   - Magnitudes are canonical, so the raw product of canonical magnitudes is
//     the canonical magnitude of the product dimension.

package quantity

// Measure is the scalar capability: anything exposing a canonical magnitude.
// Quantity[D] and Scalar implement it.
type Measure interface {
	Magnitude() float64
}

// Vectorial is the vector capability: anything exposing three canonical
// components. Vector3[D] implements it.
type Vectorial interface {
	Components() (x, y, z float64)
}

// ---------- Scalar × Scalar ----------

// Multiply returns a·b as Unhandled.
func Multiply(a, b Measure) Unhandled {
	return MultiplyInto(a, b, FromCanonical[Opaque])
}

// MultiplyInto returns factory(a·b).
func MultiplyInto[R any](a, b Measure, factory func(float64) R) R {
	mustMeasures(a, b)
	mustFactory(factory)

	return factory(a.Magnitude() * b.Magnitude())
}

// Divide returns a/b as Unhandled. Division by a zero magnitude follows IEEE-754.
func Divide(a, b Measure) Unhandled {
	return DivideInto(a, b, FromCanonical[Opaque])
}

// DivideInto returns factory(a/b).
func DivideInto[R any](a, b Measure, factory func(float64) R) R {
	mustMeasures(a, b)
	mustFactory(factory)

	return factory(a.Magnitude() / b.Magnitude())
}

// ---------- Vector · Vector ----------

// Dot returns a·b as Unhandled.
func Dot(a, b Vectorial) Unhandled {
	return DotInto(a, b, FromCanonical[Opaque])
}

// DotInto returns factory(a·b).
func DotInto[R any](a, b Vectorial, factory func(float64) R) R {
	mustVectors(a, b)
	mustFactory(factory)
	ax, ay, az := a.Components()
	bx, by, bz := b.Components()

	return factory(ax*bx + ay*by + az*bz)
}

// Cross returns a×b as Unhandled3.
func Cross(a, b Vectorial) Unhandled3 {
	return CrossInto(a, b, Vector3FromCanonical[Opaque])
}

// CrossInto returns factory(a×b).
func CrossInto[R any](a, b Vectorial, factory func(x, y, z float64) R) R {
	mustVectors(a, b)
	if factory == nil {
		panic(panicNilFactory)
	}
	ax, ay, az := a.Components()
	bx, by, bz := b.Components()

	return factory(
		ay*bz-az*by,
		az*bx-ax*bz,
		ax*by-ay*bx,
	)
}

// ---------- Vector × Scalar ----------

// ScaleVector returns v·s component-wise as Unhandled3.
func ScaleVector(v Vectorial, s Measure) Unhandled3 {
	return ScaleVectorInto(v, s, Vector3FromCanonical[Opaque])
}

// ScaleVectorInto returns factory(v·s).
func ScaleVectorInto[R any](v Vectorial, s Measure, factory func(x, y, z float64) R) R {
	mustVectorAndMeasure(v, s)
	if factory == nil {
		panic(panicNilFactory)
	}
	k := s.Magnitude()
	x, y, z := v.Components()

	return factory(x*k, y*k, z*k)
}

// DivideVector returns v/s component-wise as Unhandled3.
func DivideVector(v Vectorial, s Measure) Unhandled3 {
	return DivideVectorInto(v, s, Vector3FromCanonical[Opaque])
}

// DivideVectorInto returns factory(v/s).
func DivideVectorInto[R any](v Vectorial, s Measure, factory func(x, y, z float64) R) R {
	mustVectorAndMeasure(v, s)
	if factory == nil {
		panic(panicNilFactory)
	}
	k := s.Magnitude()
	x, y, z := v.Components()

	return factory(x/k, y/k, z/k)
}

// ---------- Preconditions ----------

func mustMeasures(a, b Measure) {
	if a == nil || b == nil {
		panic(panicNilOperand)
	}
}

func mustVectors(a, b Vectorial) {
	if a == nil || b == nil {
		panic(panicNilOperand)
	}
}

func mustVectorAndMeasure(v Vectorial, s Measure) {
	if v == nil || s == nil {
		panic(panicNilOperand)
	}
}

func mustFactory[R any](factory func(float64) R) {
	if factory == nil {
		panic(panicNilFactory)
	}
}
