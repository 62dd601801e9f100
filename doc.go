// Package lvlquant is a dimensional-analysis toolkit: physical quantities
// whose dimension is part of their Go type, so that adding a length to a
// time is a compile error rather than a runtime surprise.
//
// 🚀 What is lvlquant?
//
//	A small, pure-Go library that brings together:
//		• Kernel: Quantity[D], Vector3[D], Scalar, units, metric prefixes
//		• Conversions: scale, offset (Celsius) and exponent (km²) unit laws
//		• Closure: any product or quotient compiles, unnamed ones as Unhandled
//		• Vector algebra: dot, cross, normalize, affine transforms
//		• SI catalog: ~20 named quantities with typed compositions
//		• YAML catalogs: extend unit registries from configuration
//		• qconv: a command-line converter
//
// ✨ Why choose lvlquant?
//
//   - Compile-time dimension checks through generics, no reflection
//   - Values, not objects: immutable and safe for concurrent use
//   - IEEE-754 all the way: NaN and ±Inf propagate, never panic
//
// Under the hood, everything is organized under these subpackages:
//
//	quantity/   generic kernel (units, prefixes, Quantity, Vector3, Registry)
//	si/         dimension tags, unit catalogs, named compositions, accessors
//	matrix/     Dense linear algebra and the 4×4 Affine used by Vector3.Transform
//	catalog/    YAML unit catalogs applied onto registries
//	cmd/qconv/  command-line converter
//
// Quick example:
//
//	d := quantity.NewPrefixed(100, si.Metre, quantity.Kilo)
//	t := quantity.New(2, si.Hour)
//	v := si.VelocityFrom(d, t)        // si.Velocity
//	fmt.Println(si.InKilometresPerHour(v)) // 50
//
//	go get github.com/katalvlaran/lvlquant
package lvlquant
