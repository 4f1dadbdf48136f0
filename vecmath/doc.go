// Package vecmath lifts scalar math functions elementwise over the
// vector types in hqvec. Only floating-point element types are
// accepted; applying any of these to an integer vector is a compile
// error.
//
// The unsuffixed functions operate on the generic Vec. The suffixed
// variants (SinVec2, PowVec3, ...) operate on the named-field shapes
// and are generated from the same function table.
package vecmath

//go:generate go run ./gen -output zz_generated.go
