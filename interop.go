package hqvec

import "github.com/humz2k/hqvec/number"

// Foreign-struct interop. Plenty of libraries define their own small
// vector structs ({X, Y float64} and friends); these conversions bridge
// to and from any such type without the foreign library knowing about
// this one. The capability is checked at compile time: the foreign type
// must expose fields X, Y[, Z[, W]] of the element type, in that order.

// XYStruct matches any struct exposing exactly the fields X, Y of type T.
type XYStruct[T any] interface {
	~struct{ X, Y T }
}

// XYZStruct matches any struct exposing exactly the fields X, Y, Z of type T.
type XYZStruct[T any] interface {
	~struct{ X, Y, Z T }
}

// XYZWStruct matches any struct exposing exactly the fields X, Y, Z, W of type T.
type XYZWStruct[T any] interface {
	~struct{ X, Y, Z, W T }
}

// ToXY converts a Vec2 to a foreign two-field struct type.
//
//	p := hqvec.ToXY[gg.Point](v)
func ToXY[U XYStruct[T], T number.Number](v Vec2[T]) U {
	return U(v)
}

// FromXY converts a foreign two-field struct to a Vec2.
func FromXY[T number.Number, U XYStruct[T]](u U) Vec2[T] {
	return Vec2[T](u)
}

// ToXYZ converts a Vec3 to a foreign three-field struct type.
func ToXYZ[U XYZStruct[T], T number.Number](v Vec3[T]) U {
	return U(v)
}

// FromXYZ converts a foreign three-field struct to a Vec3.
func FromXYZ[T number.Number, U XYZStruct[T]](u U) Vec3[T] {
	return Vec3[T](u)
}

// ToXYZW converts a Vec4 to a foreign four-field struct type.
func ToXYZW[U XYZWStruct[T], T number.Number](v Vec4[T]) U {
	return U(v)
}

// FromXYZW converts a foreign four-field struct to a Vec4.
func FromXYZW[T number.Number, U XYZWStruct[T]](u U) Vec4[T] {
	return Vec4[T](u)
}
