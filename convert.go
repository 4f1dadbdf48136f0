package hqvec

import (
	"fmt"

	"github.com/humz2k/hqvec/number"
)

// Grow returns a larger vector: the first n elements copy over, the
// rest stay zero. Panics unless the target array type A2 is strictly
// longer than the source's.
func Grow[A2 Array[T], T number.Number, A1 Array[T]](v Vec[T, A1]) Vec[T, A2] {
	var out Vec[T, A2]
	if len(out.data) <= len(v.data) {
		panic(fmt.Sprintf("hqvec: grow from %d-vector to %d-vector", len(v.data), len(out.data)))
	}
	for i := 0; i < len(v.data); i++ {
		out.data[i] = v.data[i]
	}
	return out
}

// Shrink returns a smaller vector holding the first n1 elements.
// Panics unless the target array type A2 is strictly shorter than the
// source's.
func Shrink[A2 Array[T], T number.Number, A1 Array[T]](v Vec[T, A1]) Vec[T, A2] {
	var out Vec[T, A2]
	if len(v.data) <= len(out.data) {
		panic(fmt.Sprintf("hqvec: shrink from %d-vector to %d-vector", len(v.data), len(out.data)))
	}
	for i := 0; i < len(out.data); i++ {
		out.data[i] = v.data[i]
	}
	return out
}

// AsVec2 converts the first two elements to the named-field form.
func AsVec2[T number.Number, A Array[T]](v Vec[T, A]) Vec2[T] {
	return Vec2[T]{X: v.data[0], Y: v.data[1]}
}

// AsVec3 converts the first three elements to the named-field form.
// Panics if v has fewer than three.
func AsVec3[T number.Number, A Array[T]](v Vec[T, A]) Vec3[T] {
	if len(v.data) < 3 {
		panic("hqvec: 3-vector from a shorter vector")
	}
	return Vec3[T]{X: v.At(0), Y: v.At(1), Z: v.At(2)}
}

// AsVec4 converts the first four elements to the named-field form.
// Panics if v has fewer than four.
func AsVec4[T number.Number, A Array[T]](v Vec[T, A]) Vec4[T] {
	if len(v.data) < 4 {
		panic("hqvec: 4-vector from a shorter vector")
	}
	return Vec4[T]{X: v.At(0), Y: v.At(1), Z: v.At(2), W: v.At(3)}
}
