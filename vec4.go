package hqvec

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/humz2k/hqvec/number"
)

// Vec4 is a 4-element vector with named fields X, Y, Z, W.
type Vec4[T number.Number] struct {
	X, Y, Z, W T
}

// V4 builds a Vec4 from its elements.
func V4[T number.Number](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// Load4 copies up to 4 elements from src; missing elements stay zero.
func Load4[T number.Number](src []T) Vec4[T] {
	var out Vec4[T]
	if len(src) > 0 {
		out.X = src[0]
	}
	if len(src) > 1 {
		out.Y = src[1]
	}
	if len(src) > 2 {
		out.Z = src[2]
	}
	if len(src) > 3 {
		out.W = src[3]
	}
	return out
}

// Fill4 sets all four elements to s.
func Fill4[T number.Number](s T) Vec4[T] { return Vec4[T]{X: s, Y: s, Z: s, W: s} }

// Cast4 converts elementwise to a new element type.
func Cast4[U number.Number, T number.Number](v Vec4[T]) Vec4[U] {
	return Vec4[U]{X: U(v.X), Y: U(v.Y), Z: U(v.Z), W: U(v.W)}
}

func (v Vec4[T]) Dims() int { return 4 }

// At returns element i. Panics if i is out of range.
func (v Vec4[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(fmt.Sprintf("hqvec: index %d out of range for a 4-vector", i))
}

// SetAt stores val at element i. Panics if i is out of range.
func (v *Vec4[T]) SetAt(i int, val T) {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	case 3:
		v.W = val
	default:
		panic(fmt.Sprintf("hqvec: index %d out of range for a 4-vector", i))
	}
}

// Lookup is the non-panicking access path.
func (v Vec4[T]) Lookup(i int) (T, bool) {
	if i < 0 || 4 <= i {
		var zero T
		return zero, false
	}
	return v.At(i), true
}

// Data returns the vector reinterpreted as an array of its elements.
func (v *Vec4[T]) Data() *[4]T { return (*[4]T)(unsafe.Pointer(v)) }

// Slice returns a mutable view aliasing the vector's storage.
func (v *Vec4[T]) Slice() []T { return v.Data()[:] }

// CopyTo copies min(len(dst), 4) elements into dst and returns the
// number copied.
func (v Vec4[T]) CopyTo(dst []T) int {
	n := number.Min(len(dst), 4)
	if n > 0 {
		dst[0] = v.X
	}
	if n > 1 {
		dst[1] = v.Y
	}
	if n > 2 {
		dst[2] = v.Z
	}
	if n > 3 {
		dst[3] = v.W
	}
	return n
}

func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z, v.W + w.W}
}

func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z, v.W - w.W}
}

func (v Vec4[T]) Mul(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X * w.X, v.Y * w.Y, v.Z * w.Z, v.W * w.W}
}

func (v Vec4[T]) Div(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X / w.X, v.Y / w.Y, v.Z / w.Z, v.W / w.W}
}

func (v Vec4[T]) AddScalar(s T) Vec4[T] {
	return Vec4[T]{v.X + s, v.Y + s, v.Z + s, v.W + s}
}

func (v Vec4[T]) SubScalar(s T) Vec4[T] {
	return Vec4[T]{v.X - s, v.Y - s, v.Z - s, v.W - s}
}

func (v Vec4[T]) MulScalar(s T) Vec4[T] {
	return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vec4[T]) DivScalar(s T) Vec4[T] {
	return Vec4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Map applies f to every element.
func (v Vec4[T]) Map(f func(T) T) Vec4[T] {
	return Vec4[T]{f(v.X), f(v.Y), f(v.Z), f(v.W)}
}

// Zip pairs v with w elementwise under f.
func (v Vec4[T]) Zip(w Vec4[T], f func(T, T) T) Vec4[T] {
	return Vec4[T]{f(v.X, w.X), f(v.Y, w.Y), f(v.Z, w.Z), f(v.W, w.W)}
}

// Dot returns the sum of elementwise products. Accumulates in float64
// and narrows to T at the end.
func (v Vec4[T]) Dot(w Vec4[T]) T {
	return T(float64(v.X)*float64(w.X) + float64(v.Y)*float64(w.Y) +
		float64(v.Z)*float64(w.Z) + float64(v.W)*float64(w.W))
}

// SquaredNorm returns the sum of squares of the elements.
func (v Vec4[T]) SquaredNorm() T {
	x, y, z, w := float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)
	return T(x*x + y*y + z*z + w*w)
}

// Norm returns the Euclidean length.
func (v Vec4[T]) Norm() T {
	x, y, z, w := float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)
	return T(math.Sqrt(x*x + y*y + z*z + w*w))
}

func (v Vec4[T]) SquaredDistance(w Vec4[T]) T { return v.Sub(w).SquaredNorm() }

func (v Vec4[T]) Distance(w Vec4[T]) T { return v.Sub(w).Norm() }

// Shrink2 truncates to the first two elements.
func (v Vec4[T]) Shrink2() Vec2[T] { return Vec2[T]{X: v.X, Y: v.Y} }

// Shrink3 truncates to the first three elements.
func (v Vec4[T]) Shrink3() Vec3[T] { return Vec3[T]{X: v.X, Y: v.Y, Z: v.Z} }

// Gen converts to the generic representation.
func (v Vec4[T]) Gen() Vec[T, [4]T] { return Vec[T, [4]T]{data: [4]T{v.X, v.Y, v.Z, v.W}} }

func (v Vec4[T]) String() string {
	return fmt.Sprintf("vec<%T,4>(%v,%v,%v,%v)", v.X, v.X, v.Y, v.Z, v.W)
}
