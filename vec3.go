package hqvec

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/humz2k/hqvec/number"
)

// Vec3 is a 3-element vector with named fields X, Y, Z.
type Vec3[T number.Number] struct {
	X, Y, Z T
}

// V3 builds a Vec3 from its elements.
func V3[T number.Number](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Load3 copies up to 3 elements from src; missing elements stay zero.
func Load3[T number.Number](src []T) Vec3[T] {
	var out Vec3[T]
	if len(src) > 0 {
		out.X = src[0]
	}
	if len(src) > 1 {
		out.Y = src[1]
	}
	if len(src) > 2 {
		out.Z = src[2]
	}
	return out
}

// Fill3 sets all three elements to s.
func Fill3[T number.Number](s T) Vec3[T] { return Vec3[T]{X: s, Y: s, Z: s} }

// Cast3 converts elementwise to a new element type.
func Cast3[U number.Number, T number.Number](v Vec3[T]) Vec3[U] {
	return Vec3[U]{X: U(v.X), Y: U(v.Y), Z: U(v.Z)}
}

func (v Vec3[T]) Dims() int { return 3 }

// At returns element i. Panics if i is out of range.
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("hqvec: index %d out of range for a 3-vector", i))
}

// SetAt stores val at element i. Panics if i is out of range.
func (v *Vec3[T]) SetAt(i int, val T) {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	default:
		panic(fmt.Sprintf("hqvec: index %d out of range for a 3-vector", i))
	}
}

// Lookup is the non-panicking access path.
func (v Vec3[T]) Lookup(i int) (T, bool) {
	if i < 0 || 3 <= i {
		var zero T
		return zero, false
	}
	return v.At(i), true
}

// Data returns the vector reinterpreted as an array of its elements.
func (v *Vec3[T]) Data() *[3]T { return (*[3]T)(unsafe.Pointer(v)) }

// Slice returns a mutable view aliasing the vector's storage.
func (v *Vec3[T]) Slice() []T { return v.Data()[:] }

// CopyTo copies min(len(dst), 3) elements into dst and returns the
// number copied.
func (v Vec3[T]) CopyTo(dst []T) int {
	n := number.Min(len(dst), 3)
	if n > 0 {
		dst[0] = v.X
	}
	if n > 1 {
		dst[1] = v.Y
	}
	if n > 2 {
		dst[2] = v.Z
	}
	return n
}

func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

func (v Vec3[T]) Mul(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X * w.X, v.Y * w.Y, v.Z * w.Z} }

func (v Vec3[T]) Div(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X / w.X, v.Y / w.Y, v.Z / w.Z} }

func (v Vec3[T]) AddScalar(s T) Vec3[T] { return Vec3[T]{v.X + s, v.Y + s, v.Z + s} }

func (v Vec3[T]) SubScalar(s T) Vec3[T] { return Vec3[T]{v.X - s, v.Y - s, v.Z - s} }

func (v Vec3[T]) MulScalar(s T) Vec3[T] { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3[T]) DivScalar(s T) Vec3[T] { return Vec3[T]{v.X / s, v.Y / s, v.Z / s} }

// Map applies f to every element.
func (v Vec3[T]) Map(f func(T) T) Vec3[T] { return Vec3[T]{f(v.X), f(v.Y), f(v.Z)} }

// Zip pairs v with w elementwise under f.
func (v Vec3[T]) Zip(w Vec3[T], f func(T, T) T) Vec3[T] {
	return Vec3[T]{f(v.X, w.X), f(v.Y, w.Y), f(v.Z, w.Z)}
}

// Dot returns the sum of elementwise products. Accumulates in float64
// and narrows to T at the end.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return T(float64(v.X)*float64(w.X) + float64(v.Y)*float64(w.Y) + float64(v.Z)*float64(w.Z))
}

// Cross returns the 3D cross product.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// SquaredNorm returns the sum of squares of the elements.
func (v Vec3[T]) SquaredNorm() T {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return T(x*x + y*y + z*z)
}

// Norm returns the Euclidean length.
func (v Vec3[T]) Norm() T {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return T(math.Sqrt(x*x + y*y + z*z))
}

func (v Vec3[T]) SquaredDistance(w Vec3[T]) T { return v.Sub(w).SquaredNorm() }

func (v Vec3[T]) Distance(w Vec3[T]) T { return v.Sub(w).Norm() }

// Shrink2 truncates to the first two elements.
func (v Vec3[T]) Shrink2() Vec2[T] { return Vec2[T]{X: v.X, Y: v.Y} }

// Expand4 appends a zero W element.
func (v Vec3[T]) Expand4() Vec4[T] { return Vec4[T]{X: v.X, Y: v.Y, Z: v.Z} }

// Gen converts to the generic representation.
func (v Vec3[T]) Gen() Vec[T, [3]T] { return Vec[T, [3]T]{data: [3]T{v.X, v.Y, v.Z}} }

func (v Vec3[T]) String() string {
	return fmt.Sprintf("vec<%T,3>(%v,%v,%v)", v.X, v.X, v.Y, v.Z)
}
