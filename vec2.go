package hqvec

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/humz2k/hqvec/number"
)

// Vec2 is a 2-element vector with named fields. X is element 0, Y is
// element 1; field and indexed access share the same storage.
type Vec2[T number.Number] struct {
	X, Y T
}

// V2 builds a Vec2 from its elements.
func V2[T number.Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Load2 copies up to 2 elements from src; missing elements stay zero.
func Load2[T number.Number](src []T) Vec2[T] {
	var out Vec2[T]
	if len(src) > 0 {
		out.X = src[0]
	}
	if len(src) > 1 {
		out.Y = src[1]
	}
	return out
}

// Fill2 sets both elements to s.
func Fill2[T number.Number](s T) Vec2[T] { return Vec2[T]{X: s, Y: s} }

// Cast2 converts elementwise to a new element type.
func Cast2[U number.Number, T number.Number](v Vec2[T]) Vec2[U] {
	return Vec2[U]{X: U(v.X), Y: U(v.Y)}
}

func (v Vec2[T]) Dims() int { return 2 }

// At returns element i. Panics if i is out of range.
func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("hqvec: index %d out of range for a 2-vector", i))
}

// SetAt stores val at element i. Panics if i is out of range.
func (v *Vec2[T]) SetAt(i int, val T) {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		panic(fmt.Sprintf("hqvec: index %d out of range for a 2-vector", i))
	}
}

// Lookup is the non-panicking access path.
func (v Vec2[T]) Lookup(i int) (T, bool) {
	if i < 0 || 2 <= i {
		var zero T
		return zero, false
	}
	return v.At(i), true
}

// Data returns the vector reinterpreted as an array of its elements.
// Writes through it are visible via the named fields.
func (v *Vec2[T]) Data() *[2]T { return (*[2]T)(unsafe.Pointer(v)) }

// Slice returns a mutable view aliasing the vector's storage.
func (v *Vec2[T]) Slice() []T { return v.Data()[:] }

// CopyTo copies min(len(dst), 2) elements into dst and returns the
// number copied.
func (v Vec2[T]) CopyTo(dst []T) int {
	n := number.Min(len(dst), 2)
	if n > 0 {
		dst[0] = v.X
	}
	if n > 1 {
		dst[1] = v.Y
	}
	return n
}

func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X + w.X, v.Y + w.Y} }

func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X - w.X, v.Y - w.Y} }

func (v Vec2[T]) Mul(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X * w.X, v.Y * w.Y} }

func (v Vec2[T]) Div(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X / w.X, v.Y / w.Y} }

func (v Vec2[T]) AddScalar(s T) Vec2[T] { return Vec2[T]{v.X + s, v.Y + s} }

func (v Vec2[T]) SubScalar(s T) Vec2[T] { return Vec2[T]{v.X - s, v.Y - s} }

func (v Vec2[T]) MulScalar(s T) Vec2[T] { return Vec2[T]{v.X * s, v.Y * s} }

func (v Vec2[T]) DivScalar(s T) Vec2[T] { return Vec2[T]{v.X / s, v.Y / s} }

// Map applies f to every element.
func (v Vec2[T]) Map(f func(T) T) Vec2[T] { return Vec2[T]{f(v.X), f(v.Y)} }

// Zip pairs v with w elementwise under f.
func (v Vec2[T]) Zip(w Vec2[T], f func(T, T) T) Vec2[T] {
	return Vec2[T]{f(v.X, w.X), f(v.Y, w.Y)}
}

// Dot returns the sum of elementwise products. Accumulates in float64
// and narrows to T at the end.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return T(float64(v.X)*float64(w.X) + float64(v.Y)*float64(w.Y))
}

// SquaredNorm returns the sum of squares of the elements.
func (v Vec2[T]) SquaredNorm() T {
	x, y := float64(v.X), float64(v.Y)
	return T(x*x + y*y)
}

// Norm returns the Euclidean length.
func (v Vec2[T]) Norm() T {
	x, y := float64(v.X), float64(v.Y)
	return T(math.Sqrt(x*x + y*y))
}

func (v Vec2[T]) SquaredDistance(w Vec2[T]) T { return v.Sub(w).SquaredNorm() }

func (v Vec2[T]) Distance(w Vec2[T]) T { return v.Sub(w).Norm() }

// Expand3 appends a zero Z element.
func (v Vec2[T]) Expand3() Vec3[T] { return Vec3[T]{X: v.X, Y: v.Y} }

// Expand4 appends zero Z and W elements.
func (v Vec2[T]) Expand4() Vec4[T] { return Vec4[T]{X: v.X, Y: v.Y} }

// Gen converts to the generic representation.
func (v Vec2[T]) Gen() Vec[T, [2]T] { return Vec[T, [2]T]{data: [2]T{v.X, v.Y}} }

func (v Vec2[T]) String() string {
	return fmt.Sprintf("vec<%T,2>(%v,%v)", v.X, v.X, v.Y)
}
