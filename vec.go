// Package hqvec provides fixed-size numeric vector value types for
// geometry and physics code.
//
// Two families share one contract. Vec2, Vec3 and Vec4 expose their
// elements as named fields (X, Y, Z, W). Vec[T, A] covers every other
// length with inline array storage. Both are plain values: storage is
// exactly n contiguous elements of T with no extra fields, so a vector
// is layout-compatible with [n]T and with any foreign struct of n
// same-typed fields in declaration order. Vectors compare with == and
// copy by value.
package hqvec

import (
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/humz2k/hqvec/number"
)

// Array constrains the backing storage of a generic vector. The union
// starts at [2]T: a 1-element vector is unrepresentable.
type Array[T any] interface {
	~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T
}

// Vec is a fixed-size vector of n elements of T, where n is the length
// of the backing array type A. The zero value has every element zero.
type Vec[T number.Number, A Array[T]] struct {
	data A
}

// New builds a vector from an explicit element list. Missing trailing
// elements stay zero. Panics if more elements are given than fit.
func New[T number.Number, A Array[T]](elems ...T) Vec[T, A] {
	var out Vec[T, A]
	if len(elems) > len(out.data) {
		panic(fmt.Sprintf("hqvec: %d elements for a %d-vector", len(elems), len(out.data)))
	}
	for i, e := range elems {
		out.data[i] = e
	}
	return out
}

// Load copies min(len(src), n) elements from src. Elements past the end
// of src stay zero.
func Load[T number.Number, A Array[T]](src []T) Vec[T, A] {
	var out Vec[T, A]
	n := number.Min(len(src), len(out.data))
	for i := 0; i < n; i++ {
		out.data[i] = src[i]
	}
	return out
}

// Fill sets every element to s.
func Fill[T number.Number, A Array[T]](s T) Vec[T, A] {
	var out Vec[T, A]
	for i := 0; i < len(out.data); i++ {
		out.data[i] = s
	}
	return out
}

// Cast converts elementwise to a new element type U. The target array
// type B must have the same length as A; a mismatch panics.
func Cast[U number.Number, B Array[U], T number.Number, A Array[T]](v Vec[T, A]) Vec[U, B] {
	var out Vec[U, B]
	if len(out.data) != len(v.data) {
		panic(fmt.Sprintf("hqvec: cast from %d-vector to %d-vector", len(v.data), len(out.data)))
	}
	for i := 0; i < len(v.data); i++ {
		out.data[i] = U(v.data[i])
	}
	return out
}

// Dims returns the number of elements.
func (v Vec[T, A]) Dims() int { return len(v.data) }

// At returns element i. Panics if i is out of range.
func (v Vec[T, A]) At(i int) T { return v.data[i] }

// SetAt stores val at element i. Panics if i is out of range.
func (v *Vec[T, A]) SetAt(i int, val T) { v.data[i] = val }

// Lookup is the non-panicking access path: it reports whether i is in
// range, returning the element when it is.
func (v Vec[T, A]) Lookup(i int) (T, bool) {
	if i < 0 || len(v.data) <= i {
		var zero T
		return zero, false
	}
	return v.data[i], true
}

// Array returns a pointer to the backing array. Writes through it are
// visible via every other accessor.
func (v *Vec[T, A]) Array() *A { return &v.data }

// Slice returns a mutable view over the vector's storage. The view
// aliases the vector and is valid while the vector is.
func (v *Vec[T, A]) Slice() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.data)), len(v.data))
}

// CopyTo copies min(len(dst), n) elements into dst and returns the
// number copied.
func (v Vec[T, A]) CopyTo(dst []T) int {
	n := number.Min(len(dst), len(v.data))
	for i := 0; i < n; i++ {
		dst[i] = v.data[i]
	}
	return n
}

func (v Vec[T, A]) Add(w Vec[T, A]) Vec[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] += w.data[i]
	}
	return v
}

func (v Vec[T, A]) Sub(w Vec[T, A]) Vec[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] -= w.data[i]
	}
	return v
}

func (v Vec[T, A]) Mul(w Vec[T, A]) Vec[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] *= w.data[i]
	}
	return v
}

func (v Vec[T, A]) Div(w Vec[T, A]) Vec[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] /= w.data[i]
	}
	return v
}

func (v Vec[T, A]) AddScalar(s T) Vec[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] += s
	}
	return v
}

func (v Vec[T, A]) SubScalar(s T) Vec[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] -= s
	}
	return v
}

func (v Vec[T, A]) MulScalar(s T) Vec[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] *= s
	}
	return v
}

func (v Vec[T, A]) DivScalar(s T) Vec[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] /= s
	}
	return v
}

// Map applies f to every element.
func (v Vec[T, A]) Map(f func(T) T) Vec[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] = f(v.data[i])
	}
	return v
}

// Zip pairs v with w elementwise under f.
func (v Vec[T, A]) Zip(w Vec[T, A], f func(T, T) T) Vec[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] = f(v.data[i], w.data[i])
	}
	return v
}

// Dot returns the sum of elementwise products. Accumulates in float64
// and narrows to T at the end.
func (v Vec[T, A]) Dot(w Vec[T, A]) T {
	sum := 0.0
	for i := 0; i < len(v.data); i++ {
		sum += float64(v.data[i]) * float64(w.data[i])
	}
	return T(sum)
}

// SquaredNorm returns the sum of squares of the elements.
func (v Vec[T, A]) SquaredNorm() T {
	sum := 0.0
	for i := 0; i < len(v.data); i++ {
		e := float64(v.data[i])
		sum += e * e
	}
	return T(sum)
}

// Norm returns the Euclidean length.
func (v Vec[T, A]) Norm() T {
	return T(math.Sqrt(float64(v.SquaredNorm())))
}

func (v Vec[T, A]) SquaredDistance(w Vec[T, A]) T { return v.Sub(w).SquaredNorm() }

func (v Vec[T, A]) Distance(w Vec[T, A]) T { return v.Sub(w).Norm() }

func (v Vec[T, A]) String() string {
	var sb strings.Builder
	var zero T
	fmt.Fprintf(&sb, "vec<%T,%d>(", zero, len(v.data))
	for i := 0; i < len(v.data); i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%v", v.data[i])
	}
	sb.WriteByte(')')
	return sb.String()
}
