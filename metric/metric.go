// Package metric defines distance metrics over the hqvec vector types.
package metric

import (
	"github.com/humz2k/hqvec"
	"github.com/humz2k/hqvec/number"
)

// Metric computes a distance between two vectors of type V. Distances
// are float64 regardless of the element type so ranking stays exact
// for integer elements.
type Metric[V any] interface {
	Distance(a, b V) float64
}

// SqL2 is the squared Euclidean distance over generic vectors.
type SqL2[T number.Number, A hqvec.Array[T]] struct{}

func (SqL2[T, A]) Distance(a, b hqvec.Vec[T, A]) float64 {
	var sum float64
	for i := 0; i < a.Dims(); i++ {
		diff := float64(a.At(i)) - float64(b.At(i))
		sum += diff * diff
	}
	return sum
}

// SqL2Vec2 is the squared Euclidean distance over Vec2.
type SqL2Vec2[T number.Number] struct{}

func (SqL2Vec2[T]) Distance(a, b hqvec.Vec2[T]) float64 {
	dx := float64(a.X) - float64(b.X)
	dy := float64(a.Y) - float64(b.Y)
	return dx*dx + dy*dy
}

// SqL2Vec3 is the squared Euclidean distance over Vec3.
type SqL2Vec3[T number.Number] struct{}

func (SqL2Vec3[T]) Distance(a, b hqvec.Vec3[T]) float64 {
	dx := float64(a.X) - float64(b.X)
	dy := float64(a.Y) - float64(b.Y)
	dz := float64(a.Z) - float64(b.Z)
	return dx*dx + dy*dy + dz*dz
}

// SqL2Vec4 is the squared Euclidean distance over Vec4.
type SqL2Vec4[T number.Number] struct{}

func (SqL2Vec4[T]) Distance(a, b hqvec.Vec4[T]) float64 {
	dx := float64(a.X) - float64(b.X)
	dy := float64(a.Y) - float64(b.Y)
	dz := float64(a.Z) - float64(b.Z)
	dw := float64(a.W) - float64(b.W)
	return dx*dx + dy*dy + dz*dz + dw*dw
}
