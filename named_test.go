package hqvec

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func Test_NamedFieldsShareStorage(t *testing.T) {
	var v2 Vec2[float64]
	v2.SetAt(0, 1.5)
	v2.Y = 2.5
	assert.Equal(t, 1.5, v2.X)
	assert.Equal(t, 2.5, v2.At(1))

	var v3 Vec3[int32]
	v3.X, v3.Y, v3.Z = 1, 2, 3
	for i := 0; i < 3; i++ {
		assert.Equal(t, int32(i+1), v3.At(i))
	}
	v3.SetAt(2, 30)
	assert.Equal(t, int32(30), v3.Z)

	var v4 Vec4[uint16]
	for i := 0; i < 4; i++ {
		v4.SetAt(i, uint16(i+1))
	}
	assert.Equal(t, Vec4[uint16]{X: 1, Y: 2, Z: 3, W: 4}, v4)
}

func Test_NamedAtOutOfRange(t *testing.T) {
	assert.Panics(t, func() { _ = V2[float32](1, 2).At(2) })
	assert.Panics(t, func() { _ = V3[float32](1, 2, 3).At(3) })
	assert.Panics(t, func() { _ = V4[float32](1, 2, 3, 4).At(4) })

	v := V3[float32](1, 2, 3)
	assert.Panics(t, func() { v.SetAt(-1, 0) })

	_, ok := v.Lookup(3)
	assert.False(t, ok)
	got, ok := v.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, float32(2), got)
}

// The pointer-view operations rely on a vector being laid out exactly
// like [n]T.
func Test_Layout(t *testing.T) {
	assert.Equal(t, unsafe.Sizeof([2]float32{}), unsafe.Sizeof(Vec2[float32]{}))
	assert.Equal(t, unsafe.Sizeof([3]float32{}), unsafe.Sizeof(Vec3[float32]{}))
	assert.Equal(t, unsafe.Sizeof([4]float32{}), unsafe.Sizeof(Vec4[float32]{}))
	assert.Equal(t, unsafe.Sizeof([3]uint8{}), unsafe.Sizeof(Vec3[uint8]{}))
	assert.Equal(t, unsafe.Sizeof([4]float64{}), unsafe.Sizeof(Vec4[float64]{}))
	assert.Equal(t, unsafe.Sizeof([5]int64{}), unsafe.Sizeof(Vec[int64, [5]int64]{}))
}

func Test_DataAliasing(t *testing.T) {
	v := V3[float32](1, 2, 3)

	d := v.Data()
	d[1] = 20
	assert.Equal(t, float32(20), v.Y)

	s := v.Slice()
	s[2] = 30
	assert.Equal(t, float32(30), v.Z)
	assert.Equal(t, []float32{1, 20, 30}, s)

	v4 := V4[int8](1, 2, 3, 4)
	v4.Data()[3] = 40
	assert.Equal(t, int8(40), v4.W)

	v2 := V2[uint64](1, 2)
	v2.Slice()[0] = 10
	assert.Equal(t, uint64(10), v2.X)
}

func Test_NamedLoadZeroFill(t *testing.T) {
	src := []float32{1, 2, 3, 4}

	assert.Equal(t, V2[float32](1, 0), Load2(src[:1]))
	assert.Equal(t, V2[float32](1, 2), Load2(src))
	assert.Equal(t, V3[float32](1, 2, 0), Load3(src[:2]))
	assert.Equal(t, V3[float32](1, 2, 3), Load3(src))
	assert.Equal(t, V4[float32](1, 2, 3, 0), Load4(src[:3]))
	assert.Equal(t, V4[float32](1, 2, 3, 4), Load4(src))
	assert.Equal(t, Vec4[float32]{}, Load4[float32](nil))
}

func Test_NamedArithmetic(t *testing.T) {
	a := V3[float64](1, 2, 3)
	b := V3[float64](4, 5, 6)

	assert.Equal(t, V3[float64](5, 7, 9), a.Add(b))
	assert.Equal(t, V3[float64](-3, -3, -3), a.Sub(b))
	assert.Equal(t, V3[float64](4, 10, 18), a.Mul(b))
	assert.Equal(t, V3[float64](0.25, 0.4, 0.5), a.Div(b))

	assert.Equal(t, V3[float64](3, 4, 5), a.AddScalar(2))
	assert.Equal(t, V3[float64](-1, 0, 1), a.SubScalar(2))
	assert.Equal(t, V3[float64](2, 4, 6), a.MulScalar(2))
	assert.Equal(t, V3[float64](0.5, 1, 1.5), a.DivScalar(2))

	c := V2[int32](6, 8)
	d := V2[int32](2, 4)
	assert.Equal(t, V2[int32](8, 12), c.Add(d))
	assert.Equal(t, V2[int32](3, 2), c.Div(d))

	e := V4[float32](1, 2, 3, 4)
	f := V4[float32](5, 6, 7, 8)
	assert.Equal(t, V4[float32](6, 8, 10, 12), e.Add(f))
	assert.Equal(t, V4[float32](5, 12, 21, 32), e.Mul(f))
}

func Test_NamedDotCrossNorm(t *testing.T) {
	a := V2[float32](9, 8)
	b := V2[float32](1, 8)
	assert.Equal(t, V2[float32](9, 64), a.Mul(b))
	assert.Equal(t, float32(4177), a.Mul(b).SquaredNorm())
	assert.Equal(t, float32(5), V2[float32](1, 2).SquaredNorm())
	assert.Equal(t, float32(8), a.Distance(b))

	x := V3[int32](1, 0, 0)
	y := V3[int32](0, 1, 0)
	assert.Equal(t, V3[int32](0, 0, 1), x.Cross(y))
	assert.Equal(t, V3[int32](0, 0, -1), y.Cross(x))
	assert.Equal(t, Vec3[int32]{}, x.Cross(x))

	assert.Equal(t, float32(20), V4[float32](1, 2, 3, 4).Dot(V4[float32](4, 3, 2, 1)))
}

func Test_ExpandShrink(t *testing.T) {
	v2 := V2[float32](1, 2)
	assert.Equal(t, V3[float32](1, 2, 0), v2.Expand3())
	assert.Equal(t, V4[float32](1, 2, 0, 0), v2.Expand4())

	v3 := V3[float32](1, 2, 3)
	assert.Equal(t, V2[float32](1, 2), v3.Shrink2())
	assert.Equal(t, V4[float32](1, 2, 3, 0), v3.Expand4())

	v4 := V4[float32](1, 2, 3, 4)
	assert.Equal(t, V2[float32](1, 2), v4.Shrink2())
	assert.Equal(t, V3[float32](1, 2, 3), v4.Shrink3())

	// expand then shrink reproduces the original
	assert.Equal(t, v2, v2.Expand4().Shrink2())
	assert.Equal(t, v3, v3.Expand4().Shrink3())
}

func Test_GenBridges(t *testing.T) {
	v3 := V3[float64](1, 2, 3)
	g := v3.Gen()
	assert.Equal(t, 3, g.Dims())
	assert.Equal(t, v3, AsVec3(g))

	v2 := V2[int16](5, 6)
	assert.Equal(t, v2, AsVec2(v2.Gen()))

	v4 := V4[uint32](1, 2, 3, 4)
	assert.Equal(t, v4, AsVec4(v4.Gen()))

	grown := Grow[[6]float64](g)
	assert.Equal(t, New[float64, [6]float64](1, 2, 3), grown)
}

func Test_NamedCast(t *testing.T) {
	assert.Equal(t, V2[int32](1, -2), Cast2[int32](V2[float64](1.7, -2.7)))
	assert.Equal(t, V3[float64](1, 2, 3), Cast3[float64](V3[uint8](1, 2, 3)))
	assert.Equal(t, V4[int8](1, 2, 3, 4), Cast4[int8](V4[float32](1.2, 2.2, 3.2, 4.2)))
}

func Test_NamedCopyTo(t *testing.T) {
	v := V4[float64](1, 2, 3, 4)

	dst := make([]float64, 3)
	assert.Equal(t, 3, v.CopyTo(dst))
	assert.Equal(t, []float64{1, 2, 3}, dst)

	full := make([]float64, 4)
	assert.Equal(t, 4, v.CopyTo(full))
	assert.Equal(t, []float64{1, 2, 3, 4}, full)
}

func Test_NamedString(t *testing.T) {
	assert.Equal(t, "vec<float32,2>(1,2)", V2[float32](1, 2).String())
	assert.Equal(t, "vec<int32,3>(1,2,3)", V3[int32](1, 2, 3).String())
	assert.Equal(t, "vec<float64,4>(1,2,3,4)", V4[float64](1, 2, 3, 4).String())
}
