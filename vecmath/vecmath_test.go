package vecmath

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/humz2k/hqvec"
	"github.com/humz2k/hqvec/number"
)

type unaryCase[T number.Float] struct {
	Name   string
	Vec    func(hqvec.Vec[T, [4]T]) hqvec.Vec[T, [4]T]
	Scalar func(T) T
	Input  []T
}

func testUnaryLifting[T number.Float](t *testing.T) {
	trig := []T{-0.9, -0.25, 0.1, 0.75}
	pos := []T{0.5, 1, 2.5, 100}
	mixed := []T{-2.5, -0.5, 0.5, 3.25}

	cases := []unaryCase[T]{
		{"acos", Acos[T, [4]T], number.Acos[T], trig},
		{"asin", Asin[T, [4]T], number.Asin[T], trig},
		{"atan", Atan[T, [4]T], number.Atan[T], mixed},
		{"cos", Cos[T, [4]T], number.Cos[T], mixed},
		{"cosh", Cosh[T, [4]T], number.Cosh[T], mixed},
		{"sin", Sin[T, [4]T], number.Sin[T], mixed},
		{"sinh", Sinh[T, [4]T], number.Sinh[T], mixed},
		{"tan", Tan[T, [4]T], number.Tan[T], mixed},
		{"exp", Exp[T, [4]T], number.Exp[T], mixed},
		{"log", Log[T, [4]T], number.Log[T], pos},
		{"log10", Log10[T, [4]T], number.Log10[T], pos},
		{"sqrt", Sqrt[T, [4]T], number.Sqrt[T], pos},
		{"ceil", Ceil[T, [4]T], number.Ceil[T], mixed},
		{"abs", Abs[T, [4]T], number.Abs[T], mixed},
		{"floor", Floor[T, [4]T], number.Floor[T], mixed},
		{"round", Round[T, [4]T], number.Round[T], mixed},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			v := hqvec.Load[T, [4]T](tc.Input)
			got := tc.Vec(v)
			for i := 0; i < got.Dims(); i++ {
				assert.InDelta(t, float64(tc.Scalar(v.At(i))), float64(got.At(i)), 1e-6)
			}
		})
	}
}

func Test_UnaryLifting(t *testing.T) {
	t.Run("float32", testUnaryLifting[float32])
	t.Run("float64", testUnaryLifting[float64])
}

func Test_BinaryLifting(t *testing.T) {
	v := hqvec.New[float64, [4]float64](1, 2, 3, 4)
	w := hqvec.New[float64, [4]float64](2, 3, 0.5, 2)

	pow := Pow(v, w)
	atan2 := Atan2(v, w)
	mod := Mod(v, w)
	for i := 0; i < v.Dims(); i++ {
		assert.InDelta(t, number.Pow(v.At(i), w.At(i)), pow.At(i), 1e-9)
		assert.InDelta(t, number.Atan2(v.At(i), w.At(i)), atan2.At(i), 1e-9)
		assert.InDelta(t, number.Mod(v.At(i), w.At(i)), mod.At(i), 1e-9)
	}

	powS := PowScalar(v, 2)
	atan2S := Atan2Scalar(v, 2)
	modS := ModScalar(v, 2)
	for i := 0; i < v.Dims(); i++ {
		assert.InDelta(t, number.Pow(v.At(i), 2), powS.At(i), 1e-9)
		assert.InDelta(t, number.Atan2(v.At(i), 2), atan2S.At(i), 1e-9)
		assert.InDelta(t, number.Mod(v.At(i), 2), modS.At(i), 1e-9)
	}
}

func Test_RoundPow(t *testing.T) {
	v := hqvec.New[float32, [2]float32](10, 64)
	e := hqvec.New[float32, [2]float32](2, 2)
	assert.Equal(t, hqvec.New[float32, [2]float32](100, 4096), Round(Pow(v, e)))

	v2 := hqvec.V2[float32](10, 64)
	assert.Equal(t, hqvec.V2[float32](100, 4096), RoundVec2(PowVec2(v2, hqvec.Fill2[float32](2))))
}

func Test_ShapeWrappers(t *testing.T) {
	v2 := hqvec.V2(0.25, 0.5)
	got2 := SinVec2(v2)
	assert.InDelta(t, number.Sin(v2.X), got2.X, 1e-12)
	assert.InDelta(t, number.Sin(v2.Y), got2.Y, 1e-12)

	v3 := hqvec.V3(1.0, 4.0, 9.0)
	assert.Equal(t, hqvec.V3(1.0, 2.0, 3.0), SqrtVec3(v3))

	v4 := hqvec.V4(1.0, 2.0, 3.0, 4.0)
	exp4 := ExpVec4(v4)
	floor4 := FloorVec4(hqvec.V4(1.9, -1.1, 2.5, 0.0))
	assert.InDelta(t, number.Exp(2.0), exp4.Y, 1e-12)
	assert.Equal(t, hqvec.V4(1.0, -2.0, 2.0, 0.0), floor4)

	mod3 := ModScalarVec3(hqvec.V3(5.0, 7.0, 9.0), 4)
	assert.Equal(t, hqvec.V3(1.0, 3.0, 1.0), mod3)

	at2 := Atan2Vec2(hqvec.V2(1.0, 1.0), hqvec.V2(1.0, 0.0))
	assert.InDelta(t, number.Atan2(1.0, 1.0), at2.X, 1e-12)
	assert.InDelta(t, number.Atan2(1.0, 0.0), at2.Y, 1e-12)
}
