package hqvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// foreign vector types from a hypothetical third-party library
type fPoint struct {
	X, Y float64
}

type fVec3 struct {
	X, Y, Z float32
}

type fQuat struct {
	X, Y, Z, W float64
}

func Test_ToFromXY(t *testing.T) {
	v := V2(1.5, -2.5)

	p := ToXY[fPoint](v)
	assert.Equal(t, fPoint{X: 1.5, Y: -2.5}, p)
	assert.Equal(t, v, FromXY(p))
}

func Test_ToFromXYZ(t *testing.T) {
	v := V3[float32](1, 2, 3)

	f := ToXYZ[fVec3](v)
	assert.Equal(t, fVec3{X: 1, Y: 2, Z: 3}, f)
	assert.Equal(t, v, FromXYZ(f))
}

func Test_ToFromXYZW(t *testing.T) {
	v := V4(0.0, 0.5, 1.0, -1.0)

	q := ToXYZW[fQuat](v)
	assert.Equal(t, fQuat{X: 0, Y: 0.5, Z: 1, W: -1}, q)
	assert.Equal(t, v, FromXYZW(q))
}

func Test_InteropRoundTripPreservesEquality(t *testing.T) {
	vs := []Vec2[float64]{
		{},
		V2(1.0, 2.0),
		V2(-0.0, 3.25),
	}
	for _, v := range vs {
		assert.True(t, FromXY(ToXY[fPoint](v)) == v)
	}
}
