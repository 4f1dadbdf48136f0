package main

import (
	"fmt"
	"unsafe"

	"github.com/humz2k/hqvec"
	"github.com/humz2k/hqvec/vecmath"
)

// foreign vector type standing in for another library's
type myVec struct {
	X float32
	Y float32
	Z float32
}

func main() {
	fmt.Printf("vec4 = %d\n", unsafe.Sizeof(hqvec.Vec4[float32]{})/4)
	fmt.Printf("vec3 = %d\n", unsafe.Sizeof(hqvec.Vec3[float32]{})/4)
	fmt.Printf("vec2 = %d\n", unsafe.Sizeof(hqvec.Vec2[float32]{})/4)

	tmp := []float32{9, 8}

	a := hqvec.Load2(tmp)
	b := hqvec.V2[float32](1, 8)
	fmt.Printf("%g\n", a.Distance(b))

	a.Slice()[0] = 10
	fmt.Println(a)
	fmt.Println(b)

	prod := a.Mul(b)
	fmt.Println(hqvec.Cast[int32, [6]int32](hqvec.Grow[[6]float32](prod.Gen())))

	prod.CopyTo(tmp)
	fmt.Println(hqvec.Cast2[int32](prod))
	fmt.Println(tmp[0], tmp[1])
	fmt.Println(a == b, prod == a.Mul(b))

	fmt.Println(hqvec.Cast2[int32](vecmath.RoundVec2(vecmath.PowVec2(a, hqvec.V2[float32](2, 2)))))

	fmt.Printf("%g\n", hqvec.V2[float32](1, 2).SquaredNorm())

	foreign := hqvec.ToXYZ[myVec](hqvec.V3[float32](1, 2, 3))
	fmt.Println(foreign)
	fmt.Println(hqvec.FromXYZ(foreign))
}
