package number

import (
	"golang.org/x/exp/constraints"
)

// Number is the element-type constraint for vectors: any integer or
// floating-point type, signed or unsigned.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float restricts to floating-point element types. The elementwise math
// functions in vecmath accept only these.
type Float interface {
	constraints.Float
}

func Cast[T Number, U Number](v T) U {
	return U(v)
}

func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func Min[T Number](x, y T) T {
	if x < y {
		return x
	}
	return y
}

func Max[T Number](x, y T) T {
	if x > y {
		return x
	}
	return y
}
