package vecmath

import (
	"github.com/humz2k/hqvec"
	"github.com/humz2k/hqvec/number"
)

// Acos applies number.Acos to every element.
func Acos[T number.Float, A hqvec.Array[T]](v hqvec.Vec[T, A]) hqvec.Vec[T, A] {
	return v.Map(number.Acos[T])
}

// Asin applies number.Asin to every element.
func Asin[T number.Float, A hqvec.Array[T]](v hqvec.Vec[T, A]) hqvec.Vec[T, A] {
	return v.Map(number.Asin[T])
}

// Atan applies number.Atan to every element.
func Atan[T number.Float, A hqvec.Array[T]](v hqvec.Vec[T, A]) hqvec.Vec[T, A] {
	return v.Map(number.Atan[T])
}

// Cos applies number.Cos to every element.
func Cos[T number.Float, A hqvec.Array[T]](v hqvec.Vec[T, A]) hqvec.Vec[T, A] {
	return v.Map(number.Cos[T])
}

// Cosh applies number.Cosh to every element.
func Cosh[T number.Float, A hqvec.Array[T]](v hqvec.Vec[T, A]) hqvec.Vec[T, A] {
	return v.Map(number.Cosh[T])
}

// Sin applies number.Sin to every element.
func Sin[T number.Float, A hqvec.Array[T]](v hqvec.Vec[T, A]) hqvec.Vec[T, A] {
	return v.Map(number.Sin[T])
}

// Sinh applies number.Sinh to every element.
func Sinh[T number.Float, A hqvec.Array[T]](v hqvec.Vec[T, A]) hqvec.Vec[T, A] {
	return v.Map(number.Sinh[T])
}

// Tan applies number.Tan to every element.
func Tan[T number.Float, A hqvec.Array[T]](v hqvec.Vec[T, A]) hqvec.Vec[T, A] {
	return v.Map(number.Tan[T])
}

// Exp applies number.Exp to every element.
func Exp[T number.Float, A hqvec.Array[T]](v hqvec.Vec[T, A]) hqvec.Vec[T, A] {
	return v.Map(number.Exp[T])
}

// Log applies number.Log to every element.
func Log[T number.Float, A hqvec.Array[T]](v hqvec.Vec[T, A]) hqvec.Vec[T, A] {
	return v.Map(number.Log[T])
}

// Log10 applies number.Log10 to every element.
func Log10[T number.Float, A hqvec.Array[T]](v hqvec.Vec[T, A]) hqvec.Vec[T, A] {
	return v.Map(number.Log10[T])
}

// Sqrt applies number.Sqrt to every element.
func Sqrt[T number.Float, A hqvec.Array[T]](v hqvec.Vec[T, A]) hqvec.Vec[T, A] {
	return v.Map(number.Sqrt[T])
}

// Ceil applies number.Ceil to every element.
func Ceil[T number.Float, A hqvec.Array[T]](v hqvec.Vec[T, A]) hqvec.Vec[T, A] {
	return v.Map(number.Ceil[T])
}

// Abs applies number.Abs to every element.
func Abs[T number.Float, A hqvec.Array[T]](v hqvec.Vec[T, A]) hqvec.Vec[T, A] {
	return v.Map(number.Abs[T])
}

// Floor applies number.Floor to every element.
func Floor[T number.Float, A hqvec.Array[T]](v hqvec.Vec[T, A]) hqvec.Vec[T, A] {
	return v.Map(number.Floor[T])
}

// Round applies number.Round to every element.
func Round[T number.Float, A hqvec.Array[T]](v hqvec.Vec[T, A]) hqvec.Vec[T, A] {
	return v.Map(number.Round[T])
}

// Atan2 pairs v with w elementwise under number.Atan2.
func Atan2[T number.Float, A hqvec.Array[T]](v, w hqvec.Vec[T, A]) hqvec.Vec[T, A] {
	return v.Zip(w, number.Atan2[T])
}

// Atan2Scalar broadcasts x as the second argument of number.Atan2.
func Atan2Scalar[T number.Float, A hqvec.Array[T]](v hqvec.Vec[T, A], x T) hqvec.Vec[T, A] {
	return v.Map(func(e T) T { return number.Atan2(e, x) })
}

// Pow pairs v with w elementwise under number.Pow.
func Pow[T number.Float, A hqvec.Array[T]](v, w hqvec.Vec[T, A]) hqvec.Vec[T, A] {
	return v.Zip(w, number.Pow[T])
}

// PowScalar broadcasts y as the exponent.
func PowScalar[T number.Float, A hqvec.Array[T]](v hqvec.Vec[T, A], y T) hqvec.Vec[T, A] {
	return v.Map(func(e T) T { return number.Pow(e, y) })
}

// Mod pairs v with w elementwise under number.Mod.
func Mod[T number.Float, A hqvec.Array[T]](v, w hqvec.Vec[T, A]) hqvec.Vec[T, A] {
	return v.Zip(w, number.Mod[T])
}

// ModScalar broadcasts y as the divisor.
func ModScalar[T number.Float, A hqvec.Array[T]](v hqvec.Vec[T, A], y T) hqvec.Vec[T, A] {
	return v.Map(func(e T) T { return number.Mod(e, y) })
}
