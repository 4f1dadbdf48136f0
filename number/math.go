package number

import "math"

// Scalar math over generic float types. Each wrapper widens to float64,
// calls the stdlib, and narrows back to T so generic code does not have
// to spell the conversions out at every call site.

func Acos[T Float](x T) T { return T(math.Acos(float64(x))) }

func Asin[T Float](x T) T { return T(math.Asin(float64(x))) }

func Atan[T Float](x T) T { return T(math.Atan(float64(x))) }

func Cos[T Float](x T) T { return T(math.Cos(float64(x))) }

func Cosh[T Float](x T) T { return T(math.Cosh(float64(x))) }

func Sin[T Float](x T) T { return T(math.Sin(float64(x))) }

func Sinh[T Float](x T) T { return T(math.Sinh(float64(x))) }

func Tan[T Float](x T) T { return T(math.Tan(float64(x))) }

func Exp[T Float](x T) T { return T(math.Exp(float64(x))) }

func Log[T Float](x T) T { return T(math.Log(float64(x))) }

func Log10[T Float](x T) T { return T(math.Log10(float64(x))) }

func Sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

func Ceil[T Float](x T) T { return T(math.Ceil(float64(x))) }

func Floor[T Float](x T) T { return T(math.Floor(float64(x))) }

func Round[T Float](x T) T { return T(math.Round(float64(x))) }

func Atan2[T Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

func Pow[T Float](x, y T) T { return T(math.Pow(float64(x), float64(y))) }

func Mod[T Float](x, y T) T { return T(math.Mod(float64(x), float64(y))) }
