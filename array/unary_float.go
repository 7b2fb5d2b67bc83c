// float32 elements are widened, evaluated in float64 and rounded once,
// except abs and sqrt which are exact in float32.

package array

import "github.com/cwbudde/algo-strided/kernel"

// SinFloat sets out[i] = sin(a[i]) for i in [0, size).
func SinFloat(a *float32, size, stride int, out *float32) {
	kernels().unary32(kernel.Sin, a, size, stride, out)
}

// SinAssignFloat sets a[i] = sin(a[i]) in place.
func SinAssignFloat(a *float32, size, stride int) {
	kernels().unaryAssign32(kernel.Sin, a, size, stride)
}

// CosFloat sets out[i] = cos(a[i]) for i in [0, size).
func CosFloat(a *float32, size, stride int, out *float32) {
	kernels().unary32(kernel.Cos, a, size, stride, out)
}

// CosAssignFloat sets a[i] = cos(a[i]) in place.
func CosAssignFloat(a *float32, size, stride int) {
	kernels().unaryAssign32(kernel.Cos, a, size, stride)
}

// TanFloat sets out[i] = tan(a[i]) for i in [0, size).
func TanFloat(a *float32, size, stride int, out *float32) {
	kernels().unary32(kernel.Tan, a, size, stride, out)
}

// TanAssignFloat sets a[i] = tan(a[i]) in place.
func TanAssignFloat(a *float32, size, stride int) {
	kernels().unaryAssign32(kernel.Tan, a, size, stride)
}

// AsinFloat sets out[i] = asin(a[i]) for i in [0, size).
// Elements outside [-1, 1] yield NaN.
func AsinFloat(a *float32, size, stride int, out *float32) {
	kernels().unary32(kernel.Asin, a, size, stride, out)
}

// AsinAssignFloat sets a[i] = asin(a[i]) in place.
func AsinAssignFloat(a *float32, size, stride int) {
	kernels().unaryAssign32(kernel.Asin, a, size, stride)
}

// AcosFloat sets out[i] = acos(a[i]) for i in [0, size).
// Elements outside [-1, 1] yield NaN.
func AcosFloat(a *float32, size, stride int, out *float32) {
	kernels().unary32(kernel.Acos, a, size, stride, out)
}

// AcosAssignFloat sets a[i] = acos(a[i]) in place.
func AcosAssignFloat(a *float32, size, stride int) {
	kernels().unaryAssign32(kernel.Acos, a, size, stride)
}

// AtanFloat sets out[i] = atan(a[i]) for i in [0, size).
func AtanFloat(a *float32, size, stride int, out *float32) {
	kernels().unary32(kernel.Atan, a, size, stride, out)
}

// AtanAssignFloat sets a[i] = atan(a[i]) in place.
func AtanAssignFloat(a *float32, size, stride int) {
	kernels().unaryAssign32(kernel.Atan, a, size, stride)
}

// SinhFloat sets out[i] = sinh(a[i]) for i in [0, size).
func SinhFloat(a *float32, size, stride int, out *float32) {
	kernels().unary32(kernel.Sinh, a, size, stride, out)
}

// SinhAssignFloat sets a[i] = sinh(a[i]) in place.
func SinhAssignFloat(a *float32, size, stride int) {
	kernels().unaryAssign32(kernel.Sinh, a, size, stride)
}

// CoshFloat sets out[i] = cosh(a[i]) for i in [0, size).
func CoshFloat(a *float32, size, stride int, out *float32) {
	kernels().unary32(kernel.Cosh, a, size, stride, out)
}

// CoshAssignFloat sets a[i] = cosh(a[i]) in place.
func CoshAssignFloat(a *float32, size, stride int) {
	kernels().unaryAssign32(kernel.Cosh, a, size, stride)
}

// TanhFloat sets out[i] = tanh(a[i]) for i in [0, size).
func TanhFloat(a *float32, size, stride int, out *float32) {
	kernels().unary32(kernel.Tanh, a, size, stride, out)
}

// TanhAssignFloat sets a[i] = tanh(a[i]) in place.
func TanhAssignFloat(a *float32, size, stride int) {
	kernels().unaryAssign32(kernel.Tanh, a, size, stride)
}

// AbsFloat sets out[i] = abs(a[i]) for i in [0, size).
func AbsFloat(a *float32, size, stride int, out *float32) {
	kernels().unary32(kernel.Abs, a, size, stride, out)
}

// AbsAssignFloat sets a[i] = abs(a[i]) in place.
func AbsAssignFloat(a *float32, size, stride int) {
	kernels().unaryAssign32(kernel.Abs, a, size, stride)
}

// SqrtFloat sets out[i] = sqrt(a[i]) for i in [0, size).
// Negative elements yield NaN.
func SqrtFloat(a *float32, size, stride int, out *float32) {
	kernels().unary32(kernel.Sqrt, a, size, stride, out)
}

// SqrtAssignFloat sets a[i] = sqrt(a[i]) in place.
func SqrtAssignFloat(a *float32, size, stride int) {
	kernels().unaryAssign32(kernel.Sqrt, a, size, stride)
}

// ExpFloat sets out[i] = exp(a[i]) for i in [0, size).
// Overflow yields +Inf.
func ExpFloat(a *float32, size, stride int, out *float32) {
	kernels().unary32(kernel.Exp, a, size, stride, out)
}

// ExpAssignFloat sets a[i] = exp(a[i]) in place.
func ExpAssignFloat(a *float32, size, stride int) {
	kernels().unaryAssign32(kernel.Exp, a, size, stride)
}
