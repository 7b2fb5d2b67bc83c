package array

import "github.com/cwbudde/algo-strided/kernel"

// SinDouble sets out[i] = sin(a[i]) for i in [0, size).
func SinDouble(a *float64, size, stride int, out *float64) {
	kernels().unary64(kernel.Sin, a, size, stride, out)
}

// SinAssignDouble sets a[i] = sin(a[i]) in place.
func SinAssignDouble(a *float64, size, stride int) {
	kernels().unaryAssign64(kernel.Sin, a, size, stride)
}

// CosDouble sets out[i] = cos(a[i]) for i in [0, size).
func CosDouble(a *float64, size, stride int, out *float64) {
	kernels().unary64(kernel.Cos, a, size, stride, out)
}

// CosAssignDouble sets a[i] = cos(a[i]) in place.
func CosAssignDouble(a *float64, size, stride int) {
	kernels().unaryAssign64(kernel.Cos, a, size, stride)
}

// TanDouble sets out[i] = tan(a[i]) for i in [0, size).
func TanDouble(a *float64, size, stride int, out *float64) {
	kernels().unary64(kernel.Tan, a, size, stride, out)
}

// TanAssignDouble sets a[i] = tan(a[i]) in place.
func TanAssignDouble(a *float64, size, stride int) {
	kernels().unaryAssign64(kernel.Tan, a, size, stride)
}

// AsinDouble sets out[i] = asin(a[i]) for i in [0, size).
// Elements outside [-1, 1] yield NaN.
func AsinDouble(a *float64, size, stride int, out *float64) {
	kernels().unary64(kernel.Asin, a, size, stride, out)
}

// AsinAssignDouble sets a[i] = asin(a[i]) in place.
func AsinAssignDouble(a *float64, size, stride int) {
	kernels().unaryAssign64(kernel.Asin, a, size, stride)
}

// AcosDouble sets out[i] = acos(a[i]) for i in [0, size).
// Elements outside [-1, 1] yield NaN.
func AcosDouble(a *float64, size, stride int, out *float64) {
	kernels().unary64(kernel.Acos, a, size, stride, out)
}

// AcosAssignDouble sets a[i] = acos(a[i]) in place.
func AcosAssignDouble(a *float64, size, stride int) {
	kernels().unaryAssign64(kernel.Acos, a, size, stride)
}

// AtanDouble sets out[i] = atan(a[i]) for i in [0, size).
func AtanDouble(a *float64, size, stride int, out *float64) {
	kernels().unary64(kernel.Atan, a, size, stride, out)
}

// AtanAssignDouble sets a[i] = atan(a[i]) in place.
func AtanAssignDouble(a *float64, size, stride int) {
	kernels().unaryAssign64(kernel.Atan, a, size, stride)
}

// SinhDouble sets out[i] = sinh(a[i]) for i in [0, size).
func SinhDouble(a *float64, size, stride int, out *float64) {
	kernels().unary64(kernel.Sinh, a, size, stride, out)
}

// SinhAssignDouble sets a[i] = sinh(a[i]) in place.
func SinhAssignDouble(a *float64, size, stride int) {
	kernels().unaryAssign64(kernel.Sinh, a, size, stride)
}

// CoshDouble sets out[i] = cosh(a[i]) for i in [0, size).
func CoshDouble(a *float64, size, stride int, out *float64) {
	kernels().unary64(kernel.Cosh, a, size, stride, out)
}

// CoshAssignDouble sets a[i] = cosh(a[i]) in place.
func CoshAssignDouble(a *float64, size, stride int) {
	kernels().unaryAssign64(kernel.Cosh, a, size, stride)
}

// TanhDouble sets out[i] = tanh(a[i]) for i in [0, size).
func TanhDouble(a *float64, size, stride int, out *float64) {
	kernels().unary64(kernel.Tanh, a, size, stride, out)
}

// TanhAssignDouble sets a[i] = tanh(a[i]) in place.
func TanhAssignDouble(a *float64, size, stride int) {
	kernels().unaryAssign64(kernel.Tanh, a, size, stride)
}

// AbsDouble sets out[i] = abs(a[i]) for i in [0, size).
func AbsDouble(a *float64, size, stride int, out *float64) {
	kernels().unary64(kernel.Abs, a, size, stride, out)
}

// AbsAssignDouble sets a[i] = abs(a[i]) in place.
func AbsAssignDouble(a *float64, size, stride int) {
	kernels().unaryAssign64(kernel.Abs, a, size, stride)
}

// SqrtDouble sets out[i] = sqrt(a[i]) for i in [0, size).
// Negative elements yield NaN.
func SqrtDouble(a *float64, size, stride int, out *float64) {
	kernels().unary64(kernel.Sqrt, a, size, stride, out)
}

// SqrtAssignDouble sets a[i] = sqrt(a[i]) in place.
func SqrtAssignDouble(a *float64, size, stride int) {
	kernels().unaryAssign64(kernel.Sqrt, a, size, stride)
}

// ExpDouble sets out[i] = exp(a[i]) for i in [0, size).
// Overflow yields +Inf.
func ExpDouble(a *float64, size, stride int, out *float64) {
	kernels().unary64(kernel.Exp, a, size, stride, out)
}

// ExpAssignDouble sets a[i] = exp(a[i]) in place.
func ExpAssignDouble(a *float64, size, stride int) {
	kernels().unaryAssign64(kernel.Exp, a, size, stride)
}
